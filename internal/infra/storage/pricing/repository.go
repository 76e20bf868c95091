package pricing

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/barbershop-booking/internal/domain"
	"github.com/m04kA/barbershop-booking/pkg/dbmetrics"
	"github.com/m04kA/barbershop-booking/pkg/psqlbuilder"
)

// Repository репозиторий цен барберов на услуги
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория цен
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByBarberID получает всю таблицу цен барбера
func (r *Repository) GetByBarberID(ctx context.Context, barberID int64) ([]*domain.BarberServicePricing, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "barber_id", "service_id", "time_period", "price").
		From("barber_service_pricing").
		Where(squirrel.Eq{"barber_id": barberID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBarberID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBarberID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.BarberServicePricing, 0)
	for rows.Next() {
		var p domain.BarberServicePricing
		if err := rows.Scan(&p.ID, &p.BarberID, &p.ServiceID, &p.TimePeriod, &p.Price); err != nil {
			return nil, fmt.Errorf("%w: GetByBarberID - scan row: %v", ErrScanRow, err)
		}
		result = append(result, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByBarberID - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// Upsert создаёт или обновляет цену по ключу (barber_id, service_id, time_period)
func (r *Repository) Upsert(ctx context.Context, p *domain.BarberServicePricing) (*domain.BarberServicePricing, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("barber_service_pricing").
		Columns("barber_id", "service_id", "time_period", "price").
		Values(p.BarberID, p.ServiceID, p.TimePeriod, p.Price).
		Suffix("ON CONFLICT (barber_id, service_id, time_period) DO UPDATE SET price = EXCLUDED.price RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&p.ID); err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	return p, nil
}
