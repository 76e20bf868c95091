package availability

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/barbershop-booking/internal/domain"
	"github.com/m04kA/barbershop-booking/pkg/dbmetrics"
	"github.com/m04kA/barbershop-booking/pkg/psqlbuilder"
)

// Repository репозиторий недельного расписания барберов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByBarberID получает все рабочие блоки барбера, включая выключенные
func (r *Repository) GetByBarberID(ctx context.Context, barberID int64) ([]*domain.BarberAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"barber_id",
		"day_of_week",
		"start_time",
		"end_time",
		"is_available",
	).
		From("barber_availability").
		Where(squirrel.Eq{"barber_id": barberID}).
		OrderBy("day_of_week ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBarberID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBarberID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	blocks := make([]*domain.BarberAvailability, 0)
	for rows.Next() {
		var b domain.BarberAvailability
		if err := rows.Scan(&b.ID, &b.BarberID, &b.DayOfWeek, &b.StartTime, &b.EndTime, &b.IsAvailable); err != nil {
			return nil, fmt.Errorf("%w: GetByBarberID - scan row: %v", ErrScanRow, err)
		}
		blocks = append(blocks, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByBarberID - rows error: %v", ErrScanRow, err)
	}

	return blocks, nil
}

// ReplaceForBarber заменяет недельное расписание барбера целиком.
// Должен вызываться внутри транзакции, иначе между DELETE и INSERT
// расписание будет видно пустым.
func (r *Repository) ReplaceForBarber(ctx context.Context, barberID int64, blocks []*domain.BarberAvailability) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("barber_availability").
		Where(squirrel.Eq{"barber_id": barberID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceForBarber - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceForBarber - execute delete: %v", ErrExecQuery, err)
	}

	if len(blocks) == 0 {
		return nil
	}

	insert := psqlbuilder.Insert("barber_availability").
		Columns("barber_id", "day_of_week", "start_time", "end_time", "is_available")
	for _, b := range blocks {
		insert = insert.Values(barberID, b.DayOfWeek, b.StartTime, b.EndTime, b.IsAvailable)
	}

	query, args, err = insert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceForBarber - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceForBarber - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
