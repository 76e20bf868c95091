package timeoff

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/barbershop-booking/internal/domain"
	"github.com/m04kA/barbershop-booking/pkg/dbmetrics"
	"github.com/m04kA/barbershop-booking/pkg/psqlbuilder"
)

// Repository репозиторий периодов отсутствия барберов
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByBarberInRange возвращает периоды отсутствия, пересекающиеся с [from, to] (включительно)
func (r *Repository) GetByBarberInRange(ctx context.Context, barberID int64, from, to time.Time) ([]*domain.BarberTimeOff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "barber_id", "start_date", "end_date", "reason").
		From("barber_time_off").
		Where(squirrel.Eq{"barber_id": barberID}).
		Where(squirrel.LtOrEq{"start_date": to.Format(domain.DateFormat)}).
		Where(squirrel.GtOrEq{"end_date": from.Format(domain.DateFormat)}).
		OrderBy("start_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBarberInRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBarberInRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.BarberTimeOff, 0)
	for rows.Next() {
		var t domain.BarberTimeOff
		if err := rows.Scan(&t.ID, &t.BarberID, &t.StartDate, &t.EndDate, &t.Reason); err != nil {
			return nil, fmt.Errorf("%w: GetByBarberInRange - scan row: %v", ErrScanRow, err)
		}
		result = append(result, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByBarberInRange - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// Create добавляет период отсутствия
func (r *Repository) Create(ctx context.Context, t *domain.BarberTimeOff) (*domain.BarberTimeOff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("barber_time_off").
		Columns("barber_id", "start_date", "end_date", "reason").
		Values(t.BarberID, t.StartDate.Format(domain.DateFormat), t.EndDate.Format(domain.DateFormat), t.Reason).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&t.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return t, nil
}

// Delete удаляет период отсутствия, если он принадлежит барберу
func (r *Repository) Delete(ctx context.Context, barberID, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("barber_time_off").
		Where(squirrel.Eq{"id": id, "barber_id": barberID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrTimeOffNotFound
	}

	return nil
}
