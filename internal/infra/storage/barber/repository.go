package barber

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/barbershop-booking/internal/domain"
	"github.com/m04kA/barbershop-booking/pkg/dbmetrics"
	"github.com/m04kA/barbershop-booking/pkg/psqlbuilder"
)

// Repository репозиторий барберов
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает барбера вместе с границами обычного и вечернего окна
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Barber, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"user_id",
		"name",
		"regular_hours_start",
		"regular_hours_end",
		"evening_hours_start",
		"evening_hours_end",
	).
		From("barbers").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID: %v", ErrBuildQuery, err)
	}

	var b domain.Barber
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&b.UserID,
		&b.Name,
		&b.RegularHoursStart,
		&b.RegularHoursEnd,
		&b.EveningHoursStart,
		&b.EveningHoursEnd,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBarberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID: %v", ErrScanRow, err)
	}

	return &b, nil
}
