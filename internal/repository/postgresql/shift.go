package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/adnanaslam989/attendance-backend-go/internal/domain/shift"
	"github.com/adnanaslam989/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type shiftConfigRepository struct {
	db *database.DB
}

func NewShiftConfigRepository(db *database.DB) shift.ConfigRepository {
	return &shiftConfigRepository{db: db}
}

// GetActive implements shift.ConfigRepository.
func (r *shiftConfigRepository) GetActive(ctx context.Context) (shift.Config, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, default_time_in_minutes, default_time_out_minutes,
			   grace_period_minutes, early_leave_buffer_minutes, updated_at
		FROM shift_policies
		WHERE is_active
		ORDER BY updated_at DESC
		LIMIT 1
	`

	var cfg shift.Config
	err := q.QueryRow(ctx, query).Scan(
		&cfg.ID, &cfg.DefaultTimeIn, &cfg.DefaultTimeOut,
		&cfg.GracePeriodMinutes, &cfg.EarlyLeaveBufferMinutes, &cfg.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Config{}, shift.ErrConfigNotFound
		}
		return shift.Config{}, fmt.Errorf("failed to get shift policy: %w", err)
	}

	return cfg, nil
}

// Save implements shift.ConfigRepository.
func (r *shiftConfigRepository) Save(ctx context.Context, cfg shift.Config) (shift.Config, error) {
	q := GetQuerier(ctx, r.db)

	if cfg.ID == "" {
		cfg.ID = uuid.NewString()
	}

	// A single active policy row; older rows are kept deactivated for audit.
	if _, err := q.Exec(ctx, `UPDATE shift_policies SET is_active = FALSE WHERE is_active`); err != nil {
		return shift.Config{}, fmt.Errorf("failed to deactivate shift policies: %w", err)
	}

	query := `
		INSERT INTO shift_policies (
			id, default_time_in_minutes, default_time_out_minutes,
			grace_period_minutes, early_leave_buffer_minutes, is_active
		) VALUES ($1, $2, $3, $4, $5, TRUE)
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		cfg.ID, cfg.DefaultTimeIn, cfg.DefaultTimeOut,
		cfg.GracePeriodMinutes, cfg.EarlyLeaveBufferMinutes,
	).Scan(&cfg.UpdatedAt)
	if err != nil {
		return shift.Config{}, fmt.Errorf("failed to save shift policy: %w", err)
	}

	return cfg, nil
}
