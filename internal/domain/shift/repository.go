package shift

import "context"

// ConfigRepository persists the shift policy.
type ConfigRepository interface {
	// GetActive retrieves the active shift policy.
	// Returns ErrConfigNotFound when none has been saved yet.
	GetActive(ctx context.Context) (Config, error)

	// Save upserts the active shift policy
	Save(ctx context.Context, cfg Config) (Config, error)
}
