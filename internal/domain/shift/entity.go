package shift

import "time"

// Config is the shift policy applied when classifying attendance entries.
// Times are minutes since midnight. Loaded once per session and refreshable
// on demand; treated as read-only by the engine.
type Config struct {
	ID                      string
	DefaultTimeIn           int
	DefaultTimeOut          int
	GracePeriodMinutes      int
	EarlyLeaveBufferMinutes int
	UpdatedAt               time.Time
}

// LateThreshold is the minute of day after which an arrival counts as late.
func (c Config) LateThreshold() int {
	return c.DefaultTimeIn + c.GracePeriodMinutes
}

// EarlyLeaveThreshold is the minute of day before which a departure counts
// as an early leave.
func (c Config) EarlyLeaveThreshold() int {
	return c.DefaultTimeOut - c.EarlyLeaveBufferMinutes
}

func (c Config) Validate() error {
	if c.DefaultTimeIn <= 0 || c.DefaultTimeOut <= 0 {
		return ErrInvalidConfig
	}
	if c.DefaultTimeOut <= c.DefaultTimeIn {
		return ErrInvalidConfig
	}
	if c.GracePeriodMinutes < 0 || c.EarlyLeaveBufferMinutes < 0 {
		return ErrInvalidConfig
	}
	return nil
}
