package shift

import "errors"

var (
	ErrInvalidConfig  = errors.New("shift policy configuration is invalid")
	ErrConfigNotFound = errors.New("no shift policy configured")
)
