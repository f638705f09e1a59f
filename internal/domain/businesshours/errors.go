package businesshours

import "errors"

var (
	ErrNotConfigured   = errors.New("business hours have not been configured")
	ErrInvalidInterval = errors.New("business hours start time must be before end time")
)
