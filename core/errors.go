package core

import "errors"

var (
	ErrFeatureDisabled = errors.New("event feature disabled")
	ErrInvalidLevel    = errors.New("invalid log level")
)

// FeatureError reports an operation on a disabled event category.
type FeatureError struct {
	Category EventCategory
}

func (e *FeatureError) Error() string {
	return ErrFeatureDisabled.Error() + ": " + e.Category.String()
}

func (e *FeatureError) Unwrap() error { return ErrFeatureDisabled }
