package feedback

import "errors"

var (
	ErrFilterRequired = errors.New("userId or providerId is required")
	ErrInvalidRequest = errors.New("invalid_request")
	ErrForbidden      = errors.New("forbidden")
)
