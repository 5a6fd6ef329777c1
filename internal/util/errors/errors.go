package errors

import "errors"

// Shared sentinel errors used by the HTTP transports to pick status codes.
var (
	ErrUnknown         = errors.New("unknown resource")
	ErrInvalidArgument = errors.New("invalid argument")
)
