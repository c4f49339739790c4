package metrics

import "errors"

// ErrAlreadyRegistered is returned by New when a collector with the same
// namespace is already registered.
var ErrAlreadyRegistered = errors.New("metrics: collectors already registered")
