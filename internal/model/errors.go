package model

import "errors"

// Error classes surfaced by the report pipeline. Callers wrap them with
// context and match them with errors.Is.
var (
	// ErrConfiguration marks an invalid pattern or a missing required setting
	ErrConfiguration = errors.New("configuration error")
	// ErrData marks a malformed or incomplete interface record
	ErrData = errors.New("data error")
	// ErrComputation marks a population the caller's policy does not accept
	ErrComputation = errors.New("computation error")
)
