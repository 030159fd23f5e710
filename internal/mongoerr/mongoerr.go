// Package mongoerr classifies MongoDB driver errors.
//
// It parses driver error codes and messages and converts them into
// application HTTP errors (e.g. a duplicate-key write becomes a
// 400 with an "already subscribed" style message, an unreachable
// server becomes a 503).
package mongoerr

import (
	"errors"
)

// Code is the application-level category of a database error.
type Code int

const (
	// Other covers anything not explicitly classified.
	Other Code = iota

	// DuplicateKey is a unique-index violation (server code 11000).
	DuplicateKey

	// Unavailable means the server could not be reached at all:
	// server selection timed out or the client is disconnected.
	Unavailable

	// Timeout is an operation that started but ran out of time.
	Timeout
)

// Error is the normalized form of a MongoDB driver error.
//
// Namespace and Index are extracted from the driver message when present;
// they drive user-facing message selection for duplicate keys.
type Error struct {
	Code       Code
	Message    string
	Namespace  string // "db.collection" as reported by the server
	Index      string // offending index name, e.g. "email_1"
	ServerCode int    // raw server error code, 0 if not applicable

	driverErr error
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the original driver error for errors.Is / errors.As.
func (e *Error) Unwrap() error {
	return e.driverErr
}

// ErrCode reports the mapped Code for err, walking the error chain.
// Returns Other when err is not a classified database error.
func ErrCode(err error) Code {
	var dberr *Error
	if errors.As(err, &dberr) {
		return dberr.Code
	}
	return Other
}

// IsDuplicate reports whether err is a unique-index violation, classifying
// raw driver errors on the fly.
func IsDuplicate(err error) bool {
	if ErrCode(err) == DuplicateKey {
		return true
	}
	return Convert(err).Code == DuplicateKey
}
