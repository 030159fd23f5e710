package mongoerr

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gracelogistics/backend/internal/errs"
)

// The server embeds namespace and index name in duplicate-key messages:
//
//	E11000 duplicate key error collection: gracelog.newsletters index: email_1 dup key: { email: "a@b.c" }
var (
	namespaceRegex = regexp.MustCompile(`collection: (\S+)`)
	indexRegex     = regexp.MustCompile(`index: (\S+)`)
)

// Convert normalizes a raw driver error into *Error.
//
// Classification order matters: duplicate keys arrive wrapped in
// WriteException/BulkWriteException, so they are checked before the broader
// network/timeout categories.
func Convert(err error) *Error {
	if err == nil {
		return &Error{Code: Other, driverErr: err}
	}

	if mongo.IsDuplicateKeyError(err) {
		out := &Error{
			Code:       DuplicateKey,
			Message:    err.Error(),
			ServerCode: 11000,
			driverErr:  err,
		}
		if m := namespaceRegex.FindStringSubmatch(err.Error()); m != nil {
			out.Namespace = m[1]
		}
		if m := indexRegex.FindStringSubmatch(err.Error()); m != nil {
			out.Index = m[1]
		}
		return out
	}

	switch {
	case isUnavailable(err):
		return &Error{Code: Unavailable, Message: err.Error(), driverErr: err}
	case mongo.IsTimeout(err):
		return &Error{Code: Timeout, Message: err.Error(), driverErr: err}
	}

	return &Error{Code: Other, Message: err.Error(), driverErr: err}
}

// isUnavailable reports whether the server could not be reached at all.
//
// Server selection failures surface as a timeout wrapping a "server selection
// error" message, so the message check has to run before the generic timeout
// branch in Convert.
func isUnavailable(err error) bool {
	if errors.Is(err, mongo.ErrClientDisconnected) {
		return true
	}
	return strings.Contains(err.Error(), "server selection error")
}

// HandleError converts any database-layer error into an application HTTP
// error. It is the store-error funnel used by the global error handler and
// by repositories that need per-collection duplicate messages.
func HandleError(err error) error {
	if err == nil {
		return nil
	}

	// Context expiry on a store call reads as the store being too slow or
	// gone, not a client mistake.
	if errors.Is(err, context.DeadlineExceeded) {
		return errs.NewServiceUnavailableError("Database is not responding. Please try again later.")
	}

	converted := Convert(err)
	switch converted.Code {
	case DuplicateKey:
		return errs.NewDuplicateError(duplicateMessage(converted))
	case Unavailable, Timeout:
		return errs.NewServiceUnavailableError("Database connection lost. Please try again in a moment.")
	default:
		return errs.NewInternalServerError()
	}
}

// duplicateMessage picks a user-facing message for a unique-index violation
// based on which index rejected the write.
func duplicateMessage(e *Error) string {
	switch {
	case strings.HasPrefix(e.Index, "email"):
		return "Email already subscribed"
	case strings.HasPrefix(e.Index, "referenceNo"):
		return "A quote with this reference number already exists"
	}

	entity := entityName(e.Namespace)
	return fmt.Sprintf("A %s with this identifier already exists", entity)
}

// entityName derives a readable entity name from "db.collection",
// crudely singularized the same way the SQL variant de-pluralized tables.
func entityName(namespace string) string {
	name := namespace
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	if name == "" {
		return "record"
	}
	if strings.HasSuffix(name, "s") && len(name) > 1 {
		name = name[:len(name)-1]
	}
	return name
}
