package mongoerr

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gracelogistics/backend/internal/errs"
)

func writeErr(code int, message string) error {
	return mongo.WriteException{
		WriteErrors: []mongo.WriteError{{Code: code, Message: message}},
	}
}

func TestConvertDuplicateKeyParsesNamespaceAndIndex(t *testing.T) {
	err := writeErr(11000,
		`E11000 duplicate key error collection: gracelog.newsletters index: email_1 dup key: { email: "a@b.c" }`)

	converted := Convert(err)

	assert.Equal(t, DuplicateKey, converted.Code)
	assert.Equal(t, "gracelog.newsletters", converted.Namespace)
	assert.Equal(t, "email_1", converted.Index)
	assert.Equal(t, 11000, converted.ServerCode)
}

func TestConvertServerSelection(t *testing.T) {
	err := fmt.Errorf("server selection error: context deadline exceeded, current topology: ...")

	converted := Convert(err)
	assert.Equal(t, Unavailable, converted.Code)
}

func TestConvertClientDisconnected(t *testing.T) {
	converted := Convert(fmt.Errorf("insert: %w", mongo.ErrClientDisconnected))
	assert.Equal(t, Unavailable, converted.Code)
}

func TestConvertOther(t *testing.T) {
	converted := Convert(errors.New("something else"))
	assert.Equal(t, Other, converted.Code)
}

func TestHandleErrorDuplicateEmail(t *testing.T) {
	err := HandleError(writeErr(11000,
		`E11000 duplicate key error collection: gracelog.newsletters index: email_1 dup key: { email: "a@b.c" }`))

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Status)
	assert.Equal(t, "ALREADY_EXISTS", httpErr.Code)
	assert.Equal(t, "Email already subscribed", httpErr.Message)
}

func TestHandleErrorDuplicateReference(t *testing.T) {
	err := HandleError(writeErr(11000,
		`E11000 duplicate key error collection: gracelog.quotes index: referenceNo_1 dup key: { referenceNo: "GRL1" }`))

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, "A quote with this reference number already exists", httpErr.Message)
}

func TestHandleErrorDuplicateFallbackMessage(t *testing.T) {
	err := HandleError(writeErr(11000,
		`E11000 duplicate key error collection: gracelog.contacts index: phone_1 dup key: { phone: "5" }`))

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, "A contact with this identifier already exists", httpErr.Message)
}

func TestHandleErrorDeadline(t *testing.T) {
	err := HandleError(fmt.Errorf("find: %w", context.DeadlineExceeded))

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 503, httpErr.Status)
}

func TestHandleErrorUnavailable(t *testing.T) {
	err := HandleError(errors.New("server selection error: no reachable servers"))

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 503, httpErr.Status)
	assert.Equal(t, "Database connection lost. Please try again in a moment.", httpErr.Message)
}

func TestHandleErrorUnknownBecomes500(t *testing.T) {
	err := HandleError(errors.New("boom"))

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 500, httpErr.Status)
}

func TestIsDuplicate(t *testing.T) {
	dup := writeErr(11000, `E11000 duplicate key error collection: gracelog.quotes index: referenceNo_1`)

	assert.True(t, IsDuplicate(dup))
	assert.False(t, IsDuplicate(errors.New("nope")))
	assert.False(t, IsDuplicate(nil))
}
