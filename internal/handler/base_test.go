package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gracelogistics/backend/internal/errs"
	"github.com/gracelogistics/backend/internal/validation"
)

type greetRequest struct {
	Name string `json:"name"`
}

func (r *greetRequest) Validate() error {
	if r.Name == "" {
		return validation.CustomValidationErrors{{Field: "name", Message: "is required"}}
	}
	return nil
}

type greetResponse struct {
	Greeting string `json:"greeting"`
}

func invoke(t *testing.T, fn echo.HandlerFunc, body string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return rec, fn(e.NewContext(req, rec))
}

func TestHandleWritesJSONResponse(t *testing.T) {
	fn := Handle(Handler{}, func(c echo.Context, req *greetRequest) (*greetResponse, error) {
		return &greetResponse{Greeting: "hello " + req.Name}, nil
	}, http.StatusOK)

	rec, err := invoke(t, fn, `{"name":"Ada"}`)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"greeting":"hello Ada"}`, rec.Body.String())
}

func TestHandleReturnsValidationError(t *testing.T) {
	called := false
	fn := Handle(Handler{}, func(c echo.Context, req *greetRequest) (*greetResponse, error) {
		called = true
		return nil, nil
	}, http.StatusOK)

	_, err := invoke(t, fn, `{}`)
	require.Error(t, err)
	assert.False(t, called)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "name", httpErr.Errors[0].Field)
}

func TestHandlePropagatesHandlerError(t *testing.T) {
	want := errs.NewNotFoundError("Quote not found", false, nil)
	fn := Handle(Handler{}, func(c echo.Context, req *greetRequest) (*greetResponse, error) {
		return nil, want
	}, http.StatusOK)

	_, err := invoke(t, fn, `{"name":"x"}`)
	assert.Equal(t, want, err)
}

func TestHandleAllocatesFreshRequestPerCall(t *testing.T) {
	var seen []string
	fn := Handle(Handler{}, func(c echo.Context, req *greetRequest) (*greetResponse, error) {
		seen = append(seen, req.Name)
		return &greetResponse{}, nil
	}, http.StatusOK)

	_, err := invoke(t, fn, `{"name":"first"}`)
	require.NoError(t, err)

	// The second request omits the field; a shared payload struct would
	// leak "first" into it.
	_, err = invoke(t, fn, `{"name":"second"}`)
	require.NoError(t, err)

	_, err = invoke(t, fn, `{"name":""}`)
	require.Error(t, err)

	assert.Equal(t, []string{"first", "second"}, seen)
}

func TestHandleFileSetsDownloadHeaders(t *testing.T) {
	fn := HandleFile(Handler{}, func(c echo.Context, req *greetRequest) ([]byte, error) {
		return []byte("a,b\n1,2\n"), nil
	}, http.StatusOK, "export.csv", "text/csv")

	rec, err := invoke(t, fn, `{"name":"x"}`)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "attachment; filename=export.csv", rec.Header().Get("Content-Disposition"))
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/csv")
	assert.Equal(t, "a,b\n1,2\n", rec.Body.String())
}
