package handler

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gracelogistics/backend/internal/validation"
)

func numberOf(f float64) *Number {
	return &Number{value: f}
}

func fieldsOf(err error) []string {
	errs, ok := err.(validation.CustomValidationErrors)
	if !ok {
		return nil
	}
	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	return fields
}

func validCreateQuote() *CreateQuoteRequest {
	return &CreateQuoteRequest{
		FirstName:     "Ali",
		Email:         "ali@example.com",
		ServiceType:   "sea",
		OriginCountry: "TR",
		OriginCity:    "Istanbul",
		DestCountry:   "DE",
		DestCity:      "Hamburg",
		TotalWeight:   numberOf(100),
	}
}

func TestCreateQuoteRequestValid(t *testing.T) {
	assert.NoError(t, validCreateQuote().Validate())
}

func TestCreateQuoteRequestEnumeratesAllMissingFields(t *testing.T) {
	err := (&CreateQuoteRequest{}).Validate()
	require.Error(t, err)

	fields := fieldsOf(err)
	assert.ElementsMatch(t, []string{
		"firstName", "email", "serviceType",
		"originCountry", "originCity", "destCountry", "destCity",
		"totalWeight",
	}, fields)
}

func TestCreateQuoteRequestWhitespaceIsMissing(t *testing.T) {
	req := validCreateQuote()
	req.FirstName = "   "

	err := req.Validate()
	require.Error(t, err)
	assert.Equal(t, []string{"firstName"}, fieldsOf(err))
}

func TestCreateQuoteRequestZeroWeightAccepted(t *testing.T) {
	req := validCreateQuote()
	req.TotalWeight = numberOf(0)

	assert.NoError(t, req.Validate())
}

func TestCreateQuoteRequestUnparseableWeightAccepted(t *testing.T) {
	req := validCreateQuote()
	require.NoError(t, json.Unmarshal([]byte(`{"totalWeight": "abc"}`), req))

	assert.NoError(t, req.Validate())
	assert.Equal(t, 0.0, req.TotalWeight.Float())
}

func TestCreateQuoteRequestBlankWeightIsMissing(t *testing.T) {
	req := validCreateQuote()
	require.NoError(t, json.Unmarshal([]byte(`{"totalWeight": ""}`), req))

	err := req.Validate()
	require.Error(t, err)
	assert.Equal(t, []string{"totalWeight"}, fieldsOf(err))
}

func TestCreateQuoteRequestNilWeightIsMissing(t *testing.T) {
	req := validCreateQuote()
	req.TotalWeight = nil

	err := req.Validate()
	require.Error(t, err)
	assert.Equal(t, []string{"totalWeight"}, fieldsOf(err))
}

func TestCreateQuoteRequestInvalidServiceType(t *testing.T) {
	req := validCreateQuote()
	req.ServiceType = "rail"

	err := req.Validate()
	require.Error(t, err)
	assert.Equal(t, []string{"serviceType"}, fieldsOf(err))
}

func TestCreateQuoteRequestInvalidIncoterms(t *testing.T) {
	req := validCreateQuote()
	req.Incoterms = "XYZ"

	err := req.Validate()
	require.Error(t, err)
	assert.Equal(t, []string{"incoterms"}, fieldsOf(err))
}

func TestCreateQuoteRequestValidIncoterms(t *testing.T) {
	req := validCreateQuote()
	req.Incoterms = "FOB"
	assert.NoError(t, req.Validate())
}

func TestUpdateQuoteStatusRequestValidation(t *testing.T) {
	valid := &UpdateQuoteStatusRequest{ID: "507f1f77bcf86cd799439011", Status: "quoted"}
	assert.NoError(t, valid.Validate())

	badID := &UpdateQuoteStatusRequest{ID: "nope", Status: "quoted"}
	assert.Equal(t, []string{"id"}, fieldsOf(badID.Validate()))

	noStatus := &UpdateQuoteStatusRequest{ID: "507f1f77bcf86cd799439011"}
	assert.Equal(t, []string{"status"}, fieldsOf(noStatus.Validate()))

	badStatus := &UpdateQuoteStatusRequest{ID: "507f1f77bcf86cd799439011", Status: "archived"}
	assert.Equal(t, []string{"status"}, fieldsOf(badStatus.Validate()))
}

func TestStatusFilterMapsAll(t *testing.T) {
	assert.Equal(t, "", statusFilter("all"))
	assert.Equal(t, "", statusFilter(""))
	assert.Equal(t, "pending", statusFilter("pending"))
}
