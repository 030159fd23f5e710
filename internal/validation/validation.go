// Package validation contains the logic for validating request data.
//
// It uses the `validator` library to enforce rules (like required fields
// or email formats) defined in struct tags and extracts validation errors
// into a format the client can understand.
package validation

import "github.com/go-playground/validator/v10"

// validate is the shared validator instance. The library caches struct
// metadata internally, so a single instance is reused for all requests.
var validate = validator.New()

// Struct runs tag-based validation rules on v. Request types whose rules
// fit validator tags call this from their Validate method.
func Struct(v any) error {
	return validate.Struct(v)
}
