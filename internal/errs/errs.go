// Package errs defines the error shapes returned to API clients.
//
// Every handler failure is converted into an *HTTPError so clients always
// receive a consistent JSON body: a success flag, a machine-readable code,
// a message, and optional field-level errors for form validation.
package errs
