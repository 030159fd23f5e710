// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns such as
// request logging, CORS, request correlation ids, tracing, and panic
// recovery.
package middleware
