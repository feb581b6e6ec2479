// Package api handles incoming HTTP requests, routing, request validation,
// and response formatting. It acts as an adapter between external clients
// and the read-only dataset, translating HTTP concerns to dataset lookups.
//
// Every response body is exactly one envelope: a success shape from
// responses.go or a shared.ErrorResponse whose error field is one of the two
// ErrorKind values.
package api
