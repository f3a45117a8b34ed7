// Package http implements the REST surface of the remote store server.
//
// It exposes the password-grant auth endpoints under /auth/v1 and the
// owner-scoped table endpoints under /rest/v1/{table}. Request tracing,
// access logging and bearer authentication are handled here before
// requests reach the service layer.
package http
