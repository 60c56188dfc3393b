// Package services implements the endpoint services: one component per
// backend resource family, each issuing exactly one HTTP call per method and
// classifying the outcome by status code.
//
// This file centralizes the status classification. Every service funnels all
// of its failures through the same error channel: classified HTTP statuses,
// transport failures, and decode failures all surface as *Error with a
// user-presentable message. Nothing escapes a service as an unhandled fault,
// and raw status codes are never shown to end users, only the classified
// message.
package services

import (
	"fmt"
	"net/http"
)

// Error is a classified service failure. Status is 0 when no HTTP status was
// obtained (transport or decode failure).
type Error struct {
	Status  int
	Message string
}

// Error returns the user-presentable message.
func (e *Error) Error() string { return e.Message }

// classify maps a non-success status code to a message. The table is uniform
// across services; resource specializes the 400 and 404 texts.
func classify(status int, resource string) *Error {
	var msg string
	switch status {
	case http.StatusBadRequest:
		msg = fmt.Sprintf("invalid %s data", resource)
	case http.StatusUnauthorized:
		msg = "unauthorized"
	case http.StatusForbidden:
		msg = "forbidden"
	case http.StatusNotFound:
		msg = fmt.Sprintf("%s not found", resource)
	case http.StatusConflict:
		msg = "conflict"
	case http.StatusRequestEntityTooLarge:
		msg = "payload too large"
	case http.StatusUnprocessableEntity:
		msg = "unprocessable entity"
	case http.StatusInternalServerError:
		msg = "server error: please try again later"
	default:
		msg = fmt.Sprintf("HTTP %d: %s", status, http.StatusText(status))
	}
	return &Error{Status: status, Message: msg}
}

// netError wraps a transport-level or decode failure. No status was obtained.
func netError(err error) *Error {
	return &Error{Message: fmt.Sprintf("network error: %v", err)}
}
