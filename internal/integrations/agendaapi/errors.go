package agendaapi

import "errors"

var (
	// ErrNotFound is returned when the requested resource does not exist
	ErrNotFound = errors.New("agendaapi client: resource not found")

	// ErrRejected is returned when the server refused the request; the
	// message carries the server's user-facing explanation
	ErrRejected = errors.New("agendaapi client: request rejected")

	// ErrInternal is returned on internal client errors
	ErrInternal = errors.New("agendaapi client: internal error")

	// ErrInvalidResponse is returned when the server response cannot be used
	ErrInvalidResponse = errors.New("agendaapi client: invalid response")

	// ErrStaleResponse is returned when a newer request superseded this one
	// before its response arrived
	ErrStaleResponse = errors.New("agendaapi client: stale response discarded")
)
