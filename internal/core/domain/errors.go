package domain

import "errors"

// ErrInvalidConfiguration is returned when a credential or a required domain
// input is missing or invalid. Request assembly stops immediately.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// ErrBadResponse is returned when a carrier document is structurally
// inconsistent with the expected schema.
var ErrBadResponse = errors.New("bad carrier response")

// ErrTransport is returned when the carrier endpoint could not be reached or
// answered with a non-2xx status.
var ErrTransport = errors.New("carrier transport failure")

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrClientNotFound = errors.New("api client not found")
