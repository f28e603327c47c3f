// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow handlers to tell a missing
// record apart from a failed write.
package repository

import "errors"

// ErrVenueNotFound is returned when no venue has the requested id.
// Handlers should translate this into an HTTP 404 response.
var ErrVenueNotFound = errors.New("venue not found")

// ErrArtistNotFound is returned when no artist has the requested id.
var ErrArtistNotFound = errors.New("artist not found")
