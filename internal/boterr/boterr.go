// Package boterr defines the error taxonomy shared by the lookup and
// persistence layers. Handlers check these with errors.Is to decide
// between a "try again later" reply and a specific help reply.
package boterr

import "errors"

var (
	// ErrFetch means the spreadsheet source was unreachable or the
	// configured range was malformed.
	ErrFetch = errors.New("spreadsheet fetch failed")

	// ErrStorage means the user-state store was unreachable. Handlers
	// degrade to stateless behavior instead of failing the request.
	ErrStorage = errors.New("user state storage unavailable")

	// ErrNotFound is the expected outcome for a code or selection with
	// no match. Not a failure.
	ErrNotFound = errors.New("not found")
)
