// Package sceneerror holds the error classes shared across scene packages.
package sceneerror

import "errors"

var (
	// ErrIllegalState is returned when a handle or wrapper is used while
	// nothing is bound to it.
	ErrIllegalState = errors.New("illegal state")

	// ErrConfiguration is returned for malformed or missing configuration,
	// such as an unknown browser type.
	ErrConfiguration = errors.New("configuration error")

	// ErrResourceRelease is returned when closing a context or page fails
	// during teardown.
	ErrResourceRelease = errors.New("resource release failed")
)
