// Package errors provides sentinel errors for source collection operations.
// These enable consistent classification of scan failures in the CLI.
package errors

import "errors"

var (
	// ErrRootNotFound indicates the scan root directory does not exist.
	ErrRootNotFound = errors.New("scan root not found")

	// ErrWalkFailed indicates filesystem traversal of the source tree failed.
	ErrWalkFailed = errors.New("source tree walk failed")
)
