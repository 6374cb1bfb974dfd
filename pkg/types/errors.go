// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
)

// ErrAlreadyRunning is returned when a conversion run is started while
// another run is still active.
var ErrAlreadyRunning = errors.New("a conversion run is already in progress")

// DocumentError reports a PDF that is missing, unreadable, or corrupt.
type DocumentError struct {
	Path string
	Err  error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("document %s: %v", e.Path, e.Err)
}

func (e *DocumentError) Unwrap() error { return e.Err }

// PageRangeError reports a requested page outside the document's bounds.
type PageRangeError struct {
	Page  int
	Total int
}

func (e *PageRangeError) Error() string {
	return fmt.Sprintf("page %d out of range: document has %d pages", e.Page, e.Total)
}

// ServiceError reports a failed call to the generative AI service:
// transport failure, authentication failure, or an unusable response.
// Page is zero when the failure is not tied to a specific page.
type ServiceError struct {
	Page int
	Err  error
}

func (e *ServiceError) Error() string {
	if e.Page > 0 {
		return fmt.Sprintf("AI service (page %d): %v", e.Page, e.Err)
	}
	return fmt.Sprintf("AI service: %v", e.Err)
}

func (e *ServiceError) Unwrap() error { return e.Err }

// IOError reports a failure writing the conversion output.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ConfigError reports a missing API key or a malformed configuration file.
type ConfigError struct {
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("configuration: %s: %v", e.Reason, e.Err)
	}
	return "configuration: " + e.Reason
}

func (e *ConfigError) Unwrap() error { return e.Err }
