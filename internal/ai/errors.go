// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ai

import (
	"errors"
	"fmt"
	"strings"
)

// errNoChoices marks a success response that carried no completion choices.
var errNoChoices = errors.New("response contains no completion choices")

// ConfigError reports incomplete AI settings. It is returned before any
// network access is attempted.
type ConfigError struct {
	// Missing lists the setting names that were empty.
	Missing []string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("AI settings are not configured: missing %s", strings.Join(e.Missing, ", "))
}

// APIError reports a non-2xx response from the AI endpoint.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API call failed with status %d: %s", e.Status, e.Body)
}

// MalformedResponseError reports response text that could not be parsed
// into the expected JSON shape.
type MalformedResponseError struct {
	// Raw is the response text as returned by the endpoint.
	Raw string
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("AI returned malformed data: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }
