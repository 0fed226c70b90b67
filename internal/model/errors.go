package model

import "errors"

var (
	// ErrEmptyReport is returned when the submitted record text is empty or
	// whitespace-only. No outbound call is made in that case.
	ErrEmptyReport = errors.New("report text is empty")

	// ErrInvalidStructure is returned when the LLM response is not a single
	// JSON object or is missing required top-level fields.
	ErrInvalidStructure = errors.New("invalid JSON structure received from API")

	// ErrSessionNotFound is returned for an unknown analysis session id.
	ErrSessionNotFound = errors.New("analysis session not found")
)
