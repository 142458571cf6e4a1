/*
errors.go - Centralized error types for the timeline engine

PURPOSE:
  All error types in one place for consistency and discoverability.
  Domain packages should wrap these errors with additional context.

ERROR CATEGORIES:
  1. Configuration errors - Malformed sequences
  2. Input errors - Invalid anchors, spans, intervals
  3. Lookup errors - Unknown segment ids, empty timelines

All failures here are synchronous construction-time validation: none
are transient or retryable. Construction is all-or-nothing; no
partially-built timeline is ever returned alongside an error.

USAGE:
  Callers can branch on sentinels:

    if errors.Is(err, generic.ErrInvalidSequence) {
        return fmt.Errorf("bad sequence config: %w", err)
    }

SEE ALSO:
  - sequence.go: Returns ErrInvalidSequence, ErrSegmentNotFound
  - anchor.go: Returns ErrInvalidAnchor
  - builder.go, query.go: Return ErrInvalidSpan, ErrEmptyTimeline
*/
package generic

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidSequence is returned when segment weights do not sum to
	// the declared cycle length, or the sequence itself is malformed.
	ErrInvalidSequence = errors.New("invalid sequence")

	// ErrInvalidAnchor is returned when an anchor's fraction is outside
	// [0,1) or its start index is out of range for the sequence.
	ErrInvalidAnchor = errors.New("invalid anchor")

	// ErrSegmentNotFound is returned when a segment id is not part of
	// the sequence.
	ErrSegmentNotFound = errors.New("segment not found")

	// ErrInvalidSpan is returned when a requested timeline span is not
	// strictly positive.
	ErrInvalidSpan = errors.New("invalid span: must be positive")

	// ErrEmptyTimeline is returned when a query is made against a
	// timeline with no intervals.
	ErrEmptyTimeline = errors.New("empty timeline")

	// ErrInvalidInterval is returned when subdivision is asked to split
	// an interval with non-positive duration.
	ErrInvalidInterval = errors.New("invalid interval: non-positive duration")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// InvalidSequenceError reports why a sequence failed validation.
type InvalidSequenceError struct {
	Reason   string
	Declared decimal.Decimal
	Actual   decimal.Decimal
}

func (e *InvalidSequenceError) Error() string {
	if !e.Declared.IsZero() || !e.Actual.IsZero() {
		return fmt.Sprintf("invalid sequence: %s (declared cycle %s, weights sum to %s)",
			e.Reason, e.Declared, e.Actual)
	}
	return fmt.Sprintf("invalid sequence: %s", e.Reason)
}

func (e *InvalidSequenceError) Unwrap() error {
	return ErrInvalidSequence
}

// InvalidAnchorError reports which anchor field was out of domain.
type InvalidAnchorError struct {
	Field string
	Value string
}

func (e *InvalidAnchorError) Error() string {
	return fmt.Sprintf("invalid anchor: %s = %s", e.Field, e.Value)
}

func (e *InvalidAnchorError) Unwrap() error {
	return ErrInvalidAnchor
}

// SegmentNotFoundError identifies the missing segment.
type SegmentNotFoundError struct {
	ID SegmentID
}

func (e *SegmentNotFoundError) Error() string {
	return fmt.Sprintf("segment not found: %q", string(e.ID))
}

func (e *SegmentNotFoundError) Unwrap() error {
	return ErrSegmentNotFound
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid caller input
// rather than an engine defect.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidSequence) ||
		errors.Is(err, ErrInvalidAnchor) ||
		errors.Is(err, ErrInvalidSpan) ||
		errors.Is(err, ErrInvalidInterval)
}

// IsNotFound returns true if the error indicates a missing segment or
// an empty timeline.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrSegmentNotFound) ||
		errors.Is(err, ErrEmptyTimeline)
}
