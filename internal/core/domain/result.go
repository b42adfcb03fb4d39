// internal/core/domain/result.go
package domain

import (
	"fmt"
	"time"
)

// Outcome classifies the terminal state of a single candidate lookup.
type Outcome string

const (
	// OutcomeResolved means the lookup returned at least one address.
	OutcomeResolved Outcome = "resolved"

	// OutcomeUnresolved means the resolver answered NXDOMAIN.
	OutcomeUnresolved Outcome = "unresolved"

	// OutcomeTimeout means the lookup exceeded its per-lookup deadline.
	OutcomeTimeout Outcome = "timeout"

	// OutcomeError covers every other resolver failure (SERVFAIL,
	// network unreachable, refused).
	OutcomeError Outcome = "error"
)

// IsValid reports whether the outcome is a known value.
func (o Outcome) IsValid() bool {
	switch o {
	case OutcomeResolved, OutcomeUnresolved, OutcomeTimeout, OutcomeError:
		return true
	default:
		return false
	}
}

// String returns the outcome as a plain string.
func (o Outcome) String() string {
	return string(o)
}

// ResolutionResult is the record a pool worker produces for one candidate.
// It is owned by the aggregator once emitted.
type ResolutionResult struct {
	// Candidate is the name this result belongs to.
	Candidate Candidate

	// Outcome classifies how the lookup ended.
	Outcome Outcome

	// Addresses holds the resolved A/AAAA records.
	// Only populated when Outcome is OutcomeResolved.
	Addresses []string

	// Reason carries the resolver error text.
	// Only populated when Outcome is OutcomeError.
	Reason string

	// Duration is the wall time the lookup took.
	Duration time.Duration
}

// NewResolved builds a successful result with the returned address set.
func NewResolved(c Candidate, addresses []string, d time.Duration) ResolutionResult {
	return ResolutionResult{
		Candidate: c,
		Outcome:   OutcomeResolved,
		Addresses: addresses,
		Duration:  d,
	}
}

// NewUnresolved builds an NXDOMAIN result.
func NewUnresolved(c Candidate, d time.Duration) ResolutionResult {
	return ResolutionResult{
		Candidate: c,
		Outcome:   OutcomeUnresolved,
		Duration:  d,
	}
}

// NewTimeout builds a result for a lookup that exceeded its deadline.
func NewTimeout(c Candidate, d time.Duration) ResolutionResult {
	return ResolutionResult{
		Candidate: c,
		Outcome:   OutcomeTimeout,
		Duration:  d,
	}
}

// NewErrored builds a result for a non-NXDOMAIN resolver failure.
func NewErrored(c Candidate, reason string, d time.Duration) ResolutionResult {
	return ResolutionResult{
		Candidate: c,
		Outcome:   OutcomeError,
		Reason:    reason,
		Duration:  d,
	}
}

// String returns a readable representation of the result.
func (r ResolutionResult) String() string {
	switch r.Outcome {
	case OutcomeResolved:
		return fmt.Sprintf("%s %s %v", r.Candidate.Name, r.Outcome, r.Addresses)
	case OutcomeError:
		return fmt.Sprintf("%s %s (%s)", r.Candidate.Name, r.Outcome, r.Reason)
	default:
		return fmt.Sprintf("%s %s", r.Candidate.Name, r.Outcome)
	}
}
