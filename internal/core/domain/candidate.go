// internal/core/domain/candidate.go
package domain

import "fmt"

// Provenance identifies the technique that produced a candidate name.
type Provenance string

const (
	// ProvenancePassive marks names observed by a passive data provider
	// (certificate transparency logs, host-search APIs).
	ProvenancePassive Provenance = "passive"

	// ProvenanceBruteForce marks names generated by combining a wordlist
	// label with the base domain.
	ProvenanceBruteForce Provenance = "bruteforce"
)

// IsValid reports whether the provenance is a known value.
func (p Provenance) IsValid() bool {
	switch p {
	case ProvenancePassive, ProvenanceBruteForce:
		return true
	default:
		return false
	}
}

// String returns the provenance as a plain string.
func (p Provenance) String() string {
	return string(p)
}

// Candidate is an unresolved, fully-qualified domain name proposed for
// DNS lookup, tagged with the technique that produced it.
// A candidate is immutable once created and is consumed by exactly one
// pool worker.
type Candidate struct {
	// Name is the fully-qualified domain name, already normalized
	// (lowercase, no trailing dot).
	Name string

	// Provenance records which generation technique proposed the name.
	Provenance Provenance
}

// NewCandidate creates a candidate for an already-normalized name.
func NewCandidate(name string, provenance Provenance) Candidate {
	return Candidate{
		Name:       name,
		Provenance: provenance,
	}
}

// String returns a readable representation of the candidate.
func (c Candidate) String() string {
	return fmt.Sprintf("%s (%s)", c.Name, c.Provenance)
}
