// internal/core/domain/resultset.go
package domain

import (
	"sort"
)

// Entry is the merged, final record for one domain name in a ResultSet.
type Entry struct {
	// Name is the domain name this entry describes.
	Name string `json:"name"`

	// Outcome is the merged resolution outcome for the name.
	Outcome Outcome `json:"outcome"`

	// Addresses holds the union of resolved addresses.
	Addresses []string `json:"addresses,omitempty"`

	// Reason carries the resolver error text for errored entries.
	Reason string `json:"reason,omitempty"`

	// Provenance is the union of techniques that proposed the name.
	Provenance []Provenance `json:"provenance"`
}

// HasProvenance reports whether the entry carries the given tag.
func (e *Entry) HasProvenance(p Provenance) bool {
	for _, tag := range e.Provenance {
		if tag == p {
			return true
		}
	}
	return false
}

// ResultSet maps domain names to merged resolution results for one scan
// run. Keys are unique: at most one entry exists per name.
//
// The merge rule is order-independent with respect to the set of inputs,
// so any arrival order from the worker pool produces the same final
// state:
//   - a resolved outcome always wins over a non-resolved one
//   - between two resolved results, address sets are unioned
//   - between two non-resolved results, the first-seen outcome is kept
//   - provenance tags are always unioned
type ResultSet struct {
	// Target is the root domain this set was built for.
	Target string

	entries map[string]*Entry
}

// NewResultSet creates an empty result set for the given root domain.
func NewResultSet(target string) *ResultSet {
	return &ResultSet{
		Target:  target,
		entries: make(map[string]*Entry),
	}
}

// Add folds one resolution result into the set, applying the merge rule.
func (s *ResultSet) Add(r ResolutionResult) {
	name := r.Candidate.Name
	if name == "" {
		return
	}

	existing, found := s.entries[name]
	if !found {
		s.entries[name] = &Entry{
			Name:       name,
			Outcome:    r.Outcome,
			Addresses:  dedupeSorted(r.Addresses),
			Reason:     r.Reason,
			Provenance: []Provenance{r.Candidate.Provenance},
		}
		return
	}

	existing.mergeProvenance(r.Candidate.Provenance)

	switch {
	case existing.Outcome == OutcomeResolved && r.Outcome == OutcomeResolved:
		existing.Addresses = dedupeSorted(append(existing.Addresses, r.Addresses...))
	case existing.Outcome != OutcomeResolved && r.Outcome == OutcomeResolved:
		existing.Outcome = OutcomeResolved
		existing.Addresses = dedupeSorted(r.Addresses)
		existing.Reason = ""
	default:
		// Neither result resolved, or only the existing one did:
		// first-seen outcome stays.
	}
}

// mergeProvenance unions a tag into the entry without duplicates.
func (e *Entry) mergeProvenance(p Provenance) {
	if !p.IsValid() || e.HasProvenance(p) {
		return
	}
	e.Provenance = append(e.Provenance, p)
	sort.Slice(e.Provenance, func(i, j int) bool { return e.Provenance[i] < e.Provenance[j] })
}

// Get returns the entry for a name, if present.
func (s *ResultSet) Get(name string) (*Entry, bool) {
	e, ok := s.entries[name]
	return e, ok
}

// Len returns the number of unique names in the set.
func (s *ResultSet) Len() int {
	return len(s.entries)
}

// Entries returns all entries sorted by name for deterministic output.
func (s *ResultSet) Entries() []*Entry {
	out := make([]*Entry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Resolved returns the entries that resolved, sorted by name.
func (s *ResultSet) Resolved() []*Entry {
	out := make([]*Entry, 0)
	for _, e := range s.Entries() {
		if e.Outcome == OutcomeResolved {
			out = append(out, e)
		}
	}
	return out
}

// Stats returns entry counts grouped by outcome.
func (s *ResultSet) Stats() map[Outcome]int {
	stats := make(map[Outcome]int)
	for _, e := range s.entries {
		stats[e.Outcome]++
	}
	return stats
}

// dedupeSorted returns a sorted copy of addrs with duplicates removed.
func dedupeSorted(addrs []string) []string {
	if len(addrs) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(addrs))
	out := make([]string, 0, len(addrs))
	for _, a := range addrs {
		if _, dup := seen[a]; dup {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}
	sort.Strings(out)
	return out
}
