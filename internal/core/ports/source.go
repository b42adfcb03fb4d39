// internal/core/ports/source.go
package ports

import (
	"context"

	"sublance/internal/core/domain"
)

// PassiveSource supplies previously observed subdomain names for a target
// without actively probing it. A failing provider degrades to an empty
// contribution at the scan-job level; it never aborts the job.
type PassiveSource interface {
	// Name returns the unique source name (e.g. "crtsh", "hackertarget").
	Name() string

	// Names returns raw candidate names for the target. Returned names
	// may be unnormalized; the candidate generator folds and filters them.
	Names(ctx context.Context, target domain.Target) ([]string, error)

	// Close releases resources held by the source.
	Close() error
}

// WordlistProvider supplies the labels to prepend to the base domain
// during the brute-force pass. An empty label list is valid input and
// means brute force is skipped.
type WordlistProvider interface {
	// Labels returns the wordlist labels.
	Labels() ([]string, error)
}
