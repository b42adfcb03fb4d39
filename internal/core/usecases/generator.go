// internal/core/usecases/generator.go
package usecases

import (
	"context"
	"strings"

	"sublance/internal/core/domain"
	"sublance/internal/platform/logx"
	"sublance/internal/platform/validator"
)

// Generator merges wordlist expansion and passive-source names into a
// single deduplicated candidate stream for one target.
//
// The stream is lazy and single-pass: candidates are produced on demand
// as the consumer pulls, and a generator cannot be rewound. Build a new
// one to regenerate.
type Generator struct {
	target  domain.Target
	labels  []string
	passive []string
	logger  logx.Logger
}

// NewGenerator validates the target and builds a generator. An empty
// label list means the brute-force pass is skipped; an empty passive
// list is equally valid.
func NewGenerator(target domain.Target, labels, passive []string, logger logx.Logger) (*Generator, error) {
	if err := target.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logx.New()
	}

	return &Generator{
		target:  target,
		labels:  labels,
		passive: passive,
		logger:  logger.With("component", "generator"),
	}, nil
}

// Stream returns the candidate stream. Names are case-folded before
// deduplication, so a name reaches the channel at most once regardless
// of input casing or how many inputs propose it. Brute-force candidates
// are emitted first, then passive names; out-of-scope and syntactically
// invalid names are dropped. The channel closes when both inputs are
// exhausted or ctx is cancelled.
func (g *Generator) Stream(ctx context.Context) <-chan domain.Candidate {
	out := make(chan domain.Candidate)

	go func() {
		defer close(out)

		seen := make(map[string]struct{})
		emitted, dropped := 0, 0

		emit := func(name string, provenance domain.Provenance) bool {
			name = validator.NormalizeDomain(name)
			if name == "" || !validator.IsDomain(name) || !g.target.IsInScope(name) {
				dropped++
				return true
			}
			if _, dup := seen[name]; dup {
				return true
			}
			seen[name] = struct{}{}

			select {
			case out <- domain.NewCandidate(name, provenance):
				emitted++
				return true
			case <-ctx.Done():
				return false
			}
		}

		for _, label := range g.labels {
			label = strings.TrimSpace(label)
			if label == "" || !validator.IsLabel(label) {
				dropped++
				continue
			}
			if !emit(label+"."+g.target.Root, domain.ProvenanceBruteForce) {
				return
			}
		}

		for _, name := range g.passive {
			if !emit(name, domain.ProvenancePassive) {
				return
			}
		}

		g.logger.Debug("candidate stream exhausted",
			"target", g.target.Root,
			"emitted", emitted,
			"dropped", dropped,
		)
	}()

	return out
}
