// internal/core/usecases/aggregator.go
package usecases

import (
	"sublance/internal/core/domain"
	"sublance/internal/platform/logx"
)

// Aggregator folds resolution results into a ResultSet. The worker pool
// emits in completion order, which is non-deterministic; the ResultSet
// merge rule is order-independent, so the final state depends only on
// the set of results, never on arrival order.
type Aggregator struct {
	logger logx.Logger
}

// NewAggregator creates an aggregator.
func NewAggregator(logger logx.Logger) *Aggregator {
	if logger == nil {
		logger = logx.New()
	}
	return &Aggregator{
		logger: logger.With("component", "aggregator"),
	}
}

// Collect drains the result stream into a new ResultSet for the target.
// It returns once the stream closes; the set then holds exactly one
// entry per distinct name seen.
func (a *Aggregator) Collect(target string, results <-chan domain.ResolutionResult) *domain.ResultSet {
	set := domain.NewResultSet(target)
	seen := 0

	for r := range results {
		set.Add(r)
		seen++
	}

	a.logger.Debug("aggregation finished",
		"target", target,
		"results", seen,
		"entries", set.Len(),
	)

	return set
}

// Aggregate folds an already-materialized result slice. Used by callers
// that hold results in memory (and by tests exercising order
// independence directly).
func (a *Aggregator) Aggregate(target string, results []domain.ResolutionResult) *domain.ResultSet {
	set := domain.NewResultSet(target)
	for _, r := range results {
		set.Add(r)
	}
	return set
}
