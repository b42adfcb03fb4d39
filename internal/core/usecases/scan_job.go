// internal/core/usecases/scan_job.go
package usecases

import (
	"context"
	"time"

	"sublance/internal/core/domain"
	"sublance/internal/core/ports"
	"sublance/internal/platform/logx"
)

// ScanJob is the unit of work for one root domain: passive collection,
// candidate generation, bounded resolution, aggregation. Each job owns
// its pool instance and concurrency budget; jobs for different domains
// share no resolver state and may run concurrently.
//
// Fatal errors (invalid target, unbuildable pool) surface at
// construction. Run always returns a ResultSet — possibly sparse,
// possibly partial after cancellation — and per-candidate failures are
// data inside it, not errors.
type ScanJob struct {
	target     domain.Target
	labels     []string
	passives   []ports.PassiveSource
	pool       *ResolverPool
	aggregator *Aggregator
	logger     logx.Logger
}

// ScanJobConfig configures a scan job.
type ScanJobConfig struct {
	// Target is the root domain to enumerate.
	Target string

	// Workers is the job's lookup concurrency budget. Zero selects
	// DefaultWorkers.
	Workers int

	// LookupTimeout bounds each DNS lookup. Zero selects the default.
	LookupTimeout time.Duration

	// Labels is the brute-force wordlist. Empty skips brute force.
	Labels []string

	// Passives are the passive sources to query. A failing source
	// contributes nothing; it never aborts the job.
	Passives []ports.PassiveSource

	// Resolver is the injected DNS client. Nil selects the standard one.
	Resolver ports.HostResolver

	// Logger is the job logger. Nil selects the default.
	Logger logx.Logger
}

// NewScanJob validates the target, builds the job's pool and wires the
// pipeline. Returns ErrEmptyTarget/ErrInvalidDomain for bad input and
// ErrPoolConfig for an unbuildable pool, all before any lookups run.
func NewScanJob(cfg ScanJobConfig) (*ScanJob, error) {
	target := domain.NewTarget(cfg.Target)
	if err := target.Validate(); err != nil {
		return nil, err
	}

	if cfg.Workers == 0 {
		cfg.Workers = DefaultWorkers
	}
	if cfg.Logger == nil {
		cfg.Logger = logx.New()
	}
	logger := cfg.Logger.With("target", target.Root)

	pool, err := NewResolverPool(PoolConfig{
		Workers:       cfg.Workers,
		LookupTimeout: cfg.LookupTimeout,
		Resolver:      cfg.Resolver,
		Logger:        logger,
	})
	if err != nil {
		return nil, err
	}

	return &ScanJob{
		target:     *target,
		labels:     cfg.Labels,
		passives:   cfg.Passives,
		pool:       pool,
		aggregator: NewAggregator(logger),
		logger:     logger,
	}, nil
}

// Target returns the job's validated root domain.
func (j *ScanJob) Target() string {
	return j.target.Root
}

// Run executes the job. On cancellation, in-flight lookups finish or
// time out, no new candidates are pulled, and the partially built
// ResultSet is still returned: partial results are valid, not an error.
func (j *ScanJob) Run(ctx context.Context) (*domain.ResultSet, error) {
	start := time.Now()

	passive := j.collectPassive(ctx)

	generator, err := NewGenerator(j.target, j.labels, passive, j.logger)
	if err != nil {
		// Target was validated at construction; only a mutated job
		// could land here.
		return domain.NewResultSet(j.target.Root), err
	}

	results := j.pool.Run(ctx, generator.Stream(ctx))
	set := j.aggregator.Collect(j.target.Root, results)

	j.logger.Info("scan job finished",
		"entries", set.Len(),
		"resolved", len(set.Resolved()),
		"cancelled", ctx.Err() != nil,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	return set, nil
}

// collectPassive queries every passive source, degrading provider
// failures to an empty contribution.
func (j *ScanJob) collectPassive(ctx context.Context) []string {
	names := make([]string, 0)

	for _, src := range j.passives {
		if ctx.Err() != nil {
			break
		}

		found, err := src.Names(ctx, j.target)
		if err != nil {
			j.logger.Warn("passive source failed, continuing without it",
				"source", src.Name(),
				"error", err.Error(),
			)
			continue
		}

		j.logger.Debug("passive source contributed",
			"source", src.Name(),
			"names", len(found),
		)
		names = append(names, found...)
	}

	return names
}
