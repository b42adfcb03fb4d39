// internal/core/usecases/resolver_pool.go
package usecases

import (
	"context"
	"net"
	"sync"
	"time"

	"sublance/internal/core/domain"
	"sublance/internal/core/ports"
	"sublance/internal/platform/errors"
	"sublance/internal/platform/logx"
)

const (
	// DefaultWorkers is the lookup fan-out used when none is configured.
	DefaultWorkers = 50

	// DefaultLookupTimeout bounds a single DNS lookup.
	DefaultLookupTimeout = 5 * time.Second
)

// ResolverPool resolves candidates to A/AAAA records under bounded
// concurrency. Exactly Workers slots run at once; each slot pulls the
// next candidate from the shared stream only when it frees up, so the
// stream is never materialized ahead of demand (this is the pool's
// backpressure mechanism — channel receives are mutually exclusive
// across slots by construction).
//
// Individual lookup failures are local: they become UNRESOLVED, TIMEOUT
// or ERROR results, never pool-level errors. The pool itself only fails
// at construction time.
type ResolverPool struct {
	workers  int
	timeout  time.Duration
	resolver ports.HostResolver
	logger   logx.Logger
}

// PoolConfig configures a resolver pool.
type PoolConfig struct {
	// Workers is the number of concurrent lookup slots. Must be >= 1.
	Workers int

	// LookupTimeout bounds each individual lookup. Zero selects the
	// default. Lookups exceeding it yield TIMEOUT without retry.
	LookupTimeout time.Duration

	// Resolver is the injected DNS client. Nil selects net.DefaultResolver.
	Resolver ports.HostResolver

	// Logger is the scoped logger. Nil selects the default logger.
	Logger logx.Logger
}

// NewResolverPool validates the configuration and builds a pool.
// A worker count below 1 is a construction failure (ErrPoolConfig).
func NewResolverPool(cfg PoolConfig) (*ResolverPool, error) {
	if cfg.Workers < 1 {
		return nil, errors.Wrapf(domain.ErrPoolConfig, "workers must be >= 1, got %d", cfg.Workers)
	}
	if cfg.LookupTimeout <= 0 {
		cfg.LookupTimeout = DefaultLookupTimeout
	}
	if cfg.Resolver == nil {
		cfg.Resolver = net.DefaultResolver
	}
	if cfg.Logger == nil {
		cfg.Logger = logx.New()
	}

	return &ResolverPool{
		workers:  cfg.Workers,
		timeout:  cfg.LookupTimeout,
		resolver: cfg.Resolver,
		logger:   cfg.Logger.With("component", "resolver-pool"),
	}, nil
}

// Run consumes the candidate stream until it is exhausted or ctx is
// cancelled, emitting one result per consumed candidate in completion
// order (no ordering relationship with the input stream). The returned
// channel closes once all in-flight lookups have finished.
//
// On cancellation no new candidates are pulled; lookups already in
// flight are allowed to finish or time out, and their results are
// discarded rather than misreported as errors.
func (p *ResolverPool) Run(ctx context.Context, candidates <-chan domain.Candidate) <-chan domain.ResolutionResult {
	out := make(chan domain.ResolutionResult)

	var wg sync.WaitGroup
	p.logger.Debug("starting resolver pool", "workers", p.workers, "lookup_timeout", p.timeout)

	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			p.worker(ctx, id, candidates, out)
		}(i)
	}

	go func() {
		wg.Wait()
		close(out)
		p.logger.Debug("resolver pool drained")
	}()

	return out
}

// worker pulls candidates until the stream closes or ctx is cancelled.
func (p *ResolverPool) worker(ctx context.Context, id int, in <-chan domain.Candidate, out chan<- domain.ResolutionResult) {
	for {
		select {
		case <-ctx.Done():
			return
		case c, ok := <-in:
			if !ok {
				return
			}

			result, keep := p.lookup(ctx, c)
			if !keep {
				return
			}

			select {
			case out <- result:
			case <-ctx.Done():
				return
			}
		}
	}
}

// lookup resolves one candidate under the per-lookup deadline and
// classifies the outcome. The second return value is false when the
// job was cancelled mid-lookup and the result must be discarded.
func (p *ResolverPool) lookup(ctx context.Context, c domain.Candidate) (domain.ResolutionResult, bool) {
	lookupCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	start := time.Now()
	addresses, err := p.resolver.LookupHost(lookupCtx, c.Name)
	elapsed := time.Since(start)

	if err == nil {
		return domain.NewResolved(c, addresses, elapsed), true
	}

	// Job cancelled while the lookup was in flight: a partial result set
	// must contain only completed lookups, so this one is dropped.
	if ctx.Err() != nil {
		return domain.ResolutionResult{}, false
	}

	return p.classify(c, err, elapsed), true
}

// classify maps a resolver error to a per-candidate outcome.
// NXDOMAIN is UNRESOLVED, deadline overruns are TIMEOUT, everything else
// (SERVFAIL, refused, unreachable) is ERROR.
func (p *ResolverPool) classify(c domain.Candidate, err error, elapsed time.Duration) domain.ResolutionResult {
	var dnsErr *net.DNSError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return domain.NewTimeout(c, elapsed)
	case errors.As(err, &dnsErr):
		if dnsErr.IsTimeout {
			return domain.NewTimeout(c, elapsed)
		}
		if dnsErr.IsNotFound {
			return domain.NewUnresolved(c, elapsed)
		}
		return domain.NewErrored(c, dnsErr.Err, elapsed)
	default:
		return domain.NewErrored(c, err.Error(), elapsed)
	}
}
