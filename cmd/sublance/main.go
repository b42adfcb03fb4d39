// cmd/sublance/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/pflag"

	"sublance/internal/adapters/output"
	"sublance/internal/core/domain"
	"sublance/internal/core/ports"
	"sublance/internal/core/usecases"
	"sublance/internal/platform/config"
	"sublance/internal/platform/logx"
	"sublance/internal/platform/ui"
	"sublance/internal/sources/crtsh"
	"sublance/internal/sources/hackertarget"
	"sublance/internal/sources/wordlist"
)

var (
	// Set with -ldflags at build time.
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// jobOutcome carries one finished scan job back to main.
type jobOutcome struct {
	set     *domain.ResultSet
	elapsed time.Duration
	err     error
}

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: configuration load failed: %v\n", err)
		os.Exit(2)
	}

	if cfg.PrintVersion {
		fmt.Printf("sublance %s (commit %s, built %s)\n", version, commit, date)
		os.Exit(0)
	}

	if len(cfg.Domains) == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one root domain is required")
		fmt.Fprintln(os.Stderr, "Usage: sublance -d <domain> [-d <domain> ...]")
		fmt.Fprintln(os.Stderr, "Try: sublance -h for help")
		os.Exit(2)
	}

	logger := logx.New()
	presenter := ui.New(cfg.Quiet)
	presenter.Banner(version)

	logger.Info("sublance starting",
		"version", version,
		"domains", len(cfg.Domains),
		"workers", cfg.Workers,
		"passive", cfg.Passive,
		"brute", cfg.BruteForce,
	)

	ctx, cancel := rootContextWithSignals(cfg.Timeout())
	defer cancel()

	labels, err := loadLabels(cfg)
	if err != nil {
		logger.Err(err, "phase", "wordlist")
		os.Exit(2)
	}

	passives := buildPassiveSources(cfg, logger)
	defer closeSources(passives, logger)

	jobs, err := buildJobs(cfg, labels, passives, logger)
	if err != nil {
		logger.Err(err, "phase", "job-build")
		os.Exit(2)
	}

	// One spinner only when a single job owns the terminal; concurrent
	// jobs would interleave spinner frames.
	var spinner *pterm.SpinnerPrinter
	if len(jobs) == 1 {
		spinner = presenter.ScanStarted(jobs[0].Target(), cfg.Workers)
	} else {
		presenter.Info(fmt.Sprintf("Scanning %d domains (%d workers each)", len(jobs), cfg.Workers))
	}

	outcomes := runJobs(ctx, jobs)

	failed := 0
	for i, job := range jobs {
		oc := outcomes[i]
		if oc.err != nil {
			logger.Err(oc.err, "phase", "run", "target", job.Target())
			failed++
			continue
		}

		if spinner != nil {
			presenter.ScanFinished(spinner, oc.set, oc.elapsed)
			spinner = nil
		} else {
			presenter.ScanFinished(nil, oc.set, oc.elapsed)
		}

		if err := writeOutputs(cfg, oc.set); err != nil {
			logger.Err(err, "phase", "output", "target", job.Target())
			failed++
		}
	}

	logger.Info("sublance finished",
		"jobs", len(jobs),
		"failed", failed,
		"cancelled", ctx.Err() != nil,
	)

	if failed > 0 {
		os.Exit(1)
	}
}

// loadLabels picks the brute-force wordlist per the config. A missing
// wordlist file is a fatal configuration error, not a degradation.
func loadLabels(cfg config.Config) ([]string, error) {
	if !cfg.BruteForce {
		return nil, nil
	}

	var provider ports.WordlistProvider
	if cfg.Wordlist != "" {
		provider = wordlist.NewFile(cfg.Wordlist)
	} else {
		provider = wordlist.NewBuiltin()
	}

	labels, err := provider.Labels()
	if err != nil {
		return nil, fmt.Errorf("failed to load wordlist: %w", err)
	}
	return labels, nil
}

// buildPassiveSources assembles the enabled passive providers.
func buildPassiveSources(cfg config.Config, logger logx.Logger) []ports.PassiveSource {
	if !cfg.Passive {
		return nil
	}

	sources := make([]ports.PassiveSource, 0, 2)
	if cfg.Sources.CRTSh {
		sources = append(sources, crtsh.New(logger))
	}
	if cfg.Sources.HackerTarget {
		sources = append(sources, hackertarget.New(logger))
	}

	logger.Debug("passive sources built", "count", len(sources))
	return sources
}

func closeSources(sources []ports.PassiveSource, logger logx.Logger) {
	for _, src := range sources {
		if err := src.Close(); err != nil {
			logger.Warn("failed to close source",
				"source", src.Name(),
				"error", err.Error(),
			)
		}
	}
}

// buildJobs constructs one scan job per root domain. Any invalid domain
// fails the whole invocation before lookups start.
func buildJobs(cfg config.Config, labels []string, passives []ports.PassiveSource, logger logx.Logger) ([]*usecases.ScanJob, error) {
	jobs := make([]*usecases.ScanJob, 0, len(cfg.Domains))

	for _, root := range cfg.Domains {
		job, err := usecases.NewScanJob(usecases.ScanJobConfig{
			Target:        root,
			Workers:       cfg.Workers,
			LookupTimeout: cfg.LookupTimeout(),
			Labels:        labels,
			Passives:      passives,
			Logger:        logger,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to build job for %s: %w", root, err)
		}
		jobs = append(jobs, job)
	}

	return jobs, nil
}

// runJobs executes every job concurrently and returns their outcomes in
// job order.
func runJobs(ctx context.Context, jobs []*usecases.ScanJob) []jobOutcome {
	outcomes := make([]jobOutcome, len(jobs))

	var wg sync.WaitGroup
	for i, job := range jobs {
		wg.Add(1)
		go func(i int, job *usecases.ScanJob) {
			defer wg.Done()

			start := time.Now()
			set, err := job.Run(ctx)
			outcomes[i] = jobOutcome{
				set:     set,
				elapsed: time.Since(start),
				err:     err,
			}
		}(i, job)
	}
	wg.Wait()

	return outcomes
}

// writeOutputs exports one finished result set per the config.
func writeOutputs(cfg config.Config, set *domain.ResultSet) error {
	opts := ports.ExportOptions{
		OutputDir: cfg.Output.Dir,
		Pretty:    true,
	}

	if cfg.Output.JSON {
		if err := output.NewJSONExporter().Export(set, opts); err != nil {
			return fmt.Errorf("json output: %w", err)
		}
	}

	if cfg.Output.CSV {
		if err := output.NewCSVExporter().Export(set, opts); err != nil {
			return fmt.Errorf("csv output: %w", err)
		}
	}

	if !cfg.Output.TableDisabled {
		if err := output.WriteTable(set); err != nil {
			return fmt.Errorf("table output: %w", err)
		}
	}

	return nil
}

// rootContextWithSignals creates the root context with an optional
// global timeout and SIGINT/SIGTERM cancellation.
func rootContextWithSignals(timeout time.Duration) (context.Context, context.CancelFunc) {
	var base context.Context
	var baseCancel context.CancelFunc

	if timeout > 0 {
		base, baseCancel = context.WithTimeout(context.Background(), timeout)
	} else {
		base, baseCancel = context.WithCancel(context.Background())
	}

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-ch:
			baseCancel()
		case <-base.Done():
		}
	}()

	cleanup := func() {
		signal.Stop(ch)
		baseCancel()
	}

	return base, cleanup
}
