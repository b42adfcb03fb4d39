// internal/platform/ui/presenter.go
package ui

import (
	"fmt"
	"time"

	"github.com/pterm/pterm"

	"sublance/internal/core/domain"
)

// Presenter renders scan progress and summaries with pterm. A quiet
// presenter suppresses all terminal output so the process can run in
// pipelines on stderr logs alone.
type Presenter struct {
	quiet bool
}

// New creates a presenter.
func New(quiet bool) *Presenter {
	return &Presenter{quiet: quiet}
}

// Banner prints the application header.
func (p *Presenter) Banner(version string) {
	if p.quiet {
		return
	}

	pterm.DefaultHeader.
		WithBackgroundStyle(pterm.NewStyle(pterm.BgCyan)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Println("sublance - subdomain enumeration " + version)
	pterm.Println()
}

// ScanStarted announces a scan job and returns a spinner tracking it.
// The returned spinner is nil in quiet mode; ScanFinished accepts nil.
func (p *Presenter) ScanStarted(target string, workers int) *pterm.SpinnerPrinter {
	if p.quiet {
		return nil
	}

	spinner, _ := pterm.DefaultSpinner.
		WithStyle(pterm.NewStyle(pterm.FgCyan)).
		Start(fmt.Sprintf("Scanning %s (%d workers)", pterm.Cyan(target), workers))
	return spinner
}

// ScanFinished stops the spinner and prints the per-job summary table.
func (p *Presenter) ScanFinished(spinner *pterm.SpinnerPrinter, set *domain.ResultSet, elapsed time.Duration) {
	if p.quiet {
		return
	}

	if spinner != nil {
		spinner.Success(fmt.Sprintf("%s: %d names, %d resolved in %s",
			set.Target, set.Len(), len(set.Resolved()), elapsed.Round(time.Millisecond)))
	}

	stats := set.Stats()
	rows := pterm.TableData{
		{"Outcome", "Count"},
		{"resolved", fmt.Sprintf("%d", stats[domain.OutcomeResolved])},
		{"unresolved", fmt.Sprintf("%d", stats[domain.OutcomeUnresolved])},
		{"timeout", fmt.Sprintf("%d", stats[domain.OutcomeTimeout])},
		{"error", fmt.Sprintf("%d", stats[domain.OutcomeError])},
	}

	_ = pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
	pterm.Println()
}

// Info prints an informational line.
func (p *Presenter) Info(msg string) {
	if p.quiet {
		return
	}
	pterm.Info.Println(msg)
}

// Warning prints a warning line.
func (p *Presenter) Warning(msg string) {
	if p.quiet {
		return
	}
	pterm.Warning.Println(msg)
}

// Error prints an error line.
func (p *Presenter) Error(msg string) {
	if p.quiet {
		return
	}
	pterm.Error.Println(msg)
}
