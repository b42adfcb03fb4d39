// internal/adapters/output/table.go
package output

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"sublance/internal/core/domain"
)

// WriteTable prints a terminal-readable table of the result set.
func WriteTable(set *domain.ResultSet) error {
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)

	fmt.Fprintf(w, "\n=== sublance results: %s ===\n", set.Target)
	fmt.Fprintf(w, "Entries:\t%d\n", set.Len())
	fmt.Fprintf(w, "Resolved:\t%d\n\n", len(set.Resolved()))

	entries := set.Entries()
	if len(entries) > 0 {
		fmt.Fprintln(w, "NAME\tOUTCOME\tADDRESSES\tPROVENANCE")
		fmt.Fprintln(w, "----\t-------\t---------\t----------")

		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				e.Name,
				e.Outcome,
				strings.Join(e.Addresses, ","),
				joinProvenance(e.Provenance),
			)
		}
	} else {
		fmt.Fprintln(w, "No candidates produced.")
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush table: %w", err)
	}

	stats := set.Stats()
	if len(stats) > 0 {
		fmt.Fprintln(os.Stdout, "\nOutcomes:")
		for _, outcome := range []domain.Outcome{
			domain.OutcomeResolved,
			domain.OutcomeUnresolved,
			domain.OutcomeTimeout,
			domain.OutcomeError,
		} {
			if count := stats[outcome]; count > 0 {
				fmt.Fprintf(os.Stdout, "  - %s: %d\n", outcome, count)
			}
		}
	}

	fmt.Fprintln(os.Stdout)
	return nil
}
