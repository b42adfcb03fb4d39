// internal/adapters/output/csv.go
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"sublance/internal/core/domain"
	"sublance/internal/core/ports"
)

// csvHeader is the column layout of a CSV export.
var csvHeader = []string{"name", "outcome", "addresses", "provenance", "reason"}

// CSVExporter writes one CSV file per result set.
type CSVExporter struct{}

// NewCSVExporter creates a CSV exporter.
func NewCSVExporter() ports.WriterExporter {
	return &CSVExporter{}
}

// Name returns the exporter name.
func (e *CSVExporter) Name() string {
	return "csv"
}

// Export writes <target>.csv into the output directory.
func (e *CSVExporter) Export(set *domain.ResultSet, opts ports.ExportOptions) error {
	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	path := filepath.Join(opts.OutputDir, sanitizeFilename(set.Target)+".csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	return e.ExportToWriter(set, f, opts)
}

// ExportToWriter writes CSV rows to an arbitrary writer. Multi-valued
// columns (addresses, provenance) are joined with ';' inside the cell.
func (e *CSVExporter) ExportToWriter(set *domain.ResultSet, w io.Writer, opts ports.ExportOptions) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, entry := range selectEntries(set, opts) {
		row := []string{
			entry.Name,
			string(entry.Outcome),
			strings.Join(entry.Addresses, ";"),
			joinProvenance(entry.Provenance),
			entry.Reason,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func joinProvenance(tags []domain.Provenance) string {
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = string(t)
	}
	return strings.Join(parts, ";")
}

// sanitizeFilename keeps export file names filesystem-safe.
func sanitizeFilename(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			return r
		case r >= 'A' && r <= 'Z':
			return r
		default:
			return '_'
		}
	}, name)
}
