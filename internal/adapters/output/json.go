// internal/adapters/output/json.go
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"sublance/internal/core/domain"
	"sublance/internal/core/ports"
)

// jsonDocument is the on-disk shape of a JSON export.
type jsonDocument struct {
	Target      string          `json:"target"`
	GeneratedAt time.Time       `json:"generated_at"`
	Entries     []*domain.Entry `json:"entries"`
	Stats       map[string]int  `json:"stats"`
}

// JSONExporter writes one JSON document per result set.
type JSONExporter struct{}

// NewJSONExporter creates a JSON exporter.
func NewJSONExporter() ports.WriterExporter {
	return &JSONExporter{}
}

// Name returns the exporter name.
func (e *JSONExporter) Name() string {
	return "json"
}

// Export writes <target>.json into the output directory.
func (e *JSONExporter) Export(set *domain.ResultSet, opts ports.ExportOptions) error {
	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	path := filepath.Join(opts.OutputDir, sanitizeFilename(set.Target)+".json")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	return e.ExportToWriter(set, f, opts)
}

// ExportToWriter writes the JSON document to an arbitrary writer.
func (e *JSONExporter) ExportToWriter(set *domain.ResultSet, w io.Writer, opts ports.ExportOptions) error {
	doc := jsonDocument{
		Target:      set.Target,
		GeneratedAt: time.Now().UTC(),
		Entries:     selectEntries(set, opts),
		Stats:       statsByOutcome(set),
	}

	enc := json.NewEncoder(w)
	if opts.Pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode JSON export: %w", err)
	}
	return nil
}

// selectEntries applies the ResolvedOnly filter.
func selectEntries(set *domain.ResultSet, opts ports.ExportOptions) []*domain.Entry {
	if opts.ResolvedOnly {
		return set.Resolved()
	}
	return set.Entries()
}

// statsByOutcome flattens outcome counts to string keys for stable JSON.
func statsByOutcome(set *domain.ResultSet) map[string]int {
	stats := make(map[string]int)
	for outcome, count := range set.Stats() {
		stats[string(outcome)] = count
	}
	return stats
}
