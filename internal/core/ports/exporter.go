// internal/core/ports/exporter.go
package ports

import (
	"io"

	"sublance/internal/core/domain"
)

// Exporter is the port for report sinks consuming a final ResultSet.
// Serialization format and presentation are entirely the sink's concern.
type Exporter interface {
	// Name returns the exporter name (e.g. "json", "csv", "table").
	Name() string

	// Export writes the result set according to the options.
	Export(set *domain.ResultSet, opts ExportOptions) error
}

// WriterExporter additionally exports to an arbitrary io.Writer.
type WriterExporter interface {
	Exporter

	// ExportToWriter writes the result set to a custom writer.
	ExportToWriter(set *domain.ResultSet, w io.Writer, opts ExportOptions) error
}

// ExportOptions configures an export.
type ExportOptions struct {
	// OutputDir is the directory output files are written into.
	OutputDir string

	// Pretty enables human-readable formatting where the format allows.
	Pretty bool

	// ResolvedOnly limits the export to entries that resolved.
	ResolvedOnly bool
}

// DefaultExportOptions returns the default export configuration.
func DefaultExportOptions() ExportOptions {
	return ExportOptions{
		OutputDir:    "sublance_out",
		Pretty:       true,
		ResolvedOnly: false,
	}
}
