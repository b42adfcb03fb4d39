// internal/adapters/output/csv_test.go
package output

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"sublance/internal/core/domain"
	"sublance/internal/core/ports"
)

func TestCSVExportToWriter(t *testing.T) {
	var buf bytes.Buffer
	err := NewCSVExporter().ExportToWriter(sampleResultSet(), &buf, ports.ExportOptions{})
	if err != nil {
		t.Fatalf("ExportToWriter() = %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}

	if !reflect.DeepEqual(rows[0], csvHeader) {
		t.Errorf("header = %v, want %v", rows[0], csvHeader)
	}
	if len(rows) != 5 {
		t.Fatalf("rows = %d, want header + 4 entries", len(rows))
	}

	// Rows follow entry order, sorted by name.
	if rows[1][0] != "api.example.com" {
		t.Errorf("first row name = %q", rows[1][0])
	}

	for _, row := range rows[1:] {
		if row[0] == "www.example.com" {
			if row[1] != "resolved" {
				t.Errorf("www outcome = %q", row[1])
			}
			if row[2] != "93.184.216.34" {
				t.Errorf("www addresses = %q", row[2])
			}
			if row[3] != "bruteforce" {
				t.Errorf("www provenance = %q", row[3])
			}
		}
		if row[0] == "broken.example.com" && row[4] != "servfail" {
			t.Errorf("broken reason = %q", row[4])
		}
	}
}

func TestCSVExportResolvedOnly(t *testing.T) {
	var buf bytes.Buffer
	err := NewCSVExporter().ExportToWriter(sampleResultSet(), &buf, ports.ExportOptions{ResolvedOnly: true})
	if err != nil {
		t.Fatalf("ExportToWriter() = %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header + 2 resolved", len(rows))
	}
}

func TestCSVExportJoinsMultipleValues(t *testing.T) {
	set := domain.NewResultSet("example.com")
	set.Add(domain.NewResolved(domain.NewCandidate("www.example.com", domain.ProvenanceBruteForce), []string{"1.1.1.1", "2.2.2.2"}, 0))
	set.Add(domain.NewResolved(domain.NewCandidate("www.example.com", domain.ProvenancePassive), []string{"3.3.3.3"}, 0))

	var buf bytes.Buffer
	if err := NewCSVExporter().ExportToWriter(set, &buf, ports.ExportOptions{}); err != nil {
		t.Fatalf("ExportToWriter() = %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}

	if rows[1][2] != "1.1.1.1;2.2.2.2;3.3.3.3" {
		t.Errorf("addresses cell = %q", rows[1][2])
	}
	if rows[1][3] != "bruteforce;passive" {
		t.Errorf("provenance cell = %q", rows[1][3])
	}
}

func TestCSVExportWritesFile(t *testing.T) {
	dir := t.TempDir()

	err := NewCSVExporter().Export(sampleResultSet(), ports.ExportOptions{OutputDir: dir})
	if err != nil {
		t.Fatalf("Export() = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "example.com.csv")); err != nil {
		t.Errorf("export file missing: %v", err)
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain domain", "example.com", "example.com"},
		{"slash replaced", "a/b", "a_b"},
		{"spaces replaced", "a b", "a_b"},
		{"keeps hyphen and underscore", "a-b_c.d", "a-b_c.d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeFilename(tt.in); got != tt.want {
				t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
