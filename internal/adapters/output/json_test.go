// internal/adapters/output/json_test.go
package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"sublance/internal/core/domain"
	"sublance/internal/core/ports"
)

func sampleResultSet() *domain.ResultSet {
	set := domain.NewResultSet("example.com")
	set.Add(domain.NewResolved(domain.NewCandidate("www.example.com", domain.ProvenanceBruteForce), []string{"93.184.216.34"}, 0))
	set.Add(domain.NewResolved(domain.NewCandidate("mail.example.com", domain.ProvenancePassive), []string{"93.184.216.35"}, 0))
	set.Add(domain.NewUnresolved(domain.NewCandidate("api.example.com", domain.ProvenanceBruteForce), 0))
	set.Add(domain.NewErrored(domain.NewCandidate("broken.example.com", domain.ProvenancePassive), "servfail", 0))
	return set
}

func TestJSONExportToWriter(t *testing.T) {
	var buf bytes.Buffer
	err := NewJSONExporter().ExportToWriter(sampleResultSet(), &buf, ports.ExportOptions{})
	if err != nil {
		t.Fatalf("ExportToWriter() = %v", err)
	}

	var doc struct {
		Target  string `json:"target"`
		Entries []struct {
			Name       string   `json:"name"`
			Outcome    string   `json:"outcome"`
			Addresses  []string `json:"addresses"`
			Reason     string   `json:"reason"`
			Provenance []string `json:"provenance"`
		} `json:"entries"`
		Stats map[string]int `json:"stats"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if doc.Target != "example.com" {
		t.Errorf("target = %q", doc.Target)
	}
	if len(doc.Entries) != 4 {
		t.Fatalf("entries = %d, want 4", len(doc.Entries))
	}

	// Entries are sorted by name.
	if doc.Entries[0].Name != "api.example.com" {
		t.Errorf("first entry = %q, want api.example.com", doc.Entries[0].Name)
	}

	if doc.Stats["resolved"] != 2 || doc.Stats["unresolved"] != 1 || doc.Stats["error"] != 1 {
		t.Errorf("stats = %v", doc.Stats)
	}

	for _, e := range doc.Entries {
		if e.Name == "broken.example.com" && e.Reason != "servfail" {
			t.Errorf("reason = %q, want servfail", e.Reason)
		}
		if e.Name == "www.example.com" && len(e.Addresses) != 1 {
			t.Errorf("addresses = %v", e.Addresses)
		}
	}
}

func TestJSONExportResolvedOnly(t *testing.T) {
	var buf bytes.Buffer
	err := NewJSONExporter().ExportToWriter(sampleResultSet(), &buf, ports.ExportOptions{ResolvedOnly: true})
	if err != nil {
		t.Fatalf("ExportToWriter() = %v", err)
	}

	var doc struct {
		Entries []struct {
			Outcome string `json:"outcome"`
		} `json:"entries"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if len(doc.Entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(doc.Entries))
	}
	for _, e := range doc.Entries {
		if e.Outcome != "resolved" {
			t.Errorf("outcome = %q, want resolved", e.Outcome)
		}
	}
}

func TestJSONExportWritesFile(t *testing.T) {
	dir := t.TempDir()

	err := NewJSONExporter().Export(sampleResultSet(), ports.ExportOptions{OutputDir: dir, Pretty: true})
	if err != nil {
		t.Fatalf("Export() = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "example.com.json"))
	if err != nil {
		t.Fatalf("export file missing: %v", err)
	}
	if !json.Valid(data) {
		t.Error("export file is not valid JSON")
	}
}

func TestJSONExportCreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")

	err := NewJSONExporter().Export(sampleResultSet(), ports.ExportOptions{OutputDir: dir})
	if err != nil {
		t.Fatalf("Export() = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "example.com.json")); err != nil {
		t.Errorf("export file missing: %v", err)
	}
}
