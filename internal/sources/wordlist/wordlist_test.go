// internal/sources/wordlist/wordlist_test.go
package wordlist

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestFileLabels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	content := `# common labels
www
api

  mail
# trailing comment
dev
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write wordlist: %v", err)
	}

	labels, err := NewFile(path).Labels()
	if err != nil {
		t.Fatalf("Labels() = %v", err)
	}

	want := []string{"www", "api", "mail", "dev"}
	if !reflect.DeepEqual(labels, want) {
		t.Errorf("Labels() = %v, want %v", labels, want)
	}
}

func TestFileLabelsMissingFile(t *testing.T) {
	_, err := NewFile("/nonexistent/words.txt").Labels()
	if err == nil {
		t.Fatal("Labels() = nil, want error for missing file")
	}
}

func TestBuiltinLabels(t *testing.T) {
	labels, err := NewBuiltin().Labels()
	if err != nil {
		t.Fatalf("Labels() = %v", err)
	}

	if len(labels) == 0 {
		t.Fatal("builtin list is empty")
	}

	found := false
	for _, l := range labels {
		if l == "www" {
			found = true
			break
		}
	}
	if !found {
		t.Error("builtin list is missing www")
	}
}

func TestBuiltinLabelsReturnsCopy(t *testing.T) {
	first, _ := NewBuiltin().Labels()
	first[0] = "mutated"

	second, _ := NewBuiltin().Labels()
	if second[0] == "mutated" {
		t.Error("Labels() shares the underlying array across calls")
	}
}
