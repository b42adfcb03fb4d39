// internal/sources/wordlist/wordlist.go
package wordlist

import (
	"bufio"
	"os"
	"strings"

	"sublance/internal/core/ports"
	"sublance/internal/platform/errors"
)

// File is a WordlistProvider reading labels from a file, one per line.
// Blank lines and lines starting with '#' are skipped.
type File struct {
	path string
}

// NewFile creates a file-backed provider. The file is read on Labels,
// not at construction.
func NewFile(path string) ports.WordlistProvider {
	return &File{path: path}
}

// Labels reads the wordlist file.
func (f *File) Labels() ([]string, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open wordlist %s", f.path)
	}
	defer file.Close()

	labels := make([]string, 0)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		label := strings.TrimSpace(scanner.Text())
		if label == "" || strings.HasPrefix(label, "#") {
			continue
		}
		labels = append(labels, label)
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to read wordlist %s", f.path)
	}

	return labels, nil
}

// Builtin is a WordlistProvider serving the built-in default label list,
// used when no wordlist file is configured.
type Builtin struct{}

// NewBuiltin creates a provider for the built-in list.
func NewBuiltin() ports.WordlistProvider {
	return &Builtin{}
}

// Labels returns a copy of the built-in labels.
func (b *Builtin) Labels() ([]string, error) {
	return append([]string(nil), defaultLabels...), nil
}

// defaultLabels covers the most common subdomain labels seen in the
// wild. Deliberately short: the builtin list is a fallback, real runs
// should pass a wordlist file.
var defaultLabels = []string{
	"www", "mail", "ftp", "webmail", "smtp", "pop", "imap", "ns1", "ns2",
	"api", "dev", "staging", "stage", "test", "demo", "beta", "alpha",
	"admin", "portal", "intranet", "vpn", "remote", "gateway", "proxy",
	"app", "apps", "web", "cdn", "static", "assets", "img", "media",
	"blog", "shop", "store", "docs", "wiki", "help", "support", "status",
	"git", "gitlab", "jenkins", "ci", "build", "monitor", "grafana",
	"db", "mysql", "postgres", "redis", "backup", "files", "cloud",
}
