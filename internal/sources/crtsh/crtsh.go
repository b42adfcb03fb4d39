// internal/sources/crtsh/crtsh.go
package crtsh

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"sublance/internal/core/domain"
	"sublance/internal/core/ports"
	"sublance/internal/platform/errors"
	"sublance/internal/platform/httpclient"
	"sublance/internal/platform/logx"
)

const baseURL = "https://crt.sh"

// CRT is a passive source querying the crt.sh certificate-transparency
// index for names observed in issued certificates.
type CRT struct {
	client *httpclient.Client
	logger logx.Logger
}

// New creates a crt.sh source. The client is rate limited to stay
// polite with crt.sh, which enforces no documented limit.
func New(logger logx.Logger) ports.PassiveSource {
	httpConfig := httpclient.Config{
		Timeout:        30 * time.Second,
		MaxRetries:     3,
		RetryBackoff:   2 * time.Second,
		RateLimit:      2.0,
		RateLimitBurst: 1,
	}

	return &CRT{
		client: httpclient.New(httpConfig, logger),
		logger: logger.With("source", "crtsh"),
	}
}

// Name returns the source name.
func (c *CRT) Name() string {
	return "crtsh"
}

// Names queries crt.sh for certificates matching %.<root> and extracts
// the in-scope host names.
func (c *CRT) Names(ctx context.Context, target domain.Target) ([]string, error) {
	c.logger.Debug("querying crt.sh", "target", target.Root)

	url := fmt.Sprintf("%s/?q=%%25.%s&output=json", baseURL, target.Root)

	body, err := c.client.FetchJSON(ctx, url)
	if err != nil {
		return nil, errors.Wrap(err, "crt.sh request failed")
	}

	var records []certRecord
	if err := json.Unmarshal(body, &records); err != nil {
		// crt.sh answers HTML when overloaded
		return nil, errors.Wrapf(errors.ErrInvalidResponse, "crt.sh JSON parse failed: %v", err)
	}

	names := extractNames(records, target)

	c.logger.Info("crt.sh query completed",
		"target", target.Root,
		"records", len(records),
		"names", len(names),
	)

	return names, nil
}

// extractNames flattens certificate records into a deduplicated name
// list. name_value can hold multiple hosts separated by newlines;
// wildcard prefixes are stripped because *.x is not a resolvable name
// but x itself is worth probing.
func extractNames(records []certRecord, target domain.Target) []string {
	seen := make(map[string]struct{})
	names := make([]string, 0, len(records))

	for _, record := range records {
		for _, host := range strings.Split(record.NameValue, "\n") {
			host = strings.ToLower(strings.TrimSpace(host))
			host = strings.TrimPrefix(host, "*.")
			if host == "" || !target.IsInScope(host) {
				continue
			}
			if _, dup := seen[host]; dup {
				continue
			}
			seen[host] = struct{}{}
			names = append(names, host)
		}
	}

	return names
}

// Close implements ports.PassiveSource. The HTTP client holds no
// resources needing release.
func (c *CRT) Close() error {
	return nil
}

// certRecord is one certificate row in the crt.sh JSON output.
type certRecord struct {
	IssuerName   string `json:"issuer_name"`
	NameValue    string `json:"name_value"`
	NotAfter     string `json:"not_after"`
	NotBefore    string `json:"not_before"`
	SerialNumber string `json:"serial_number"`
}
