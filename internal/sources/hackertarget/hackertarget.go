// internal/sources/hackertarget/hackertarget.go
package hackertarget

import (
	"context"
	"fmt"
	"strings"
	"time"

	"sublance/internal/core/domain"
	"sublance/internal/core/ports"
	"sublance/internal/platform/errors"
	"sublance/internal/platform/httpclient"
	"sublance/internal/platform/logx"
)

const baseURL = "https://api.hackertarget.com"

// HackerTarget is a passive source querying the hackertarget hostsearch
// API, which returns one "host,ip" line per observed subdomain.
type HackerTarget struct {
	client *httpclient.Client
	logger logx.Logger
}

// New creates a hackertarget source.
func New(logger logx.Logger) ports.PassiveSource {
	httpConfig := httpclient.Config{
		Timeout:        30 * time.Second,
		MaxRetries:     2,
		RetryBackoff:   2 * time.Second,
		RateLimit:      1.0,
		RateLimitBurst: 1,
	}

	return &HackerTarget{
		client: httpclient.New(httpConfig, logger),
		logger: logger.With("source", "hackertarget"),
	}
}

// Name returns the source name.
func (h *HackerTarget) Name() string {
	return "hackertarget"
}

// Names queries the hostsearch endpoint and extracts in-scope hosts.
func (h *HackerTarget) Names(ctx context.Context, target domain.Target) ([]string, error) {
	h.logger.Debug("querying hackertarget", "target", target.Root)

	url := fmt.Sprintf("%s/hostsearch/?q=%s", baseURL, target.Root)

	body, err := h.client.Fetch(ctx, url)
	if err != nil {
		return nil, errors.Wrap(err, "hackertarget request failed")
	}

	// The free tier answers quota errors as a plain-text body with a
	// 200 status.
	if strings.HasPrefix(string(body), "API count exceeded") {
		return nil, errors.Wrap(errors.ErrRateLimit, "hackertarget quota exhausted")
	}

	names := extractNames(string(body), target)

	h.logger.Info("hackertarget query completed",
		"target", target.Root,
		"names", len(names),
	)

	return names, nil
}

// extractNames parses "host,ip" lines into a deduplicated host list.
func extractNames(body string, target domain.Target) []string {
	seen := make(map[string]struct{})
	names := make([]string, 0)

	for _, line := range strings.Split(body, "\n") {
		parts := strings.SplitN(strings.TrimSpace(line), ",", 2)
		if len(parts) < 2 {
			continue
		}

		host := strings.ToLower(strings.TrimSpace(parts[0]))
		if host == "" || !target.IsInScope(host) {
			continue
		}
		if _, dup := seen[host]; dup {
			continue
		}
		seen[host] = struct{}{}
		names = append(names, host)
	}

	return names
}

// Close implements ports.PassiveSource.
func (h *HackerTarget) Close() error {
	return nil
}
