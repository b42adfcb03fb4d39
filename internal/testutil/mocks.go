// internal/testutil/mocks.go
package testutil

import (
	"context"
	"net"
	"sync"
	"time"

	"sublance/internal/core/domain"
)

// FakeResolver is a deterministic HostResolver for tests. Hosts map to
// fixed address sets; Errs overrides individual hosts with an error;
// everything else answers NXDOMAIN. An optional Delay simulates lookup
// latency and honors context cancellation.
type FakeResolver struct {
	Hosts map[string][]string
	Errs  map[string]error
	Delay time.Duration

	mu         sync.Mutex
	calls      []string
	inFlight   int
	maxInFligt int
}

// LookupHost implements ports.HostResolver.
func (f *FakeResolver) LookupHost(ctx context.Context, host string) ([]string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, host)
	f.inFlight++
	if f.inFlight > f.maxInFligt {
		f.maxInFligt = f.inFlight
	}
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.inFlight--
		f.mu.Unlock()
	}()

	if f.Delay > 0 {
		select {
		case <-time.After(f.Delay):
		case <-ctx.Done():
			return nil, &net.DNSError{Err: "lookup cancelled", Name: host, IsTimeout: true}
		}
	}

	if err, ok := f.Errs[host]; ok {
		return nil, err
	}
	if addrs, ok := f.Hosts[host]; ok {
		return append([]string(nil), addrs...), nil
	}

	return nil, &net.DNSError{Err: "no such host", Name: host, IsNotFound: true}
}

// Calls returns the hosts looked up so far.
func (f *FakeResolver) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// MaxInFlight returns the peak number of concurrent lookups observed.
func (f *FakeResolver) MaxInFlight() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.maxInFligt
}

// NXDOMAINError builds the resolver error for a nonexistent host.
func NXDOMAINError(host string) error {
	return &net.DNSError{Err: "no such host", Name: host, IsNotFound: true}
}

// ServfailError builds a generic resolver failure.
func ServfailError(host string) error {
	return &net.DNSError{Err: "server misbehaving", Name: host, IsTemporary: true}
}

// TimeoutError builds a resolver timeout.
func TimeoutError(host string) error {
	return &net.DNSError{Err: "i/o timeout", Name: host, IsTimeout: true}
}

// FakePassiveSource is a canned PassiveSource for tests.
type FakePassiveSource struct {
	SourceName string
	Results    []string
	Err        error
}

// Name implements ports.PassiveSource.
func (f *FakePassiveSource) Name() string {
	if f.SourceName == "" {
		return "fake"
	}
	return f.SourceName
}

// Names implements ports.PassiveSource.
func (f *FakePassiveSource) Names(ctx context.Context, target domain.Target) ([]string, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	return append([]string(nil), f.Results...), nil
}

// Close implements ports.PassiveSource.
func (f *FakePassiveSource) Close() error {
	return nil
}
