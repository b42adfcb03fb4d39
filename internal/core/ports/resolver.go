// internal/core/ports/resolver.go
package ports

import (
	"context"
	"net"
)

// HostResolver is the injected DNS client used by the resolver pool.
// *net.Resolver satisfies it; tests substitute a fake for deterministic
// lookups.
type HostResolver interface {
	// LookupHost resolves a host name to its A/AAAA addresses.
	LookupHost(ctx context.Context, host string) ([]string, error)
}

// Compile-time check that the standard resolver fits the port.
var _ HostResolver = (*net.Resolver)(nil)
