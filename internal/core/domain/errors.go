// internal/core/domain/errors.go
package domain

import "errors"

// Fatal input and configuration errors. Per-candidate lookup failures are
// never surfaced as errors; they are recorded as outcomes in the
// ResultSet.
var (
	// ErrEmptyTarget indicates a scan was requested without a root domain.
	ErrEmptyTarget = errors.New("target domain is empty")

	// ErrInvalidDomain indicates the base domain is not a syntactically
	// valid DNS name. Surfaced before the scan starts.
	ErrInvalidDomain = errors.New("invalid domain name")

	// ErrPoolConfig indicates the resolver pool cannot be constructed
	// from the given configuration. Surfaced before any lookups run.
	ErrPoolConfig = errors.New("invalid resolver pool configuration")
)
