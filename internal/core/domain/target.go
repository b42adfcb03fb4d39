// internal/core/domain/target.go
package domain

import (
	"fmt"
	"strings"

	"sublance/internal/platform/validator"
)

// Target is the root domain a scan job enumerates.
type Target struct {
	// Root is the base domain candidates are generated for.
	Root string
}

// NewTarget creates a target with a normalized root domain.
func NewTarget(root string) *Target {
	return &Target{Root: validator.NormalizeDomain(root)}
}

// Validate checks that the root is a syntactically valid DNS name.
// It re-normalizes the root as a side effect.
func (t *Target) Validate() error {
	if strings.TrimSpace(t.Root) == "" {
		return ErrEmptyTarget
	}

	t.Root = validator.NormalizeDomain(t.Root)

	if !validator.IsDomain(t.Root) {
		return fmt.Errorf("%w: %s", ErrInvalidDomain, t.Root)
	}

	return nil
}

// IsInScope reports whether a name belongs to the target: the root itself
// or any subdomain of it.
func (t *Target) IsInScope(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == t.Root {
		return true
	}
	return strings.HasSuffix(name, "."+t.Root)
}

// String returns a readable representation of the target.
func (t *Target) String() string {
	return fmt.Sprintf("Target{root=%s}", t.Root)
}
