// internal/platform/validator/validator.go
package validator

import (
	"net"
	"regexp"
	"strings"

	"golang.org/x/net/idna"
)

var (
	// Accepts dot-separated labels of letters, digits and hyphens, with
	// no leading/trailing hyphen per label. International names are
	// expected in punycode form after NormalizeDomain.
	domainRegex = regexp.MustCompile(`^([a-zA-Z0-9]([a-zA-Z0-9\-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z0-9]([a-zA-Z0-9\-]{0,61}[a-zA-Z0-9])?$`)

	labelRegex = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9\-]{0,61}[a-zA-Z0-9])?$`)
)

// IsDomain reports whether a string is a syntactically valid DNS name
// with at least two labels. IP addresses are rejected.
func IsDomain(domain string) bool {
	if len(domain) == 0 || len(domain) > 253 {
		return false
	}

	if !domainRegex.MatchString(domain) {
		return false
	}

	return net.ParseIP(domain) == nil
}

// IsLabel reports whether a string is a valid single DNS label, as read
// from a brute-force wordlist.
func IsLabel(label string) bool {
	return labelRegex.MatchString(label)
}

// IsSubdomain reports whether subdomain is strictly below baseDomain.
func IsSubdomain(subdomain, baseDomain string) bool {
	subdomain = strings.ToLower(strings.TrimSpace(subdomain))
	baseDomain = strings.ToLower(strings.TrimSpace(baseDomain))

	if subdomain == baseDomain {
		return false
	}

	return strings.HasSuffix(subdomain, "."+baseDomain)
}

// NormalizeDomain folds a domain name to its canonical lookup form:
// trimmed, lowercased, no trailing dot, IDN labels converted to punycode.
func NormalizeDomain(domain string) string {
	domain = strings.ToLower(strings.TrimSpace(domain))
	domain = strings.TrimSuffix(domain, ".")

	// Convert international names to their ASCII (punycode) form.
	// On conversion failure keep the folded input; IsDomain rejects it.
	if ascii, err := idna.Lookup.ToASCII(domain); err == nil {
		domain = ascii
	}

	return domain
}

// IsIP reports whether a string is a valid IPv4 or IPv6 address.
func IsIP(ip string) bool {
	return net.ParseIP(ip) != nil
}
