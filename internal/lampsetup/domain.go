package lampsetup

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultDomain is used when the operator submits an empty domain.
const DefaultDomain = "example.com"

var domainPattern = regexp.MustCompile(`^[a-zA-Z0-9.-]+$`)

// ValidateDomain accepts letters, digits, '.' and '-'. A name made only of
// dots is rejected since it would resolve outside the web root.
func ValidateDomain(domain string) error {
	if !domainPattern.MatchString(domain) || strings.Trim(domain, ".") == "" {
		return fmt.Errorf("%w: %q", ErrInvalidDomain, domain)
	}
	return nil
}

// NormalizeDomain applies the empty-input default and validates the result.
func NormalizeDomain(input string) (string, error) {
	if input == "" {
		return DefaultDomain, nil
	}
	if err := ValidateDomain(input); err != nil {
		return "", err
	}
	return input, nil
}
