// Package identity validates institutional email addresses and derives the
// student's display name from the address local part.
package identity

import (
	"strings"

	"github.com/varunm/batchswap/internal/pkg/apperrors"
)

// lastNameSuffixLen is the number of trailing characters stripped from the
// second dot segment of the local part. Institutional addresses embed a
// join-year/stream suffix after the last name (e.g. "anita.rao2022b").
const lastNameSuffixLen = 4

// Identity is the name information derived from a verified email address.
type Identity struct {
	Email     string
	FirstName string
	LastName  string
}

// Resolve checks that email matches the firstname.lastname@<domain> pattern
// and derives the display name. The domain comparison is case-insensitive.
func Resolve(email, domain string) (Identity, error) {
	at := strings.LastIndex(email, "@")
	if at <= 0 {
		return Identity{}, apperrors.ErrInvalidEmailDomain
	}

	local := email[:at]
	if !strings.EqualFold(email[at+1:], domain) {
		return Identity{}, apperrors.ErrInvalidEmailDomain
	}

	first, last, ok := strings.Cut(local, ".")
	if !ok || first == "" || last == "" {
		return Identity{}, apperrors.ErrInvalidEmailDomain
	}

	return Identity{
		Email:     email,
		FirstName: capitalize(first),
		LastName:  trimSuffix(capitalize(last)),
	}, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// trimSuffix strips the registration artifact from the last name segment.
// Segments shorter than the suffix degrade to an empty last name.
func trimSuffix(s string) string {
	if len(s) <= lastNameSuffixLen {
		return ""
	}
	return s[:len(s)-lastNameSuffixLen]
}
