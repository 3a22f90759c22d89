package valueobjects

import (
	"strings"
	"unicode"

	"github.com/Digital-Maples-Labs-Inc/aitasol-sub000/domain/config"
	pkgerrors "github.com/Digital-Maples-Labs-Inc/aitasol-sub000/pkg/errors"
)

// Slug is the human-readable unique key for a page. Page-view consumers
// look pages up by slug, never by store id.
type Slug struct {
	value string
}

// NewSlug creates a slug with validation using default configuration
func NewSlug(s string) (Slug, error) {
	return NewSlugWithConfig(s, config.DefaultDomainConfig())
}

// NewSlugWithConfig creates a slug with validation and configuration
func NewSlugWithConfig(s string, cfg *config.DomainConfig) (Slug, error) {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}

	s = strings.ToLower(strings.TrimSpace(s))

	if len(s) < cfg.MinSlugLength {
		return Slug{}, pkgerrors.NewValidationError("slug cannot be empty")
	}
	if len(s) > cfg.MaxSlugLength {
		return Slug{}, pkgerrors.NewValidationError("slug exceeds maximum length")
	}
	if !isValidSlug(s) {
		return Slug{}, pkgerrors.NewValidationError("slug may only contain lowercase letters, digits and hyphens")
	}

	return Slug{value: s}, nil
}

// String returns the string representation of the slug
func (s Slug) String() string {
	return s.value
}

// Equals checks if two slugs are equal
func (s Slug) Equals(other Slug) bool {
	return s.value == other.value
}

// IsZero checks if the slug is the zero value
func (s Slug) IsZero() bool {
	return s.value == ""
}

func isValidSlug(s string) bool {
	if strings.HasPrefix(s, "-") || strings.HasSuffix(s, "-") {
		return false
	}
	for _, r := range s {
		if !unicode.IsLower(r) && !unicode.IsDigit(r) && r != '-' {
			return false
		}
	}
	return true
}
