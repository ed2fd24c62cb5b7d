// internal/pkg/oidc/claims.go
package oidc

import (
	"strings"
	"unicode"

	xerrors "portfolio-service/internal/pkg/errors"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the verified identity of a request. Subject is the only
// required field; the rest is whatever the provider chose to include.
type Claims struct {
	Email      string `json:"email,omitempty"`
	GivenName  string `json:"given_name,omitempty"`
	FamilyName string `json:"family_name,omitempty"`
	Name       string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// RequireSubject rejects claims without a subject identifier rather than
// letting them silently default downstream. Deliberately not named
// Validate: jwt/v5 would hook that into signature verification, and a
// token without sub must still verify.
func (c *Claims) RequireSubject() error {
	if c.Subject == "" {
		return xerrors.Wrap(xerrors.ErrInvalidInput, "claims carry no subject identifier")
	}
	return nil
}

// FirstLastName derives a first/last name pair. Explicit given_name and
// family_name claims win; otherwise the combined display name is split on
// the first whitespace run. No name claim at all yields empty strings.
func (c *Claims) FirstLastName() (string, string) {
	if c.GivenName != "" || c.FamilyName != "" {
		return c.GivenName, c.FamilyName
	}
	return splitDisplayName(c.Name)
}

func splitDisplayName(name string) (string, string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ""
	}
	i := strings.IndexFunc(name, unicode.IsSpace)
	if i < 0 {
		return name, ""
	}
	return name[:i], strings.TrimLeftFunc(name[i:], unicode.IsSpace)
}
