// internal/pkg/oidc/verifier.go
package oidc

import (
	"context"
	"errors"
	"fmt"
	"strings"

	xerrors "portfolio-service/internal/pkg/errors"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier validates bearer credentials against the provider's key set.
type Verifier struct {
	keys       *KeySetCache
	issuer     string
	audience   string
	algorithms []string
}

func NewVerifier(keys *KeySetCache, issuer, audience string, algorithms []string) *Verifier {
	if len(algorithms) == 0 {
		algorithms = []string{"RS256"}
	}
	return &Verifier{
		keys:       keys,
		issuer:     issuer,
		audience:   audience,
		algorithms: algorithms,
	}
}

// Verify validates a raw token's structure, signature, issuer and audience
// and returns the decoded claims. The segment check runs before any key
// lookup or crypto work.
func (v *Verifier) Verify(ctx context.Context, raw string) (*Claims, error) {
	if raw == "" {
		return nil, xerrors.ErrMissingToken
	}

	if parts := strings.Split(raw, "."); len(parts) != 3 {
		return nil, fmt.Errorf("%w: expected 3 segments, got %d", xerrors.ErrMalformedToken, len(parts))
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods(v.algorithms),
		jwt.WithIssuer(v.issuer),
		jwt.WithAudience(v.audience),
	)

	claims := &Claims{}
	token, err := parser.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		kid, ok := t.Header["kid"].(string)
		if !ok || kid == "" {
			return nil, fmt.Errorf("%w: token declares no kid", xerrors.ErrUnknownSigningKey)
		}
		return v.keys.Key(ctx, kid)
	})
	if err != nil {
		// Keyfunc errors keep their taxonomy; everything else is an
		// invalid credential.
		if errors.Is(err, xerrors.ErrUnknownSigningKey) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", xerrors.ErrInvalidToken, err)
	}

	if !token.Valid {
		return nil, xerrors.ErrInvalidToken
	}

	return claims, nil
}
