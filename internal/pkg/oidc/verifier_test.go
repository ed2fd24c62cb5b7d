// internal/pkg/oidc/verifier_test.go
package oidc

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	xerrors "portfolio-service/internal/pkg/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer   = "https://issuer.test/"
	testAudience = "https://api.test"
	testKid      = "test-key-1"
)

func newSigningKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return key
}

// newJWKSServer serves a key document carrying the given public keys.
func newJWKSServer(t *testing.T, keys map[string]*rsa.PublicKey) *httptest.Server {
	t.Helper()

	doc := jwksDocument{}
	for kid, pub := range keys {
		doc.Keys = append(doc.Keys, jwksKey{
			Kty: "RSA",
			Kid: kid,
			Use: "sig",
			Alg: "RS256",
			N:   base64.RawURLEncoding.EncodeToString(pub.N.Bytes()),
			E:   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(pub.E)).Bytes()),
		})
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(doc)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func signToken(t *testing.T, key *rsa.PrivateKey, kid string, claims *Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["kid"] = kid
	raw, err := token.SignedString(key)
	require.NoError(t, err)
	return raw
}

func validClaims(subject string) *Claims {
	return &Claims{
		Email: "ada@example.com",
		Name:  "Ada Lovelace",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			Audience:  jwt.ClaimStrings{testAudience},
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func newTestVerifier(t *testing.T, key *rsa.PrivateKey) *Verifier {
	t.Helper()
	srv := newJWKSServer(t, map[string]*rsa.PublicKey{testKid: &key.PublicKey})
	return NewVerifier(NewKeySetCache(srv.URL), testIssuer, testAudience, nil)
}

func TestVerifyValidToken(t *testing.T) {
	key := newSigningKey(t)
	v := newTestVerifier(t, key)

	raw := signToken(t, key, testKid, validClaims("auth0|user-1"))

	claims, err := v.Verify(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, "auth0|user-1", claims.Subject)
	assert.Equal(t, "ada@example.com", claims.Email)
}

func TestVerifyMissingToken(t *testing.T) {
	v := newTestVerifier(t, newSigningKey(t))

	_, err := v.Verify(context.Background(), "")
	assert.ErrorIs(t, err, xerrors.ErrMissingToken)
}

func TestVerifyMalformedToken(t *testing.T) {
	v := newTestVerifier(t, newSigningKey(t))

	for _, raw := range []string{"garbage", "two.segments", "a.b.c.d"} {
		_, err := v.Verify(context.Background(), raw)
		assert.ErrorIs(t, err, xerrors.ErrMalformedToken, "token %q", raw)
	}
}

func TestVerifyMalformedTokenSkipsKeyFetch(t *testing.T) {
	var fetches atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetches.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	v := NewVerifier(NewKeySetCache(srv.URL), testIssuer, testAudience, nil)

	// Structural rejection happens before any key-set lookup.
	for _, raw := range []string{"", "garbage", "two.segments", "a.b.c.d"} {
		_, err := v.Verify(context.Background(), raw)
		require.Error(t, err, "token %q", raw)
	}

	assert.Equal(t, int32(0), fetches.Load())
}

func TestVerifyUnknownSigningKey(t *testing.T) {
	key := newSigningKey(t)
	v := newTestVerifier(t, key)

	raw := signToken(t, key, "rotated-away", validClaims("auth0|user-1"))

	_, err := v.Verify(context.Background(), raw)
	assert.ErrorIs(t, err, xerrors.ErrUnknownSigningKey)
}

func TestVerifyExpiredToken(t *testing.T) {
	key := newSigningKey(t)
	v := newTestVerifier(t, key)

	claims := validClaims("auth0|user-1")
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
	raw := signToken(t, key, testKid, claims)

	_, err := v.Verify(context.Background(), raw)
	assert.ErrorIs(t, err, xerrors.ErrInvalidToken)
}

func TestVerifyWrongIssuer(t *testing.T) {
	key := newSigningKey(t)
	v := newTestVerifier(t, key)

	claims := validClaims("auth0|user-1")
	claims.Issuer = "https://evil.test/"
	raw := signToken(t, key, testKid, claims)

	_, err := v.Verify(context.Background(), raw)
	assert.ErrorIs(t, err, xerrors.ErrInvalidToken)
}

func TestVerifyWrongAudience(t *testing.T) {
	key := newSigningKey(t)
	v := newTestVerifier(t, key)

	claims := validClaims("auth0|user-1")
	claims.Audience = jwt.ClaimStrings{"https://other-api.test"}
	raw := signToken(t, key, testKid, claims)

	_, err := v.Verify(context.Background(), raw)
	assert.ErrorIs(t, err, xerrors.ErrInvalidToken)
}

func TestVerifyRejectsUnexpectedAlgorithm(t *testing.T) {
	v := newTestVerifier(t, newSigningKey(t))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, validClaims("auth0|user-1"))
	token.Header["kid"] = testKid
	raw, err := token.SignedString([]byte("shared-secret"))
	require.NoError(t, err)

	_, err = v.Verify(context.Background(), raw)
	assert.ErrorIs(t, err, xerrors.ErrInvalidToken)
}

func TestVerifyTokenWithoutSubjectStillVerifies(t *testing.T) {
	key := newSigningKey(t)
	v := newTestVerifier(t, key)

	claims := validClaims("")
	raw := signToken(t, key, testKid, claims)

	got, err := v.Verify(context.Background(), raw)
	require.NoError(t, err)
	assert.Empty(t, got.Subject)
	assert.Error(t, got.RequireSubject())
}
