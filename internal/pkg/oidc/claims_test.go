// internal/pkg/oidc/claims_test.go
package oidc

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestFirstLastNamePrefersExplicitClaims(t *testing.T) {
	c := &Claims{
		GivenName:  "Ada",
		FamilyName: "Lovelace",
		Name:       "Countess of Lovelace",
	}

	first, last := c.FirstLastName()
	assert.Equal(t, "Ada", first)
	assert.Equal(t, "Lovelace", last)
}

func TestFirstLastNameSplitsDisplayName(t *testing.T) {
	cases := []struct {
		name  string
		first string
		last  string
	}{
		{"Ada Lovelace", "Ada", "Lovelace"},
		{"Ada", "Ada", ""},
		{"  Grace   Hopper  ", "Grace", "Hopper"},
		{"Mary Jane Watson", "Mary", "Jane Watson"},
		{"", "", ""},
		{"   ", "", ""},
	}

	for _, tc := range cases {
		c := &Claims{Name: tc.name}
		first, last := c.FirstLastName()
		assert.Equal(t, tc.first, first, "name %q", tc.name)
		assert.Equal(t, tc.last, last, "name %q", tc.name)
	}
}

func TestFirstLastNamePartialExplicitClaims(t *testing.T) {
	// One explicit name claim is enough to skip the display-name split.
	c := &Claims{GivenName: "Ada", Name: "Someone Else"}

	first, last := c.FirstLastName()
	assert.Equal(t, "Ada", first)
	assert.Equal(t, "", last)
}

func TestRequireSubject(t *testing.T) {
	withSubject := &Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "auth0|user-1"}}
	assert.NoError(t, withSubject.RequireSubject())

	withoutSubject := &Claims{}
	assert.Error(t, withoutSubject.RequireSubject())
}
