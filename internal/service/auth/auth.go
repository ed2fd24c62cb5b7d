// internal/service/auth/auth.go
package auth

import (
	"context"
	"fmt"

	"portfolio-service/internal/domain/portfolio"
	xerrors "portfolio-service/internal/pkg/errors"
	"portfolio-service/internal/pkg/oidc"

	"go.uber.org/zap"
)

// AuthService glues token verification, profile auto-provisioning and the
// provider exchanges together for the handlers.
type AuthService struct {
	verifier    *oidc.Verifier
	provider    *oidc.Provider
	profileRepo portfolio.ProfileRepository
	logger      *zap.Logger
}

func NewAuthService(
	verifier *oidc.Verifier,
	provider *oidc.Provider,
	profileRepo portfolio.ProfileRepository,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		verifier:    verifier,
		provider:    provider,
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// ValidateToken verifies a bearer credential and returns its claims.
func (s *AuthService) ValidateToken(ctx context.Context, token string) (*oidc.Claims, error) {
	return s.verifier.Verify(ctx, token)
}

// LoginURL builds the provider authorize redirect for the given state.
func (s *AuthService) LoginURL(state string) string {
	return s.provider.AuthorizeURL(state)
}

// EnsureProfile guarantees a local profile exists for the claims' subject,
// creating it from claims or backfilling missing fields. Repeated calls
// with the same claims converge on the same stored profile.
func (s *AuthService) EnsureProfile(ctx context.Context, claims *oidc.Claims) (*portfolio.Profile, error) {
	if err := claims.RequireSubject(); err != nil {
		return nil, err
	}

	existing, err := s.profileRepo.FindByID(ctx, claims.Subject)
	if err != nil && !xerrors.Is(err, xerrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up profile: %w", err)
	}

	if existing != nil {
		return s.backfill(ctx, existing, claims)
	}

	first, last := claims.FirstLastName()
	profile, created, err := s.profileRepo.CreateIfAbsent(ctx, &portfolio.Profile{
		ID:        claims.Subject,
		FirstName: first,
		LastName:  last,
		Email:     claims.Email,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	if created {
		s.logger.Info("auto-created profile",
			zap.String("profile_id", profile.ID),
		)
	}

	return profile, nil
}

// backfill fills in email and names from claims when the stored profile is
// missing them. Non-empty stored values are never overwritten.
func (s *AuthService) backfill(ctx context.Context, p *portfolio.Profile, claims *oidc.Claims) (*portfolio.Profile, error) {
	changed := false

	if p.Email == "" && claims.Email != "" {
		p.Email = claims.Email
		changed = true
	}

	if p.FirstName == "" && p.LastName == "" {
		first, last := claims.FirstLastName()
		if first != "" || last != "" {
			p.FirstName = first
			p.LastName = last
			changed = true
		}
	}

	if !changed {
		return p, nil
	}

	if err := s.profileRepo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to backfill profile: %w", err)
	}

	s.logger.Info("backfilled profile from claims",
		zap.String("profile_id", p.ID),
	)

	return p, nil
}

// HandleCallback completes the authorization-code flow: exchange the code,
// resolve the user's claims, and provision the local profile. Provisioning
// failure is logged but never fails the exchange; the session can still be
// established and profile setup completed later.
func (s *AuthService) HandleCallback(ctx context.Context, code string) (*oidc.TokenSet, error) {
	tokens, err := s.provider.Exchange(ctx, code)
	if err != nil {
		return nil, err
	}

	claims, err := s.resolveClaims(ctx, tokens.AccessToken)
	if err != nil {
		s.logger.Warn("could not resolve claims after code exchange",
			zap.Error(err),
		)
		return tokens, nil
	}

	if _, err := s.EnsureProfile(ctx, claims); err != nil {
		s.logger.Error("profile provisioning failed during callback",
			zap.String("subject", claims.Subject),
			zap.Error(err),
		)
	}

	return tokens, nil
}

// resolveClaims prefers the provider's user-info endpoint and falls back
// to decoding the access token itself when that lookup fails.
func (s *AuthService) resolveClaims(ctx context.Context, accessToken string) (*oidc.Claims, error) {
	claims, err := s.provider.UserInfo(ctx, accessToken)
	if err == nil {
		return claims, nil
	}

	s.logger.Warn("user info lookup failed, decoding access token instead",
		zap.Error(err),
	)

	return s.verifier.Verify(ctx, accessToken)
}

// RefreshTokens rotates the access token using the refresh credential.
func (s *AuthService) RefreshTokens(ctx context.Context, refreshToken string) (*oidc.TokenSet, error) {
	if refreshToken == "" {
		return nil, fmt.Errorf("%w: no refresh credential", xerrors.ErrMissingToken)
	}
	return s.provider.Refresh(ctx, refreshToken)
}
