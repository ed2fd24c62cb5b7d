// internal/service/auth/auth_test.go
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"portfolio-service/internal/domain/portfolio"
	xerrors "portfolio-service/internal/pkg/errors"
	"portfolio-service/internal/pkg/oidc"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeProfileRepo is an in-memory ProfileRepository.
type fakeProfileRepo struct {
	mu       sync.Mutex
	profiles map[string]*portfolio.Profile

	findErr   error
	createErr error
	updates   int
	creates   int
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]*portfolio.Profile)}
}

func (r *fakeProfileRepo) FindByID(_ context.Context, id string) (*portfolio.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	p, ok := r.profiles[id]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *fakeProfileRepo) CreateIfAbsent(_ context.Context, p *portfolio.Profile) (*portfolio.Profile, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return nil, false, r.createErr
	}
	if existing, ok := r.profiles[p.ID]; ok {
		clone := *existing
		return &clone, false, nil
	}
	clone := *p
	r.profiles[p.ID] = &clone
	r.creates++
	out := clone
	return &out, true, nil
}

func (r *fakeProfileRepo) Update(_ context.Context, p *portfolio.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.profiles[p.ID]; !ok {
		return xerrors.ErrNotFound
	}
	clone := *p
	r.profiles[p.ID] = &clone
	r.updates++
	return nil
}

func (r *fakeProfileRepo) UpdateAvatar(_ context.Context, id, avatarURL string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[id]
	if !ok {
		return xerrors.ErrNotFound
	}
	p.AvatarURL = avatarURL
	return nil
}

func claimsFor(subject, email, name string) *oidc.Claims {
	return &oidc.Claims{
		Email: email,
		Name:  name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: subject,
		},
	}
}

func newTestService(repo *fakeProfileRepo, provider *oidc.Provider) *AuthService {
	return NewAuthService(nil, provider, repo, zap.NewNop())
}

func TestEnsureProfileCreatesFromClaims(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := newTestService(repo, nil)

	p, err := svc.EnsureProfile(context.Background(), claimsFor("auth0|u1", "ada@example.com", "Ada Lovelace"))
	require.NoError(t, err)

	assert.Equal(t, "auth0|u1", p.ID)
	assert.Equal(t, "Ada", p.FirstName)
	assert.Equal(t, "Lovelace", p.LastName)
	assert.Equal(t, "ada@example.com", p.Email)
}

func TestEnsureProfileIsIdempotent(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := newTestService(repo, nil)
	claims := claimsFor("auth0|u1", "ada@example.com", "Ada Lovelace")

	first, err := svc.EnsureProfile(context.Background(), claims)
	require.NoError(t, err)

	second, err := svc.EnsureProfile(context.Background(), claims)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, repo.creates)
}

func TestEnsureProfileBackfillsMissingEmail(t *testing.T) {
	repo := newFakeProfileRepo()
	repo.profiles["auth0|u1"] = &portfolio.Profile{
		ID:        "auth0|u1",
		FirstName: "Ada",
		LastName:  "Lovelace",
	}
	svc := newTestService(repo, nil)

	p, err := svc.EnsureProfile(context.Background(), claimsFor("auth0|u1", "ada@example.com", ""))
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", p.Email)
}

func TestEnsureProfileNeverOverwrites(t *testing.T) {
	repo := newFakeProfileRepo()
	repo.profiles["auth0|u1"] = &portfolio.Profile{
		ID:        "auth0|u1",
		FirstName: "A.",
		LastName:  "Byron",
		Email:     "countess@example.com",
	}
	svc := newTestService(repo, nil)

	p, err := svc.EnsureProfile(context.Background(), claimsFor("auth0|u1", "ada@example.com", "Ada Lovelace"))
	require.NoError(t, err)

	assert.Equal(t, "A.", p.FirstName)
	assert.Equal(t, "Byron", p.LastName)
	assert.Equal(t, "countess@example.com", p.Email)
	assert.Equal(t, 0, repo.updates)
}

func TestEnsureProfileRequiresSubject(t *testing.T) {
	svc := newTestService(newFakeProfileRepo(), nil)

	_, err := svc.EnsureProfile(context.Background(), claimsFor("", "ada@example.com", "Ada"))
	assert.Error(t, err)
}

func TestEnsureProfilePropagatesLookupFailure(t *testing.T) {
	repo := newFakeProfileRepo()
	repo.findErr = errors.New("connection refused")
	svc := newTestService(repo, nil)

	_, err := svc.EnsureProfile(context.Background(), claimsFor("auth0|u1", "", "Ada"))
	assert.Error(t, err)
	assert.Equal(t, 0, repo.creates)
}

func TestHandleCallbackSurvivesProvisioningFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/oauth/token":
			json.NewEncoder(w).Encode(oidc.TokenSet{
				AccessToken:  "access-1",
				RefreshToken: "refresh-1",
			})
		case "/userinfo":
			json.NewEncoder(w).Encode(map[string]string{
				"sub":  "auth0|u1",
				"name": "Ada Lovelace",
			})
		}
	}))
	defer srv.Close()

	provider := oidc.NewProvider(oidc.ProviderConfig{
		TokenURL:    srv.URL + "/oauth/token",
		UserInfoURL: srv.URL + "/userinfo",
	})

	repo := newFakeProfileRepo()
	repo.createErr = errors.New("database down")
	svc := newTestService(repo, provider)

	// The session is still established when provisioning fails.
	tokens, err := svc.HandleCallback(context.Background(), "the-code")
	require.NoError(t, err)
	assert.Equal(t, "access-1", tokens.AccessToken)
	assert.Equal(t, "refresh-1", tokens.RefreshToken)
}

func TestHandleCallbackProvisionsProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/oauth/token":
			json.NewEncoder(w).Encode(oidc.TokenSet{AccessToken: "access-1"})
		case "/userinfo":
			json.NewEncoder(w).Encode(map[string]string{
				"sub":   "auth0|u1",
				"email": "ada@example.com",
				"name":  "Ada Lovelace",
			})
		}
	}))
	defer srv.Close()

	provider := oidc.NewProvider(oidc.ProviderConfig{
		TokenURL:    srv.URL + "/oauth/token",
		UserInfoURL: srv.URL + "/userinfo",
	})

	repo := newFakeProfileRepo()
	svc := newTestService(repo, provider)

	_, err := svc.HandleCallback(context.Background(), "the-code")
	require.NoError(t, err)

	p, err := repo.FindByID(context.Background(), "auth0|u1")
	require.NoError(t, err)
	assert.Equal(t, "Ada", p.FirstName)
	assert.Equal(t, "Lovelace", p.LastName)
}

func TestHandleCallbackExchangeFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid_grant"})
	}))
	defer srv.Close()

	provider := oidc.NewProvider(oidc.ProviderConfig{TokenURL: srv.URL})
	svc := newTestService(newFakeProfileRepo(), provider)

	_, err := svc.HandleCallback(context.Background(), "stale-code")
	assert.ErrorIs(t, err, xerrors.ErrUpstreamRejected)
}

func TestRefreshTokensRequiresCredential(t *testing.T) {
	svc := newTestService(newFakeProfileRepo(), nil)

	_, err := svc.RefreshTokens(context.Background(), "")
	assert.ErrorIs(t, err, xerrors.ErrMissingToken)
}
