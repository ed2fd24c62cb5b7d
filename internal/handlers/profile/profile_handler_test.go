// internal/handlers/profile/profile_handler_test.go
package profile

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"portfolio-service/internal/domain/portfolio"
	xerrors "portfolio-service/internal/pkg/errors"
	portfolioUsecase "portfolio-service/internal/service/portfolio"
	"portfolio-service/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memProfiles struct {
	m map[string]*portfolio.Profile
}

func (r *memProfiles) FindByID(_ context.Context, id string) (*portfolio.Profile, error) {
	p, ok := r.m[id]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *memProfiles) CreateIfAbsent(_ context.Context, p *portfolio.Profile) (*portfolio.Profile, bool, error) {
	if existing, ok := r.m[p.ID]; ok {
		clone := *existing
		return &clone, false, nil
	}
	clone := *p
	r.m[p.ID] = &clone
	out := clone
	return &out, true, nil
}

func (r *memProfiles) Update(_ context.Context, p *portfolio.Profile) error {
	if _, ok := r.m[p.ID]; !ok {
		return xerrors.ErrNotFound
	}
	clone := *p
	r.m[p.ID] = &clone
	return nil
}

func (r *memProfiles) UpdateAvatar(_ context.Context, id, avatarURL string) error {
	p, ok := r.m[id]
	if !ok {
		return xerrors.ErrNotFound
	}
	p.AvatarURL = avatarURL
	return nil
}

type fixture struct {
	router   *gin.Engine
	profiles *memProfiles
	dir      string
}

// newFixture wires the handler behind a stub auth layer that injects the
// given subject.
func newFixture(t *testing.T, subject string) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	profiles := &memProfiles{m: map[string]*portfolio.Profile{}}
	svc := portfolioUsecase.NewPortfolioService(profiles, nil, nil, nil, nil, zap.NewNop())

	dir := t.TempDir()
	store, err := storage.NewLocalStore(dir, "http://localhost:8000/uploads")
	require.NoError(t, err)

	handler := NewProfileHandler(nil, svc, store, zap.NewNop())

	r := gin.New()
	authed := r.Group("/", func(c *gin.Context) {
		c.Set("subject", subject)
		c.Next()
	})
	authed.POST("/api/profile", handler.CreateProfile)
	authed.POST("/api/profile/:id/avatar", handler.UploadAvatar)
	r.Static("/uploads", dir)

	return &fixture{router: r, profiles: profiles, dir: dir}
}

func multipartBody(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestUploadAvatar(t *testing.T) {
	f := newFixture(t, "auth0|u1")
	f.profiles.m["auth0|u1"] = &portfolio.Profile{ID: "auth0|u1"}

	body, contentType := multipartBody(t, "me.png", []byte("png-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/profile/auth0%7Cu1/avatar", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Data portfolio.AvatarResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, strings.HasPrefix(resp.Data.AvatarURL, "http://localhost:8000/uploads/"))
	assert.True(t, strings.HasSuffix(resp.Data.AvatarURL, ".png"))

	// The URL was recorded, and fetching it through the static mount
	// serves back the uploaded bytes.
	assert.Equal(t, resp.Data.AvatarURL, f.profiles.m["auth0|u1"].AvatarURL)

	path := strings.TrimPrefix(resp.Data.AvatarURL, "http://localhost:8000")
	fetch := httptest.NewRequest(http.MethodGet, path, nil)
	fw := httptest.NewRecorder()
	f.router.ServeHTTP(fw, fetch)

	require.Equal(t, http.StatusOK, fw.Code, "GET %s", path)
	assert.Equal(t, []byte("png-bytes"), fw.Body.Bytes())
}

func TestUploadAvatarForbiddenForOtherProfile(t *testing.T) {
	f := newFixture(t, "auth0|u2")
	f.profiles.m["auth0|u1"] = &portfolio.Profile{ID: "auth0|u1"}

	body, contentType := multipartBody(t, "me.png", []byte("png-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/profile/auth0%7Cu1/avatar", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUploadAvatarRejectsUnsupportedType(t *testing.T) {
	f := newFixture(t, "auth0|u1")
	f.profiles.m["auth0|u1"] = &portfolio.Profile{ID: "auth0|u1"}

	body, contentType := multipartBody(t, "payload.svg", []byte("<svg/>"))
	req := httptest.NewRequest(http.MethodPost, "/api/profile/auth0%7Cu1/avatar", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadAvatarRequiresFile(t *testing.T) {
	f := newFixture(t, "auth0|u1")
	f.profiles.m["auth0|u1"] = &portfolio.Profile{ID: "auth0|u1"}

	req := httptest.NewRequest(http.MethodPost, "/api/profile/auth0%7Cu1/avatar", nil)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateProfile(t *testing.T) {
	f := newFixture(t, "auth0|u1")

	body := strings.NewReader(`{"FirstName":"Ada","LastName":"Lovelace","email":"ada@example.com"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/profile", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	p := f.profiles.m["auth0|u1"]
	require.NotNil(t, p)
	assert.Equal(t, "Ada", p.FirstName)
	assert.Equal(t, "ada@example.com", p.Email)
}

func TestCreateProfileConflict(t *testing.T) {
	f := newFixture(t, "auth0|u1")
	f.profiles.m["auth0|u1"] = &portfolio.Profile{ID: "auth0|u1"}

	body := strings.NewReader(`{"FirstName":"Ada"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/profile", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}
