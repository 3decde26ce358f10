package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/clipstack/clipstack/internal/api/service"
	"github.com/clipstack/clipstack/internal/api/store/drivers/sqlite"
	"github.com/clipstack/clipstack/pkg/httpx"
	"github.com/clipstack/clipstack/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *Router {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	tokens := &service.TokenService{
		Store:   st,
		Access:  jwtx.NewSigner("access-secret", time.Minute, "clipstack-test"),
		Refresh: jwtx.NewSigner("refresh-secret", time.Hour, "clipstack-test"),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := NewRouter("test", st, logger)
	r.TokenService = tokens
	r.UserService = &service.UserService{Store: st, Tokens: tokens}
	r.VideoService = &service.VideoService{Store: st}
	r.CommentService = &service.CommentService{Store: st}
	r.TweetService = &service.TweetService{Store: st}
	r.PlaylistService = &service.PlaylistService{Store: st}
	r.ToggleService = &service.ToggleService{Store: st}
	r.ApplyRoutes()
	return r
}

func doJSON(t *testing.T, r *Router, method, path, bearer string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(dst))
}

type tokensBody struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

func registerAndLogin(t *testing.T, r *Router, username string) (userID string, tokens tokensBody) {
	t.Helper()

	rec := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"username": username,
		"email":    username + "@example.com",
		"fullName": "Test " + username,
		"password": "correct horse battery staple",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created struct {
		ID string `json:"id"`
	}
	decodeBody(t, rec, &created)

	rec = doJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": username,
		"password": "correct horse battery staple",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var login struct {
		Tokens tokensBody `json:"tokens"`
	}
	decodeBody(t, rec, &login)
	return created.ID, login.Tokens
}

func TestAuthFlow(t *testing.T) {
	r := newTestRouter(t)
	userID, tokens := registerAndLogin(t, r, "alice")
	require.NotEmpty(t, userID)
	require.NotEmpty(t, tokens.AccessToken)

	t.Run("me requires a token", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/api/v1/users/me", "", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Header().Get("WWW-Authenticate"), "Bearer")
	})

	t.Run("me with bearer token", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/api/v1/users/me", tokens.AccessToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var me struct {
			ID       string `json:"id"`
			Username string `json:"username"`
		}
		decodeBody(t, rec, &me)
		require.Equal(t, userID, me.ID)
		require.Equal(t, "alice", me.Username)
	})

	t.Run("me with access token cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
		req.AddCookie(&http.Cookie{Name: httpx.AccessTokenCookie, Value: tokens.AccessToken})
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("login sets token cookies", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
			"username": "alice",
			"password": "correct horse battery staple",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		names := map[string]bool{}
		for _, c := range rec.Result().Cookies() {
			names[c.Name] = c.HttpOnly
		}
		require.True(t, names[httpx.AccessTokenCookie])
		require.True(t, names[RefreshTokenCookie])
	})
}

func TestRefreshRotationOverHTTP(t *testing.T) {
	r := newTestRouter(t)
	_, tokens := registerAndLogin(t, r, "alice")

	// First rotation succeeds.
	rec := doJSON(t, r, http.MethodPost, "/api/v1/auth/refresh", "", map[string]string{
		"refreshToken": tokens.RefreshToken,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var rotated tokensBody
	decodeBody(t, rec, &rotated)
	require.NotEqual(t, tokens.RefreshToken, rotated.RefreshToken)

	// Replaying the original token is reuse: 401 and the session dies.
	rec = doJSON(t, r, http.MethodPost, "/api/v1/auth/refresh", "", map[string]string{
		"refreshToken": tokens.RefreshToken,
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// The rotated token went down with the session.
	rec = doJSON(t, r, http.MethodPost, "/api/v1/auth/refresh", "", map[string]string{
		"refreshToken": rotated.RefreshToken,
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	t.Run("missing token is a 400", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPost, "/api/v1/auth/refresh", "", map[string]string{})
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRefreshFromCookie(t *testing.T) {
	r := newTestRouter(t)
	_, tokens := registerAndLogin(t, r, "alice")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: RefreshTokenCookie, Value: tokens.RefreshToken})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestLogoutRevokesRefresh(t *testing.T) {
	r := newTestRouter(t)
	_, tokens := registerAndLogin(t, r, "alice")

	rec := doJSON(t, r, http.MethodPost, "/api/v1/auth/logout", tokens.AccessToken, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, r, http.MethodPost, "/api/v1/auth/refresh", "", map[string]string{
		"refreshToken": tokens.RefreshToken,
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// Access tokens live until expiry; logout does not invalidate them.
	rec = doJSON(t, r, http.MethodGet, "/api/v1/users/me", tokens.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestVideoCRUDAndOwnership(t *testing.T) {
	r := newTestRouter(t)
	_, alice := registerAndLogin(t, r, "alice")
	_, bob := registerAndLogin(t, r, "bob")

	rec := doJSON(t, r, http.MethodPost, "/api/v1/videos", alice.AccessToken, map[string]any{
		"title":        "first upload",
		"videoUrl":     "https://cdn.example.com/v.mp4",
		"durationSecs": 120,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var video struct {
		ID string `json:"id"`
	}
	decodeBody(t, rec, &video)

	t.Run("appears in public feed", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/api/v1/videos", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var feed []videoResponse
		decodeBody(t, rec, &feed)
		require.Len(t, feed, 1)
	})

	t.Run("non-owner cannot mutate", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPatch, "/api/v1/videos/"+video.ID, bob.AccessToken, map[string]string{
			"title": "hijacked",
		})
		require.Equal(t, http.StatusForbidden, rec.Code)

		rec = doJSON(t, r, http.MethodDelete, "/api/v1/videos/"+video.ID, bob.AccessToken, nil)
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("anonymous mutation is a 401", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodDelete, "/api/v1/videos/"+video.ID, "", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing video is a 404", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/api/v1/videos/does-not-exist", "", nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("owner updates and deletes", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPatch, "/api/v1/videos/"+video.ID, alice.AccessToken, map[string]string{
			"title": "renamed",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(t, r, http.MethodDelete, "/api/v1/videos/"+video.ID, alice.AccessToken, nil)
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = doJSON(t, r, http.MethodGet, "/api/v1/videos/"+video.ID, "", nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestLikeAndSubscriptionToggles(t *testing.T) {
	r := newTestRouter(t)
	aliceID, alice := registerAndLogin(t, r, "alice")
	bobID, bob := registerAndLogin(t, r, "bob")

	rec := doJSON(t, r, http.MethodPost, "/api/v1/videos", bob.AccessToken, map[string]any{
		"title":    "bobs video",
		"videoUrl": "https://cdn.example.com/b.mp4",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var video struct {
		ID string `json:"id"`
	}
	decodeBody(t, rec, &video)

	t.Run("like toggles on and off", func(t *testing.T) {
		var res toggleResponse

		rec := doJSON(t, r, http.MethodPost, "/api/v1/videos/"+video.ID+"/like", alice.AccessToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		decodeBody(t, rec, &res)
		require.Equal(t, "created", res.State)

		rec = doJSON(t, r, http.MethodGet, "/api/v1/likes/videos", alice.AccessToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var liked []videoResponse
		decodeBody(t, rec, &liked)
		require.Len(t, liked, 1)
		require.Equal(t, video.ID, liked[0].ID)

		rec = doJSON(t, r, http.MethodPost, "/api/v1/videos/"+video.ID+"/like", alice.AccessToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		decodeBody(t, rec, &res)
		require.Equal(t, "removed", res.State)

		rec = doJSON(t, r, http.MethodGet, "/api/v1/likes/videos", alice.AccessToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		decodeBody(t, rec, &liked)
		require.Empty(t, liked)
	})

	t.Run("self subscription is a 400", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPost, "/api/v1/subscriptions/"+aliceID+"/toggle", alice.AccessToken, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("subscription round trip", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPost, "/api/v1/subscriptions/"+bobID+"/toggle", alice.AccessToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(t, r, http.MethodGet, "/api/v1/subscriptions", alice.AccessToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var subs struct {
			Channels []string `json:"channels"`
		}
		decodeBody(t, rec, &subs)
		require.Equal(t, []string{bobID}, subs.Channels)

		rec = doJSON(t, r, http.MethodGet, "/api/v1/channels/"+bobID+"/subscribers", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var followers struct {
			Subscribers []string `json:"subscribers"`
		}
		decodeBody(t, rec, &followers)
		require.Equal(t, []string{aliceID}, followers.Subscribers)
	})
}

func TestCommentFlow(t *testing.T) {
	r := newTestRouter(t)
	_, alice := registerAndLogin(t, r, "alice")
	_, bob := registerAndLogin(t, r, "bob")

	rec := doJSON(t, r, http.MethodPost, "/api/v1/videos", alice.AccessToken, map[string]any{
		"title":    "commented video",
		"videoUrl": "https://cdn.example.com/c.mp4",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var video struct {
		ID string `json:"id"`
	}
	decodeBody(t, rec, &video)

	rec = doJSON(t, r, http.MethodPost, "/api/v1/videos/"+video.ID+"/comments", bob.AccessToken, map[string]string{
		"content": "great video",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var comment struct {
		ID string `json:"id"`
	}
	decodeBody(t, rec, &comment)

	rec = doJSON(t, r, http.MethodGet, "/api/v1/videos/"+video.ID+"/comments", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var comments []commentResponse
	decodeBody(t, rec, &comments)
	require.Len(t, comments, 1)

	rec = doJSON(t, r, http.MethodGet, "/api/v1/comments", bob.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &comments)
	require.Len(t, comments, 1)
	require.Equal(t, comment.ID, comments[0].ID)

	// The video owner does not own the comment.
	rec = doJSON(t, r, http.MethodDelete, "/api/v1/comments/"+comment.ID, alice.AccessToken, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(t, r, http.MethodDelete, "/api/v1/comments/"+comment.ID, bob.AccessToken, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestChannelProfileEndpoint(t *testing.T) {
	r := newTestRouter(t)
	aliceID, _ := registerAndLogin(t, r, "alice")
	_, bob := registerAndLogin(t, r, "bob")

	rec := doJSON(t, r, http.MethodGet, "/api/v1/channels/alice", bob.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// Email addresses must not resolve channels for anybody.
	rec = doJSON(t, r, http.MethodGet, "/api/v1/channels/alice@example.com", "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var profile channelResponse
	decodeBody(t, rec, &profile)
	require.Equal(t, aliceID, profile.ID)
	require.False(t, profile.Subscribed)

	rec = doJSON(t, r, http.MethodGet, "/api/v1/channels/nobody", "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDashboardRequiresAuth(t *testing.T) {
	r := newTestRouter(t)
	_, alice := registerAndLogin(t, r, "alice")

	rec := doJSON(t, r, http.MethodGet, "/api/v1/dashboard/stats", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/api/v1/dashboard/stats", alice.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var stats struct {
		VideoCount int64 `json:"videoCount"`
	}
	decodeBody(t, rec, &stats)
	require.Zero(t, stats.VideoCount)
}

func TestHealthEndpoints(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/livez", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/readyz", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var health healthResponse
	decodeBody(t, rec, &health)
	require.Equal(t, "ok", health.Status)
	require.NotNil(t, health.Checks)
}