package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"auth-api/internal/apperrors"
	"auth-api/internal/cache"
	"auth-api/internal/model"
	"auth-api/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newContext(auth string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if auth != "" {
		req.Header.Set(echo.HeaderAuthorization, auth)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func newJWT(t *testing.T) *service.JWTManager {
	t.Helper()
	m, err := service.NewJWTManager("testsecret", time.Minute, "test")
	require.NoError(t, err)
	return m
}

func notRevoked() *cache.FakeCache {
	return &cache.FakeCache{GetFn: func(context.Context, string) *redis.StringCmd {
		return redis.NewStringResult("", redis.Nil)
	}}
}

func TestBearerToken(t *testing.T) {
	cases := map[string]struct {
		header string
		token  string
		ok     bool
	}{
		"missing":      {"", "", false},
		"no scheme":    {"BadHeader", "", false},
		"basic":        {"Basic abc", "", false},
		"empty token":  {"Bearer  ", "", false},
		"bearer":       {"Bearer abc", "abc", true},
		"case insens.": {"bearer abc", "abc", true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			ctx, _ := newContext(tc.header)
			tok, ok := bearerToken(ctx)
			require.Equal(t, tc.ok, ok)
			require.Equal(t, tc.token, tok)
		})
	}
}

func TestRequireAuth(t *testing.T) {
	jwtm := newJWT(t)
	tok, _, err := jwtm.Issue(model.User{ID: 2, Email: "bob@example.com"})
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		var gotKey string
		rc := &cache.FakeCache{GetFn: func(_ context.Context, key string) *redis.StringCmd {
			gotKey = key
			return redis.NewStringResult("", redis.Nil)
		}}
		ctx, rec := newContext("Bearer " + tok)
		called := false
		h := RequireAuth(jwtm, rc, zap.NewNop())(func(c echo.Context) error {
			called = true
			claims, ok := ClaimsFrom(c)
			require.True(t, ok)
			require.Equal(t, 2, claims.UserID)
			return c.String(http.StatusOK, "ok")
		})
		require.NoError(t, h(ctx))
		require.True(t, called)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, gotKey, "revoked:")
	})

	t.Run("missing token", func(t *testing.T) {
		ctx, rec := newContext("")
		called := false
		h := RequireAuth(jwtm, &cache.FakeCache{}, zap.NewNop())(func(echo.Context) error { called = true; return nil })
		require.NoError(t, h(ctx))
		require.False(t, called)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		ctx, rec := newContext("Bearer invalid")
		h := RequireAuth(jwtm, &cache.FakeCache{}, zap.NewNop())(func(echo.Context) error { return nil })
		require.NoError(t, h(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Body.String(), "invalid token")
	})

	t.Run("revoked", func(t *testing.T) {
		rc := &cache.FakeCache{GetFn: func(context.Context, string) *redis.StringCmd {
			return redis.NewStringResult("2", nil)
		}}
		ctx, rec := newContext("Bearer " + tok)
		h := RequireAuth(jwtm, rc, zap.NewNop())(func(echo.Context) error { return nil })
		require.NoError(t, h(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.JSONEq(t, `{"message":"`+apperrors.ErrTokenRevoked.Error()+`"}`, rec.Body.String())
	})

	t.Run("cache down", func(t *testing.T) {
		rc := &cache.FakeCache{GetFn: func(context.Context, string) *redis.StringCmd {
			return redis.NewStringResult("", errors.New("down"))
		}}
		ctx, rec := newContext("Bearer " + tok)
		h := RequireAuth(jwtm, rc, zap.NewNop())(func(echo.Context) error { return nil })
		require.NoError(t, h(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestClaimsFromMissing(t *testing.T) {
	ctx, _ := newContext("")
	_, ok := ClaimsFrom(ctx)
	require.False(t, ok)

	ctx.Set(ContextUserKey, "not claims")
	_, ok = ClaimsFrom(ctx)
	require.False(t, ok)
}
