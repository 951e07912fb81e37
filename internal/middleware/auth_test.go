package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"festivalapi/internal/pkg/jwt"
)

type stubSessions struct {
	active map[string]bool
}

func (s *stubSessions) IsActive(_ context.Context, jti string) (bool, error) {
	return s.active[jti], nil
}

func setupAuthRouter(jwtService *jwt.Service, sessions SessionChecker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	protected := r.Group("/protected", JWTAuth(jwtService, sessions))
	protected.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":  c.GetInt64("user_id"),
			"is_staff": c.GetBool("is_staff"),
		})
	})
	protected.GET("/staff", StaffOnly(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	r.GET("/anonymous", AnonymousOnly(jwtService, sessions), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	r.GET("/session-bound", AuthenticatedOnly(jwtService, sessions), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetInt64("user_id")})
	})

	return r
}

func doRequest(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuth_ValidToken(t *testing.T) {
	jwtService := jwt.New("test_secret_key_32_characters_min", time.Hour)
	sessions := &stubSessions{active: map[string]bool{"jti-1": true}}
	r := setupAuthRouter(jwtService, sessions)

	token, err := jwtService.GenerateToken(42, false, "jti-1")
	require.NoError(t, err)

	w := doRequest(r, "/protected", token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":42`)
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	jwtService := jwt.New("test_secret_key_32_characters_min", time.Hour)
	r := setupAuthRouter(jwtService, &stubSessions{})

	w := doRequest(r, "/protected", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_BadToken(t *testing.T) {
	jwtService := jwt.New("test_secret_key_32_characters_min", time.Hour)
	r := setupAuthRouter(jwtService, &stubSessions{})

	w := doRequest(r, "/protected", "not-a-jwt")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_RevokedSession(t *testing.T) {
	jwtService := jwt.New("test_secret_key_32_characters_min", time.Hour)
	sessions := &stubSessions{active: map[string]bool{}}
	r := setupAuthRouter(jwtService, sessions)

	token, err := jwtService.GenerateToken(42, false, "jti-revoked")
	require.NoError(t, err)

	w := doRequest(r, "/protected", token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestStaffOnly(t *testing.T) {
	jwtService := jwt.New("test_secret_key_32_characters_min", time.Hour)
	sessions := &stubSessions{active: map[string]bool{"staff": true, "plain": true}}
	r := setupAuthRouter(jwtService, sessions)

	staffToken, err := jwtService.GenerateToken(1, true, "staff")
	require.NoError(t, err)
	plainToken, err := jwtService.GenerateToken(2, false, "plain")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, doRequest(r, "/protected/staff", staffToken).Code)
	assert.Equal(t, http.StatusForbidden, doRequest(r, "/protected/staff", plainToken).Code)
}

func TestAuthenticatedOnly(t *testing.T) {
	jwtService := jwt.New("test_secret_key_32_characters_min", time.Hour)
	sessions := &stubSessions{active: map[string]bool{"jti-1": true}}
	r := setupAuthRouter(jwtService, sessions)

	// No token is forbidden, not unauthorized
	assert.Equal(t, http.StatusForbidden, doRequest(r, "/session-bound", "").Code)

	// A revoked session is forbidden too
	deadToken, err := jwtService.GenerateToken(42, false, "dead")
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, doRequest(r, "/session-bound", deadToken).Code)

	// A live session passes with claims on the context
	token, err := jwtService.GenerateToken(42, false, "jti-1")
	require.NoError(t, err)
	w := doRequest(r, "/session-bound", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":42`)
}

func TestAnonymousOnly(t *testing.T) {
	jwtService := jwt.New("test_secret_key_32_characters_min", time.Hour)
	sessions := &stubSessions{active: map[string]bool{"jti-1": true}}
	r := setupAuthRouter(jwtService, sessions)

	// No token passes through
	assert.Equal(t, http.StatusOK, doRequest(r, "/anonymous", "").Code)

	// A live token is rejected
	token, err := jwtService.GenerateToken(42, false, "jti-1")
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, doRequest(r, "/anonymous", token).Code)

	// A token whose session is gone counts as anonymous
	deadToken, err := jwtService.GenerateToken(42, false, "dead")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, doRequest(r, "/anonymous", deadToken).Code)
}
