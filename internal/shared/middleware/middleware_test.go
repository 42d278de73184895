package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"venueplan/internal/shared/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func testConfig() *config.Config {
	return &config.Config{JWT: config.JWTConfig{
		Secret:       testSecret,
		EditorRoles:  []string{"ADMIN", "ORGANIZER"},
		RequireToken: true,
	}}
}

func newEditorEngine(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	handlers := append(EditorChain(cfg), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(ContextUserID))
	})
	engine.PUT("/layout", handlers...)
	return engine
}

func serve(engine *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/layout", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	engine.ServeHTTP(w, req)
	return w
}

func TestEditorChain(t *testing.T) {
	engine := newEditorEngine(testConfig())
	exp := time.Now().Add(time.Hour).Unix()

	organizer := signToken(t, jwt.MapClaims{"type": "access", "user_id": "u-1", "role": "ORGANIZER", "exp": exp})
	attendee := signToken(t, jwt.MapClaims{"type": "access", "user_id": "u-2", "role": "ATTENDEE", "exp": exp})
	refresh := signToken(t, jwt.MapClaims{"type": "refresh", "user_id": "u-1", "role": "ADMIN", "exp": exp})
	expired := signToken(t, jwt.MapClaims{"type": "access", "user_id": "u-1", "role": "ADMIN", "exp": time.Now().Add(-time.Minute).Unix()})

	for name, tc := range map[string]struct {
		header string
		code   int
	}{
		"organizer":     {"Bearer " + organizer, http.StatusOK},
		"wrong role":    {"Bearer " + attendee, http.StatusForbidden},
		"refresh token": {"Bearer " + refresh, http.StatusUnauthorized},
		"expired":       {"Bearer " + expired, http.StatusUnauthorized},
		"bad scheme":    {"Token " + organizer, http.StatusUnauthorized},
		"missing":       {"", http.StatusUnauthorized},
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.code, serve(engine, tc.header).Code)
		})
	}

	w := serve(engine, "Bearer "+organizer)
	assert.Equal(t, "u-1", w.Body.String())
}

func TestEditorChain_Disabled(t *testing.T) {
	cfg := testConfig()
	cfg.JWT.RequireToken = false

	assert.Empty(t, EditorChain(cfg))
	assert.Equal(t, http.StatusOK, serve(newEditorEngine(cfg), "").Code)
}

func TestOptionalAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/layout", OptionalAuthWithConfig(testConfig()), func(c *gin.Context) {
		role, ok := c.Get(ContextUserRole)
		if !ok {
			c.String(http.StatusOK, "anonymous")
			return
		}
		c.String(http.StatusOK, "%v", role)
	})

	get := func(header string) string {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/layout", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		engine.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		return w.Body.String()
	}

	token := signToken(t, jwt.MapClaims{"type": "access", "role": "ADMIN", "exp": time.Now().Add(time.Hour).Unix()})
	assert.Equal(t, "ADMIN", get("Bearer "+token))
	assert.Equal(t, "anonymous", get("Bearer garbage"))
	assert.Equal(t, "anonymous", get(""))
}
