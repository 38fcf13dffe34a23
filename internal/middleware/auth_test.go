package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fixitnow/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func protectedRouter(t *testing.T, svc *jwt.Service) *gin.Engine {
	t.Helper()
	router := gin.New()
	router.Use(JWTAuth(svc))
	router.GET("/protected", func(c *gin.Context) {
		actor, ok := ActorFrom(c)
		c.JSON(http.StatusOK, gin.H{"user_id": actor.ID, "role": actor.Role, "ok": ok})
	})
	return router
}

func TestJWTAuth_ValidToken(t *testing.T) {
	svc := jwt.New("test-secret-123", time.Hour)
	token, err := svc.GenerateToken("cust-42", "user")
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	protectedRouter(t, svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "cust-42")
	assert.Contains(t, w.Body.String(), `"role":"user"`)
	assert.Contains(t, w.Body.String(), `"ok":true`)
}

func TestJWTAuth_Rejects(t *testing.T) {
	foreign, _ := jwt.New("secret-a", time.Hour).GenerateToken("cust-1", "user")
	expired, _ := jwt.New("secret-b", -time.Minute).GenerateToken("cust-1", "user")

	cases := []struct {
		name   string
		header string
		code   string
	}{
		{"missing header", "", "AUTH_HEADER_MISSING"},
		{"basic scheme", "Basic dGVzdA==", "INVALID_AUTH_FORMAT"},
		{"bearer without token", "Bearer ", "INVALID_AUTH_FORMAT"},
		{"garbage token", "Bearer invalid-jwt-here", "INVALID_TOKEN"},
		{"other secret", "Bearer " + foreign, "INVALID_TOKEN"},
		{"expired", "Bearer " + expired, "INVALID_TOKEN"},
	}
	router := protectedRouter(t, jwt.New("secret-b", time.Hour))

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), tc.code)
			assert.NotContains(t, w.Body.String(), `"ok"`)
		})
	}
}

func TestActorFrom_WithoutAuth(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := ActorFrom(c)

	assert.False(t, ok)
}
