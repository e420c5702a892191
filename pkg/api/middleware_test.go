package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func authTestRouter(apiKey string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", bearerAuth(apiKey), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestBearerAuth(t *testing.T) {
	tests := []struct {
		name       string
		apiKey     string
		header     string
		wantStatus int
	}{
		{"valid token", "secret-key", "Bearer secret-key", http.StatusOK},
		{"wrong token", "secret-key", "Bearer wrong", http.StatusUnauthorized},
		{"missing header", "secret-key", "", http.StatusUnauthorized},
		{"malformed header", "secret-key", "secret-key", http.StatusUnauthorized},
		{"basic scheme rejected", "secret-key", "Basic secret-key", http.StatusUnauthorized},
		{"auth disabled", "", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := authTestRouter(tt.apiKey)
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestExtractActor(t *testing.T) {
	gin.SetMode(gin.TestMode)

	makeCtx := func(headers map[string]string) *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		for k, v := range headers {
			c.Request.Header.Set(k, v)
		}
		return c
	}

	assert.Equal(t, "alice", extractActor(makeCtx(map[string]string{"X-Forwarded-User": "alice"})))
	assert.Equal(t, "alice@example.com", extractActor(makeCtx(map[string]string{"X-Forwarded-Email": "alice@example.com"})))
	assert.Equal(t, "bob", extractActor(makeCtx(map[string]string{"X-Remote-User": "bob"})))
	assert.Equal(t, "api-client", extractActor(makeCtx(nil)))

	// Forwarded user wins over the others.
	assert.Equal(t, "alice", extractActor(makeCtx(map[string]string{
		"X-Forwarded-User":  "alice",
		"X-Forwarded-Email": "alice@example.com",
		"X-Remote-User":     "bob",
	})))
}
