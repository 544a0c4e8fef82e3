package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"kama_community_server/pkg/util/jwt"

	"github.com/gin-gonic/gin"
)

func newAuthEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", JWTAuth(), func(c *gin.Context) {
		uid, _ := CurrentUserID(c)
		c.String(http.StatusOK, uid)
	})
	return r
}

func TestJWTAuthRejectsMissingToken(t *testing.T) {
	jwt.Init("middleware-test-secret", 5)
	r := newAuthEngine()

	for _, header := range []string{"", "Bearer", "Token abc", "Bearer not-a-jwt"} {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: status = %d", header, w.Code)
		}
		if !strings.Contains(w.Body.String(), `"unauthenticated"`) {
			t.Fatalf("header %q: body = %s", header, w.Body.String())
		}
	}
}

func TestJWTAuthSetsUserID(t *testing.T) {
	jwt.Init("middleware-test-secret", 5)
	token, err := jwt.GenerateAccessToken("user-42")
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	newAuthEngine().ServeHTTP(w, req)

	if w.Code != http.StatusOK || w.Body.String() != "user-42" {
		t.Fatalf("got %d %q", w.Code, w.Body.String())
	}
}
