package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Avinash9608/LakhnaRestaurant-sub000/internal/auth"
)

func newProtectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/admin", AuthMiddleware(), RequireRole("ADMIN"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": c.GetString("userEmail")})
	})
	return r
}

func do(r *gin.Engine, configure func(*http.Request)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	if configure != nil {
		configure(req)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareMissingCredentials(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newProtectedRouter()

	w := do(r, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newProtectedRouter()

	w := do(r, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer garbage")
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAuthMiddlewareBearerToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newProtectedRouter()

	token, err := auth.GenerateToken("user-1", "admin@lakhna.example", "ADMIN")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	w := do(r, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAuthMiddlewareSessionCookie(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newProtectedRouter()

	token, err := auth.GenerateToken("user-1", "admin@lakhna.example", "ADMIN")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	w := do(r, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: auth.SessionCookie, Value: token})
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestRequireRoleRejectsOtherRoles(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newProtectedRouter()

	token, err := auth.GenerateToken("user-2", "staff@lakhna.example", "STAFF")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	w := do(r, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	})
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}
