package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campusworks/placementcell/internal/pkg/auth"
)

func testRouter(t *testing.T) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "placementcell-test",
	})
	mw := NewAuthMiddleware(jwtService)

	router := gin.New()
	protected := router.Group("", mw.SessionAuth())
	protected.GET("/whoami", func(c *gin.Context) {
		id, _ := AccountID(c)
		c.JSON(http.StatusOK, gin.H{"accountID": id})
	})

	admin := protected.Group("", mw.RoleRequired("ADMIN"))
	admin.GET("/admin_only", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return router, jwtService
}

func request(t *testing.T, router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSessionAuthRejectsMissingToken(t *testing.T) {
	router, _ := testRouter(t)

	rec := request(t, router, "/whoami", "")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestSessionAuthRejectsGarbageToken(t *testing.T) {
	router, _ := testRouter(t)

	rec := request(t, router, "/whoami", "not-a-real-token")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestSessionAuthRejectsExpiredToken(t *testing.T) {
	router, _ := testRouter(t)

	expiredSvc := auth.NewJWTService(auth.JWTConfig{
		SecretKey: "test-secret",
		TokenExp:  -time.Minute,
	})
	token, _, err := expiredSvc.GenerateToken(1, "alice", "STUDENT")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	rec := request(t, router, "/whoami", token)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestSessionAuthAcceptsValidToken(t *testing.T) {
	router, jwtService := testRouter(t)

	token, _, err := jwtService.GenerateToken(42, "alice", "STUDENT")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	rec := request(t, router, "/whoami", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}
}

func TestRoleRequired(t *testing.T) {
	router, jwtService := testRouter(t)

	studentToken, _, err := jwtService.GenerateToken(1, "alice", "STUDENT")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	adminToken, _, err := jwtService.GenerateToken(2, "cell", "ADMIN")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if rec := request(t, router, "/admin_only", studentToken); rec.Code != http.StatusForbidden {
		t.Errorf("student hitting admin route: status = %d, want 403", rec.Code)
	}
	if rec := request(t, router, "/admin_only", adminToken); rec.Code != http.StatusOK {
		t.Errorf("admin hitting admin route: status = %d, want 200", rec.Code)
	}
}
