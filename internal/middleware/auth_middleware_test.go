package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/preskool/school/internal/app/models"
	"github.com/preskool/school/internal/app/models/dto"
	"github.com/preskool/school/internal/pkg/auth"
)

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "test",
	})
}

// guardRouter mounts the role guard behind a stub that plants the role the
// way JWTAuth would.
func guardRouter(role models.RoleType, setRole bool, allowed []models.RoleType, opts ...GuardOption) *gin.Engine {
	gin.SetMode(gin.TestMode)
	m := NewAuthMiddleware(newTestJWTService())

	router := gin.New()
	router.GET("/guarded",
		func(c *gin.Context) {
			if setRole {
				c.Set(ContextRole, role)
			}
			c.Next()
		},
		m.RoleRequired(allowed, opts...),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		},
	)
	return router
}

func TestRoleRequiredAllows(t *testing.T) {
	tests := []struct {
		name    string
		role    models.RoleType
		allowed []models.RoleType
	}{
		{name: "admin on admin-only", role: models.RoleAdmin, allowed: AdminOnly},
		{name: "teacher on staff", role: models.RoleTeacher, allowed: StaffOnly},
		{name: "student on all roles", role: models.RoleStudent, allowed: AllRoles},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := guardRouter(tt.role, true, tt.allowed)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/guarded", nil))

			if rec.Code != http.StatusOK {
				t.Errorf("status = %d, want 200", rec.Code)
			}
		})
	}
}

func TestRoleRequiredDeniesWithForbidden(t *testing.T) {
	router := guardRouter(models.RoleStudent, true, AdminOnly)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/guarded", nil))

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}

	var body dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Success {
		t.Error("denial body should carry success=false")
	}
	if body.Error == nil || body.Error.Code != dto.ErrorCodeForbidden {
		t.Errorf("error detail = %+v, want code %s", body.Error, dto.ErrorCodeForbidden)
	}
}

func TestRoleRequiredDeniesWithRedirect(t *testing.T) {
	router := guardRouter(models.RoleTeacher, true, AdminOnly, WithRedirect("/api/v1/departments"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/guarded", nil))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != "/api/v1/departments" {
		t.Errorf("Location = %q, want /api/v1/departments", got)
	}

	var body dto.RedirectResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Location != "/api/v1/departments" {
		t.Errorf("body location = %q, want /api/v1/departments", body.Location)
	}
	if body.Warning == "" {
		t.Error("redirect denial should carry a warning")
	}
}

func TestRoleRequiredWithoutRole(t *testing.T) {
	// No role on the context means the request never passed JWTAuth
	router := guardRouter("", false, AllRoles)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/guarded", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestJWTAuthSetsPrincipal(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwtService := newTestJWTService()
	m := NewAuthMiddleware(jwtService)

	user := &models.User{ID: 42, Email: "teacher@preskool.local", Role: models.RoleTeacher}
	accessToken, _, _, _, err := jwtService.GenerateTokenPair(user)
	if err != nil {
		t.Fatalf("GenerateTokenPair() error = %v", err)
	}

	router := gin.New()
	router.GET("/me", m.JWTAuth(), func(c *gin.Context) {
		userID, ok := CurrentUserID(c)
		if !ok {
			t.Error("CurrentUserID missing after JWTAuth")
		}
		role, ok := CurrentRole(c)
		if !ok {
			t.Error("CurrentRole missing after JWTAuth")
		}
		c.JSON(http.StatusOK, gin.H{"userId": userID, "role": role})
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}

	var body struct {
		UserID int64  `json:"userId"`
		Role   string `json:"role"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.UserID != 42 || body.Role != string(models.RoleTeacher) {
		t.Errorf("principal = %+v, want userId 42 role TEACHER", body)
	}
}

func TestJWTAuthRejectsBadTokens(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewAuthMiddleware(newTestJWTService())

	router := gin.New()
	router.GET("/me", m.JWTAuth(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not bearer", header: "Basic abc123"},
		{name: "garbage token", header: "Bearer not.a.token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", rec.Code)
			}
		})
	}
}
