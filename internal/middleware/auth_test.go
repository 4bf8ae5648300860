package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"userhub/internal/domain"
	jwtsvc "userhub/internal/pkg/jwt"
)

type stubUserLoader struct {
	users map[int64]*domain.User
}

func (s stubUserLoader) GetByID(_ context.Context, id int64) (*domain.User, error) {
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func newAuthTestRouter(jwt *jwtsvc.Service, users stubUserLoader) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(JWTAuth(jwt, users))

	router.GET("/protected", func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		role, _ := c.Get("role")
		c.JSON(http.StatusOK, gin.H{
			"user_id": userID,
			"role":    role,
		})
	})
	return router
}

func TestJWTAuth_ValidToken(t *testing.T) {
	jwtService := jwtsvc.New("test-secret-123", time.Hour, 7*24*time.Hour)
	validToken, _ := jwtService.GenerateAccessToken(42, "USER")

	router := newAuthTestRouter(jwtService, stubUserLoader{users: map[int64]*domain.User{
		42: {ID: 42, Role: domain.RoleUser, Active: true},
	}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+validToken)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "42")
	assert.Contains(t, w.Body.String(), "USER")
}

func TestJWTAuth_InvalidToken(t *testing.T) {
	jwtService := jwtsvc.New("test-secret-123", time.Hour, 7*24*time.Hour)

	router := newAuthTestRouter(jwtService, stubUserLoader{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer invalid-jwt-here")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid token")
}

func TestJWTAuth_NoToken(t *testing.T) {
	jwtService := jwtsvc.New("test-secret-123", time.Hour, 7*24*time.Hour)

	router := newAuthTestRouter(jwtService, stubUserLoader{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	expiredIssuer := jwtsvc.New("test-secret-123", -time.Minute, 7*24*time.Hour)
	token, _ := expiredIssuer.GenerateAccessToken(42, "USER")

	router := newAuthTestRouter(expiredIssuer, stubUserLoader{users: map[int64]*domain.User{
		42: {ID: 42, Role: domain.RoleUser, Active: true},
	}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_SubjectDeleted(t *testing.T) {
	jwtService := jwtsvc.New("test-secret-123", time.Hour, 7*24*time.Hour)
	token, _ := jwtService.GenerateAccessToken(42, "USER")

	// Token is valid but the account no longer exists.
	router := newAuthTestRouter(jwtService, stubUserLoader{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole_AllowsListedRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("role", domain.RoleEmployee)
	})
	router.GET("/staff", RequireRole(domain.RoleAdmin, domain.RoleEmployee), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/staff", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRole_RejectsOtherRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("role", domain.RoleUser)
	})
	router.GET("/admin", AdminOnly(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/admin", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRole_MissingRoleUnauthorized(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/admin", AdminOnly(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/admin", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
