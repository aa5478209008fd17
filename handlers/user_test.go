package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"clinicport/config"
	"clinicport/middleware"
	"clinicport/models"
	"clinicport/services/user"
	"clinicport/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeUserService tracks upserts and promotions.
type fakeUserService struct {
	admins   map[string]bool
	promoted map[string]bool
}

func (f *fakeUserService) UpsertUser(u *models.User) (string, error) {
	return utils.GenerateToken(u.Email)
}

func (f *fakeUserService) GetAllUsers() ([]models.User, error) {
	return []models.User{{Email: "a@x.com"}}, nil
}

func (f *fakeUserService) IsAdmin(email string) (bool, error) {
	return f.admins[email], nil
}

func (f *fakeUserService) PromoteToAdmin(requester, target string) error {
	if !f.admins[requester] {
		return user.ErrNotAdmin
	}
	if f.promoted == nil {
		f.promoted = make(map[string]bool)
	}
	f.promoted[target] = true
	return nil
}

func userRouter(svc *fakeUserService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewUserHandler(svc, zap.NewNop())
	r := gin.New()
	r.PUT("/user/:email", h.UpsertUserHandler)
	r.GET("/user", middleware.RequireAuth(), h.GetAllUsersHandler)
	r.GET("/admin/:email", h.CheckAdminHandler)
	r.PUT("/user/admin/:email", middleware.RequireAuth(), h.PromoteAdminHandler)
	return r
}

func TestUpsertUserHandlerIssuesToken(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	r := userRouter(&fakeUserService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/user/a@x.com", strings.NewReader(`{"name":"Alice"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)

	subject, err := utils.SubjectFromToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", subject)
}

func TestCheckAdminHandler(t *testing.T) {
	r := userRouter(&fakeUserService{admins: map[string]bool{"admin@x.com": true}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/admin@x.com", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"admin":true}`, w.Body.String())

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/admin/plain@x.com", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"admin":false}`, w.Body.String())
}

func TestPromoteAdminHandler(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	svc := &fakeUserService{admins: map[string]bool{"admin@x.com": true}}
	r := userRouter(svc)

	// Non-admin requester is refused.
	token, err := utils.GenerateToken("plain@x.com")
	require.NoError(t, err)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/user/admin/target@x.com", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, svc.promoted["target@x.com"])

	// Admin requester succeeds.
	token, err = utils.GenerateToken("admin@x.com")
	require.NoError(t, err)
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, "/user/admin/target@x.com", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, svc.promoted["target@x.com"])
}

func TestGetAllUsersRequiresAuth(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	r := userRouter(&fakeUserService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/user", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token, err := utils.GenerateToken("a@x.com")
	require.NoError(t, err)
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/user", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
