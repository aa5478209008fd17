package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"clinicport/config"
	"clinicport/models"
	"clinicport/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUserRepo satisfies userRepo.UserRepository for role checks.
type fakeUserRepo struct {
	users map[string]models.User
}

func (f *fakeUserRepo) Upsert(u *models.User) error { return nil }

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (f *fakeUserRepo) GetAll() ([]models.User, error) { return nil, nil }

func (f *fakeUserRepo) SetRole(email, role string) error { return nil }

func authRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", RequireAuth(), func(c *gin.Context) {
		requester, _ := Requester(c)
		c.JSON(http.StatusOK, gin.H{"requester": requester})
	})
	return r
}

func TestRequireAuthMissingHeader(t *testing.T) {
	r := authRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthInvalidToken(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	r := authRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAuthValidToken(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	r := authRouter()

	token, err := utils.GenerateToken("a@x.com")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "a@x.com")
}

func adminRouter(repo *fakeUserRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin-only", RequireAuth(), RequireAdmin(repo), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestRequireAdmin(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	repo := &fakeUserRepo{users: map[string]models.User{
		"admin@x.com": {Email: "admin@x.com", Role: models.RoleAdmin},
		"plain@x.com": {Email: "plain@x.com"},
	}}
	r := adminRouter(repo)

	cases := []struct {
		email string
		want  int
	}{
		{"admin@x.com", http.StatusOK},
		{"plain@x.com", http.StatusForbidden},
		{"nobody@x.com", http.StatusForbidden},
	}
	for _, tc := range cases {
		token, err := utils.GenerateToken(tc.email)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)

		assert.Equal(t, tc.want, w.Code, "requester %s", tc.email)
	}
}
