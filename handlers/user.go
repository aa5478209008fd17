package handlers

import (
	"context"
	"errors"
	"net/http"

	"clinicport/middleware"
	"clinicport/models"
	"clinicport/services/user"
	"clinicport/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves user upsert, listing and admin-role management.
type UserHandler struct {
	Svc    user.UserService
	Logger *zap.Logger
}

func NewUserHandler(svc user.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

// UpsertUserHandler handles PUT /user/:email. The user record is upserted by
// the path email and a fresh session token is issued on every call.
func (h *UserHandler) UpsertUserHandler(c *gin.Context) {
	var body struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		h.Logger.Error("UpsertUser: invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	usr := &models.User{Email: c.Param("email"), Name: body.Name}
	token, err := h.Svc.UpsertUser(usr)
	if err != nil {
		h.Logger.Error("UpsertUser: upsert failed", zap.String("email", usr.Email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": usr, "token": token})
}

// GetAllUsersHandler handles GET /user.
func (h *UserHandler) GetAllUsersHandler(c *gin.Context) {
	users, err := h.Svc.GetAllUsers()
	if err != nil {
		h.Logger.Error("GetAllUsers: failed to fetch users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

// CheckAdminHandler handles GET /admin/:email, reporting whether the given
// email has the admin role.
func (h *UserHandler) CheckAdminHandler(c *gin.Context) {
	email := c.Param("email")
	isAdmin, err := h.Svc.IsAdmin(email)
	if err != nil {
		h.Logger.Error("CheckAdmin: lookup failed", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": isAdmin})
}

// PromoteAdminHandler handles PUT /user/admin/:email. Only admins may grant
// the admin role.
func (h *UserHandler) PromoteAdminHandler(c *gin.Context) {
	requester, ok := middleware.Requester(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	target := c.Param("email")
	if err := h.Svc.PromoteToAdmin(requester, target); err != nil {
		if errors.Is(err, user.ErrNotAdmin) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		h.Logger.Error("PromoteAdmin: promotion failed",
			zap.String("target", target), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Drop any stale cached role for the target.
	if cache := utils.GetRoleCacheClient(); cache != nil {
		_ = cache.Del(context.Background(), utils.RoleCachePrefix+target).Err()
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
