package middleware

import (
	"context"
	"log"
	"net/http"
	"time"

	userRepo "clinicport/database/repository/user"
	"clinicport/models"
	"clinicport/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// RequireAdmin checks that the requester set by RequireAuth carries the admin
// role, aborting with 403 otherwise. Roles are cached in Redis for an hour
// with a database fallback when the cache is unavailable.
func RequireAdmin(repo userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		requester, ok := Requester(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}

		role, err := lookupRole(repo, requester)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		if role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}

		c.Set("isAdmin", true)
		c.Next()
	}
}

// lookupRole resolves a user's role, consulting the Redis role cache first.
func lookupRole(repo userRepo.UserRepository, email string) (string, error) {
	ctx := context.Background()
	cacheKey := utils.RoleCachePrefix + email

	cache := utils.GetRoleCacheClient()
	if cache != nil {
		cached, err := cache.Get(ctx, cacheKey).Result()
		if err == nil {
			return cached, nil
		}
		if err != redis.Nil {
			log.Printf("WARNING: Error reading role cache key: %v. Falling back to DB lookup.", err)
		}
	}

	usr, err := repo.GetByEmail(email)
	if err != nil {
		return "", err
	}
	var role string
	if usr != nil {
		role = usr.Role
	}

	if cache != nil {
		_ = cache.Set(ctx, cacheKey, role, time.Hour).Err()
	}
	return role, nil
}
