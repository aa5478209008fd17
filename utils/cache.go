package utils

import (
	"context"
	"log"
	"time"

	"clinicport/config"

	"github.com/go-redis/redis/v8"
)

// RoleCacheClient caches admin-role lookups. It may be nil: callers fall back
// to the database when the cache is unavailable.
var RoleCacheClient *redis.Client

// RoleCachePrefix namespaces role cache keys by email.
const RoleCachePrefix = "role:"

// InitRoleCache initializes the Redis client for role caching. A failed
// connection is logged and leaves the client nil rather than aborting startup.
func InitRoleCache() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisRoleDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Printf("WARNING: Redis (role cache) unavailable, falling back to DB lookups: %v", err)
		return
	}
	RoleCacheClient = client
}

// GetRoleCacheClient returns the role cache client, which may be nil.
func GetRoleCacheClient() *redis.Client {
	return RoleCacheClient
}
