// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"courtside/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client.
	CacheClient *redis.Client
	// RoleCacheClient is the dedicated client for role caching.
	RoleCacheClient *redis.Client
)

// InitCache initializes the generic Redis cache client (using DB from AppConfig for general caching).
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitRoleCache initializes the Redis client for role caching.
func InitRoleCache() {
	RoleCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisRoleDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := RoleCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Role Cache): %v", err)
	}
}

// GetRoleCacheClient returns the Redis client for role caching.
func GetRoleCacheClient() *redis.Client {
	if RoleCacheClient == nil {
		InitRoleCache()
	}
	return RoleCacheClient
}

// RoleCache is a keyed principal→role store with explicit invalidation.
// The role resolver reads through it; promotion and demotion invalidate it.
type RoleCache interface {
	Get(ctx context.Context, email string) (string, bool)
	Set(ctx context.Context, email, role string)
	Invalidate(ctx context.Context, email string)
}

// RedisRoleCache implements RoleCache on the dedicated role cache client.
type RedisRoleCache struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewRedisRoleCache returns a RoleCache backed by the role cache Redis DB.
func NewRedisRoleCache() *RedisRoleCache {
	return &RedisRoleCache{Client: GetRoleCacheClient(), TTL: RoleCacheTTL}
}

func (rc *RedisRoleCache) Get(ctx context.Context, email string) (string, bool) {
	val, err := rc.Client.Get(ctx, RoleCachePrefix+email).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (rc *RedisRoleCache) Set(ctx context.Context, email, role string) {
	if err := rc.Client.Set(ctx, RoleCachePrefix+email, role, rc.TTL).Err(); err != nil {
		GetLogger().Sugar().Warnf("role cache set failed for %s: %v", email, err)
	}
}

func (rc *RedisRoleCache) Invalidate(ctx context.Context, email string) {
	if err := rc.Client.Del(ctx, RoleCachePrefix+email).Err(); err != nil {
		GetLogger().Sugar().Warnf("role cache invalidate failed for %s: %v", email, err)
	}
}
