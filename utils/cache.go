// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"huzla/config"

	"github.com/go-redis/redis/v8"
)

// AuthCachePrefix namespaces auth token hashes in Redis.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is how long a verified token hash stays cached.
const AuthCacheTTL = time.Hour

// AuthCacheClient is the dedicated client for authorization caching.
var AuthCacheClient *redis.Client

// InitAuthCache initializes the Redis client for authorization caching.
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := AuthCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Auth Cache): %v", err)
	}
}

// GetAuthCacheClient returns the Redis client for authorization caching, or
// nil when the cache was never initialized.
func GetAuthCacheClient() *redis.Client {
	return AuthCacheClient
}

// CacheAuthToken stores a token hash for a user, replacing any previous one.
// A no-op when the cache was never initialized.
func CacheAuthToken(userID, tokenHash string) {
	client := AuthCacheClient
	if client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = client.Set(ctx, AuthCachePrefix+userID, tokenHash, AuthCacheTTL).Err()
}

// DropAuthToken removes a user's cached token hash (logout / revoke).
func DropAuthToken(userID string) {
	client := AuthCacheClient
	if client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = client.Del(ctx, AuthCachePrefix+userID).Err()
}
