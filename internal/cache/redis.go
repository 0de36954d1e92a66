package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"resto-backend/internal/config"
)

// Cache key prefixes. The cart blob is the single named client-state blob
// per cart session; everything under revoked:* is the session denylist.
const (
	menuKeyFmt    = "menu:%s"
	cartKeyFmt    = "cart:%s"
	revokedKeyFmt = "revoked:%s"
)

var client *redis.Client

// Init initializes the Redis connection
func Init(cfg *config.Config) error {
	client = redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		// Close the failed client and set to nil for graceful degradation
		client.Close()
		client = nil
		return err
	}
	return nil
}

// GetClient returns the Redis client (nil when Redis is unavailable)
func GetClient() *redis.Client {
	return client
}

// Available reports whether Redis is connected
func Available() bool {
	return client != nil
}

// ============================================
// Menu Cache
// ============================================

// GetCachedMenu returns the cached menu JSON for a restaurant if available
func GetCachedMenu(ctx context.Context, restaurantID string) ([]byte, bool) {
	if client == nil {
		return nil, false
	}
	data, err := client.Get(ctx, fmt.Sprintf(menuKeyFmt, restaurantID)).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// CacheMenu caches the menu JSON for 5 minutes
func CacheMenu(ctx context.Context, restaurantID string, data []byte) {
	if client == nil {
		return
	}
	client.Set(ctx, fmt.Sprintf(menuKeyFmt, restaurantID), data, 5*time.Minute)
}

// InvalidateMenu drops the cached menu after an admin edit
func InvalidateMenu(ctx context.Context, restaurantID string) {
	if client == nil {
		return
	}
	client.Del(ctx, fmt.Sprintf(menuKeyFmt, restaurantID))
}

// ============================================
// Cart Session Blobs
// ============================================

// GetCartBlob loads the persisted cart-session blob for a session ID
func GetCartBlob(ctx context.Context, sessionID string) ([]byte, error) {
	if client == nil {
		return nil, redis.Nil
	}
	return client.Get(ctx, fmt.Sprintf(cartKeyFmt, sessionID)).Bytes()
}

// SaveCartBlob persists the cart-session blob. Carts live for 24 hours.
func SaveCartBlob(ctx context.Context, sessionID string, data []byte) error {
	if client == nil {
		return fmt.Errorf("cart persistence unavailable: redis not connected")
	}
	return client.Set(ctx, fmt.Sprintf(cartKeyFmt, sessionID), data, 24*time.Hour).Err()
}

// DeleteCartBlob removes the persisted cart session
func DeleteCartBlob(ctx context.Context, sessionID string) error {
	if client == nil {
		return nil
	}
	return client.Del(ctx, fmt.Sprintf(cartKeyFmt, sessionID)).Err()
}

// IsNotFound reports whether a cart load failed because no blob exists
func IsNotFound(err error) bool {
	return err == redis.Nil
}

// ============================================
// Session Revocation Denylist
// ============================================

// RevokeUserSessions denylists all tokens of a user until their natural
// expiry. The reason is stored so the login surface can display it.
func RevokeUserSessions(ctx context.Context, userID string, reason string, ttl time.Duration) {
	if client == nil {
		return
	}
	client.Set(ctx, fmt.Sprintf(revokedKeyFmt, userID), reason, ttl)
}

// SessionRevoked checks the denylist; the reason is empty when not revoked
func SessionRevoked(ctx context.Context, userID string) (string, bool) {
	if client == nil {
		return "", false
	}
	reason, err := client.Get(ctx, fmt.Sprintf(revokedKeyFmt, userID)).Result()
	if err != nil {
		return "", false
	}
	return reason, true
}

// ClearRevocation removes the denylist entry after a fresh login
func ClearRevocation(ctx context.Context, userID string) {
	if client == nil {
		return
	}
	client.Del(ctx, fmt.Sprintf(revokedKeyFmt, userID))
}
