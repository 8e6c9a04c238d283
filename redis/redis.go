package redis

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

func InitRedis() {
	Client = redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_ADDR"),
		DB:   0,
	})

	// Test connection
	_, err := Client.Ping(Ctx).Result()
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}
	log.Println("✅ Connected to Redis")
}

func blacklistKey(token string) string {
	return "blacklist:" + token
}

// BlacklistToken voids a JWT until its natural expiry. Logout is otherwise
// meaningless with stateless tokens.
func BlacklistToken(token string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return Client.Set(Ctx, blacklistKey(token), "1", ttl).Err()
}

// IsBlacklisted reports whether the token was voided by a logout.
func IsBlacklisted(token string) (bool, error) {
	n, err := Client.Exists(Ctx, blacklistKey(token)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
