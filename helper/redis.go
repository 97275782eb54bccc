package helper

import (
	"context"
	"cruise_manager/logger"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is nil when REDIS_ADDR is empty or unreachable. Locks then always
// succeed and publishes are dropped.
var Redis *redis.Client

func InitRedis(addr, password string) *redis.Client {
	if addr == "" {
		logger.Warn("redis disabled, REDIS_ADDR is empty")
		return nil
	}
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unreachable, running without it", "addr", addr, "error", err)
		_ = client.Close()
		return nil
	}
	logger.Info("redis connected", "addr", addr)
	return client
}

func BookingLockKey(cruiseId uint, email, date string) string {
	return fmt.Sprintf("booking-lock:%d:%s:%s", cruiseId, strings.ToLower(strings.TrimSpace(email)), date)
}

// AcquireLock takes key for ttl. It reports false if someone else holds it.
func AcquireLock(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	if Redis == nil {
		return true, nil
	}
	return Redis.SetNX(ctx, key, time.Now().Unix(), ttl).Result()
}

func ReleaseLock(ctx context.Context, key string) {
	if Redis == nil {
		return
	}
	if err := Redis.Del(ctx, key).Err(); err != nil {
		logger.Warn("release lock failed", "key", key, "error", err)
	}
}

func MessageChannel(userId string) string {
	return "messages:" + userId
}

func Publish(ctx context.Context, channel string, payload interface{}) error {
	if Redis == nil {
		return nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return Redis.Publish(ctx, channel, raw).Err()
}
