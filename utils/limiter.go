package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// CanIssueGuestToken не более limit гостевых токенов в час на ключ (обычно IP клиента).
// Если Redis недоступен - не блокируем выдачу.
func CanIssueGuestToken(ctx context.Context, rdb *redis.Client, key string, limit int) (bool, string) {
	if rdb == nil || limit <= 0 {
		return true, ""
	}
	hourKey := fmt.Sprintf("guest_token_hour_%s", key)
	cnt, err := rdb.Get(ctx, hourKey).Int()
	if err != nil && err != redis.Nil {
		return true, ""
	}
	if cnt >= limit {
		return false, fmt.Sprintf("at most %d guest tokens per hour", limit)
	}
	return true, ""
}

func MarkGuestTokenIssued(ctx context.Context, rdb *redis.Client, key string) {
	if rdb == nil {
		return
	}
	hourKey := fmt.Sprintf("guest_token_hour_%s", key)
	pipe := rdb.TxPipeline()
	pipe.Incr(ctx, hourKey)
	pipe.Expire(ctx, hourKey, time.Hour)
	_, _ = pipe.Exec(ctx)
}

// BlacklistToken помечает токен отозванным до истечения его срока
func BlacklistToken(ctx context.Context, rdb *redis.Client, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return rdb.Set(ctx, "blacklist:"+token, "1", ttl).Err()
}

// IsTokenBlacklisted true если токен отозван через logout
func IsTokenBlacklisted(ctx context.Context, rdb *redis.Client, token string) bool {
	if rdb == nil {
		return false
	}
	n, err := rdb.Exists(ctx, "blacklist:"+token).Result()
	return err == nil && n > 0
}
