package repository

import (
	redisapp "evermore_gallery/internal/storage/redis"

	"context"
	"time"
)

// RedisAttemptRepo throttles client login attempts per identifier
// (email or slug). The counter lives in redis with a sliding window
// set on first failure in the window.
type RedisAttemptRepo struct {
	Client      *redisapp.Client
	MaxAttempts int64
	Window      time.Duration
}

func NewRedisAttemptRepo(client *redisapp.Client, maxAttempts int64, window time.Duration) *RedisAttemptRepo {
	return &RedisAttemptRepo{
		Client:      client,
		MaxAttempts: maxAttempts,
		Window:      window,
	}
}

// Allow counts the attempt and reports whether the caller is still
// under the limit for the window.
func (r *RedisAttemptRepo) Allow(ctx context.Context, identifier string) (bool, error) {
	key := attemptKey(identifier)

	count, err := r.Client.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}

	if count == 1 {
		if err := r.Client.Expire(ctx, key, r.Window).Err(); err != nil {
			return false, err
		}
	}

	return count <= r.MaxAttempts, nil
}

// Reset clears the counter, used after a successful authentication.
func (r *RedisAttemptRepo) Reset(ctx context.Context, identifier string) error {
	return r.Client.Del(ctx, attemptKey(identifier)).Err()
}

func attemptKey(identifier string) string {
	return "login_attempts:" + identifier
}
