// Copyright (c) 2026 SeasideRacoon. All rights reserved.

package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/SeasideRacoon/bookstore-api/internal/platform/constants"
)

// RedisThrottleRepository implements ThrottleRepository using Redis.
//
// Keys carry a TTL, so a quiet account's counter disappears on its own and
// the throttle never needs server-side cleanup.
type RedisThrottleRepository struct {
	client *redis.Client
}

// NewThrottleRepository creates a new Redis-backed ThrottleRepository.
func NewThrottleRepository(client *redis.Client) *RedisThrottleRepository {
	return &RedisThrottleRepository{client: client}
}

/*
Fail records one failed login attempt for the email.

Description: Increments the counter and (re)arms the window TTL, so the
window slides with the most recent failure.

Returns:
  - int64: The updated attempt counter
  - error: Execution errors
*/
func (repository *RedisThrottleRepository) Fail(ctx context.Context, email string) (int64, error) {
	key := constants.RedisPrefixLoginAttempts + email

	count, err := repository.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("redis_login_throttle_incr_failed: %w", err)
	}

	if err := repository.client.Expire(ctx, key, constants.LoginAttemptWindow).Err(); err != nil {
		return count, fmt.Errorf("redis_login_throttle_expire_failed: %w", err)
	}

	return count, nil
}

/*
Attempts returns the current failed-attempt counter for the email.

Description: A missing key counts as zero attempts.
*/
func (repository *RedisThrottleRepository) Attempts(ctx context.Context, email string) (int64, error) {
	key := constants.RedisPrefixLoginAttempts + email

	count, err := repository.client.Get(ctx, key).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("redis_login_throttle_get_failed: %w", err)
	}

	return count, nil
}

/*
Reset clears the failed-attempt counter after a successful login.
*/
func (repository *RedisThrottleRepository) Reset(ctx context.Context, email string) error {
	key := constants.RedisPrefixLoginAttempts + email

	if err := repository.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis_login_throttle_reset_failed: %w", err)
	}

	return nil
}
