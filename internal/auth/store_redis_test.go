// Copyright (c) 2026 SeasideRacoon. All rights reserved.

package auth_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeasideRacoon/bookstore-api/internal/auth"
	"github.com/SeasideRacoon/bookstore-api/internal/platform/constants"
)

/*
TestThrottleRepository_Window verifies counting, expiry, and reset of the
failed-attempt counter.
*/
func TestThrottleRepository_Window(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	repository := auth.NewThrottleRepository(client)

	ctx := context.Background()
	email := "window@example.com"

	// Missing key counts as zero.
	attempts, err := repository.Attempts(ctx, email)
	require.NoError(t, err)
	assert.Equal(t, int64(0), attempts)

	// Two failures increment the counter.
	count, err := repository.Fail(ctx, email)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = repository.Fail(ctx, email)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// The counter disappears once the window passes.
	server.FastForward(constants.LoginAttemptWindow)

	attempts, err = repository.Attempts(ctx, email)
	require.NoError(t, err)
	assert.Equal(t, int64(0), attempts)

	// Reset clears an active counter immediately.
	_, err = repository.Fail(ctx, email)
	require.NoError(t, err)
	require.NoError(t, repository.Reset(ctx, email))

	attempts, err = repository.Attempts(ctx, email)
	require.NoError(t, err)
	assert.Equal(t, int64(0), attempts)
}
