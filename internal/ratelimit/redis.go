// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultRedisTimeout = 5 * time.Second
	redisKeyPrefix      = "ratelimit:"
)

// takeScript counts a request and decides on it in one round trip.
//
// KEYS[1] window counter, KEYS[2] block marker.
// ARGV[1] quota, ARGV[2] window ms, ARGV[3] block ms (0 = rest of window).
// Returns {allowed, remaining, retry_after_ms}.
var takeScript = redis.NewScript(`
local blocked = redis.call('PTTL', KEYS[2])
if blocked > 0 then
	return {0, 0, blocked}
end

local count = redis.call('INCR', KEYS[1])
if count == 1 then
	redis.call('PEXPIRE', KEYS[1], ARGV[2])
end

local quota = tonumber(ARGV[1])
if count > quota then
	local block = tonumber(ARGV[3])
	if block <= 0 then
		block = redis.call('PTTL', KEYS[1])
		if block <= 0 then
			block = tonumber(ARGV[2])
		end
	end
	redis.call('SET', KEYS[2], '1', 'PX', block)
	redis.call('DEL', KEYS[1])
	return {0, 0, block}
end

return {1, quota - count, 0}
`)

// RedisStore is a [Store] shared by every server instance connected to the
// same Redis database. Windows are anchored at a key's first request, as
// with [MemoryStore]; expiry is delegated to Redis so no sweeping is needed.
type RedisStore struct {
	client redis.Scripter
}

func NewRedisStore(client redis.Scripter) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Take(ctx context.Context, key string, _ time.Time, policy Policy) (Decision, error) {
	keys := []string{redisKeyPrefix + key + ":count", redisKeyPrefix + key + ":block"}

	res, err := takeScript.Run(ctx, s.client, keys,
		policy.Quota, policy.Window.Milliseconds(), policy.BlockDuration.Milliseconds(),
	).Int64Slice()
	if err != nil {
		return Decision{}, fmt.Errorf("rate limit script: %w", err)
	}
	if len(res) != 3 {
		return Decision{}, fmt.Errorf("rate limit script: unexpected reply %v", res)
	}

	return Decision{
		Allowed:    res[0] == 1,
		Remaining:  int(res[1]),
		RetryAfter: time.Duration(res[2]) * time.Millisecond,
	}, nil
}

// RedisConfig captures the settings for establishing a Redis connection.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Timeout  time.Duration
}

// ConnectRedis initialises a Redis client and validates connectivity with
// a ping. A default timeout is applied when none is provided.
func ConnectRedis(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	if cfg.Addr == "" {
		return nil, errors.New("redis address is empty")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultRedisTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
