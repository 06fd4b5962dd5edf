// Package ratelimit implements the admission gate that runs in front of
// every route.
//
// A [Limiter] applies a fixed-window [Policy] to a client key: up to Quota
// requests are admitted per Window, and once the quota is exhausted the key
// is blocked for BlockDuration. After the block elapses a fresh window
// starts. Counter state lives in a [Store]: [MemoryStore] keeps it in
// process, [RedisStore] shares it between server instances.
package ratelimit
