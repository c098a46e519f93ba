package mock

import (
	"context"
	"fmt"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var (
	redisOnce   sync.Once
	redisServer *miniredis.Miniredis
	redisClient *redis.Client
)

// NewRedis starts the shared in-process Redis on first use and returns a
// client connected to it.
func NewRedis() *redis.Client {
	redisOnce.Do(func() {
		server, err := miniredis.Run()
		if err != nil {
			panic(fmt.Sprintf("failed to start miniredis: %s", err))
		}
		redisServer = server
		redisClient = redis.NewClient(&redis.Options{Addr: server.Addr()})
	})
	return redisClient
}

// ClearRedis drops every key.
func ClearRedis(client *redis.Client) error {
	return client.FlushAll(context.Background()).Err()
}

// RedisKeyExists reports whether key is currently stored.
func RedisKeyExists(key string) bool {
	if redisServer == nil {
		return false
	}
	return redisServer.Exists(key)
}
