// Package cache is a Redis-backed read-through cache for resource lists.
// Keys are "list:<resource>" or "list:<resource>:<parentID>"; every successful
// mutation invalidates the matching keys, failed mutations leave the cache
// untouched. The server degrades gracefully when Redis is unreachable.
package cache

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const listTTL = 5 * time.Minute

var client *redis.Client

// Init initializes the Redis connection
func Init() error {
	// K8s sets REDIS_SERVICE_HOST and REDIS_SERVICE_PORT for services
	host := os.Getenv("REDIS_SERVICE_HOST")
	if host == "" {
		host = "redis" // fallback to service name
	}
	port := os.Getenv("REDIS_SERVICE_PORT")
	if port == "" {
		port = "6379"
	}

	client = redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: os.Getenv("REDIS_PASSWORD"),
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

// Available reports whether the cache is connected.
func Available() bool {
	return client != nil
}

// ListKey builds the cache key for a resource's unscoped list.
func ListKey(resource string) string {
	return "list:" + resource
}

// ScopedListKey builds the cache key for a list filtered by a parent id.
func ScopedListKey(resource string, parentID int) string {
	return "list:" + resource + ":" + strconv.Itoa(parentID)
}

// GetList returns the cached JSON for a list key, or false on miss.
func GetList(ctx context.Context, key string) ([]byte, bool) {
	if client == nil {
		return nil, false
	}
	data, err := client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// SetList stores the serialized list under the key.
func SetList(ctx context.Context, key string, data []byte) {
	if client == nil {
		return
	}
	if err := client.Set(ctx, key, data, listTTL).Err(); err != nil {
		log.Printf("[Cache] set %s failed: %v", key, err)
	}
}

// Invalidate removes the unscoped list key and every scoped variant for the
// resource. Called once per successful mutation.
func Invalidate(ctx context.Context, resource string) {
	if client == nil {
		return
	}
	iter := client.Scan(ctx, 0, ListKey(resource)+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if len(keys) > 0 {
		if err := client.Del(ctx, keys...).Err(); err != nil {
			log.Printf("[Cache] invalidate %s failed: %v", resource, err)
		}
	}
}

// Close shuts down the Redis connection
func Close() {
	if client != nil {
		client.Close()
	}
}
