package rdx

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

// Init connects the shared Redis client. Cache helpers degrade to no-ops
// when Redis is unreachable, so startup does not fail on a ping error.
func Init() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	Conn = redis.NewClient(&redis.Options{Addr: addr})
}

func Close() error {
	if Conn == nil {
		return nil
	}
	return Conn.Close()
}

// CacheGet unmarshals a cached JSON value into dest. Returns false on miss
// or any Redis error.
func CacheGet(ctx context.Context, key string, dest interface{}) bool {
	if Conn == nil {
		return false
	}
	raw, err := Conn.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		log.Printf("rdx: stale cache entry %s: %v", key, err)
		return false
	}
	return true
}

// CacheSet stores a JSON value with a TTL. Failures are logged, not surfaced.
func CacheSet(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if Conn == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := Conn.Set(ctx, key, raw, ttl).Err(); err != nil {
		log.Printf("rdx: cache set %s: %v", key, err)
	}
}

// CacheDel drops keys after a write so readers refetch from Mongo.
func CacheDel(ctx context.Context, keys ...string) {
	if Conn == nil || len(keys) == 0 {
		return
	}
	if err := Conn.Del(ctx, keys...).Err(); err != nil {
		log.Printf("rdx: cache del: %v", err)
	}
}

// AcquireLock takes a short-lived SetNX lock, used to serialize payment
// callbacks for the same gateway order.
func AcquireLock(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	if Conn == nil {
		return true, nil
	}
	return Conn.SetNX(ctx, "lock:"+key, "1", ttl).Result()
}

// ReleaseLock releases the lock.
func ReleaseLock(ctx context.Context, key string) {
	if Conn == nil {
		return
	}
	if err := Conn.Del(ctx, "lock:"+key).Err(); err != nil {
		log.Printf("rdx: release lock %s: %v", key, err)
	}
}
