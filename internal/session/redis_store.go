package session

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps each session as a hash at "sess:<token>" with the fields
// is_user, user and unum. The TTL bounds how long an abandoned session may
// linger in Redis and is refreshed on every write.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func key(token string) string { return "sess:" + token }

func (s *RedisStore) Get(ctx context.Context, token string) (Data, bool, error) {
	fields, err := s.rdb.HGetAll(ctx, key(token)).Result()
	if err != nil {
		return Data{}, false, err
	}
	if len(fields) == 0 {
		return Data{}, false, nil
	}
	var d Data
	d.IsUser = fields["is_user"] == "1"
	d.User = fields["user"]
	d.Unum, _ = strconv.ParseInt(fields["unum"], 10, 64)
	return d, true, nil
}

func (s *RedisStore) Set(ctx context.Context, token string, d Data) error {
	isUser := "0"
	if d.IsUser {
		isUser = "1"
	}
	k := key(token)
	if err := s.rdb.HSet(ctx, k,
		"is_user", isUser,
		"user", d.User,
		"unum", strconv.FormatInt(d.Unum, 10),
	).Err(); err != nil {
		return err
	}
	return s.rdb.Expire(ctx, k, s.ttl).Err()
}

func (s *RedisStore) Clear(ctx context.Context, token string) error {
	// Single DEL removes all fields atomically.
	return s.rdb.Del(ctx, key(token)).Err()
}
