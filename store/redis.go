package store

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

// RedisStore backs the key-value contract with a redis instance, for
// deployments where the widget's state should outlive the host.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// OpenRedisStore connects using redisURL when set, falling back to
// addr/password. Keys are namespaced under prefix to keep multiple widget
// instances apart on a shared instance.
func OpenRedisStore(redisURL, addr, password, prefix string) (*RedisStore, error) {
	var opt *redis.Options
	if redisURL != "" {
		parsedOpt, err := redis.ParseURL(redisURL)
		if err != nil {
			return nil, err
		}
		opt = parsedOpt
	} else {
		opt = &redis.Options{
			Addr:     addr,
			Password: password,
			DB:       0,
		}
	}

	client := redis.NewClient(opt)
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		client.Close()
		return nil, err
	}

	log.Println("Redis store connected")
	return &RedisStore{client: client, prefix: prefix}, nil
}

func (rs *RedisStore) Get(key string) (string, bool) {
	value, err := rs.client.Get(context.Background(), rs.prefix+key).Result()
	if err != nil {
		return "", false
	}
	return value, true
}

func (rs *RedisStore) Set(key, value string) error {
	return rs.client.Set(context.Background(), rs.prefix+key, value, 0).Err()
}

func (rs *RedisStore) Remove(key string) error {
	return rs.client.Del(context.Background(), rs.prefix+key).Err()
}

func (rs *RedisStore) Close() error {
	return rs.client.Close()
}
