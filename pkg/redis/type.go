package redis

import (
	"errors"

	goredis "github.com/redis/go-redis/v9"
)

// Config holds Redis configuration.
type Config struct {
	Host     string
	Port     int
	Password string
	DB       int
}

var (
	ErrHostRequired = errors.New("redis: host is required")
	ErrInvalidPort  = errors.New("redis: port must be between 1 and 65535")
)

// redisImpl implements IRedis using go-redis.
type redisImpl struct {
	client *goredis.Client
}
