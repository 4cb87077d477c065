package redis

import (
	"market-intel-srv/internal/webhook/repository"
	"market-intel-srv/pkg/log"
	pkgRedis "market-intel-srv/pkg/redis"
)

type implCacheRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
}

// New - Factory
func New(redis pkgRedis.IRedis, l log.Logger) repository.CacheRepository {
	return &implCacheRepository{
		redis: redis,
		l:     l,
	}
}
