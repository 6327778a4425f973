package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// 缓存只是加速，任何一步失败都记日志后回源数据库，不影响请求本身

func (a *App) cacheGetJSON(ctx context.Context, key string, dest any) bool {
	cacheBytes, err := a.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			a.l.Error("failed to query cache", zap.String("key", key), zap.Error(err))
		}
		return false
	}

	if err = json.Unmarshal(cacheBytes, dest); err != nil {
		a.l.Error("failed to unmarshal cache", zap.String("key", key), zap.ByteString("cacheBytes", cacheBytes), zap.Error(err))
		// 可能是无效的缓存，清理掉
		a.rdb.Del(ctx, key)
		return false
	}

	return true
}

func (a *App) cacheSetJSON(ctx context.Context, key string, v any, expire time.Duration) {
	cacheBytes, err := json.Marshal(v)
	if err != nil {
		a.l.Error("failed to marshal cache", zap.String("key", key), zap.Error(err))
		return
	}

	if err := a.rdb.Set(ctx, key, cacheBytes, expire).Err(); err != nil {
		a.l.Error("failed to set cache", zap.String("key", key), zap.Error(err))
	}
}

func (a *App) cacheDel(ctx context.Context, keys ...string) {
	if err := a.rdb.Del(ctx, keys...).Err(); err != nil {
		a.l.Error("failed to delete cache", zap.Strings("keys", keys), zap.Error(err))
	}
}
