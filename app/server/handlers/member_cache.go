package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"orpheo-api/app/server/constants"
	"orpheo-api/app/server/models"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// memberByID reads through the redis cache. Store errors are returned as is.
func (a *App) memberByID(ctx context.Context, id uint) (*models.Member, error) {
	var member models.Member

	cacheKey := fmt.Sprintf(constants.CacheKeyMemberInfo, id)
	if cacheBytes, err := a.rdb.Get(ctx, cacheKey).Bytes(); err != nil {
		if !errors.Is(err, redis.Nil) {
			a.l.Error("failed to query cache for member info", zap.Uint("id", id), zap.Error(err))
		}
	} else if err = json.Unmarshal(cacheBytes, &member); err != nil {
		a.l.Error("failed to unmarshal member info", zap.Uint("id", id), zap.ByteString("cacheBytes", cacheBytes), zap.Error(err))
		// Probably a stale layout, drop it
		a.rdb.Del(ctx, cacheKey)
	} else {
		return &member, nil
	}

	found, err := a.store.MemberByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if cacheBytes, err := json.Marshal(found); err != nil {
		a.l.Error("failed to marshal member info", zap.Uint("id", id), zap.Error(err))
	} else if err = a.rdb.Set(ctx, cacheKey, cacheBytes, constants.CacheExpireMemberInfo).Err(); err != nil {
		a.l.Error("failed to cache member info", zap.Uint("id", id), zap.Error(err))
	}

	return found, nil
}

func (a *App) invalidateMember(ctx context.Context, id uint) {
	if err := a.rdb.Del(ctx, fmt.Sprintf(constants.CacheKeyMemberInfo, id)).Err(); err != nil {
		a.l.Error("failed to invalidate member cache", zap.Uint("id", id), zap.Error(err))
	}
}
