// Package cache は日足リポジトリのRedisキャッシュデコレータを提供します。
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"stock_query_backend/internal/feature/dailydata/domain/entity"
	"stock_query_backend/internal/feature/dailydata/usecase"
)

// CachingDailyBarRepository は DailyBarRepository をRedisキャッシュでデコレートします。
// 銘柄ごとの直近日足は日次バッチでしか変わらないため、読み取りをキャッシュしても
// 鮮度の問題は起きません。総件数やページはキャッシュの対象外です。
type CachingDailyBarRepository struct {
	inner     usecase.DailyBarRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingDailyBarRepository は DailyBarRepository をRedisキャッシュでデコレートします。
// ttl=0 の場合は5分にフォールバックします。namespace が空なら "dailybars" を使います。
func NewCachingDailyBarRepository(rdb *redis.Client, ttl time.Duration, inner usecase.DailyBarRepository, namespace string) usecase.DailyBarRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "dailybars"
	}
	return &CachingDailyBarRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

func (c *CachingDailyBarRepository) cacheKey(tsCode, since string) string {
	return fmt.Sprintf("%s:%s:%s", c.namespace, tsCode, since)
}

// ListSince はキャッシュ経由で日足を取得します。
// Redis未設定なら素通し、キャッシュ操作の失敗はベストエフォートで握りつぶします。
func (c *CachingDailyBarRepository) ListSince(ctx context.Context, tsCode, since string) ([]entity.DailyBar, error) {
	if c.rdb == nil {
		return c.inner.ListSince(ctx, tsCode, since)
	}

	key := c.cacheKey(tsCode, since)

	// 1) キャッシュヒット確認
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.DailyBar
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// 壊れていたら落とす
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) DB へフォールバック
	out, err := c.inner.ListSince(ctx, tsCode, since)
	if err != nil {
		return nil, err
	}

	// 3) キャッシュ保存（ベストエフォート）
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}
