// Package adapters はdailydataフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"stock_query_backend/internal/feature/dailydata/domain/entity"
	"stock_query_backend/internal/feature/dailydata/usecase"
)

// dailyBarMySQL はDailyBarRepositoryインターフェースのMySQL実装です。
type dailyBarMySQL struct {
	db *gorm.DB
}

var _ usecase.DailyBarRepository = (*dailyBarMySQL)(nil)

// NewDailyBarRepository は指定されたDB接続でdailyBarMySQLリポジトリの新しいインスタンスを生成します。
func NewDailyBarRepository(db *gorm.DB) *dailyBarMySQL {
	return &dailyBarMySQL{db: db}
}

// ListSince は since 以降の日足を trade_date 降順で返します。
// 平日判定はusecase側で行うため、ここでは日付窓の絞り込みだけを担います。
func (r *dailyBarMySQL) ListSince(ctx context.Context, tsCode, since string) ([]entity.DailyBar, error) {
	var bars []entity.DailyBar
	if err := r.db.WithContext(ctx).
		Where("ts_code = ? AND trade_date >= ?", tsCode, since).
		Order("trade_date DESC").
		Find(&bars).Error; err != nil {
		return nil, err
	}
	return bars, nil
}

// indicatorMySQL はIndicatorRepositoryインターフェースのMySQL実装です。
type indicatorMySQL struct {
	db *gorm.DB
}

var _ usecase.IndicatorRepository = (*indicatorMySQL)(nil)

// NewIndicatorRepository はindicatorMySQLリポジトリの新しいインスタンスを生成します。
func NewIndicatorRepository(db *gorm.DB) *indicatorMySQL {
	return &indicatorMySQL{db: db}
}

// FindLatest は指定銘柄でidが最大の1件を返します。該当なしは (nil, nil) です。
func (r *indicatorMySQL) FindLatest(ctx context.Context, tsCode string) (*entity.TechnicalIndicator, error) {
	var indicator entity.TechnicalIndicator
	err := r.db.WithContext(ctx).
		Where("ts_code = ?", tsCode).
		Order("id DESC").
		First(&indicator).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &indicator, nil
}
