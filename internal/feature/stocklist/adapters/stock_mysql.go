// Package adapters はstocklistフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"stock_query_backend/internal/feature/stocklist/domain/entity"
	"stock_query_backend/internal/feature/stocklist/usecase"
)

// stockMySQL はStockRepositoryインターフェースのMySQL実装です。
type stockMySQL struct {
	db *gorm.DB
}

var _ usecase.StockRepository = (*stockMySQL)(nil)

// NewStockRepository は指定されたDB接続でstockMySQLリポジトリの新しいインスタンスを生成します。
func NewStockRepository(db *gorm.DB) *stockMySQL {
	return &stockMySQL{db: db}
}

// Count は全銘柄数を返します。
func (r *stockMySQL) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entity.Stock{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByArea は指定地域の銘柄数を返します。
func (r *stockMySQL) CountByArea(ctx context.Context, area string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entity.Stock{}).
		Where("area = ?", area).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByIndustry は指定業種の銘柄数を返します。
func (r *stockMySQL) CountByIndustry(ctx context.Context, industry string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entity.Stock{}).
		Where("industry = ?", industry).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ListPage はid昇順で1ページ分の銘柄を返します。
func (r *stockMySQL) ListPage(ctx context.Context, limit, offset int) ([]entity.Stock, error) {
	var stocks []entity.Stock
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&stocks).Error; err != nil {
		return nil, err
	}
	return stocks, nil
}

// ListPageByArea は指定地域のid昇順1ページ分を返します。
func (r *stockMySQL) ListPageByArea(ctx context.Context, area string, limit, offset int) ([]entity.Stock, error) {
	var stocks []entity.Stock
	if err := r.db.WithContext(ctx).
		Where("area = ?", area).
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&stocks).Error; err != nil {
		return nil, err
	}
	return stocks, nil
}

// ListPageByIndustry は指定業種のid昇順1ページ分を返します。
func (r *stockMySQL) ListPageByIndustry(ctx context.Context, industry string, limit, offset int) ([]entity.Stock, error) {
	var stocks []entity.Stock
	if err := r.db.WithContext(ctx).
		Where("industry = ?", industry).
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&stocks).Error; err != nil {
		return nil, err
	}
	return stocks, nil
}

// FindBySymbol は銘柄コードに一致する最初の1件を返します。
// 該当レコードがない場合は (nil, nil) を返します。不在はエラーではありません。
func (r *stockMySQL) FindBySymbol(ctx context.Context, symbol string) (*entity.Stock, error) {
	var stock entity.Stock
	err := r.db.WithContext(ctx).
		Where("symbol = ?", symbol).
		First(&stock).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &stock, nil
}

// FindByName は銘柄名に一致する最初の1件を返します。該当なしは (nil, nil) です。
func (r *stockMySQL) FindByName(ctx context.Context, name string) (*entity.Stock, error) {
	var stock entity.Stock
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&stock).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &stock, nil
}
