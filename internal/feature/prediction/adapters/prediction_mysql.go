// Package adapters はpredictionフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"gorm.io/gorm"

	"stock_query_backend/internal/feature/prediction/domain/entity"
	"stock_query_backend/internal/feature/prediction/usecase"
)

// predictionMySQL はPredictionRepositoryインターフェースのMySQL実装です。
type predictionMySQL struct {
	db *gorm.DB
}

var _ usecase.PredictionRepository = (*predictionMySQL)(nil)

// NewPredictionRepository は指定されたDB接続でpredictionMySQLリポジトリの新しいインスタンスを生成します。
func NewPredictionRepository(db *gorm.DB) *predictionMySQL {
	return &predictionMySQL{db: db}
}

// ListForDate は指定銘柄・指定predict_dateの予測をid降順で返します。
func (r *predictionMySQL) ListForDate(ctx context.Context, tsCode, predictDate string) ([]entity.Prediction, error) {
	var predictions []entity.Prediction
	if err := r.db.WithContext(ctx).
		Where("ts_code = ? AND predict_date = ?", tsCode, predictDate).
		Order("id DESC").
		Find(&predictions).Error; err != nil {
		return nil, err
	}
	return predictions, nil
}

// ListTop は選抜テーブルの全件をid昇順で返します。
func (r *predictionMySQL) ListTop(ctx context.Context) ([]entity.Prediction, error) {
	var predictions []entity.Prediction
	if err := r.db.WithContext(ctx).
		Table(entity.TopPredictionTable).
		Order("id ASC").
		Find(&predictions).Error; err != nil {
		return nil, err
	}
	return predictions, nil
}
