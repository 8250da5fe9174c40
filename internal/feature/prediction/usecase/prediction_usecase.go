// Package usecase はAI予測データの読み取りロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stock_query_backend/internal/feature/prediction/domain/entity"
)

// ErrEmptyTsCode is returned when the ts_code parameter is empty.
var ErrEmptyTsCode = errors.New("ts_code must not be empty")

// PredictionRepository はAI予測データの読み取りレイヤーを抽象化します。
type PredictionRepository interface {
	// ListForDate は指定銘柄・指定predict_dateの予測をid降順で返します。
	ListForDate(ctx context.Context, tsCode, predictDate string) ([]entity.Prediction, error)
	// ListTop は選抜テーブルの全件をid昇順で返します。
	ListTop(ctx context.Context) ([]entity.Prediction, error)
}

// PredictionUsecase はAI予測データのユースケースを提供します。
type PredictionUsecase struct {
	repo PredictionRepository
}

// NewPredictionUsecase はPredictionUsecaseの新しいインスタンスを生成します。
func NewPredictionUsecase(r PredictionRepository) *PredictionUsecase {
	return &PredictionUsecase{repo: r}
}

// GetTodayPredictions は当日生成された予測をid降順で返します。空も正常な結果です。
func (u *PredictionUsecase) GetTodayPredictions(ctx context.Context, tsCode string) ([]entity.Prediction, error) {
	if tsCode == "" {
		return nil, ErrEmptyTsCode
	}

	today := time.Now().Format("2006-01-02")
	predictions, err := u.repo.ListForDate(ctx, tsCode, today)
	if err != nil {
		return nil, fmt.Errorf("list today's predictions for %s: %w", tsCode, err)
	}
	return predictions, nil
}

// GetTopPredictions は選抜テーブルの全予測をid昇順で返します。空も正常な結果です。
func (u *PredictionUsecase) GetTopPredictions(ctx context.Context) ([]entity.Prediction, error) {
	predictions, err := u.repo.ListTop(ctx)
	if err != nil {
		return nil, fmt.Errorf("list top predictions: %w", err)
	}
	return predictions, nil
}
