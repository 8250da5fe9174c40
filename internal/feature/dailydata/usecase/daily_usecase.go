// Package usecase は日足・技術指標の読み取りロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stock_query_backend/internal/feature/dailydata/domain/entity"
)

const (
	// RecentWindowDays は直近日足の遡及日数です。連休を挟んでも平日7件を
	// 確保できるよう14日に固定しています（取引カレンダー表を持たないための近似）。
	RecentWindowDays = 14
	// MaxRecentBars は直近日足の最大返却件数です。
	MaxRecentBars = 7

	dateLayout = "2006-01-02"
)

// ErrEmptyTsCode is returned when the ts_code parameter is empty.
var ErrEmptyTsCode = errors.New("ts_code must not be empty")

// DailyBarRepository は日足データの読み取りレイヤーを抽象化します。
type DailyBarRepository interface {
	// ListSince は since（ISO日付文字列）以降の日足を trade_date 降順で返します。
	ListSince(ctx context.Context, tsCode, since string) ([]entity.DailyBar, error)
}

// IndicatorRepository は技術指標の読み取りレイヤーを抽象化します。
type IndicatorRepository interface {
	// FindLatest は指定銘柄でidが最大の1件を返します。該当なしは (nil, nil)。
	FindLatest(ctx context.Context, tsCode string) (*entity.TechnicalIndicator, error)
}

// DailyDataUsecase は日足と技術指標のユースケースを提供します。
type DailyDataUsecase struct {
	bars       DailyBarRepository
	indicators IndicatorRepository
}

// NewDailyDataUsecase はDailyDataUsecaseの新しいインスタンスを生成します。
func NewDailyDataUsecase(bars DailyBarRepository, indicators IndicatorRepository) *DailyDataUsecase {
	return &DailyDataUsecase{bars: bars, indicators: indicators}
}

// isWeekday は月〜金のとき true を返します。
func isWeekday(d time.Weekday) bool {
	return d >= time.Monday && d <= time.Friday
}

// GetRecentTradingDays は直近14日以内の平日日足を新しい順に最大7件返します。
//
// 祝日が多い期間は7件に満たないことがありますが、それは正常な結果です。
// 平日判定はSQL方言に依存しないようGo側で行います。
func (u *DailyDataUsecase) GetRecentTradingDays(ctx context.Context, tsCode string) ([]entity.DailyBar, error) {
	if tsCode == "" {
		return nil, ErrEmptyTsCode
	}

	since := time.Now().AddDate(0, 0, -RecentWindowDays).Format(dateLayout)
	bars, err := u.bars.ListSince(ctx, tsCode, since)
	if err != nil {
		return nil, fmt.Errorf("list recent bars for %s: %w", tsCode, err)
	}

	out := make([]entity.DailyBar, 0, MaxRecentBars)
	for _, b := range bars {
		d, err := time.Parse(dateLayout, b.TradeDate)
		if err != nil {
			// 日付が壊れている行は読み飛ばす
			continue
		}
		if !isWeekday(d.Weekday()) {
			continue
		}
		out = append(out, b)
		if len(out) == MaxRecentBars {
			break
		}
	}
	return out, nil
}

// GetLatestIndicators は指定銘柄の最新技術指標を返します。該当なしは (nil, nil) です。
func (u *DailyDataUsecase) GetLatestIndicators(ctx context.Context, tsCode string) (*entity.TechnicalIndicator, error) {
	if tsCode == "" {
		return nil, ErrEmptyTsCode
	}
	indicator, err := u.indicators.FindLatest(ctx, tsCode)
	if err != nil {
		return nil, fmt.Errorf("find latest indicators for %s: %w", tsCode, err)
	}
	return indicator, nil
}
