// Package handler はdailydataフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"stock_query_backend/internal/feature/dailydata/domain/entity"
	"stock_query_backend/internal/feature/dailydata/transport/http/dto"
	"stock_query_backend/internal/feature/dailydata/usecase"
)

// DailyDataUsecase は日足・技術指標ユースケースのインターフェースです。
type DailyDataUsecase interface {
	GetRecentTradingDays(ctx context.Context, tsCode string) ([]entity.DailyBar, error)
	GetLatestIndicators(ctx context.Context, tsCode string) (*entity.TechnicalIndicator, error)
}

// DailyDataHandler は日足・技術指標のHTTPリクエストを処理します。
type DailyDataHandler struct {
	uc DailyDataUsecase
}

// NewDailyDataHandler は指定されたusecaseでDailyDataHandlerの新しいインスタンスを生成します。
func NewDailyDataHandler(uc DailyDataUsecase) *DailyDataHandler {
	return &DailyDataHandler{uc: uc}
}

func respondError(c *gin.Context, err error) {
	if errors.Is(err, usecase.ErrEmptyTsCode) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// GetRecentTradingDaysHandler は直近の平日日足を最大7件返します。1件もなければ 404 です。
//
// エンドポイント例:
// GET /stocks/:ts_code/recent-7days
func (h *DailyDataHandler) GetRecentTradingDaysHandler(c *gin.Context) {
	tsCode := c.Param("ts_code")

	bars, err := h.uc.GetRecentTradingDays(c.Request.Context(), tsCode)
	if err != nil {
		respondError(c, err)
		return
	}
	if len(bars) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("no recent daily data for %s", tsCode)})
		return
	}

	out := make([]dto.DailyBarItem, 0, len(bars))
	for _, b := range bars {
		out = append(out, dto.DailyBarItem{
			TsCode:    b.TsCode,
			TradeDate: b.TradeDate,
			Open:      b.Open,
			High:      b.High,
			Low:       b.Low,
			Close:     b.Close,
			Vol:       b.Vol,
			Amount:    b.Amount,
		})
	}
	c.JSON(http.StatusOK, out)
}

// GetLatestIndicatorsHandler は最新の技術指標1件を返します。不在は 404 です。
//
// エンドポイント例:
// GET /stocks/:ts_code/technical-indicators/latest
func (h *DailyDataHandler) GetLatestIndicatorsHandler(c *gin.Context) {
	tsCode := c.Param("ts_code")

	indicator, err := h.uc.GetLatestIndicators(c.Request.Context(), tsCode)
	if err != nil {
		respondError(c, err)
		return
	}
	if indicator == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("no technical indicators for %s", tsCode)})
		return
	}

	c.JSON(http.StatusOK, dto.IndicatorItem{
		TsCode:    indicator.TsCode,
		TradeDate: indicator.TradeDate,
		MA5:       indicator.MA5,
		MA10:      indicator.MA10,
		MA20:      indicator.MA20,
		RSI:       indicator.RSI,
		MACDDif:   indicator.MACDDif,
		MACDDea:   indicator.MACDDea,
		MACD:      indicator.MACD,
		BollUpper: indicator.BollUpper,
		BollMid:   indicator.BollMid,
		BollLower: indicator.BollLower,
	})
}
