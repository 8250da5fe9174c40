// Package handler はpredictionフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"stock_query_backend/internal/feature/prediction/domain/entity"
	"stock_query_backend/internal/feature/prediction/transport/http/dto"
	"stock_query_backend/internal/feature/prediction/usecase"
)

// PredictionUsecase はAI予測データユースケースのインターフェースです。
type PredictionUsecase interface {
	GetTodayPredictions(ctx context.Context, tsCode string) ([]entity.Prediction, error)
	GetTopPredictions(ctx context.Context) ([]entity.Prediction, error)
}

// PredictionHandler はAI予測データのHTTPリクエストを処理します。
type PredictionHandler struct {
	uc PredictionUsecase
}

// NewPredictionHandler は指定されたusecaseでPredictionHandlerの新しいインスタンスを生成します。
func NewPredictionHandler(uc PredictionUsecase) *PredictionHandler {
	return &PredictionHandler{uc: uc}
}

func toItems(predictions []entity.Prediction) []dto.PredictionItem {
	out := make([]dto.PredictionItem, 0, len(predictions))
	for _, p := range predictions {
		out = append(out, dto.PredictionItem{
			ID:              p.ID,
			TsCode:          p.TsCode,
			PredictDate:     p.PredictDate,
			ForDate:         p.ForDate,
			PredictionScore: p.PredictionScore,
		})
	}
	return out
}

// GetTodayPredictionsHandler は当日生成された予測を返します。1件もなければ 404 です。
//
// エンドポイント例:
// GET /stocks/:ts_code/predictions/today
func (h *PredictionHandler) GetTodayPredictionsHandler(c *gin.Context) {
	tsCode := c.Param("ts_code")

	predictions, err := h.uc.GetTodayPredictions(c.Request.Context(), tsCode)
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyTsCode) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(predictions) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("no predictions today for %s", tsCode)})
		return
	}
	c.JSON(http.StatusOK, toItems(predictions))
}

// GetTopPredictionsHandler は選抜テーブルの予測全件を返します。空なら 404 です。
//
// エンドポイント例:
// GET /stocks/predictions/top3
func (h *PredictionHandler) GetTopPredictionsHandler(c *gin.Context) {
	predictions, err := h.uc.GetTopPredictions(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(predictions) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no top predictions available"})
		return
	}
	c.JSON(http.StatusOK, toItems(predictions))
}
