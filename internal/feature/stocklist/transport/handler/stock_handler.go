// Package handler はstocklistフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"stock_query_backend/internal/feature/stocklist/domain/entity"
	"stock_query_backend/internal/feature/stocklist/transport/http/dto"
	"stock_query_backend/internal/feature/stocklist/usecase"
)

// StockUsecase は株式一覧・検索ユースケースのインターフェースです。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type StockUsecase interface {
	GetStocksByPage(ctx context.Context, n int) ([]entity.Stock, error)
	GetStocksByPageAndArea(ctx context.Context, n int, area string) ([]entity.Stock, error)
	GetStocksByPageAndIndustry(ctx context.Context, n int, industry string) ([]entity.Stock, error)
	GetStockBySymbol(ctx context.Context, symbol string) (*entity.Stock, error)
	GetStockByName(ctx context.Context, name string) (*entity.Stock, error)
}

// StockHandler は株式一覧・検索のHTTPリクエストを処理します。
type StockHandler struct {
	uc StockUsecase
}

// NewStockHandler は指定されたusecaseでStockHandlerの新しいインスタンスを生成します。
func NewStockHandler(uc StockUsecase) *StockHandler {
	return &StockHandler{uc: uc}
}

// toItems はエンティティをレスポンスDTOに変換します。空でも nil ではなく [] を返します。
func toItems(stocks []entity.Stock) []dto.StockItem {
	out := make([]dto.StockItem, 0, len(stocks))
	for _, s := range stocks {
		out = append(out, dto.StockItem{
			ID:       s.ID,
			TsCode:   s.TsCode,
			Symbol:   s.Symbol,
			Name:     s.Name,
			Area:     s.Area,
			Industry: s.Industry,
			ListDate: s.ListDate,
		})
	}
	return out
}

// respondListError はページングクエリのエラーをHTTPステータスへ対応付けます。
// 入力不正と範囲外は 400、それ以外のストレージ障害は 500 です。
func respondListError(c *gin.Context, err error) {
	var rangeErr *usecase.PageOutOfRangeError
	switch {
	case errors.As(err, &rangeErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":       rangeErr.Error(),
			"page":        rangeErr.Page,
			"total_pages": rangeErr.TotalPages,
		})
	case errors.Is(err, usecase.ErrInvalidPage),
		errors.Is(err, usecase.ErrEmptyArea),
		errors.Is(err, usecase.ErrEmptyIndustry),
		errors.Is(err, usecase.ErrEmptySymbol),
		errors.Is(err, usecase.ErrEmptyName):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// GetStocksByPageHandler は全銘柄のnページ目を返します。
//
// エンドポイント例:
// GET /stocks/page/:page_num
func (h *StockHandler) GetStocksByPageHandler(c *gin.Context) {
	// 変換失敗時は 0 を渡し、ページ番号の検証はusecase層に任せる
	page, _ := strconv.Atoi(c.Param("page_num"))

	stocks, err := h.uc.GetStocksByPage(c.Request.Context(), page)
	if err != nil {
		respondListError(c, err)
		return
	}
	c.JSON(http.StatusOK, toItems(stocks))
}

// GetStocksByAreaHandler は指定地域の銘柄のnページ目を返します。
//
// エンドポイント例:
// GET /stocks/area/:area/page/:page_num
func (h *StockHandler) GetStocksByAreaHandler(c *gin.Context) {
	area := c.Param("area")
	page, _ := strconv.Atoi(c.Param("page_num"))

	stocks, err := h.uc.GetStocksByPageAndArea(c.Request.Context(), page, area)
	if err != nil {
		respondListError(c, err)
		return
	}
	c.JSON(http.StatusOK, toItems(stocks))
}

// GetStocksByIndustryHandler は指定業種の銘柄のnページ目を返します。
//
// エンドポイント例:
// GET /stocks/industry/:industry/page/:page_num
func (h *StockHandler) GetStocksByIndustryHandler(c *gin.Context) {
	industry := c.Param("industry")
	page, _ := strconv.Atoi(c.Param("page_num"))

	stocks, err := h.uc.GetStocksByPageAndIndustry(c.Request.Context(), page, industry)
	if err != nil {
		respondListError(c, err)
		return
	}
	c.JSON(http.StatusOK, toItems(stocks))
}

// GetStockBySymbolHandler は銘柄コードで1件検索します。不在は 404 です。
//
// エンドポイント例:
// GET /stocks/symbol/:symbol
func (h *StockHandler) GetStockBySymbolHandler(c *gin.Context) {
	symbol := c.Param("symbol")

	stock, err := h.uc.GetStockBySymbol(c.Request.Context(), symbol)
	if err != nil {
		respondListError(c, err)
		return
	}
	if stock == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("stock with symbol %s not found", symbol)})
		return
	}
	items := toItems([]entity.Stock{*stock})
	c.JSON(http.StatusOK, items[0])
}

// GetStockByNameHandler は銘柄名で1件検索します。不在は 404 です。
//
// エンドポイント例:
// GET /stocks/name/:name
func (h *StockHandler) GetStockByNameHandler(c *gin.Context) {
	name := c.Param("name")

	stock, err := h.uc.GetStockByName(c.Request.Context(), name)
	if err != nil {
		respondListError(c, err)
		return
	}
	if stock == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("stock named %s not found", name)})
		return
	}
	items := toItems([]entity.Stock{*stock})
	c.JSON(http.StatusOK, items[0])
}
