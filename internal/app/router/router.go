package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	dailyhandler "stock_query_backend/internal/feature/dailydata/transport/handler"
	predictionhandler "stock_query_backend/internal/feature/prediction/transport/handler"
	stockhandler "stock_query_backend/internal/feature/stocklist/transport/handler"
	"stock_query_backend/internal/interface/handler"
)

func NewRouter(stocks *stockhandler.StockHandler, daily *dailyhandler.DailyDataHandler,
	predictions *predictionhandler.PredictionHandler) *gin.Engine {
	r := gin.Default()

	// CORS: 開発中はフロント（Vite 5173 / CRA 3000 / Vue CLI 8080）を含めて全許可
	r.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:     []string{"*"},
		ExposeHeaders:    []string{"*"},
		AllowCredentials: true,
		MaxAge:           10 * time.Minute,
	}))

	// 導通確認用
	r.GET("/", handler.Health)
	r.GET("/healthz", handler.Health)
	// 接続設定の確認用
	r.GET("/debug/env", handler.DebugEnv)

	// 銘柄一覧（ページング）
	r.GET("/stocks/page/:page_num", stocks.GetStocksByPageHandler)
	r.GET("/stocks/symbol/:symbol", stocks.GetStockBySymbolHandler)
	r.GET("/stocks/name/:name", stocks.GetStockByNameHandler)
	r.GET("/stocks/area/:area/page/:page_num", stocks.GetStocksByAreaHandler)
	r.GET("/stocks/industry/:industry/page/:page_num", stocks.GetStocksByIndustryHandler)

	// 固定パスはワイルドカード（:ts_code）より先に登録する
	r.GET("/stocks/predictions/top3", predictions.GetTopPredictionsHandler)

	// 個別銘柄
	r.GET("/stocks/:ts_code/recent-7days", daily.GetRecentTradingDaysHandler)
	r.GET("/stocks/:ts_code/technical-indicators/latest", daily.GetLatestIndicatorsHandler)
	r.GET("/stocks/:ts_code/predictions/today", predictions.GetTodayPredictionsHandler)

	return r
}
