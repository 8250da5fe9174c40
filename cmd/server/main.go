package main

import (
	"os"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"stock_query_backend/internal/app/router"
	dailyadapters "stock_query_backend/internal/feature/dailydata/adapters"
	dailyhandler "stock_query_backend/internal/feature/dailydata/transport/handler"
	dailyusecase "stock_query_backend/internal/feature/dailydata/usecase"
	predictionadapters "stock_query_backend/internal/feature/prediction/adapters"
	predictionhandler "stock_query_backend/internal/feature/prediction/transport/handler"
	predictionusecase "stock_query_backend/internal/feature/prediction/usecase"
	stockadapters "stock_query_backend/internal/feature/stocklist/adapters"
	stockhandler "stock_query_backend/internal/feature/stocklist/transport/handler"
	stockusecase "stock_query_backend/internal/feature/stocklist/usecase"
	"stock_query_backend/internal/infrastructure/cache"
	infradb "stock_query_backend/internal/infrastructure/db"
	infraredis "stock_query_backend/internal/infrastructure/redis"
)

func main() {
	// .env はローカル開発用。本番は環境変数を直接渡す
	if err := godotenv.Load(); err != nil {
		logrus.Warn(".env not found. Using process environment.")
	}

	if lvl, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		logrus.SetLevel(lvl)
	}

	// db
	db := infradb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		logrus.WithError(err).Warn("Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				logrus.WithError(err).Error("Failed to close Redis client")
			}
		}()
	}

	// Repository
	stockRepo := stockadapters.NewStockRepository(db)
	dailyRepo := dailyadapters.NewDailyBarRepository(db)
	indicatorRepo := dailyadapters.NewIndicatorRepository(db)
	predictionRepo := predictionadapters.NewPredictionRepository(db)

	// 日足はRedisキャッシュでラップ（翌朝8時のバッチ更新まで有効）
	ttl := cache.TimeUntilNext8AM()
	cachedDailyRepo := cache.NewCachingDailyBarRepository(rdb, ttl, dailyRepo, "dailybars")

	// Usecase
	stockUC := stockusecase.NewStockUsecase(stockRepo)
	dailyUC := dailyusecase.NewDailyDataUsecase(cachedDailyRepo, indicatorRepo)
	predictionUC := predictionusecase.NewPredictionUsecase(predictionRepo)

	// Handler
	stockH := stockhandler.NewStockHandler(stockUC)
	dailyH := dailyhandler.NewDailyDataHandler(dailyUC)
	predictionH := predictionhandler.NewPredictionHandler(predictionUC)

	// ルータ生成
	r := router.NewRouter(stockH, dailyH, predictionH)

	addr := ":8080"
	if p := os.Getenv("PORT"); p != "" {
		addr = ":" + p
	}
	if err := r.Run(addr); err != nil {
		logrus.Fatal(err)
	}
}
