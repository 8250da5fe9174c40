// Package redis はキャッシュ用Redisクライアントの初期化を提供します。
package redis

import (
	"context"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// NewRedisClient は環境変数の接続情報でRedisクライアントを生成し、疎通を確認します。
// Redisは任意の構成要素で、接続できない場合は呼び出し側がキャッシュなしで動きます。
func NewRedisClient() (*redis.Client, error) {
	addr := os.Getenv("REDIS_HOST") + ":" + os.Getenv("REDIS_PORT")
	password := os.Getenv("REDIS_PASSWORD")

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		logrus.WithFields(logrus.Fields{"address": addr, "error": err}).Error("Redis connection failed")
		return nil, err
	}

	logrus.WithField("address", addr).Info("Redis connection successful")
	return rdb, nil
}
