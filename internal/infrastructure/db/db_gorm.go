// Package db はMySQLへのgorm接続を提供します。
package db

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	gmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// OpenDB は環境変数の接続情報でMySQLを開き、接続プールを設定して返します。
// このサービスは外部管理のスキーマを読むだけなので、マイグレーションは行いません。
func OpenDB() *gorm.DB {
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASSWORD")
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	name := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
		user, pass, host, port, name)

	db, err := gorm.Open(gmysql.Open(dsn), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logrus.Fatalf("failed to get database instance: %v", err)
	}

	// 接続プール設定
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		logrus.Fatalf("failed to ping database: %v", err)
	}

	logrus.WithFields(logrus.Fields{"host": host, "database": name}).Info("connected to MySQL")
	return db
}
