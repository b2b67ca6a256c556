package main

import (
	"gorm.io/gorm"

	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/rdb"
	"github.com/xiebiao/bookcatalog/pkg/logger"
)

// provideDB 创建数据库连接,cleanup时关闭连接池
func provideDB(cfg *config.Config) (*gorm.DB, func(), error) {
	db, err := rdb.NewDB(cfg)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		sqlDB, err := db.DB()
		if err != nil {
			return
		}
		if err := sqlDB.Close(); err != nil {
			logger.L().WithError(err).Warn("close database")
		}
	}
	return db, cleanup, nil
}
