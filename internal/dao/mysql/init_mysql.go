// Package mysql 负责建立 MySQL 连接、自动迁移表结构并初始化 Repository 层
package mysql

import (
	"fmt"

	"kama_community_server/internal/config"
	"kama_community_server/internal/dao/mysql/repository"
	"kama_community_server/internal/model"

	mysqldriver "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Init 初始化数据库连接并返回 Repository 实例集合
func Init(conf *config.MysqlConfig) (*repository.Repositories, *gorm.DB, error) {
	// 格式：user:password@tcp(host:port)/database?params
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		conf.User,
		conf.Password,
		conf.Host,
		conf.Port,
		conf.DatabaseName,
	)

	db, err := gorm.Open(mysqldriver.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, nil, fmt.Errorf("open mysql: %w", err)
	}
	if err := Migrate(db); err != nil {
		return nil, nil, err
	}
	return repository.NewRepositories(db), db, nil
}

// Migrate 自动迁移全部表结构，只增不删
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(model.All()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
