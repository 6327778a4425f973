package inits

import (
	"fmt"

	"atelier-site-core/app/server/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func DB(conn string) (db *gorm.DB, err error) {
	// 打开连接， TranslateError 让唯一约束冲突统一映射为 gorm.ErrDuplicatedKey
	if db, err = gorm.Open(postgres.Open(conn), &gorm.Config{TranslateError: true}); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// 迁移
	if err = mig(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// 返回。管理员不在这里预置，而是通过带共享密钥的 setup 接口创建
	return db, nil
}

func mig(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Subscriber{},
		&models.Post{},
		&models.Product{},
		&models.Image{},
	)
}
