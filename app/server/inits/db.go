package inits

import (
	"fmt"
	"pokedex-api/app/server/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func DB(conn string) (db *gorm.DB, err error) {
	// 打开连接，开启错误转换以便识别唯一约束冲突
	if db, err = gorm.Open(postgres.Open(conn), &gorm.Config{
		TranslateError: true,
	}); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// 迁移
	if err = Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Pokemon{},
	)
}
