package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	// 基础信息
	Username string `gorm:"column:username;size:12;uniqueIndex;not null"` // 用户名，全局唯一
	Email    string `gorm:"column:email;size:40;uniqueIndex;not null"`    // 邮箱，全局唯一

	// 登录认证相关
	Password string `gorm:"column:password;not null"` // 密码，使用 argon2id 储存

	// 用户创建的宝可梦
	Pokemon []Pokemon `gorm:"foreignKey:CreatedBy;constraint:OnDelete:SET NULL"`
}

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
