package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Pokemon struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	// 基础信息
	Name       string  `gorm:"column:name;size:12;uniqueIndex;not null"` // 名称，全局唯一
	FirstType  string  `gorm:"column:first_type;index;not null"`         // 第一属性
	SecondType string  `gorm:"column:second_type;index"`                 // 第二属性，可以为空
	Ability    string  `gorm:"column:ability;not null"`                  // 特性
	Height     float64 `gorm:"column:height"`
	Weight     float64 `gorm:"column:weight"`
	BaseExp    float64 `gorm:"column:base_exp"`

	// 图片
	ImageURL       string `gorm:"column:image_url"`        // 本地优化后图片的路径
	BackupImageURL string `gorm:"column:backup_image_url"` // 远程备份的公开地址

	// 创建者， NULL 表示历史遗留或匿名创建
	CreatedBy *uuid.UUID `gorm:"column:created_by;type:uuid;index"`
	Owner     *User      `gorm:"foreignKey:CreatedBy"`
}

func (p *Pokemon) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
