package types

import (
	"time"

	"github.com/google/uuid"
)

// PokemonInput 创建与编辑共用，未提供的字段为 nil
type PokemonInput struct {
	Name       *string
	Ability    *string
	FirstType  *string
	SecondType *string
	Height     *float64
	Weight     *float64
	BaseExp    *float64

	Image *string // 上传后的本地文件名，没有上传文件时为 nil
}

// PokemonListQuery 列表查询参数， Page 为 nil 时不分页
type PokemonListQuery struct {
	Type  *string
	Page  *int
	Limit *int
}

type Owner struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

type Pokemon struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	FirstType      string     `json:"firstType"`
	SecondType     string     `json:"secondType,omitempty"`
	Ability        string     `json:"ability"`
	Height         float64    `json:"height"`
	Weight         float64    `json:"weight"`
	BaseExp        float64    `json:"baseExp"`
	ImageURL       string     `json:"imageUrl"`
	BackupImageURL string     `json:"backupImageUrl,omitempty"`
	CreatedBy      *uuid.UUID `json:"createdBy"`
	Owner          *Owner     `json:"owner,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

type PokemonResponse struct {
	Pokemon Pokemon `json:"pokemon"`
}

type PokemonListResponse struct {
	Pokemon []Pokemon `json:"pokemon"`

	// 仅在分页时返回
	Page    *int   `json:"page,omitempty"`
	Limit   *int   `json:"limit,omitempty"`
	Total   *int64 `json:"total,omitempty"`
	PageMax *int64 `json:"pageMax,omitempty"`
}

type ErrorMessage struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
