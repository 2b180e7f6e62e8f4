// Package services holds the record operations behind the Pokémon endpoints.
package services

import (
	"context"
	"errors"
	"fmt"
	"pokedex-api/app/server/models"
	"pokedex-api/app/server/types"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrInvalidID     = errors.New("invalid id")
	ErrNotFound      = errors.New("pokemon not found")
	ErrDuplicateName = errors.New("name already exists")
	ErrRetrieval     = errors.New("failed to retrieve pokemon")
	ErrPersistence   = errors.New("failed to persist pokemon")
)

// PokemonFilter Type 为空时不过滤， Page 为 nil 时不分页
type PokemonFilter struct {
	Type  string
	Page  *int
	Limit int
}

type PokemonPage struct {
	Pokemon []models.Pokemon
	Total   int64
}

// PokemonImage 图片流水线产生的两个地址
type PokemonImage struct {
	LocalURL  string
	RemoteURL string
}

type PokemonService struct {
	db *gorm.DB
}

func NewPokemonService(db *gorm.DB) *PokemonService {
	return &PokemonService{db: db}
}

func ParseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return parsed, nil
}

func byType(t string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if t == "" {
			return db
		}
		return db.Where("(first_type = ? OR second_type = ?)", t, t)
	}
}

func byOwner(id uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("created_by = ?", id)
	}
}

func (s *PokemonService) list(ctx context.Context, filter PokemonFilter, withOwner bool, scopes ...func(*gorm.DB) *gorm.DB) (*PokemonPage, error) {
	scopes = append(scopes, byType(filter.Type))

	query := s.db.WithContext(ctx).Model(&models.Pokemon{}).Scopes(scopes...).Order("created_at ASC").Order("id ASC")
	if withOwner {
		query = query.Preload("Owner", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "username")
		})
	}
	if filter.Page != nil {
		query = query.Limit(filter.Limit).Offset(*filter.Page * filter.Limit)
	}

	page := &PokemonPage{Pokemon: []models.Pokemon{}}
	if err := query.Find(&page.Pokemon).Error; err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRetrieval, err)
	}

	if filter.Page == nil {
		page.Total = int64(len(page.Pokemon))
	} else if err := s.db.WithContext(ctx).Model(&models.Pokemon{}).Scopes(scopes...).Count(&page.Total).Error; err != nil {
		return nil, fmt.Errorf("%w: count: %w", ErrRetrieval, err)
	}

	return page, nil
}

func (s *PokemonService) List(ctx context.Context, filter PokemonFilter) (*PokemonPage, error) {
	return s.list(ctx, filter, false)
}

func (s *PokemonService) ListOwnedBy(ctx context.Context, userID uuid.UUID, filter PokemonFilter) (*PokemonPage, error) {
	return s.list(ctx, filter, true, byOwner(userID))
}

func (s *PokemonService) GetByID(ctx context.Context, id string) (*models.Pokemon, error) {
	pid, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	var pokemon models.Pokemon
	if err = s.db.WithContext(ctx).First(&pokemon, "id = ?", pid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, pid)
		}
		return nil, fmt.Errorf("%w: %w", ErrRetrieval, err)
	}

	return &pokemon, nil
}

func (s *PokemonService) Create(ctx context.Context, in types.PokemonInput, image *PokemonImage, ownerID uuid.UUID) (*models.Pokemon, error) {
	pokemon := models.Pokemon{
		CreatedBy: &ownerID,
	}
	pokemonMapFields(&in, &pokemon)
	if image != nil {
		pokemon.ImageURL = image.LocalURL
		pokemon.BackupImageURL = image.RemoteURL
	}

	if err := s.db.WithContext(ctx).Create(&pokemon).Error; err != nil {
		return nil, classifyWriteError(err)
	}

	return &pokemon, nil
}

// DeleteByID 删除并返回被删除的名称
func (s *PokemonService) DeleteByID(ctx context.Context, id string) (string, error) {
	pid, err := ParseID(id)
	if err != nil {
		return "", err
	}

	var pokemon models.Pokemon
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&pokemon, "id = ?", pid).Error; err != nil {
			return err
		}

		result := tx.Delete(&pokemon)
		if result.Error != nil {
			return result.Error
		} else if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, pid)
		}
		return "", fmt.Errorf("%w: delete: %w", ErrPersistence, err)
	}

	return pokemon.Name, nil
}

// Edit 只更新提供了的字段
func (s *PokemonService) Edit(ctx context.Context, id string, in types.PokemonInput, image *PokemonImage) (*models.Pokemon, error) {
	pid, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	updates := pokemonUpdates(&in)
	if image != nil {
		updates["image_url"] = image.LocalURL
		updates["backup_image_url"] = image.RemoteURL
	}

	var pokemon models.Pokemon
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&pokemon, "id = ?", pid).Error; err != nil {
			return err
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&pokemon).Updates(updates).Error; err != nil {
			return err
		}
		return tx.First(&pokemon, "id = ?", pid).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, pid)
		}
		return nil, classifyWriteError(err)
	}

	return &pokemon, nil
}

func classifyWriteError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %w", ErrDuplicateName, err)
	}
	return fmt.Errorf("%w: %w", ErrPersistence, err)
}

func pokemonMapFields(in *types.PokemonInput, pokemon *models.Pokemon) {
	if in.Name != nil {
		pokemon.Name = *in.Name
	}
	if in.Ability != nil {
		pokemon.Ability = *in.Ability
	}
	if in.FirstType != nil {
		pokemon.FirstType = *in.FirstType
	}
	if in.SecondType != nil {
		pokemon.SecondType = *in.SecondType
	}
	if in.Height != nil {
		pokemon.Height = *in.Height
	}
	if in.Weight != nil {
		pokemon.Weight = *in.Weight
	}
	if in.BaseExp != nil {
		pokemon.BaseExp = *in.BaseExp
	}
}

func pokemonUpdates(in *types.PokemonInput) map[string]interface{} {
	updates := map[string]interface{}{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Ability != nil {
		updates["ability"] = *in.Ability
	}
	if in.FirstType != nil {
		updates["first_type"] = *in.FirstType
	}
	if in.SecondType != nil {
		updates["second_type"] = *in.SecondType
	}
	if in.Height != nil {
		updates["height"] = *in.Height
	}
	if in.Weight != nil {
		updates["weight"] = *in.Weight
	}
	if in.BaseExp != nil {
		updates["base_exp"] = *in.BaseExp
	}
	return updates
}
