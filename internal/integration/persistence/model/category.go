package model

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// CategoryModel is a row of the categories table. NameKey is the lower-cased
// name; the (owner_id, name_key) index makes names unique ignoring case.
type CategoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_categories_owner_name;index:idx_categories_owner_order"`
	Name      string    `gorm:"type:varchar(50);not null"`
	NameKey   string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_categories_owner_name"`
	Icon      string    `gorm:"type:varchar(50);not null"`
	IsDefault bool      `gorm:"not null;default:false"`
	SortOrder int       `gorm:"not null;default:0;index:idx_categories_owner_order"`
	CreatedAt time.Time `gorm:"not null"`
}

func (CategoryModel) TableName() string {
	return "categories"
}

func categoryNameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (m *CategoryModel) ToEntity() *entity.Category {
	return &entity.Category{
		ID:        m.ID,
		OwnerID:   m.OwnerID,
		Name:      m.Name,
		IconName:  m.Icon,
		IsDefault: m.IsDefault,
		CreatedAt: m.CreatedAt,
	}
}

// CategoryFromEntity builds a row at sortOrder.
func CategoryFromEntity(category *entity.Category, sortOrder int) *CategoryModel {
	return &CategoryModel{
		ID:        category.ID,
		OwnerID:   category.OwnerID,
		Name:      category.Name,
		NameKey:   categoryNameKey(category.Name),
		Icon:      category.IconName,
		IsDefault: category.IsDefault,
		SortOrder: sortOrder,
		CreatedAt: category.CreatedAt,
	}
}

// CategoryNameKey is the value stored in NameKey for name.
func CategoryNameKey(name string) string {
	return categoryNameKey(name)
}
