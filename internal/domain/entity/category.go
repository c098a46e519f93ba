// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCategoryIcon is the icon key used when none is provided.
const DefaultCategoryIcon = "tag"

// Category represents a spending bucket. Expenses reference it by name.
type Category struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Name      string
	IconName  string
	IsDefault bool
	CreatedAt time.Time
}

// NewCategory creates a new custom Category entity.
func NewCategory(ownerID uuid.UUID, name, iconName string) *Category {
	return &Category{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Name:      name,
		IconName:  iconName,
		IsDefault: false,
		CreatedAt: time.Now().UTC(),
	}
}

// defaultCategories lists the seeded categories in display order.
var defaultCategories = []struct {
	Name string
	Icon string
}{
	{Name: "Coffee", Icon: "coffee"},
	{Name: "Transport", Icon: "train"},
	{Name: "Utilities", Icon: "lightning"},
	{Name: "Shopping", Icon: "tote"},
	{Name: "Health", Icon: "first-aid"},
	{Name: "Entertainment", Icon: "confetti"},
}

// DefaultCategories returns fresh copies of the six seeded categories for an owner.
func DefaultCategories(ownerID uuid.UUID) []*Category {
	now := time.Now().UTC()
	categories := make([]*Category, len(defaultCategories))
	for i, dc := range defaultCategories {
		categories[i] = &Category{
			ID:        uuid.New(),
			OwnerID:   ownerID,
			Name:      dc.Name,
			IconName:  dc.Icon,
			IsDefault: true,
			CreatedAt: now,
		}
	}
	return categories
}

// DefaultCategoryNames returns the names of the seeded categories.
func DefaultCategoryNames() []string {
	names := make([]string, len(defaultCategories))
	for i, dc := range defaultCategories {
		names[i] = dc.Name
	}
	return names
}

// IsDefaultCategoryName reports whether name belongs to a seeded category.
func IsDefaultCategoryName(name string) bool {
	for _, dc := range defaultCategories {
		if dc.Name == name {
			return true
		}
	}
	return false
}
