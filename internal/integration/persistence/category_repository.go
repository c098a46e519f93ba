package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
	"github.com/pocket-ledger/backend/internal/integration/persistence/model"
)

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates the GORM category repository. Categories
// are listed in insertion order, so the seeded defaults come first.
func NewCategoryRepository(db *gorm.DB) adapter.CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) owned(ctx context.Context, ownerID uuid.UUID) *gorm.DB {
	return r.db.WithContext(ctx).Where("owner_id = ?", ownerID)
}

func (r *categoryRepository) FindAll(ctx context.Context, ownerID uuid.UUID) ([]*entity.Category, error) {
	var rows []model.CategoryModel
	if err := r.owned(ctx, ownerID).Order("sort_order").Find(&rows).Error; err != nil {
		return nil, err
	}

	categories := make([]*entity.Category, len(rows))
	for i := range rows {
		categories[i] = rows[i].ToEntity()
	}
	return categories, nil
}

func (r *categoryRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.Category, error) {
	return r.first(r.owned(ctx, ownerID).Where("id = ?", id))
}

func (r *categoryRepository) FindByName(ctx context.Context, ownerID uuid.UUID, name string) (*entity.Category, error) {
	return r.first(r.owned(ctx, ownerID).Where("name_key = ?", model.CategoryNameKey(name)))
}

func (r *categoryRepository) first(query *gorm.DB) (*entity.Category, error) {
	var row model.CategoryModel
	err := query.First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainerror.ErrCategoryNotFound
	}
	if err != nil {
		return nil, err
	}
	return row.ToEntity(), nil
}

// Create appends categories after the owner's existing ones, keeping
// argument order. A name clash fails the whole batch.
func (r *categoryRepository) Create(ctx context.Context, categories ...*entity.Category) error {
	if len(categories) == 0 {
		return nil
	}
	ownerID := categories[0].OwnerID

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var last struct{ SortOrder *int }
		if err := tx.Model(&model.CategoryModel{}).
			Where("owner_id = ?", ownerID).
			Select("MAX(sort_order) AS sort_order").
			Scan(&last).Error; err != nil {
			return err
		}
		next := 0
		if last.SortOrder != nil {
			next = *last.SortOrder + 1
		}

		rows := make([]*model.CategoryModel, len(categories))
		for i, c := range categories {
			rows[i] = model.CategoryFromEntity(c, next+i)
		}
		return tx.Create(&rows).Error
	})
}

func (r *categoryRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	res := r.owned(ctx, ownerID).Where("id = ?", id).Delete(&model.CategoryModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainerror.ErrCategoryNotFound
	}
	return nil
}
