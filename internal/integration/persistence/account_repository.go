package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
	"github.com/pocket-ledger/backend/internal/integration/persistence/model"
)

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates the users-table repository.
func NewAccountRepository(db *gorm.DB) adapter.AccountRepository {
	return &accountRepository{db: db}
}

// Register inserts the account unless its email is taken. The check and the
// insert share a transaction; the unique index backs it up.
func (r *accountRepository) Register(ctx context.Context, user *entity.User) error {
	row := model.AccountFromEntity(user)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.AccountModel{}).Where("email = ?", row.Email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return domainerror.ErrEmailAlreadyExists
		}
		return tx.Create(row).Error
	})
}

func (r *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var row model.AccountModel
	err := r.db.WithContext(ctx).Where("email = ?", entity.NormalizeEmail(email)).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainerror.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return row.ToEntity(), nil
}

func (r *accountRepository) TouchLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"last_login_at": at, "updated_at": at}).Error
}

type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates the refresh-session repository.
func NewSessionRepository(db *gorm.DB) adapter.SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Open(ctx context.Context, session *entity.Session) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("owner_id = ? AND expires_at <= ?", session.OwnerID, session.CreatedAt).
			Delete(&model.SessionModel{}).Error; err != nil {
			return err
		}
		return tx.Create(model.SessionFromEntity(session)).Error
	})
}

func (r *sessionRepository) Find(ctx context.Context, id string) (*entity.Session, error) {
	var row model.SessionModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainerror.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return row.ToEntity(), nil
}

func (r *sessionRepository) Revoke(ctx context.Context, id string, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&model.SessionModel{}).
		Where("id = ? AND revoked_at IS NULL", id).
		Update("revoked_at", at).Error
}
