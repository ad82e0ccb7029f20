package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/safeplace/safeplace-server/internal/domain"
	"gorm.io/gorm"
)

type accountRepository struct {
	db *gorm.DB
}

func (r *accountRepository) Create(ctx context.Context, email, passwordHash string) (domain.Account, error) {
	now := time.Now().UTC()
	rec := userModel{
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		// The unique index on email is the backstop for the pre-insert
		// lookup losing a race with a concurrent registration.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.Account{}, domain.ErrConflict
		}
		return domain.Account{}, err
	}
	return toDomainAccount(rec), nil
}

func (r *accountRepository) GetByEmail(ctx context.Context, email string) (domain.Account, error) {
	var rec userModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Account{}, domain.ErrNotFound
		}
		return domain.Account{}, err
	}
	return toDomainAccount(rec), nil
}
