package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/safeplace/safeplace-server/internal/domain"
	"gorm.io/gorm"
)

type conversationRepository struct {
	db *gorm.DB
}

func (r *conversationRepository) Append(ctx context.Context, userID uuid.UUID, sender domain.Sender, body string) (domain.Turn, error) {
	if !sender.Valid() {
		return domain.Turn{}, fmt.Errorf("%w: unknown sender %q", domain.ErrInvalidInput, sender)
	}
	rec := turnModel{
		UserID:    userID,
		Sender:    string(sender),
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return domain.Turn{}, err
	}
	return toDomainTurn(rec), nil
}

// ListByUser fetches the newest `limit` turns, then flips them to
// ascending order: when the bound kicks in it must cut the oldest
// turns, not hide the most recent exchange.
func (r *conversationRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Turn, error) {
	q := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var recs []turnModel
	if err := q.Find(&recs).Error; err != nil {
		return nil, err
	}

	turns := make([]domain.Turn, 0, len(recs))
	for _, rec := range recs {
		turns = append(turns, toDomainTurn(rec))
	}
	for i, j := 0, len(turns)-1; i < j; i, j = i+1, j-1 {
		turns[i], turns[j] = turns[j], turns[i]
	}
	return turns, nil
}

func (r *conversationRepository) Delete(ctx context.Context, turnID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("turn_id = ?", turnID).
		Delete(&turnModel{}).Error
}
