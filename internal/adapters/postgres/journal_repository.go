package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/safeplace/safeplace-server/internal/domain"
	"gorm.io/gorm"
)

type journalRepository struct {
	db *gorm.DB
}

func (r *journalRepository) Create(ctx context.Context, userID uuid.UUID, body string, mood int) (domain.Entry, error) {
	if err := domain.ValidateMood(mood); err != nil {
		return domain.Entry{}, err
	}
	rec := entryModel{
		UserID:    userID,
		Body:      body,
		Mood:      mood,
		CreatedAt: time.Now().UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return domain.Entry{}, err
	}
	return toDomainEntry(rec), nil
}

func (r *journalRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Entry, error) {
	q := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var recs []entryModel
	if err := q.Find(&recs).Error; err != nil {
		return nil, err
	}
	return toDomainEntries(recs), nil
}

// ListRecentAsc fetches the newest `limit` entries, then flips them to
// ascending order so trend derivation reads oldest to newest.
func (r *journalRepository) ListRecentAsc(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Entry, error) {
	q := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var recs []entryModel
	if err := q.Find(&recs).Error; err != nil {
		return nil, err
	}

	entries := toDomainEntries(recs)
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}

func toDomainEntries(recs []entryModel) []domain.Entry {
	entries := make([]domain.Entry, 0, len(recs))
	for _, rec := range recs {
		entries = append(entries, toDomainEntry(rec))
	}
	return entries
}
