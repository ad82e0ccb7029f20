package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/safeplace/safeplace-server/internal/domain"
)

// AddEntry persists one journal entry. Mood defaults to the neutral
// midpoint when absent and is rejected outside the stored range.
func (s *Service) AddEntry(ctx context.Context, userID uuid.UUID, req JournalRequest) (domain.Entry, error) {
	if strings.TrimSpace(req.Text) == "" {
		return domain.Entry{}, fmt.Errorf("%w: text is required", domain.ErrInvalidInput)
	}

	mood := domain.MoodDefault
	if req.Mood != nil {
		if err := domain.ValidateMood(*req.Mood); err != nil {
			return domain.Entry{}, err
		}
		mood = *req.Mood
	}

	return s.journal.Create(ctx, userID, req.Text, mood)
}

// ListEntries returns the account's entries newest first, bounded by
// the configured listing ceiling.
func (s *Service) ListEntries(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Entry, error) {
	return s.journal.ListByUser(ctx, userID, s.effectiveLimit(limit))
}

// MoodTrend derives the plot of the last entries' moods over time.
func (s *Service) MoodTrend(ctx context.Context, userID uuid.UUID) (domain.Trend, error) {
	entries, err := s.journal.ListRecentAsc(ctx, userID, domain.TrendWindow)
	if err != nil {
		return domain.Trend{}, err
	}
	return domain.DeriveTrend(entries), nil
}
