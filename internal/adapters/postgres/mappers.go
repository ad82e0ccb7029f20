package postgres

import (
	"github.com/safeplace/safeplace-server/internal/domain"
)

func toDomainAccount(rec userModel) domain.Account {
	return domain.Account{
		UserID:       rec.UserID,
		Email:        rec.Email,
		PasswordHash: rec.PasswordHash,
		CreatedAt:    rec.CreatedAt.UTC(),
		UpdatedAt:    rec.UpdatedAt.UTC(),
	}
}

func toDomainTurn(rec turnModel) domain.Turn {
	return domain.Turn{
		TurnID:    rec.TurnID,
		UserID:    rec.UserID,
		Sender:    domain.Sender(rec.Sender),
		Body:      rec.Body,
		CreatedAt: rec.CreatedAt.UTC(),
	}
}

func toDomainEntry(rec entryModel) domain.Entry {
	return domain.Entry{
		EntryID:   rec.EntryID,
		UserID:    rec.UserID,
		Body:      rec.Body,
		Mood:      rec.Mood,
		CreatedAt: rec.CreatedAt.UTC(),
	}
}
