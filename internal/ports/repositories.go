package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/safeplace/safeplace-server/internal/domain"
)

// AccountRepository persists user identities. Create must surface
// domain.ErrConflict on a duplicate email so the application can map it
// without knowing the storage engine. Accounts are never updated or
// deleted, and token claims already carry the identity, so email lookup
// is the only read path.
type AccountRepository interface {
	Create(ctx context.Context, email, passwordHash string) (domain.Account, error)
	GetByEmail(ctx context.Context, email string) (domain.Account, error)
}

// ConversationRepository persists chat turns. ListByUser returns turns
// in ascending creation-time order; limit <= 0 means no bound.
type ConversationRepository interface {
	Append(ctx context.Context, userID uuid.UUID, sender domain.Sender, body string) (domain.Turn, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Turn, error)
	// Delete removes a single turn. It exists only for the chat
	// orchestrator's compensating action after a failed completion call.
	Delete(ctx context.Context, turnID uuid.UUID) error
}

// JournalRepository persists journal entries. ListByUser returns entries
// in descending creation-time order; ListRecentAsc returns the most
// recent `limit` entries re-ordered ascending for trend derivation.
type JournalRepository interface {
	Create(ctx context.Context, userID uuid.UUID, body string, mood int) (domain.Entry, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Entry, error)
	ListRecentAsc(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Entry, error)
}
