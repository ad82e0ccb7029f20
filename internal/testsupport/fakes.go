// Package testsupport provides in-memory port implementations shared by
// unit and handler tests.
package testsupport

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/safeplace/safeplace-server/internal/domain"
)

// MemoryAccounts is an in-memory AccountRepository.
type MemoryAccounts struct {
	mu       sync.Mutex
	byEmail  map[string]domain.Account
	sequence int
}

func NewMemoryAccounts() *MemoryAccounts {
	return &MemoryAccounts{byEmail: map[string]domain.Account{}}
}

func (m *MemoryAccounts) Create(_ context.Context, email, passwordHash string) (domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.byEmail[email]; exists {
		return domain.Account{}, domain.ErrConflict
	}
	now := time.Now().UTC()
	account := domain.Account{
		UserID:       uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	m.byEmail[email] = account
	return account, nil
}

func (m *MemoryAccounts) GetByEmail(_ context.Context, email string) (domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	account, ok := m.byEmail[email]
	if !ok {
		return domain.Account{}, domain.ErrNotFound
	}
	return account, nil
}

// MemoryTurns is an in-memory ConversationRepository. Timestamps are
// strictly increasing so ordering assertions are deterministic.
type MemoryTurns struct {
	mu    sync.Mutex
	turns []domain.Turn
	seq   int
}

func NewMemoryTurns() *MemoryTurns {
	return &MemoryTurns{}
}

func (m *MemoryTurns) Append(_ context.Context, userID uuid.UUID, sender domain.Sender, body string) (domain.Turn, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	turn := domain.Turn{
		TurnID:    uuid.New(),
		UserID:    userID,
		Sender:    sender,
		Body:      body,
		CreatedAt: time.Unix(0, 0).UTC().Add(time.Duration(m.seq) * time.Second),
	}
	m.turns = append(m.turns, turn)
	return turn, nil
}

func (m *MemoryTurns) ListByUser(_ context.Context, userID uuid.UUID, limit int) ([]domain.Turn, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Turn, 0)
	for _, turn := range m.turns {
		if turn.UserID == userID {
			out = append(out, turn)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		// Keep the newest turns, like the postgres repository.
		out = out[len(out)-limit:]
	}
	return out, nil
}

func (m *MemoryTurns) Delete(_ context.Context, turnID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, turn := range m.turns {
		if turn.TurnID == turnID {
			m.turns = append(m.turns[:i], m.turns[i+1:]...)
			return nil
		}
	}
	return nil
}

// MemoryJournal is an in-memory JournalRepository.
type MemoryJournal struct {
	mu      sync.Mutex
	entries []domain.Entry
	seq     int
}

func NewMemoryJournal() *MemoryJournal {
	return &MemoryJournal{}
}

func (m *MemoryJournal) Create(_ context.Context, userID uuid.UUID, body string, mood int) (domain.Entry, error) {
	if err := domain.ValidateMood(mood); err != nil {
		return domain.Entry{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	entry := domain.Entry{
		EntryID:   uuid.New(),
		UserID:    userID,
		Body:      body,
		Mood:      mood,
		CreatedAt: time.Unix(0, 0).UTC().Add(time.Duration(m.seq) * time.Second),
	}
	m.entries = append(m.entries, entry)
	return entry, nil
}

func (m *MemoryJournal) ListByUser(_ context.Context, userID uuid.UUID, limit int) ([]domain.Entry, error) {
	out := m.sortedAsc(userID)
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *MemoryJournal) ListRecentAsc(_ context.Context, userID uuid.UUID, limit int) ([]domain.Entry, error) {
	out := m.sortedAsc(userID)
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

func (m *MemoryJournal) sortedAsc(userID uuid.UUID) []domain.Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Entry, 0)
	for _, entry := range m.entries {
		if entry.UserID == userID {
			out = append(out, entry)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

// StaticCompletion is a CompletionClient returning a canned reply or a
// forced error.
type StaticCompletion struct {
	Reply string
	Err   error
}

func (c *StaticCompletion) Complete(_ context.Context, _ string) (string, error) {
	if c.Err != nil {
		return "", c.Err
	}
	return c.Reply, nil
}
