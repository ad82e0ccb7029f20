package domain

import (
	"time"

	"github.com/google/uuid"
)

// Sender tags one side of a conversation.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Valid reports whether s is one of the two known sender tags.
func (s Sender) Valid() bool {
	return s == SenderUser || s == SenderBot
}

// Turn is one immutable message in a user's chat history. Turns for one
// account form an append-only sequence ordered by CreatedAt.
type Turn struct {
	TurnID    uuid.UUID
	UserID    uuid.UUID
	Sender    Sender
	Body      string
	CreatedAt time.Time
}
