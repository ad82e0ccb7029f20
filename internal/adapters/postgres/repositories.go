package postgres

import (
	"github.com/safeplace/safeplace-server/internal/ports"
	"gorm.io/gorm"
)

type Repositories struct {
	Accounts ports.AccountRepository
	Turns    ports.ConversationRepository
	Journal  ports.JournalRepository
}

func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Accounts: &accountRepository{db: db},
		Turns:    &conversationRepository{db: db},
		Journal:  &journalRepository{db: db},
	}
}
