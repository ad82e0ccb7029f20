package postgres

import (
	"time"

	"github.com/google/uuid"
)

type userModel struct {
	UserID       uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey"`
	Email        string    `gorm:"column:email"`
	PasswordHash string    `gorm:"column:password_hash"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (userModel) TableName() string { return "users" }

type turnModel struct {
	TurnID    uuid.UUID `gorm:"column:turn_id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID    uuid.UUID `gorm:"column:user_id"`
	Sender    string    `gorm:"column:sender"`
	Body      string    `gorm:"column:body"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (turnModel) TableName() string { return "conversation_turns" }

type entryModel struct {
	EntryID   uuid.UUID `gorm:"column:entry_id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID    uuid.UUID `gorm:"column:user_id"`
	Body      string    `gorm:"column:body"`
	Mood      int       `gorm:"column:mood"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (entryModel) TableName() string { return "journal_entries" }
