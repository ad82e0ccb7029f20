package application

import "github.com/google/uuid"

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is shared by register and login: the account identity
// plus a fresh session token.
type AuthResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Token string    `json:"token"`
}

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

type JournalRequest struct {
	Text string `json:"text"`
	// Mood is optional; nil falls back to the neutral default.
	Mood *int `json:"mood,omitempty"`
}
