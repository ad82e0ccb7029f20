package application

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/safeplace/safeplace-server/internal/domain"
	"github.com/safeplace/safeplace-server/internal/ports"
)

const serviceName = "safeplace-server"

// Config carries the application-level knobs resolved at bootstrap.
type Config struct {
	// TokenTTL is the fixed session token lifetime (7 days by default).
	TokenTTL time.Duration
	// ListLimit bounds history and journal listings when the caller
	// does not request a tighter limit.
	ListLimit int
}

// Service implements the SafePlace use-cases: account registration and
// login, the chat orchestration against the completion service, and
// journal entries with the derived mood trend. It holds no mutable
// state; all durable state lives behind the repository ports.
type Service struct {
	cfg        Config
	accounts   ports.AccountRepository
	turns      ports.ConversationRepository
	journal    ports.JournalRepository
	completion ports.CompletionClient
	hasher     ports.PasswordHasher
	signer     ports.TokenSigner
	nowFn      func() time.Time
}

type Dependencies struct {
	Config     Config
	Accounts   ports.AccountRepository
	Turns      ports.ConversationRepository
	Journal    ports.JournalRepository
	Completion ports.CompletionClient
	Hasher     ports.PasswordHasher
	Signer     ports.TokenSigner
}

func NewService(deps Dependencies) *Service {
	return &Service{
		cfg:        deps.Config,
		accounts:   deps.Accounts,
		turns:      deps.Turns,
		journal:    deps.Journal,
		completion: deps.Completion,
		hasher:     deps.Hasher,
		signer:     deps.Signer,
		nowFn:      func() time.Time { return time.Now().UTC() },
	}
}

// normalizeEmail trims and lowercases the address and rejects anything
// that does not parse as a bare RFC 5322 address.
func normalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", fmt.Errorf("%w: email is required", domain.ErrInvalidInput)
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", fmt.Errorf("%w: invalid email address", domain.ErrInvalidInput)
	}
	return email, nil
}

// effectiveLimit clamps a requested listing limit to the configured
// ceiling. Zero or negative requests fall back to the ceiling.
func (s *Service) effectiveLimit(requested int) int {
	if requested <= 0 || requested > s.cfg.ListLimit {
		return s.cfg.ListLimit
	}
	return requested
}
