package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/safeplace/safeplace-server/internal/domain"
)

func chatLogger() *slog.Logger {
	return slog.Default().With(
		"service", serviceName,
		"module", "chat",
		"layer", "application",
	)
}

// SendMessage appends the user turn, asks the completion service for a
// reply, and appends the bot turn. The two writes are not one
// transaction; instead a failed completion call triggers a compensating
// delete of the user turn so history never shows an unanswered message.
func (s *Service) SendMessage(ctx context.Context, userID uuid.UUID, text string) (ChatResponse, error) {
	if strings.TrimSpace(text) == "" {
		return ChatResponse{}, fmt.Errorf("%w: message is required", domain.ErrInvalidInput)
	}

	userTurn, err := s.turns.Append(ctx, userID, domain.SenderUser, text)
	if err != nil {
		return ChatResponse{}, err
	}

	reply, err := s.completion.Complete(ctx, text)
	if err != nil {
		if delErr := s.turns.Delete(ctx, userTurn.TurnID); delErr != nil {
			chatLogger().ErrorContext(ctx, "compensating delete failed",
				"operation", "send_message",
				"outcome", "failure",
				"user_id", userID,
				"turn_id", userTurn.TurnID,
				"error", delErr.Error(),
			)
		}
		chatLogger().ErrorContext(ctx, "completion call failed",
			"operation", "send_message",
			"outcome", "failure",
			"user_id", userID,
			"error", err.Error(),
		)
		return ChatResponse{}, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}

	if _, err := s.turns.Append(ctx, userID, domain.SenderBot, reply); err != nil {
		return ChatResponse{}, err
	}

	return ChatResponse{Reply: reply}, nil
}

// History returns the account's turns in ascending creation-time order,
// bounded by the configured listing ceiling.
func (s *Service) History(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Turn, error) {
	return s.turns.ListByUser(ctx, userID, s.effectiveLimit(limit))
}
