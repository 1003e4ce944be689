package schedule

import (
	"context"
	"log/slog"
	"strings"

	apperrors "github.com/fitbridge/studio-api/pkg/errors"
)

// Service exposes the day-grouped schedule for a studio account.
type Service interface {
	DayGroups(ctx context.Context, accountID string) ([]DayGroup, error)
}

// BookingClient fetches the raw schedule payload from the booking platform.
type BookingClient interface {
	FetchSchedule(ctx context.Context, accountID string) ([]byte, error)
}

type service struct {
	client BookingClient
	logger *slog.Logger
}

// NewService wires up the schedule domain.
func NewService(client BookingClient, logger *slog.Logger) Service {
	return &service{
		client: client,
		logger: logger.With("component", "schedule.service"),
	}
}

func (s *service) DayGroups(ctx context.Context, accountID string) ([]DayGroup, error) {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return nil, apperrors.Wrap("invalid_input", "account id cannot be empty", nil)
	}

	payload, err := s.client.FetchSchedule(ctx, accountID)
	if err != nil {
		return nil, apperrors.Wrap("upstream_error", "failed to fetch schedule", err)
	}

	days := Normalize(payload)
	s.logger.Info("schedule normalized", "account", accountID, "days", len(days))
	return days, nil
}
