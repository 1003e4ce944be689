package schedule

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/fitbridge/studio-api/pkg/errors"
)

type stubBookingClient struct {
	payload []byte
	err     error
	gotID   string
}

func (s *stubBookingClient) FetchSchedule(_ context.Context, accountID string) ([]byte, error) {
	s.gotID = accountID
	return s.payload, s.err
}

func TestService_DayGroups(t *testing.T) {
	client := &stubBookingClient{
		payload: []byte(`[{"name":"HIIT","arrivalDate":"2025-12-08","startTime":"06:15:00","endTime":"07:00:00"}]`),
	}
	svc := NewService(client, slog.New(slog.NewTextHandler(io.Discard, nil)))

	days, err := svc.DayGroups(context.Background(), "acct-123")
	require.NoError(t, err)
	require.Equal(t, "acct-123", client.gotID)
	require.Len(t, days, 1)
	require.Equal(t, "2025-12-08", days[0].Date)
}

func TestService_DayGroups_EmptyAccount(t *testing.T) {
	svc := NewService(&stubBookingClient{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := svc.DayGroups(context.Background(), "   ")
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "invalid_input"))
}

func TestService_DayGroups_UpstreamError(t *testing.T) {
	client := &stubBookingClient{err: errors.New("boom")}
	svc := NewService(client, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := svc.DayGroups(context.Background(), "acct-123")
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "upstream_error"))
}

func TestService_DayGroups_GarbagePayloadIsEmptyNotError(t *testing.T) {
	client := &stubBookingClient{payload: []byte(`{}`)}
	svc := NewService(client, slog.New(slog.NewTextHandler(io.Discard, nil)))

	days, err := svc.DayGroups(context.Background(), "acct-123")
	require.NoError(t, err)
	require.Empty(t, days)
}
