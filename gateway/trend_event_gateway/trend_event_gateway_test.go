package trend_event_gateway

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"techpulse/domain"
	"techpulse/driver/publisher_driver"
	apperrors "techpulse/utils/errors"
	"techpulse/utils/logger"
)

func init() {
	logger.Logger = logger.NewDiscardLogger()
}

type fakePublisher struct {
	id     string
	err    error
	delay  time.Duration
	mu     sync.Mutex
	events []publisher_driver.TrendReportEvent
	closed bool
}

func (f *fakePublisher) ID() string { return f.id }

func (f *fakePublisher) Publish(ctx context.Context, evt publisher_driver.TrendReportEvent) error {
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, evt)
	return nil
}

func (f *fakePublisher) Close() error {
	f.closed = true
	return nil
}

func report() *domain.TrendReport {
	return &domain.TrendReport{
		Timestamp: 1_700_000_000,
		Trends:    []domain.Trend{{Keyword: "rust", Volume: 2}},
		Metadata:  map[string]string{},
	}
}

func TestPublishTrendReport_SameEventToAll(t *testing.T) {
	a := &fakePublisher{id: "a"}
	b := &fakePublisher{id: "b"}
	gw := NewTrendEventGateway(time.Second, a, b)
	gw.now = func() time.Time { return time.Unix(1_700_000_100, 0) }

	require.NoError(t, gw.PublishTrendReport(context.Background(), report()))

	require.Len(t, a.events, 1)
	require.Len(t, b.events, 1)
	assert.Equal(t, a.events[0].EventID, b.events[0].EventID)
	assert.Equal(t, publisher_driver.EventTrendReportCreated, a.events[0].EventType)
	assert.Equal(t, int64(1_700_000_100), a.events[0].OccurredAt.Unix())
	assert.Equal(t, int64(1_700_000_000), a.events[0].Report.Timestamp)
}

func TestPublishTrendReport_FailureDoesNotStopOthers(t *testing.T) {
	ok := &fakePublisher{id: "ok"}
	bad := &fakePublisher{id: "bad", err: errors.New("queue gone")}
	gw := NewTrendEventGateway(time.Second, bad, ok)

	err := gw.PublishTrendReport(context.Background(), report())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad: queue gone")
	assert.Len(t, ok.events, 1)

	var appErr *apperrors.AppContextError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeExternalAPI, appErr.Code)
}

func TestPublishTrendReport_TimeoutPerPublisher(t *testing.T) {
	slow := &fakePublisher{id: "slow", delay: time.Second}
	gw := NewTrendEventGateway(20*time.Millisecond, slow)

	err := gw.PublishTrendReport(context.Background(), report())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestPublishTrendReport_NoPublishers(t *testing.T) {
	gw := NewTrendEventGateway(time.Second)
	assert.NoError(t, gw.PublishTrendReport(context.Background(), report()))
}

func TestPublishTrendReport_NilReport(t *testing.T) {
	gw := NewTrendEventGateway(time.Second, &fakePublisher{id: "a"})
	assert.ErrorIs(t, gw.PublishTrendReport(context.Background(), nil), domain.ErrValidation)
}

func TestClose(t *testing.T) {
	a := &fakePublisher{id: "a"}
	NewTrendEventGateway(time.Second, a).Close()
	assert.True(t, a.closed)
}
