package notifier

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/dassigner/studio/src/dassigner/entity"
	"github.com/dassigner/studio/src/dassigner/gateway/client/clientmock"
	"github.com/dassigner/studio/src/dassigner/internal/clock/clockmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tally "github.com/uber-go/tally/v4"
	"go.uber.org/config"
	"go.uber.org/fx/fxtest"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type harness struct {
	queue    Queue
	lc       *fxtest.Lifecycle
	mu       sync.Mutex
	expiries []func()
	durs     []time.Duration
	events   chan entity.ToastEvent
}

func newHarness(t *testing.T, displayMs int) *harness {
	ctrl := gomock.NewController(t)
	h := &harness{
		lc:     fxtest.NewLifecycle(t),
		events: make(chan entity.ToastEvent, 100),
	}

	c := clockmock.NewMockClock(ctrl)
	c.EXPECT().Now().Return(time.UnixMilli(1700000000000)).AnyTimes()
	c.EXPECT().AfterFunc(gomock.Any(), gomock.Any()).DoAndReturn(func(d time.Duration, f func()) *clockmock.MockTimer {
		h.mu.Lock()
		defer h.mu.Unlock()
		h.expiries = append(h.expiries, f)
		h.durs = append(h.durs, d)
		timer := clockmock.NewMockTimer(ctrl)
		timer.EXPECT().Stop().Return(true).AnyTimes()
		return timer
	}).AnyTimes()

	gw := clientmock.NewMockGateway(ctrl)
	gw.EXPECT().Broadcast(gomock.Any(), entity.NotificationToast, gomock.Any()).DoAndReturn(func(_ context.Context, _ string, params any) error {
		h.events <- params.(entity.ToastEvent)
		return nil
	}).AnyTimes()

	provider, err := config.NewStaticProvider(map[string]interface{}{
		_configKey: map[string]interface{}{"displayDurationMs": displayMs},
	})
	require.NoError(t, err)

	q, err := New(Params{
		Config:    provider,
		Lifecycle: h.lc,
		Clock:     c,
		Gateway:   gw,
		Logger:    zap.NewNop().Sugar(),
		Stats:     tally.NewTestScope("testing", nil),
	})
	require.NoError(t, err)
	h.queue = q
	return h
}

func (h *harness) expire(t *testing.T, i int) {
	h.mu.Lock()
	require.Greater(t, len(h.expiries), i)
	f := h.expiries[i]
	h.mu.Unlock()
	f()
}

func (h *harness) nextEvent(t *testing.T) entity.ToastEvent {
	select {
	case e := <-h.events:
		return e
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for toast event")
		return entity.ToastEvent{}
	}
}

func TestPushAndExpire(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, 0)
	h.lc.RequireStart()
	defer h.lc.RequireStop()

	toast := h.queue.Push(ctx, entity.SeverityError, "API Key is not set.")
	assert.NotEmpty(t, toast.ID)
	assert.Equal(t, entity.SeverityError, toast.Severity)
	assert.Equal(t, []entity.Toast{toast}, h.queue.List())
	assert.Equal(t, []time.Duration{5 * time.Second}, h.durs, "display duration defaults to five seconds")

	added := h.nextEvent(t)
	assert.Equal(t, entity.ToastAdded, added.Action)
	assert.Equal(t, toast.ID, added.Toast.ID)

	h.expire(t, 0)
	assert.Empty(t, h.queue.List())
	removed := h.nextEvent(t)
	assert.Equal(t, entity.ToastRemoved, removed.Action)
	assert.Equal(t, toast.ID, removed.Toast.ID)
}

func TestDismiss(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, 1500)
	h.lc.RequireStart()
	defer h.lc.RequireStop()

	first := h.queue.Push(ctx, entity.SeveritySuccess, "API Key saved successfully!")
	second := h.queue.Push(ctx, entity.SeverityInfo, "two")
	assert.Equal(t, []time.Duration{1500 * time.Millisecond, 1500 * time.Millisecond}, h.durs)

	assert.True(t, h.queue.Dismiss(ctx, first.ID))
	assert.False(t, h.queue.Dismiss(ctx, first.ID))
	assert.Equal(t, []entity.Toast{second}, h.queue.List())

	// A late expiry of a dismissed toast is harmless.
	h.expire(t, 0)
	assert.Equal(t, []entity.Toast{second}, h.queue.List())
}

func TestEventsBeforeStartAreDelivered(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, 0)

	toast := h.queue.Push(ctx, entity.SeverityWarning, "queued early")
	h.lc.RequireStart()
	assert.Equal(t, toast.ID, h.nextEvent(t).Toast.ID)
	h.lc.RequireStop()

	// After stop nothing is queued.
	h.queue.Push(ctx, entity.SeverityInfo, "too late")
	assert.Len(t, h.queue.List(), 1)
}
