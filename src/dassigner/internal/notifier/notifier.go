// Package notifier keeps the queue of transient toasts and pushes their changes to clients.
package notifier

//go:generate mockgen -source=notifier.go -destination=notifiermock/notifier_mock.go -package=notifiermock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dassigner/studio/src/dassigner/entity"
	"github.com/dassigner/studio/src/dassigner/factory"
	"github.com/dassigner/studio/src/dassigner/gateway/client"
	"github.com/dassigner/studio/src/dassigner/internal/clock"
	tally "github.com/uber-go/tally/v4"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	_configKey = "notifications"

	// Events are broadcast as soon as they are queued, so a small buffer is enough to avoid blocking the sender.
	_bufferSize             = 20
	_defaultDisplayDuration = 5 * time.Second
)

// Module is the Fx module for this package.
var Module = fx.Provide(New)

// Queue holds the toasts that are currently visible.
type Queue interface {
	// Push adds a toast that expires after the display duration.
	Push(ctx context.Context, severity entity.Severity, message string) entity.Toast
	// Dismiss removes a toast before it expires. It reports whether the toast was still queued.
	Dismiss(ctx context.Context, id string) bool
	// List returns the visible toasts, oldest first.
	List() []entity.Toast
}

// Config is the notifications block of the service configuration.
type Config struct {
	DisplayDurationMs int `yaml:"displayDurationMs"`
}

// Params are inbound parameters to initialize the queue.
type Params struct {
	fx.In

	Config    config.Provider
	Lifecycle fx.Lifecycle
	Clock     clock.Clock
	Gateway   client.Gateway
	Logger    *zap.SugaredLogger
	Stats     tally.Scope
}

type queue struct {
	mu       sync.Mutex
	toasts   []entity.Toast
	timers   map[string]clock.Timer
	duration time.Duration
	closed   bool

	events    chan entity.ToastEvent
	handlerWg sync.WaitGroup

	clock   clock.Clock
	gateway client.Gateway
	logger  *zap.SugaredLogger
	stats   tally.Scope
}

// New creates the toast queue. Events are delivered to clients between start and stop.
func New(p Params) (Queue, error) {
	var cfg Config
	if err := p.Config.Get(_configKey).Populate(&cfg); err != nil {
		return nil, fmt.Errorf("getting notifications config: %w", err)
	}
	duration := time.Duration(cfg.DisplayDurationMs) * time.Millisecond
	if duration <= 0 {
		duration = _defaultDisplayDuration
	}

	q := &queue{
		timers:   make(map[string]clock.Timer),
		duration: duration,
		events:   make(chan entity.ToastEvent, _bufferSize),
		clock:    p.Clock,
		gateway:  p.Gateway,
		logger:   p.Logger,
		stats:    p.Stats.SubScope("notifier"),
	}
	p.Lifecycle.Append(fx.Hook{
		OnStart: q.start,
		OnStop:  q.stop,
	})
	return q, nil
}

func (q *queue) Push(ctx context.Context, severity entity.Severity, message string) entity.Toast {
	toast := entity.Toast{
		ID:        factory.UUID().String(),
		Message:   message,
		Severity:  severity,
		CreatedAt: q.clock.Now(),
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return toast
	}

	q.toasts = append(q.toasts, toast)
	q.timers[toast.ID] = q.clock.AfterFunc(q.duration, func() {
		q.remove(toast.ID)
	})
	q.enqueue(entity.ToastEvent{Action: entity.ToastAdded, Toast: toast})
	q.stats.Tagged(map[string]string{"severity": string(severity)}).Counter("toasts").Inc(1)
	q.logger.Infow("toast", "severity", severity, "message", message)
	return toast
}

func (q *queue) Dismiss(ctx context.Context, id string) bool {
	return q.remove(id)
}

func (q *queue) List() []entity.Toast {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]entity.Toast{}, q.toasts...)
}

func (q *queue) remove(id string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i, toast := range q.toasts {
		if toast.ID != id {
			continue
		}
		q.toasts = append(q.toasts[:i:i], q.toasts[i+1:]...)
		if timer, ok := q.timers[id]; ok {
			timer.Stop()
			delete(q.timers, id)
		}
		if !q.closed {
			q.enqueue(entity.ToastEvent{Action: entity.ToastRemoved, Toast: toast})
		}
		return true
	}
	return false
}

// enqueue must be called with mu held. A full buffer drops the event rather than blocking the caller.
func (q *queue) enqueue(event entity.ToastEvent) {
	select {
	case q.events <- event:
	default:
		q.stats.Counter("events_dropped").Inc(1)
		q.logger.Warnw("dropping toast event, buffer is full", "action", event.Action, "id", event.Toast.ID)
	}
}

func (q *queue) start(ctx context.Context) error {
	q.handlerWg.Add(1)
	go func() {
		defer q.handlerWg.Done()
		for event := range q.events {
			q.broadcast(event)
		}
	}()
	return nil
}

// stop cancels pending expiries and drains the remaining events.
func (q *queue) stop(ctx context.Context) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return nil
	}
	q.closed = true
	for id, timer := range q.timers {
		timer.Stop()
		delete(q.timers, id)
	}
	close(q.events)
	q.mu.Unlock()

	q.handlerWg.Wait()
	return nil
}

func (q *queue) broadcast(event entity.ToastEvent) {
	if err := q.gateway.Broadcast(context.Background(), entity.NotificationToast, event); err != nil {
		q.logger.Warnw("broadcasting toast", zap.Error(err))
	}
}
