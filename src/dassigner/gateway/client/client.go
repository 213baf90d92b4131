// Package client sends notifications to connected studio clients.
package client

//go:generate mockgen -source=client.go -destination=clientmock/client_mock.go -package=clientmock

import (
	"context"
	"fmt"
	"sync"

	"github.com/gofrs/uuid"
	tally "github.com/uber-go/tally/v4"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/fx"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const _errSendToClient = "sending notification %q to client %s: %w"

// Module is the Fx module for this package.
var Module = fx.Provide(New)

// Gateway is used to send outbound notifications to every connected client.
type Gateway interface {
	// RegisterClient registers a new client with the gateway. Should be called each time a new connection is opened.
	RegisterClient(ctx context.Context, id uuid.UUID, conn *jsonrpc2.Conn) error
	// DeregisterClient removes a client from the gateway. Should be called each time a connection is closed.
	DeregisterClient(ctx context.Context, id uuid.UUID) error
	// Broadcast sends the notification to all registered clients. A failure for one client does not stop delivery to the others.
	Broadcast(ctx context.Context, method string, params interface{}) error
	// ClientCount returns the number of registered clients.
	ClientCount() int
}

// Params are inbound parameters to initialize the gateway.
type Params struct {
	fx.In

	Logger *zap.SugaredLogger
	Stats  tally.Scope
}

type gateway struct {
	connections map[uuid.UUID]jsonrpc2.Conn
	clientsMu   sync.Mutex
	logger      *zap.SugaredLogger
	stats       tally.Scope
}

// New returns a Gateway for sending client notifications.
func New(p Params) Gateway {
	return &gateway{
		connections: make(map[uuid.UUID]jsonrpc2.Conn),
		logger:      p.Logger,
		stats:       p.Stats.SubScope("client_gateway"),
	}
}

func (g *gateway) RegisterClient(ctx context.Context, id uuid.UUID, conn *jsonrpc2.Conn) error {
	if conn == nil || *conn == nil {
		return fmt.Errorf("registering client %s: connection is required", id)
	}

	g.clientsMu.Lock()
	defer g.clientsMu.Unlock()

	g.connections[id] = *conn
	g.stats.Gauge("clients").Update(float64(len(g.connections)))
	return nil
}

func (g *gateway) DeregisterClient(ctx context.Context, id uuid.UUID) error {
	g.clientsMu.Lock()
	defer g.clientsMu.Unlock()

	delete(g.connections, id)
	g.stats.Gauge("clients").Update(float64(len(g.connections)))
	return nil
}

func (g *gateway) Broadcast(ctx context.Context, method string, params interface{}) error {
	// Copy so that a slow client does not hold the lock.
	g.clientsMu.Lock()
	targets := make(map[uuid.UUID]jsonrpc2.Conn, len(g.connections))
	for id, conn := range g.connections {
		targets[id] = conn
	}
	g.clientsMu.Unlock()

	var err error
	for id, conn := range targets {
		if notifyErr := conn.Notify(ctx, method, params); notifyErr != nil {
			g.stats.Counter("notify_errors").Inc(1)
			err = multierr.Append(err, fmt.Errorf(_errSendToClient, method, id, notifyErr))
		}
	}
	g.stats.Counter("broadcasts").Inc(1)
	return err
}

func (g *gateway) ClientCount() int {
	g.clientsMu.Lock()
	defer g.clientsMu.Unlock()
	return len(g.connections)
}
