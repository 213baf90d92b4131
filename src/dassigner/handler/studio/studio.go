// Package studio implements the studio daemon's JSON-RPC handlers.
package studio

import (
	"context"
	"fmt"

	controller "github.com/dassigner/studio/src/dassigner/controller/studio"
	"github.com/dassigner/studio/src/dassigner/internal/jsonrpcfx"
	"github.com/dassigner/studio/src/dassigner/mapper"
	"github.com/gofrs/uuid"
	tally "github.com/uber-go/tally/v4"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/zap"
)

// Handler accepts studio client connections and routes their requests to the controller.
type Handler = jsonrpcfx.ConnectionManager

type jsonRPCConnectionManager struct {
	ctrl   controller.Controller
	logger *zap.SugaredLogger
	stats  tally.Scope
}

// New constructs a new studio Handler and registers it with the JSON-RPC module.
func New(ctrl controller.Controller, jsonrpcmod jsonrpcfx.JSONRPCModule, logger *zap.SugaredLogger, stats tally.Scope) (Handler, error) {
	c := &jsonRPCConnectionManager{
		ctrl:   ctrl,
		logger: logger,
		stats:  stats.SubScope("json_rpc"),
	}
	if err := jsonrpcmod.RegisterConnectionManager(c); err != nil {
		return nil, err
	}
	return c, nil
}

// NewConnection registers the connection for notifications and returns a router that includes its UUID.
func (c *jsonRPCConnectionManager) NewConnection(ctx context.Context, conn *jsonrpc2.Conn) (router jsonrpcfx.Router, err error) {
	id, err := c.ctrl.Connect(ctx, conn)
	if err != nil {
		return nil, fmt.Errorf("error while creating new connection: %w", err)
	}
	c.stats.Counter("connections").Inc(1)

	return &jsonRPCRouter{
		studio: c.ctrl,
		uuid:   id,
		stats:  c.stats,
		logger: c.logger.With("client", id),
	}, nil
}

// RemoveConnection cleans up a closed connection.
func (c *jsonRPCConnectionManager) RemoveConnection(ctx context.Context, id uuid.UUID) {
	ctx = mapper.ClientUUIDToContext(ctx, id)
	if err := c.ctrl.Disconnect(ctx, id); err != nil {
		c.logger.Warnw("removing connection failed", "client", id, zap.Error(err))
	}
}
