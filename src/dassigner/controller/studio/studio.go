// Package studio implements the studio business logic: it owns the session state,
// sequences model calls, and persists every transition that changes the project.
package studio

//go:generate mockgen -source=studio.go -destination=studiomock/studio_mock.go -package=studiomock

import (
	"context"
	"fmt"
	"sync"

	"github.com/dassigner/studio/src/dassigner/controller/session"
	"github.com/dassigner/studio/src/dassigner/entity"
	"github.com/dassigner/studio/src/dassigner/factory"
	"github.com/dassigner/studio/src/dassigner/gateway/client"
	"github.com/dassigner/studio/src/dassigner/gateway/generative"
	"github.com/dassigner/studio/src/dassigner/internal/activitylog"
	"github.com/dassigner/studio/src/dassigner/internal/clock"
	"github.com/dassigner/studio/src/dassigner/internal/examples"
	"github.com/dassigner/studio/src/dassigner/internal/export"
	"github.com/dassigner/studio/src/dassigner/internal/markup"
	"github.com/dassigner/studio/src/dassigner/internal/notifier"
	"github.com/dassigner/studio/src/dassigner/repository/credential"
	"github.com/dassigner/studio/src/dassigner/repository/project"
	"github.com/gofrs/uuid"
	tally "github.com/uber-go/tally/v4"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	_msgCredentialMissing = "API Key is not set."
	_msgCredentialSaved   = "API Key saved successfully!"
	_msgCredentialCleared = "API Key cleared."
	_msgProjectDeleted    = "Design deleted successfully."
	_msgProjectNotFound   = "Could not find the project to load."
	_msgConversionFailed  = "Failed to convert to %s."
	_msgSaveFailed        = "Could not save the project: %s"
	_msgExported          = "Design exported to %s."
)

// Controller orchestrates the business logic for each request.
type Controller interface {
	// Init restores the credential and the last active project. Storage problems never block startup.
	Init(ctx context.Context) error

	// Generation related methods.
	SendMessage(ctx context.Context, prompt string) error
	GenerateFromNewProject(ctx context.Context, prompt string) error
	EnhancePrompt(ctx context.Context, prompt string) (string, error)
	ConvertCode(ctx context.Context, target entity.ConversionTarget) error
	SuggestPrompts(ctx context.Context) []string

	// Project related methods.
	NewProject(ctx context.Context) error
	LoadProject(ctx context.Context, id string) error
	DeleteProject(ctx context.Context, id string) error
	LoadExample(ctx context.Context, index int) error
	Examples(ctx context.Context) []entity.Example
	ListProjects(ctx context.Context) ([]entity.ProjectSummary, error)
	RestoreVersion(ctx context.Context, historyID string) error
	RenameProject(ctx context.Context, title string) error
	SetComponentMode(ctx context.Context, enabled bool) error
	DiffVersions(ctx context.Context, fromID, toID string) (markup.VersionDiff, error)

	// Settings and presentation methods.
	SaveCredential(ctx context.Context, apiKey string) error
	SetSettingsOpen(ctx context.Context, open bool) error
	SetPanelOpen(ctx context.Context, open bool) error
	ExportHTML(ctx context.Context) (string, error)
	ExportHTMLFile(ctx context.Context) (string, error)
	Toasts(ctx context.Context) []entity.Toast
	DismissToast(ctx context.Context, id string) bool
	State(ctx context.Context) entity.StudioView

	// Connection methods.
	Connect(ctx context.Context, conn *jsonrpc2.Conn) (uuid.UUID, error)
	Disconnect(ctx context.Context, id uuid.UUID) error
}

// Params are inbound parameters to initialize a new controller.
type Params struct {
	fx.In

	Lifecycle   fx.Lifecycle
	Projects    project.Repository
	Credentials credential.Repository
	Model       generative.Gateway
	Clients     client.Gateway
	Toasts      notifier.Queue
	Examples    examples.Catalog
	Exporter    export.Exporter
	Activity    activitylog.Log
	Clock       clock.Clock
	Logger      *zap.SugaredLogger
	Stats       tally.Scope
}

type controller struct {
	projects    project.Repository
	credentials credential.Repository
	model       generative.Gateway
	clients     client.Gateway
	toasts      notifier.Queue
	examples    examples.Catalog
	exporter    export.Exporter
	activity    activitylog.Log
	clock       clock.Clock
	logger      *zap.SugaredLogger
	stats       tally.Scope

	// mu guards everything below. Model calls are made without holding it.
	mu      sync.Mutex
	state   session.State
	service generative.Service
	// epoch changes whenever a different project becomes active, so late results can be recognized.
	epoch uint64
	// unsaved is set when the last write failed; the next transition retries it.
	unsaved bool
	// pointer is the last persisted current-project id.
	pointer string

	// publishMu keeps state notifications in transition order.
	publishMu sync.Mutex
}

// New constructs the studio controller.
func New(p Params) Controller {
	c := &controller{
		projects:    p.Projects,
		credentials: p.Credentials,
		model:       p.Model,
		clients:     p.Clients,
		toasts:      p.Toasts,
		examples:    p.Examples,
		exporter:    p.Exporter,
		activity:    p.Activity,
		clock:       p.Clock,
		logger:      p.Logger.With("controller", "studio"),
		stats:       p.Stats.SubScope("studio"),
		state:       session.New(factory.ProjectID()),
	}
	p.Lifecycle.Append(fx.Hook{
		OnStart: c.Init,
	})
	return c
}

// commit applies events to the current state and persists the result when a persisted field changed.
// Callers hold c.mu and call publish after releasing it.
func (c *controller) commit(ctx context.Context, events ...session.Event) {
	prev := c.state
	next := prev
	for _, e := range events {
		switch e.(type) {
		case session.ProjectCreated, session.ProjectLoaded, session.ExampleLoaded:
			c.epoch++
		}
		next = session.Reduce(next, e)
	}

	if next.ProjectID != prev.ProjectID && c.unsaved && prev.Persistable() {
		// The failed write belongs to the project being left.
		c.unsaved = c.save(ctx, prev) != nil
	}

	if !session.PersistedEqual(prev, next) || c.unsaved {
		if next.Persistable() {
			next = session.Reduce(next, session.Touched{At: c.clock.Now()})
			c.unsaved = c.save(ctx, next) != nil
		} else {
			c.unsaved = false
		}
	}
	c.state = next

	if next.ProjectID != c.pointer {
		if err := c.projects.SetCurrentID(ctx, next.ProjectID); err != nil {
			c.logger.Warnw("saving current project pointer failed", "project", next.ProjectID, zap.Error(err))
		} else {
			c.pointer = next.ProjectID
		}
	}
}

func (c *controller) save(ctx context.Context, s session.State) error {
	sw := c.stats.Timer("save").Start()
	defer sw.Stop()

	if err := c.projects.Upsert(ctx, s.Project()); err != nil {
		c.logger.Errorw("saving project failed", "project", s.ProjectID, zap.Error(err))
		c.stats.Counter("save_failed").Inc(1)
		c.notify(ctx, entity.SeverityError, fmt.Sprintf(_msgSaveFailed, err))
		return err
	}
	c.stats.Counter("saved").Inc(1)
	return nil
}

// publish pushes the current state to every connected client.
func (c *controller) publish(ctx context.Context) {
	c.publishMu.Lock()
	defer c.publishMu.Unlock()

	view := c.State(ctx)
	if err := c.clients.Broadcast(ctx, entity.NotificationStateChanged, view); err != nil {
		c.logger.Warnw("publishing state failed", zap.Error(err))
	}
}

// update commits events under the lock and publishes the result.
func (c *controller) update(ctx context.Context, events ...session.Event) {
	c.mu.Lock()
	c.commit(ctx, events...)
	c.mu.Unlock()
	c.publish(ctx)
}

func (c *controller) notify(ctx context.Context, severity entity.Severity, msg string) {
	c.toasts.Push(ctx, severity, msg)
}

func (c *controller) State(ctx context.Context) entity.StudioView {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.View()
}

func (c *controller) Toasts(ctx context.Context) []entity.Toast {
	return c.toasts.List()
}

func (c *controller) DismissToast(ctx context.Context, id string) bool {
	return c.toasts.Dismiss(ctx, id)
}

func (c *controller) Connect(ctx context.Context, conn *jsonrpc2.Conn) (uuid.UUID, error) {
	id := factory.UUID()
	if err := c.clients.RegisterClient(ctx, id, conn); err != nil {
		return uuid.Nil, err
	}
	c.logger.Infow("client connected", "client", id, "clients", c.clients.ClientCount())
	c.publish(ctx)
	return id, nil
}

func (c *controller) Disconnect(ctx context.Context, id uuid.UUID) error {
	if err := c.clients.DeregisterClient(ctx, id); err != nil {
		return err
	}
	c.logger.Infow("client disconnected", "client", id, "clients", c.clients.ClientCount())
	return nil
}
