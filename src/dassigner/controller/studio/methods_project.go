package studio

import (
	"context"
	"strings"

	"github.com/dassigner/studio/src/dassigner/controller/session"
	"github.com/dassigner/studio/src/dassigner/entity"
	"github.com/dassigner/studio/src/dassigner/factory"
	"github.com/dassigner/studio/src/dassigner/gateway/generative"
	"github.com/dassigner/studio/src/dassigner/internal/errors"
	"github.com/dassigner/studio/src/dassigner/internal/markup"
	"github.com/dassigner/studio/src/dassigner/mapper"
	"go.uber.org/zap"
)

func (c *controller) Init(ctx context.Context) error {
	apiKey, err := c.credentials.Get(ctx)
	if err != nil {
		c.logger.Warnw("reading stored API key failed", zap.Error(err))
	}
	var service generative.Service
	if apiKey != "" {
		if service, err = c.model.Configure(ctx, apiKey); err != nil {
			c.logger.Warnw("stored API key was rejected", zap.Error(err))
			service = nil
		}
	}

	if _, err := c.projects.MigrateLegacy(ctx); err != nil {
		c.logger.Warnw("migrating legacy session failed", zap.Error(err))
	}
	initial, err := c.projects.ResolveInitial(ctx)
	if err != nil {
		c.logger.Warnw("resolving initial project failed", zap.Error(err))
		initial = nil
	}

	c.mu.Lock()
	c.service = service
	c.state = session.Reduce(c.state, session.CredentialSet{Present: service != nil})
	if initial != nil {
		c.epoch++
		c.state = session.Reduce(c.state, session.ProjectLoaded{Project: initial})
		c.pointer = initial.ID
		c.logger.Infow("restored project", "project", initial.ID, "versions", len(initial.History))
	} else {
		// The pointer of a fresh project is persisted by the first commit.
		c.commit(ctx, session.ProjectCreated{ID: factory.ProjectID()})
	}
	c.mu.Unlock()
	return nil
}

func (c *controller) NewProject(ctx context.Context) error {
	c.update(ctx, session.ProjectCreated{ID: factory.ProjectID()})
	return nil
}

func (c *controller) LoadProject(ctx context.Context, id string) error {
	p, err := c.projects.Get(ctx, id)
	if err != nil {
		if _, ok := errors.NotFoundProject(err); ok {
			c.notify(ctx, entity.SeverityError, _msgProjectNotFound)
		}
		return err
	}
	c.update(ctx, session.ProjectLoaded{Project: p})
	c.activity.Record("project loaded", "project", id, "title", p.Title)
	return nil
}

func (c *controller) DeleteProject(ctx context.Context, id string) error {
	c.mu.Lock()
	defer func() {
		c.mu.Unlock()
		c.publish(ctx)
	}()

	if err := c.projects.Delete(ctx, id); err != nil {
		return err
	}
	c.notify(ctx, entity.SeveritySuccess, _msgProjectDeleted)
	c.activity.Record("project deleted", "project", id)
	if id != c.state.ProjectID {
		return nil
	}

	// A pending retry must not bring the deleted project back.
	c.unsaved = false
	remaining, err := c.projects.List(ctx)
	if err != nil {
		c.logger.Warnw("listing projects after delete failed", zap.Error(err))
	}
	if recent := entity.MostRecent(remaining); recent != nil {
		c.commit(ctx, session.ProjectLoaded{Project: recent})
	} else {
		c.commit(ctx, session.ProjectCreated{ID: factory.ProjectID()})
	}
	return nil
}

func (c *controller) LoadExample(ctx context.Context, index int) error {
	ex, err := c.examples.Get(index)
	if err != nil {
		return err
	}
	c.update(ctx, session.ExampleLoaded{Example: ex, ID: factory.ProjectID(), At: c.clock.Now()})
	return nil
}

func (c *controller) Examples(ctx context.Context) []entity.Example {
	return c.examples.List()
}

func (c *controller) ListProjects(ctx context.Context) ([]entity.ProjectSummary, error) {
	projects, err := c.projects.List(ctx)
	if err != nil {
		return nil, err
	}
	entity.SortByRecency(projects)

	activeID := c.State(ctx).ProjectID
	summaries := make([]entity.ProjectSummary, 0, len(projects))
	for _, p := range projects {
		summaries = append(summaries, mapper.ProjectToSummary(p, activeID))
	}
	return summaries, nil
}

func (c *controller) RestoreVersion(ctx context.Context, historyID string) error {
	c.mu.Lock()
	if _, ok := entity.FindHistoryItem(c.state.History, historyID); !ok {
		c.mu.Unlock()
		c.logger.Debugw("ignoring restore of an unknown version", "history", historyID)
		return nil
	}
	c.commit(ctx, session.VersionRestored{HistoryID: historyID})
	c.mu.Unlock()
	c.publish(ctx)
	return nil
}

func (c *controller) RenameProject(ctx context.Context, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return errors.EmptyTitleError
	}
	c.update(ctx, session.TitleSet{Title: title})
	return nil
}

func (c *controller) SetComponentMode(ctx context.Context, enabled bool) error {
	c.update(ctx, session.ComponentModeSet{Enabled: enabled})
	return nil
}

func (c *controller) DiffVersions(ctx context.Context, fromID, toID string) (markup.VersionDiff, error) {
	c.mu.Lock()
	history := c.state.History
	c.mu.Unlock()

	from, ok := entity.FindHistoryItem(history, fromID)
	if !ok {
		return markup.VersionDiff{}, &errors.HistoryItemNotFoundError{ID: fromID}
	}
	to, ok := entity.FindHistoryItem(history, toID)
	if !ok {
		return markup.VersionDiff{}, &errors.HistoryItemNotFoundError{ID: toID}
	}
	return markup.Diff(from.DesignOutput.HTMLCode, to.DesignOutput.HTMLCode), nil
}
