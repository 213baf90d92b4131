package studio

import (
	"context"
	"fmt"
	"strings"

	"github.com/dassigner/studio/src/dassigner/controller/session"
	"github.com/dassigner/studio/src/dassigner/entity"
	"github.com/dassigner/studio/src/dassigner/gateway/generative"
	"github.com/dassigner/studio/src/dassigner/internal/errors"
	"github.com/dassigner/studio/src/dassigner/internal/export"
	"go.uber.org/zap"
)

// SaveCredential configures the model service with apiKey and stores it. A blank key clears the credential.
// Every change drops the current conversation, since it belongs to the previous service.
func (c *controller) SaveCredential(ctx context.Context, apiKey string) error {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		err := c.credentials.Clear(ctx)
		c.setService(ctx, nil)
		if err != nil {
			c.logger.Errorw("clearing API key failed", zap.Error(err))
			return err
		}
		c.notify(ctx, entity.SeveritySuccess, _msgCredentialCleared)
		return nil
	}

	service, err := c.model.Configure(ctx, apiKey)
	if err != nil {
		c.logger.Warnw("API key rejected", zap.Error(err))
		if clearErr := c.credentials.Clear(ctx); clearErr != nil {
			c.logger.Errorw("clearing API key failed", zap.Error(clearErr))
		}
		c.setService(ctx, nil)
		c.notify(ctx, entity.SeverityError, err.Error())
		return err
	}
	if err := c.credentials.Set(ctx, apiKey); err != nil {
		c.logger.Errorw("storing API key failed", zap.Error(err))
		c.notify(ctx, entity.SeverityError, err.Error())
		return err
	}

	c.setService(ctx, service, session.SettingsSet{Open: false})
	c.notify(ctx, entity.SeveritySuccess, _msgCredentialSaved)
	return nil
}

func (c *controller) setService(ctx context.Context, service generative.Service, extra ...session.Event) {
	c.mu.Lock()
	c.service = service
	events := append([]session.Event{
		session.CredentialSet{Present: c.service != nil},
		session.ConversationOpened{Conversation: nil},
	}, extra...)
	c.commit(ctx, events...)
	c.mu.Unlock()
	c.publish(ctx)
}

func (c *controller) SetSettingsOpen(ctx context.Context, open bool) error {
	c.update(ctx, session.SettingsSet{Open: open})
	return nil
}

func (c *controller) SetPanelOpen(ctx context.Context, open bool) error {
	c.update(ctx, session.PanelSet{Open: open})
	return nil
}

func (c *controller) ExportHTML(ctx context.Context) (string, error) {
	c.mu.Lock()
	design := c.state.ActiveDesign
	c.mu.Unlock()

	if design == nil {
		return "", errors.NoActiveDesignError
	}
	return export.Document(design.HTMLCode), nil
}

func (c *controller) ExportHTMLFile(ctx context.Context) (string, error) {
	c.mu.Lock()
	design := c.state.ActiveDesign
	c.mu.Unlock()

	if design == nil {
		return "", errors.NoActiveDesignError
	}
	path, err := c.exporter.WriteFile(ctx, design.HTMLCode)
	if err != nil {
		c.logger.Errorw("exporting design failed", zap.Error(err))
		c.notify(ctx, entity.SeverityError, err.Error())
		return "", err
	}
	c.notify(ctx, entity.SeverityInfo, fmt.Sprintf(_msgExported, path))
	c.activity.Record("design exported", "path", path)
	return path, nil
}
