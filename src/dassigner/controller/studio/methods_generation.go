package studio

import (
	"context"
	"fmt"
	"strings"

	"github.com/dassigner/studio/src/dassigner/controller/session"
	"github.com/dassigner/studio/src/dassigner/entity"
	"github.com/dassigner/studio/src/dassigner/factory"
	"github.com/dassigner/studio/src/dassigner/gateway/generative"
	"github.com/dassigner/studio/src/dassigner/internal/errors"
	"go.uber.org/zap"
)

// generation is a model call issued under the lock and completed without it.
type generation struct {
	epoch  uint64
	conv   generative.Conversation
	prompt string
	// outgoing is what is sent to the model; it differs from prompt in component mode.
	outgoing string
}

func (c *controller) SendMessage(ctx context.Context, prompt string) error {
	if strings.TrimSpace(prompt) == "" {
		return errors.EmptyPromptError
	}

	c.mu.Lock()
	g, err := c.beginGeneration(ctx, prompt, false)
	c.mu.Unlock()
	c.publish(ctx)
	if err != nil {
		return err
	}
	return c.finishGeneration(ctx, g)
}

func (c *controller) GenerateFromNewProject(ctx context.Context, prompt string) error {
	if strings.TrimSpace(prompt) == "" {
		return errors.EmptyPromptError
	}

	c.mu.Lock()
	g, err := c.beginGeneration(ctx, prompt, true)
	c.mu.Unlock()
	c.publish(ctx)
	if err != nil {
		return err
	}
	return c.finishGeneration(ctx, g)
}

// beginGeneration checks preconditions and commits the start of a generation. Callers hold c.mu.
func (c *controller) beginGeneration(ctx context.Context, prompt string, newProject bool) (generation, error) {
	if c.service == nil {
		c.notify(ctx, entity.SeverityError, _msgCredentialMissing)
		c.commit(ctx, session.SettingsSet{Open: true})
		return generation{}, errors.CredentialMissingError
	}
	if c.state.Loading {
		c.notify(ctx, entity.SeverityWarning, errors.GenerationInProgressError.Error())
		return generation{}, errors.GenerationInProgressError
	}

	var events []session.Event
	conv := c.state.Conversation
	outgoing := prompt
	if newProject {
		events = append(events, session.ProjectCreated{ID: factory.ProjectID()})
		conv = nil
	} else if c.state.ComponentMode && c.state.ActiveDesign != nil {
		outgoing = generative.ComponentPrompt(prompt, c.state.ActiveDesign.HTMLCode)
	}

	if conv == nil {
		var err error
		conv, err = c.service.CreateConversation(ctx)
		if err != nil {
			c.logger.Errorw("creating conversation failed", zap.Error(err))
			c.notify(ctx, entity.SeverityError, err.Error())
			c.commit(ctx, append(events, session.GenerationFailed{})...)
			return generation{}, err
		}
	}
	c.commit(ctx, append(events, session.GenerationStarted{}, session.ConversationOpened{Conversation: conv})...)

	return generation{
		epoch:    c.epoch,
		conv:     conv,
		prompt:   prompt,
		outgoing: outgoing,
	}, nil
}

func (c *controller) finishGeneration(ctx context.Context, g generation) error {
	sw := c.stats.Timer("generation").Start()
	design, err := g.conv.Send(ctx, g.outgoing)
	sw.Stop()

	c.mu.Lock()
	if g.epoch != c.epoch {
		c.mu.Unlock()
		c.logger.Infow("discarding generation for a replaced project", "prompt", g.prompt, "failed", err != nil)
		c.stats.Counter("generation_stale").Inc(1)
		return errors.StaleResultError
	}
	if err != nil {
		c.commit(ctx, session.GenerationFailed{})
		c.mu.Unlock()
		c.logger.Warnw("generation failed", zap.Error(err))
		c.activity.Record("generation failed", "prompt", g.prompt, "error", err.Error())
		c.stats.Counter("generation_failed").Inc(1)
		c.notify(ctx, entity.SeverityError, err.Error())
		c.publish(ctx)
		return err
	}
	c.commit(ctx, session.GenerationSucceeded{Prompt: g.prompt, Design: design, At: c.clock.Now()})
	project, versions := c.state.ProjectID, len(c.state.History)
	c.mu.Unlock()
	c.activity.Record("design generated", "project", project, "version", versions, "prompt", g.prompt)
	c.stats.Counter("generation_succeeded").Inc(1)
	c.publish(ctx)
	return nil
}

func (c *controller) EnhancePrompt(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", errors.EmptyPromptError
	}
	c.mu.Lock()
	service := c.service
	c.mu.Unlock()

	if service == nil {
		c.notify(ctx, entity.SeverityError, _msgCredentialMissing)
		return "", errors.CredentialMissingError
	}
	return service.Enhance(ctx, prompt)
}

func (c *controller) ConvertCode(ctx context.Context, target entity.ConversionTarget) error {
	if !target.Valid() {
		return errors.UnsupportedTargetError
	}

	c.mu.Lock()
	design := c.state.ActiveDesign
	switch {
	case design == nil:
		c.mu.Unlock()
		c.logger.Debugw("ignoring conversion without an active design", "target", target)
		return nil
	case c.service == nil:
		c.mu.Unlock()
		c.notify(ctx, entity.SeverityError, _msgCredentialMissing)
		return errors.CredentialMissingError
	case c.state.Converting:
		c.mu.Unlock()
		return errors.ConversionInProgressError
	}
	service, epoch, htmlCode := c.service, c.epoch, design.HTMLCode
	c.commit(ctx, session.ConversionStarted{Target: target})
	c.mu.Unlock()
	c.publish(ctx)

	code, err := service.Convert(ctx, htmlCode, target)

	c.mu.Lock()
	if epoch != c.epoch || c.state.ActiveDesign == nil || c.state.ActiveDesign.HTMLCode != htmlCode {
		if epoch == c.epoch {
			c.commit(ctx, session.ConversionDiscarded{})
		}
		c.mu.Unlock()
		c.logger.Infow("discarding conversion for a replaced design", "target", target)
		c.stats.Counter("conversion_stale").Inc(1)
		c.publish(ctx)
		return errors.StaleResultError
	}
	if err != nil {
		c.commit(ctx, session.ConversionFailed{Target: target, Reason: err.Error()})
		c.mu.Unlock()
		c.logger.Warnw("conversion failed", "target", target, zap.Error(err))
		c.activity.Record("conversion failed", "target", target, "error", err.Error())
		c.notify(ctx, entity.SeverityError, fmt.Sprintf(_msgConversionFailed, target))
		c.publish(ctx)
		return err
	}
	c.commit(ctx, session.ConversionSucceeded{Target: target, Code: code})
	c.mu.Unlock()
	c.activity.Record("design converted", "target", target)
	c.publish(ctx)
	return nil
}

func (c *controller) SuggestPrompts(ctx context.Context) []string {
	c.mu.Lock()
	service := c.service
	c.mu.Unlock()

	if service == nil {
		return append([]string(nil), generative.DefaultPrompts...)
	}
	return service.SuggestPrompts(ctx)
}
