package generative

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dassigner/studio/src/dassigner/entity"
	"github.com/dassigner/studio/src/dassigner/internal/errors"
	"github.com/dassigner/studio/src/dassigner/internal/markup"
	tally "github.com/uber-go/tally/v4"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

const _logPreviewLength = 100

type service struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	limiter *rate.Limiter
	logger  *zap.SugaredLogger
	stats   tally.Scope
}

type conversation struct {
	chat    *genai.Chat
	service *service
}

func (s *service) CreateConversation(ctx context.Context) (Conversation, error) {
	chat, err := s.client.Chats.Create(ctx, s.model, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(_systemInstruction, genai.RoleUser),
	}, nil)
	if err != nil {
		s.logger.Errorw("failed to create conversation", zap.Error(err))
		return nil, errors.NewServiceError(_serviceChat, "Failed to create chat session.")
	}
	s.logger.Infow("conversation created")
	return &conversation{chat: chat, service: s}, nil
}

func (c *conversation) Send(ctx context.Context, prompt string) (entity.DesignOutput, error) {
	s := c.service
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return entity.DesignOutput{}, &errors.ServiceError{Service: _serviceChat, Err: errors.EmptyPromptError}
	}

	ctx, done, err := s.begin(ctx, "send")
	if err != nil {
		return entity.DesignOutput{}, &errors.ServiceError{Service: _serviceChat, Err: fmt.Errorf("Failed to send message to chat: %w", err)}
	}
	defer done()

	s.logger.Infow("sending message", "prompt", preview(prompt))
	resp, err := c.chat.SendMessage(ctx, genai.Part{Text: prompt})
	if err != nil {
		s.failed("send")
		return entity.DesignOutput{}, &errors.ServiceError{Service: _serviceChat, Err: fmt.Errorf("Failed to send message to chat: %w", err)}
	}

	raw := resp.Text()
	htmlCode, err := markup.Extract(raw)
	if errors.Is(err, markup.EmptyResponseError) {
		s.failed("send")
		return entity.DesignOutput{}, errors.NewServiceError(_serviceChat, "Empty response received from chat service.")
	}
	if err != nil {
		s.failed("send")
		s.logger.Warnw("reply did not contain valid markup", "reply", preview(raw), zap.Error(err))
		return entity.DesignOutput{}, errors.NewServiceError(_serviceChat, "Invalid HTML code received from chat. The response did not contain valid HTML.")
	}

	s.stats.Counter("send_success").Inc(1)
	return entity.DesignOutput{HTMLCode: htmlCode}, nil
}

func (s *service) Enhance(ctx context.Context, prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", &errors.ServiceError{Service: _serviceEnhance, Err: errors.EmptyPromptError}
	}

	ctx, done, err := s.begin(ctx, "enhance")
	if err != nil {
		return "", &errors.ServiceError{Service: _serviceEnhance, Err: fmt.Errorf("Failed to enhance prompt: %w", err)}
	}
	defer done()

	s.logger.Infow("enhancing prompt", "prompt", preview(prompt))
	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(enhancePrompt(prompt)), nil)
	if err != nil {
		s.failed("enhance")
		return "", &errors.ServiceError{Service: _serviceEnhance, Err: fmt.Errorf("Failed to enhance prompt: %w", err)}
	}

	enhanced := strings.TrimSpace(resp.Text())
	if enhanced == "" {
		s.failed("enhance")
		return "", errors.NewServiceError(_serviceEnhance, "Empty enhanced prompt received.")
	}
	s.stats.Counter("enhance_success").Inc(1)
	return enhanced, nil
}

func (s *service) Convert(ctx context.Context, htmlCode string, target entity.ConversionTarget) (string, error) {
	if strings.TrimSpace(htmlCode) == "" {
		return "", errors.NewServiceError(_serviceConvert, "HTML code is required and cannot be empty.")
	}
	if !target.Valid() {
		return "", errors.NewServiceError(_serviceConvert, `Framework must be either "React" or "Vue".`)
	}

	ctx, done, err := s.begin(ctx, "convert")
	if err != nil {
		return "", &errors.ServiceError{Service: _serviceConvert, Err: fmt.Errorf("Failed to convert to %s: %w", target, err)}
	}
	defer done()

	s.logger.Infow("converting markup", "target", target)
	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(convertPrompt(htmlCode, target)), nil)
	if err != nil {
		s.failed("convert")
		return "", &errors.ServiceError{Service: _serviceConvert, Err: fmt.Errorf("Failed to convert to %s: %w", target, err)}
	}

	code := strings.TrimSpace(resp.Text())
	if code == "" {
		s.failed("convert")
		return "", errors.NewServiceError(_serviceConvert, "Empty converted code received.")
	}
	s.stats.Counter("convert_success").Inc(1)
	return code, nil
}

func (s *service) SuggestPrompts(ctx context.Context) []string {
	ctx, done, err := s.begin(ctx, "suggest")
	if err != nil {
		s.logger.Warnw("using default inspiration prompts", zap.Error(err))
		return defaultPrompts()
	}
	defer done()

	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(_suggestPrompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A single, creative UI design prompt.",
			},
		},
	})
	if err != nil {
		s.failed("suggest")
		s.logger.Warnw("using default inspiration prompts", zap.Error(err))
		return defaultPrompts()
	}

	var prompts []string
	if err := json.Unmarshal([]byte(resp.Text()), &prompts); err != nil || !usable(prompts) {
		s.failed("suggest")
		s.logger.Warnw("invalid inspiration prompts, using defaults", "reply", preview(resp.Text()))
		return defaultPrompts()
	}
	s.stats.Counter("suggest_success").Inc(1)
	if len(prompts) > _suggestionCount {
		prompts = prompts[:_suggestionCount]
	}
	return prompts
}

// begin waits for the rate limiter and applies the call timeout.
func (s *service) begin(ctx context.Context, op string) (context.Context, func(), error) {
	if err := s.limiter.Wait(ctx); err != nil {
		s.stats.Counter(op + "_throttled").Inc(1)
		return ctx, func() {}, err
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	sw := s.stats.Timer(op + "_latency").Start()
	return ctx, func() {
		sw.Stop()
		cancel()
	}, nil
}

func (s *service) failed(op string) {
	s.stats.Counter(op + "_failure").Inc(1)
}

func usable(prompts []string) bool {
	if len(prompts) == 0 {
		return false
	}
	for _, p := range prompts {
		if strings.TrimSpace(p) == "" {
			return false
		}
	}
	return true
}

func defaultPrompts() []string {
	return append([]string(nil), DefaultPrompts...)
}

func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= _logPreviewLength {
		return text
	}
	return string(runes[:_logPreviewLength]) + "..."
}
