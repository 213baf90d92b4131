// Package generative is the gateway to the external generative model service.
package generative

//go:generate mockgen -source=generative.go -destination=generativemock/generative_mock.go -package=generativemock

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dassigner/studio/src/dassigner/entity"
	"github.com/dassigner/studio/src/dassigner/internal/errors"
	tally "github.com/uber-go/tally/v4"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

const (
	_configKey = "model"

	_defaultModel             = "gemini-2.5-flash"
	_defaultTimeoutSeconds    = 120
	_defaultRequestsPerMinute = 60
)

// Module is the Fx module for this package.
var Module = fx.Provide(New)

// Gateway builds model services from an API key. There is no shared client; every Configure call
// returns an independent Service.
type Gateway interface {
	// Configure validates the key and returns a ready service.
	Configure(ctx context.Context, apiKey string) (Service, error)
}

// Service is a configured connection to the model.
type Service interface {
	// CreateConversation starts a chat primed with the designer instructions.
	CreateConversation(ctx context.Context) (Conversation, error)
	// Enhance rewrites a short prompt into a detailed one.
	Enhance(ctx context.Context, prompt string) (string, error)
	// Convert turns markup into a component for the target framework.
	Convert(ctx context.Context, markup string, target entity.ConversionTarget) (string, error)
	// SuggestPrompts returns six inspiration prompts. It never fails; the built-in list is returned instead.
	SuggestPrompts(ctx context.Context) []string
}

// Conversation is an opaque, stateful chat with the model. It is not serializable.
type Conversation interface {
	// Send posts the prompt and returns the sanitized markup extracted from the reply.
	Send(ctx context.Context, prompt string) (entity.DesignOutput, error)
}

// Config is the model block of the service configuration.
type Config struct {
	Name              string  `yaml:"name"`
	BaseURL           string  `yaml:"baseURL"`
	TimeoutSeconds    int     `yaml:"timeoutSeconds"`
	RequestsPerMinute float64 `yaml:"requestsPerMinute"`
	Burst             int     `yaml:"burst"`
}

// Params are inbound parameters to initialize the gateway.
type Params struct {
	fx.In

	Config config.Provider
	Logger *zap.SugaredLogger
	Stats  tally.Scope
}

type gateway struct {
	cfg    Config
	logger *zap.SugaredLogger
	stats  tally.Scope
}

// New creates the model gateway.
func New(p Params) (Gateway, error) {
	var cfg Config
	if err := p.Config.Get(_configKey).Populate(&cfg); err != nil {
		return nil, fmt.Errorf("getting model config: %w", err)
	}
	if cfg.Name == "" {
		cfg.Name = _defaultModel
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = _defaultTimeoutSeconds
	}
	if cfg.RequestsPerMinute <= 0 {
		cfg.RequestsPerMinute = _defaultRequestsPerMinute
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}

	return &gateway{
		cfg:    cfg,
		logger: p.Logger.With("model", cfg.Name),
		stats:  p.Stats.SubScope("generative"),
	}, nil
}

func (g *gateway) Configure(ctx context.Context, apiKey string) (Service, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.NewServiceError(_serviceAPI, "API Key is not provided or is invalid.")
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if g.cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: g.cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		g.logger.Errorw("failed to initialize model client", zap.Error(err))
		return nil, &errors.ServiceError{Service: _serviceClient, Err: fmt.Errorf("Failed to initialize Gemini AI client: %w", err)}
	}

	g.logger.Infow("model client initialized")
	return &service{
		client:  client,
		model:   g.cfg.Name,
		timeout: time.Duration(g.cfg.TimeoutSeconds) * time.Second,
		limiter: rate.NewLimiter(rate.Limit(g.cfg.RequestsPerMinute/60), g.cfg.Burst),
		logger:  g.logger,
		stats:   g.stats,
	}, nil
}
