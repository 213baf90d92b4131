// Package credential stores the model service API key.
package credential

//go:generate mockgen -source=credential.go -destination=credentialmock/credential_mock.go -package=credentialmock

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/dassigner/studio/src/dassigner/internal/errors"
	"github.com/dassigner/studio/src/dassigner/internal/store"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Key holds the obfuscated API key. Base64 is not a security boundary.
const Key = "gemini_api_key"

// Module is the Fx module for this package.
var Module = fx.Provide(New)

// Repository reads and writes the stored API key.
type Repository interface {
	// Get returns the stored key, or an empty string when none is stored.
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, apiKey string) error
	Clear(ctx context.Context) error
}

// Params are inbound parameters to initialize the repository.
type Params struct {
	fx.In

	Store  store.Store
	Logger *zap.SugaredLogger
}

type repository struct {
	store  store.Store
	logger *zap.SugaredLogger
}

// New returns a credential repository over the persistent store.
func New(p Params) Repository {
	return &repository{
		store:  p.Store,
		logger: p.Logger.With("repository", "credential"),
	}
}

func (r *repository) Get(ctx context.Context) (string, error) {
	data, err := r.store.Get(ctx, Key)
	if _, ok := errors.NotFoundKey(err); ok {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	apiKey, legacy := decode(string(data))
	if legacy {
		r.logger.Infow("read plain text credential, it will be encoded on next save")
	}
	return apiKey, nil
}

func (r *repository) Set(ctx context.Context, apiKey string) error {
	return r.store.Set(ctx, Key, []byte(base64.StdEncoding.EncodeToString([]byte(apiKey))))
}

func (r *repository) Clear(ctx context.Context) error {
	return r.store.Delete(ctx, Key)
}

// decode reverses the obfuscation, treating anything that is not valid base64 as a plain text key
// written by an earlier client.
func decode(stored string) (_ string, legacy bool) {
	stored = strings.TrimSpace(stored)
	decoded, err := base64.StdEncoding.DecodeString(stored)
	if err != nil {
		return stored, true
	}
	return string(decoded), false
}
