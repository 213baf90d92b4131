// Package export renders designs as standalone HTML documents.
package export

//go:generate mockgen -source=export.go -destination=exportmock/export_mock.go -package=exportmock

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dassigner/studio/src/dassigner/internal/fs"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module is the Fx module for this package.
var Module = fx.Provide(New)

const (
	_configKey = "export"
	// FileName is the name given to every exported document.
	FileName = "dassigner-ai-design.html"

	_defaultDir = ".dassigner/exports"
)

const _documentTemplate = `
<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <script src="https://cdn.tailwindcss.com"></script>
  <title>DAssigner Ai Design</title>
  <!-- Generated with DAssigner AI -->
</head>
<body class="bg-white">
  %s
</body>
</html>
`

// Config for the exporter.
type Config struct {
	// Dir receives exported files. Relative paths resolve against the user's home directory.
	Dir string `yaml:"dir"`
}

// Params are inbound parameters to initialize the exporter.
type Params struct {
	fx.In

	Config config.Provider
	FS     fs.FS
	Logger *zap.SugaredLogger
}

// Exporter writes designs to disk.
type Exporter interface {
	// WriteFile writes the document for htmlCode and returns its path.
	WriteFile(ctx context.Context, htmlCode string) (string, error)
}

type exporter struct {
	dir    string
	fs     fs.FS
	logger *zap.SugaredLogger
}

// New creates an Exporter.
func New(p Params) (Exporter, error) {
	cfg := Config{}
	if err := p.Config.Get(_configKey).Populate(&cfg); err != nil {
		return nil, fmt.Errorf("getting export configuration: %w", err)
	}
	dir := cfg.Dir
	if dir == "" {
		dir = _defaultDir
	}
	if !filepath.IsAbs(dir) {
		home, err := p.FS.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolving export directory: %w", err)
		}
		dir = filepath.Join(home, dir)
	}
	return &exporter{dir: dir, fs: p.FS, logger: p.Logger}, nil
}

// Document wraps markup in a page that loads the Tailwind CDN.
func Document(htmlCode string) string {
	return strings.TrimSpace(fmt.Sprintf(_documentTemplate, htmlCode))
}

func (e *exporter) WriteFile(ctx context.Context, htmlCode string) (string, error) {
	if err := e.fs.MkdirAll(e.dir); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}
	path := filepath.Join(e.dir, FileName)
	if err := e.fs.WriteFile(path, []byte(Document(htmlCode))); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	e.logger.Infow("exported design", "path", path, "bytes", len(htmlCode))
	return path, nil
}
