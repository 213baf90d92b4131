package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dassigner/studio/src/dassigner/internal/core"
	"github.com/dassigner/studio/src/dassigner/internal/fs"
	"go.uber.org/config"
	"go.uber.org/fx"
)

const (
	// EnvLocal is the default: JSON logs under the user's home directory.
	EnvLocal = "local"
	// EnvDevelopment logs to the console at debug level.
	EnvDevelopment = "development"

	_envVarEnvironment    = "DASSIGNER_ENVIRONMENT"
	_configKeyEnvironment = "environment"
	_configKeyLogging     = "logging"
)

// Context describes how the daemon was launched.
type Context struct {
	Environment string `yaml:"environment"`
}

// withEnvironment applies DASSIGNER_ENVIRONMENT. Names other than local and development are ignored.
func withEnvironment(launch Context) Context {
	switch name := strings.ToLower(strings.TrimSpace(os.Getenv(_envVarEnvironment))); name {
	case EnvLocal, EnvDevelopment:
		launch.Environment = name
	}
	if launch.Environment == "" {
		launch.Environment = EnvLocal
	}
	return launch
}

// ConfigParams are the dependencies of prepareConfig.
type ConfigParams struct {
	fx.In

	Launch Context
	Cfg    config.Provider
	FS     fs.FS
}

// prepareConfig exposes the environment under the "environment" key and creates
// the directories of file log outputs before the logger opens them.
func prepareConfig(p ConfigParams) (config.Provider, error) {
	layers := []config.YAMLOption{config.Name(p.Cfg.Name())}
	if root := p.Cfg.Get(config.Root); root.HasValue() {
		layers = append(layers, config.Static(root.Value()))
	}
	layers = append(layers, config.Static(map[string]interface{}{
		_configKeyEnvironment: p.Launch.Environment,
	}))

	cfg, err := config.NewYAML(layers...)
	if err != nil {
		return nil, fmt.Errorf("layering %q over config: %w", _configKeyEnvironment, err)
	}
	if err := createLogDirs(cfg, p.FS); err != nil {
		return nil, err
	}
	return cfg, nil
}

func createLogDirs(cfg config.Provider, fileSystem fs.FS) error {
	var logging core.LoggingConfig
	if err := cfg.Get(_configKeyLogging).Populate(&logging); err != nil {
		return fmt.Errorf("reading %q config: %w", _configKeyLogging, err)
	}

	for _, out := range logging.OutputPaths {
		switch out {
		case "stdout", "stderr":
			continue
		}
		if err := fileSystem.MkdirAll(filepath.Dir(out)); err != nil {
			return fmt.Errorf("creating log directory for %s: %w", out, err)
		}
	}
	return nil
}
