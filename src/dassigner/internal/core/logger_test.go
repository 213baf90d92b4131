package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/config"
	"go.uber.org/fx/fxtest"
)

func TestNewSugaredLogger(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "studio.log")

	tests := []struct {
		name    string
		logging map[string]interface{}
		wantErr bool
	}{
		{
			name: "json to file",
			logging: map[string]interface{}{
				"level":       "info",
				"encoding":    "json",
				"outputPaths": []string{logFile},
			},
		},
		{
			name: "development console to stdout",
			logging: map[string]interface{}{
				"level":       "debug",
				"development": true,
				"encoding":    "console",
			},
		},
		{
			name: "invalid level",
			logging: map[string]interface{}{
				"level": "loud",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := config.NewStaticProvider(map[string]interface{}{
				"logging": tt.logging,
			})
			require.NoError(t, err)

			lc := fxtest.NewLifecycle(t)
			logger, err := NewSugaredLogger(lc, provider)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, logger)
			logger.Infow("started", "component", "test")
			assert.NotNil(t, NewLogger(logger))
			lc.RequireStart().RequireStop()
		})
	}

	contents, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(contents), `"msg":"started"`)
}
