// Package activitylog writes a human readable transcript of studio activity to a file clients can tail.
package activitylog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dassigner/studio/src/dassigner/internal/fs"
	"github.com/dassigner/studio/src/dassigner/internal/serverinfofile"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	_fmtOutputKey = "output:%s"
	_name         = "activity"
	_dirName      = "dassigner"
)

// Module is the Fx module for this package.
var Module = fx.Provide(New)

// Log records one line per user visible event, independent of the daemon's own logging.
type Log interface {
	Record(msg string, keysAndValues ...interface{})
}

// Params define the dependencies for New.
type Params struct {
	fx.In

	FS             fs.FS
	Lifecycle      fx.Lifecycle
	ServerInfoFile serverinfofile.ServerInfoFile
}

type logWriter struct {
	logger *zap.SugaredLogger
}

// New creates the transcript under the temp directory and publishes its path in the server info file.
// The file is removed on shutdown.
func New(p Params) (Log, error) {
	dir := filepath.Join(os.TempDir(), _dirName)
	if err := p.FS.MkdirAll(dir); err != nil {
		return nil, fmt.Errorf("creating activity log directory: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("%s-%d.log", _name, os.Getpid()))
	sink, closeSink, err := zap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening activity log: %w", err)
	}

	// Clients tail the file by reading its path from the server info file.
	if err := p.ServerInfoFile.UpdateField(fmt.Sprintf(_fmtOutputKey, _name), path); err != nil {
		closeSink()
		return nil, err
	}

	l := newLogWriter(sink)
	p.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			l.logger.Sync()
			closeSink()
			return p.FS.Remove(path)
		},
	})
	return l, nil
}

// Nop returns a Log that discards everything.
func Nop() Log {
	return &logWriter{logger: zap.NewNop().Sugar()}
}

func newLogWriter(ws zapcore.WriteSyncer) *logWriter {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		ws,
		zap.InfoLevel,
	)
	return &logWriter{logger: zap.New(core).Sugar()}
}

func (o *logWriter) Record(msg string, keysAndValues ...interface{}) {
	o.logger.Infow(msg, keysAndValues...)
}
