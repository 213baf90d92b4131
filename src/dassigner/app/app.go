package app

import (
	"context"
	"time"

	"github.com/dassigner/studio/src/dassigner/gateway"
	"github.com/dassigner/studio/src/dassigner/handler"
	"github.com/dassigner/studio/src/dassigner/internal/activitylog"
	"github.com/dassigner/studio/src/dassigner/internal/clock"
	"github.com/dassigner/studio/src/dassigner/internal/core"
	"github.com/dassigner/studio/src/dassigner/internal/examples"
	"github.com/dassigner/studio/src/dassigner/internal/export"
	"github.com/dassigner/studio/src/dassigner/internal/fs"
	"github.com/dassigner/studio/src/dassigner/internal/jsonrpcfx"
	"github.com/dassigner/studio/src/dassigner/internal/notifier"
	"github.com/dassigner/studio/src/dassigner/internal/serverinfofile"
	"github.com/dassigner/studio/src/dassigner/internal/store"
	tally "github.com/uber-go/tally/v4"
	"go.uber.org/fx"
)

// Module defines the studio daemon application module.
var Module = fx.Options(
	gateway.Module, // outbounds
	handler.Module, // inbounds
	jsonrpcfx.Module,
	fs.Module,
	clock.Module,
	store.Module,
	notifier.Module,
	examples.Module,
	export.Module,
	serverinfofile.Module,
	activitylog.Module,
	core.ConfigModule,
	core.LoggerModule,
	fx.Provide(func(lc fx.Lifecycle) tally.Scope {
		rs, closer := tally.NewRootScope(tally.ScopeOptions{
			Tags: map[string]string{
				"service": "dassigner-studio",
			},
		}, 1*time.Second)

		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return closer.Close()
			},
		})

		return rs
	}),
	fx.Decorate(withEnvironment),
	fx.Decorate(prepareConfig),
	fx.Provide(func() Context {
		return Context{Environment: EnvLocal}
	}),
)
