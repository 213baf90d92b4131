package handler

import (
	"github.com/dassigner/studio/src/dassigner/controller"
	controllerstudio "github.com/dassigner/studio/src/dassigner/controller/studio"
	"github.com/dassigner/studio/src/dassigner/handler/studio"
	"github.com/dassigner/studio/src/dassigner/repository"
	"go.uber.org/fx"
)

// Module provides the studio daemon's inbound handlers into an Fx application.
var Module = fx.Options(
	controller.Module,
	repository.Module,
	fx.Provide(studio.New),
	fx.Invoke(outputDaemonInfo),
	fx.Invoke(func(h studio.Handler) {}),
	fx.Invoke(func(c controllerstudio.Controller) {}),
)
