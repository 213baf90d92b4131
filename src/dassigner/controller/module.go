package controller

import (
	"github.com/dassigner/studio/src/dassigner/controller/studio"
	"go.uber.org/fx"
)

// Module provides the studio controllers.
var Module = fx.Options(
	fx.Provide(studio.New),
)
