package gateway

import (
	"github.com/dassigner/studio/src/dassigner/gateway/client"
	"github.com/dassigner/studio/src/dassigner/gateway/generative"
	"go.uber.org/fx"
)

// Module provides the outbound gateways.
var Module = fx.Options(
	client.Module,
	generative.Module,
)
