package repository

import (
	"github.com/dassigner/studio/src/dassigner/repository/credential"
	"github.com/dassigner/studio/src/dassigner/repository/project"
	"go.uber.org/fx"
)

// Module provides the repositories over the persistent store.
var Module = fx.Options(
	project.Module,
	credential.Module,
)
