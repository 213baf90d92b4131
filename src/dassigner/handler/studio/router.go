package studio

import (
	"context"
	"sync"

	controller "github.com/dassigner/studio/src/dassigner/controller/studio"
	"github.com/dassigner/studio/src/dassigner/mapper"
	"github.com/gofrs/uuid"
	tally "github.com/uber-go/tally/v4"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/zap"
)

// Studio methods. Each maps to one controller operation.
const (
	MethodState                  = "studio/state"
	MethodSendMessage            = "studio/sendMessage"
	MethodGenerateFromNewProject = "studio/generateFromNewProject"
	MethodEnhancePrompt          = "studio/enhancePrompt"
	MethodConvertCode            = "studio/convertCode"
	MethodSuggestPrompts         = "studio/suggestPrompts"
	MethodNewProject             = "studio/newProject"
	MethodLoadProject            = "studio/loadProject"
	MethodDeleteProject          = "studio/deleteProject"
	MethodLoadExample            = "studio/loadExample"
	MethodExamples               = "studio/examples"
	MethodListProjects           = "studio/listProjects"
	MethodRestoreVersion         = "studio/restoreVersion"
	MethodRenameProject          = "studio/renameProject"
	MethodSetComponentMode       = "studio/setComponentMode"
	MethodDiffVersions           = "studio/diffVersions"
	MethodSaveCredential         = "studio/saveCredential"
	MethodSetSettingsOpen        = "studio/setSettingsOpen"
	MethodSetPanelOpen           = "studio/setPanelOpen"
	MethodExportHTML             = "studio/exportHTML"
	MethodExportHTMLFile         = "studio/exportHTMLFile"
	MethodToasts                 = "studio/toasts"
	MethodDismissToast           = "studio/dismissToast"
)

// _detached methods wait on the model service. They are served off the connection's read loop
// so that later requests on the same connection are still answered.
var _detached = map[string]struct{}{
	MethodSendMessage:            {},
	MethodGenerateFromNewProject: {},
	MethodEnhancePrompt:          {},
	MethodConvertCode:            {},
	MethodSuggestPrompts:         {},
}

type jsonRPCRouter struct {
	studio controller.Controller
	uuid   uuid.UUID
	stats  tally.Scope
	logger *zap.SugaredLogger

	// inflight counts detached requests that have not replied yet.
	inflight sync.WaitGroup
}

// HandleReq handles routing for a single request.
func (r *jsonRPCRouter) HandleReq(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	ctx = mapper.ClientUUIDToContext(ctx, r.uuid)
	if r.stats != nil {
		r.stats.Tagged(map[string]string{"method": req.Method()}).Counter("requests").Inc(1)
	}

	if _, ok := _detached[req.Method()]; ok {
		r.inflight.Add(1)
		go func() {
			defer r.inflight.Done()
			if err := r.route(ctx, reply, req); err != nil && r.logger != nil {
				r.logger.Debugw("detached request finished with error", "method", req.Method(), zap.Error(err))
			}
		}()
		return nil
	}
	return r.route(ctx, reply, req)
}

func (r *jsonRPCRouter) route(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	switch req.Method() {
	// Generation related methods.
	case MethodSendMessage:
		return r.SendMessage(ctx, reply, req)

	case MethodGenerateFromNewProject:
		return r.GenerateFromNewProject(ctx, reply, req)

	case MethodEnhancePrompt:
		return r.EnhancePrompt(ctx, reply, req)

	case MethodConvertCode:
		return r.ConvertCode(ctx, reply, req)

	case MethodSuggestPrompts:
		return r.SuggestPrompts(ctx, reply, req)

	// Project related methods.
	case MethodNewProject:
		return r.NewProject(ctx, reply, req)

	case MethodLoadProject:
		return r.LoadProject(ctx, reply, req)

	case MethodDeleteProject:
		return r.DeleteProject(ctx, reply, req)

	case MethodLoadExample:
		return r.LoadExample(ctx, reply, req)

	case MethodExamples:
		return r.Examples(ctx, reply, req)

	case MethodListProjects:
		return r.ListProjects(ctx, reply, req)

	case MethodRestoreVersion:
		return r.RestoreVersion(ctx, reply, req)

	case MethodRenameProject:
		return r.RenameProject(ctx, reply, req)

	case MethodSetComponentMode:
		return r.SetComponentMode(ctx, reply, req)

	case MethodDiffVersions:
		return r.DiffVersions(ctx, reply, req)

	// Settings and presentation methods.
	case MethodState:
		return r.State(ctx, reply, req)

	case MethodSaveCredential:
		return r.SaveCredential(ctx, reply, req)

	case MethodSetSettingsOpen:
		return r.SetSettingsOpen(ctx, reply, req)

	case MethodSetPanelOpen:
		return r.SetPanelOpen(ctx, reply, req)

	case MethodExportHTML:
		return r.ExportHTML(ctx, reply, req)

	case MethodExportHTMLFile:
		return r.ExportHTMLFile(ctx, reply, req)

	case MethodToasts:
		return r.Toasts(ctx, reply, req)

	case MethodDismissToast:
		return r.DismissToast(ctx, reply, req)
	}

	return jsonrpc2.MethodNotFoundHandler(ctx, reply, req)
}

// UUID returns the UUID assigned to this router's connection.
func (r *jsonRPCRouter) UUID() uuid.UUID {
	return r.uuid
}

// respond replies with result, or with err mapped to a wire error.
func respond(ctx context.Context, reply jsonrpc2.Replier, result interface{}, err error) error {
	if err != nil {
		return reply(ctx, nil, mapper.ToWireError(err))
	}
	return reply(ctx, result, nil)
}
