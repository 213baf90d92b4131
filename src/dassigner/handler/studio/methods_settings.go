package studio

import (
	"context"

	"github.com/dassigner/studio/src/dassigner/entity"
	"github.com/dassigner/studio/src/dassigner/mapper"
	"go.lsp.dev/jsonrpc2"
)

func (r *jsonRPCRouter) State(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	return respond(ctx, reply, r.studio.State(ctx), nil)
}

func (r *jsonRPCRouter) SaveCredential(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToParams[entity.CredentialParams](req)
	if err != nil {
		return respond(ctx, reply, nil, err)
	}

	err = r.studio.SaveCredential(ctx, params.APIKey)
	return respond(ctx, reply, nil, err)
}

func (r *jsonRPCRouter) SetSettingsOpen(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToParams[entity.ToggleParams](req)
	if err != nil {
		return respond(ctx, reply, nil, err)
	}

	err = r.studio.SetSettingsOpen(ctx, params.Enabled)
	return respond(ctx, reply, nil, err)
}

func (r *jsonRPCRouter) SetPanelOpen(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToParams[entity.ToggleParams](req)
	if err != nil {
		return respond(ctx, reply, nil, err)
	}

	err = r.studio.SetPanelOpen(ctx, params.Enabled)
	return respond(ctx, reply, nil, err)
}

func (r *jsonRPCRouter) ExportHTML(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	html, err := r.studio.ExportHTML(ctx)
	return respond(ctx, reply, entity.ExportResult{HTML: html}, err)
}

func (r *jsonRPCRouter) ExportHTMLFile(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	path, err := r.studio.ExportHTMLFile(ctx)
	return respond(ctx, reply, entity.ExportResult{Path: path}, err)
}

func (r *jsonRPCRouter) Toasts(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	return respond(ctx, reply, r.studio.Toasts(ctx), nil)
}

func (r *jsonRPCRouter) DismissToast(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToParams[entity.ToastParams](req)
	if err != nil {
		return respond(ctx, reply, nil, err)
	}

	return respond(ctx, reply, r.studio.DismissToast(ctx, params.ID), nil)
}
