package studio

import (
	"context"

	"github.com/dassigner/studio/src/dassigner/entity"
	"github.com/dassigner/studio/src/dassigner/mapper"
	"go.lsp.dev/jsonrpc2"
)

func (r *jsonRPCRouter) NewProject(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	err := r.studio.NewProject(ctx)
	return respond(ctx, reply, nil, err)
}

func (r *jsonRPCRouter) LoadProject(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToParams[entity.ProjectParams](req)
	if err != nil {
		return respond(ctx, reply, nil, err)
	}

	err = r.studio.LoadProject(ctx, params.ID)
	return respond(ctx, reply, nil, err)
}

func (r *jsonRPCRouter) DeleteProject(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToParams[entity.ProjectParams](req)
	if err != nil {
		return respond(ctx, reply, nil, err)
	}

	err = r.studio.DeleteProject(ctx, params.ID)
	return respond(ctx, reply, nil, err)
}

func (r *jsonRPCRouter) LoadExample(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToParams[entity.ExampleParams](req)
	if err != nil {
		return respond(ctx, reply, nil, err)
	}

	err = r.studio.LoadExample(ctx, params.Index)
	return respond(ctx, reply, nil, err)
}

func (r *jsonRPCRouter) Examples(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	return respond(ctx, reply, r.studio.Examples(ctx), nil)
}

func (r *jsonRPCRouter) ListProjects(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	summaries, err := r.studio.ListProjects(ctx)
	return respond(ctx, reply, summaries, err)
}

func (r *jsonRPCRouter) RestoreVersion(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToParams[entity.VersionParams](req)
	if err != nil {
		return respond(ctx, reply, nil, err)
	}

	err = r.studio.RestoreVersion(ctx, params.ID)
	return respond(ctx, reply, nil, err)
}

func (r *jsonRPCRouter) RenameProject(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToParams[entity.TitleParams](req)
	if err != nil {
		return respond(ctx, reply, nil, err)
	}

	err = r.studio.RenameProject(ctx, params.Title)
	return respond(ctx, reply, nil, err)
}

func (r *jsonRPCRouter) SetComponentMode(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToParams[entity.ToggleParams](req)
	if err != nil {
		return respond(ctx, reply, nil, err)
	}

	err = r.studio.SetComponentMode(ctx, params.Enabled)
	return respond(ctx, reply, nil, err)
}

func (r *jsonRPCRouter) DiffVersions(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToParams[entity.DiffParams](req)
	if err != nil {
		return respond(ctx, reply, nil, err)
	}

	diff, err := r.studio.DiffVersions(ctx, params.From, params.To)
	return respond(ctx, reply, diff, err)
}
