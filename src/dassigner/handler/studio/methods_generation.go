package studio

import (
	"context"

	"github.com/dassigner/studio/src/dassigner/entity"
	"github.com/dassigner/studio/src/dassigner/mapper"
	"go.lsp.dev/jsonrpc2"
)

func (r *jsonRPCRouter) SendMessage(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToParams[entity.PromptParams](req)
	if err != nil {
		return respond(ctx, reply, nil, err)
	}

	err = r.studio.SendMessage(ctx, params.Prompt)
	return respond(ctx, reply, nil, err)
}

func (r *jsonRPCRouter) GenerateFromNewProject(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToParams[entity.PromptParams](req)
	if err != nil {
		return respond(ctx, reply, nil, err)
	}

	err = r.studio.GenerateFromNewProject(ctx, params.Prompt)
	return respond(ctx, reply, nil, err)
}

func (r *jsonRPCRouter) EnhancePrompt(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToParams[entity.PromptParams](req)
	if err != nil {
		return respond(ctx, reply, nil, err)
	}

	enhanced, err := r.studio.EnhancePrompt(ctx, params.Prompt)
	return respond(ctx, reply, entity.EnhanceResult{Prompt: enhanced}, err)
}

func (r *jsonRPCRouter) ConvertCode(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToParams[entity.ConvertParams](req)
	if err != nil {
		return respond(ctx, reply, nil, err)
	}

	err = r.studio.ConvertCode(ctx, params.Target)
	return respond(ctx, reply, nil, err)
}

func (r *jsonRPCRouter) SuggestPrompts(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	return respond(ctx, reply, r.studio.SuggestPrompts(ctx), nil)
}
