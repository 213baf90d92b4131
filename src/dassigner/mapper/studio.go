package mapper

import (
	"context"

	"github.com/dassigner/studio/src/dassigner/entity"
	"github.com/gofrs/uuid"
)

// UUIDToClient initializes a new Client entity with the assigned uuid.
func UUIDToClient(u uuid.UUID) *entity.Client {
	return &entity.Client{UUID: u}
}

// ContextToClientUUID extracts the client UUID from a context.
func ContextToClientUUID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(entity.ClientContextKey).(uuid.UUID)
	return id, ok
}

// ClientUUIDToContext attaches a client UUID to a context.
func ClientUUIDToContext(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, entity.ClientContextKey, id)
}
