package mapper

import (
	"encoding/json"
	"fmt"

	"github.com/dassigner/studio/src/dassigner/internal/errors"
	"go.lsp.dev/jsonrpc2"
)

const (
	// CodePrecondition reports a request that cannot run in the current state.
	CodePrecondition jsonrpc2.Code = -32001
	// CodeService reports a failure of the model service.
	CodeService jsonrpc2.Code = -32002
	// CodeStorage reports a failed durable write.
	CodeStorage jsonrpc2.Code = -32003
	// CodeNotFound reports an unknown project, version or example.
	CodeNotFound jsonrpc2.Code = -32004
	// CodeStale reports a result discarded because the active project or design changed.
	CodeStale jsonrpc2.Code = -32005
)

// RequestToParams decodes the parameters of a request into T.
func RequestToParams[T any](req jsonrpc2.Request) (*T, error) {
	raw := req.Params()
	if len(raw) == 0 || string(raw) == "null" {
		return nil, errors.NoMessageOnWireError
	}
	var params T
	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// ToWireError maps a controller error to a JSON-RPC error with a stable code.
func ToWireError(err error) error {
	if err == nil {
		return nil
	}
	var wire *jsonrpc2.Error
	if errors.As(err, &wire) {
		return jsonrpc2.NewError(wire.Code, err.Error())
	}

	code := jsonrpc2.InternalError
	var history *errors.HistoryItemNotFoundError
	switch {
	case errors.IsBadRequest(err):
		code = jsonrpc2.InvalidParams
	case errors.Is(err, errors.StaleResultError):
		code = CodeStale
	case errors.IsPrecondition(err):
		code = CodePrecondition
	case errors.IsService(err):
		code = CodeService
	case errors.IsStorage(err):
		code = CodeStorage
	case isNotFound(err), errors.As(err, &history):
		code = CodeNotFound
	}
	return jsonrpc2.NewError(code, err.Error())
}

func isNotFound(err error) bool {
	_, project := errors.NotFoundProject(err)
	_, key := errors.NotFoundKey(err)
	return project || key
}

func wrapErrParse(err error) error {
	return fmt.Errorf("%w: %w", jsonrpc2.ErrParse, err)
}
