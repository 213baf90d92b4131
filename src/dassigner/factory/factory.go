// Package factory builds identifiers and test fixtures.
package factory

import (
	"fmt"
	"strings"
	"time"

	"github.com/dassigner/studio/src/dassigner/entity"
	"github.com/gofrs/uuid"
	"go.lsp.dev/jsonrpc2"
)

const (
	_projectIDPrefix  = "proj-"
	_migratedIDPrefix = "migrated-"
)

// UUID is a user-defined factory for a random uuid.UUID.
func UUID() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}

// ProjectID returns a fresh, unique project id.
func ProjectID() string {
	return _projectIDPrefix + UUID().String()
}

// MigratedProjectID returns the id given to a project created from the legacy session record.
func MigratedProjectID(at time.Time) string {
	return fmt.Sprintf("%s%d", _migratedIDPrefix, at.UnixMilli())
}

// IsMigratedProjectID reports whether the id was produced by MigratedProjectID.
func IsMigratedProjectID(id string) bool {
	return strings.HasPrefix(id, _migratedIDPrefix)
}

// JSONRPCRequest is a user-defined factory for a JSON-RPC request containing the specified method and parameters.
func JSONRPCRequest(method string, params interface{}) jsonrpc2.Request {
	req, _ := jsonrpc2.NewCall(jsonrpc2.NewNumberID(5), method, params)
	return req
}

// JSONRPCNotification is a user-defined factory for a JSON-RPC notification.
func JSONRPCNotification(method string, params interface{}) jsonrpc2.Request {
	req, _ := jsonrpc2.NewNotification(method, params)
	return req
}

// Project is a factory for a project with n committed versions.
func Project(id string, versions int, lastModified time.Time) *entity.Project {
	p := &entity.Project{
		ID:                 id,
		Title:              entity.DefaultTitle,
		History:            []entity.HistoryItem{},
		ConvertedCodeCache: map[entity.ConversionTarget]string{},
		LastModified:       lastModified,
	}
	for i := 0; i < versions; i++ {
		prompt := fmt.Sprintf("prompt %d", i+1)
		item := entity.HistoryItem{
			ID:           fmt.Sprintf("%d", lastModified.UnixMilli()+int64(i)),
			Prompt:       prompt,
			DesignOutput: entity.DesignOutput{HTMLCode: fmt.Sprintf("<div>%d</div>", i+1)},
		}
		if i == 0 {
			p.Title = entity.DeriveTitle(prompt)
		}
		p.History = append(p.History, item)
		design := item.DesignOutput
		p.ActiveDesign = &design
	}
	return p
}
