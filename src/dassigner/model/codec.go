package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DecodeProjectCollection reads either the versioned envelope or the bare array layout.
// The returned collection always has the version it was read as.
func DecodeProjectCollection(data []byte) (*ProjectCollection, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty project collection")
	}

	switch trimmed[0] {
	case '[':
		var projects []Project
		if err := json.Unmarshal(trimmed, &projects); err != nil {
			return nil, fmt.Errorf("decoding unversioned project list: %w", err)
		}
		return &ProjectCollection{SchemaVersion: 0, Projects: projects}, nil
	case '{':
		var collection ProjectCollection
		if err := json.Unmarshal(trimmed, &collection); err != nil {
			return nil, fmt.Errorf("decoding project collection: %w", err)
		}
		if collection.SchemaVersion < 1 || collection.SchemaVersion > ProjectCollectionSchemaVersion {
			return nil, fmt.Errorf("unsupported project collection schema version %d", collection.SchemaVersion)
		}
		return &collection, nil
	default:
		return nil, fmt.Errorf("unrecognized project collection layout")
	}
}

// EncodeProjectCollection writes the projects in the current envelope layout.
func EncodeProjectCollection(projects []Project) ([]byte, error) {
	if projects == nil {
		projects = []Project{}
	}
	return json.Marshal(ProjectCollection{
		SchemaVersion: ProjectCollectionSchemaVersion,
		Projects:      projects,
	})
}

// DecodeLegacySession reads the single-session record.
func DecodeLegacySession(data []byte) (*LegacySession, error) {
	var session LegacySession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("decoding legacy session: %w", err)
	}
	return &session, nil
}
