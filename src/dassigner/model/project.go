// Package model holds the persisted record layouts. Every record written by the daemon carries a schema version.
package model

const (
	// ProjectCollectionSchemaVersion is the version written by this build.
	// Version 0 is the bare JSON array written by earlier clients.
	ProjectCollectionSchemaVersion = 1
)

// ProjectCollection is the repository layer model for the persisted list of projects.
type ProjectCollection struct {
	SchemaVersion int       `json:"schemaVersion"`
	Projects      []Project `json:"projects"`
}

// Project is the repository layer model for a single project.
type Project struct {
	ID                 string            `json:"id"`
	Title              string            `json:"title"`
	History            []HistoryItem     `json:"history"`
	ActiveDesign       *DesignOutput     `json:"activeDesign"`
	IsComponentMode    bool              `json:"isComponentMode"`
	LastModified       int64             `json:"lastModified"`
	ConvertedCodeCache map[string]string `json:"convertedCodeCache"`
}

// HistoryItem is the repository layer model for one committed turn.
type HistoryItem struct {
	ID           string       `json:"id"`
	Prompt       string       `json:"prompt"`
	DesignOutput DesignOutput `json:"designOutput"`
}

// DesignOutput is the repository layer model for generated markup.
type DesignOutput struct {
	HTMLCode string `json:"htmlCode"`
}

// LegacySession is the single-session record that predates projects.
type LegacySession struct {
	History            []HistoryItem     `json:"history"`
	ActiveDesign       *DesignOutput     `json:"activeDesign"`
	ChatTitle          string            `json:"chatTitle"`
	IsComponentMode    bool              `json:"isComponentMode"`
	ConvertedCodeCache map[string]string `json:"convertedCodeCache"`
}
