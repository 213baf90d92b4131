package entity

import "github.com/gofrs/uuid"

type keyType string

// ClientContextKey indicates the key to be used to identify the connected client UUID in the context.
const ClientContextKey keyType = "ClientUUID"

// StudioView is the externally visible state of the studio, pushed to clients after every transition.
type StudioView struct {
	ProjectID          string                      `json:"projectId"`
	Title              string                      `json:"title"`
	History            []HistoryItem               `json:"history"`
	ActiveDesign       *DesignOutput               `json:"activeDesign"`
	IsComponentMode    bool                        `json:"isComponentMode"`
	ConvertedCodeCache map[ConversionTarget]string `json:"convertedCodeCache"`
	CredentialPresent  bool                        `json:"credentialPresent"`
	SettingsOpen       bool                        `json:"settingsOpen"`
	PanelOpen          bool                        `json:"panelOpen"`
	Loading            bool                        `json:"loading"`
	Converting         bool                        `json:"converting"`
	HasConversation    bool                        `json:"hasConversation"`
}

// ProjectSummary is a lightweight listing entry.
type ProjectSummary struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Versions     int    `json:"versions"`
	LastModified int64  `json:"lastModified"`
	Active       bool   `json:"active"`
}

// Client is a connected studio client.
type Client struct {
	UUID uuid.UUID `json:"uuid" zap:"uuid"`
}

const (
	// NotificationStateChanged carries a StudioView after every transition.
	NotificationStateChanged = "studio/stateChanged"
	// NotificationToast carries a ToastEvent.
	NotificationToast = "studio/toast"
)

// PromptParams carries a user prompt.
type PromptParams struct {
	Prompt string `json:"prompt"`
}

// ProjectParams names a project.
type ProjectParams struct {
	ID string `json:"id"`
}

// ExampleParams selects a built-in example by position.
type ExampleParams struct {
	Index int `json:"index"`
}

// ConvertParams selects the conversion target.
type ConvertParams struct {
	Target ConversionTarget `json:"target"`
}

// VersionParams names a history item of the active project.
type VersionParams struct {
	ID string `json:"id"`
}

// DiffParams names two history items of the active project.
type DiffParams struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// TitleParams carries a new project title.
type TitleParams struct {
	Title string `json:"title"`
}

// ToggleParams switches a flag on or off.
type ToggleParams struct {
	Enabled bool `json:"enabled"`
}

// CredentialParams carries the model API key. An empty key clears it.
type CredentialParams struct {
	APIKey string `json:"apiKey"`
}

// ToastParams names a toast.
type ToastParams struct {
	ID string `json:"id"`
}

// EnhanceResult is the reply to an enhance request.
type EnhanceResult struct {
	Prompt string `json:"prompt"`
}

// ExportResult is the reply to an export request. Path is set when the document was written to disk.
type ExportResult struct {
	HTML string `json:"html,omitempty"`
	Path string `json:"path,omitempty"`
}
