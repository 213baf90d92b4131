package session

import (
	"time"

	"github.com/dassigner/studio/src/dassigner/entity"
	"github.com/dassigner/studio/src/dassigner/gateway/generative"
)

// Event is a transition of the session. The set of events is closed.
type Event interface {
	event()
}

type (
	// CredentialSet records whether a model API key is configured.
	CredentialSet struct{ Present bool }
	// SettingsSet opens or closes the settings surface.
	SettingsSet struct{ Open bool }
	// PanelSet opens or closes the side panel.
	PanelSet struct{ Open bool }

	// GenerationStarted marks a model call as outstanding and closes the side panel.
	GenerationStarted struct{}
	// GenerationSucceeded commits a prompt and its design to history.
	GenerationSucceeded struct {
		Prompt string
		Design entity.DesignOutput
		At     time.Time
	}
	// GenerationFailed clears the outstanding call.
	GenerationFailed struct{}
	// ConversationOpened stores the model conversation for the project.
	ConversationOpened struct{ Conversation generative.Conversation }

	// VersionRestored makes a history item's design active. Unknown ids are ignored.
	VersionRestored struct{ HistoryID string }

	// ProjectCreated starts an empty project.
	ProjectCreated struct{ ID string }
	// ProjectLoaded replaces the session with a stored project.
	ProjectLoaded struct{ Project *entity.Project }
	// ExampleLoaded starts a project whose first version is a built-in example.
	ExampleLoaded struct {
		Example entity.Example
		ID      string
		At      time.Time
	}

	// ConversionStarted marks a conversion as outstanding.
	ConversionStarted struct{ Target entity.ConversionTarget }
	// ConversionSucceeded caches converted code for a target.
	ConversionSucceeded struct {
		Target entity.ConversionTarget
		Code   string
	}
	// ConversionFailed caches an error placeholder for a target.
	ConversionFailed struct {
		Target entity.ConversionTarget
		Reason string
	}

	// ConversionDiscarded clears the outstanding conversion without caching anything.
	ConversionDiscarded struct{}

	// ComponentModeSet toggles component-edit mode.
	ComponentModeSet struct{ Enabled bool }
	// TitleSet renames the project.
	TitleSet struct{ Title string }
	// Touched stamps the project as modified.
	Touched struct{ At time.Time }
)

func (CredentialSet) event()       {}
func (SettingsSet) event()         {}
func (PanelSet) event()            {}
func (GenerationStarted) event()   {}
func (GenerationSucceeded) event() {}
func (GenerationFailed) event()    {}
func (ConversationOpened) event()  {}
func (VersionRestored) event()     {}
func (ProjectCreated) event()      {}
func (ProjectLoaded) event()       {}
func (ExampleLoaded) event()       {}
func (ConversionStarted) event()   {}
func (ConversionSucceeded) event() {}
func (ConversionFailed) event()    {}
func (ConversionDiscarded) event() {}
func (ComponentModeSet) event()    {}
func (TitleSet) event()            {}
func (Touched) event()             {}
