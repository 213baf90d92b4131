// Package session holds the state machine for the active design project.
//
// State values are transitioned only by Reduce. Every Event is a value of one of the
// types declared in events.go, and Reduce returns a new State without touching its input.
package session

import (
	"maps"
	"slices"
	"time"

	"github.com/dassigner/studio/src/dassigner/entity"
	"github.com/dassigner/studio/src/dassigner/gateway/generative"
)

// Phase is the coarse state of the session, derived from its flags.
type Phase string

const (
	// PhaseIdle has no design and nothing in flight.
	PhaseIdle Phase = "idle"
	// PhaseGenerating has a model call outstanding.
	PhaseGenerating Phase = "generating"
	// PhaseReady has an active design and nothing in flight.
	PhaseReady Phase = "ready"
	// PhaseConverting has a conversion of the active design outstanding.
	PhaseConverting Phase = "converting"
)

// State is the authoritative in-memory state of the studio.
type State struct {
	ProjectID     string
	Title         string
	History       []entity.HistoryItem
	ActiveDesign  *entity.DesignOutput
	ComponentMode bool
	ConvertedCode map[entity.ConversionTarget]string
	LastModified  time.Time

	// Conversation is reset on every project change and never persisted.
	Conversation generative.Conversation

	CredentialPresent bool
	SettingsOpen      bool
	PanelOpen         bool
	Loading           bool
	Converting        bool
}

// New returns the state of a brand-new empty project.
func New(projectID string) State {
	return State{
		ProjectID: projectID,
		Title:     entity.DefaultTitle,
	}
}

// Phase derives the coarse state from the flags.
func (s State) Phase() Phase {
	switch {
	case s.Loading:
		return PhaseGenerating
	case s.Converting:
		return PhaseConverting
	case s.ActiveDesign != nil:
		return PhaseReady
	default:
		return PhaseIdle
	}
}

// Persistable reports whether the project carries anything worth saving.
// A fresh project that has neither history nor a custom title is skipped.
func (s State) Persistable() bool {
	if s.ProjectID == "" {
		return false
	}
	return len(s.History) > 0 || s.Title != entity.DefaultTitle
}

// Project returns the persisted projection of the state.
func (s State) Project() *entity.Project {
	p := &entity.Project{
		ID:                 s.ProjectID,
		Title:              s.Title,
		History:            slices.Clone(s.History),
		IsComponentMode:    s.ComponentMode,
		ConvertedCodeCache: maps.Clone(s.ConvertedCode),
		LastModified:       s.LastModified,
	}
	if p.ConvertedCodeCache == nil {
		p.ConvertedCodeCache = map[entity.ConversionTarget]string{}
	}
	if s.ActiveDesign != nil {
		design := *s.ActiveDesign
		p.ActiveDesign = &design
	}
	return p
}

// View returns the state as pushed to clients.
func (s State) View() entity.StudioView {
	p := s.Project()
	return entity.StudioView{
		ProjectID:          p.ID,
		Title:              p.Title,
		History:            p.History,
		ActiveDesign:       p.ActiveDesign,
		IsComponentMode:    p.IsComponentMode,
		ConvertedCodeCache: p.ConvertedCodeCache,
		CredentialPresent:  s.CredentialPresent,
		SettingsOpen:       s.SettingsOpen,
		PanelOpen:          s.PanelOpen,
		Loading:            s.Loading,
		Converting:         s.Converting,
		HasConversation:    s.Conversation != nil,
	}
}

// PersistedEqual reports whether two states have the same persisted fields, ignoring LastModified.
func PersistedEqual(a, b State) bool {
	if a.ProjectID != b.ProjectID || a.Title != b.Title || a.ComponentMode != b.ComponentMode {
		return false
	}
	if !slices.Equal(a.History, b.History) || !maps.Equal(a.ConvertedCode, b.ConvertedCode) {
		return false
	}
	if (a.ActiveDesign == nil) != (b.ActiveDesign == nil) {
		return false
	}
	return a.ActiveDesign == nil || *a.ActiveDesign == *b.ActiveDesign
}
