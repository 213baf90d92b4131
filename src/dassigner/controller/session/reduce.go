package session

import (
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/dassigner/studio/src/dassigner/entity"
)

const _conversionFailedTemplate = "/*\n  Code conversion to %s failed.\n  Error: %s\n  Please try again.\n*/"

// ConversionPlaceholder is the code cached for a target whose conversion failed.
func ConversionPlaceholder(target entity.ConversionTarget, reason string) string {
	return fmt.Sprintf(_conversionFailedTemplate, target, reason)
}

// Reduce applies e to s and returns the resulting state. s is not modified.
func Reduce(s State, e Event) State {
	switch ev := e.(type) {
	case CredentialSet:
		s.CredentialPresent = ev.Present
	case SettingsSet:
		s.SettingsOpen = ev.Open
	case PanelSet:
		s.PanelOpen = ev.Open
	case GenerationStarted:
		s.Loading = true
		s.PanelOpen = false
	case GenerationSucceeded:
		s = commit(s, ev.Prompt, ev.Design, ev.At)
		s.Loading = false
	case GenerationFailed:
		s.Loading = false
	case ConversationOpened:
		s.Conversation = ev.Conversation
	case VersionRestored:
		item, ok := entity.FindHistoryItem(s.History, ev.HistoryID)
		if !ok {
			return s
		}
		s = setDesign(s, item.DesignOutput)
		s.PanelOpen = false
	case ProjectCreated:
		s = reset(s, ev.ID)
	case ProjectLoaded:
		s = load(s, ev.Project)
	case ExampleLoaded:
		s = reset(s, ev.ID)
		s = commit(s, ev.Example.Prompt, entity.DesignOutput{HTMLCode: ev.Example.HTMLCode}, ev.At)
	case ConversionStarted:
		s.Converting = true
	case ConversionSucceeded:
		s.ConvertedCode = withCode(s.ConvertedCode, ev.Target, ev.Code)
		s.Converting = false
	case ConversionFailed:
		s.ConvertedCode = withCode(s.ConvertedCode, ev.Target, ConversionPlaceholder(ev.Target, ev.Reason))
		s.Converting = false
	case ConversionDiscarded:
		s.Converting = false
	case ComponentModeSet:
		s.ComponentMode = ev.Enabled
	case TitleSet:
		s.Title = ev.Title
	case Touched:
		s.LastModified = ev.At
	default:
		panic(fmt.Sprintf("session: unhandled event %T", e))
	}
	return s
}

// commit appends a history item and makes its design active.
func commit(s State, prompt string, design entity.DesignOutput, at time.Time) State {
	item := entity.HistoryItem{
		ID:           entity.NextHistoryID(s.History, at),
		Prompt:       prompt,
		DesignOutput: design,
	}
	if len(s.History) == 0 {
		s.Title = entity.DeriveTitle(prompt)
	}
	s.History = append(slices.Clip(s.History), item)
	return setDesign(s, design)
}

func setDesign(s State, design entity.DesignOutput) State {
	s.ActiveDesign = &design
	s.ConvertedCode = nil
	return s
}

func reset(s State, id string) State {
	next := New(id)
	next.CredentialPresent = s.CredentialPresent
	next.SettingsOpen = s.SettingsOpen
	return next
}

func load(s State, p *entity.Project) State {
	next := reset(s, p.ID)
	next.Title = p.Title
	next.History = slices.Clone(p.History)
	next.ComponentMode = p.IsComponentMode
	next.ConvertedCode = maps.Clone(p.ConvertedCodeCache)
	next.LastModified = p.LastModified
	if p.ActiveDesign != nil {
		design := *p.ActiveDesign
		next.ActiveDesign = &design
	}
	return next
}

func withCode(cache map[entity.ConversionTarget]string, target entity.ConversionTarget, code string) map[entity.ConversionTarget]string {
	next := maps.Clone(cache)
	if next == nil {
		next = map[entity.ConversionTarget]string{}
	}
	next[target] = code
	return next
}
