package mapper

import (
	"fmt"
	"strings"
	"time"

	"github.com/dassigner/studio/src/dassigner/entity"
	"github.com/dassigner/studio/src/dassigner/model"
)

// ProjectToModel maps a Project entity to its model equivalent.
func ProjectToModel(p *entity.Project) model.Project {
	m := model.Project{
		ID:                 p.ID,
		Title:              p.Title,
		History:            make([]model.HistoryItem, 0, len(p.History)),
		IsComponentMode:    p.IsComponentMode,
		LastModified:       p.LastModified.UnixMilli(),
		ConvertedCodeCache: make(map[string]string, len(p.ConvertedCodeCache)),
	}
	for _, item := range p.History {
		m.History = append(m.History, historyItemToModel(item))
	}
	if p.ActiveDesign != nil {
		m.ActiveDesign = &model.DesignOutput{HTMLCode: p.ActiveDesign.HTMLCode}
	}
	for target, code := range p.ConvertedCodeCache {
		m.ConvertedCodeCache[string(target)] = code
	}
	return m
}

// ModelToProject maps a model Project to its entity equivalent, repairing recoverable gaps.
// A record without an id cannot be repaired and is rejected.
func ModelToProject(m model.Project) (*entity.Project, error) {
	if strings.TrimSpace(m.ID) == "" {
		return nil, fmt.Errorf("project record has no id")
	}

	history, err := modelToHistory(m.History)
	if err != nil {
		return nil, fmt.Errorf("project %q: %w", m.ID, err)
	}

	p := &entity.Project{
		ID:                 m.ID,
		Title:              m.Title,
		History:            history,
		IsComponentMode:    m.IsComponentMode,
		ConvertedCodeCache: modelToCache(m.ConvertedCodeCache),
		LastModified:       time.UnixMilli(m.LastModified),
	}
	if p.Title == "" {
		p.Title = entity.DefaultTitle
	}
	if m.ActiveDesign != nil {
		p.ActiveDesign = &entity.DesignOutput{HTMLCode: m.ActiveDesign.HTMLCode}
	} else if len(history) > 0 {
		last := history[len(history)-1].DesignOutput
		p.ActiveDesign = &last
		// The cache belongs to a design we no longer know.
		p.ConvertedCodeCache = map[entity.ConversionTarget]string{}
	}
	return p, nil
}

// LegacySessionToProject maps the pre-project session record to a new Project with the given id.
func LegacySessionToProject(s model.LegacySession, id string, at time.Time) (*entity.Project, error) {
	history, err := modelToHistory(s.History)
	if err != nil {
		return nil, fmt.Errorf("legacy session: %w", err)
	}

	title := s.ChatTitle
	if title == "" {
		title = entity.MigratedTitle
	}

	p := &entity.Project{
		ID:                 id,
		Title:              title,
		History:            history,
		IsComponentMode:    s.IsComponentMode,
		ConvertedCodeCache: modelToCache(s.ConvertedCodeCache),
		LastModified:       at,
	}
	if s.ActiveDesign != nil {
		p.ActiveDesign = &entity.DesignOutput{HTMLCode: s.ActiveDesign.HTMLCode}
	} else if len(history) > 0 {
		last := history[len(history)-1].DesignOutput
		p.ActiveDesign = &last
	}
	return p, nil
}

// ProjectToSummary maps a Project entity to its listing entry.
func ProjectToSummary(p *entity.Project, activeID string) entity.ProjectSummary {
	return entity.ProjectSummary{
		ID:           p.ID,
		Title:        p.Title,
		Versions:     len(p.History),
		LastModified: p.LastModified.UnixMilli(),
		Active:       p.ID == activeID,
	}
}

func historyItemToModel(item entity.HistoryItem) model.HistoryItem {
	return model.HistoryItem{
		ID:           item.ID,
		Prompt:       item.Prompt,
		DesignOutput: model.DesignOutput{HTMLCode: item.DesignOutput.HTMLCode},
	}
}

func modelToHistory(items []model.HistoryItem) ([]entity.HistoryItem, error) {
	history := make([]entity.HistoryItem, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for i, item := range items {
		if item.ID == "" {
			return nil, fmt.Errorf("history item %d has no id", i)
		}
		if _, ok := seen[item.ID]; ok {
			return nil, fmt.Errorf("duplicate history item id %q", item.ID)
		}
		seen[item.ID] = struct{}{}
		history = append(history, entity.HistoryItem{
			ID:           item.ID,
			Prompt:       item.Prompt,
			DesignOutput: entity.DesignOutput{HTMLCode: item.DesignOutput.HTMLCode},
		})
	}
	return history, nil
}

// modelToCache keeps only the entries for supported targets.
func modelToCache(cache map[string]string) map[entity.ConversionTarget]string {
	result := make(map[entity.ConversionTarget]string, len(cache))
	for target, code := range cache {
		if t := entity.ConversionTarget(target); t.Valid() {
			result[t] = code
		}
	}
	return result
}
