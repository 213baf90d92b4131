// Package entity contains the domain types for the studio daemon.
package entity

import (
	"slices"
	"strconv"
	"time"
	"unicode/utf8"
)

const (
	// DefaultTitle is the title of a project that has not produced a design yet.
	DefaultTitle = "New AI Design Session"
	// MigratedTitle is used for a legacy session that carried no title.
	MigratedTitle = "Migrated Session"

	_titleLength   = 40
	_titleEllipsis = "..."
)

// ConversionTarget names a framework the active design can be converted into.
type ConversionTarget string

const (
	// TargetReact converts to a React functional component.
	TargetReact ConversionTarget = "React"
	// TargetVue converts to a Vue single file component.
	TargetVue ConversionTarget = "Vue"
)

// ConversionTargets lists the supported targets in display order.
var ConversionTargets = []ConversionTarget{TargetReact, TargetVue}

// Valid reports whether the target is supported.
func (t ConversionTarget) Valid() bool {
	return slices.Contains(ConversionTargets, t)
}

// DesignOutput is an immutable generated markup payload.
type DesignOutput struct {
	HTMLCode string `json:"htmlCode" zap:"-"`
}

// HistoryItem is one committed prompt and its resulting design.
type HistoryItem struct {
	ID           string       `json:"id" zap:"id"`
	Prompt       string       `json:"prompt" zap:"prompt"`
	DesignOutput DesignOutput `json:"designOutput" zap:"-"`
}

// Project is a named, independently persisted design session.
type Project struct {
	ID                 string                      `json:"id" zap:"id"`
	Title              string                      `json:"title" zap:"title"`
	History            []HistoryItem               `json:"history" zap:"-"`
	ActiveDesign       *DesignOutput               `json:"activeDesign" zap:"-"`
	IsComponentMode    bool                        `json:"isComponentMode" zap:"isComponentMode"`
	ConvertedCodeCache map[ConversionTarget]string `json:"convertedCodeCache" zap:"-"`
	LastModified       time.Time                   `json:"lastModified" zap:"lastModified"`
}

// Example is a built-in prompt with pre-generated markup.
type Example struct {
	Prompt   string `json:"prompt" yaml:"prompt"`
	HTMLCode string `json:"htmlCode" yaml:"htmlCode"`
}

// DeriveTitle returns the first 40 characters of the prompt, with an ellipsis if anything was cut.
func DeriveTitle(prompt string) string {
	if utf8.RuneCountInString(prompt) <= _titleLength {
		return prompt
	}
	runes := []rune(prompt)
	return string(runes[:_titleLength]) + _titleEllipsis
}

// NextHistoryID derives a millisecond timestamp id that is strictly later than the last item in history.
func NextHistoryID(history []HistoryItem, at time.Time) string {
	next := at.UnixMilli()
	if len(history) > 0 {
		if last, err := strconv.ParseInt(history[len(history)-1].ID, 10, 64); err == nil && last >= next {
			next = last + 1
		}
	}
	return strconv.FormatInt(next, 10)
}

// FindHistoryItem returns the item with the given id.
func FindHistoryItem(history []HistoryItem, id string) (HistoryItem, bool) {
	for _, item := range history {
		if item.ID == id {
			return item, true
		}
	}
	return HistoryItem{}, false
}

// MostRecent returns the project with the latest LastModified, or nil when there are none.
func MostRecent(projects []*Project) *Project {
	var recent *Project
	for _, p := range projects {
		if recent == nil || p.LastModified.After(recent.LastModified) {
			recent = p
		}
	}
	return recent
}

// SortByRecency orders projects by LastModified, newest first.
func SortByRecency(projects []*Project) {
	slices.SortStableFunc(projects, func(a, b *Project) int {
		return b.LastModified.Compare(a.LastModified)
	})
}
