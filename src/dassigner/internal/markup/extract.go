// Package markup extracts, cleans and compares generated HTML.
package markup

import (
	"regexp"
	"strings"

	"github.com/dassigner/studio/src/dassigner/internal/errors"
)

const (
	// StartMarker opens the markup block the model is instructed to emit.
	StartMarker = "<DAssigner-Start>"
	// EndMarker closes the markup block.
	EndMarker = "<DAssigner-End>"
)

var (
	_fencePattern = regexp.MustCompile("(?s)```(?:html)?\\s*(.*?)\\s*```")

	// EmptyResponseError reports a model reply with no text at all.
	EmptyResponseError = errors.New("empty response")
	// InvalidMarkupError reports a model reply that did not contain usable HTML.
	InvalidMarkupError = errors.New("the response did not contain valid HTML")
)

// Extract pulls the HTML out of a model reply and sanitizes it.
// Candidates are tried in order: the marker block, the first fenced code block, then the widest span
// between the first '<' and the last '>'.
func Extract(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", EmptyResponseError
	}

	candidate := strings.TrimSpace(raw)
	if found, ok := betweenMarkers(raw); ok {
		candidate = found
	} else if found, ok := fenced(raw); ok {
		candidate = found
	} else if found, ok := tagSpan(raw); ok {
		candidate = found
	}

	if !valid(candidate) {
		return "", InvalidMarkupError
	}
	cleaned, err := Sanitize(candidate)
	if err != nil {
		return "", err
	}
	if !valid(cleaned) {
		return "", InvalidMarkupError
	}
	return cleaned, nil
}

func betweenMarkers(raw string) (string, bool) {
	start := strings.Index(raw, StartMarker)
	end := strings.Index(raw, EndMarker)
	if start == -1 || end == -1 || end <= start {
		return "", false
	}
	found := strings.TrimSpace(raw[start+len(StartMarker) : end])
	return found, found != ""
}

func fenced(raw string) (string, bool) {
	match := _fencePattern.FindStringSubmatch(raw)
	if match == nil {
		return "", false
	}
	found := strings.TrimSpace(match[1])
	return found, found != ""
}

func tagSpan(raw string) (string, bool) {
	first := strings.Index(raw, "<")
	last := strings.LastIndex(raw, ">")
	if first == -1 || last == -1 || last <= first {
		return "", false
	}
	found := strings.TrimSpace(raw[first : last+1])
	return found, found != ""
}

func valid(markup string) bool {
	trimmed := strings.TrimSpace(markup)
	return strings.HasPrefix(trimmed, "<") && strings.Contains(trimmed, ">")
}
