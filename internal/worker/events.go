// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package worker

import (
	"strings"
	"unicode/utf8"

	"github.com/sankhodeep/PDF2MD/pkg/types"
)

// EventType distinguishes the notifications a run emits.
type EventType string

const (
	// EventPage is emitted after each page is processed, carrying the
	// page's result and a truncated preview of its text.
	EventPage EventType = "page"

	// EventDone is the final event of a run, carrying the terminal phase
	// and the full ordered result list.
	EventDone EventType = "done"
)

// Event is an advisory snapshot pushed to the consumer. Events carry value
// copies only; the consumer never shares state with the running worker.
type Event struct {
	Type    EventType
	Page    int // absolute 1-based page index
	Total   int // total pages requested
	Preview string
	Result  *types.PageResult

	// Terminal fields, set on EventDone.
	Phase   types.RunPhase
	Results []types.PageResult
	Err     error
}

const defaultPreviewWidth = 80

// preview collapses the page text to a single line and truncates it.
func preview(s string, width int) string {
	if width <= 0 {
		width = defaultPreviewWidth
	}
	s = strings.Join(strings.Fields(s), " ")
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	return string(runes[:width-1]) + "…"
}
