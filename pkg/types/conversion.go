// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the domain types shared across the conversion
// pipeline: requests, per-page results, run state, saved configurations,
// and the error taxonomy.
package types

import (
	"fmt"
	"time"
)

// ConversionRequest describes one conversion run: which document, which
// 1-based inclusive page range, and where the Markdown output goes.
// A request is immutable once the worker starts.
type ConversionRequest struct {
	InputPath  string `json:"input_path" yaml:"input_path"`
	OutputPath string `json:"output_path" yaml:"output_path"`
	StartPage  int    `json:"start_page" yaml:"start_page"`
	EndPage    int    `json:"end_page" yaml:"end_page"`

	// PageHeadings inserts a "--- Page N ---" heading before each page's
	// text in the output file.
	PageHeadings bool `json:"page_headings" yaml:"page_headings"`
}

// PageCount returns the number of pages the request covers.
func (r ConversionRequest) PageCount() int {
	return r.EndPage - r.StartPage + 1
}

// Validate checks the request against the document's total page count.
func (r ConversionRequest) Validate(totalPages int) error {
	if r.InputPath == "" {
		return &ConfigError{Reason: "input PDF path is empty"}
	}
	if r.OutputPath == "" {
		return &ConfigError{Reason: "output path is empty"}
	}
	if r.StartPage < 1 {
		return &PageRangeError{Page: r.StartPage, Total: totalPages}
	}
	if r.EndPage < r.StartPage {
		return fmt.Errorf("start page %d is after end page %d", r.StartPage, r.EndPage)
	}
	if r.EndPage > totalPages {
		return &PageRangeError{Page: r.EndPage, Total: totalPages}
	}
	return nil
}

// PageContent is the rendered form of one PDF page, ready to send to the
// AI service.
type PageContent struct {
	Page     int
	MIMEType string
	Data     []byte
}

// PageStatus is the outcome of converting one page.
type PageStatus string

const (
	PageSuccess PageStatus = "success"
	PageFailed  PageStatus = "failed"
)

// PageResult is the outcome of converting a single page. One result is
// produced per requested page, in ascending page order.
type PageResult struct {
	Page     int        `json:"page" yaml:"page"`
	Markdown string     `json:"-" yaml:"-"`
	Status   PageStatus `json:"status" yaml:"status"`
	Reason   string     `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// SuccessPage builds a successful PageResult.
func SuccessPage(page int, markdown string) PageResult {
	return PageResult{Page: page, Markdown: markdown, Status: PageSuccess}
}

// FailedPage builds a failed PageResult carrying the failure reason.
func FailedPage(page int, err error) PageResult {
	return PageResult{Page: page, Status: PageFailed, Reason: err.Error()}
}

// RunPhase is the lifecycle state of a conversion run.
type RunPhase string

const (
	PhaseIdle      RunPhase = "idle"
	PhaseRunning   RunPhase = "running"
	PhaseCompleted RunPhase = "completed"
	PhaseCancelled RunPhase = "cancelled"
	PhaseFailed    RunPhase = "failed"
)

// Terminal reports whether the phase is a terminal state.
func (p RunPhase) Terminal() bool {
	return p == PhaseCompleted || p == PhaseCancelled || p == PhaseFailed
}

// RunState is the worker's view of a run in progress. The worker owns it
// exclusively; consumers only ever see value copies delivered through the
// event stream.
type RunState struct {
	Phase       RunPhase
	CurrentPage int
	TotalPages  int
	Results     []PageResult
	Err         error
}

// NamedConfig is a saved input/output path pair. The collection is keyed
// by name; the YAML field names match the original config file layout.
type NamedConfig struct {
	InputPath  string `json:"pdf_path" yaml:"pdf_path"`
	OutputPath string `json:"md_path" yaml:"md_path"`
}

// RunRecord is one finished conversion run as stored in the history
// database.
type RunRecord struct {
	ID          int64     `json:"id" yaml:"id"`
	StartedAt   time.Time `json:"started_at" yaml:"started_at"`
	FinishedAt  time.Time `json:"finished_at" yaml:"finished_at"`
	InputPath   string    `json:"input_path" yaml:"input_path"`
	OutputPath  string    `json:"output_path" yaml:"output_path"`
	StartPage   int       `json:"start_page" yaml:"start_page"`
	EndPage     int       `json:"end_page" yaml:"end_page"`
	Status      RunPhase  `json:"status" yaml:"status"`
	PagesOK     int       `json:"pages_ok" yaml:"pages_ok"`
	PagesFailed int       `json:"pages_failed" yaml:"pages_failed"`
}
