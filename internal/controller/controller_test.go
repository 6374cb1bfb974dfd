// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package controller

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sankhodeep/PDF2MD/internal/history"
	"github.com/sankhodeep/PDF2MD/internal/worker"
	"github.com/sankhodeep/PDF2MD/pkg/types"
)

type fakeExtractor struct {
	total int
}

func (f *fakeExtractor) PageCount(path string) (int, error) {
	return f.total, nil
}

func (f *fakeExtractor) Extract(ctx context.Context, path string, page int) (types.PageContent, error) {
	return types.PageContent{Page: page, MIMEType: "image/png", Data: []byte("img")}, nil
}

type fakeConverter struct {
	failPage map[int]error
}

func (f *fakeConverter) Convert(ctx context.Context, content types.PageContent) (string, error) {
	if err, ok := f.failPage[content.Page]; ok {
		return "", err
	}
	return fmt.Sprintf("page %d text", content.Page), nil
}

func testRequest(t *testing.T, start, end int) types.ConversionRequest {
	t.Helper()
	return types.ConversionRequest{
		InputPath:  "doc.pdf",
		OutputPath: filepath.Join(t.TempDir(), "out.md"),
		StartPage:  start,
		EndPage:    end,
	}
}

func TestRunRendersProgressAndSummary(t *testing.T) {
	w := worker.New(&fakeExtractor{total: 5}, &fakeConverter{})
	var out bytes.Buffer
	c := New(w, nil, &out)

	phase, err := c.Run(context.Background(), testRequest(t, 1, 3))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if phase != types.PhaseCompleted {
		t.Errorf("phase = %q, want completed", phase)
	}

	log := out.String()
	for page := 1; page <= 3; page++ {
		want := fmt.Sprintf("converted page %d:", page)
		if !strings.Contains(log, want) {
			t.Errorf("output missing %q:\n%s", want, log)
		}
	}
	if !strings.Contains(log, "Run completed: 3 converted, 0 failed (pages 1-3)") {
		t.Errorf("output missing summary:\n%s", log)
	}
}

func TestRunReportsPageFailures(t *testing.T) {
	conv := &fakeConverter{failPage: map[int]error{
		2: &types.ServiceError{Page: 2, Err: errors.New("timeout")},
	}}
	w := worker.New(&fakeExtractor{total: 3}, conv)
	var out bytes.Buffer
	c := New(w, nil, &out)

	phase, err := c.Run(context.Background(), testRequest(t, 1, 3))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if phase != types.PhaseCompleted {
		t.Errorf("phase = %q, want completed", phase)
	}

	log := out.String()
	if !strings.Contains(log, "2 converted, 1 failed") {
		t.Errorf("output missing failure tally:\n%s", log)
	}
	if !strings.Contains(log, "timeout") {
		t.Errorf("output missing failure reason:\n%s", log)
	}
}

func TestRunSurfacesRunLevelFailure(t *testing.T) {
	w := worker.New(&fakeExtractor{total: 2}, &fakeConverter{})
	var out bytes.Buffer
	c := New(w, nil, &out)

	req := testRequest(t, 1, 5) // beyond the 2-page document
	phase, err := c.Run(context.Background(), req)
	if err == nil {
		t.Fatal("expected error for out-of-range request")
	}
	if phase != types.PhaseFailed {
		t.Errorf("phase = %q, want failed", phase)
	}
	var rangeErr *types.PageRangeError
	if !errors.As(err, &rangeErr) {
		t.Errorf("expected PageRangeError, got %v", err)
	}
}

func TestRunRecordsFailedRuns(t *testing.T) {
	store, err := history.Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	w := worker.New(&fakeExtractor{total: 2}, &fakeConverter{})
	var out bytes.Buffer
	c := New(w, store, &out)

	if _, err := c.Run(context.Background(), testRequest(t, 1, 5)); err == nil {
		t.Fatal("expected error for out-of-range request")
	}

	records, err := store.List(context.Background(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 history record, got %d", len(records))
	}
	if records[0].Status != types.PhaseFailed {
		t.Errorf("record status = %q, want failed", records[0].Status)
	}
	if records[0].PagesOK != 0 || records[0].PagesFailed != 0 {
		t.Errorf("record tally = %d ok / %d failed, want 0/0", records[0].PagesOK, records[0].PagesFailed)
	}
}

func TestRunRecordsHistory(t *testing.T) {
	store, err := history.Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	w := worker.New(&fakeExtractor{total: 5}, &fakeConverter{})
	var out bytes.Buffer
	c := New(w, store, &out)

	if _, err := c.Run(context.Background(), testRequest(t, 2, 4)); err != nil {
		t.Fatalf("Run: %v", err)
	}

	records, err := store.List(context.Background(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 history record, got %d", len(records))
	}
	rec := records[0]
	if rec.PagesOK != 3 || rec.PagesFailed != 0 {
		t.Errorf("record tally = %d ok / %d failed, want 3/0", rec.PagesOK, rec.PagesFailed)
	}
	if rec.Status != types.PhaseCompleted {
		t.Errorf("record status = %q, want completed", rec.Status)
	}
}
