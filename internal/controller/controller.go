// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package controller wires user actions to the conversion worker and the
// stores, and renders the worker's event stream as live terminal output.
package controller

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/sankhodeep/PDF2MD/internal/history"
	"github.com/sankhodeep/PDF2MD/internal/worker"
	"github.com/sankhodeep/PDF2MD/pkg/types"
)

// Controller drives one conversion run at a time and reports progress to
// an io.Writer.
type Controller struct {
	worker  *worker.Worker
	history *history.Store // nil disables run recording
	out     io.Writer

	// ShowBar renders an interactive progress bar alongside the per-page
	// status lines. Off by default so plain writers get clean output.
	ShowBar bool
}

// New creates a controller. history may be nil when run recording is
// disabled.
func New(w *worker.Worker, h *history.Store, out io.Writer) *Controller {
	return &Controller{worker: w, history: h, out: out}
}

// Run executes one conversion request to its terminal state, rendering
// progress as it goes, and returns the terminal phase. Run-level failures
// (AlreadyRunning, invalid range, unwritable output) come back as errors.
// Every run that actually started is recorded in history, failed runs
// included.
func (c *Controller) Run(ctx context.Context, req types.ConversionRequest) (types.RunPhase, error) {
	started := time.Now()

	events, err := c.worker.Start(ctx, req)
	if err != nil {
		return types.PhaseIdle, err
	}

	var bar *progressbar.ProgressBar
	if c.ShowBar {
		bar = progressbar.NewOptions(req.PageCount(),
			progressbar.OptionSetDescription("converting"),
			progressbar.OptionSetWriter(c.out),
			progressbar.OptionShowCount(),
			progressbar.OptionThrottle(65*time.Millisecond),
			progressbar.OptionOnCompletion(func() { fmt.Fprintln(c.out) }),
		)
	}

	var done worker.Event
	for ev := range events {
		switch ev.Type {
		case worker.EventPage:
			c.renderPage(ev)
			if bar != nil {
				bar.Add(1)
			}
		case worker.EventDone:
			done = ev
		}
	}

	if done.Phase == types.PhaseFailed {
		ok, failed := tally(done.Results)
		c.record(ctx, req, done, started, ok, failed)
		return done.Phase, done.Err
	}

	ok, failed := tally(done.Results)
	fmt.Fprintf(c.out, "\nRun %s: %d converted, %d failed (pages %d-%d)\n",
		done.Phase, ok, failed, req.StartPage, req.EndPage)
	if failed > 0 {
		for _, r := range done.Results {
			if r.Status == types.PageFailed {
				fmt.Fprintf(c.out, "  page %d: %s\n", r.Page, r.Reason)
			}
		}
	}

	c.record(ctx, req, done, started, ok, failed)
	return done.Phase, nil
}

// Cancel requests cooperative cancellation of the active run.
func (c *Controller) Cancel() {
	c.worker.Cancel()
}

func (c *Controller) renderPage(ev worker.Event) {
	if ev.Result.Status == types.PageFailed {
		fmt.Fprintf(c.out, "failed    page %d: %s\n", ev.Page, ev.Result.Reason)
		return
	}
	fmt.Fprintf(c.out, "converted page %d: %s\n", ev.Page, ev.Preview)
}

// record stores the finished run in the history database. Recording is
// best-effort: a storage failure warns but does not fail the run.
func (c *Controller) record(ctx context.Context, req types.ConversionRequest, done worker.Event, started time.Time, ok, failed int) {
	if c.history == nil {
		return
	}

	rec := types.RunRecord{
		StartedAt:   started,
		FinishedAt:  time.Now(),
		InputPath:   req.InputPath,
		OutputPath:  req.OutputPath,
		StartPage:   req.StartPage,
		EndPage:     req.EndPage,
		Status:      done.Phase,
		PagesOK:     ok,
		PagesFailed: failed,
	}
	if _, err := c.history.Record(ctx, rec, done.Results); err != nil {
		fmt.Fprintf(c.out, "warning: could not record run history: %v\n", err)
	}
}

func tally(results []types.PageResult) (ok, failed int) {
	for _, r := range results {
		if r.Status == types.PageSuccess {
			ok++
		} else {
			failed++
		}
	}
	return ok, failed
}
