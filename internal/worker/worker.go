// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package worker runs the page-by-page conversion loop off the caller's
// goroutine and streams progress events back over a channel.
//
// A run moves Idle → Running → {Completed, Cancelled, Failed}. Pages are
// processed strictly in ascending order; a page-level failure records a
// failed result and the loop continues. Cancellation is cooperative: the
// flag and the run context are checked at page boundaries only, so an
// in-flight service call is never interrupted.
package worker

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/sankhodeep/PDF2MD/internal/ai"
	"github.com/sankhodeep/PDF2MD/internal/extract"
	"github.com/sankhodeep/PDF2MD/pkg/types"
)

// eventBuffer sizes the event channel so a slow consumer does not stall
// a page conversion that has already finished.
const eventBuffer = 16

// Worker converts one page range at a time. At most one run is active per
// Worker; Start returns ErrAlreadyRunning otherwise.
type Worker struct {
	extractor    extract.Extractor
	converter    ai.Converter
	previewWidth int

	mu        sync.Mutex
	running   bool
	cancelled atomic.Bool
}

// Option configures a Worker.
type Option func(*Worker)

// WithPreviewWidth sets the maximum rune width of per-page previews.
func WithPreviewWidth(width int) Option {
	return func(w *Worker) { w.previewWidth = width }
}

// New creates a Worker using the given extractor and converter.
func New(extractor extract.Extractor, converter ai.Converter, opts ...Option) *Worker {
	w := &Worker{
		extractor:    extractor,
		converter:    converter,
		previewWidth: defaultPreviewWidth,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Running reports whether a run is currently active.
func (w *Worker) Running() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

// Start begins a run for the given request and returns its event stream.
// The channel is closed after the terminal EventDone. If a run is already
// active, Start returns ErrAlreadyRunning and the active run is untouched.
func (w *Worker) Start(ctx context.Context, req types.ConversionRequest) (<-chan Event, error) {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil, types.ErrAlreadyRunning
	}
	w.running = true
	w.cancelled.Store(false)
	w.mu.Unlock()

	events := make(chan Event, eventBuffer)
	go w.run(ctx, req, events)
	return events, nil
}

// Cancel requests cooperative cancellation. It takes effect before the
// next page begins; the page in flight still finishes.
func (w *Worker) Cancel() {
	w.cancelled.Store(true)
}

func (w *Worker) run(ctx context.Context, req types.ConversionRequest, events chan<- Event) {
	defer func() {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		close(events)
	}()

	state := types.RunState{
		Phase:      types.PhaseRunning,
		TotalPages: req.PageCount(),
	}

	fail := func(err error) {
		state.Phase = types.PhaseFailed
		state.Err = err
		events <- Event{Type: EventDone, Phase: types.PhaseFailed, Results: state.Results, Err: err}
	}

	total, err := w.extractor.PageCount(req.InputPath)
	if err != nil {
		fail(err)
		return
	}
	if err := req.Validate(total); err != nil {
		fail(err)
		return
	}

	// Page work gets a context shielded from cancellation: cancelling the
	// run context, like Cancel, takes effect at the next page boundary and
	// never interrupts an in-flight extraction or service call.
	pageCtx := context.WithoutCancel(ctx)

	for page := req.StartPage; page <= req.EndPage; page++ {
		if w.cancelled.Load() || ctx.Err() != nil {
			state.Phase = types.PhaseCancelled
			break
		}

		state.CurrentPage = page
		result := w.convertPage(pageCtx, req.InputPath, page)
		state.Results = append(state.Results, result)

		events <- Event{
			Type:    EventPage,
			Page:    page,
			Total:   state.TotalPages,
			Preview: preview(result.Markdown, w.previewWidth),
			Result:  &result,
		}
	}

	if state.Phase != types.PhaseCancelled {
		state.Phase = types.PhaseCompleted
	}

	// Completed and cancelled runs both flush the successful pages; a
	// write failure turns the run into a failed one with no output file.
	// A run cancelled before any page was processed has nothing to flush
	// and leaves no file behind.
	if len(state.Results) > 0 {
		if err := writeOutput(req, state.Results); err != nil {
			fail(err)
			return
		}
	}

	events <- Event{Type: EventDone, Phase: state.Phase, Results: state.Results}
}

// convertPage extracts then converts one page. Any error here is
// page-level: it becomes a failed PageResult, never a run abort.
func (w *Worker) convertPage(ctx context.Context, path string, page int) types.PageResult {
	content, err := w.extractor.Extract(ctx, path, page)
	if err != nil {
		return types.FailedPage(page, err)
	}

	markdown, err := w.converter.Convert(ctx, content)
	if err != nil {
		return types.FailedPage(page, err)
	}

	return types.SuccessPage(page, markdown)
}
