// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract renders single PDF pages into images for the AI
// conversion step. The document is opened read-only per call and released
// before the function returns.
package extract

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	rpdf "rsc.io/pdf"

	"github.com/sankhodeep/PDF2MD/pkg/types"
)

const defaultDPI = 200

// Extractor produces the rendered content of single PDF pages.
type Extractor interface {
	// PageCount returns the document's total page count.
	PageCount(path string) (int, error)

	// Extract renders one 1-based page to an image.
	Extract(ctx context.Context, path string, page int) (types.PageContent, error)
}

// Poppler renders pages by shelling out to pdftoppm. Page counting goes
// through rsc.io/pdf so an invalid document is rejected without spawning
// a process.
type Poppler struct {
	// DPI is the render resolution. Zero means the default (200).
	DPI int

	exec      executor
	pageCount func(path string) (int, error) // test seam
}

// NewPoppler creates a page extractor rendering at the given DPI.
func NewPoppler(dpi int) *Poppler {
	return &Poppler{
		DPI:       dpi,
		exec:      &osExecutor{},
		pageCount: pdfPageCount,
	}
}

// PageCount opens the document and returns its total page count. A
// missing, unreadable, or corrupt file yields a DocumentError.
func (p *Poppler) PageCount(path string) (int, error) {
	return p.pageCount(path)
}

// Extract renders the given page to PNG in a temporary directory, reads
// the image back, and removes the directory. A page beyond the document's
// page count yields a PageRangeError.
func (p *Poppler) Extract(ctx context.Context, path string, page int) (types.PageContent, error) {
	total, err := p.pageCount(path)
	if err != nil {
		return types.PageContent{}, err
	}
	if page < 1 || page > total {
		return types.PageContent{}, &types.PageRangeError{Page: page, Total: total}
	}

	dir, err := os.MkdirTemp("", "pdf2md-page-")
	if err != nil {
		return types.PageContent{}, fmt.Errorf("creating render directory: %w", err)
	}
	defer os.RemoveAll(dir)

	dpi := p.DPI
	if dpi <= 0 {
		dpi = defaultDPI
	}

	prefix := filepath.Join(dir, "page")
	args := []string{
		"-png",
		"-r", strconv.Itoa(dpi),
		"-f", strconv.Itoa(page),
		"-l", strconv.Itoa(page),
		path,
		prefix,
	}
	if err := p.exec.Run(ctx, "pdftoppm", args...); err != nil {
		return types.PageContent{}, &types.DocumentError{
			Path: path,
			Err:  fmt.Errorf("rendering page %d: %w", page, err),
		}
	}

	imgPath, err := findRendered(prefix, page)
	if err != nil {
		return types.PageContent{}, &types.DocumentError{Path: path, Err: err}
	}

	data, err := os.ReadFile(imgPath)
	if err != nil {
		return types.PageContent{}, &types.DocumentError{Path: path, Err: err}
	}

	return types.PageContent{Page: page, MIMEType: "image/png", Data: data}, nil
}

// findRendered locates the page image written by pdftoppm, which zero-pads
// the page number in the filename depending on the document's page count.
func findRendered(prefix string, page int) (string, error) {
	for width := 1; width <= 6; width++ {
		candidate := fmt.Sprintf("%s-%0*d.png", prefix, width, page)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", err
		}
	}
	return "", fmt.Errorf("rendered image not found for page %d", page)
}

// pdfPageCount opens the PDF with rsc.io/pdf and returns its page count.
// The parser panics on some malformed documents, so the call is guarded.
func pdfPageCount(path string) (count int, err error) {
	defer func() {
		if r := recover(); r != nil {
			count = 0
			err = &types.DocumentError{Path: path, Err: fmt.Errorf("malformed PDF: %v", r)}
		}
	}()

	doc, err := rpdf.Open(path)
	if err != nil {
		return 0, &types.DocumentError{Path: path, Err: err}
	}
	return doc.NumPage(), nil
}
