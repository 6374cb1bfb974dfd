// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package worker

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sankhodeep/PDF2MD/pkg/types"
)

// writeOutput concatenates the successful pages in page order and writes
// them to the output path. Failed pages are omitted; their failures are
// reported through the event stream instead of as markers in the file.
// The write goes through a temp file and a rename, so the output is the
// full set of successful pages or nothing.
func writeOutput(req types.ConversionRequest, results []types.PageResult) error {
	var b strings.Builder
	for _, r := range results {
		if r.Status != types.PageSuccess {
			continue
		}
		if req.PageHeadings {
			fmt.Fprintf(&b, "--- Page %d ---\n\n", r.Page)
		}
		b.WriteString(strings.TrimRight(r.Markdown, "\n"))
		b.WriteString("\n\n")
	}

	dir := filepath.Dir(req.OutputPath)
	tmp, err := os.CreateTemp(dir, ".pdf2md-*.md")
	if err != nil {
		return &types.IOError{Path: req.OutputPath, Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(b.String()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &types.IOError{Path: req.OutputPath, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &types.IOError{Path: req.OutputPath, Err: err}
	}

	if err := os.Rename(tmpName, req.OutputPath); err != nil {
		os.Remove(tmpName)
		return &types.IOError{Path: req.OutputPath, Err: err}
	}
	return nil
}
