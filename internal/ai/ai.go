// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ai converts rendered PDF pages into Markdown through a
// generative AI backend.
package ai

import (
	"context"

	"github.com/sankhodeep/PDF2MD/pkg/types"
)

// Converter turns one rendered page into Markdown text. Implementations
// make exactly one attempt per call; a failed page is recorded by the
// worker and the run moves on.
type Converter interface {
	Convert(ctx context.Context, content types.PageContent) (string, error)
}
