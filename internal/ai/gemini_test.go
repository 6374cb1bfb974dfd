// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/sankhodeep/PDF2MD/pkg/types"
)

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "no fences",
			in:   "# Heading\n\nBody text.",
			want: "# Heading\n\nBody text.",
		},
		{
			name: "markdown fence",
			in:   "```markdown\n# Heading\n\nBody text.\n```",
			want: "# Heading\n\nBody text.",
		},
		{
			name: "bare fence",
			in:   "```\ncontent\n```",
			want: "content",
		},
		{
			name: "surrounding whitespace",
			in:   "  \n```markdown\ntext\n```\n  ",
			want: "text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripCodeFences(tt.in); got != tt.want {
				t.Errorf("stripCodeFences(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewGeminiMissingKey(t *testing.T) {
	_, err := NewGemini(context.Background(), "", "")
	var cfgErr *types.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
}
