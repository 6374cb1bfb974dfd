// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	genai "google.golang.org/genai"

	"github.com/sankhodeep/PDF2MD/pkg/types"
)

const defaultModel = "gemini-2.5-pro"

// Gemini converts pages through the Gemini multimodal API.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini converter. A missing API key is a
// ConfigError so callers can report it before any conversion starts.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, &types.ConfigError{Reason: "missing Gemini API key"}
	}
	if model == "" {
		model = defaultModel
	}

	c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, &types.ServiceError{Err: fmt.Errorf("creating Gemini client: %w", err)}
	}
	return &Gemini{client: c, model: model}, nil
}

// Convert sends the fixed conversion instruction plus the page image to
// the model and returns the Markdown text. One request per page, no
// retries.
func (g *Gemini) Convert(ctx context.Context, content types.PageContent) (string, error) {
	prompt := &genai.Content{
		Role: genai.RoleUser,
		Parts: []*genai.Part{
			{Text: conversionPrompt},
			{InlineData: &genai.Blob{MIMEType: content.MIMEType, Data: content.Data}},
		},
	}

	res, err := g.client.Models.GenerateContent(ctx, g.model, []*genai.Content{prompt}, nil)
	if err != nil {
		return "", &types.ServiceError{Page: content.Page, Err: err}
	}

	text := strings.TrimSpace(stripCodeFences(res.Text()))
	if text == "" {
		return "", &types.ServiceError{Page: content.Page, Err: errors.New("empty response from model")}
	}
	return text, nil
}

// stripCodeFences removes a surrounding ```/```markdown fence that the
// model sometimes adds despite the instruction.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "```") {
		if nl := strings.Index(s, "\n"); nl != -1 {
			s = s[nl+1:]
		}
	}
	if strings.HasSuffix(s, "```") {
		s = strings.TrimSpace(strings.TrimSuffix(s, "```"))
	}

	return s
}
