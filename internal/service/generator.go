package service

import (
	"context"
)

// TextGenerator is the interface for text completion providers
type TextGenerator interface {
	// Generate sends a prompt and returns the model's raw completion text
	Generate(ctx context.Context, prompt string) (string, error)
}

// Ensure HuggingFaceClient implements TextGenerator
var _ TextGenerator = (*HuggingFaceClient)(nil)
