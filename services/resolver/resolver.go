// File: services/resolver/resolver.go
package resolver

import (
	"context"
	"fmt"
	"strings"
	"time"

	genai "github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// TimeResolver converts a natural-language time phrase into an ISO 8601
// candidate string. An empty return means "not resolved"; resolution failure
// is an expected outcome, never an error.
type TimeResolver interface {
	Resolve(ctx context.Context, text string) string
}

const (
	promptTemplate = "Convert this to an ISO 8601 datetime: %s"
	resolveTimeout = 10 * time.Second
)

// GeminiResolver resolves time phrases through a Gemini model with
// deterministic decoding and bounded output.
type GeminiResolver struct {
	model  *genai.GenerativeModel
	logger *zap.Logger
}

// NewGeminiResolver creates a Gemini-backed resolver.
func NewGeminiResolver(ctx context.Context, apiKey string, logger *zap.Logger) (*GeminiResolver, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel("models/gemini-1.5-pro")
	model.SetTemperature(0)
	model.SetMaxOutputTokens(50)
	return &GeminiResolver{model: model, logger: logger}, nil
}

// Resolve submits the fixed prompt and returns the cleaned candidate, or ""
// when the model fails, times out, or produces nothing usable. The candidate
// is not guaranteed to be a valid timestamp; validation is the caller's job.
func (r *GeminiResolver) Resolve(ctx context.Context, text string) string {
	ctx, cancel := context.WithTimeout(ctx, resolveTimeout)
	defer cancel()

	resp, err := r.model.GenerateContent(ctx, genai.Text(fmt.Sprintf(promptTemplate, text)))
	if err != nil {
		r.logger.Warn("time resolution failed", zap.Error(err))
		return ""
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return CleanCandidate(sb.String())
}

// CleanCandidate strips known label prefixes and wrapping from raw model
// output. The result may still be arbitrary text.
func CleanCandidate(out string) string {
	out = strings.ReplaceAll(out, "ISO 8601 datetime:", "")
	out = strings.Trim(out, "` \n\t\"'")
	return strings.TrimSpace(out)
}
