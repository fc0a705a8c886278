package translator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const defaultGeminiModel = "gemini-2.5-flash"

// GeminiEngine serves text-to-text translation from Gemini and delegates
// every other transformation to the wrapped engine.
type GeminiEngine struct {
	Engine
	apiKey string
	model  string
}

// NewGeminiEngine wraps base with Gemini-backed text translation
func NewGeminiEngine(base Engine, apiKey, model string) *GeminiEngine {
	if model == "" {
		model = defaultGeminiModel
	}
	return &GeminiEngine{
		Engine: base,
		apiKey: apiKey,
		model:  model,
	}
}

func (e *GeminiEngine) TranslateText(ctx context.Context, text, sourceLang, targetLang string) (*Output, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(e.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(e.model)
	var temperature float32 = 0.0
	model.Temperature = &temperature

	start := time.Now()
	resp, err := model.GenerateContent(ctx, genai.Text(buildTranslatePrompt(text, sourceLang, targetLang)))
	elapsed := time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("gemini generation error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("empty response from gemini")
	}

	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			out.WriteString(string(t))
		}
	}

	return &Output{
		Success:        true,
		TranslatedText: strings.TrimSpace(out.String()),
		SourceLanguage: sourceLang,
		TargetLanguage: targetLang,
		ProcessingTime: elapsed.Seconds(),
	}, nil
}

func buildTranslatePrompt(text, sourceLang, targetLang string) string {
	var b strings.Builder
	b.WriteString("Translate the following text from ")
	b.WriteString(sourceLang)
	b.WriteString(" to ")
	b.WriteString(targetLang)
	b.WriteString(". Reply with the translation only, without quotes or commentary.\n\n")
	b.WriteString(text)
	return b.String()
}
