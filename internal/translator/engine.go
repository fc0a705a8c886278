// Package translator maps typed translation requests onto the AI engine and
// measures how long each transformation takes.
package translator

import "context"

// Kind is the medium of a translation input or output
type Kind string

const (
	KindVideo Kind = "video"
	KindText  Kind = "text"
	KindSign  Kind = "sign"
	KindAudio Kind = "audio"
)

// Output is the engine's response. Which field carries the primary result
// depends on the operation.
type Output struct {
	Success          bool    `json:"success"`
	Text             string  `json:"text,omitempty"`
	TranslatedText   string  `json:"translated_text,omitempty"`
	VideoURL         string  `json:"video_url,omitempty"`
	AudioURL         string  `json:"audio_url,omitempty"`
	Confidence       float64 `json:"confidence,omitempty"`
	Duration         float64 `json:"duration,omitempty"`
	ProcessingTime   float64 `json:"processing_time"`
	DetectedLanguage string  `json:"detected_language,omitempty"`
	Language         string  `json:"language,omitempty"`
	SourceLanguage   string  `json:"source_language,omitempty"`
	TargetLanguage   string  `json:"target_language,omitempty"`
}

// Engine defines the AI transformations the dispatcher can call
type Engine interface {
	SignToText(ctx context.Context, videoPath, language string) (*Output, error)
	TextToSign(ctx context.Context, text, language string) (*Output, error)
	SpeechToText(ctx context.Context, audioPath, language string) (*Output, error)
	TextToSpeech(ctx context.Context, text, language string) (*Output, error)
	TranslateText(ctx context.Context, text, sourceLang, targetLang string) (*Output, error)
}
