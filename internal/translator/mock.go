package translator

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"math/rand"
	"strings"
	"time"
)

var signSamples = []string{
	"Hello, how are you today?",
	"Thank you for your help.",
	"I need assistance with something.",
	"Good morning, nice to meet you.",
	"Can you please help me?",
	"I am learning sign language.",
}

var speechSamples = []string{
	"Welcome to Jusoor translation system.",
	"This is a demonstration of speech recognition.",
	"The system is working correctly.",
	"Thank you for using our service.",
	"How can I help you today?",
}

var phrasebook = map[string]map[string]string{
	"en_ar": {
		"Hello":        "مرحبا",
		"Thank you":    "شكرا لك",
		"Good morning": "صباح الخير",
		"How are you":  "كيف حالك",
	},
	"ar_en": {
		"مرحبا":      "Hello",
		"شكرا":       "Thank you",
		"صباح الخير": "Good morning",
		"كيف حالك":   "How are you",
	},
}

// Simulated processing times
const (
	signToTextLatency   = 1500 * time.Millisecond
	textToSignLatency   = 1200 * time.Millisecond
	speechToTextLatency = 1000 * time.Millisecond
	textToSpeechLatency = 800 * time.Millisecond
	translateLatency    = 500 * time.Millisecond
)

// MockEngine is a demonstration engine returning canned results after a
// simulated delay.
type MockEngine struct {
	simulateLatency bool
	sleep           func(ctx context.Context, d time.Duration) error
}

// NewMockEngine creates a mock engine. With simulateLatency off, calls return
// immediately while still reporting the nominal processing time.
func NewMockEngine(simulateLatency bool) *MockEngine {
	return &MockEngine{
		simulateLatency: simulateLatency,
		sleep:           sleepContext,
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (e *MockEngine) wait(ctx context.Context, d time.Duration) error {
	if !e.simulateLatency {
		return nil
	}
	return e.sleep(ctx, d)
}

func (e *MockEngine) SignToText(ctx context.Context, videoPath, language string) (*Output, error) {
	if err := e.wait(ctx, signToTextLatency); err != nil {
		return nil, err
	}
	return &Output{
		Success:          true,
		Text:             pick(signSamples),
		Confidence:       confidence(0.85, 0.98),
		ProcessingTime:   signToTextLatency.Seconds(),
		DetectedLanguage: "ASL",
	}, nil
}

func (e *MockEngine) TextToSign(ctx context.Context, text, language string) (*Output, error) {
	if err := e.wait(ctx, textToSignLatency); err != nil {
		return nil, err
	}
	return &Output{
		Success:        true,
		VideoURL:       "/api/mock/sign-video/" + contentKey(text),
		Duration:       float64(len(strings.Fields(text))) * 0.8,
		ProcessingTime: textToSignLatency.Seconds(),
		Language:       "ASL",
	}, nil
}

func (e *MockEngine) SpeechToText(ctx context.Context, audioPath, language string) (*Output, error) {
	if err := e.wait(ctx, speechToTextLatency); err != nil {
		return nil, err
	}
	return &Output{
		Success:          true,
		Text:             pick(speechSamples),
		Confidence:       confidence(0.90, 0.99),
		ProcessingTime:   speechToTextLatency.Seconds(),
		DetectedLanguage: language,
	}, nil
}

func (e *MockEngine) TextToSpeech(ctx context.Context, text, language string) (*Output, error) {
	if err := e.wait(ctx, textToSpeechLatency); err != nil {
		return nil, err
	}
	return &Output{
		Success:        true,
		AudioURL:       "/api/mock/audio/" + contentKey(text),
		Duration:       float64(len(strings.Fields(text))) * 0.5,
		ProcessingTime: textToSpeechLatency.Seconds(),
		Language:       language,
	}, nil
}

func (e *MockEngine) TranslateText(ctx context.Context, text, sourceLang, targetLang string) (*Output, error) {
	if err := e.wait(ctx, translateLatency); err != nil {
		return nil, err
	}

	translated, ok := phrasebook[sourceLang+"_"+targetLang][text]
	if !ok {
		translated = fmt.Sprintf("[%s] %s", strings.ToUpper(targetLang), text)
	}

	return &Output{
		Success:        true,
		TranslatedText: translated,
		SourceLanguage: sourceLang,
		TargetLanguage: targetLang,
		Confidence:     confidence(0.92, 0.99),
		ProcessingTime: translateLatency.Seconds(),
	}, nil
}

func pick(samples []string) string {
	return samples[rand.Intn(len(samples))]
}

// confidence returns a random score in [lo, hi] rounded to two decimals.
func confidence(lo, hi float64) float64 {
	v := lo + rand.Float64()*(hi-lo)
	return math.Round(v*100) / 100
}

// contentKey derives a stable 8 digit identifier from the content.
func contentKey(s string) string {
	h := fnv.New32a()
	h.Write([]byte(s))
	return fmt.Sprintf("%08d", h.Sum32()%100000000)
}
