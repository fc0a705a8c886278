package translator

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Rrens/jusoor-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// engineMock is a testify double for Engine
type engineMock struct {
	mock.Mock
}

func (m *engineMock) output(args mock.Arguments) (*Output, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Output), args.Error(1)
}

func (m *engineMock) SignToText(ctx context.Context, videoPath, language string) (*Output, error) {
	return m.output(m.Called(ctx, videoPath, language))
}

func (m *engineMock) TextToSign(ctx context.Context, text, language string) (*Output, error) {
	return m.output(m.Called(ctx, text, language))
}

func (m *engineMock) SpeechToText(ctx context.Context, audioPath, language string) (*Output, error) {
	return m.output(m.Called(ctx, audioPath, language))
}

func (m *engineMock) TextToSpeech(ctx context.Context, text, language string) (*Output, error) {
	return m.output(m.Called(ctx, text, language))
}

func (m *engineMock) TranslateText(ctx context.Context, text, sourceLang, targetLang string) (*Output, error) {
	return m.output(m.Called(ctx, text, sourceLang, targetLang))
}

func TestDispatcher_Routes(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		req    Request
		method string
		args   []any
		out    *Output
		want   string
	}{
		{
			name:   "video to text",
			req:    Request{InputKind: KindVideo, InputContent: "/v.mp4", InputLanguage: "en", OutputKind: KindText, OutputLanguage: "ar"},
			method: "SignToText",
			args:   []any{ctx, "/v.mp4", "en"},
			out:    &Output{Success: true, Text: "hi"},
			want:   "hi",
		},
		{
			name:   "text to sign",
			req:    Request{InputKind: KindText, InputContent: "Hello", InputLanguage: "en", OutputKind: KindSign, OutputLanguage: "ase"},
			method: "TextToSign",
			args:   []any{ctx, "Hello", "ase"},
			out:    &Output{Success: true, VideoURL: "/api/mock/sign-video/1"},
			want:   "/api/mock/sign-video/1",
		},
		{
			name:   "audio to text",
			req:    Request{InputKind: KindAudio, InputContent: "/a.wav", InputLanguage: "ar", OutputKind: KindText, OutputLanguage: "en"},
			method: "SpeechToText",
			args:   []any{ctx, "/a.wav", "ar"},
			out:    &Output{Success: true, Text: "spoken"},
			want:   "spoken",
		},
		{
			name:   "text to audio",
			req:    Request{InputKind: KindText, InputContent: "Hi", InputLanguage: "en", OutputKind: KindAudio, OutputLanguage: "ar"},
			method: "TextToSpeech",
			args:   []any{ctx, "Hi", "ar"},
			out:    &Output{Success: true, AudioURL: "/api/mock/audio/2"},
			want:   "/api/mock/audio/2",
		},
		{
			name:   "text to text",
			req:    Request{InputKind: KindText, InputContent: "Hello", InputLanguage: "en", OutputKind: KindText, OutputLanguage: "ar"},
			method: "TranslateText",
			args:   []any{ctx, "Hello", "en", "ar"},
			out:    &Output{Success: true, TranslatedText: "مرحبا"},
			want:   "مرحبا",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := new(engineMock)
			engine.On(tt.method, tt.args...).Return(tt.out, nil).Once()

			res, err := NewDispatcher(engine).Dispatch(ctx, tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.OutputContent)
			assert.Same(t, tt.out, res.Output)

			engine.AssertExpectations(t)
		})
	}
}

func TestDispatcher_UnsupportedPair(t *testing.T) {
	engine := new(engineMock)
	d := NewDispatcher(engine)

	unsupported := []Pair{
		{KindVideo, KindAudio},
		{KindVideo, KindSign},
		{KindAudio, KindAudio},
		{KindSign, KindText},
		{"", ""},
		{"image", KindText},
	}

	for _, p := range unsupported {
		_, err := d.Dispatch(context.Background(), Request{InputKind: p.Input, OutputKind: p.Output, InputContent: "x"})
		assert.ErrorIs(t, err, domain.ErrUnsupportedPair, p.String())
		assert.ErrorContains(t, err, p.String()+" is not supported")
		assert.False(t, Supports(p))
	}

	// No engine call may happen for an unsupported pair
	engine.AssertNotCalled(t, "SignToText", mock.Anything, mock.Anything, mock.Anything)
	engine.AssertNotCalled(t, "TextToSpeech", mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatcher_SupportedPairs(t *testing.T) {
	pairs := SupportedPairs()
	assert.Len(t, pairs, len(routes))
	for _, p := range pairs {
		assert.True(t, Supports(p), p.String())
	}
}

func TestDispatcher_MeasuresDuration(t *testing.T) {
	engine := new(engineMock)
	engine.On("TranslateText", mock.Anything, "a", "en", "ar").Return(&Output{Success: true, TranslatedText: "b"}, nil)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	ticks := []time.Time{base, base.Add(1250 * time.Millisecond)}
	d := NewDispatcher(engine)
	d.now = func() time.Time {
		next := ticks[0]
		ticks = ticks[1:]
		return next
	}

	res, err := d.Dispatch(context.Background(), Request{InputKind: KindText, InputContent: "a", InputLanguage: "en", OutputKind: KindText, OutputLanguage: "ar"})
	require.NoError(t, err)
	assert.Equal(t, 1250*time.Millisecond, res.Duration)
}

func TestDispatcher_EngineError(t *testing.T) {
	boom := errors.New("boom")
	engine := new(engineMock)
	engine.On("TextToSpeech", mock.Anything, "a", "en").Return(nil, boom)

	_, err := NewDispatcher(engine).Dispatch(context.Background(), Request{InputKind: KindText, InputContent: "a", OutputKind: KindAudio, OutputLanguage: "en"})
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, domain.ErrUnsupportedPair)
}

func TestDispatcher_Concurrent(t *testing.T) {
	d := NewDispatcher(NewMockEngine(false))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := d.Dispatch(context.Background(), Request{InputKind: KindText, InputContent: "Hello", InputLanguage: "en", OutputKind: KindSign, OutputLanguage: "en"})
			assert.NoError(t, err)
			assert.NotEmpty(t, res.OutputContent)
		}()
	}
	wg.Wait()
}
