package translator

import (
	"context"
	"fmt"
	"time"

	"github.com/Rrens/jusoor-api/internal/domain"
)

// Pair selects a handler by input and output kind
type Pair struct {
	Input  Kind
	Output Kind
}

func (p Pair) String() string {
	return string(p.Input) + "->" + string(p.Output)
}

// Request is a typed translation request
type Request struct {
	InputKind      Kind
	InputContent   string
	InputLanguage  string
	OutputKind     Kind
	OutputLanguage string
}

// Result holds the primary output and timing of a dispatch
type Result struct {
	OutputContent string
	Output        *Output
	Duration      time.Duration
}

type route struct {
	call    func(ctx context.Context, e Engine, req Request) (*Output, error)
	primary func(o *Output) string
}

// routes is the fixed dispatch table. A pair not listed here is unsupported;
// pairs are never chained.
var routes = map[Pair]route{
	{KindVideo, KindText}: {
		call: func(ctx context.Context, e Engine, req Request) (*Output, error) {
			return e.SignToText(ctx, req.InputContent, req.InputLanguage)
		},
		primary: func(o *Output) string { return o.Text },
	},
	{KindText, KindSign}: {
		call: func(ctx context.Context, e Engine, req Request) (*Output, error) {
			return e.TextToSign(ctx, req.InputContent, req.OutputLanguage)
		},
		primary: func(o *Output) string { return o.VideoURL },
	},
	{KindAudio, KindText}: {
		call: func(ctx context.Context, e Engine, req Request) (*Output, error) {
			return e.SpeechToText(ctx, req.InputContent, req.InputLanguage)
		},
		primary: func(o *Output) string { return o.Text },
	},
	{KindText, KindAudio}: {
		call: func(ctx context.Context, e Engine, req Request) (*Output, error) {
			return e.TextToSpeech(ctx, req.InputContent, req.OutputLanguage)
		},
		primary: func(o *Output) string { return o.AudioURL },
	},
	{KindText, KindText}: {
		call: func(ctx context.Context, e Engine, req Request) (*Output, error) {
			return e.TranslateText(ctx, req.InputContent, req.InputLanguage, req.OutputLanguage)
		},
		primary: func(o *Output) string { return o.TranslatedText },
	},
}

// Dispatcher routes requests to the engine. It keeps no per-call state and is
// safe for concurrent use.
type Dispatcher struct {
	engine Engine
	now    func() time.Time
}

// NewDispatcher creates a dispatcher over the given engine
func NewDispatcher(engine Engine) *Dispatcher {
	return &Dispatcher{engine: engine, now: time.Now}
}

// Supports reports whether the pair has a handler.
func Supports(p Pair) bool {
	_, ok := routes[p]
	return ok
}

// SupportedPairs lists the dispatch table.
func SupportedPairs() []Pair {
	return []Pair{
		{KindVideo, KindText},
		{KindText, KindSign},
		{KindAudio, KindText},
		{KindText, KindAudio},
		{KindText, KindText},
	}
}

// Dispatch runs the handler for the request's pair and times it.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) (*Result, error) {
	pair := Pair{Input: req.InputKind, Output: req.OutputKind}
	r, ok := routes[pair]
	if !ok {
		return nil, fmt.Errorf("%w: %s is not supported", domain.ErrUnsupportedPair, pair)
	}

	start := d.now()
	out, err := r.call(ctx, d.engine, req)
	elapsed := d.now().Sub(start)
	if err != nil {
		return nil, fmt.Errorf("%s failed: %w", pair, err)
	}
	if out == nil || !out.Success {
		return nil, fmt.Errorf("%s returned no result", pair)
	}

	return &Result{
		OutputContent: r.primary(out),
		Output:        out,
		Duration:      elapsed,
	}, nil
}
