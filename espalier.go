package espalier

import (
	"fmt"
	"io"
	"strings"

	htmladapter "github.com/espalier-ui/espalier/internal/adapters/html"
	"github.com/espalier-ui/espalier/pkg/diag"
	"github.com/espalier-ui/espalier/pkg/transform"
)

// Version is the release version, overridden at build time via -ldflags.
var Version = "0.1.0-dev"

// Engine is the high-level entry point for the Espalier library.
// It bundles the markup codec and the transformation engine behind a
// string-in, string-out API for consumers that do not need the node tree.
type Engine struct {
	cfg   transform.Config
	sink  diag.Sink
	codec *htmladapter.Codec
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithConfig overrides the transformation vocabulary and defaults.
func WithConfig(cfg transform.Config) Option {
	return func(e *Engine) {
		e.cfg = cfg
	}
}

// WithSink registers a sink that receives every deprecation warning in
// addition to the per-call return value.
func WithSink(sink diag.Sink) Option {
	return func(e *Engine) {
		e.sink = sink
	}
}

// New initializes a new Espalier Engine with the stock vocabulary.
func New(opts ...Option) *Engine {
	eng := &Engine{
		cfg:   transform.DefaultConfig(),
		sink:  diag.Discard(),
		codec: htmladapter.NewCodec(),
	}
	for _, opt := range opts {
		opt(eng)
	}
	return eng
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() transform.Config {
	return e.cfg
}

// Transform rewrites every component node in input and returns the
// normalized markup along with the deprecation warnings it raised.
func (e *Engine) Transform(input string) (string, []diag.Warning, error) {
	var out strings.Builder
	warnings, err := e.TransformReader(strings.NewReader(input), &out)
	if err != nil {
		return "", nil, err
	}
	return out.String(), warnings, nil
}

// TransformReader is the streaming variant of Transform.
func (e *Engine) TransformReader(r io.Reader, w io.Writer) ([]diag.Warning, error) {
	root, err := e.codec.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse markup: %w", err)
	}

	collector := diag.NewCollector()
	eng := transform.New(e.cfg, diag.Tee(collector, e.sink))
	eng.Walk(root)

	if err := e.codec.Serialize(w, root); err != nil {
		return nil, fmt.Errorf("serialize markup: %w", err)
	}
	return collector.Warnings(), nil
}

// Lint reports deprecation warnings for input without returning rewritten
// markup.
func (e *Engine) Lint(input string) ([]diag.Warning, error) {
	_, warnings, err := e.Transform(input)
	return warnings, err
}
