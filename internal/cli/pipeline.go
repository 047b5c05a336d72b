// Package cli holds the wiring shared by the espalier commands: config
// loading, logger setup and the parse/transform/serialize pipeline.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	htmladapter "github.com/espalier-ui/espalier/internal/adapters/html"
	"github.com/espalier-ui/espalier/internal/logging"
	"github.com/espalier-ui/espalier/pkg/diag"
	"github.com/espalier-ui/espalier/pkg/transform"
)

// Pipeline runs a markup document through parse, transform and serialize.
type Pipeline struct {
	codec *htmladapter.Codec
	cfg   transform.Config
	sink  diag.Sink
}

// NewPipeline creates a pipeline with the given vocabulary. Warnings are
// reported to sink in addition to the per-run result.
func NewPipeline(cfg transform.Config, sink diag.Sink) *Pipeline {
	if sink == nil {
		sink = diag.Discard()
	}
	return &Pipeline{
		codec: htmladapter.NewCodec(),
		cfg:   cfg,
		sink:  sink,
	}
}

// Result is the outcome of one pipeline run.
type Result struct {
	Warnings []diag.Warning
	Counts   map[transform.Kind]int
}

// Run reads markup from r, rewrites it and writes the result to w.
func (p *Pipeline) Run(r io.Reader, w io.Writer) (*Result, error) {
	root, err := p.codec.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse markup: %w", err)
	}

	collector := diag.NewCollector()
	eng := transform.New(p.cfg, diag.Tee(collector, p.sink))
	counts := eng.Walk(root)

	if err := p.codec.Serialize(w, root); err != nil {
		return nil, fmt.Errorf("serialize markup: %w", err)
	}

	return &Result{Warnings: collector.Warnings(), Counts: counts}, nil
}

// Lint reads markup from r and reports without emitting rewritten output.
func (p *Pipeline) Lint(r io.Reader) (*Result, error) {
	var discard strings.Builder
	return p.Run(r, &discard)
}

// NewLogger configures the application logger for the commands.
func NewLogger(debug, json bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug, json)
	}
	return logging.New(slog.LevelInfo, json)
}
