// Package diag carries advisory diagnostics emitted while markup is
// normalized. Warnings never interrupt a rewrite; sinks decide whether they
// end up in a log, a lint report, or nowhere.
package diag

import (
	"fmt"
	"log/slog"
)

// Warning reports a deprecated usage found on a node.
type Warning struct {
	// Context identifies where the usage was found, typically the tag name
	// of the node carrying it.
	Context string `json:"context"`
	// Old is the deprecated attribute or slot name.
	Old string `json:"old"`
	// New is the replacement the author should migrate to.
	New string `json:"new"`
	// Slot is true when the deprecation concerns a shorthand slot name
	// rather than an attribute.
	Slot bool `json:"slot,omitempty"`
}

func (w Warning) String() string {
	kind := "attribute"
	if w.Slot {
		kind = "slot"
	}
	return fmt.Sprintf("<%s>: %s %q is deprecated, use %q", w.Context, kind, w.Old, w.New)
}

// Sink receives deprecation warnings. Implementations must be safe for the
// engine to call without checking for nil results; the engine never reads
// anything back.
type Sink interface {
	Deprecated(w Warning)
}

// Discard returns a sink that drops every warning.
func Discard() Sink {
	return discard{}
}

type discard struct{}

func (discard) Deprecated(Warning) {}

// NewLogSink returns a sink that logs each warning through the given logger
// at warn level.
func NewLogSink(logger *slog.Logger) Sink {
	return &logSink{logger: logger}
}

type logSink struct {
	logger *slog.Logger
}

func (s *logSink) Deprecated(w Warning) {
	s.logger.Warn("deprecated usage",
		"context", w.Context,
		"old", w.Old,
		"new", w.New,
		"slot", w.Slot,
	)
}

// Collector is a sink that records warnings in order, for lint reports and
// tests.
type Collector struct {
	warnings []Warning
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Deprecated implements Sink.
func (c *Collector) Deprecated(w Warning) {
	c.warnings = append(c.warnings, w)
}

// Warnings returns the recorded warnings in emission order.
func (c *Collector) Warnings() []Warning {
	return c.warnings
}

// Tee returns a sink that forwards every warning to all of the given sinks.
func Tee(sinks ...Sink) Sink {
	return tee(sinks)
}

type tee []Sink

func (t tee) Deprecated(w Warning) {
	for _, s := range t {
		s.Deprecated(w)
	}
}
