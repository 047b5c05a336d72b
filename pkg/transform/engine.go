package transform

import (
	"github.com/espalier-ui/espalier/pkg/diag"
	"github.com/espalier-ui/espalier/pkg/markup"
)

// Transformer owns the rule set for one affordance and mutates a node in
// place. Transformers are not reentrant on the same node; the engine
// guarantees each node is visited at most once.
type Transformer interface {
	Transform(n *markup.Node)
}

// Engine dispatches nodes to their transformer by declared kind.
type Engine struct {
	cfg          Config
	sink         diag.Sink
	transformers map[Kind]Transformer
}

// New creates an engine with the full transformer set for cfg, emitting
// deprecation warnings to sink. A nil sink discards warnings.
func New(cfg Config, sink diag.Sink) *Engine {
	if sink == nil {
		sink = diag.Discard()
	}
	return &Engine{
		cfg:  cfg,
		sink: sink,
		transformers: map[Kind]Transformer{
			KindPopover: newPopoverTransformer(cfg, sink),
			KindTooltip: newTooltipTransformer(cfg, sink),
			KindModal:   newModalTransformer(cfg, sink),
			KindTrigger: newTriggerTransformer(cfg, sink),
		},
	}
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config {
	return e.cfg
}

// Apply classifies n and runs its transformer, returning the kind that was
// applied. Plain nodes, text nodes, and nodes already carrying the
// component-type marker (partially migrated input) are left untouched, which
// makes re-application safe.
func (e *Engine) Apply(n *markup.Node) Kind {
	if n.IsText() || n.HasAttr(AttrComponentType) {
		return KindPlain
	}
	k := KindOf(n)
	if t, ok := e.transformers[k]; ok {
		t.Transform(n)
		return k
	}
	return KindPlain
}

// Walk applies the engine to root and every descendant element in document
// order (parents before children), returning how many nodes of each kind
// were transformed. Children normalized by their parent's transformer have
// lost their author tags by the time they are visited, so they classify as
// plain and are not re-entered.
func (e *Engine) Walk(root *markup.Node) map[Kind]int {
	counts := make(map[Kind]int)
	e.walk(root, counts)
	return counts
}

func (e *Engine) walk(n *markup.Node, counts map[Kind]int) {
	if k := e.Apply(n); k != KindPlain {
		counts[k]++
	}
	for _, c := range n.Children {
		e.walk(c, counts)
	}
}
