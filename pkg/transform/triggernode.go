package transform

import (
	"github.com/espalier-ui/espalier/pkg/diag"
	"github.com/espalier-ui/espalier/pkg/markup"
)

// triggerNode normalizes generic trigger elements. A trigger only records
// its activation mode and target here; which affordance it ends up opening
// is resolved by the runtime layer.
type triggerNode struct {
	cfg  Config
	sink diag.Sink
}

func newTriggerTransformer(cfg Config, sink diag.Sink) *triggerNode {
	return &triggerNode{cfg: cfg, sink: sink}
}

// Transform mutates n in place into the normalized trigger shape.
func (t *triggerNode) Transform(n *markup.Node) {
	mode := n.AttrOr("trigger", t.cfg.DefaultTrigger)
	n.DelAttr("trigger")

	markup.MigrateAttr(n, "target", false, AttrTarget) //nolint:errcheck // not required

	n.Tag = t.cfg.InlineTag
	n.SetAttr(AttrComponentType, KindTrigger.String())

	ClassifyTrigger(n, mode)
}
