package transform

import (
	"fmt"

	"github.com/espalier-ui/espalier/pkg/diag"
	"github.com/espalier-ui/espalier/pkg/markup"
)

// Directive prefixes of the downstream overlay runtime.
const (
	directivePopover = "v-b-popover"
	directiveTooltip = "v-b-tooltip"
)

var popoverDeprecatedAttrs = map[string]string{
	"title": "header",
}

// overlay normalizes popovers and tooltips. The two affordances share one
// rule set; only the directive prefix and the header concept differ (a
// tooltip has no header).
type overlay struct {
	kind      Kind
	directive string
	cfg       Config
	sink      diag.Sink
}

func newPopoverTransformer(cfg Config, sink diag.Sink) *overlay {
	return &overlay{kind: KindPopover, directive: directivePopover, cfg: cfg, sink: sink}
}

func newTooltipTransformer(cfg Config, sink diag.Sink) *overlay {
	return &overlay{kind: KindTooltip, directive: directiveTooltip, cfg: cfg, sink: sink}
}

// Transform mutates n in place into the normalized overlay shape.
func (t *overlay) Transform(n *markup.Node) {
	if t.kind == KindPopover {
		markup.WarnDeprecatedAttrs(t.sink, n, popoverDeprecatedAttrs)
		// Author-set `header` wins over a migrated legacy `title`.
		markup.MigrateAttr(n, "title", false, "header") //nolint:errcheck // not required
	}

	// A literal content attribute moves into the content-getter fallback
	// path; slotted content is handled below by NormalizeSlotted.
	markup.MigrateAttr(n, "content", false, AttrContent) //nolint:errcheck // not required

	n.Tag = t.cfg.InlineTag

	trigger := n.AttrOr("trigger", t.cfg.DefaultTrigger)
	placement := n.AttrOr("placement", t.cfg.DefaultPlacement)
	n.DelAttr("trigger")
	n.DelAttr("placement")

	// Single directive attribute encoding both, bound to the runtime
	// content getter: e.g. v-b-popover.hover.top.html="mbComponentContent".
	n.SetAttr(fmt.Sprintf("%s.%s.%s.html", t.directive, trigger, placement), t.cfg.ContentGetter)

	n.SetAttr(AttrComponentType, t.kind.String())

	ClassifyTrigger(n, trigger)
	NormalizeSlotted(n, t.cfg.InlineTag)
}
