package transform

import (
	"strings"

	"github.com/espalier-ui/espalier/pkg/markup"
)

// Kind classifies a node into the closed set of transformable variants.
type Kind int

const (
	// KindPlain marks nodes the engine leaves untouched.
	KindPlain Kind = iota
	// KindPopover is a hover/click overlay with optional header.
	KindPopover
	// KindTooltip is a plain text overlay without a header concept.
	KindTooltip
	// KindModal is a dialog with header/footer slots and OK/cancel policy.
	KindModal
	// KindTrigger is a node that opens one of the other affordances; which
	// one is resolved later, at runtime.
	KindTrigger
)

func (k Kind) String() string {
	switch k {
	case KindPopover:
		return "popover"
	case KindTooltip:
		return "tooltip"
	case KindModal:
		return "modal"
	case KindTrigger:
		return "trigger"
	default:
		return "plain"
	}
}

// Author-facing tags, matched case-insensitively.
const (
	TagPopover = "popover"
	TagTooltip = "tooltip"
	TagModal   = "modal"
	TagTrigger = "trigger"
)

// KindOf classifies a node by its declared tag. Text nodes and unknown tags
// classify as plain.
func KindOf(n *markup.Node) Kind {
	if n.IsText() {
		return KindPlain
	}
	switch strings.ToLower(n.Tag) {
	case TagPopover:
		return KindPopover
	case TagTooltip:
		return KindTooltip
	case TagModal:
		return KindModal
	case TagTrigger:
		return KindTrigger
	default:
		return KindPlain
	}
}
