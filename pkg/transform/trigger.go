package transform

import (
	"github.com/espalier-ui/espalier/pkg/markup"
)

// Activation classes attached to triggering nodes. They encode only the
// activation mode; which affordance the trigger opens is resolved at runtime.
const (
	ClassTrigger      = "trigger"
	ClassTriggerClick = "trigger-click"
)

// TriggerMode values. Anything other than "click" is treated as hover.
const (
	TriggerClick = "click"
	TriggerHover = "hover"
)

// ClassifyTrigger appends the activation class for the given trigger mode to
// the node's class attribute, creating it when absent. Pre-existing classes
// are preserved with a single separating space.
func ClassifyTrigger(n *markup.Node, mode string) {
	cls := ClassTrigger
	if mode == TriggerClick {
		cls = ClassTriggerClick
	}

	if existing, ok := n.Attr("class"); ok && existing != "" {
		n.SetAttr("class", existing+" "+cls)
		return
	}
	n.SetAttr("class", cls)
}
