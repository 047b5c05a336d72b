package transform

// Marker and directive attributes of the downstream runtime contract. The
// renderer reads the slot-name markers to source popover/tooltip/modal
// content at render time and interprets the synthesized directive attribute
// for trigger/placement behavior.
const (
	// AttrComponentType tags a normalized node with its declared kind.
	AttrComponentType = "data-mb-component-type"
	// AttrSlotName replaces shorthand slot syntax on normalized children so
	// the downstream templating layer does not interpret it.
	AttrSlotName = "data-mb-slot-name"
	// AttrContent receives a literal `content` attribute so the runtime
	// content getter can fall back to it when no slotted child matches.
	AttrContent = "data-mb-content"
	// AttrTarget names the element a trigger opens at runtime.
	AttrTarget = "data-mb-target"
)

// Config carries the named defaults and target vocabulary the transformers
// use. Tests and deployment config can override any of it; DefaultConfig
// supplies the stock values.
type Config struct {
	// DefaultTrigger is the activation mode used when a node does not
	// declare one ("hover" or "click").
	DefaultTrigger string `yaml:"default_trigger" json:"default_trigger" mapstructure:"default_trigger"`

	// DefaultPlacement is the overlay placement used when a node does not
	// declare one.
	DefaultPlacement string `yaml:"default_placement" json:"default_placement" mapstructure:"default_placement"`

	// InlineTag is the neutral inline tag normalized popovers, tooltips,
	// triggers and slotted children are rewritten to.
	InlineTag string `yaml:"inline_tag" json:"inline_tag" mapstructure:"inline_tag"`

	// ModalTag is the canonical modal component tag.
	ModalTag string `yaml:"modal_tag" json:"modal_tag" mapstructure:"modal_tag"`

	// ModalAnimationClass is the animation class applied to modals that do
	// not opt into the downstream default fade effect.
	ModalAnimationClass string `yaml:"modal_animation_class" json:"modal_animation_class" mapstructure:"modal_animation_class"`

	// ContentGetter is the runtime content-getter name the synthesized
	// popover/tooltip directive is bound to.
	ContentGetter string `yaml:"content_getter" json:"content_getter" mapstructure:"content_getter"`
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		DefaultTrigger:      "hover",
		DefaultPlacement:    "top",
		InlineTag:           "span",
		ModalTag:            "b-modal",
		ModalAnimationClass: "mb-zoom",
		ContentGetter:       "mbComponentContent",
	}
}
