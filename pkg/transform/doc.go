/*
Package transform rewrites author-facing markup for interactive affordances
(popover, tooltip, modal, trigger) into the canonical attribute/slot shape the
downstream component runtime expects.

Each affordance has one transformer that mutates a node in place: it migrates
and derives attributes, relabels shorthand slots, normalizes slotted children
into hidden content sources, and finally rewrites the node's tag to the target
component name. Transformers hold no state between invocations; everything
lives on the node.

Two rules hold everywhere:

  - Author-set attributes always win over engine-derived ones
    (markup.MigrateAttr encodes this).
  - Nothing hard-fails: absent attributes skip their dependent step and
    deprecation findings are advisory, emitted through a diag.Sink.
*/
package transform
