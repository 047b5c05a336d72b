/*
Package markup defines the mutable document tree the normalization engine
operates on.

It is kept free of parsing and rendering concerns, following Hexagonal
Architecture principles: adapters build trees from raw markup and write them
back out, while pkg/transform edits trees in place.

# Key Entities

  - Node: a tag name, an insertion-ordered attribute map, and child nodes.
  - Shorthand slot: an attribute of the form "#name" designating which named
    content slot a child fills.
  - MigrateAttr / RenameAttr: the attribute migration primitives, encoding
    the rule that author-set attributes always win over derived ones.
*/
package markup
