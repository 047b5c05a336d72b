/*
Package ports defines the driven ports (interfaces) for the Espalier engine.

These interfaces decouple the transformation core from markup syntax and
infrastructure, allowing the engine to work with different parsers,
serializers, and cache backends.

# Key Interfaces

  - Parser: builds a markup.Node tree from raw markup.
  - Serializer: writes a markup.Node tree back out as markup.
  - TransformCache: optional result cache keyed by input content.
*/
package ports
