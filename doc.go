/*
Package espalier is a markup-normalization engine: it rewrites author-facing
component markup (popover, tooltip, modal, and generic triggers) into the
canonical attribute and slot shape a downstream rendering layer consumes.

Authors write forgiving markup with shorthand slots and legacy attribute
names; the renderer wants one fixed vocabulary of tags, marker attributes and
directive keys. Espalier sits between the two: it migrates deprecated
spellings (warning about them without ever failing), resolves defaults, and
tags every node so the rewrite is safe to re-run.

# Architecture

The package follows a hexagonal layout. The core tree model (pkg/markup) and
the transformers (pkg/transform) are pure and synchronous; parsing,
serialization, caching and transports live in adapters behind the interfaces
in pkg/ports.

# Usage

The root package bundles the HTML codec and the transformation engine behind
a string API:

	package main

	import (
		"fmt"
		"log"

		"github.com/espalier-ui/espalier"
	)

	func main() {
		eng := espalier.New()

		out, warnings, err := eng.Transform(`<popover content="Hi">details</popover>`)
		if err != nil {
			log.Fatal(err)
		}

		for _, w := range warnings {
			log.Printf("deprecated: %s", w)
		}
		fmt.Println(out)
	}

Consumers that need the node tree work with pkg/markup and pkg/transform
directly; the espalier CLI, the HTTP server and the MCP server are thin
shells over the same engine.
*/
package espalier
