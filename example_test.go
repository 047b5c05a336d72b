package espalier_test

import (
	"fmt"
	"log"

	"github.com/espalier-ui/espalier"
)

// Example demonstrates normalizing a single popover element.
func Example() {
	eng := espalier.New()

	out, _, err := eng.Transform(`<popover content="Hi">details</popover>`)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(out)
	// Output:
	// <span data-mb-content="Hi" v-b-popover.hover.top.html="mbComponentContent" data-mb-component-type="popover" class="trigger">details</span>
}

// Example_warnings shows how deprecation warnings surface to the caller.
func Example_warnings() {
	eng := espalier.New()

	_, warnings, err := eng.Transform(`<modal title="Hello"></modal>`)
	if err != nil {
		log.Fatal(err)
	}

	for _, w := range warnings {
		fmt.Println(w.String())
	}
}
