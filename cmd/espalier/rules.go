package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/espalier-ui/espalier/internal/presentation/tui"
)

const rulesDoc = `# Espalier Rewrite Rules

## Popover / Tooltip

- ` + "`title`" + ` is deprecated in favor of ` + "`header`" + ` (popover only).
- ` + "`content`" + `, ` + "`header`" + ` and ` + "`title`" + ` migrate without overriding
  author-set destinations.
- The tag becomes the neutral inline tag and a directive attribute
  ` + "`v-b-popover.<trigger>.<placement>.html`" + ` (or ` + "`v-b-tooltip...`" + `) is
  synthesized from ` + "`trigger`" + ` (default ` + "`hover`" + `) and ` + "`placement`" + `
  (default ` + "`top`" + `).
- Slotted children are hidden behind ` + "`data-mb-slot-name`" + ` markers.

## Modal

1. ` + "`title`" + ` is deprecated in favor of ` + "`header`" + `; slots ` + "`modal-header`" + `
   and ` + "`modal-footer`" + ` are deprecated in favor of ` + "`header`" + `/` + "`footer`" + `.
2. ` + "`header`" + ` and ` + "`title`" + ` migrate into ` + "`modal-title`" + `.
3. Slots ` + "`header`" + `/` + "`footer`" + ` are relabeled to ` + "`modal-header`" + `/` + "`modal-footer`" + `.
4. The tag becomes the canonical modal tag.
5. ` + "`ok-text`" + ` renames to ` + "`ok-title`" + `, ` + "`center`" + ` to ` + "`centered`" + `.
6. Without an OK label or a footer slot the footer is hidden; with only an
   OK label the cancel button is suppressed (` + "`ok-only`" + `).
7. ` + "`backdrop=\"false\"`" + ` sets ` + "`no-close-on-backdrop`" + `; ` + "`backdrop`" + ` is consumed.
8. ` + "`large`" + `/` + "`small`" + ` derive ` + "`size`" + ` (` + "`lg`" + `, ` + "`sm`" + ` or empty; large wins).
9. ` + "`effect=\"fade\"`" + ` keeps the downstream fade; anything else gets the
   house animation class.
10. ` + "`id`" + ` is mirrored into ` + "`ref`" + `.

## Trigger

- ` + "`target`" + ` migrates to ` + "`data-mb-target`" + `.
- The activation mode appends class ` + "`trigger`" + ` or ` + "`trigger-click`" + `.
`

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Show the rewrite rules reference",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !tui.IsInteractive() {
			fmt.Print(rulesDoc)
			return nil
		}

		tui.PrintBanner()
		render := tui.NewRenderer()
		out, err := render(rulesDoc)
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}
