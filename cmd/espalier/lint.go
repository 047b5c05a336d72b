package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/espalier-ui/espalier/internal/cli"
)

var lintCmd = &cobra.Command{
	Use:   "lint [file]",
	Short: "Report deprecated markup without rewriting it",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		strict, _ := cmd.Flags().GetBool("strict")

		cfg, err := cli.LoadConfig(configPath)
		if err != nil {
			return err
		}

		in, closeIn, err := openInput(args)
		if err != nil {
			return err
		}
		defer closeIn()

		pipeline := cli.NewPipeline(cfg.Transform, nil)
		res, err := pipeline.Lint(in)
		if err != nil {
			return err
		}

		printWarnings(res.Warnings)

		total := 0
		for _, n := range res.Counts {
			total += n
		}
		fmt.Printf("%d component node(s), %d warning(s)\n", total, len(res.Warnings))

		if strict && len(res.Warnings) > 0 {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lintCmd)
	lintCmd.Flags().Bool("strict", false, "Exit non-zero when deprecation warnings are found")
}
