package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/espalier-ui/espalier/internal/cli"
	"github.com/espalier-ui/espalier/pkg/diag"
)

var transformCmd = &cobra.Command{
	Use:   "transform [file]",
	Short: "Rewrite markup into the canonical renderer shape",
	Long: `Reads a markup document from the given file (or stdin when the file is
"-" or omitted), rewrites every component node, and writes the result to
stdout or --output. Deprecation warnings go to stderr.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		outputPath, _ := cmd.Flags().GetString("output")
		quiet, _ := cmd.Flags().GetBool("quiet")

		cfg, err := cli.LoadConfig(configPath)
		if err != nil {
			return err
		}

		in, closeIn, err := openInput(args)
		if err != nil {
			return err
		}
		defer closeIn()

		out := io.Writer(os.Stdout)
		if outputPath != "" {
			f, err := os.Create(outputPath)
			if err != nil {
				return fmt.Errorf("create output: %w", err)
			}
			defer f.Close()
			out = f
		}

		pipeline := cli.NewPipeline(cfg.Transform, nil)
		res, err := pipeline.Run(in, out)
		if err != nil {
			return err
		}

		if !quiet {
			printWarnings(res.Warnings)
		}
		return nil
	},
}

func openInput(args []string) (io.Reader, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}
	return f, func() { f.Close() }, nil
}

func printWarnings(warnings []diag.Warning) {
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w.String())
	}
}

func init() {
	rootCmd.AddCommand(transformCmd)
	transformCmd.Flags().StringP("output", "o", "", "Write output to file instead of stdout")
	transformCmd.Flags().BoolP("quiet", "q", false, "Suppress deprecation warnings")
}
