package main

import (
	"os"

	"github.com/spf13/cobra"

	"smithkit/markdown"
)

var (
	mdOut       string
	mdHardWraps bool
	mdUnsafe    bool
)

var markdownCmd = &cobra.Command{
	Use:   "markdown <file.md>",
	Short: "Render markdown to HTML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		out, err := markdown.Render(src, markdown.Options{
			HardWraps: mdHardWraps,
			Unsafe:    mdUnsafe,
		})
		if err != nil {
			return err
		}
		return writeOutput(mdOut, out)
	},
}

func init() {
	markdownCmd.Flags().StringVarP(&mdOut, "out", "o", "-", "output path, - for stdout")
	markdownCmd.Flags().BoolVar(&mdHardWraps, "hard-wraps", false, "render single newlines as <br>")
	markdownCmd.Flags().BoolVar(&mdUnsafe, "unsafe", false, "pass raw HTML through")
	rootCmd.AddCommand(markdownCmd)
}
