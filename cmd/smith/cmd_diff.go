package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"smithkit/textdiff"
)

var diffContext int

var diffCmd = &cobra.Command{
	Use:   "diff <old> <new>",
	Short: "Show a unified line diff of two files",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		oldData, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		newData, err := os.ReadFile(args[1])
		if err != nil {
			return err
		}
		context := diffContext
		if context < 0 {
			context = cfg.Diff.Context
		}
		out := textdiff.Unified(args[0], args[1], string(oldData), string(newData), context)
		if out == "" {
			logger.Debug("files are identical")
			return nil
		}
		fmt.Print(out)
		return nil
	},
}

func init() {
	diffCmd.Flags().IntVarP(&diffContext, "context", "c", -1, "context lines around changes (default from config)")
	rootCmd.AddCommand(diffCmd)
}
