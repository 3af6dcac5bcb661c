package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"smithkit/pngmeta"
)

var pngmetaCmd = &cobra.Command{
	Use:   "pngmeta <file.png>",
	Short: "Show a PNG's declared structure and verify chunk CRCs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		inf, err := pngmeta.Parse(data)
		if err != nil {
			return err
		}
		fmt.Printf("%s: %dx%d, bit depth %d, colour type %d, alpha %v\n",
			args[0], inf.Width, inf.Height, inf.BitDepth, inf.ColorType, inf.HasAlpha())
		for _, c := range inf.Chunks {
			fmt.Printf("  %s  %d bytes\n", c.Type, len(c.Data))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pngmetaCmd)
}
