package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"smithkit/palette"
)

var paletteColors int

var paletteCmd = &cobra.Command{
	Use:   "palette <image>",
	Short: "Extract the dominant colours of an image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		img, err := loadImage(args[0])
		if err != nil {
			return err
		}
		n := paletteColors
		if n == 0 {
			n = cfg.Palette.Colors
		}
		entries, err := palette.Extract(img, n)
		if err != nil {
			return err
		}
		for _, e := range entries {
			h, s, l := e.HSL()
			fmt.Printf("%s  %5.1f%%  hsl(%.0f, %.0f%%, %.0f%%)\n",
				e.Hex(), e.Share*100, h, s*100, l*100)
		}
		return nil
	},
}

func init() {
	paletteCmd.Flags().IntVarP(&paletteColors, "colors", "n", 0, "number of colours (default from config)")
	rootCmd.AddCommand(paletteCmd)
}
