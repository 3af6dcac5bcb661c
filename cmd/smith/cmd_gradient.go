package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"smithkit/gradient"
)

var (
	gradientAngle int
	gradientRamp  int
)

var gradientCmd = &cobra.Command{
	Use:   "gradient <hex> <hex> [hex...]",
	Short: "Build a CSS gradient from evenly spaced colour stops",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := gradient.ParseHex(args...)
		if err != nil {
			return err
		}
		fmt.Println(g.CSS(gradientAngle))
		if gradientRamp > 0 {
			ramp, err := g.Ramp(gradientRamp)
			if err != nil {
				return err
			}
			for _, c := range ramp {
				fmt.Println(c.Hex())
			}
		}
		return nil
	},
}

func init() {
	gradientCmd.Flags().IntVar(&gradientAngle, "angle", 90, "gradient angle in degrees")
	gradientCmd.Flags().IntVar(&gradientRamp, "ramp", 0, "also print this many sampled colours")
	rootCmd.AddCommand(gradientCmd)
}
