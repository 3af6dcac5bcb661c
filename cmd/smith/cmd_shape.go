package main

import (
	"github.com/spf13/cobra"

	"smithkit/shapes"
)

var (
	shapeSize     float64
	shapeFill     string
	shapeOut      string
	shapeSides    int
	shapePoints   int
	shapeInner    float64
	shapeSeed     int64
	shapeNodes    int
	shapeVariance float64
	shapeWidth    float64
	shapeHeight   float64
	shapeCycles   int
	shapeAmp      float64
)

var shapeCmd = &cobra.Command{
	Use:   "shape",
	Short: "Generate SVG shapes",
}

var shapePolygonCmd = &cobra.Command{
	Use:   "polygon",
	Short: "Regular polygon",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := shapes.Polygon(shapeSides, shapeSize)
		if err != nil {
			return err
		}
		return writeShape(d, shapeSize, shapeSize)
	},
}

var shapeStarCmd = &cobra.Command{
	Use:   "star",
	Short: "Star with configurable point count and inner radius",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := shapes.Star(shapePoints, shapeSize, shapeInner)
		if err != nil {
			return err
		}
		return writeShape(d, shapeSize, shapeSize)
	},
}

var shapeBlobCmd = &cobra.Command{
	Use:   "blob",
	Short: "Smooth organic blob for a given seed",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := shapes.Blob(shapeSeed, shapeNodes, shapeSize, shapeVariance)
		if err != nil {
			return err
		}
		return writeShape(d, shapeSize, shapeSize)
	},
}

var shapeWaveCmd = &cobra.Command{
	Use:   "wave",
	Short: "Horizontal wave divider",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := shapes.Wave(shapeWidth, shapeHeight, shapeCycles, shapeAmp)
		if err != nil {
			return err
		}
		return writeShape(d, shapeWidth, shapeHeight)
	},
}

func writeShape(pathData string, w, h float64) error {
	doc := shapes.Document(pathData, w, h, shapeFill)
	return writeOutput(shapeOut, []byte(doc+"\n"))
}

func init() {
	pf := shapeCmd.PersistentFlags()
	pf.Float64Var(&shapeSize, "size", 100, "bounding box size")
	pf.StringVar(&shapeFill, "fill", "#000000", "fill colour")
	pf.StringVarP(&shapeOut, "out", "o", "-", "output path, - for stdout")

	shapePolygonCmd.Flags().IntVar(&shapeSides, "sides", 6, "number of sides")

	shapeStarCmd.Flags().IntVar(&shapePoints, "points", 5, "number of star points")
	shapeStarCmd.Flags().Float64Var(&shapeInner, "inner", 0.5, "inner radius fraction")

	shapeBlobCmd.Flags().Int64Var(&shapeSeed, "seed", 1, "blob seed")
	shapeBlobCmd.Flags().IntVar(&shapeNodes, "nodes", 8, "number of blob nodes")
	shapeBlobCmd.Flags().Float64Var(&shapeVariance, "variance", 0.3, "radius variance fraction")

	shapeWaveCmd.Flags().Float64Var(&shapeWidth, "width", 320, "wave width")
	shapeWaveCmd.Flags().Float64Var(&shapeHeight, "height", 80, "wave height")
	shapeWaveCmd.Flags().IntVar(&shapeCycles, "cycles", 3, "number of full wave cycles")
	shapeWaveCmd.Flags().Float64Var(&shapeAmp, "amplitude", 0.6, "crest amplitude fraction")

	shapeCmd.AddCommand(shapePolygonCmd, shapeStarCmd, shapeBlobCmd, shapeWaveCmd)
	rootCmd.AddCommand(shapeCmd)
}
