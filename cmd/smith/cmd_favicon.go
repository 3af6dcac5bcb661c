package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"smithkit/favicon"
)

var (
	faviconOut   string
	faviconSizes []int
)

var faviconCmd = &cobra.Command{
	Use:   "favicon <image>",
	Short: "Pack a source image into a multi-resolution favicon.ico",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := loadImage(args[0])
		if err != nil {
			return err
		}
		sizes := faviconSizes
		if len(sizes) == 0 {
			sizes = cfg.Favicon.Sizes
		}
		out, err := favicon.Build(src, sizes...)
		if err != nil {
			return err
		}
		if err := writeOutput(faviconOut, out); err != nil {
			return err
		}
		logger.Info("favicon written",
			zap.String("path", faviconOut),
			zap.Ints("sizes", sizes),
			zap.Int("bytes", len(out)))
		return nil
	},
}

func init() {
	faviconCmd.Flags().StringVarP(&faviconOut, "out", "o", "favicon.ico", "output path")
	faviconCmd.Flags().IntSliceVar(&faviconSizes, "sizes", nil, "icon sizes to render (default from config)")
	rootCmd.AddCommand(faviconCmd)
}
