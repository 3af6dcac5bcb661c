package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"smithkit/ico"
)

var icoCmd = &cobra.Command{
	Use:   "ico",
	Short: "Inspect and unpack .ico containers",
}

var icoInfoCmd = &cobra.Command{
	Use:   "info <file.ico>",
	Short: "List the images inside an icon container",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		icon, err := decodeIcoFile(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s: %d image(s)\n", args[0], icon.Count())
		for i, e := range icon.Entries {
			fmt.Printf("  [%d] %dx%d %dbit %s, %d bytes at offset %d\n",
				i, e.PixelWidth(), e.PixelHeight(), e.BitCount, e.Kind(),
				e.BytesInResource, e.ImageOffset)
		}
		return nil
	},
}

var (
	extractDir    string
	extractPrefix string
)

var icoExtractCmd = &cobra.Command{
	Use:   "extract <file.ico>",
	Short: "Write each embedded image out as a standalone file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		icon, err := decodeIcoFile(args[0])
		if err != nil {
			return err
		}
		for _, e := range icon.Entries {
			data, ext := e.FileBytes()
			name := fmt.Sprintf("%s_icon%dx%d@%dbit.%s",
				extractPrefix, e.PixelWidth(), e.PixelHeight(), e.BitCount, ext)
			path := filepath.Join(extractDir, name)
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return err
			}
			logger.Debug("extracted image", zap.String("path", path), zap.Int("bytes", len(data)))
		}
		logger.Info("icon unpacked", zap.String("source", args[0]), zap.Int("images", icon.Count()))
		return nil
	},
}

func decodeIcoFile(path string) (*ico.Icon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ico.DecodeBytes(data)
}

func init() {
	icoExtractCmd.Flags().StringVarP(&extractDir, "dir", "d", ".", "directory to extract into")
	icoExtractCmd.Flags().StringVar(&extractPrefix, "prefix", "smith", "output file name prefix")
	icoCmd.AddCommand(icoInfoCmd, icoExtractCmd)
	rootCmd.AddCommand(icoCmd)
}
