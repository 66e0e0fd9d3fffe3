package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ageformats/age4fmt/agf"
	"github.com/ageformats/age4fmt/crop"
	"github.com/ageformats/age4fmt/format"
	"github.com/spf13/cobra"
)

var cropIconCmd = &cobra.Command{
	Use:   "crop-icon <tile.agf> [outdir]",
	Short: "Decode a map-icon sprite sheet and crop its frame-0 icon and title",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runCropIcon,
}

func runCropIcon(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	inPath := args[0]
	outDir := inPath + ".cropped"
	if len(args) == 2 {
		outDir = args[1]
	}

	if flagClean {
		if err := os.RemoveAll(outDir); err != nil {
			return fmt.Errorf("clean: %w", err)
		}
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	f, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer f.Close()

	raster, err := agf.Decode(f)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", inPath, err)
	}
	if raster.Kind != format.RasterBgra32 {
		return fmt.Errorf("crop-icon: %s decoded to %s, want %s", inPath, raster.Kind, format.RasterBgra32)
	}

	result, err := crop.CropMapIcon(raster.Bgra)
	if err != nil {
		return fmt.Errorf("cropping %s: %w", inPath, err)
	}

	iconPath := filepath.Join(outDir, "icon.png")
	if flagForce || !fileExists(iconPath) {
		if err := writePNGFile(iconPath, agf.Raster{Kind: format.RasterBgra32, Bgra: &result.Icon}); err != nil {
			return fmt.Errorf("writing %s: %w", iconPath, err)
		}
	}

	if result.Title == nil {
		logger.Warn("no title subimage found below icon frame", "in", inPath)
	} else {
		titlePath := filepath.Join(outDir, "title.png")
		if flagForce || !fileExists(titlePath) {
			if err := writePNGFile(titlePath, agf.Raster{Kind: format.RasterBgra32, Bgra: result.Title}); err != nil {
				return fmt.Errorf("writing %s: %w", titlePath, err)
			}
		}
	}

	logger.Info("crop-icon complete", "in", inPath, "outdir", outDir)

	return nil
}
