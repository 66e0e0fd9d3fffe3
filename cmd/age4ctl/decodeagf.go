package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ageformats/age4fmt/agf"
	"github.com/ageformats/age4fmt/internal/rasterio"
	"github.com/spf13/cobra"
)

var decodeAgfCmd = &cobra.Command{
	Use:   "decode-agf <file.agf> [out.png]",
	Short: "Decode an AGF image container and write it out as PNG",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runDecodeAgf,
}

func runDecodeAgf(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	inPath := args[0]
	outPath := strings.TrimSuffix(inPath, filepath.Ext(inPath)) + ".png"
	if len(args) == 2 {
		outPath = args[1]
	}

	if flagClean {
		if err := os.Remove(outPath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("clean: %w", err)
		}
	}
	if !flagForce && fileExists(outPath) {
		logger.Info("output exists, skipping (use --force to overwrite)", "path", outPath)
		return nil
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

	if err := writePNGFile(outPath, raster); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}

	logger.Info("decode-agf complete", "in", inPath, "out", outPath, "kind", raster.Kind.String())

	return nil
}
