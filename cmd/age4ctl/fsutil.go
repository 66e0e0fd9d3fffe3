package main

import (
	"os"
	"path/filepath"

	"github.com/ageformats/age4fmt/agf"
	"github.com/ageformats/age4fmt/internal/rasterio"
)

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// writeEntryFile writes data to outDir/name, creating any intermediate
// directories name's path implies.
func writeEntryFile(outDir, name string, data []byte) error {
	path := filepath.Join(outDir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

func writePNGFile(path string, r agf.Raster) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return rasterio.WritePNG(f, r)
}
