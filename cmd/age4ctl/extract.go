package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ageformats/age4fmt/alf"
	"github.com/ageformats/age4fmt/metadata"
	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract <metadata-file> [outdir]",
	Short: "Extract every entry named in a metadata file out of its ALF archives",
	Long:  "Extract every entry named in a metadata file out of its ALF archives.\nThe input must be a metadata file; a directory is not searched for one.",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	metaPath := args[0]
	outDir := metaPath + ".extracted"
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

	f, err := os.Open(metaPath)
	if err != nil {
		return err
	}
	defer f.Close()

	meta, err := metadata.Parse(f)
	if err != nil {
		return fmt.Errorf("parsing metadata %s: %w", metaPath, err)
	}

	archiveDir := filepath.Dir(metaPath)
	extractor := alf.NewExtractor(meta, func(filename string) (alf.Source, error) {
		return os.Open(filepath.Join(archiveDir, filename))
	})
	defer extractor.Close()

	var opts []alf.Option
	if flagForce {
		opts = append(opts, alf.Force())
	}

	watcher := watchStop(outDir, 500*time.Millisecond)
	defer watcher.Close()

	results, err := extractor.ExtractAll(func(name string, data []byte) error {
		return writeEntryFile(outDir, name, data)
	}, opts, watcher.Stopped)
	if err != nil {
		return fmt.Errorf("extracting %s: %w", metaPath, err)
	}

	skipped := 0
	for _, r := range results {
		if r.Skipped {
			skipped++
		}
	}
	logger.Info("extract complete", "entries", len(results), "skipped", skipped, "outdir", outDir)

	return nil
}
