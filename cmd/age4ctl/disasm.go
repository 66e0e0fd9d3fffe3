package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ageformats/age4fmt/bin"
	"github.com/ageformats/age4fmt/format"
	"github.com/ageformats/age4fmt/persist"
	"github.com/spf13/cobra"
)

var disasmCmd = &cobra.Command{
	Use:   "disasm <file.bin> [outdir]",
	Short: "Disassemble a BIN script and persist it plus its strings table",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runDisasm,
}

func runDisasm(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	inPath := args[0]
	outDir := inPath + ".out"
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

	base := filepath.Base(inPath)
	recordPath := filepath.Join(outDir, base+".record")
	tsvPath := filepath.Join(outDir, base+".strings.tsv")

	if !flagForce && fileExists(recordPath) && fileExists(tsvPath) {
		logger.Info("outputs exist, skipping (use --force to overwrite)", "record", recordPath, "strings", tsvPath)
		return nil
	}

	f, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer f.Close()

	prog, err := bin.Disassemble(f)
	if err != nil {
		return fmt.Errorf("disassembling %s: %w", inPath, err)
	}

	recordFile, err := os.Create(recordPath)
	if err != nil {
		return err
	}
	defer recordFile.Close()
	stats, err := persist.WriteRecord(recordFile, prog, format.CompressionZstd)
	if err != nil {
		return fmt.Errorf("writing record %s: %w", recordPath, err)
	}

	tsvFile, err := os.Create(tsvPath)
	if err != nil {
		return err
	}
	defer tsvFile.Close()
	if err := persist.WriteStringsTSV(tsvFile, prog); err != nil {
		return fmt.Errorf("writing strings table %s: %w", tsvPath, err)
	}

	logger.Info("disasm complete", "in", inPath, "instructions", len(prog.Instructions), "record", recordPath, "strings", tsvPath,
		"original_bytes", stats.OriginalSize, "compressed_bytes", stats.CompressedSize,
		"compression_ratio", stats.Ratio, "space_savings_pct", stats.SpaceSavings())

	return nil
}
