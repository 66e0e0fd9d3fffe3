// Package age4fmt provides convenience wrappers over the per-format
// packages for the most common single-file operations: open a metadata
// container, extract every entry it describes onto local disk, decode one
// AGF image, and disassemble one BIN script.
//
// For anything beyond these common cases — streaming extraction, a custom
// archive source, persisted disassembly records — use the metadata, alf,
// agf, bin, and persist packages directly.
package age4fmt

import (
	"os"
	"path/filepath"

	"github.com/ageformats/age4fmt/agf"
	"github.com/ageformats/age4fmt/alf"
	"github.com/ageformats/age4fmt/bin"
	"github.com/ageformats/age4fmt/metadata"
)

// OpenMetadata parses the SYS4INI.BIN / *.AAI file at path.
func OpenMetadata(path string) (*metadata.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return metadata.Parse(f)
}

// ExtractAllTo extracts every entry named in meta into outDir, resolving
// each referenced archive relative to archiveDir. Files are written
// directly to outDir/entry.Name, creating intermediate directories as
// needed.
func ExtractAllTo(meta *metadata.File, archiveDir, outDir string, opts ...alf.Option) ([]alf.Result, error) {
	extractor := alf.NewExtractor(meta, func(filename string) (alf.Source, error) {
		return os.Open(filepath.Join(archiveDir, filename))
	})
	defer extractor.Close()

	write := func(name string, data []byte) error {
		path := filepath.Join(outDir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}

		return os.WriteFile(path, data, 0o644)
	}

	return extractor.ExtractAll(write, opts, func() bool { return false })
}

// DecodeAGF decodes the AGF image container at path into a Raster.
func DecodeAGF(path string, opts ...agf.Option) (agf.Raster, error) {
	f, err := os.Open(path)
	if err != nil {
		return agf.Raster{}, err
	}
	defer f.Close()

	return agf.Decode(f, opts...)
}

// DisassembleFile disassembles the BIN script at path into a Program.
func DisassembleFile(path string) (*bin.Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return bin.Disassemble(f)
}
