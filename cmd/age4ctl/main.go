// Command age4ctl decodes AGE-engine archives, images, and scripts: extract
// entries out of an ALF archive set, decode an AGF image to PNG, disassemble
// a BIN script, or crop a map-icon sprite sheet.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
