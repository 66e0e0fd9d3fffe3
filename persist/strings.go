package persist

import (
	"fmt"
	"io"
	"strconv"

	"github.com/ageformats/age4fmt/bin"
	"github.com/ageformats/age4fmt/internal/options"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
)

// StringRow is one row of the exported strings table: an instruction's
// string argument, decoded from the game's native CP932 (Shift-JIS)
// encoding, alongside the instruction and argument indices that located it.
type StringRow struct {
	InstructionIndex int
	ArgumentIndex    int
	Length           int    // length of the decoded string, in runes
	QuoteChar        byte   // quote character used to delimit Body below
	Body             string // Body escaped, quotes stripped
	DecodeErr        string // set instead of Body/Length/QuoteChar if CP932 decoding failed
}

// stringsConfig holds CollectStringRows/WriteStringsTSV's optional
// behavior, set via Option values.
type stringsConfig struct {
	encoding encoding.Encoding
}

// Option configures CollectStringRows and WriteStringsTSV.
type Option = options.Option[*stringsConfig]

// DecodeStringsAs overrides the string encoding used to decode inline BIN
// strings. The default, matching the AGE engine's native text encoding, is
// golang.org/x/text/encoding/japanese.ShiftJIS; releases localized into
// other languages may have repacked their scripts with a different
// encoding, which this makes overridable without a fork.
func DecodeStringsAs(enc encoding.Encoding) Option {
	return options.New(func(c *stringsConfig) error {
		c.encoding = enc
		return nil
	})
}

// CollectStringRows walks every instruction argument in prog that resolved
// to an inline string and decodes it from CP932 (or the encoding set via
// DecodeStringsAs). A decode failure is recorded in the row's DecodeErr
// field rather than aborting the walk, so a handful of malformed strings in
// a large program don't lose every other string in it.
func CollectStringRows(prog *bin.Program, opts ...Option) ([]StringRow, error) {
	cfg := stringsConfig{encoding: japanese.ShiftJIS}
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	var rows []StringRow
	decoder := cfg.encoding.NewDecoder()

	for instIdx, inst := range prog.Instructions {
		for argIdx, arg := range inst.Arguments {
			if arg.Resolved.String == nil {
				continue
			}
			raw := []byte(*arg.Resolved.String)
			if len(raw) == 0 {
				continue
			}

			decoded, err := decoder.Bytes(raw)
			if err != nil {
				rows = append(rows, StringRow{
					InstructionIndex: instIdx,
					ArgumentIndex:    argIdx,
					DecodeErr:        fmt.Sprintf("%x: %v", raw, err),
				})
				continue
			}

			quoted := strconv.Quote(string(decoded))
			rows = append(rows, StringRow{
				InstructionIndex: instIdx,
				ArgumentIndex:    argIdx,
				Length:           len([]rune(string(decoded))),
				QuoteChar:        quoted[0],
				Body:             quoted[1 : len(quoted)-1],
			})
		}
	}

	return rows, nil
}

// WriteStringsTSV writes the five-column tab-separated export of prog's
// string arguments: instruction_index, argument_index,
// unicode_string_length, quote_char, escaped_string_body. Rows whose CP932
// decoding failed are written with an empty length/quote/body and the
// error text appended as a sixth column instead. By default, inline strings
// are decoded as CP932 (Shift-JIS); pass DecodeStringsAs to override.
func WriteStringsTSV(w io.Writer, prog *bin.Program, opts ...Option) error {
	if _, err := io.WriteString(w, "instruction_index\targument_index\tunicode_string_length\tquote_char\tescaped_string_body\n"); err != nil {
		return err
	}

	rows, err := CollectStringRows(prog, opts...)
	if err != nil {
		return err
	}

	for _, row := range rows {
		if row.DecodeErr != "" {
			if _, err := fmt.Fprintf(w, "%d\t%d\t\t\t\t%s\n", row.InstructionIndex, row.ArgumentIndex, row.DecodeErr); err != nil {
				return err
			}
			continue
		}

		if _, err := fmt.Fprintf(w, "%d\t%d\t%d\t%c\t%s\n", row.InstructionIndex, row.ArgumentIndex, row.Length, row.QuoteChar, row.Body); err != nil {
			return err
		}
	}

	return nil
}
