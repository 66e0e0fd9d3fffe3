package section

import "github.com/ageformats/age4fmt/internal/ageerr"

func newShortReadf(format string, args ...any) error {
	return ageerr.New(ageerr.ShortRead, format, args...)
}

func newPaletteMisalignedf(format string, args ...any) error {
	return ageerr.New(ageerr.PaletteMisaligned, format, args...)
}
