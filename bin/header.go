package bin

import "github.com/ageformats/age4fmt/endian"

var le = endian.GetLittleEndianEngine()

// HeaderSize is the fixed size of the file header.
const HeaderSize = 60

// Header is the fixed 60-byte BIN file header: an 8-byte signature followed
// by thirteen little-endian u32 fields, the last six forming three
// (size, offset) table descriptors.
type Header struct {
	Signature     [8]byte
	Int1          uint32
	Float1        uint32
	String1       uint32
	Int2          uint32
	Unknown       uint32
	String2       uint32
	SubHeaderSize uint32
	Table1Size    uint32
	Table1Offset  uint32
	Table2Size    uint32
	Table2Offset  uint32
	Table3Size    uint32
	Table3Offset  uint32
}

func parseHeader(buf []byte) Header {
	var h Header
	copy(h.Signature[:], buf[0:8])
	h.Int1 = le.Uint32(buf[8:12])
	h.Float1 = le.Uint32(buf[12:16])
	h.String1 = le.Uint32(buf[16:20])
	h.Int2 = le.Uint32(buf[20:24])
	h.Unknown = le.Uint32(buf[24:28])
	h.String2 = le.Uint32(buf[28:32])
	h.SubHeaderSize = le.Uint32(buf[32:36])
	h.Table1Size = le.Uint32(buf[36:40])
	h.Table1Offset = le.Uint32(buf[40:44])
	h.Table2Size = le.Uint32(buf[44:48])
	h.Table2Offset = le.Uint32(buf[48:52])
	h.Table3Size = le.Uint32(buf[52:56])
	h.Table3Offset = le.Uint32(buf[56:60])
	return h
}

func (h Header) smallestTableOffset() uint32 {
	m := h.Table1Offset
	if h.Table2Offset < m {
		m = h.Table2Offset
	}
	if h.Table3Offset < m {
		m = h.Table3Offset
	}
	return m
}
