// Package bin disassembles AGE engine BIN scripts: a fixed header followed
// by a sequence of opcode/argument instructions, with strings and small
// arrays interleaved in the same data region and referenced by word offset.
package bin

// opcodeInfo describes one opcode's disassembly shape: its mnemonic and how
// many arguments follow it.
type opcodeInfo struct {
	mnemonic string
	arity    int
}

// opcodeTable maps every known opcode to its mnemonic and arity. An opcode
// absent from this table is a hard UnknownOpcode error; this table is the
// sole source of truth for arity, reproduced bit-for-bit from the original
// disassembler's instruction definition list.
var opcodeTable = map[uint32]opcodeInfo{
	0x1: {mnemonic: "u004149C0", arity: 0},
	0x2: {mnemonic: "exit", arity: 0},
	0x3: {mnemonic: "call-script", arity: 1},
	0x4: {mnemonic: "u00417E30", arity: 2},
	0x5: {mnemonic: "ret", arity: 0},
	0x6: {mnemonic: "u00417E80", arity: 2},
	0x7: {mnemonic: "u00417F90", arity: 1},
	0x8: {mnemonic: "u00417FC0", arity: 1},
	0x9: {mnemonic: "exit-script", arity: 0},
	0xA: {mnemonic: "u00424170", arity: 2},
	0xB: {mnemonic: "u00418090", arity: 11},
	0xC: {mnemonic: "u004149E0", arity: 0},
	0xD: {mnemonic: "u004181A0", arity: 4},
	0xE: {mnemonic: "u00418200", arity: 12},
	0xF: {mnemonic: "u00418300", arity: 1},
	0x10: {mnemonic: "u00414A00", arity: 4},
	0x11: {mnemonic: "u00418330", arity: 9},
	0x12: {mnemonic: "u004183F0", arity: 1},
	0x13: {mnemonic: "u00418420", arity: 4},
	0x14: {mnemonic: "u00414A20", arity: 0},
	0x15: {mnemonic: "u00418490", arity: 5},
	0x16: {mnemonic: "u00418520", arity: 2},
	0x17: {mnemonic: "u00418560", arity: 2},
	0x1E: {mnemonic: "u004185B0", arity: 8},
	0x1F: {mnemonic: "u00418690", arity: 12},
	0x20: {mnemonic: "u004187C0", arity: 6},
	0x21: {mnemonic: "u00418860", arity: 2},
	0x22: {mnemonic: "u00418920", arity: 2},
	0x23: {mnemonic: "u004189D0", arity: 2},
	0x24: {mnemonic: "u00418A90", arity: 2},
	0x25: {mnemonic: "u00418B40", arity: 3},
	0x26: {mnemonic: "u00418C00", arity: 4},
	0x27: {mnemonic: "u00418CC0", arity: 4},
	0x28: {mnemonic: "u00418D90", arity: 4},
	0x2A: {mnemonic: "u00418E60", arity: 4},
	0x2B: {mnemonic: "u00418F30", arity: 5},
	0x2C: {mnemonic: "u00419010", arity: 5},
	0x2D: {mnemonic: "u004190A0", arity: 12},
	0x2E: {mnemonic: "u004194B0", arity: 5},
	0x2F: {mnemonic: "u004195A0", arity: 4},
	0x30: {mnemonic: "u00419670", arity: 5},
	0x31: {mnemonic: "u00419750", arity: 4},
	0x32: {mnemonic: "u004197C0", arity: 10},
	0x33: {mnemonic: "u00419900", arity: 6},
	0x34: {mnemonic: "u004199C0", arity: 12},
	0x35: {mnemonic: "u00419AF0", arity: 11},
	0x36: {mnemonic: "u00419C00", arity: 3},
	0x37: {mnemonic: "u00419C90", arity: 11},
	0x38: {mnemonic: "u00419DA0", arity: 12},
	0x50: {mnemonic: "add", arity: 3},
	0x51: {mnemonic: "sub", arity: 3},
	0x52: {mnemonic: "mul", arity: 3},
	0x53: {mnemonic: "div", arity: 3},
	0x54: {mnemonic: "mod", arity: 3},
	0x55: {mnemonic: "mov", arity: 2},
	0x56: {mnemonic: "and", arity: 3},
	0x57: {mnemonic: "or", arity: 3},
	0x58: {mnemonic: "sar", arity: 3},
	0x59: {mnemonic: "shl", arity: 3},
	0x5A: {mnemonic: "eq", arity: 3},
	0x5B: {mnemonic: "ne", arity: 3},
	0x5C: {mnemonic: "lt", arity: 3},
	0x5D: {mnemonic: "lte", arity: 3},
	0x5E: {mnemonic: "gr", arity: 3},
	0x5F: {mnemonic: "gre", arity: 3},
	0x60: {mnemonic: "u0041A270", arity: 2},
	0x61: {mnemonic: "lookup-array", arity: 3},
	0x62: {mnemonic: "u0041A360", arity: 3},
	0x63: {mnemonic: "u00414A60", arity: 2},
	0x64: {mnemonic: "copy-local-array", arity: 2},
	0x65: {mnemonic: "u00414AA0", arity: 2},
	0x66: {mnemonic: "u00414AE0", arity: 3},
	0x67: {mnemonic: "u00414B20", arity: 3},
	0x68: {mnemonic: "u00414B60", arity: 3},
	0x69: {mnemonic: "u00414BA0", arity: 3},
	0x6A: {mnemonic: "u00414BE0", arity: 3},
	0x6B: {mnemonic: "u00414C20", arity: 3},
	0x6C: {mnemonic: "copy-to-global", arity: 2},
	0x6D: {mnemonic: "u00416960", arity: 0},
	0x6E: {mnemonic: "show-text", arity: 2},
	0x6F: {mnemonic: "end-text-line", arity: 1},
	0x70: {mnemonic: "u0041A750", arity: 5},
	0x71: {mnemonic: "u0041A7B0", arity: 1},
	0x72: {mnemonic: "wait-for-input", arity: 1},
	0x73: {mnemonic: "u0041AB30", arity: 10},
	0x74: {mnemonic: "u0041AC00", arity: 1},
	0x75: {mnemonic: "u0041AC30", arity: 1},
	0x76: {mnemonic: "u0041AC60", arity: 1},
	0x77: {mnemonic: "u0041ACB0", arity: 1},
	0x78: {mnemonic: "u0041AD00", arity: 1},
	0x79: {mnemonic: "u0041AD30", arity: 3},
	0x7A: {mnemonic: "u0041AD70", arity: 3},
	0x7B: {mnemonic: "u0041ADB0", arity: 2},
	0x7C: {mnemonic: "u00416A90", arity: 0},
	0x7D: {mnemonic: "u0041AE00", arity: 2},
	0x7E: {mnemonic: "u0041AEA0", arity: 1},
	0x7F: {mnemonic: "u00414C60", arity: 1},
	0x80: {mnemonic: "u0041AF00", arity: 1},
	0x81: {mnemonic: "u0041AF30", arity: 1},
	0x82: {mnemonic: "u0041AF80", arity: 5},
	0x83: {mnemonic: "u00414C90", arity: 3},
	0x84: {mnemonic: "u0041AFE0", arity: 1},
	0x85: {mnemonic: "u00414CF0", arity: 0},
	0x86: {mnemonic: "u0041B210", arity: 1},
	0x87: {mnemonic: "u00414D10", arity: 0},
	0x88: {mnemonic: "u0041B290", arity: 1},
	0x89: {mnemonic: "u0041B2E0", arity: 4},
	0x8A: {mnemonic: "u0041B330", arity: 6},
	0x8B: {mnemonic: "u0041B3D0", arity: 1},
	0x8C: {mnemonic: "jmp", arity: 1},
	0x8D: {mnemonic: "u0041BCE0", arity: 2},
	0x8E: {mnemonic: "u0041BD60", arity: 1},
	0x8F: {mnemonic: "call", arity: 1},
	0x90: {mnemonic: "u0041BEB0", arity: 7},
	0x91: {mnemonic: "u0041BFB0", arity: 1},
	0x92: {mnemonic: "u0041C030", arity: 2},
	0x93: {mnemonic: "u00415040", arity: 0},
	0x94: {mnemonic: "u00415090", arity: 0},
	0x95: {mnemonic: "u0041C0C0", arity: 2},
	0x96: {mnemonic: "u004150C0", arity: 0},
	0x97: {mnemonic: "u0041C150", arity: 5},
	0xA0: {mnemonic: "jcc", arity: 3},
	0xA1: {mnemonic: "u00427C00", arity: 0},
	0xA2: {mnemonic: "u00427FD0", arity: 2},
	0xA3: {mnemonic: "u004244D0", arity: 2},
	0xAA: {mnemonic: "u0041C270", arity: 2},
	0xAB: {mnemonic: "u0041C330", arity: 2},
	0xAC: {mnemonic: "u0041C3E0", arity: 9},
	0xAD: {mnemonic: "u00415110", arity: 0},
	0xAE: {mnemonic: "u00415130", arity: 0},
	0xAF: {mnemonic: "u00415480", arity: 0},
	0xB0: {mnemonic: "u0041C530", arity: 1},
	0xB1: {mnemonic: "u0041C560", arity: 1},
	0xB2: {mnemonic: "u0041C590", arity: 2},
	0xB3: {mnemonic: "u004154B0", arity: 0},
	0xB4: {mnemonic: "play-sound-effect", arity: 2},
	0xB5: {mnemonic: "u0041D050", arity: 1},
	0xB6: {mnemonic: "u0041D080", arity: 1},
	0xB7: {mnemonic: "u0041D0E0", arity: 1},
	0xB8: {mnemonic: "u00415520", arity: 0},
	0xB9: {mnemonic: "u0041D140", arity: 1},
	0xBA: {mnemonic: "u0041D0B0", arity: 1},
	0xBB: {mnemonic: "u0041D250", arity: 1},
	0xBC: {mnemonic: "u0041D280", arity: 1},
	0xBD: {mnemonic: "u00415570", arity: 1},
	0xBE: {mnemonic: "u004155E0", arity: 1},
	0xBF: {mnemonic: "play-bgm", arity: 1},
	0xC0: {mnemonic: "u00415620", arity: 1},
	0xC1: {mnemonic: "u00415650", arity: 0},
	0xC2: {mnemonic: "u0041D2B0", arity: 2},
	0xC3: {mnemonic: "u0041D390", arity: 1},
	0xC4: {mnemonic: "play-voice", arity: 1},
	0xC5: {mnemonic: "u0041D4A0", arity: 2},
	0xC6: {mnemonic: "u0041D5D0", arity: 2},
	0xC7: {mnemonic: "u0041D760", arity: 2},
	0xC8: {mnemonic: "sleep", arity: 1},
	0xC9: {mnemonic: "u00415770", arity: 0},
	0xCA: {mnemonic: "u004157A0", arity: 0},
	0xCB: {mnemonic: "u00415800", arity: 1},
	0xCC: {mnemonic: "mouse_callback", arity: 2},
	0xCD: {mnemonic: "get-input-type", arity: 0},
	0xCE: {mnemonic: "u0041E0B0", arity: 3},
	0xCF: {mnemonic: "u00416D40", arity: 0},
	0xD0: {mnemonic: "u00415830", arity: 1},
	0xD1: {mnemonic: "u00415860", arity: 0},
	0xD2: {mnemonic: "u0041E110", arity: 1},
	0xD3: {mnemonic: "u00425960", arity: 0},
	0xD4: {mnemonic: "u004266F0", arity: 4},
	0xD5: {mnemonic: "u004262C0", arity: 1},
	0xD6: {mnemonic: "u004267D0", arity: 6},
	0xD7: {mnemonic: "u0041E1A0", arity: 1},
	0xD8: {mnemonic: "u0041E150", arity: 2},
	0xD9: {mnemonic: "u00415880", arity: 0},
	0xDA: {mnemonic: "u004158B0", arity: 6},
	0xFA: {mnemonic: "u00415940", arity: 0},
	0xFB: {mnemonic: "joy_callback", arity: 2},
	0xFC: {mnemonic: "u004159F0", arity: 0},
	0xFD: {mnemonic: "u0041E2D0", arity: 2},
	0xFE: {mnemonic: "u0041E360", arity: 1},
	0xFF: {mnemonic: "u00415A10", arity: 0},
	0x100: {mnemonic: "u00415A60", arity: 0},
	0x101: {mnemonic: "u00415BF0", arity: 0},
	0x102: {mnemonic: "u0041E3C0", arity: 3},
	0x103: {mnemonic: "u0041E4A0", arity: 1},
	0x104: {mnemonic: "u00415C50", arity: 0},
	0x105: {mnemonic: "u0041E4D0", arity: 1},
	0x106: {mnemonic: "u00415E40", arity: 1},
	0x107: {mnemonic: "u0041E500", arity: 2},
	0x108: {mnemonic: "u00415E70", arity: 1},
	0x109: {mnemonic: "u00415EC0", arity: 2},
	0x10A: {mnemonic: "u0041E540", arity: 2},
	0x10B: {mnemonic: "u0041E5A0", arity: 2},
	0x10C: {mnemonic: "u0041E5E0", arity: 2},
	0x10D: {mnemonic: "u00415F10", arity: 1},
	0x10E: {mnemonic: "u0041E650", arity: 2},
	0x10F: {mnemonic: "u0041E690", arity: 1},
	0x12C: {mnemonic: "lookup-array-2d", arity: 5},
	0x12D: {mnemonic: "u0041E720", arity: 7},
	0x12E: {mnemonic: "u0041E940", arity: 8},
	0x12F: {mnemonic: "u0041ECB0", arity: 4},
	0x130: {mnemonic: "u00415F40", arity: 1},
	0x131: {mnemonic: "u00415F70", arity: 1},
	0x132: {mnemonic: "u0041EF00", arity: 1},
	0x133: {mnemonic: "u0041EFF0", arity: 2},
	0x134: {mnemonic: "u0041F050", arity: 3},
	0x135: {mnemonic: "bit-set", arity: 2},
	0x136: {mnemonic: "bit-reset", arity: 2},
	0x137: {mnemonic: "u0041F1C0", arity: 1},
	0x138: {mnemonic: "u0041F2B0", arity: 2},
	0x139: {mnemonic: "u0041F310", arity: 3},
	0x13A: {mnemonic: "u0041F3A0", arity: 6},
	0x13B: {mnemonic: "u0041F440", arity: 7},
	0x13C: {mnemonic: "u0041F7E0", arity: 1},
	0x13D: {mnemonic: "u0041F840", arity: 3},
	0x13E: {mnemonic: "u0041F8D0", arity: 2},
	0x13F: {mnemonic: "check-bit", arity: 3},
	0x140: {mnemonic: "u0041F9C0", arity: 4},
	0x141: {mnemonic: "u0041FAA0", arity: 1},
	0x142: {mnemonic: "u0041FB10", arity: 1},
	0x143: {mnemonic: "u00415FB0", arity: 0},
	0x144: {mnemonic: "u004259D0", arity: 2},
	0x145: {mnemonic: "u00416040", arity: 1},
	0x146: {mnemonic: "u0041FB40", arity: 1},
	0x147: {mnemonic: "u0041FB80", arity: 6},
	0x148: {mnemonic: "u004160A0", arity: 1},
	0x149: {mnemonic: "u0041FCE0", arity: 1},
	0x14A: {mnemonic: "u0041FD10", arity: 7},
	0x14B: {mnemonic: "u0041FF50", arity: 1},
	0x14C: {mnemonic: "set-agerc-export", arity: 2},
	0x14D: {mnemonic: "call-agerc-export", arity: 6},
	0x190: {mnemonic: "u0041C5E0", arity: 2},
	0x191: {mnemonic: "u0041A4A0", arity: 2},
	0x192: {mnemonic: "set-string", arity: 2},
	0x193: {mnemonic: "concat", arity: 3},
	0x194: {mnemonic: "u00425480", arity: 3},
	0x195: {mnemonic: "u00425580", arity: 3},
	0x196: {mnemonic: "display-furigana", arity: 3},
	0x197: {mnemonic: "u0041B510", arity: 1},
	0x198: {mnemonic: "u0041B540", arity: 3},
	0x199: {mnemonic: "u00414D50", arity: 0},
	0x19A: {mnemonic: "u00414E50", arity: 1},
	0x19B: {mnemonic: "u00414E80", arity: 0},
	0x19C: {mnemonic: "u00414EC0", arity: 0},
	0x19D: {mnemonic: "u0041C680", arity: 2},
	0x19E: {mnemonic: "u0041C6E0", arity: 2},
	0x19F: {mnemonic: "u0041C860", arity: 2},
	0x1A0: {mnemonic: "u0041C9B0", arity: 9},
	0x1A1: {mnemonic: "u0041CB40", arity: 2},
	0x1A2: {mnemonic: "u00428010", arity: 1},
	0x1A3: {mnemonic: "string-lookup-set", arity: 1},
	0x1A4: {mnemonic: "u0041B580", arity: 2},
	0x1A5: {mnemonic: "set-font", arity: 1},
	0x1A6: {mnemonic: "halve-strlen", arity: 2},
	0x1A7: {mnemonic: "comment", arity: 1},
	0x1A8: {mnemonic: "dev_ukn", arity: 0},
	0x1A9: {mnemonic: "u00428090", arity: 1},
	0x1AA: {mnemonic: "u00425920", arity: 1},
	0x1AB: {mnemonic: "u0041CCA0", arity: 2},
	0x1AC: {mnemonic: "u0041CD80", arity: 3},
	0x1AD: {mnemonic: "u004154F0", arity: 0},
	0x1AE: {mnemonic: "u0041CED0", arity: 3},
	0x1AF: {mnemonic: "u004245C0", arity: 3},
	0x1B0: {mnemonic: "u0041A510", arity: 3},
	0x1B1: {mnemonic: "u0041B5C0", arity: 1},
	0x1B2: {mnemonic: "u00425790", arity: 1},
	0x1B3: {mnemonic: "u004257D0", arity: 0},
	0x1B4: {mnemonic: "u004237C0", arity: 0},
	0x1B5: {mnemonic: "u0041B5F0", arity: 1},
	0x1B6: {mnemonic: "u00414F60", arity: 1},
	0x1B7: {mnemonic: "u0041B640", arity: 1},
	0x1B8: {mnemonic: "u0041B670", arity: 2},
	0x1B9: {mnemonic: "u0041B710", arity: 2},
	0x1BA: {mnemonic: "u0041D850", arity: 2},
	0x1BB: {mnemonic: "u0041B7B0", arity: 1},
	0x1BC: {mnemonic: "u00415670", arity: 0},
	0x1BD: {mnemonic: "u0041D910", arity: 1},
	0x1BE: {mnemonic: "u0041D9D0", arity: 2},
	0x1BF: {mnemonic: "u004156C0", arity: 0},
	0x1C0: {mnemonic: "u0041DB70", arity: 1},
	0x1C1: {mnemonic: "u0041B820", arity: 3},
	0x1C2: {mnemonic: "u0041B860", arity: 2},
	0x1C3: {mnemonic: "u0041B8A0", arity: 2},
	0x1C4: {mnemonic: "u00415720", arity: 1},
	0x1C5: {mnemonic: "u00425800", arity: 4},
	0x1C6: {mnemonic: "u0041DD80", arity: 2},
	0x1C7: {mnemonic: "u00414F90", arity: 1},
	0x1C8: {mnemonic: "toString", arity: 2},
	0x1C9: {mnemonic: "u0041B8E0", arity: 3},
	0x1CA: {mnemonic: "u0041B9B0", arity: 1},
	0x1CB: {mnemonic: "u00414FD0", arity: 1},
	0x1CC: {mnemonic: "u00415010", arity: 1},
	0x1CD: {mnemonic: "u0041A560", arity: 2},
	0x1CE: {mnemonic: "u0041B9F0", arity: 1},
	0x1CF: {mnemonic: "u0041DA10", arity: 1},
	0x1D0: {mnemonic: "u0041BA80", arity: 3},
	0x1D1: {mnemonic: "u0041BAE0", arity: 5},
	0x1D2: {mnemonic: "u0041BB40", arity: 2},
	0x1D3: {mnemonic: "u0041BB90", arity: 5},
	0x1D4: {mnemonic: "u0041BC00", arity: 4},
	0x1D5: {mnemonic: "u00415700", arity: 0},
	0x1D6: {mnemonic: "u0041DA40", arity: 2},
	0x1D7: {mnemonic: "u0041DA80", arity: 2},
	0x1D8: {mnemonic: "u0041DAD0", arity: 3},
	0x1D9: {mnemonic: "u0041DB20", arity: 2},
	0x1F4: {mnemonic: "u004160D0", arity: 0},
	0x1F5: {mnemonic: "u00416120", arity: 0},
	0x1F6: {mnemonic: "u00416170", arity: 0},
	0x1F7: {mnemonic: "u00420270", arity: 2},
	0x1F8: {mnemonic: "create-texture", arity: 4},
	0x1F9: {mnemonic: "set-texture", arity: 3},
	0x1FA: {mnemonic: "u00420480", arity: 1},
	0x1FB: {mnemonic: "draw-texture", arity: 8},
	0x1FC: {mnemonic: "u004205F0", arity: 1},
	0x1FD: {mnemonic: "u00420620", arity: 4},
	0x1FE: {mnemonic: "u004206C0", arity: 5},
	0x1FF: {mnemonic: "u00420770", arity: 4},
	0x200: {mnemonic: "u00420800", arity: 1},
	0x201: {mnemonic: "u00416190", arity: 1},
	0x202: {mnemonic: "u00420880", arity: 5},
	0x203: {mnemonic: "u00420950", arity: 4},
	0x204: {mnemonic: "draw-string", arity: 4},
	0x205: {mnemonic: "u00420A60", arity: 6},
	0x206: {mnemonic: "u004161C0", arity: 7},
	0x207: {mnemonic: "u00420B00", arity: 8},
	0x208: {mnemonic: "u00420BF0", arity: 3},
	0x209: {mnemonic: "u00420C50", arity: 5},
	0x20A: {mnemonic: "u00420CE0", arity: 1},
	0x20B: {mnemonic: "u00420D50", arity: 7},
	0x20C: {mnemonic: "u00416200", arity: 0},
	0x20D: {mnemonic: "u00420E10", arity: 1},
	0x20E: {mnemonic: "u00416250", arity: 0},
	0x20F: {mnemonic: "u00420E40", arity: 3},
	0x210: {mnemonic: "u00420FF0", arity: 1},
	0x211: {mnemonic: "u00421060", arity: 1},
	0x212: {mnemonic: "u00421090", arity: 2},
	0x213: {mnemonic: "u004210D0", arity: 3},
	0x214: {mnemonic: "u00421120", arity: 2},
	0x215: {mnemonic: "u00421160", arity: 2},
	0x216: {mnemonic: "u004211A0", arity: 2},
	0x217: {mnemonic: "u004211E0", arity: 4},
	0x218: {mnemonic: "u00421270", arity: 4},
	0x219: {mnemonic: "u004212E0", arity: 4},
	0x21A: {mnemonic: "u00421370", arity: 4},
	0x21B: {mnemonic: "u004213E0", arity: 1},
	0x21C: {mnemonic: "u00416270", arity: 0},
	0x21D: {mnemonic: "u00421410", arity: 2},
	0x21E: {mnemonic: "u00421450", arity: 6},
	0x21F: {mnemonic: "u00421510", arity: 7},
	0x220: {mnemonic: "u004215D0", arity: 6},
	0x221: {mnemonic: "u00421670", arity: 4},
	0x222: {mnemonic: "u004216C0", arity: 2},
	0x223: {mnemonic: "u00421700", arity: 8},
	0x224: {mnemonic: "u00416290", arity: 0},
	0x225: {mnemonic: "u00421780", arity: 2},
	0x226: {mnemonic: "u004217D0", arity: 5},
	0x227: {mnemonic: "u00421880", arity: 6},
	0x228: {mnemonic: "u00421940", arity: 5},
	0x229: {mnemonic: "u004219E0", arity: 5},
	0x22A: {mnemonic: "u00421A90", arity: 3},
	0x22B: {mnemonic: "u00421B30", arity: 4},
	0x22C: {mnemonic: "u00421BD0", arity: 3},
	0x22D: {mnemonic: "u00421C60", arity: 5},
	0x22E: {mnemonic: "u00421D10", arity: 6},
	0x22F: {mnemonic: "u00421DD0", arity: 5},
	0x230: {mnemonic: "u00421E70", arity: 1},
	0x231: {mnemonic: "u00421EA0", arity: 4},
	0x232: {mnemonic: "u00421EF0", arity: 4},
	0x233: {mnemonic: "u00421FB0", arity: 5},
	0x234: {mnemonic: "u00422060", arity: 5},
	0x235: {mnemonic: "u00422100", arity: 5},
	0x236: {mnemonic: "u004221A0", arity: 4},
	0x237: {mnemonic: "u00422350", arity: 2},
	0x238: {mnemonic: "u00422390", arity: 1},
	0x239: {mnemonic: "u004223C0", arity: 6},
	0x23A: {mnemonic: "u00422420", arity: 2},
	0x23B: {mnemonic: "u00422460", arity: 7},
	0x23C: {mnemonic: "u004162B0", arity: 0},
	0x23D: {mnemonic: "u004162F0", arity: 0},
	0x23E: {mnemonic: "u004228C0", arity: 2},
	0x23F: {mnemonic: "u00422930", arity: 2},
	0x240: {mnemonic: "u004229A0", arity: 4},
	0x241: {mnemonic: "u00422B80", arity: 5},
	0x242: {mnemonic: "u00422D60", arity: 2},
	0x243: {mnemonic: "u00417070", arity: 0},
	0x244: {mnemonic: "u00416360", arity: 0},
	0x245: {mnemonic: "u00422DA0", arity: 2},
	0x246: {mnemonic: "u00422E10", arity: 2},
	0x247: {mnemonic: "u00416390", arity: 1},
	0x248: {mnemonic: "u00422E80", arity: 1},
	0x249: {mnemonic: "u00422EB0", arity: 3},
	0x24A: {mnemonic: "u004163C0", arity: 3},
	0x24D: {mnemonic: "u00422E90", arity: 12},
	0x24E: {mnemonic: "u00422EA0", arity: 1},
	0x24F: {mnemonic: "u00422ED0", arity: 10},
	0x250: {mnemonic: "u00422F60", arity: 10},
	0x251: {mnemonic: "u00422FF0", arity: 12},
	0x252: {mnemonic: "u00423000", arity: 1},
	0x253: {mnemonic: "u00423019", arity: 2},
	0x254: {mnemonic: "u00423049", arity: 5},
	0x256: {mnemonic: "u00423050", arity: 5},
	0x257: {mnemonic: "257", arity: 5},
	0x258: {mnemonic: "u00422FE0", arity: 2},
	0x259: {mnemonic: "u00416410", arity: 0},
	0x25A: {mnemonic: "u00423120", arity: 1},
	0x25B: {mnemonic: "25B", arity: 1},
	0x25C: {mnemonic: "u00423122", arity: 8},
	0x25D: {mnemonic: "u00423123", arity: 3},
	0x25E: {mnemonic: "u00423124", arity: 5},
	0x25F: {mnemonic: "u00423125", arity: 4},
	0x260: {mnemonic: "u00423126", arity: 4},
	0x261: {mnemonic: "u00423127", arity: 1},
	0x262: {mnemonic: "262", arity: 1},
	0x263: {mnemonic: "263", arity: 1},
	0x2BC: {mnemonic: "u00423020", arity: 11},
	0x2BD: {mnemonic: "u00423100", arity: 1},
	0x2BE: {mnemonic: "u00423140", arity: 1},
	0x2BF: {mnemonic: "u00423180", arity: 3},
	0x2C0: {mnemonic: "u004231C0", arity: 3},
	0x2C1: {mnemonic: "u00425BC0", arity: 1},
	0x2C2: {mnemonic: "u00425CD0", arity: 6},
	0x2C3: {mnemonic: "u00423200", arity: 2},
	0x2C4: {mnemonic: "u00416450", arity: 0},
	0x2C5: {mnemonic: "strlen", arity: 2},
	0x2C6: {mnemonic: "u0042B5E0", arity: 2},
	0x2C7: {mnemonic: "u0042B5F0", arity: 4},
	0x2C8: {mnemonic: "u0042B610", arity: 4},
	0x2C9: {mnemonic: "2C9", arity: 3},
	0x2CC: {mnemonic: "2CC", arity: 1},
	0x2CD: {mnemonic: "2CD", arity: 1},
	0x2CE: {mnemonic: "u0042B616", arity: 1},
	0x2CF: {mnemonic: "u0042B617", arity: 1},
	0x2D0: {mnemonic: "u0042B940", arity: 3},
	0x2D1: {mnemonic: "u0042B950", arity: 3},
	0x2D2: {mnemonic: "u0042B960", arity: 3},
	0x2D3: {mnemonic: "u0042B970", arity: 3},
	0x2D5: {mnemonic: "u0042B990", arity: 2},
	0x2D7: {mnemonic: "u0042B9B0", arity: 2},
	0x2D8: {mnemonic: "set-array-to", arity: 3},
	0x2D9: {mnemonic: "u0042BA30", arity: 2},
	0x2DA: {mnemonic: "u004234E0", arity: 8},
	0x2DB: {mnemonic: "u004235C0", arity: 1},
	0x2DC: {mnemonic: "u0042BA80", arity: 1},
	0x2DD: {mnemonic: "u0042D880", arity: 2},
	0x2DE: {mnemonic: "u0042BAC0", arity: 2},
	0x2DF: {mnemonic: "u0042BAC1", arity: 3},
	0x2E0: {mnemonic: "u0042CE0F", arity: 3},
	0x2E1: {mnemonic: "u0042CE10", arity: 3},
	0x2E2: {mnemonic: "u0042CE11", arity: 3},
	0x2E3: {mnemonic: "u0042CE30", arity: 3},
	0x2E4: {mnemonic: "u0042CE31", arity: 3},
	0x2E5: {mnemonic: "u0042CE50", arity: 1},
	0x2E6: {mnemonic: "u0042CE60", arity: 2},
	0x2E7: {mnemonic: "u0042CE70", arity: 2},
	0x2E8: {mnemonic: "u0042CE80", arity: 1},
	0x2E9: {mnemonic: "u0042CE90", arity: 1},
	0x2EA: {mnemonic: "u0042CEA0", arity: 1},
	0x2EB: {mnemonic: "u0042CEB0", arity: 1},
	0x2EC: {mnemonic: "u0042CEC0", arity: 2},
	0x2EE: {mnemonic: "u0042CEC2", arity: 1},
	0x2EF: {mnemonic: "u0042CEC3", arity: 11},
	0x2F0: {mnemonic: "u0042CEC4", arity: 9},
	0x2F1: {mnemonic: "u0042CEC5", arity: 7},
	0x2F2: {mnemonic: "u0042CEC6", arity: 6},
	0x2F3: {mnemonic: "2F3", arity: 6},
	0x2F4: {mnemonic: "2F4", arity: 3},
	0x2F5: {mnemonic: "2F5", arity: 4},
	0x2F6: {mnemonic: "2F6", arity: 1},
	0x2F7: {mnemonic: "2F7", arity: 1},
	0x2F8: {mnemonic: "2F8", arity: 2},
	0x2F9: {mnemonic: "2F9", arity: 7},
	0x2FA: {mnemonic: "2FA", arity: 1},
	0x2FB: {mnemonic: "2FB", arity: 1},
	0x2FC: {mnemonic: "2FC", arity: 5},
	0x2FD: {mnemonic: "2FD", arity: 6},
	0x2FE: {mnemonic: "2FE", arity: 1},
	0x2FF: {mnemonic: "2FF", arity: 2},
	0x300: {mnemonic: "300", arity: 3},
	0x301: {mnemonic: "301", arity: 1},
	0x302: {mnemonic: "302", arity: 2},
	0x303: {mnemonic: "303", arity: 3},
	0x304: {mnemonic: "304", arity: 0},
	0x305: {mnemonic: "305", arity: 0},
	0x306: {mnemonic: "306", arity: 1},
	0x307: {mnemonic: "307", arity: 1},
	0x308: {mnemonic: "308", arity: 1},
	0x30A: {mnemonic: "30A", arity: 2},
	0x30C: {mnemonic: "30C", arity: 1},
	0x320: {mnemonic: "u0043AA20", arity: 10},
	0x321: {mnemonic: "u0043AA30", arity: 3},
	0x322: {mnemonic: "u0043AA40", arity: 4},
	0x323: {mnemonic: "u0043AA50", arity: 5},
	0x324: {mnemonic: "u0043AA60", arity: 0},
	0x325: {mnemonic: "u0043AA70", arity: 2},
	0x326: {mnemonic: "u0043AA80", arity: 4},
	0x327: {mnemonic: "u0043AA90", arity: 1},
	0x328: {mnemonic: "u0043AAA0", arity: 3},
	0x329: {mnemonic: "u0043AAB0", arity: 2},
	0x32A: {mnemonic: "32A", arity: 1},
	0x32B: {mnemonic: "u0043AAD0", arity: 0},
	0x32C: {mnemonic: "u0043AAE0", arity: 6},
	0x32D: {mnemonic: "u0043AAF0", arity: 2},
	0x32E: {mnemonic: "u0043AB10", arity: 11},
	0x32F: {mnemonic: "u0043AB11", arity: 1},
	0x330: {mnemonic: "u0043AB12", arity: 2},
	0x332: {mnemonic: "u0043AB14", arity: 4},
	0x334: {mnemonic: "u0043AB16", arity: 1},
	0x335: {mnemonic: "u0043AB17", arity: 4},
	0x337: {mnemonic: "u0043AB19", arity: 4},
	0x33B: {mnemonic: "u0043AB1D", arity: 4},
	0x33D: {mnemonic: "u0043AB1E", arity: 3},
	0x33E: {mnemonic: "u0043AB1F", arity: 5},
	0x33F: {mnemonic: "u0043AB20", arity: 3},
	0x340: {mnemonic: "340", arity: 1},
	0x341: {mnemonic: "341", arity: 2},
	0x342: {mnemonic: "342", arity: 1},
	0x344: {mnemonic: "344", arity: 2},
	0x345: {mnemonic: "345", arity: 3},
	0x349: {mnemonic: "349", arity: 4},
	0x34D: {mnemonic: "34D", arity: 6},
	0x34E: {mnemonic: "34E", arity: 4},
	0x352: {mnemonic: "352", arity: 3},
	0x353: {mnemonic: "353", arity: 2},
	0x354: {mnemonic: "354", arity: 2},
	0x358: {mnemonic: "358", arity: 5},
	0x35A: {mnemonic: "35A", arity: 5},
	0x35B: {mnemonic: "35B", arity: 2},
	0x35C: {mnemonic: "35C", arity: 2},
	0x35D: {mnemonic: "35D", arity: 3},
	0x35F: {mnemonic: "35F", arity: 3},
	0x360: {mnemonic: "360", arity: 3},
	0x361: {mnemonic: "361", arity: 2},
	0x363: {mnemonic: "363", arity: 3},
	0x364: {mnemonic: "364", arity: 3},
	0x384: {mnemonic: "384", arity: 3},
	0x386: {mnemonic: "386", arity: 11},
	0x387: {mnemonic: "387", arity: 8},
	0x388: {mnemonic: "388", arity: 3},
	0x389: {mnemonic: "389", arity: 6},
	0x38F: {mnemonic: "38F", arity: 6},
	0x390: {mnemonic: "390", arity: 7},
	0x391: {mnemonic: "391", arity: 2},
	0x392: {mnemonic: "392", arity: 1},
	0x393: {mnemonic: "393", arity: 6},
	0x396: {mnemonic: "396", arity: 5},
	0x398: {mnemonic: "398", arity: 3},
	0x399: {mnemonic: "399", arity: 7},
	0x39B: {mnemonic: "39B", arity: 5},
}

