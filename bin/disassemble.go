package bin

import (
	"bytes"
	"io"

	"github.com/ageformats/age4fmt/internal/ageerr"
)

// argumentStringType is the argument type tag that marks an inline string
// reference.
const argumentStringType = 2

// copyLocalArrayOpcode is the one opcode whose second argument (index 1)
// is an inline-array reference rather than an ordinary value.
const copyLocalArrayOpcode = 0x64

// ArgResolution tags what, if anything, an argument's raw 4 bytes resolve
// to: nothing, an inline string, or an inline array of u32 words.
type ArgResolution struct {
	String *string
	Array  []uint32
}

// Argument is one instruction argument.
type Argument struct {
	FileOffset uint32
	Type       uint32
	Raw        [4]byte
	Resolved   ArgResolution
}

// Instruction is one decoded opcode and its arguments.
type Instruction struct {
	FileOffset uint32
	Opcode     uint32
	Mnemonic   string
	Arguments  []Argument
}

// Program is a fully-disassembled BIN script.
type Program struct {
	Header       Header
	Instructions []Instruction
}

// Disassemble reads a complete BIN file from r and decodes its header and
// instruction stream.
func Disassemble(r io.ReadSeeker) (*Program, error) {
	var hdrBuf [HeaderSize]byte
	if _, err := io.ReadFull(r, hdrBuf[:]); err != nil {
		return nil, ageerr.New(ageerr.ShortRead, "bin header: %v", err)
	}
	header := parseHeader(hdrBuf[:])

	dataEnd := int64(HeaderSize) + int64(header.smallestTableOffset())*4

	var instructions []Instruction
	for {
		offset, err := r.Seek(0, io.SeekCurrent)
		if err != nil {
			return nil, ageerr.New(ageerr.IoError, "tell: %v", err)
		}
		if offset >= dataEnd {
			break
		}

		var opcodeBuf [4]byte
		if _, err := io.ReadFull(r, opcodeBuf[:]); err != nil {
			return nil, ageerr.New(ageerr.ShortRead, "opcode at offset %d: %v", offset, err)
		}
		opcode := le.Uint32(opcodeBuf[:])

		info, ok := opcodeTable[opcode]
		if !ok {
			return nil, ageerr.New(ageerr.UnknownOpcode, "opcode %#x at offset %d", opcode, offset)
		}

		args, newDataEnd, err := parseArguments(r, opcode, info.arity, dataEnd)
		if err != nil {
			return nil, err
		}
		dataEnd = newDataEnd

		instructions = append(instructions, Instruction{
			FileOffset: uint32(offset),
			Opcode:     opcode,
			Mnemonic:   info.mnemonic,
			Arguments:  args,
		})
	}

	return &Program{Header: header, Instructions: instructions}, nil
}

func parseArguments(r io.ReadSeeker, opcode uint32, arity int, dataEnd int64) ([]Argument, int64, error) {
	args := make([]Argument, 0, arity)

	for i := 0; i < arity; i++ {
		argOffset, err := r.Seek(0, io.SeekCurrent)
		if err != nil {
			return nil, dataEnd, ageerr.New(ageerr.IoError, "tell: %v", err)
		}

		var typeBuf [4]byte
		if _, err := io.ReadFull(r, typeBuf[:]); err != nil {
			return nil, dataEnd, ageerr.New(ageerr.ShortRead, "argument %d type at offset %d: %v", i, argOffset, err)
		}
		argType := le.Uint32(typeBuf[:])

		var raw [4]byte
		if _, err := io.ReadFull(r, raw[:]); err != nil {
			return nil, dataEnd, ageerr.New(ageerr.ShortRead, "argument %d raw data at offset %d: %v", i, argOffset, err)
		}

		if !validArgType(argType) {
			return nil, dataEnd, ageerr.New(ageerr.BadArgType, "argument type %#x at offset %d", argType, argOffset)
		}

		arg := Argument{
			FileOffset: uint32(argOffset),
			Type:       argType,
			Raw:        raw,
		}

		switch {
		case argType == argumentStringType:
			s, newDataEnd, err := resolveInlineString(r, raw, dataEnd)
			if err != nil {
				return nil, dataEnd, err
			}
			dataEnd = newDataEnd
			arg.Resolved.String = &s

		case opcode == copyLocalArrayOpcode && i == 1:
			values, newDataEnd, err := resolveInlineArray(r, raw, dataEnd)
			if err != nil {
				return nil, dataEnd, err
			}
			dataEnd = newDataEnd
			arg.Resolved.Array = values
		}

		args = append(args, arg)
	}

	return args, dataEnd, nil
}

func validArgType(t uint32) bool {
	if t <= 0x0E {
		return true
	}
	return t >= 0x8003 && t <= 0x800B
}

func resolveInlineString(r io.ReadSeeker, raw [4]byte, dataEnd int64) (string, int64, error) {
	stringOffset := int64(HeaderSize) + int64(le.Uint32(raw[:]))*4
	if stringOffset < dataEnd {
		dataEnd = stringOffset
	}

	backup, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return "", dataEnd, ageerr.New(ageerr.IoError, "tell: %v", err)
	}
	if _, err := r.Seek(stringOffset, io.SeekStart); err != nil {
		return "", dataEnd, ageerr.New(ageerr.BadRefOffset, "string reference at %d: %v", stringOffset, err)
	}

	var buf bytes.Buffer
	var b [1]byte
	for {
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return "", dataEnd, ageerr.New(ageerr.BadRefOffset, "unterminated string at offset %d: %v", stringOffset, err)
		}
		if b[0] == 0xFF {
			break
		}
		buf.WriteByte(b[0] ^ 0xFF)
	}

	if _, err := r.Seek(backup, io.SeekStart); err != nil {
		return "", dataEnd, ageerr.New(ageerr.IoError, "seeking back from string: %v", err)
	}

	return buf.String(), dataEnd, nil
}

func resolveInlineArray(r io.ReadSeeker, raw [4]byte, dataEnd int64) ([]uint32, int64, error) {
	arrayOffset := int64(HeaderSize) + int64(le.Uint32(raw[:]))*4
	if arrayOffset < dataEnd {
		dataEnd = arrayOffset
	}

	backup, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, dataEnd, ageerr.New(ageerr.IoError, "tell: %v", err)
	}
	if _, err := r.Seek(arrayOffset, io.SeekStart); err != nil {
		return nil, dataEnd, ageerr.New(ageerr.BadRefOffset, "array reference at %d: %v", arrayOffset, err)
	}

	var countBuf [4]byte
	if _, err := io.ReadFull(r, countBuf[:]); err != nil {
		return nil, dataEnd, ageerr.New(ageerr.BadRefOffset, "array count at offset %d: %v", arrayOffset, err)
	}
	count := le.Uint32(countBuf[:])

	payload := make([]byte, int(count)*4)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, dataEnd, ageerr.New(ageerr.BadRefOffset, "array payload at offset %d: %v", arrayOffset, err)
	}

	values := make([]uint32, count)
	for i := range values {
		values[i] = le.Uint32(payload[i*4 : i*4+4])
	}

	if _, err := r.Seek(backup, io.SeekStart); err != nil {
		return nil, dataEnd, ageerr.New(ageerr.IoError, "seeking back from array: %v", err)
	}

	return values, dataEnd, nil
}
