package bin

import (
	"bytes"
	"testing"
)

func buildHeader(table1Offset, table2Offset, table3Offset uint32) []byte {
	buf := make([]byte, HeaderSize)
	copy(buf[0:8], []byte("AGEBIN\x00\x00"))
	putU32 := func(off int, v uint32) {
		buf[off] = byte(v)
		buf[off+1] = byte(v >> 8)
		buf[off+2] = byte(v >> 16)
		buf[off+3] = byte(v >> 24)
	}
	// offsets 8..60: int1,float1,string1,int2,unknown,string2,subHeaderSize,
	// table1Size,table1Offset,table2Size,table2Offset,table3Size,table3Offset
	putU32(40, table1Offset)
	putU32(48, table2Offset)
	putU32(56, table3Offset)
	return buf
}

func TestDisassemble_SingleExit(t *testing.T) {
	var in []byte
	in = append(in, buildHeader(1, 1, 1)...)
	in = append(in, 0x02, 0x00, 0x00, 0x00) // opcode 2 = exit, arity 0

	prog, err := Disassemble(bytes.NewReader(in))
	if err != nil {
		t.Fatalf("Disassemble() error = %v", err)
	}
	if len(prog.Instructions) != 1 {
		t.Fatalf("len(Instructions) = %d, want 1", len(prog.Instructions))
	}
	inst := prog.Instructions[0]
	if inst.FileOffset != 60 || inst.Opcode != 2 || inst.Mnemonic != "exit" || len(inst.Arguments) != 0 {
		t.Fatalf("unexpected instruction: %+v", inst)
	}
}

func TestDisassemble_ZeroInstructions(t *testing.T) {
	in := buildHeader(0, 0, 0)

	prog, err := Disassemble(bytes.NewReader(in))
	if err != nil {
		t.Fatalf("Disassemble() error = %v", err)
	}
	if len(prog.Instructions) != 0 {
		t.Fatalf("len(Instructions) = %d, want 0", len(prog.Instructions))
	}
}

func TestDisassemble_UnknownOpcode(t *testing.T) {
	var in []byte
	in = append(in, buildHeader(1, 1, 1)...)
	in = append(in, 0xFF, 0xFF, 0xFF, 0x00) // opcode 0x00FFFFFF: not in table

	_, err := Disassemble(bytes.NewReader(in))
	if err == nil {
		t.Fatal("Disassemble() expected error, got nil")
	}
}

func TestDisassemble_StringArgument(t *testing.T) {
	// call-script (opcode 3, arity 1) with a string argument pointing at a
	// word offset of 3 past the header, i.e. absolute offset 72 (right
	// after the instruction's own 12 bytes: opcode + arg type + arg raw).
	var in []byte
	in = append(in, buildHeader(3, 3, 3)...) // data_end = 60 + 4*3 = 72
	in = append(in, 0x03, 0x00, 0x00, 0x00)  // opcode 3
	in = append(in, 0x02, 0x00, 0x00, 0x00)  // arg type = 2 (string)
	in = append(in, 0x03, 0x00, 0x00, 0x00)  // raw: word offset 3 -> abs 72

	// string bytes at offset 72: "hi" XORed with 0xFF, then terminator 0xFF.
	in = append(in, 'h'^0xFF, 'i'^0xFF, 0xFF)

	prog, err := Disassemble(bytes.NewReader(in))
	if err != nil {
		t.Fatalf("Disassemble() error = %v", err)
	}
	if len(prog.Instructions) != 1 {
		t.Fatalf("len(Instructions) = %d, want 1", len(prog.Instructions))
	}
	arg := prog.Instructions[0].Arguments[0]
	if arg.Resolved.String == nil || *arg.Resolved.String != "hi" {
		t.Fatalf("resolved string = %v, want %q", arg.Resolved.String, "hi")
	}
}

func TestDisassemble_StringArgumentImmediateTerminator(t *testing.T) {
	var in []byte
	in = append(in, buildHeader(3, 3, 3)...)
	in = append(in, 0x03, 0x00, 0x00, 0x00)
	in = append(in, 0x02, 0x00, 0x00, 0x00)
	in = append(in, 0x03, 0x00, 0x00, 0x00)
	in = append(in, 0xFF) // immediate terminator: empty string

	prog, err := Disassemble(bytes.NewReader(in))
	if err != nil {
		t.Fatalf("Disassemble() error = %v", err)
	}
	arg := prog.Instructions[0].Arguments[0]
	if arg.Resolved.String == nil || *arg.Resolved.String != "" {
		t.Fatalf("resolved string = %v, want empty string", arg.Resolved.String)
	}
}

func TestDisassemble_InlineArrayArgument(t *testing.T) {
	// copy-local-array (opcode 0x64, arity 2); argument index 1 (the
	// second) is the inline-array reference. Instruction bytes occupy
	// absolute offsets 60..80; the array payload is placed right after, at
	// offset 80, word offset 5 from the header (60 + 5*4 = 80).
	var in []byte
	in = append(in, buildHeader(5, 5, 5)...) // data_end = 60 + 4*5 = 80
	in = append(in, 0x64, 0x00, 0x00, 0x00)  // opcode 0x64
	in = append(in, 0x00, 0x00, 0x00, 0x00)  // arg0 type=0 (ordinary)
	in = append(in, 0x00, 0x00, 0x00, 0x00)  // arg0 raw
	in = append(in, 0x00, 0x00, 0x00, 0x00)  // arg1 type=0 (ordinary but special-cased by opcode+index)
	in = append(in, 0x05, 0x00, 0x00, 0x00)  // arg1 raw: word offset 5 -> abs 80

	// at offset 80: count=2, then 2 u32 words.
	in = append(in, 0x02, 0x00, 0x00, 0x00)
	in = append(in, 0x0A, 0x00, 0x00, 0x00)
	in = append(in, 0x0B, 0x00, 0x00, 0x00)

	prog, err := Disassemble(bytes.NewReader(in))
	if err != nil {
		t.Fatalf("Disassemble() error = %v", err)
	}
	arg := prog.Instructions[0].Arguments[1]
	if len(arg.Resolved.Array) != 2 || arg.Resolved.Array[0] != 0x0A || arg.Resolved.Array[1] != 0x0B {
		t.Fatalf("resolved array = %v, want [10 11]", arg.Resolved.Array)
	}
}
