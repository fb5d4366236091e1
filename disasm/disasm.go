// Package disasm formats the bytes of a 6502 instruction stream into
// human-readable text, for debug tooling around the emulator. It
// queries the cpu package's own dispatch table for mnemonics and
// addressing-mode lengths instead of carrying a second copy of the
// 256-entry opcode matrix.
package disasm

import (
	"fmt"
	"strings"

	"github.com/tarnovan/mos6502/cpu"
)

// Instruction is one decoded instruction: its address, raw bytes and
// rendered text.
type Instruction struct {
	Addr  uint16
	Bytes []uint8
	Text  string
}

// Reader is anything the disassembler can pull bytes from; satisfied
// by cpu.Bus and by *bus.Bus.
type Reader interface {
	Read(addr uint16) uint8
}

// One decodes the single instruction starting at addr.
func One(r Reader, addr uint16) Instruction {
	opcode := r.Read(addr)
	mnemonic := cpu.Mnemonic(opcode)
	mode := cpu.AddressingMode(opcode)
	length := cpu.OperandLength(opcode)

	raw := make([]uint8, 0, length+1)
	raw = append(raw, opcode)
	for i := 0; i < length; i++ {
		raw = append(raw, r.Read(addr+1+uint16(i)))
	}

	return Instruction{
		Addr:  addr,
		Bytes: raw,
		Text:  format(mnemonic, mode, raw),
	}
}

// format renders an instruction's mnemonic and operand using the
// conventional 6502 assembly syntax for each addressing mode.
func format(mnemonic, mode string, raw []uint8) string {
	switch mode {
	case "IMP":
		return mnemonic
	case "ACC":
		return mnemonic + " A"
	case "IMM":
		return fmt.Sprintf("%s #$%02X", mnemonic, raw[1])
	case "ZPG":
		return fmt.Sprintf("%s $%02X", mnemonic, raw[1])
	case "ZPX":
		return fmt.Sprintf("%s $%02X,X", mnemonic, raw[1])
	case "ZPY":
		return fmt.Sprintf("%s $%02X,Y", mnemonic, raw[1])
	case "ABS":
		return fmt.Sprintf("%s $%04X", mnemonic, word(raw))
	case "ABX":
		return fmt.Sprintf("%s $%04X,X", mnemonic, word(raw))
	case "ABY":
		return fmt.Sprintf("%s $%04X,Y", mnemonic, word(raw))
	case "IND":
		return fmt.Sprintf("%s ($%04X)", mnemonic, word(raw))
	case "IZX":
		return fmt.Sprintf("%s ($%02X,X)", mnemonic, raw[1])
	case "IZY":
		return fmt.Sprintf("%s ($%02X),Y", mnemonic, raw[1])
	case "REL":
		return fmt.Sprintf("%s *%+d", mnemonic, int8(raw[1]))
	default:
		return mnemonic
	}
}

func word(raw []uint8) uint16 {
	return uint16(raw[2])<<8 | uint16(raw[1])
}

// Range decodes count instructions starting at addr, advancing by
// each instruction's own length.
func Range(r Reader, addr uint16, count int) []Instruction {
	out := make([]Instruction, 0, count)
	for i := 0; i < count; i++ {
		ins := One(r, addr)
		out = append(out, ins)
		addr += uint16(len(ins.Bytes))
	}
	return out
}

// Dump renders a Range as one line per instruction, address first.
func Dump(r Reader, addr uint16, count int) string {
	var b strings.Builder
	for _, ins := range Range(r, addr, count) {
		fmt.Fprintf(&b, "$%04X  % -8s  %s\n", ins.Addr, hexBytes(ins.Bytes), ins.Text)
	}
	return b.String()
}

func hexBytes(raw []uint8) string {
	var b strings.Builder
	for i, v := range raw {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%02X", v)
	}
	return b.String()
}
