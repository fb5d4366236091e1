package disasm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeReader struct {
	mem [65536]uint8
}

func (f *fakeReader) Read(addr uint16) uint8 { return f.mem[addr] }

func (f *fakeReader) load(addr uint16, bytes ...uint8) {
	for i, b := range bytes {
		f.mem[int(addr)+i] = b
	}
}

func TestOneImmediate(t *testing.T) {
	r := &fakeReader{}
	r.load(0x8000, 0xA9, 0x42)
	ins := One(r, 0x8000)
	assert.Equal(t, "LDA #$42", ins.Text)
	assert.Equal(t, []uint8{0xA9, 0x42}, ins.Bytes)
}

func TestOneAbsoluteIndexed(t *testing.T) {
	r := &fakeReader{}
	r.load(0x8000, 0xBD, 0x00, 0x02)
	ins := One(r, 0x8000)
	assert.Equal(t, "LDA $0200,X", ins.Text)
}

func TestOneImplied(t *testing.T) {
	r := &fakeReader{}
	r.load(0x8000, 0xEA)
	ins := One(r, 0x8000)
	assert.Equal(t, "NOP", ins.Text)
}

func TestOneAccumulator(t *testing.T) {
	r := &fakeReader{}
	r.load(0x8000, 0x0A)
	ins := One(r, 0x8000)
	assert.Equal(t, "ASL A", ins.Text)
}

func TestOneRelative(t *testing.T) {
	r := &fakeReader{}
	r.load(0x8000, 0xD0, 0xFE) // BNE -2
	ins := One(r, 0x8000)
	assert.Equal(t, "BNE *-2", ins.Text)
}

func TestRangeAdvancesByInstructionLength(t *testing.T) {
	r := &fakeReader{}
	r.load(0x8000, 0xA9, 0x00, 0xAA, 0x00)
	instrs := Range(r, 0x8000, 3)
	assert.Equal(t, []uint16{0x8000, 0x8002, 0x8003}, []uint16{instrs[0].Addr, instrs[1].Addr, instrs[2].Addr})
	assert.Equal(t, "LDA #$00", instrs[0].Text)
	assert.Equal(t, "TAX", instrs[1].Text)
	assert.Equal(t, "BRK", instrs[2].Text)
}
