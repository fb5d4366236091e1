package bus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadWriteRAM(t *testing.T) {
	b := New()
	for _, addr := range []uint16{0x0000, 0x00FF, 0x0100, 0x01FF, 0x0200, 0x7FFF} {
		b.Write(addr, 0xAB)
		assert.Equal(t, uint8(0xAB), b.Read(addr), "addr $%04X", addr)
	}
}

func TestWriteROMIsAccessViolation(t *testing.T) {
	b := New()
	before := b.Read(0x8000)
	b.Write(0x8000, 0x42)
	assert.Equal(t, before, b.Read(0x8000), "ROM write must not change stored byte")

	violation := b.LastViolation()
	require.NotNil(t, violation)
	assert.Equal(t, uint16(0x8000), violation.Addr)

	assert.Nil(t, b.LastViolation(), "violation should clear after being read once")
}

func TestLoadROMExactSize(t *testing.T) {
	b := New()
	image := make([]byte, ROMSize)
	image[0] = 0x11
	image[ROMSize-1] = 0x22
	require.NoError(t, b.LoadROM(image))
	assert.Equal(t, uint8(0x11), b.Read(0x8000))
	assert.Equal(t, uint8(0x22), b.Read(0xFFFF))
}

func TestLoadROMShortImagePadded(t *testing.T) {
	b := New()
	image := []byte{0xA9, 0x42, 0x00}
	require.NoError(t, b.LoadROM(image))
	assert.Equal(t, uint8(0xA9), b.Read(0x8000))
	assert.Equal(t, uint8(0x42), b.Read(0x8001))
	assert.Equal(t, uint8(0x00), b.Read(0x8002))
	assert.Equal(t, uint8(romFill), b.Read(0xFFFF))
}

func TestLoadROMOversizedRejected(t *testing.T) {
	b := New()
	err := b.LoadROM(make([]byte, ROMSize+1))
	assert.Error(t, err)
}

func TestInterruptVectorsLiveInROM(t *testing.T) {
	b := New()
	image := make([]byte, ROMSize)
	image[0xFFFA-ROMBase] = 0x01
	image[0xFFFB-ROMBase] = 0x80
	image[0xFFFC-ROMBase] = 0x00
	image[0xFFFD-ROMBase] = 0x80
	image[0xFFFE-ROMBase] = 0x34
	image[0xFFFF-ROMBase] = 0x12
	require.NoError(t, b.LoadROM(image))
	assert.Equal(t, uint8(0x01), b.Read(0xFFFA))
	assert.Equal(t, uint8(0x80), b.Read(0xFFFB))
	assert.Equal(t, uint8(0x00), b.Read(0xFFFC))
	assert.Equal(t, uint8(0x80), b.Read(0xFFFD))
	assert.Equal(t, uint8(0x34), b.Read(0xFFFE))
	assert.Equal(t, uint8(0x12), b.Read(0xFFFF))
}
