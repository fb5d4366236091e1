package cpu

// Each addressing-mode handler computes address_bus (and/or
// address_relative) from the bytes following the opcode, advances PC
// past them, and reports whether this particular computation crossed a
// page boundary. Only ABX, ABY and IZY can ever report true.

func addrIMP(c *Chip) bool { return false }

func addrACC(c *Chip) bool {
	c.accMode = true
	return false
}

func addrIMM(c *Chip) bool {
	c.addrBus = c.PC
	c.PC++
	return false
}

func addrZPG(c *Chip) bool {
	c.addrBus = uint16(c.bus.Read(c.PC))
	c.PC++
	return false
}

func addrZPX(c *Chip) bool {
	base := c.bus.Read(c.PC)
	c.PC++
	c.addrBus = uint16(base + c.X)
	return false
}

func addrZPY(c *Chip) bool {
	base := c.bus.Read(c.PC)
	c.PC++
	c.addrBus = uint16(base + c.Y)
	return false
}

func addrABS(c *Chip) bool {
	lo := uint16(c.bus.Read(c.PC))
	c.PC++
	hi := uint16(c.bus.Read(c.PC))
	c.PC++
	c.addrBus = hi<<8 | lo
	return false
}

func addrABX(c *Chip) bool {
	lo := uint16(c.bus.Read(c.PC))
	c.PC++
	hi := uint16(c.bus.Read(c.PC))
	c.PC++
	base := hi<<8 | lo
	addr := base + uint16(c.X)
	c.addrBus = addr
	return addr&0xFF00 != base&0xFF00
}

func addrABY(c *Chip) bool {
	lo := uint16(c.bus.Read(c.PC))
	c.PC++
	hi := uint16(c.bus.Read(c.PC))
	c.PC++
	base := hi<<8 | lo
	addr := base + uint16(c.Y)
	c.addrBus = addr
	return addr&0xFF00 != base&0xFF00
}

// addrIND implements JMP's indirect addressing and intentionally
// reproduces the original silicon's page-wrap bug: when the pointer's
// low byte is $FF, the high byte of the target is fetched from
// ptr & $FF00 rather than ptr+1.
func addrIND(c *Chip) bool {
	lo := uint16(c.bus.Read(c.PC))
	c.PC++
	hi := uint16(c.bus.Read(c.PC))
	c.PC++
	ptr := hi<<8 | lo

	var hiAddr uint16
	if lo == 0xFF {
		hiAddr = ptr & 0xFF00
	} else {
		hiAddr = ptr + 1
	}

	targetLo := uint16(c.bus.Read(ptr))
	targetHi := uint16(c.bus.Read(hiAddr))
	c.addrBus = targetHi<<8 | targetLo
	return false
}

func addrIZX(c *Chip) bool {
	zp := c.bus.Read(c.PC)
	c.PC++
	ptr := zp + c.X
	lo := uint16(c.bus.Read(uint16(ptr)))
	hi := uint16(c.bus.Read(uint16(ptr + 1)))
	c.addrBus = hi<<8 | lo
	return false
}

func addrIZY(c *Chip) bool {
	zp := c.bus.Read(c.PC)
	c.PC++
	lo := uint16(c.bus.Read(uint16(zp)))
	hi := uint16(c.bus.Read(uint16(zp + 1)))
	base := hi<<8 | lo
	addr := base + uint16(c.Y)
	c.addrBus = addr
	return addr&0xFF00 != base&0xFF00
}

func addrREL(c *Chip) bool {
	offset := c.bus.Read(c.PC)
	c.PC++
	c.addrRel = int16(int8(offset))
	return false
}
