package cpu

// opcodeTable is the spine of the interpreter: a fixed mapping from
// every one of the 256 opcode bytes to its mnemonic, addressing mode,
// opcode handler and base cycle count. It is built once at package
// init and never mutated afterward. JAM opcodes use addrIMP and
// opJAM; their cycle count is nominal since the chip halts before it
// would ever be consumed.
var opcodeTable [256]descriptor

func init() {
	t := func(op uint8, mnemonic string, mode addrFunc, fn opcodeFunc, cycles uint8) {
		opcodeTable[op] = descriptor{mnemonic: mnemonic, mode: mode, op: fn, cycles: cycles}
	}

	// 0x0_
	t(0x00, "BRK", addrIMP, opBRK, 7)
	t(0x01, "ORA", addrIZX, opORA, 6)
	t(0x02, "JAM", addrIMP, opJAM, 2)
	t(0x03, "SLO", addrIZX, opSLO, 8)
	t(0x04, "NOP", addrZPG, opNOP, 3)
	t(0x05, "ORA", addrZPG, opORA, 3)
	t(0x06, "ASL", addrZPG, opASL, 5)
	t(0x07, "SLO", addrZPG, opSLO, 5)
	t(0x08, "PHP", addrIMP, opPHP, 3)
	t(0x09, "ORA", addrIMM, opORA, 2)
	t(0x0A, "ASL", addrACC, opASL, 2)
	t(0x0B, "ANC", addrIMM, opANC, 2)
	t(0x0C, "NOP", addrABS, opNOP, 4)
	t(0x0D, "ORA", addrABS, opORA, 4)
	t(0x0E, "ASL", addrABS, opASL, 6)
	t(0x0F, "SLO", addrABS, opSLO, 6)

	// 0x1_
	t(0x10, "BPL", addrREL, opBPL, 2)
	t(0x11, "ORA", addrIZY, opORA, 5)
	t(0x12, "JAM", addrIMP, opJAM, 2)
	t(0x13, "SLO", addrIZY, opSLO, 8)
	t(0x14, "NOP", addrZPX, opNOP, 4)
	t(0x15, "ORA", addrZPX, opORA, 4)
	t(0x16, "ASL", addrZPX, opASL, 6)
	t(0x17, "SLO", addrZPX, opSLO, 6)
	t(0x18, "CLC", addrIMP, opCLC, 2)
	t(0x19, "ORA", addrABY, opORA, 4)
	t(0x1A, "NOP", addrIMP, opNOP, 2)
	t(0x1B, "SLO", addrABY, opSLO, 7)
	t(0x1C, "NOP", addrABX, opNOPAbsX, 4)
	t(0x1D, "ORA", addrABX, opORA, 4)
	t(0x1E, "ASL", addrABX, opASL, 7)
	t(0x1F, "SLO", addrABX, opSLO, 7)

	// 0x2_
	t(0x20, "JSR", addrABS, opJSR, 6)
	t(0x21, "AND", addrIZX, opAND, 6)
	t(0x22, "JAM", addrIMP, opJAM, 2)
	t(0x23, "RLA", addrIZX, opRLA, 8)
	t(0x24, "BIT", addrZPG, opBIT, 3)
	t(0x25, "AND", addrZPG, opAND, 3)
	t(0x26, "ROL", addrZPG, opROL, 5)
	t(0x27, "RLA", addrZPG, opRLA, 5)
	t(0x28, "PLP", addrIMP, opPLP, 4)
	t(0x29, "AND", addrIMM, opAND, 2)
	t(0x2A, "ROL", addrACC, opROL, 2)
	t(0x2B, "ANC", addrIMM, opANC, 2)
	t(0x2C, "BIT", addrABS, opBIT, 4)
	t(0x2D, "AND", addrABS, opAND, 4)
	t(0x2E, "ROL", addrABS, opROL, 6)
	t(0x2F, "RLA", addrABS, opRLA, 6)

	// 0x3_
	t(0x30, "BMI", addrREL, opBMI, 2)
	t(0x31, "AND", addrIZY, opAND, 5)
	t(0x32, "JAM", addrIMP, opJAM, 2)
	t(0x33, "RLA", addrIZY, opRLA, 8)
	t(0x34, "NOP", addrZPX, opNOP, 4)
	t(0x35, "AND", addrZPX, opAND, 4)
	t(0x36, "ROL", addrZPX, opROL, 6)
	t(0x37, "RLA", addrZPX, opRLA, 6)
	t(0x38, "SEC", addrIMP, opSEC, 2)
	t(0x39, "AND", addrABY, opAND, 4)
	t(0x3A, "NOP", addrIMP, opNOP, 2)
	t(0x3B, "RLA", addrABY, opRLA, 7)
	t(0x3C, "NOP", addrABX, opNOPAbsX, 4)
	t(0x3D, "AND", addrABX, opAND, 4)
	t(0x3E, "ROL", addrABX, opROL, 7)
	t(0x3F, "RLA", addrABX, opRLA, 7)

	// 0x4_
	t(0x40, "RTI", addrIMP, opRTI, 6)
	t(0x41, "EOR", addrIZX, opEOR, 6)
	t(0x42, "JAM", addrIMP, opJAM, 2)
	t(0x43, "SRE", addrIZX, opSRE, 8)
	t(0x44, "NOP", addrZPG, opNOP, 3)
	t(0x45, "EOR", addrZPG, opEOR, 3)
	t(0x46, "LSR", addrZPG, opLSR, 5)
	t(0x47, "SRE", addrZPG, opSRE, 5)
	t(0x48, "PHA", addrIMP, opPHA, 3)
	t(0x49, "EOR", addrIMM, opEOR, 2)
	t(0x4A, "LSR", addrACC, opLSR, 2)
	t(0x4B, "ALR", addrIMM, opALR, 2)
	t(0x4C, "JMP", addrABS, opJMP, 3)
	t(0x4D, "EOR", addrABS, opEOR, 4)
	t(0x4E, "LSR", addrABS, opLSR, 6)
	t(0x4F, "SRE", addrABS, opSRE, 6)

	// 0x5_
	t(0x50, "BVC", addrREL, opBVC, 2)
	t(0x51, "EOR", addrIZY, opEOR, 5)
	t(0x52, "JAM", addrIMP, opJAM, 2)
	t(0x53, "SRE", addrIZY, opSRE, 8)
	t(0x54, "NOP", addrZPX, opNOP, 4)
	t(0x55, "EOR", addrZPX, opEOR, 4)
	t(0x56, "LSR", addrZPX, opLSR, 6)
	t(0x57, "SRE", addrZPX, opSRE, 6)
	t(0x58, "CLI", addrIMP, opCLI, 2)
	t(0x59, "EOR", addrABY, opEOR, 4)
	t(0x5A, "NOP", addrIMP, opNOP, 2)
	t(0x5B, "SRE", addrABY, opSRE, 7)
	t(0x5C, "NOP", addrABX, opNOPAbsX, 4)
	t(0x5D, "EOR", addrABX, opEOR, 4)
	t(0x5E, "LSR", addrABX, opLSR, 7)
	t(0x5F, "SRE", addrABX, opSRE, 7)

	// 0x6_
	t(0x60, "RTS", addrIMP, opRTS, 6)
	t(0x61, "ADC", addrIZX, opADC, 6)
	t(0x62, "JAM", addrIMP, opJAM, 2)
	t(0x63, "RRA", addrIZX, opRRA, 8)
	t(0x64, "NOP", addrZPG, opNOP, 3)
	t(0x65, "ADC", addrZPG, opADC, 3)
	t(0x66, "ROR", addrZPG, opROR, 5)
	t(0x67, "RRA", addrZPG, opRRA, 5)
	t(0x68, "PLA", addrIMP, opPLA, 4)
	t(0x69, "ADC", addrIMM, opADC, 2)
	t(0x6A, "ROR", addrACC, opROR, 2)
	t(0x6B, "ARR", addrIMM, opARR, 2)
	t(0x6C, "JMP", addrIND, opJMP, 5)
	t(0x6D, "ADC", addrABS, opADC, 4)
	t(0x6E, "ROR", addrABS, opROR, 6)
	t(0x6F, "RRA", addrABS, opRRA, 6)

	// 0x7_
	t(0x70, "BVS", addrREL, opBVS, 2)
	t(0x71, "ADC", addrIZY, opADC, 5)
	t(0x72, "JAM", addrIMP, opJAM, 2)
	t(0x73, "RRA", addrIZY, opRRA, 8)
	t(0x74, "NOP", addrZPX, opNOP, 4)
	t(0x75, "ADC", addrZPX, opADC, 4)
	t(0x76, "ROR", addrZPX, opROR, 6)
	t(0x77, "RRA", addrZPX, opRRA, 6)
	t(0x78, "SEI", addrIMP, opSEI, 2)
	t(0x79, "ADC", addrABY, opADC, 4)
	t(0x7A, "NOP", addrIMP, opNOP, 2)
	t(0x7B, "RRA", addrABY, opRRA, 7)
	t(0x7C, "NOP", addrABX, opNOPAbsX, 4)
	t(0x7D, "ADC", addrABX, opADC, 4)
	t(0x7E, "ROR", addrABX, opROR, 7)
	t(0x7F, "RRA", addrABX, opRRA, 7)

	// 0x8_
	t(0x80, "NOP", addrIMM, opNOP, 2)
	t(0x81, "STA", addrIZX, opSTA, 6)
	t(0x82, "NOP", addrIMM, opNOP, 2)
	t(0x83, "SAX", addrIZX, opSAX, 6)
	t(0x84, "STY", addrZPG, opSTY, 3)
	t(0x85, "STA", addrZPG, opSTA, 3)
	t(0x86, "STX", addrZPG, opSTX, 3)
	t(0x87, "SAX", addrZPG, opSAX, 3)
	t(0x88, "DEY", addrIMP, opDEY, 2)
	t(0x89, "NOP", addrIMM, opNOP, 2)
	t(0x8A, "TXA", addrIMP, opTXA, 2)
	t(0x8B, "ANE", addrIMM, opANE, 2)
	t(0x8C, "STY", addrABS, opSTY, 4)
	t(0x8D, "STA", addrABS, opSTA, 4)
	t(0x8E, "STX", addrABS, opSTX, 4)
	t(0x8F, "SAX", addrABS, opSAX, 4)

	// 0x9_
	t(0x90, "BCC", addrREL, opBCC, 2)
	t(0x91, "STA", addrIZY, opSTA, 6)
	t(0x92, "JAM", addrIMP, opJAM, 2)
	t(0x93, "SHA", addrIZY, opSHA, 6)
	t(0x94, "STY", addrZPX, opSTY, 4)
	t(0x95, "STA", addrZPX, opSTA, 4)
	t(0x96, "STX", addrZPY, opSTX, 4)
	t(0x97, "SAX", addrZPY, opSAX, 4)
	t(0x98, "TYA", addrIMP, opTYA, 2)
	t(0x99, "STA", addrABY, opSTA, 5)
	t(0x9A, "TXS", addrIMP, opTXS, 2)
	t(0x9B, "TAS", addrABY, opTAS, 5)
	t(0x9C, "SHY", addrABX, opSHY, 5)
	t(0x9D, "STA", addrABX, opSTA, 5)
	t(0x9E, "SHX", addrABY, opSHX, 5)
	t(0x9F, "SHA", addrABY, opSHA, 5)

	// 0xA_
	t(0xA0, "LDY", addrIMM, opLDY, 2)
	t(0xA1, "LDA", addrIZX, opLDA, 6)
	t(0xA2, "LDX", addrIMM, opLDX, 2)
	t(0xA3, "LAX", addrIZX, opLAX, 6)
	t(0xA4, "LDY", addrZPG, opLDY, 3)
	t(0xA5, "LDA", addrZPG, opLDA, 3)
	t(0xA6, "LDX", addrZPG, opLDX, 3)
	t(0xA7, "LAX", addrZPG, opLAX, 3)
	t(0xA8, "TAY", addrIMP, opTAY, 2)
	t(0xA9, "LDA", addrIMM, opLDA, 2)
	t(0xAA, "TAX", addrIMP, opTAX, 2)
	t(0xAB, "LXA", addrIMM, opLXA, 2)
	t(0xAC, "LDY", addrABS, opLDY, 4)
	t(0xAD, "LDA", addrABS, opLDA, 4)
	t(0xAE, "LDX", addrABS, opLDX, 4)
	t(0xAF, "LAX", addrABS, opLAX, 4)

	// 0xB_
	t(0xB0, "BCS", addrREL, opBCS, 2)
	t(0xB1, "LDA", addrIZY, opLDA, 5)
	t(0xB2, "JAM", addrIMP, opJAM, 2)
	t(0xB3, "LAX", addrIZY, opLAX, 5)
	t(0xB4, "LDY", addrZPX, opLDY, 4)
	t(0xB5, "LDA", addrZPX, opLDA, 4)
	t(0xB6, "LDX", addrZPY, opLDX, 4)
	t(0xB7, "LAX", addrZPY, opLAX, 4)
	t(0xB8, "CLV", addrIMP, opCLV, 2)
	t(0xB9, "LDA", addrABY, opLDA, 4)
	t(0xBA, "TSX", addrIMP, opTSX, 2)
	t(0xBB, "LAS", addrABY, opLAS, 4)
	t(0xBC, "LDY", addrABX, opLDY, 4)
	t(0xBD, "LDA", addrABX, opLDA, 4)
	t(0xBE, "LDX", addrABY, opLDX, 4)
	t(0xBF, "LAX", addrABY, opLAX, 4)

	// 0xC_
	t(0xC0, "CPY", addrIMM, opCPY, 2)
	t(0xC1, "CMP", addrIZX, opCMP, 6)
	t(0xC2, "NOP", addrIMM, opNOP, 2)
	t(0xC3, "DCP", addrIZX, opDCP, 8)
	t(0xC4, "CPY", addrZPG, opCPY, 3)
	t(0xC5, "CMP", addrZPG, opCMP, 3)
	t(0xC6, "DEC", addrZPG, opDEC, 5)
	t(0xC7, "DCP", addrZPG, opDCP, 5)
	t(0xC8, "INY", addrIMP, opINY, 2)
	t(0xC9, "CMP", addrIMM, opCMP, 2)
	t(0xCA, "DEX", addrIMP, opDEX, 2)
	t(0xCB, "SBX", addrIMM, opSBX, 2)
	t(0xCC, "CPY", addrABS, opCPY, 4)
	t(0xCD, "CMP", addrABS, opCMP, 4)
	t(0xCE, "DEC", addrABS, opDEC, 6)
	t(0xCF, "DCP", addrABS, opDCP, 6)

	// 0xD_
	t(0xD0, "BNE", addrREL, opBNE, 2)
	t(0xD1, "CMP", addrIZY, opCMP, 5)
	t(0xD2, "JAM", addrIMP, opJAM, 2)
	t(0xD3, "DCP", addrIZY, opDCP, 8)
	t(0xD4, "NOP", addrZPX, opNOP, 4)
	t(0xD5, "CMP", addrZPX, opCMP, 4)
	t(0xD6, "DEC", addrZPX, opDEC, 6)
	t(0xD7, "DCP", addrZPX, opDCP, 6)
	t(0xD8, "CLD", addrIMP, opCLD, 2)
	t(0xD9, "CMP", addrABY, opCMP, 4)
	t(0xDA, "NOP", addrIMP, opNOP, 2)
	t(0xDB, "DCP", addrABY, opDCP, 7)
	t(0xDC, "NOP", addrABX, opNOPAbsX, 4)
	t(0xDD, "CMP", addrABX, opCMP, 4)
	t(0xDE, "DEC", addrABX, opDEC, 7)
	t(0xDF, "DCP", addrABX, opDCP, 7)

	// 0xE_
	t(0xE0, "CPX", addrIMM, opCPX, 2)
	t(0xE1, "SBC", addrIZX, opSBC, 6)
	t(0xE2, "NOP", addrIMM, opNOP, 2)
	t(0xE3, "ISC", addrIZX, opISC, 8)
	t(0xE4, "CPX", addrZPG, opCPX, 3)
	t(0xE5, "SBC", addrZPG, opSBC, 3)
	t(0xE6, "INC", addrZPG, opINC, 5)
	t(0xE7, "ISC", addrZPG, opISC, 5)
	t(0xE8, "INX", addrIMP, opINX, 2)
	t(0xE9, "SBC", addrIMM, opSBC, 2)
	t(0xEA, "NOP", addrIMP, opNOP, 2)
	t(0xEB, "USBC", addrIMM, opUSBC, 2)
	t(0xEC, "CPX", addrABS, opCPX, 4)
	t(0xED, "SBC", addrABS, opSBC, 4)
	t(0xEE, "INC", addrABS, opINC, 6)
	t(0xEF, "ISC", addrABS, opISC, 6)

	// 0xF_
	t(0xF0, "BEQ", addrREL, opBEQ, 2)
	t(0xF1, "SBC", addrIZY, opSBC, 5)
	t(0xF2, "JAM", addrIMP, opJAM, 2)
	t(0xF3, "ISC", addrIZY, opISC, 8)
	t(0xF4, "NOP", addrZPX, opNOP, 4)
	t(0xF5, "SBC", addrZPX, opSBC, 4)
	t(0xF6, "INC", addrZPX, opINC, 6)
	t(0xF7, "ISC", addrZPX, opISC, 6)
	t(0xF8, "SED", addrIMP, opSED, 2)
	t(0xF9, "SBC", addrABY, opSBC, 4)
	t(0xFA, "NOP", addrIMP, opNOP, 2)
	t(0xFB, "ISC", addrABY, opISC, 7)
	t(0xFC, "NOP", addrABX, opNOPAbsX, 4)
	t(0xFD, "SBC", addrABX, opSBC, 4)
	t(0xFE, "INC", addrABX, opINC, 7)
	t(0xFF, "ISC", addrABX, opISC, 7)
}
