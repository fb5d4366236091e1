package cpu

import "reflect"

// modeNames and operandLengths let package disasm format an
// instruction without keeping a second copy of the opcode table: both
// are derived from the same addrFunc values optable.go already wired
// into opcodeTable, keyed by the function's entry point.
var modeNames = map[uintptr]string{
	funcPtr(addrIMP): "IMP",
	funcPtr(addrACC): "ACC",
	funcPtr(addrIMM): "IMM",
	funcPtr(addrZPG): "ZPG",
	funcPtr(addrZPX): "ZPX",
	funcPtr(addrZPY): "ZPY",
	funcPtr(addrABS): "ABS",
	funcPtr(addrABX): "ABX",
	funcPtr(addrABY): "ABY",
	funcPtr(addrIND): "IND",
	funcPtr(addrIZX): "IZX",
	funcPtr(addrIZY): "IZY",
	funcPtr(addrREL): "REL",
}

var operandLengths = map[uintptr]int{
	funcPtr(addrIMP): 0,
	funcPtr(addrACC): 0,
	funcPtr(addrIMM): 1,
	funcPtr(addrZPG): 1,
	funcPtr(addrZPX): 1,
	funcPtr(addrZPY): 1,
	funcPtr(addrABS): 2,
	funcPtr(addrABX): 2,
	funcPtr(addrABY): 2,
	funcPtr(addrIND): 2,
	funcPtr(addrIZX): 1,
	funcPtr(addrIZY): 1,
	funcPtr(addrREL): 1,
}

func funcPtr(f addrFunc) uintptr {
	return reflect.ValueOf(f).Pointer()
}

// AddressingMode returns the short name of opcode's addressing mode,
// e.g. "ABX" or "IMP".
func AddressingMode(opcode uint8) string {
	return modeNames[funcPtr(opcodeTable[opcode].mode)]
}

// OperandLength returns the number of bytes following opcode that its
// addressing mode consumes.
func OperandLength(opcode uint8) int {
	return operandLengths[funcPtr(opcodeTable[opcode].mode)]
}
