package asm

import "github.com/dlowen/corewar/redcode"

var opcodeByName = map[string]redcode.Opcode{
	"DAT": redcode.DAT,
	"MOV": redcode.MOV,
	"ADD": redcode.ADD,
	"SUB": redcode.SUB,
	"MUL": redcode.MUL,
	"DIV": redcode.DIV,
	"MOD": redcode.MOD,
	"JMP": redcode.JMP,
	"SPL": redcode.SPL,
	"JMZ": redcode.JMZ,
	"JMN": redcode.JMN,
	"NOP": redcode.NOP,
	"DJN": redcode.DJN,
	"SEQ": redcode.SEQ,
	"SNE": redcode.SNE,
	"SLT": redcode.SLT,
}

var modifierByName = map[string]redcode.Modifier{
	"A":  redcode.ModA,
	"B":  redcode.ModB,
	"AB": redcode.ModAB,
	"BA": redcode.ModBA,
	"F":  redcode.ModF,
	"X":  redcode.ModX,
	"I":  redcode.ModI,
}

var modeByPrefix = map[byte]redcode.AddressMode{
	'#': redcode.Immediate,
	'$': redcode.Direct,
	'*': redcode.IndirectA,
	'@': redcode.IndirectB,
	'{': redcode.PreDecrementIndirectA,
	'<': redcode.PreDecrementIndirectB,
	'}': redcode.PostIncrementIndirectA,
	'>': redcode.PostIncrementIndirectB,
}

// opcodesWithOptionalB may omit the B-operand; the missing B-operand
// then defaults to (Direct, 0). A source line may still give them a
// real second operand: pre/post side effects apply to the B-operand
// regardless of opcode, so "JMP $-1, <-1" is legal and the <-1 drives
// a pre-decrement even though JMP's own semantics ignore the resolved
// B-address.
var opcodesWithOptionalB = map[redcode.Opcode]bool{
	redcode.JMP: true,
	redcode.SPL: true,
}

// defaultModifier resolves the modifier to use when the source omits
// `.MOD`.
func defaultModifier(op redcode.Opcode, aMode, bMode redcode.AddressMode) redcode.Modifier {
	switch op {
	case redcode.DAT, redcode.NOP:
		return redcode.ModF
	case redcode.MOV, redcode.SEQ, redcode.SNE:
		switch {
		case aMode == redcode.Immediate:
			return redcode.ModAB
		case bMode == redcode.Immediate:
			return redcode.ModB
		default:
			return redcode.ModI
		}
	case redcode.ADD, redcode.SUB, redcode.MUL, redcode.DIV, redcode.MOD:
		switch {
		case aMode == redcode.Immediate:
			return redcode.ModAB
		case bMode == redcode.Immediate:
			return redcode.ModB
		default:
			return redcode.ModF
		}
	case redcode.SLT:
		if aMode == redcode.Immediate {
			return redcode.ModAB
		}
		return redcode.ModB
	case redcode.JMP, redcode.JMZ, redcode.JMN, redcode.DJN, redcode.SPL:
		return redcode.ModB
	default:
		return redcode.ModF
	}
}
