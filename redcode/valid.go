package redcode

// ValidModifier reports whether modifier m is a legal modifier for
// opcode op at execution time, i.e. after any parser-level default
// resolution has already happened (see the asm package's default
// table). DAT, JMP, SPL and NOP do not dispatch on modifier at all, so
// any modifier value is accepted and ignored for them.
func ValidModifier(op Opcode, m Modifier) bool {
	switch op {
	case DAT, JMP, SPL, NOP:
		return true
	case SLT:
		switch m {
		case ModA, ModB, ModAB, ModBA:
			return true
		default:
			return false
		}
	case ADD, SUB, MUL:
		// None falls back to AB for these three: a parser that forgot
		// to resolve the default still runs.
		switch m {
		case ModNone, ModA, ModB, ModAB, ModBA, ModF, ModX, ModI:
			return true
		default:
			return false
		}
	case MOV, DIV, MOD, JMZ, JMN, DJN, SEQ, SNE:
		switch m {
		case ModA, ModB, ModAB, ModBA, ModF, ModX, ModI:
			return true
		default:
			return false
		}
	default:
		return false
	}
}
