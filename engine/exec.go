package engine

import "github.com/dlowen/corewar/redcode"

// dispatch runs the semantics of one already-fetched instruction.
// src and dst are the already-resolved A/B effective addresses (or pc
// itself, for Immediate operands). It mutates core and w.Queue
// directly: memory writes land on core, and control flow (jumps,
// skips, spawns, kills) is expressed as queue operations on the back
// of w.Queue, which at this point holds the provisional fall-through
// pc pushed by the scheduler.
//
// One switch on opcode, with handlers that further switch on modifier
// where an opcode's behavior varies by field.
func dispatch(core *Core, pc, src, dst int, inst redcode.Instruction, w *Warrior, settings MatchSettings) *Error {
	if !redcode.ValidModifier(inst.Opcode, inst.Modifier) {
		return newError(ErrInvalidModifier, "%s does not accept modifier %q", inst.Opcode, inst.Modifier)
	}

	switch inst.Opcode {
	case redcode.DAT:
		w.Queue.PopBack()
		return nil
	case redcode.MOV:
		execMov(core, src, dst, inst)
		return nil
	case redcode.ADD:
		execArith(core, src, dst, inst, addOp)
		return nil
	case redcode.SUB:
		execArith(core, src, dst, inst, subOp)
		return nil
	case redcode.MUL:
		execArith(core, src, dst, inst, mulOp)
		return nil
	case redcode.DIV:
		execDivMod(core, src, dst, inst, w, true)
		return nil
	case redcode.MOD:
		execDivMod(core, src, dst, inst, w, false)
		return nil
	case redcode.JMP:
		w.Queue.ReplaceBack(src)
		return nil
	case redcode.SPL:
		if w.Queue.Len() < settings.MaxProcessesPerWarrior {
			w.Queue.PushBack(src)
		}
		return nil
	case redcode.JMZ:
		execJmzJmn(core, src, dst, inst, w, true)
		return nil
	case redcode.JMN:
		execJmzJmn(core, src, dst, inst, w, false)
		return nil
	case redcode.NOP:
		return nil
	case redcode.DJN:
		execDjn(core, src, dst, inst, w)
		return nil
	case redcode.SEQ:
		execSeqSne(core, src, dst, inst, w, true)
		return nil
	case redcode.SNE:
		execSeqSne(core, src, dst, inst, w, false)
		return nil
	case redcode.SLT:
		execSlt(core, src, dst, inst, w)
		return nil
	default:
		return newError(ErrInvalidModifier, "unknown opcode %s", inst.Opcode)
	}
}

func addOp(a, b int64) int64 { return a + b }
func subOp(a, b int64) int64 { return a - b }
func mulOp(a, b int64) int64 { return a * b }

func execMov(core *Core, src, dst int, inst redcode.Instruction) {
	srcCell := core.At(src)
	dstCell := core.At(dst)

	switch inst.Modifier {
	case redcode.ModA:
		dstCell.AValue = srcCell.AValue
	case redcode.ModB:
		dstCell.BValue = srcCell.BValue
	case redcode.ModAB:
		dstCell.BValue = srcCell.AValue
	case redcode.ModBA:
		dstCell.AValue = srcCell.BValue
	case redcode.ModF:
		dstCell.AValue = srcCell.AValue
		dstCell.BValue = srcCell.BValue
	case redcode.ModX:
		dstCell.BValue = srcCell.AValue
		dstCell.AValue = srcCell.BValue
	case redcode.ModI:
		dstCell = srcCell
	}
	core.Set(dst, dstCell)
}

// execArith implements ADD/SUB/MUL: dest_field := (dest_field OP
// source_field) normalized into [0, core size). None behaves as AB for
// these three opcodes; the I modifier behaves as F since there is no
// "entire instruction" arithmetic.
func execArith(core *Core, src, dst int, inst redcode.Instruction, op func(a, b int64) int64) {
	mod := inst.Modifier
	if mod == redcode.ModNone {
		mod = redcode.ModAB
	}
	srcCell := core.At(src)
	dstCell := core.At(dst)

	switch mod {
	case redcode.ModA:
		dstCell.AValue = core.NormalizeField(op(dstCell.AValue, srcCell.AValue))
	case redcode.ModB:
		dstCell.BValue = core.NormalizeField(op(dstCell.BValue, srcCell.BValue))
	case redcode.ModAB:
		dstCell.BValue = core.NormalizeField(op(dstCell.BValue, srcCell.AValue))
	case redcode.ModBA:
		dstCell.AValue = core.NormalizeField(op(dstCell.AValue, srcCell.BValue))
	case redcode.ModF, redcode.ModI:
		dstCell.AValue = core.NormalizeField(op(dstCell.AValue, srcCell.AValue))
		dstCell.BValue = core.NormalizeField(op(dstCell.BValue, srcCell.BValue))
	case redcode.ModX:
		dstCell.BValue = core.NormalizeField(op(dstCell.BValue, srcCell.AValue))
		dstCell.AValue = core.NormalizeField(op(dstCell.AValue, srcCell.BValue))
	}
	core.Set(dst, dstCell)
}

// execDivMod implements DIV (isDiv true) and MOD (isDiv false):
// truncating signed division / remainder per field pair. A zero
// divisor leaves that field pair's destination unchanged but kills the
// current process once the handler returns; the other field pair of a
// two-pair modifier still updates.
func execDivMod(core *Core, src, dst int, inst redcode.Instruction, w *Warrior, isDiv bool) {
	srcCell := core.At(src)
	dstCell := core.At(dst)
	sawZero := false

	apply := func(divisor, dividend int64) (int64, bool) {
		if divisor == 0 {
			return 0, false
		}
		if isDiv {
			return core.NormalizeField(dividend / divisor), true
		}
		return core.NormalizeField(dividend % divisor), true
	}

	switch inst.Modifier {
	case redcode.ModA:
		if v, ok := apply(srcCell.AValue, dstCell.AValue); ok {
			dstCell.AValue = v
		} else {
			sawZero = true
		}
	case redcode.ModB:
		if v, ok := apply(srcCell.BValue, dstCell.BValue); ok {
			dstCell.BValue = v
		} else {
			sawZero = true
		}
	case redcode.ModAB:
		if v, ok := apply(srcCell.AValue, dstCell.BValue); ok {
			dstCell.BValue = v
		} else {
			sawZero = true
		}
	case redcode.ModBA:
		if v, ok := apply(srcCell.BValue, dstCell.AValue); ok {
			dstCell.AValue = v
		} else {
			sawZero = true
		}
	case redcode.ModF, redcode.ModI:
		if v, ok := apply(srcCell.AValue, dstCell.AValue); ok {
			dstCell.AValue = v
		} else {
			sawZero = true
		}
		if v, ok := apply(srcCell.BValue, dstCell.BValue); ok {
			dstCell.BValue = v
		} else {
			sawZero = true
		}
	case redcode.ModX:
		if v, ok := apply(srcCell.AValue, dstCell.BValue); ok {
			dstCell.BValue = v
		} else {
			sawZero = true
		}
		if v, ok := apply(srcCell.BValue, dstCell.AValue); ok {
			dstCell.AValue = v
		} else {
			sawZero = true
		}
	}

	core.Set(dst, dstCell)
	if sawZero {
		w.Queue.PopBack()
	}
}

func execJmzJmn(core *Core, src, dst int, inst redcode.Instruction, w *Warrior, zeroTest bool) {
	cell := core.At(dst)
	var test bool

	switch inst.Modifier {
	case redcode.ModA, redcode.ModBA:
		test = (cell.AValue == 0) == zeroTest
	case redcode.ModB, redcode.ModAB:
		test = (cell.BValue == 0) == zeroTest
	case redcode.ModF, redcode.ModX, redcode.ModI:
		if zeroTest {
			test = cell.AValue == 0 && cell.BValue == 0
		} else {
			test = cell.AValue != 0 || cell.BValue != 0
		}
	}

	if test {
		w.Queue.ReplaceBack(src)
	}
}

// execDjn decrements the selected field(s) of the destination cell,
// then jumps when the post-decrement field(s) are non-zero. F/X/I
// require *both* fields non-zero to jump, unlike JMN's F/X/I which
// only requires one.
func execDjn(core *Core, src, dst int, inst redcode.Instruction, w *Warrior) {
	cell := core.At(dst)
	var test bool

	switch inst.Modifier {
	case redcode.ModA, redcode.ModBA:
		cell.AValue = core.NormalizeField(cell.AValue - 1)
		test = cell.AValue != 0
	case redcode.ModB, redcode.ModAB:
		cell.BValue = core.NormalizeField(cell.BValue - 1)
		test = cell.BValue != 0
	case redcode.ModF, redcode.ModX, redcode.ModI:
		cell.AValue = core.NormalizeField(cell.AValue - 1)
		cell.BValue = core.NormalizeField(cell.BValue - 1)
		test = cell.AValue != 0 && cell.BValue != 0
	}

	core.Set(dst, cell)
	if test {
		w.Queue.ReplaceBack(src)
	}
}

// execSeqSne implements SEQ (eq=true) and SNE (eq=false): on success,
// skip the next instruction by advancing the already-pushed
// fall-through pc one further step.
func execSeqSne(core *Core, src, dst int, inst redcode.Instruction, w *Warrior, eq bool) {
	srcCell := core.At(src)
	dstCell := core.At(dst)
	var equal bool

	switch inst.Modifier {
	case redcode.ModA:
		equal = srcCell.AValue == dstCell.AValue
	case redcode.ModB:
		equal = srcCell.BValue == dstCell.BValue
	case redcode.ModAB:
		equal = srcCell.AValue == dstCell.BValue
	case redcode.ModBA:
		equal = srcCell.BValue == dstCell.AValue
	case redcode.ModF, redcode.ModX:
		equal = srcCell.AValue == dstCell.AValue && srcCell.BValue == dstCell.BValue
	case redcode.ModI:
		equal = srcCell == dstCell
	}

	if equal == eq {
		skip(core, w)
	}
}

func execSlt(core *Core, src, dst int, inst redcode.Instruction, w *Warrior) {
	srcCell := core.At(src)
	dstCell := core.At(dst)
	var less bool

	switch inst.Modifier {
	case redcode.ModA:
		less = srcCell.AValue < dstCell.AValue
	case redcode.ModB:
		less = srcCell.BValue < dstCell.BValue
	case redcode.ModAB:
		less = srcCell.AValue < dstCell.BValue
	case redcode.ModBA:
		less = srcCell.BValue < dstCell.AValue
	}

	if less {
		skip(core, w)
	}
}

func skip(core *Core, w *Warrior) {
	if back, ok := w.Queue.Back(); ok {
		w.Queue.ReplaceBack(core.Rel(back, 1))
	}
}
