package engine

import "github.com/dlowen/corewar/redcode"

// effectiveAddress resolves (value, mode, pc) to a memory index. It
// must be called only after any pre-decrement side effect for this
// operand has already been applied to core, since the Indirect
// resolution reads the (possibly just-decremented) pointer field.
//
// Indirection is exactly one level deep: the field read at the
// intermediate cell is a direct relative offset from that intermediate
// cell, not a further chain.
func effectiveAddress(core *Core, pc int, value int64, mode redcode.AddressMode) int {
	switch mode {
	case redcode.Immediate:
		return pc
	case redcode.Direct:
		return core.Rel(pc, value)
	case redcode.IndirectA, redcode.PreDecrementIndirectA, redcode.PostIncrementIndirectA:
		i := core.Rel(pc, value)
		return core.Rel(i, core.At(i).AValue)
	case redcode.IndirectB, redcode.PreDecrementIndirectB, redcode.PostIncrementIndirectB:
		i := core.Rel(pc, value)
		return core.Rel(i, core.At(i).BValue)
	default:
		return pc
	}
}

// applyPreDecrement decrements the pointed-to field for a
// pre-decrement mode, before the operand is resolved. Any mode that
// isn't one of the two pre-decrement forms is a no-op here.
func applyPreDecrement(core *Core, pc int, value int64, mode redcode.AddressMode) {
	switch mode {
	case redcode.PreDecrementIndirectA:
		i := core.Rel(pc, value)
		cell := core.At(i)
		cell.AValue = core.NormalizeField(cell.AValue - 1)
		core.Set(i, cell)
	case redcode.PreDecrementIndirectB:
		i := core.Rel(pc, value)
		cell := core.At(i)
		cell.BValue = core.NormalizeField(cell.BValue - 1)
		core.Set(i, cell)
	}
}

// applyPostIncrement increments the pointed-to field for a
// post-increment mode, after the handler has run. Recomputing the
// intermediate index i = rel(pc, value) here is safe even though the
// handler may have mutated memory: i depends only on pc and value,
// which are fixed at fetch time, never on memory contents. If the
// handler already wrote to that same cell, the increment lands on top
// of that write, not the pre-handler value.
func applyPostIncrement(core *Core, pc int, value int64, mode redcode.AddressMode) {
	switch mode {
	case redcode.PostIncrementIndirectA:
		i := core.Rel(pc, value)
		cell := core.At(i)
		cell.AValue = core.NormalizeField(cell.AValue + 1)
		core.Set(i, cell)
	case redcode.PostIncrementIndirectB:
		i := core.Rel(pc, value)
		cell := core.At(i)
		cell.BValue = core.NormalizeField(cell.BValue + 1)
		core.Set(i, cell)
	}
}
