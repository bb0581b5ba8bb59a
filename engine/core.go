package engine

import "github.com/dlowen/corewar/redcode"

// Core is the shared circular memory of Instructions. Cells have no
// identity beyond their index; all index arithmetic normalizes into
// [0, CoreSize) via Rel.
type Core struct {
	Cells    []redcode.Instruction
	CoreSize int
}

// NewCore allocates a core of the given size, every cell set to the
// neutral instruction redcode.Empty.
func NewCore(coreSize int) *Core {
	cells := make([]redcode.Instruction, coreSize)
	for i := range cells {
		cells[i] = redcode.Empty
	}
	return &Core{Cells: cells, CoreSize: coreSize}
}

// Rel computes ((pc + delta) mod core_size + core_size) mod core_size,
// the two-step modulo that keeps a negative delta landing in
// [0, CoreSize) instead of returning a negative index.
func (c *Core) Rel(pc int, delta int64) int {
	n := int64(c.CoreSize)
	v := (int64(pc) + delta) % n
	v = (v + n) % n
	return int(v)
}

// NormalizeField folds an arbitrary signed value into [0, CoreSize),
// used by every arithmetic handler after it mutates a field.
func (c *Core) NormalizeField(v int64) int64 {
	n := int64(c.CoreSize)
	r := v % n
	if r < 0 {
		r += n
	}
	return r
}

func (c *Core) At(i int) redcode.Instruction {
	return c.Cells[i]
}

func (c *Core) Set(i int, inst redcode.Instruction) {
	c.Cells[i] = inst
}
