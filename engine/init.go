package engine

import (
	"math/rand"
	"strconv"

	"github.com/dlowen/corewar/redcode"
)

// NewSimple builds a single-warrior engine for exploration: the
// program is written at offsets [0, len(program)), with one process
// whose initial pc is 0.
func NewSimple(coreSize int, program redcode.Program) (*Scheduler, *Error) {
	if coreSize < len(program) {
		return nil, newError(ErrProgramTooLarge, "core size %d smaller than program of length %d", coreSize, len(program))
	}

	core := NewCore(coreSize)
	for i, inst := range program {
		core.Set(i, inst)
	}

	w := NewWarrior("warrior-1")
	w.Queue.PushBack(0)

	return &Scheduler{
		Core:     core,
		Warriors: []*Warrior{w},
		Settings: NewMatchSettings(coreSize, 0, DefaultMaxProcesses),
	}, nil
}

// block is a maximal run of unused core addresses, linear (never
// wrapping past CoreSize), tracked while placing warriors for a
// battle.
type block struct {
	start, length int
}

// NewBattle places every program under the given settings, using a
// PRNG seeded with seed so that placement is reproducible for a given
// (programs, settings, seed) triple.
func NewBattle(programs []redcode.Program, settings MatchSettings, seed int64) (*Scheduler, *Error) {
	if len(programs) == 0 {
		return nil, newError(ErrEmptyWarriorList, "new_battle requires at least one program")
	}

	core := NewCore(settings.CoreSize)
	warriors := make([]*Warrior, len(programs))
	rng := rand.New(rand.NewSource(seed))

	first := programs[0]
	firstOffset := settings.MinSeparation
	if firstOffset+len(first) > core.CoreSize {
		return nil, newError(ErrInsufficientSpace, "no room for first program of length %d", len(first))
	}
	placeProgram(core, first, firstOffset)
	warriors[0] = warriorAt(0, firstOffset)

	free := []block{{
		start:  firstOffset + len(first) + settings.MinSeparation,
		length: core.CoreSize - (firstOffset + len(first) + settings.MinSeparation),
	}}

	for idx := 1; idx < len(programs); idx++ {
		p := programs[idx]

		total := 0
		for _, b := range free {
			total += feasibleCount(b, len(p))
		}
		if total == 0 {
			return nil, newError(ErrInsufficientSpace, "no feasible offset for program %d (length %d)", idx, len(p))
		}

		n := rng.Intn(total)
		blockIdx, offset := pickOffset(free, len(p), n)

		placeProgram(core, p, offset)
		warriors[idx] = warriorAt(idx, offset)

		free = splitBlock(free, blockIdx, offset, len(p), settings.MinSeparation)
	}

	return &Scheduler{
		Core:     core,
		Warriors: warriors,
		Settings: settings,
	}, nil
}

func feasibleCount(b block, programLen int) int {
	n := b.length - programLen + 1
	if n < 0 {
		return 0
	}
	return n
}

// pickOffset maps a uniform draw n over the total feasible-offset
// count to a (block index, start offset) pair, iterating blocks in
// their canonical (list) order.
func pickOffset(free []block, programLen int, n int) (int, int) {
	for i, b := range free {
		c := feasibleCount(b, programLen)
		if n < c {
			return i, b.start + n
		}
		n -= c
	}
	panic("pickOffset: n out of range, caller miscomputed total")
}

func splitBlock(free []block, blockIdx, offset, programLen, minSeparation int) []block {
	b := free[blockIdx]

	preceding := block{start: b.start, length: offset - minSeparation - b.start}
	following := block{
		start:  offset + programLen + minSeparation,
		length: (b.start + b.length) - (offset + programLen + minSeparation),
	}

	replacement := make([]block, 0, 2)
	if preceding.length > 0 {
		replacement = append(replacement, preceding)
	}
	if following.length > 0 {
		replacement = append(replacement, following)
	}

	next := make([]block, 0, len(free)-1+len(replacement))
	next = append(next, free[:blockIdx]...)
	next = append(next, replacement...)
	next = append(next, free[blockIdx+1:]...)
	return next
}

func placeProgram(core *Core, p redcode.Program, offset int) {
	for i, inst := range p {
		core.Set(offset+i, inst)
	}
}

func warriorAt(idx, pc int) *Warrior {
	w := NewWarrior(warriorName(idx))
	w.Queue.PushBack(pc)
	return w
}

func warriorName(idx int) string {
	return "warrior-" + strconv.Itoa(idx+1)
}
