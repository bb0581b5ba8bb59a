package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dlowen/corewar/redcode"
)

func TestNewSimplePlacesProgramAtZero(t *testing.T) {
	program := redcode.Program{
		{Opcode: redcode.MOV, Modifier: redcode.ModI, AMode: redcode.Direct, AValue: 0, BMode: redcode.Direct, BValue: 1},
	}

	sched, err := NewSimple(20, program)
	assert.Nil(t, err)
	assert.Equal(t, program[0], sched.Core.At(0))
	assert.Equal(t, 1, len(sched.Warriors))
	assert.Equal(t, 1, sched.Warriors[0].Queue.Len())
	pc, _ := sched.Warriors[0].Queue.PopFront()
	assert.Equal(t, 0, pc)
}

func TestNewSimpleRejectsProgramLargerThanCore(t *testing.T) {
	program := make(redcode.Program, 5)
	_, err := NewSimple(3, program)
	assert.NotNil(t, err)
	assert.Equal(t, ErrProgramTooLarge, err.Kind)
}

func TestNewBattleRejectsEmptyProgramList(t *testing.T) {
	_, err := NewBattle(nil, MatchSettings{CoreSize: 10}, 1)
	assert.NotNil(t, err)
	assert.Equal(t, ErrEmptyWarriorList, err.Kind)
}

func TestNewBattlePlacesFirstProgramAtMinSeparation(t *testing.T) {
	programs := []redcode.Program{
		{{Opcode: redcode.DAT}},
	}
	settings := NewMatchSettings(10, 2, 0)

	sched, err := NewBattle(programs, settings, 1)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(sched.Warriors))
	pc, _ := sched.Warriors[0].Queue.PopFront()
	assert.Equal(t, 2, pc)
}

func TestNewBattleTwoProgramsFeasibleOffsets(t *testing.T) {
	// Two 1-instruction programs, core_size 22, min_separation 10: the
	// only feasible offset pair is {10, 21} (spec.md §8 scenario 6).
	programs := []redcode.Program{
		{{Opcode: redcode.DAT}},
		{{Opcode: redcode.DAT}},
	}
	settings := NewMatchSettings(22, 10, 0)

	sched, err := NewBattle(programs, settings, 42)
	assert.Nil(t, err)

	offsets := make([]int, 0, 2)
	for _, w := range sched.Warriors {
		pc, _ := w.Queue.PopFront()
		offsets = append(offsets, pc)
	}
	assert.ElementsMatch(t, []int{10, 21}, offsets)
}

func TestNewBattleInsufficientSpace(t *testing.T) {
	programs := []redcode.Program{
		{{Opcode: redcode.DAT}},
		{{Opcode: redcode.DAT}},
	}
	settings := NewMatchSettings(21, 10, 0)

	_, err := NewBattle(programs, settings, 42)
	assert.NotNil(t, err)
	assert.Equal(t, ErrInsufficientSpace, err.Kind)
}

func TestNewBattleDeterministicGivenSameSeed(t *testing.T) {
	programs := func() []redcode.Program {
		return []redcode.Program{
			{{Opcode: redcode.DAT}},
			{{Opcode: redcode.DAT}},
			{{Opcode: redcode.DAT}},
		}
	}
	settings := NewMatchSettings(100, 5, 0)

	sched1, err1 := NewBattle(programs(), settings, 7)
	sched2, err2 := NewBattle(programs(), settings, 7)
	assert.Nil(t, err1)
	assert.Nil(t, err2)

	for i := range sched1.Warriors {
		pc1, _ := sched1.Warriors[i].Queue.PopFront()
		pc2, _ := sched2.Warriors[i].Queue.PopFront()
		assert.Equal(t, pc1, pc2)
	}
}
