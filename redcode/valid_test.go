package redcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidModifier(t *testing.T) {
	tests := []struct {
		name     string
		op       Opcode
		mod      Modifier
		expected bool
	}{
		{name: "DAT accepts None", op: DAT, mod: ModNone, expected: true},
		{name: "DAT accepts anything", op: DAT, mod: ModI, expected: true},
		{name: "JMP accepts None", op: JMP, mod: ModNone, expected: true},
		{name: "SPL accepts None", op: SPL, mod: ModNone, expected: true},
		{name: "NOP accepts None", op: NOP, mod: ModNone, expected: true},

		{name: "MOV rejects None", op: MOV, mod: ModNone, expected: false},
		{name: "MOV accepts I", op: MOV, mod: ModI, expected: true},
		{name: "MOV accepts AB", op: MOV, mod: ModAB, expected: true},

		{name: "ADD accepts None as AB override", op: ADD, mod: ModNone, expected: true},
		{name: "SUB accepts None as AB override", op: SUB, mod: ModNone, expected: true},
		{name: "MUL accepts None as AB override", op: MUL, mod: ModNone, expected: true},
		{name: "ADD accepts F", op: ADD, mod: ModF, expected: true},

		{name: "DIV rejects None", op: DIV, mod: ModNone, expected: false},
		{name: "MOD rejects None", op: MOD, mod: ModNone, expected: false},
		{name: "JMZ rejects None", op: JMZ, mod: ModNone, expected: false},
		{name: "JMN rejects None", op: JMN, mod: ModNone, expected: false},
		{name: "DJN rejects None", op: DJN, mod: ModNone, expected: false},
		{name: "SEQ rejects None", op: SEQ, mod: ModNone, expected: false},
		{name: "SNE rejects None", op: SNE, mod: ModNone, expected: false},

		{name: "SLT accepts AB", op: SLT, mod: ModAB, expected: true},
		{name: "SLT accepts BA", op: SLT, mod: ModBA, expected: true},
		{name: "SLT rejects F", op: SLT, mod: ModF, expected: false},
		{name: "SLT rejects X", op: SLT, mod: ModX, expected: false},
		{name: "SLT rejects I", op: SLT, mod: ModI, expected: false},
		{name: "SLT rejects None", op: SLT, mod: ModNone, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidModifier(tt.op, tt.mod))
		})
	}
}
