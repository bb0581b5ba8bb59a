package asm

import (
	"strconv"

	"github.com/dlowen/corewar/redcode"
)

// Assembler runs two-pass assembly over Redcode source: pass one walks
// every line to record label positions (one slot per instruction
// line, since Redcode is one instruction per line with no directives
// that change size); pass two resolves each operand's symbol (if any)
// to the *relative* offset from that operand's own instruction, since
// all Redcode addressing is pc-relative, and applies the
// default-modifier table when a line omitted `.MOD`.
type Assembler struct{}

// NewAssembler returns a ready-to-use Assembler. It holds no state
// between calls to Assemble.
func NewAssembler() *Assembler {
	return &Assembler{}
}

// Assemble parses source into a Program. Parser errors are returned
// as *ParseError; Assemble never panics on malformed input.
func (a *Assembler) Assemble(source string) (redcode.Program, error) {
	lines, err := parseAllLines(source)
	if err != nil {
		return nil, err
	}

	labels := map[string]int{}
	pos := 0
	pendingLabels := []string{}
	instrLines := make([]*rawLine, 0, len(lines))
	instrPos := make([]int, 0, len(lines))

	for _, line := range lines {
		if line.label != "" {
			pendingLabels = append(pendingLabels, line.label)
		}
		if !line.hasInstr {
			continue
		}
		for _, lbl := range pendingLabels {
			labels[lbl] = pos
		}
		pendingLabels = pendingLabels[:0]
		instrLines = append(instrLines, line)
		instrPos = append(instrPos, pos)
		pos++
	}

	program := make(redcode.Program, len(instrLines))
	for i, line := range instrLines {
		inst, err := resolveInstruction(line, instrPos[i], labels)
		if err != nil {
			return nil, err
		}
		program[i] = inst
	}
	return program, nil
}

func parseAllLines(source string) ([]*rawLine, error) {
	parser := NewParser(NewLexer(source))
	var lines []*rawLine
	for {
		line, err := parser.ParseLine()
		if err != nil {
			return nil, err
		}
		if line == nil {
			return lines, nil
		}
		lines = append(lines, line)
	}
}

func resolveInstruction(line *rawLine, pos int, labels map[string]int) (redcode.Instruction, error) {
	aValue, err := resolveOperand(line.a, pos, labels, line.lineNum)
	if err != nil {
		return redcode.Instruction{}, err
	}
	bValue, err := resolveOperand(line.b, pos, labels, line.lineNum)
	if err != nil {
		return redcode.Instruction{}, err
	}

	modifier := line.modifier
	if !line.hasModifier {
		modifier = defaultModifier(line.opcode, line.a.mode, line.b.mode)
	} else if !redcode.ValidModifier(line.opcode, modifier) {
		return redcode.Instruction{}, &ParseError{
			Line:   line.lineNum,
			Lexeme: modifierName(modifier),
			Msg:    "invalid modifier for opcode " + line.opcode.String(),
		}
	}

	return redcode.Instruction{
		Opcode:   line.opcode,
		Modifier: modifier,
		AValue:   aValue,
		BValue:   bValue,
		AMode:    line.a.mode,
		BMode:    line.b.mode,
	}, nil
}

func resolveOperand(op operand, pos int, labels map[string]int, lineNum int) (int64, error) {
	if op.symbol == "" {
		return op.value, nil
	}
	target, ok := labels[op.symbol]
	if !ok {
		return 0, &ParseError{Line: lineNum, Lexeme: op.symbol, Msg: "undefined label"}
	}
	return int64(target - pos), nil
}

func modifierName(m redcode.Modifier) string {
	for name, v := range modifierByName {
		if v == m {
			return name
		}
	}
	return strconv.Itoa(int(m))
}
