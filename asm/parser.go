package asm

import (
	"strconv"
	"strings"

	"github.com/dlowen/corewar/redcode"
)

// ParseError is returned for malformed source. It carries the 1-based
// line number and the offending lexeme so a caller can point at the
// exact spot.
type ParseError struct {
	Line   int
	Lexeme string
	Msg    string
}

func (e *ParseError) Error() string {
	return "line " + strconv.Itoa(e.Line) + ": " + e.Msg + " (" + e.Lexeme + ")"
}

// operand is one parsed OPERAND := MODE? INT, with the INT either a
// literal value or a pending label reference resolved by the
// Assembler's second pass.
type operand struct {
	mode   redcode.AddressMode
	value  int64
	symbol string
}

// rawLine is one source line's worth of parsed-but-unresolved state:
// a standalone label, an instruction, or neither (blank/comment-only).
type rawLine struct {
	lineNum     int
	label       string
	hasInstr    bool
	opcode      redcode.Opcode
	modifier    redcode.Modifier
	hasModifier bool
	a           operand
	b           operand
	hasB        bool
}

// Parser turns a token stream from a Lexer into rawLines.
type Parser struct {
	lexer  *Lexer
	tokens []Token
	pos    int
}

// NewParser returns a parser reading from lexer.
func NewParser(lexer *Lexer) *Parser {
	return &Parser{lexer: lexer}
}

// ParseLine reads and parses the next source line. It returns
// (nil, nil) at end of input.
func (p *Parser) ParseLine() (*rawLine, error) {
	p.tokens = p.tokens[:0]
	lineNum := 0

	for {
		tok := p.lexer.NextToken()
		if tok.Type == EOF {
			if len(p.tokens) == 0 {
				return nil, nil
			}
			break
		}
		if tok.Type == EOL {
			if len(p.tokens) == 0 {
				continue
			}
			break
		}
		if tok.Type == COMMENT {
			continue
		}
		if lineNum == 0 {
			lineNum = tok.LineNum
		}
		p.tokens = append(p.tokens, tok)
	}

	if len(p.tokens) == 0 {
		return nil, nil
	}

	p.pos = 0
	line := &rawLine{lineNum: lineNum}

	if p.peek().Type == LABEL && (p.peekAt(1).Type == OPCODE || p.peekAt(1).Type == EOF_SENTINEL) {
		line.label = p.tokens[p.pos].Value
		p.pos++
	}

	if p.pos >= len(p.tokens) {
		// label-only line
		return line, nil
	}

	opTok := p.tokens[p.pos]
	if opTok.Type != OPCODE {
		return nil, &ParseError{Line: lineNum, Lexeme: opTok.Value, Msg: "expected an opcode"}
	}
	op, ok := opcodeByName[strings.ToUpper(opTok.Value)]
	if !ok {
		return nil, &ParseError{Line: lineNum, Lexeme: opTok.Value, Msg: "unknown opcode"}
	}
	line.hasInstr = true
	line.opcode = op
	p.pos++

	if p.peek().Type == MODIFIER {
		modTok := p.tokens[p.pos]
		mod, ok := modifierByName[strings.ToUpper(modTok.Value)]
		if !ok {
			return nil, &ParseError{Line: lineNum, Lexeme: modTok.Value, Msg: "unknown modifier"}
		}
		line.modifier = mod
		line.hasModifier = true
		p.pos++
	}

	a, err := p.parseOperand(lineNum)
	if err != nil {
		return nil, err
	}
	line.a = a

	if p.peek().Type == COMMA {
		p.pos++
		b, err := p.parseOperand(lineNum)
		if err != nil {
			return nil, err
		}
		line.b = b
		line.hasB = true
	}

	if !line.hasB && !opcodesWithOptionalB[op] {
		return nil, &ParseError{Line: lineNum, Lexeme: opTok.Value, Msg: "opcode requires two operands"}
	}
	if !line.hasB {
		line.b = operand{mode: redcode.Direct, value: 0}
	}

	if p.pos < len(p.tokens) {
		extra := p.tokens[p.pos]
		return nil, &ParseError{Line: lineNum, Lexeme: extra.Value, Msg: "unexpected trailing token"}
	}

	return line, nil
}

// EOF_SENTINEL lets peekAt report "ran off the end of the line" using
// the same TokenType switch as a real token, instead of a separate
// bool return.
const EOF_SENTINEL TokenType = -1

func (p *Parser) peek() Token {
	return p.peekAt(0)
}

func (p *Parser) peekAt(offset int) Token {
	idx := p.pos + offset
	if idx >= len(p.tokens) {
		return Token{Type: EOF_SENTINEL}
	}
	return p.tokens[idx]
}

func (p *Parser) parseOperand(lineNum int) (operand, error) {
	mode := redcode.Direct
	if p.peek().Type == MODE {
		mode = modeByPrefix[p.tokens[p.pos].Value[0]]
		p.pos++
	}

	tok := p.peek()
	switch tok.Type {
	case NUMBER:
		p.pos++
		v, err := strconv.ParseInt(tok.Value, 10, 64)
		if err != nil {
			return operand{}, &ParseError{Line: lineNum, Lexeme: tok.Value, Msg: "malformed integer"}
		}
		return operand{mode: mode, value: v}, nil
	case LABEL:
		p.pos++
		return operand{mode: mode, symbol: tok.Value}, nil
	default:
		return operand{}, &ParseError{Line: lineNum, Lexeme: tok.Value, Msg: "expected an operand"}
	}
}
