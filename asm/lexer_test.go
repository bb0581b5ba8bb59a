package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLexerTokensBasic(t *testing.T) {
	lex := NewLexer("MOV.I $0, $1\n")

	tok := lex.NextToken()
	assert.Equal(t, OPCODE, tok.Type)
	assert.Equal(t, "MOV", tok.Value)

	tok = lex.NextToken()
	assert.Equal(t, MODIFIER, tok.Type)
	assert.Equal(t, "I", tok.Value)

	tok = lex.NextToken()
	assert.Equal(t, MODE, tok.Type)
	assert.Equal(t, "$", tok.Value)

	tok = lex.NextToken()
	assert.Equal(t, NUMBER, tok.Type)
	assert.Equal(t, "0", tok.Value)

	tok = lex.NextToken()
	assert.Equal(t, COMMA, tok.Type)

	tok = lex.NextToken()
	assert.Equal(t, MODE, tok.Type)
	assert.Equal(t, "$", tok.Value)

	tok = lex.NextToken()
	assert.Equal(t, NUMBER, tok.Type)
	assert.Equal(t, "1", tok.Value)

	tok = lex.NextToken()
	assert.Equal(t, EOL, tok.Type)

	tok = lex.NextToken()
	assert.Equal(t, EOF, tok.Type)
}

func TestLexerNegativeNumber(t *testing.T) {
	lex := NewLexer("-1")
	tok := lex.NextToken()
	assert.Equal(t, NUMBER, tok.Type)
	assert.Equal(t, "-1", tok.Value)
}

func TestLexerLabel(t *testing.T) {
	lex := NewLexer("start")
	tok := lex.NextToken()
	assert.Equal(t, LABEL, tok.Type)
	assert.Equal(t, "start", tok.Value)
}

func TestLexerComment(t *testing.T) {
	lex := NewLexer("; a comment\nMOV")
	tok := lex.NextToken()
	assert.Equal(t, COMMENT, tok.Type)

	tok = lex.NextToken()
	assert.Equal(t, EOL, tok.Type)

	tok = lex.NextToken()
	assert.Equal(t, OPCODE, tok.Type)
	assert.Equal(t, "MOV", tok.Value)
}

func TestLexerAllModePrefixes(t *testing.T) {
	lex := NewLexer("#$*@{<}>")
	want := []string{"#", "$", "*", "@", "{", "<", "}", ">"}
	for _, w := range want {
		tok := lex.NextToken()
		assert.Equal(t, MODE, tok.Type)
		assert.Equal(t, w, tok.Value)
	}
}

func TestLexerTracksLineNumbers(t *testing.T) {
	lex := NewLexer("MOV\nJMP\n")

	tok := lex.NextToken()
	assert.Equal(t, 1, tok.LineNum)

	lex.NextToken() // EOL
	tok = lex.NextToken()
	assert.Equal(t, 2, tok.LineNum)
}
