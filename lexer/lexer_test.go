package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ironlang/iron/source"
)

func lex(t *testing.T, src string) Result {
	t.Helper()
	buf := source.FromBytes("<test>", []byte(src))
	return Lex(buf)
}

func TestLex_EmptySource(t *testing.T) {
	res := lex(t, "")
	assert.Equal(t, StatusNoMatch, res.Status)
	assert.Len(t, res.Tokens, 0)
}

func TestLex_WhitespaceOnlySource(t *testing.T) {
	res := lex(t, "   \n\t \n ")
	assert.Equal(t, StatusNoMatch, res.Status)
	assert.Len(t, res.Tokens, 0)
}

func TestLex_NonASCIIByteIsBadFile(t *testing.T) {
	res := lex(t, "fn main { ret \xC3\xA9 ; }")
	assert.Equal(t, StatusBadFile, res.Status)
	assert.NotNil(t, res.Err)
}

func TestLex_MinimalMain(t *testing.T) {
	res := lex(t, "fn main { ret ; }")
	assert.Equal(t, StatusOK, res.Status)

	kinds := make([]Kind, len(res.Tokens))
	for i, tok := range res.Tokens {
		kinds[i] = tok.Kind
	}
	assert.Equal(t, []Kind{KeywordFn, Identifier, LBrace, KeywordRet, Semicolon, RBrace}, kinds)
}

func TestLex_ArrowIsTriedBeforeEquals(t *testing.T) {
	res := lex(t, "=>")
	assert.Equal(t, StatusOK, res.Status)
	assert.Len(t, res.Tokens, 1)
	assert.Equal(t, Arrow, res.Tokens[0].Kind)
	assert.Equal(t, "=>", res.Tokens[0].Text)
}

func TestLex_LoneEqualsIsALexError(t *testing.T) {
	res := lex(t, "=")
	assert.Equal(t, StatusLexError, res.Status)
}

func TestLex_IdentifierVsKeyword(t *testing.T) {
	res := lex(t, "fn fnx ret retval")
	assert.Equal(t, StatusOK, res.Status)
	assert.Equal(t, []Kind{KeywordFn, Identifier, KeywordRet, Identifier}, []Kind{
		res.Tokens[0].Kind, res.Tokens[1].Kind, res.Tokens[2].Kind, res.Tokens[3].Kind,
	})
	assert.Equal(t, "fnx", res.Tokens[1].Text)
	assert.Equal(t, "retval", res.Tokens[3].Text)
}

func TestLex_NumberLiteralIsDigitRunOnly(t *testing.T) {
	res := lex(t, "123.45")
	assert.Equal(t, StatusOK, res.Status)
	// The '.' is its own token; the parser recombines int/float parts.
	assert.Equal(t, []Kind{Int, Dot, Int}, []Kind{res.Tokens[0].Kind, res.Tokens[1].Kind, res.Tokens[2].Kind})
	assert.Equal(t, "123", res.Tokens[0].Text)
	assert.Equal(t, "45", res.Tokens[2].Text)
}

func TestLex_QuoteIsForwardProgressFailure(t *testing.T) {
	res := lex(t, `"hello"`)
	assert.Equal(t, StatusLexError, res.Status)
	assert.NotNil(t, res.Err)
}

// TestLex_PositionsMatchNewlineRecomputation exercises invariant 1:
// for every token, (row, col) matches a recomputation by scanning
// newlines from the buffer start.
func TestLex_PositionsMatchNewlineRecomputation(t *testing.T) {
	src := "fn main {\n  ret 7 ;\n}"
	res := lex(t, src)
	assert.Equal(t, StatusOK, res.Status)

	for _, tok := range res.Tokens {
		row, col := recomputePosition(src, tok)
		assert.Equal(t, row, tok.Pos.Row, "token %q", tok.Text)
		assert.Equal(t, col, tok.Pos.Col, "token %q", tok.Text)
	}
}

// recomputePosition scans src from the start, counting newlines, to
// find the (row, col) of the first occurrence of tok's text in src.
// Every token text in this test's source occurs exactly once, so the
// first occurrence is the token itself.
func recomputePosition(src string, tok Token) (row, col int) {
	idx := indexFrom(src, tok.Text, 0)
	row, col = 1, 1
	for i := 0; i < idx; i++ {
		if src[i] == '\n' {
			row++
			col = 1
		} else {
			col++
		}
	}
	return row, col
}

func indexFrom(src, needle string, from int) int {
	for i := from; i+len(needle) <= len(src); i++ {
		if src[i:i+len(needle)] == needle {
			return i
		}
	}
	return -1
}
