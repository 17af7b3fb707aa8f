package parser

import "github.com/ironlang/iron/lexer"

// cursor is a mutable index into a token slice. Every production
// accepts a cursor: on success it advances the cursor and returns a
// node; on graceful failure it leaves the cursor untouched. snapshot
// and restore make that no-consume-on-failure rule a cheap index
// save/restore rather than ad-hoc rollback logic.
type cursor struct {
	tokens []lexer.Token
	pos    int
}

func newCursor(tokens []lexer.Token) *cursor {
	return &cursor{tokens: tokens, pos: 0}
}

// snapshot captures the current position.
func (c *cursor) snapshot() int { return c.pos }

// restore resets the cursor to a previously captured position.
func (c *cursor) restore(mark int) { c.pos = mark }

// peek returns the token offset tokens ahead of the cursor without
// consuming anything. peek(0) is the current token. Past the end of
// the stream it returns a synthetic EOF token positioned at the last
// token's position (or the origin, for an empty stream).
func (c *cursor) peek(offset int) lexer.Token {
	idx := c.pos + offset
	if idx >= len(c.tokens) {
		return lexer.Token{Kind: lexer.EOF, Pos: c.eofPos()}
	}
	return c.tokens[idx]
}

func (c *cursor) eofPos() lexer.Position {
	if len(c.tokens) == 0 {
		return lexer.Position{Row: 1, Col: 1}
	}
	return c.tokens[len(c.tokens)-1].Pos
}

// current is shorthand for peek(0).
func (c *cursor) current() lexer.Token { return c.peek(0) }

// atEnd reports whether the cursor has consumed every token.
func (c *cursor) atEnd() bool { return c.pos >= len(c.tokens) }

// advance consumes and returns the current token.
func (c *cursor) advance() lexer.Token {
	tok := c.current()
	if c.pos < len(c.tokens) {
		c.pos++
	}
	return tok
}

// acceptKind consumes and returns the current token if it has kind k;
// otherwise it leaves the cursor untouched and returns false.
func (c *cursor) acceptKind(k lexer.Kind) (lexer.Token, bool) {
	if c.current().Kind == k {
		return c.advance(), true
	}
	return lexer.Token{}, false
}
