package parser

import "github.com/ironlang/iron/lexer"

// expr := addExpr
func parseExpr(c *cursor) (Expr, bool) {
	return parseAddExpr(c)
}

// addExpr := multExpr (('+' | '-') multExpr)*
//
// The grammar as given is non-recursive on the left (at most one
// operator); this implementation extends it to a left-associative
// loop so that a+b+c parses as (a+b)+c. This is the only deviation
// from the grammar's literal text.
func parseAddExpr(c *cursor) (Expr, bool) {
	left, ok := parseMultExpr(c)
	if !ok {
		return nil, false
	}

	for {
		opTok := c.current()
		var op BinOp
		switch opTok.Kind {
		case lexer.Plus:
			op = OpAdd
		case lexer.Minus:
			op = OpSub
		default:
			return left, true
		}
		c.advance()

		right, ok := parseMultExpr(c)
		if !ok {
			fail(c.current().Pos, "expected an expression after '"+opTok.Text+"'")
		}
		left = &BinExpr{Pos: left.Position(), Op: op, Lhs: left, Rhs: right}
	}
}

// multExpr := primary (('*' | '/') primary)*
func parseMultExpr(c *cursor) (Expr, bool) {
	left, ok := parsePrimary(c)
	if !ok {
		return nil, false
	}

	for {
		opTok := c.current()
		var op BinOp
		switch opTok.Kind {
		case lexer.Star:
			op = OpMul
		case lexer.Slash:
			op = OpDiv
		default:
			return left, true
		}
		c.advance()

		right, ok := parsePrimary(c)
		if !ok {
			fail(c.current().Pos, "expected an expression after '"+opTok.Text+"'")
		}
		left = &BinExpr{Pos: left.Position(), Op: op, Lhs: left, Rhs: right}
	}
}

// primary := '(' expr ')' | literal | funcCall | lvalue
//
// Ordering matters: within expr, literal is tried before funcCall,
// which is tried before lvalue, so a bare identifier followed by "()"
// becomes a call and any other identifier becomes an lvalue.
func parsePrimary(c *cursor) (Expr, bool) {
	if _, ok := c.acceptKind(lexer.LParen); ok {
		e, ok := parseExpr(c)
		if !ok {
			fail(c.current().Pos, "expected an expression after '('")
		}
		if _, ok := c.acceptKind(lexer.RParen); !ok {
			fail(c.current().Pos, "expected ')'")
		}
		return e, true
	}

	if lit, ok := tryParseLiteral(c); ok {
		return lit, true
	}
	if call, ok := tryParseFuncCall(c); ok {
		return call, true
	}
	if lv, ok := tryParseLvalue(c); ok {
		return lv, true
	}
	return nil, false
}

// literal := ('-')? number ('.' number?)? (':' type)?
func tryParseLiteral(c *cursor) (Expr, bool) {
	save := c.snapshot()
	startPos := c.current().Pos

	neg := false
	if _, ok := c.acceptKind(lexer.Minus); ok {
		neg = true
	}

	intTok, ok := c.acceptKind(lexer.Int)
	if !ok {
		c.restore(save)
		return nil, false
	}

	if _, ok := c.acceptKind(lexer.Dot); ok {
		fracPart := ""
		if fracTok, ok := c.acceptKind(lexer.Int); ok {
			fracPart = fracTok.Text
		}
		typ := tryParseAnnotation(c)
		return &FloatLit{Pos: startPos, Neg: neg, IntPart: intTok.Text, FracPart: fracPart, Type: typ}, true
	}

	typ := tryParseAnnotation(c)
	return &IntLit{Pos: startPos, Neg: neg, Digits: intTok.Text, Type: typ}, true
}

// tryParseAnnotation parses the optional (':' type) suffix of a
// literal. If a numberLit is followed by ':', a type is required
// after the colon — its absence is a hard parse error.
func tryParseAnnotation(c *cursor) Type {
	if _, ok := c.acceptKind(lexer.Colon); ok {
		typ := tryParseType(c)
		if typ == nil {
			fail(c.current().Pos, "expected a type after ':'")
		}
		return typ
	}
	return nil
}

// funcCall := identifier '(' ')'
func tryParseFuncCall(c *cursor) (Expr, bool) {
	if c.peek(0).Kind != lexer.Identifier || c.peek(1).Kind != lexer.LParen || c.peek(2).Kind != lexer.RParen {
		return nil, false
	}
	idTok := c.advance()
	c.advance() // '('
	c.advance() // ')'
	return &FuncCall{Pos: idTok.Pos, Callee: idTok.Text}, true
}

// lvalue := identifier
func tryParseLvalue(c *cursor) (Expr, bool) {
	idTok, ok := c.acceptKind(lexer.Identifier)
	if !ok {
		return nil, false
	}
	return &Lvalue{Pos: idTok.Pos, Name: idTok.Text}, true
}
