package parser

import (
	"fmt"

	"github.com/ironlang/iron/lexer"
)

// Error is the single diagnostic a failed parse produces. The parser
// never recovers: the tree is either complete or absent.
type Error struct {
	Pos lexer.Position
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

// fail raises a committed parse error. It is only ever called past a
// production's disambiguation point — a graceful "not my kind" never
// calls fail, it just returns (nil, false) with the cursor untouched.
func fail(pos lexer.Position, msg string) {
	panic(&Error{Pos: pos, Msg: msg})
}

// Parse consumes the entire token sequence and returns the root
// Namespace, or nil and the one diagnostic that aborted the parse.
// Parsing begins by creating the root Namespace named "_" at position
// (0, 0); each top-level declaration is appended to it in source
// order.
func Parse(tokens []lexer.Token) (root *Namespace, err *Error) {
	defer func() {
		if r := recover(); r != nil {
			if pe, ok := r.(*Error); ok {
				root, err = nil, pe
				return
			}
			panic(r)
		}
	}()

	c := newCursor(tokens)
	ns := &Namespace{Pos: lexer.Position{Row: 0, Col: 0}, Name: "_"}

	for !c.atEnd() {
		d, ok := parseDecl(c)
		if !ok {
			fail(c.current().Pos, "expected a declaration")
		}
		if fd, ok := d.(*FuncDefn); ok {
			fd.Scope = ns
		}
		ns.Decls = append(ns.Decls, d)
	}

	return ns, nil
}

// decl := funcDefn
func parseDecl(c *cursor) (Decl, bool) {
	return parseFuncDefn(c)
}

// funcDefn := 'fn' identifier? (':' funcType)? block
func parseFuncDefn(c *cursor) (*FuncDefn, bool) {
	fnTok, ok := c.acceptKind(lexer.KeywordFn)
	if !ok {
		return nil, false
	}

	name := ""
	if idTok, ok := c.acceptKind(lexer.Identifier); ok {
		name = idTok.Text
	}

	var ft *FuncType
	if _, ok := c.acceptKind(lexer.Colon); ok {
		parsed, ok := parseFuncType(c)
		if !ok {
			fail(c.current().Pos, "expected a function type after ':'")
		}
		ft = parsed
	} else {
		// An omitted :funcType synthesizes an empty () => () at the
		// function's position.
		ft = &FuncType{Pos: fnTok.Pos}
	}

	block, ok := parseBlock(c)
	if !ok {
		fail(c.current().Pos, "expected a function body")
	}

	return &FuncDefn{Pos: fnTok.Pos, Name: name, Type: ft, Body: block}, true
}

// funcType := '(' ')' '=>' '(' (varDecl (',' varDecl)*)? ')'
//
// The first "()" must be matched by a two-token peek. The only other
// production needing more than one token of lookahead is funcCall
// (tryParseFuncCall peeks identifier, '(' and ')').
func parseFuncType(c *cursor) (*FuncType, bool) {
	pos := c.current().Pos
	if c.peek(0).Kind != lexer.LParen || c.peek(1).Kind != lexer.RParen {
		return nil, false
	}
	c.advance() // '('
	c.advance() // ')'

	if _, ok := c.acceptKind(lexer.Arrow); !ok {
		fail(c.current().Pos, "expected '=>'")
	}
	if _, ok := c.acceptKind(lexer.LParen); !ok {
		fail(c.current().Pos, "expected '('")
	}

	var outs []*VarDecl
	if c.current().Kind != lexer.RParen {
		for {
			vd, ok := parseVarDecl(c)
			if !ok {
				fail(c.current().Pos, "expected a variable declaration")
			}
			outs = append(outs, vd)
			if _, ok := c.acceptKind(lexer.Comma); ok {
				continue
			}
			break
		}
	}

	if _, ok := c.acceptKind(lexer.RParen); !ok {
		fail(c.current().Pos, "expected ')'")
	}

	return &FuncType{Pos: pos, Outs: outs}, true
}

// varDecl := identifier ':' type?
//
// Disambiguation with funcCall and lvalue, both of which also start
// with an identifier, happens one token further out by whatever
// caller chose to try varDecl in the first place (see parseStmnt);
// here the colon is what the production itself commits on.
func parseVarDecl(c *cursor) (*VarDecl, bool) {
	save := c.snapshot()
	idTok, ok := c.acceptKind(lexer.Identifier)
	if !ok {
		return nil, false
	}
	if _, ok := c.acceptKind(lexer.Colon); !ok {
		c.restore(save)
		return nil, false
	}
	typ := tryParseType(c)
	return &VarDecl{Pos: idTok.Pos, Name: idTok.Text, Type: typ}, true
}

// type := funcType | typename
func tryParseType(c *cursor) Type {
	if ft, ok := parseFuncType(c); ok {
		return ft
	}
	if tn, ok := parseTypename(c); ok {
		return tn
	}
	return nil
}

// typename := identifier
func parseTypename(c *cursor) (*Typename, bool) {
	idTok, ok := c.acceptKind(lexer.Identifier)
	if !ok {
		return nil, false
	}
	return &Typename{Pos: idTok.Pos, Name: idTok.Text}, true
}

// block := '{' stmnt* '}'
func parseBlock(c *cursor) (*Block, bool) {
	lb, ok := c.acceptKind(lexer.LBrace)
	if !ok {
		return nil, false
	}

	var stmnts []Stmnt
	for c.current().Kind != lexer.RBrace {
		if c.atEnd() {
			fail(c.current().Pos, "expected '}'")
		}
		s, ok := parseStmnt(c)
		if !ok {
			fail(c.current().Pos, "expected a statement")
		}
		stmnts = append(stmnts, s)
	}

	if _, ok := c.acceptKind(lexer.RBrace); !ok {
		fail(c.current().Pos, "expected '}'")
	}

	return &Block{Pos: lb.Pos, Stmnts: stmnts}, true
}

// stmnt := retStmnt | varDeclStmnt | exprStmnt
func parseStmnt(c *cursor) (Stmnt, bool) {
	if s, ok := parseRetStmnt(c); ok {
		return s, true
	}
	if s, ok := parseVarDeclStmnt(c); ok {
		return s, true
	}
	if s, ok := parseExprStmnt(c); ok {
		return s, true
	}
	return nil, false
}

// retStmnt := 'ret' expr? ';'
func parseRetStmnt(c *cursor) (*RetStmnt, bool) {
	retTok, ok := c.acceptKind(lexer.KeywordRet)
	if !ok {
		return nil, false
	}

	var expr Expr
	if c.current().Kind != lexer.Semicolon {
		e, ok := parseExpr(c)
		if !ok {
			fail(c.current().Pos, "expected an expression or ';'")
		}
		expr = e
	}

	if _, ok := c.acceptKind(lexer.Semicolon); !ok {
		fail(c.current().Pos, "expected ';'")
	}

	return &RetStmnt{Pos: retTok.Pos, Expr: expr}, true
}

// varDeclStmnt := varDecl initializer? ';'
func parseVarDeclStmnt(c *cursor) (*VarDeclStmnt, bool) {
	decl, ok := parseVarDecl(c)
	if !ok {
		return nil, false
	}

	var init *Initializer
	if c.current().Kind == lexer.LBrace {
		in, ok := parseInitializer(c)
		if !ok {
			fail(c.current().Pos, "expected an initializer")
		}
		init = in
	}

	if _, ok := c.acceptKind(lexer.Semicolon); !ok {
		fail(c.current().Pos, "expected ';'")
	}

	return &VarDeclStmnt{Pos: decl.Pos, Decl: decl, Init: init}, true
}

// initializer := '{' (expr (',' expr)*)? '}'
func parseInitializer(c *cursor) (*Initializer, bool) {
	lb, ok := c.acceptKind(lexer.LBrace)
	if !ok {
		return nil, false
	}

	var exprs []Expr
	if c.current().Kind != lexer.RBrace {
		for {
			e, ok := parseExpr(c)
			if !ok {
				fail(c.current().Pos, "expected an expression")
			}
			exprs = append(exprs, e)
			if _, ok := c.acceptKind(lexer.Comma); ok {
				continue
			}
			break
		}
	}

	if _, ok := c.acceptKind(lexer.RBrace); !ok {
		fail(c.current().Pos, "expected '}'")
	}

	return &Initializer{Pos: lb.Pos, Exprs: exprs}, true
}

// exprStmnt := expr ';'
func parseExprStmnt(c *cursor) (*ExprStmnt, bool) {
	e, ok := parseExpr(c)
	if !ok {
		return nil, false
	}
	if _, ok := c.acceptKind(lexer.Semicolon); !ok {
		fail(c.current().Pos, "expected ';'")
	}
	return &ExprStmnt{Pos: e.Position(), Expr: e}, true
}
