// Package parser turns a lexer.Token sequence into a tree rooted at a
// Namespace. The tree is a tagged variant over the node kinds of the
// Iron grammar, expressed as a small family of Go interfaces over
// concrete structs rather than a class hierarchy: downcasts become
// type switches, and Visitor gives callers (such as the printer) an
// exhaustive-dispatch alternative to type switches.
package parser

import "github.com/ironlang/iron/lexer"

// Position is re-exported so callers of this package never need to
// import lexer just to read a node's source location.
type Position = lexer.Position

// Node is the base of every tree node: every node carries its
// position and accepts a Visitor.
type Node interface {
	Position() Position
	Accept(v Visitor)
}

// Decl is a top-level declaration inside a Namespace. Only FuncDefn
// implements it today (program := decl*, decl := funcDefn).
type Decl interface {
	Node
	declNode()
}

// Stmnt is anything that can appear inside a Block.
type Stmnt interface {
	Node
	stmntNode()
}

// Expr is anything that produces a value.
type Expr interface {
	Node
	exprNode()
}

// Type is either a FuncType or a Typename (type := funcType | typename).
type Type interface {
	Node
	typeNode()
}

// BinOp is the closed set of binary operators the grammar supports.
type BinOp int

const (
	OpAdd BinOp = iota
	OpSub
	OpMul
	OpDiv
)

func (op BinOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		return "?"
	}
}

// Namespace is the root scope of a compilation unit. The root
// namespace has no parent and the reserved name "_".
type Namespace struct {
	Pos    Position
	Name   string
	Parent *Namespace // non-owning; nil for the root
	Decls  []Decl
}

func (n *Namespace) Position() Position { return n.Pos }
func (n *Namespace) Accept(v Visitor)   { v.VisitNamespace(n) }

// FuncDefn is a function definition. An empty Name means anonymous.
// Scope is a non-owning back-pointer to the enclosing namespace, used
// only for later mangled-name computation — never to keep the
// namespace alive (the namespace already owns the FuncDefn).
type FuncDefn struct {
	Pos   Position
	Name  string
	Type  *FuncType
	Body  *Block
	Scope *Namespace
}

func (f *FuncDefn) Position() Position { return f.Pos }
func (f *FuncDefn) Accept(v Visitor)   { v.VisitFuncDefn(f) }
func (f *FuncDefn) declNode()          {}

// FuncType is a function signature: an ordered list of inputs and an
// ordered list of outputs. An empty list means "none". Ins is always
// empty under the current grammar (funcType's parameter list is the
// literal "()"); it is modeled as a slice rather than omitted so the
// type is forward-compatible with a parameter list once call
// arguments are added to the grammar.
type FuncType struct {
	Pos  Position
	Ins  []*VarDecl
	Outs []*VarDecl
}

func (f *FuncType) Position() Position { return f.Pos }
func (f *FuncType) Accept(v Visitor)   { v.VisitFuncType(f) }
func (f *FuncType) typeNode()          {}

// VarDecl is a name and an optional type (nil means inferred).
type VarDecl struct {
	Pos  Position
	Name string
	Type Type
}

func (d *VarDecl) Position() Position { return d.Pos }
func (d *VarDecl) Accept(v Visitor)   { v.VisitVarDecl(d) }

// VarDeclStmnt is a statement-level variable declaration with an
// optional initializer.
type VarDeclStmnt struct {
	Pos  Position
	Decl *VarDecl
	Init *Initializer
}

func (s *VarDeclStmnt) Position() Position { return s.Pos }
func (s *VarDeclStmnt) Accept(v Visitor)   { v.VisitVarDeclStmnt(s) }
func (s *VarDeclStmnt) stmntNode()         {}

// Initializer is an ordered, possibly-empty list of expressions.
type Initializer struct {
	Pos   Position
	Exprs []Expr
}

func (i *Initializer) Position() Position { return i.Pos }
func (i *Initializer) Accept(v Visitor)   { v.VisitInitializer(i) }

// Block is a brace-delimited ordered sequence of statements.
type Block struct {
	Pos    Position
	Stmnts []Stmnt
}

func (b *Block) Position() Position { return b.Pos }
func (b *Block) Accept(v Visitor)   { v.VisitBlock(b) }

// ExprStmnt is an expression used as a statement.
type ExprStmnt struct {
	Pos  Position
	Expr Expr
}

func (s *ExprStmnt) Position() Position { return s.Pos }
func (s *ExprStmnt) Accept(v Visitor)   { v.VisitExprStmnt(s) }
func (s *ExprStmnt) stmntNode()         {}

// RetStmnt is a return statement. A nil Expr means a void return.
type RetStmnt struct {
	Pos  Position
	Expr Expr
}

func (s *RetStmnt) Position() Position { return s.Pos }
func (s *RetStmnt) Accept(v Visitor)   { v.VisitRetStmnt(s) }
func (s *RetStmnt) stmntNode()         {}

// BinExpr is a binary operation over two non-nil operands.
type BinExpr struct {
	Pos Position
	Op  BinOp
	Lhs Expr
	Rhs Expr
}

func (e *BinExpr) Position() Position { return e.Pos }
func (e *BinExpr) Accept(v Visitor)   { v.VisitBinExpr(e) }
func (e *BinExpr) exprNode()          {}

// FuncCall is a call to a named function. Arguments are not yet
// modeled; a call always takes the literal form "name()".
type FuncCall struct {
	Pos    Position
	Callee string
}

func (e *FuncCall) Position() Position { return e.Pos }
func (e *FuncCall) Accept(v Visitor)   { v.VisitFuncCall(e) }
func (e *FuncCall) exprNode()          {}

// Lvalue is a bare-identifier expression referring to a named storage
// location.
type Lvalue struct {
	Pos  Position
	Name string
}

func (e *Lvalue) Position() Position { return e.Pos }
func (e *Lvalue) Accept(v Visitor)   { v.VisitLvalue(e) }
func (e *Lvalue) exprNode()          {}

// IntLit is an integer literal: a non-empty digit sequence, a
// negative flag, and an optional type annotation.
type IntLit struct {
	Pos    Position
	Neg    bool
	Digits string
	Type   Type
}

func (e *IntLit) Position() Position { return e.Pos }
func (e *IntLit) Accept(v Visitor)   { v.VisitIntLit(e) }
func (e *IntLit) exprNode()          {}

// FloatLit is a floating-point literal: a non-empty integer part, a
// (possibly empty) fractional part, a negative flag, and an optional
// type annotation.
type FloatLit struct {
	Pos      Position
	Neg      bool
	IntPart  string
	FracPart string
	Type     Type
}

func (e *FloatLit) Position() Position { return e.Pos }
func (e *FloatLit) Accept(v Visitor)   { v.VisitFloatLit(e) }
func (e *FloatLit) exprNode()          {}

// Typename is a bare type identifier, e.g. "i32".
type Typename struct {
	Pos  Position
	Name string
}

func (t *Typename) Position() Position { return t.Pos }
func (t *Typename) Accept(v Visitor)   { v.VisitTypename(t) }
func (t *Typename) typeNode()          {}

// Visitor dispatches over every concrete node kind. An implementation
// implements every method, even for node kinds it does not care
// about. Printer is the one implementation; the emitter walks the
// tree with type switches instead.
type Visitor interface {
	VisitNamespace(n *Namespace)
	VisitFuncDefn(f *FuncDefn)
	VisitFuncType(f *FuncType)
	VisitVarDecl(d *VarDecl)
	VisitVarDeclStmnt(s *VarDeclStmnt)
	VisitInitializer(i *Initializer)
	VisitBlock(b *Block)
	VisitExprStmnt(s *ExprStmnt)
	VisitRetStmnt(s *RetStmnt)
	VisitBinExpr(e *BinExpr)
	VisitFuncCall(e *FuncCall)
	VisitLvalue(e *Lvalue)
	VisitIntLit(e *IntLit)
	VisitFloatLit(e *FloatLit)
	VisitTypename(t *Typename)
}
