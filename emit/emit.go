// Package emit lowers a parsed parser.Namespace into an ir.Module,
// resolving names, checking the handful of static constraints the
// design carries (no redefinition, no forward-referenced callees, no
// float literals, no integer literals past 32 bits) and rejecting
// anything outside the IR the ir package can express.
package emit

import (
	"fmt"
	"math"
	"strconv"

	"github.com/ironlang/iron/ir"
	"github.com/ironlang/iron/mangle"
	"github.com/ironlang/iron/parser"
)

// Error is a fatal emission failure. As with the lexer and parser,
// emission errors are not recoverable mid-namespace: the first one
// aborts the whole Emit call.
type Error struct {
	Pos parser.Position
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Row, e.Pos.Col, e.Msg)
}

func fail(pos parser.Position, format string, args ...any) {
	panic(&Error{Pos: pos, Msg: fmt.Sprintf(format, args...)})
}

// Options configures a single Emit call.
type Options struct {
	// Mangler computes external names for every FuncDefn except
	// "main", which is always emitted literally to satisfy the
	// platform's C-runtime entry point. A nil Mangler defaults to
	// mangle.Degenerate{}.
	Mangler mangle.Mangler
}

// Emit lowers ns into a complete ir.Module, or returns the first fatal
// *Error encountered. Functions are declared in source order and a
// FuncCall may only reference a callee already declared earlier in the
// same namespace — a deliberate single-pass limitation rather than a
// two-pass declare/define scheme.
func Emit(ns *parser.Namespace, opts Options) (mod *ir.Module, err error) {
	if opts.Mangler == nil {
		opts.Mangler = mangle.Degenerate{}
	}

	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(*Error)
			if !ok {
				panic(r)
			}
			err = e
		}
	}()

	e := &emitter{mod: ir.NewModule(ns.Name), mangler: opts.Mangler, bySource: make(map[string]*ir.Function)}
	for _, decl := range ns.Decls {
		fd, ok := decl.(*parser.FuncDefn)
		if !ok {
			fail(decl.Position(), "unsupported top-level declaration")
		}
		e.emitFuncDefn(fd)
	}
	return e.mod, nil
}

type emitter struct {
	mod      *ir.Module
	mangler  mangle.Mangler
	bySource map[string]*ir.Function
	b        *ir.Builder
	env      *environment
	retType  ir.Type
}

func externalName(fd *parser.FuncDefn, m mangle.Mangler) string {
	if fd.Name == "main" {
		return "main"
	}
	return m.Mangle(fd)
}

func (e *emitter) emitFuncDefn(fd *parser.FuncDefn) {
	sig := signatureOf(fd.Type)
	name := externalName(fd, e.mangler)

	b, err := e.mod.DeclareFunction(name, sig)
	if err != nil {
		fail(fd.Position(), "%s", err)
	}
	fn, _ := e.mod.Lookup(name)
	e.bySource[fd.Name] = fn

	e.b = b
	e.env = newEnvironment(nil)
	e.retType = sig.Return

	if len(fd.Body.Stmnts) == 0 {
		b.RetVoid()
		return
	}

	for _, stmnt := range fd.Body.Stmnts {
		e.emitStmnt(stmnt)
	}

	if !b.Terminated() {
		fail(fd.Body.Position(), "function %q falls off the end of its body without a return", fd.Name)
	}
}

// signatureOf lowers a FuncType to an ir.Signature. Only a single
// named output is representable in this IR; a FuncType with more than
// one output has no lowering and is rejected.
func signatureOf(ft *parser.FuncType) ir.Signature {
	switch len(ft.Outs) {
	case 0:
		return ir.Signature{Return: ir.Void}
	case 1:
		return ir.Signature{Return: ir.I32}
	default:
		fail(ft.Position(), "function type has %d outputs; only zero or one is supported", len(ft.Outs))
		panic("unreachable")
	}
}

func (e *emitter) emitStmnt(s parser.Stmnt) {
	switch s := s.(type) {
	case *parser.VarDeclStmnt:
		e.emitVarDeclStmnt(s)
	case *parser.ExprStmnt:
		e.emitExpr(s.Expr)
	case *parser.RetStmnt:
		e.emitRetStmnt(s)
	default:
		fail(s.Position(), "unsupported statement")
	}
}

func (e *emitter) emitVarDeclStmnt(s *parser.VarDeclStmnt) {
	var v ir.Value
	switch {
	case s.Init == nil || len(s.Init.Exprs) == 0:
		v = e.b.ConstInt(0, false)
	case len(s.Init.Exprs) == 1:
		v = e.emitExpr(s.Init.Exprs[0])
	default:
		fail(s.Init.Position(), "variable initializer has %d expressions; only one is supported", len(s.Init.Exprs))
	}
	e.env.define(s.Decl.Name, v)
}

func (e *emitter) emitRetStmnt(s *parser.RetStmnt) {
	if s.Expr == nil {
		if e.retType != ir.Void {
			fail(s.Position(), "function declared a return value but this return has none")
		}
		e.b.RetVoid()
		return
	}
	if e.retType == ir.Void {
		fail(s.Position(), "function declared no return value but this return has one")
	}
	e.b.RetValue(e.emitExpr(s.Expr))
}

func (e *emitter) emitExpr(expr parser.Expr) ir.Value {
	switch expr := expr.(type) {
	case *parser.IntLit:
		return e.emitIntLit(expr)
	case *parser.FloatLit:
		fail(expr.Position(), "floating-point literals are not supported by this IR")
		panic("unreachable")
	case *parser.BinExpr:
		return e.emitBinExpr(expr)
	case *parser.FuncCall:
		return e.emitFuncCall(expr)
	case *parser.Lvalue:
		return e.emitLvalue(expr)
	default:
		fail(expr.Position(), "unsupported expression")
		panic("unreachable")
	}
}

// emitIntLit rejects any literal that would not round-trip through a
// signed 32-bit integer, rather than silently truncating it.
func (e *emitter) emitIntLit(lit *parser.IntLit) ir.Value {
	value, err := strconv.ParseInt(lit.Digits, 10, 64)
	if err != nil {
		fail(lit.Position(), "invalid integer literal %q: %s", lit.Digits, err)
	}
	if lit.Neg {
		value = -value
	}
	if value < math.MinInt32 || value > math.MaxInt32 {
		fail(lit.Position(), "integer literal %d does not fit in 32 bits", value)
	}
	return e.b.ConstInt(value, true)
}

func (e *emitter) emitBinExpr(expr *parser.BinExpr) ir.Value {
	lhs := e.emitExpr(expr.Lhs)
	rhs := e.emitExpr(expr.Rhs)
	op, ok := arithOpOf(expr.Op)
	if !ok {
		fail(expr.Position(), "unsupported binary operator")
	}
	return e.b.Arith(op, lhs, rhs)
}

func arithOpOf(op parser.BinOp) (ir.ArithOp, bool) {
	switch op {
	case parser.OpAdd:
		return ir.Add, true
	case parser.OpSub:
		return ir.Sub, true
	case parser.OpMul:
		return ir.Mul, true
	case parser.OpDiv:
		return ir.SDiv, true
	default:
		return "", false
	}
}

// emitFuncCall resolves the callee against functions already declared
// in this module. A call to a name not yet seen is a fatal "missing
// callee" error — Iron does not forward-declare.
func (e *emitter) emitFuncCall(call *parser.FuncCall) ir.Value {
	fn, ok := e.bySource[call.Callee]
	if !ok {
		fail(call.Position(), "call to undeclared function %q", call.Callee)
	}
	return e.b.Call(fn.Name, fn.Signature.Return)
}

func (e *emitter) emitLvalue(lv *parser.Lvalue) ir.Value {
	v, ok := e.env.lookup(lv.Name)
	if !ok {
		fail(lv.Position(), "undeclared variable %q", lv.Name)
	}
	return v
}
