package parser

import (
	"bytes"
	"fmt"
)

const indentSize = 2

// Printer is a Visitor that renders a tree as indented text, one line
// per node. It is used by tests to assert on tree shape without a
// diff-heavy struct dump, and by cmd/iron-inspect to show a parsed
// snippet interactively.
type Printer struct {
	indent int
	buf    bytes.Buffer
}

func (p *Printer) String() string { return p.buf.String() }

func (p *Printer) line(format string, args ...interface{}) {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteByte(' ')
	}
	fmt.Fprintf(&p.buf, format, args...)
	p.buf.WriteByte('\n')
}

func (p *Printer) nested(f func()) {
	p.indent += indentSize
	f()
	p.indent -= indentSize
}

func (p *Printer) VisitNamespace(n *Namespace) {
	p.line("Namespace %s", n.Name)
	p.nested(func() {
		for _, d := range n.Decls {
			d.Accept(p)
		}
	})
}

func (p *Printer) VisitFuncDefn(f *FuncDefn) {
	name := f.Name
	if name == "" {
		name = "<anonymous>"
	}
	p.line("FuncDefn %s", name)
	p.nested(func() {
		f.Type.Accept(p)
		f.Body.Accept(p)
	})
}

func (p *Printer) VisitFuncType(f *FuncType) {
	p.line("FuncType ins=%d outs=%d", len(f.Ins), len(f.Outs))
	p.nested(func() {
		for _, in := range f.Ins {
			in.Accept(p)
		}
		for _, out := range f.Outs {
			out.Accept(p)
		}
	})
}

func (p *Printer) VisitVarDecl(d *VarDecl) {
	p.line("VarDecl %s", d.Name)
	if d.Type != nil {
		p.nested(func() { d.Type.Accept(p) })
	}
}

func (p *Printer) VisitVarDeclStmnt(s *VarDeclStmnt) {
	p.line("VarDeclStmnt")
	p.nested(func() {
		s.Decl.Accept(p)
		if s.Init != nil {
			s.Init.Accept(p)
		}
	})
}

func (p *Printer) VisitInitializer(i *Initializer) {
	p.line("Initializer")
	p.nested(func() {
		for _, e := range i.Exprs {
			e.Accept(p)
		}
	})
}

func (p *Printer) VisitBlock(b *Block) {
	p.line("Block")
	p.nested(func() {
		for _, s := range b.Stmnts {
			s.Accept(p)
		}
	})
}

func (p *Printer) VisitExprStmnt(s *ExprStmnt) {
	p.line("ExprStmnt")
	p.nested(func() { s.Expr.Accept(p) })
}

func (p *Printer) VisitRetStmnt(s *RetStmnt) {
	p.line("RetStmnt")
	if s.Expr != nil {
		p.nested(func() { s.Expr.Accept(p) })
	}
}

func (p *Printer) VisitBinExpr(e *BinExpr) {
	p.line("BinExpr %s", e.Op)
	p.nested(func() {
		e.Lhs.Accept(p)
		e.Rhs.Accept(p)
	})
}

func (p *Printer) VisitFuncCall(e *FuncCall) {
	p.line("FuncCall %s()", e.Callee)
}

func (p *Printer) VisitLvalue(e *Lvalue) {
	p.line("Lvalue %s", e.Name)
}

func (p *Printer) VisitIntLit(e *IntLit) {
	sign := ""
	if e.Neg {
		sign = "-"
	}
	p.line("IntLit %s%s", sign, e.Digits)
}

func (p *Printer) VisitFloatLit(e *FloatLit) {
	sign := ""
	if e.Neg {
		sign = "-"
	}
	p.line("FloatLit %s%s.%s", sign, e.IntPart, e.FracPart)
}

func (p *Printer) VisitTypename(t *Typename) {
	p.line("Typename %s", t.Name)
}
