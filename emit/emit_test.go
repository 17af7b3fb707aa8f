package emit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ironlang/iron/lexer"
	"github.com/ironlang/iron/mangle"
	"github.com/ironlang/iron/parser"
	"github.com/ironlang/iron/source"
)

func mustParse(t *testing.T, src string) *parser.Namespace {
	t.Helper()
	res := lexer.Lex(source.FromBytes("<test>", []byte(src)))
	if res.Status != lexer.StatusOK {
		t.Fatalf("lex failed: %v", res.Err)
	}
	ns, err := parser.Parse(res.Tokens)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return ns
}

// S2 — integer literal return lowers to a constant and a value return.
func TestEmit_IntegerLiteralReturn(t *testing.T) {
	ns := mustParse(t, "fn main : () => (x: i32) { ret 7 ; }")
	mod, err := Emit(ns, Options{})
	assert.NoError(t, err)

	out := mod.Render()
	assert.Contains(t, out, "define i32 @main()")
	assert.Contains(t, out, "const i32 7")
	assert.Contains(t, out, "ret i32")
}

func TestEmit_VoidMainReturnsVoid(t *testing.T) {
	ns := mustParse(t, "fn main { ret ; }")
	mod, err := Emit(ns, Options{})
	assert.NoError(t, err)
	assert.Contains(t, mod.Render(), "define void @main()")
	assert.Contains(t, mod.Render(), "ret void")
}

// An empty block is not a missing-terminator error: it lowers to a
// bare "ret void", matching the C-runtime convention that an empty
// function body simply returns.
func TestEmit_EmptyBlockEmitsRetVoid(t *testing.T) {
	ns := mustParse(t, "fn f {}")
	mod, err := Emit(ns, Options{})
	assert.NoError(t, err)
	assert.Contains(t, mod.Render(), "ret void")
}

// S3 — redefinition of a function name is a fatal emission error,
// even though the two FuncDefn nodes parsed independently.
func TestEmit_RedefinitionIsFatal(t *testing.T) {
	ns := mustParse(t, "fn main { ret ; } fn main { ret ; }")
	_, err := Emit(ns, Options{})
	assert.Error(t, err)

	var e *Error
	assert.ErrorAs(t, err, &e)
	assert.Contains(t, e.Msg, "redefinition")
}

// Invariant: a function body that falls off the end without a return
// is a fatal error.
func TestEmit_MissingTerminatorIsFatal(t *testing.T) {
	ns := mustParse(t, "fn f { x: i32 { 1 } ; }")
	_, err := Emit(ns, Options{})
	assert.Error(t, err)

	var e *Error
	assert.ErrorAs(t, err, &e)
	assert.Contains(t, e.Msg, "falls off the end")
}

// Invariant: calling a function not yet declared earlier in the same
// namespace is a fatal "missing callee" error.
func TestEmit_CallToUndeclaredFunctionIsFatal(t *testing.T) {
	ns := mustParse(t, "fn f { g() ; ret ; } fn g { ret ; }")
	_, err := Emit(ns, Options{})
	assert.Error(t, err)

	var e *Error
	assert.ErrorAs(t, err, &e)
	assert.Contains(t, e.Msg, "undeclared function")
}

func TestEmit_CallToEarlierDeclaredFunctionSucceeds(t *testing.T) {
	ns := mustParse(t, "fn g { ret ; } fn f { g() ; ret ; }")
	mod, err := Emit(ns, Options{})
	assert.NoError(t, err)
	assert.Contains(t, mod.Render(), "call void @g()")
}

func TestEmit_FloatLiteralIsRejected(t *testing.T) {
	ns := mustParse(t, "fn f : () => (x: i32) { ret 1.5 ; }")
	_, err := Emit(ns, Options{})
	assert.Error(t, err)
}

func TestEmit_OversizedIntegerLiteralIsRejected(t *testing.T) {
	ns := mustParse(t, "fn f : () => (x: i32) { ret 99999999999 ; }")
	_, err := Emit(ns, Options{})
	assert.Error(t, err)

	var e *Error
	assert.ErrorAs(t, err, &e)
	assert.Contains(t, e.Msg, "32 bits")
}

func TestEmit_VarDeclBindsNameForLaterLvalueUse(t *testing.T) {
	ns := mustParse(t, "fn main : () => (x: i32) { a: i32 { 3 } ; ret a ; }")
	mod, err := Emit(ns, Options{})
	assert.NoError(t, err)
	out := mod.Render()
	assert.Contains(t, out, "const i32 3")
	assert.Contains(t, out, "ret i32 %0")
}

func TestEmit_UndeclaredLvalueIsFatal(t *testing.T) {
	ns := mustParse(t, "fn main : () => (x: i32) { ret y ; }")
	_, err := Emit(ns, Options{})
	assert.Error(t, err)

	var e *Error
	assert.ErrorAs(t, err, &e)
	assert.Contains(t, e.Msg, "undeclared variable")
}

func TestEmit_StructuredManglerChangesExternalNameButNotMain(t *testing.T) {
	ns := mustParse(t, "fn main { ret ; } fn helper { ret ; }")
	mod, err := Emit(ns, Options{Mangler: mangle.Structured{}})
	assert.NoError(t, err)
	out := mod.Render()
	assert.Contains(t, out, "@main()")
	assert.NotContains(t, out, "@helper()")
}
