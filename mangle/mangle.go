// Package mangle computes external symbol names for FuncDefn nodes.
// It offers both a raw, unmangled scheme and a scope-and-arity-encoded
// one behind a single interface, with the raw scheme wired in as the
// default.
package mangle

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ironlang/iron/parser"
)

// Mangler computes the external symbol name for a function
// definition. It is never consulted for "main", which is always
// emitted as the literal "main" to match the platform entry-point ABI
// — that exception lives in the emitter, not here.
type Mangler interface {
	Mangle(fd *parser.FuncDefn) string
}

// Degenerate returns the function's raw source name unchanged. This is
// the mangler the emitter uses by default, when emit.Options names no
// other; cmd/iron selects Structured only when the config's mangling
// setting is "structured".
type Degenerate struct{}

func (Degenerate) Mangle(fd *parser.FuncDefn) string {
	return fd.Name
}

// Structured implements a scope + arity encoding:
// <scope-mangle><F><name-length><name><funcTypeMangle>, with
// function-type mangling encoding input and output arities as
// "P<n>...R<m>..." with a placeholder per-parameter type code. It is
// provided but not authoritative — emit.Options chooses it explicitly.
type Structured struct{}

func (Structured) Mangle(fd *parser.FuncDefn) string {
	var b strings.Builder
	b.WriteString(scopeMangle(fd.Scope))
	b.WriteByte('F')
	b.WriteString(strconv.Itoa(len(fd.Name)))
	b.WriteString(fd.Name)
	b.WriteString(funcTypeMangle(fd.Type))
	return b.String()
}

// scopeMangle encodes the chain of enclosing namespaces, root-most
// first. The root namespace's reserved name "_" contributes nothing —
// only nested namespaces would, and Iron has none yet (no module
// system), so this is always empty today.
func scopeMangle(ns *parser.Namespace) string {
	var names []string
	for n := ns; n != nil && n.Parent != nil; n = n.Parent {
		names = append([]string{n.Name}, names...)
	}
	var b strings.Builder
	for _, name := range names {
		b.WriteString(fmt.Sprintf("N%d%s", len(name), name))
	}
	return b.String()
}

// funcTypeMangle encodes a function type's input/output arity. Each
// parameter's type is placeholder-encoded as "i" (there is only one
// IR-reachable type today: 32-bit integer).
func funcTypeMangle(ft *parser.FuncType) string {
	var b strings.Builder
	fmt.Fprintf(&b, "P%d", len(ft.Ins))
	for range ft.Ins {
		b.WriteByte('i')
	}
	fmt.Fprintf(&b, "R%d", len(ft.Outs))
	for range ft.Outs {
		b.WriteByte('i')
	}
	return b.String()
}
