package emit

import "github.com/ironlang/iron/ir"

// environment binds local variable names to the IR values that hold
// them, in a parent-chained lookup adapted from the interpreter's
// scope.Scope design: a miss walks outward to the enclosing
// environment instead of failing immediately. Every FuncDefn body
// today introduces exactly one flat environment with no parent, since
// the grammar has no nested block scoping yet — the chain exists so a
// future nested-block construct slots in without reshaping this type.
type environment struct {
	vars   map[string]ir.Value
	parent *environment
}

func newEnvironment(parent *environment) *environment {
	return &environment{vars: make(map[string]ir.Value), parent: parent}
}

func (e *environment) define(name string, v ir.Value) {
	e.vars[name] = v
}

func (e *environment) lookup(name string) (ir.Value, bool) {
	for cur := e; cur != nil; cur = cur.parent {
		if v, ok := cur.vars[name]; ok {
			return v, true
		}
	}
	return ir.Value{}, false
}
