package mangle

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ironlang/iron/parser"
)

func TestDegenerate_ReturnsRawName(t *testing.T) {
	fd := &parser.FuncDefn{Name: "add", Type: &parser.FuncType{}}
	assert.Equal(t, "add", Degenerate{}.Mangle(fd))
}

func TestDegenerate_AnonymousNameIsEmptyString(t *testing.T) {
	fd := &parser.FuncDefn{Name: "", Type: &parser.FuncType{}}
	assert.Equal(t, "", Degenerate{}.Mangle(fd))
}

func TestStructured_EncodesNameLengthAndArity(t *testing.T) {
	root := &parser.Namespace{Name: "_"}
	fd := &parser.FuncDefn{
		Name:  "add",
		Scope: root,
		Type: &parser.FuncType{
			Ins:  []*parser.VarDecl{{Name: "a"}, {Name: "b"}},
			Outs: []*parser.VarDecl{{Name: "x"}},
		},
	}
	assert.Equal(t, "F3addP2iiR1i", Structured{}.Mangle(fd))
}

func TestStructured_RootNamespaceContributesNoScopePrefix(t *testing.T) {
	root := &parser.Namespace{Name: "_"}
	fd := &parser.FuncDefn{Name: "main", Scope: root, Type: &parser.FuncType{}}
	assert.Equal(t, "F4mainP0R0", Structured{}.Mangle(fd))
}

func TestStructured_DistinctArityProducesDistinctNames(t *testing.T) {
	root := &parser.Namespace{Name: "_"}
	noArgs := &parser.FuncDefn{Name: "f", Scope: root, Type: &parser.FuncType{}}
	oneArg := &parser.FuncDefn{
		Name:  "f",
		Scope: root,
		Type:  &parser.FuncType{Ins: []*parser.VarDecl{{Name: "a"}}},
	}
	assert.NotEqual(t, Structured{}.Mangle(noArgs), Structured{}.Mangle(oneArg))
}
