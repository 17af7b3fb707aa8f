package ir

import "fmt"

// RedefinitionError reports that a function name was declared twice
// in the same module. LLVM would silently rename the second
// definition; this design rejects that and requires a fatal emission
// error instead.
type RedefinitionError struct {
	Name string
}

func (e *RedefinitionError) Error() string {
	return fmt.Sprintf("redefinition of %q", e.Name)
}

// DeclareFunction reserves name in the module with the given
// signature and returns a Builder positioned at its entry block. It
// fails with *RedefinitionError if name is already declared — the
// module is never mutated by a failed call.
func (m *Module) DeclareFunction(name string, sig Signature) (*Builder, error) {
	if _, exists := m.byName[name]; exists {
		return nil, &RedefinitionError{Name: name}
	}
	fn := newFunction(name, sig)
	m.byName[name] = fn
	m.Functions = append(m.Functions, fn)
	return &Builder{fn: fn}, nil
}

// Builder accumulates instructions into one function's entry block, in
// the order its methods are called. It never mutates the module
// beyond appending to that one block.
type Builder struct {
	fn *Function
}

// Terminated reports whether the block already ends in a terminator;
// once true, the emitter must not append any further instruction.
func (b *Builder) Terminated() bool { return b.fn.Entry.terminated() }

func (b *Builder) emit(inst Instruction) {
	b.fn.Entry.Instructions = append(b.fn.Entry.Instructions, inst)
}

// ConstInt emits a 32-bit constant-integer instruction and returns
// the value it produces.
func (b *Builder) ConstInt(value int64, signed bool) Value {
	dest := b.fn.nextVal()
	b.emit(constInt{dest: dest, typ: I32, value: value, signed: signed})
	return dest
}

// Call emits a call-by-name instruction against a function already
// present in the module (checked by the caller, emit.emitFuncCall)
// and returns the value it produces, if any.
func (b *Builder) Call(name string, ret Type) Value {
	dest := b.fn.nextVal()
	b.emit(call{dest: dest, typ: ret, name: name})
	return dest
}

// Arith emits an arithmetic instruction over two 32-bit integer
// operands and returns the value it produces.
func (b *Builder) Arith(op ArithOp, lhs, rhs Value) Value {
	dest := b.fn.nextVal()
	b.emit(arith{dest: dest, op: op, typ: I32, lhs: lhs, rhs: rhs})
	return dest
}

// RetValue emits a return-value terminator.
func (b *Builder) RetValue(v Value) {
	b.emit(retValue{typ: I32, val: v})
}

// RetVoid emits a return-void terminator.
func (b *Builder) RetVoid() {
	b.emit(retVoid{})
}
