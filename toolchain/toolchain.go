// Package toolchain drives the two external programs that turn an
// ir.Module into an executable: an IR compiler (llc) that lowers the
// textual IR to target assembly, and a linker (cc) that produces the
// final binary. Neither step is reimplemented in Go.
package toolchain

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/ironlang/iron/ir"
)

// Error reports that an external toolchain step exited non-zero.
// There is no cleanup on failure: the caller can inspect the
// intermediate files left behind to diagnose the failing step.
type Error struct {
	Step   string
	Err    error
	Output string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s\n%s", e.Step, e.Err, e.Output)
}

func (e *Error) Unwrap() error { return e.Err }

// Toolchain names the two binaries this package invokes.
type Toolchain struct {
	IRCompiler string // e.g. "llc": IR text -> target assembly
	Linker     string // e.g. "cc": assembly -> executable
}

// Build serializes mod to a temporary .ir file, runs IRCompiler to
// produce assembly, then Linker to produce the executable at
// outputPath. Each step's combined stdout+stderr is attached to the
// returned *Error on failure.
func (tc Toolchain) Build(mod *ir.Module, outputPath string) error {
	workDir, err := os.MkdirTemp("", "iron-build-*")
	if err != nil {
		return fmt.Errorf("creating build directory: %w", err)
	}

	irPath := filepath.Join(workDir, mod.Name+".ir")
	if err := os.WriteFile(irPath, []byte(mod.Render()), 0o644); err != nil {
		return fmt.Errorf("writing intermediate IR: %w", err)
	}

	asmPath := filepath.Join(workDir, mod.Name+".s")
	if err := tc.run("ir-compile", tc.IRCompiler, irPath, "-o", asmPath); err != nil {
		return err
	}

	if err := tc.run("link", tc.Linker, asmPath, "-o", outputPath); err != nil {
		return err
	}

	return nil
}

func (tc Toolchain) run(step, binary string, args ...string) error {
	cmd := exec.Command(binary, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return &Error{Step: step, Err: err, Output: string(out)}
	}
	return nil
}
