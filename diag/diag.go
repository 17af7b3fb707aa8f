// Package diag is the colored diagnostic sink shared by cmd/iron and
// cmd/iron-inspect, grounded on the interpreter's practice of routing
// errors through color-tagged, bracket-prefixed lines (e.g.
// "[FILE ERROR]", "[PARSE ERROR]") to distinguish the failing stage at
// a glance.
package diag

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/ironlang/iron/config"
)

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
	greenColor  = color.New(color.FgGreen)
)

// Sink routes progress and error output to its two writers. Whether
// color codes are written is left to fatih/color, which disables
// color process-wide when standard output is not a terminal; Sink
// does no per-writer terminal check of its own.
type Sink struct {
	Out io.Writer
	Err io.Writer

	// Verbosity gates Info/Success (on Verbosity.Info) and Error/Errorf
	// (suppressed by Verbosity.Silent). The zero Verbosity prints no
	// progress output and all error output, matching the environment's
	// unset-INFO/unset-SILENT defaults.
	Verbosity config.Verbosity
}

// New builds a Sink writing progress to out and errors to errw, with
// verbosity read once by the caller (typically config.ReadVerbosity at
// process start) and passed in explicitly.
func New(out, errw io.Writer, verbosity config.Verbosity) *Sink {
	return &Sink{Out: out, Err: errw, Verbosity: verbosity}
}

// Info prints a cyan progress line to Out, when Verbosity.Info is set.
func (s *Sink) Info(format string, args ...any) {
	if !s.Verbosity.Info {
		return
	}
	cyanColor.Fprintf(s.Out, format+"\n", args...)
}

// Success prints a green completion line to Out, when Verbosity.Info
// is set — completion is progress output, not an error.
func (s *Sink) Success(format string, args ...any) {
	if !s.Verbosity.Info {
		return
	}
	greenColor.Fprintf(s.Out, format+"\n", args...)
}

// Result prints a yellow result line to Out, mirroring the
// interpreter's convention of coloring computed output distinctly from
// progress chatter. Results are the program's actual output, not
// progress chatter, so they are not gated by Verbosity.Info.
func (s *Sink) Result(format string, args ...any) {
	yellowColor.Fprintf(s.Out, format+"\n", args...)
}

// Stage identifies which pipeline stage produced a fatal error, for
// the bracketed prefix Error prepends.
type Stage string

const (
	StageFile      Stage = "FILE ERROR"
	StageLex       Stage = "LEX ERROR"
	StageParse     Stage = "PARSE ERROR"
	StageEmit      Stage = "EMIT ERROR"
	StageToolchain Stage = "TOOLCHAIN ERROR"
)

// Error prints a red, stage-prefixed error line to Err, unless
// Verbosity.Silent is set.
func (s *Sink) Error(stage Stage, err error) {
	if s.Verbosity.Silent {
		return
	}
	redColor.Fprintf(s.Err, "[%s] %s\n", stage, err)
}

// Errorf prints a red, stage-prefixed formatted error line to Err,
// unless Verbosity.Silent is set.
func (s *Sink) Errorf(stage Stage, format string, args ...any) {
	if s.Verbosity.Silent {
		return
	}
	redColor.Fprintf(s.Err, "[%s] %s\n", stage, fmt.Sprintf(format, args...))
}
