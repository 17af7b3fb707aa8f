// Command iron compiles a single Iron source file to a native
// executable: source -> lexer -> parser -> emit -> toolchain.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ironlang/iron/config"
	"github.com/ironlang/iron/diag"
	"github.com/ironlang/iron/emit"
	"github.com/ironlang/iron/lexer"
	"github.com/ironlang/iron/mangle"
	"github.com/ironlang/iron/parser"
	"github.com/ironlang/iron/source"
	"github.com/ironlang/iron/toolchain"
)

func main() {
	var (
		outputPath string
		configPath string
	)
	flag.StringVar(&outputPath, "o", "", "output executable path (default: config Output)")
	flag.StringVar(&configPath, "config", "iron.yaml", "path to a YAML config file")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: iron [-o out] [-config iron.yaml] <input.iron>")
		os.Exit(2)
	}
	inputPath := flag.Arg(0)

	sink := diag.New(os.Stdout, os.Stderr, config.ReadVerbosity())
	os.Exit(run(sink, inputPath, outputPath, configPath))
}

func run(sink *diag.Sink, inputPath, outputPath, configPath string) int {
	cfg, err := config.Load(configPath)
	if err != nil {
		sink.Error(diag.StageFile, err)
		return 1
	}
	if outputPath == "" {
		outputPath = cfg.Output
	}

	buf, err := source.Load(inputPath)
	if err != nil {
		sink.Error(diag.StageFile, err)
		return 1
	}

	lexResult := lexer.Lex(buf)
	if lexResult.Status == lexer.StatusNoMatch {
		sink.Info("empty input, nothing to compile")
		return 0
	}
	if lexResult.Status != lexer.StatusOK {
		sink.Error(diag.StageLex, lexResult.Err)
		return 1
	}

	ns, perr := parser.Parse(lexResult.Tokens)
	if perr != nil {
		sink.Error(diag.StageParse, perr)
		return 1
	}

	mod, err := emit.Emit(ns, emit.Options{Mangler: manglerFor(cfg.Mangling)})
	if err != nil {
		sink.Error(diag.StageEmit, err)
		return 1
	}
	sink.Info("emitted module %q", mod.Name)

	tc := toolchain.Toolchain{IRCompiler: cfg.IRCompiler, Linker: cfg.Linker}
	if err := tc.Build(mod, outputPath); err != nil {
		sink.Error(diag.StageToolchain, err)
		return 1
	}

	sink.Success("built %s", outputPath)
	return 0
}

func manglerFor(name string) mangle.Mangler {
	if name == "structured" {
		return mangle.Structured{}
	}
	return mangle.Degenerate{}
}
