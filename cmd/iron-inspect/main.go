// Command iron-inspect is an interactive REPL for looking at how a
// line of Iron source lexes, parses, and (if it stands alone as a
// complete function) emits. It is adapted from the interpreter's
// read-eval-print loop: readline for line editing and history,
// color-tagged stage errors so a broken line doesn't look like a
// crash.
package main

import (
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/ironlang/iron/emit"
	"github.com/ironlang/iron/lexer"
	"github.com/ironlang/iron/parser"
	"github.com/ironlang/iron/source"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	cyanColor   = color.New(color.FgCyan)
)

const (
	line   = "----------------------------------------------------------------"
	prompt = "iron-inspect> "
)

func main() {
	printBanner(os.Stdout)

	rl, err := readline.New(prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		input, err := rl.Readline()
		if err != nil {
			io.WriteString(os.Stdout, "Good Bye!\n")
			return
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == ".exit" {
			io.WriteString(os.Stdout, "Good Bye!\n")
			return
		}
		rl.SaveHistory(input)

		inspect(os.Stdout, input)
	}
}

func printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", line)
	cyanColor.Fprintln(w, "iron-inspect: tokenize, parse, and emit one line at a time")
	cyanColor.Fprintln(w, "Type '.exit' to quit")
	blueColor.Fprintf(w, "%s\n", line)
}

func inspect(w io.Writer, input string) {
	defer func() {
		if r := recover(); r != nil {
			redColor.Fprintf(w, "[RUNTIME ERROR] %v\n", r)
		}
	}()

	buf := source.FromBytes("<inspect>", []byte(input))
	lexResult := lexer.Lex(buf)
	if lexResult.Status != lexer.StatusOK {
		redColor.Fprintf(w, "[LEX ERROR] %s\n", lexResult.Err)
		return
	}

	ns, perr := parser.Parse(lexResult.Tokens)
	if perr != nil {
		redColor.Fprintf(w, "[PARSE ERROR] %s\n", perr)
		return
	}

	p := &parser.Printer{}
	ns.Accept(p)
	yellowColor.Fprint(w, p.String())

	mod, err := emit.Emit(ns, emit.Options{})
	if err != nil {
		redColor.Fprintf(w, "[EMIT ERROR] %s\n", err)
		return
	}
	yellowColor.Fprint(w, mod.Render())
}
