// Package config loads the external toolchain binary paths and
// mangling scheme as an optional YAML file, keeping the default
// zero-config path working while letting an environment with a
// nonstandard llc/gcc layout override it.
package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds the external toolchain invocation and mangling
// settings for one compilation.
type Config struct {
	// IRCompiler is the binary that turns the emitted textual IR into
	// target assembly, e.g. llc.
	IRCompiler string `yaml:"ir_compiler"`
	// Linker is the binary that turns assembly into an executable,
	// e.g. cc or gcc.
	Linker string `yaml:"linker"`
	// Output is the default executable path used when the CLI's -o
	// flag is not given.
	Output string `yaml:"output"`
	// Mangling selects the name-mangling scheme: "degenerate" (the
	// default) or "structured".
	Mangling string `yaml:"mangling"`
}

// Default returns the zero-config settings: llc and cc on $PATH,
// output named "a.out", degenerate mangling.
func Default() Config {
	return Config{
		IRCompiler: "llc",
		Linker:     "cc",
		Output:     "a.out",
		Mangling:   "degenerate",
	}
}

// Load reads a YAML config file at path, starting from Default() and
// overriding only the fields the file sets. A missing file is not an
// error — Load returns Default() unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	bytes, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, err
	}

	if err := yaml.Unmarshal(bytes, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Verbosity holds the two process-wide output toggles, read once at
// startup from the environment and passed explicitly from there on —
// never stored in a package-level variable.
type Verbosity struct {
	// Info enables progress output (INFO env var).
	Info bool
	// Silent suppresses error output (SILENT env var).
	Silent bool
}

// ReadVerbosity reads INFO and SILENT from the environment. Either
// variable is true when it parses as a bool truthy value (e.g. "1",
// "true"); unset or unparsable is false.
func ReadVerbosity() Verbosity {
	info, _ := strconv.ParseBool(os.Getenv("INFO"))
	silent, _ := strconv.ParseBool(os.Getenv("SILENT"))
	return Verbosity{Info: info, Silent: silent}
}
