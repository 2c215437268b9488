// pkg/cmdline/parser.go
package cmdline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/arc-language/wxconfig/pkg/options"
	"github.com/arc-language/wxconfig/pkg/wxcfg"
)

var (
	// ErrInvalidArguments is returned when no recognized switch was given
	ErrInvalidArguments = errors.New("invalid arguments")

	// ErrMalformedOverride is returned for a --define-variable without NAME=VALUE
	ErrMalformedOverride = errors.New("malformed variable definition")
)

// CommandLine is the parsed form of the program arguments
type CommandLine struct {
	Flags *options.Options // --flag -> value ("" when given without '=')
	Libs  []string         // requested library components, deduplicated, in order

	args []string
}

// Parse splits every argument on its first '=' into Flags. The last argument,
// when it holds no "--", is read as a comma separated component list.
// args must not include the program name.
func Parse(args []string) *CommandLine {
	cl := &CommandLine{
		Flags: options.New(),
		args:  append([]string(nil), args...),
	}

	for _, arg := range args {
		key, value, _ := strings.Cut(arg, "=")
		cl.Flags.Set(key, value)
	}

	var tail string
	if len(args) > 0 {
		tail = args[len(args)-1]
	}
	cl.Libs = parseLibs(tail)

	return cl
}

// parseLibs builds the requested component list from the trailing argument
func parseLibs(tail string) []string {
	var libs []string
	seen := make(map[string]bool)
	add := func(lib string) {
		if lib == "" || seen[lib] {
			return
		}
		seen[lib] = true
		libs = append(libs, lib)
	}

	if !strings.Contains(tail, "--") {
		for _, lib := range strings.Split(tail, ",") {
			add(lib)
		}
	}

	if len(libs) == 0 || seen[StdLibs] {
		for _, lib := range DefaultLibs {
			add(lib)
		}
	}

	return libs
}

// Has reports whether flag was given, with or without a value
func (c *CommandLine) Has(flag string) bool {
	return c.Flags.Has(flag)
}

// Value returns the text after '=' for flag
func (c *CommandLine) Value(flag string) string {
	return c.Flags.Get(flag)
}

// Valid reports whether at least one recognized switch is present
func (c *CommandLine) Valid() bool {
	for _, name := range recognized {
		if c.Flags.Has(name) {
			return true
		}
	}
	return false
}

// Unrecognized returns the first argument that is not a recognized switch.
// It returns "" when there is none or when --help was asked for.
func (c *CommandLine) Unrecognized() string {
	if c.Flags.Has(FlagHelp) {
		return ""
	}
	for _, arg := range c.args {
		key, _, _ := strings.Cut(arg, "=")
		if !IsRecognized(key) {
			return key
		}
	}
	return ""
}

// Validate returns an error wrapping ErrInvalidArguments when Valid is false.
// The error names the offending switch when one can be pointed at.
func (c *CommandLine) Validate() error {
	if c.Valid() {
		return nil
	}
	if bad := c.Unrecognized(); bad != "" {
		return fmt.Errorf("%w: unrecognised option '%s'", ErrInvalidArguments, bad)
	}
	return ErrInvalidArguments
}

// Toggle reads a --flag[=yes|no] switch
func (c *CommandLine) Toggle(flag string) wxcfg.Toggle {
	value, ok := c.Flags.Lookup(flag)
	if !ok {
		return wxcfg.Unset
	}
	return wxcfg.ParseToggle(value)
}

// Overrides collects the identifier editing switches
func (c *CommandLine) Overrides() wxcfg.Overrides {
	return wxcfg.Overrides{
		Universal: c.Toggle(FlagUniversal),
		Unicode:   c.Toggle(FlagUnicode),
		Debug:     c.Toggle(FlagDebug),
		Static:    c.Toggle(FlagStatic),
		Compiler:  c.Value(FlagCompiler),
	}
}

// Definition splits --define-variable=NAME=VALUE. ok is false when the switch
// is absent; a present switch without a second '=' yields ErrMalformedOverride.
func (c *CommandLine) Definition() (name, value string, ok bool, err error) {
	raw, present := c.Flags.Lookup(FlagDefineVariable)
	if !present {
		return "", "", false, nil
	}
	name, value, found := strings.Cut(raw, "=")
	if !found {
		return "", "", true, fmt.Errorf("%w: failed to define a variable as '%s'", ErrMalformedOverride, raw)
	}
	return name, value, true, nil
}
