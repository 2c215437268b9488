// pkg/compiler/switches.go
package compiler

import "strings"

// Lib spells one link library
func (s Switches) Lib(lib string) string {
	if lib == "" {
		return ""
	}
	var b strings.Builder
	b.WriteString(s.LinkLibs)
	if s.NeedsLibPrefix {
		b.WriteString(s.LibPrefix)
	}
	b.WriteString(lib)
	if s.NeedsLibExtension {
		b.WriteString(".")
		b.WriteString(s.LibExtension)
	}
	return b.String()
}

// Define spells a preprocessor define
func (s Switches) Define(define string) string {
	if define == "" {
		return ""
	}
	return s.Defines + define
}

// ResDefine spells a resource compiler define
func (s Switches) ResDefine(define string) string {
	if define == "" {
		return ""
	}
	return s.ResDefines + " " + define
}

// IncludeDir spells a header search dir
func (s Switches) IncludeDir(dir string) string {
	if dir == "" {
		return ""
	}
	return s.IncludeDirs + quote(dir, s.CompilerQuotes)
}

// ResIncludeDir spells a resource compiler search dir
func (s Switches) ResIncludeDir(dir string) string {
	if dir == "" {
		return ""
	}
	return s.ResIncludeDirs + " " + quote(dir, s.CompilerQuotes)
}

// LinkerDir spells a library search dir
func (s Switches) LinkerDir(dir string) string {
	if dir == "" {
		return ""
	}
	return s.LibDirs + quote(dir, s.LinkerQuotes)
}

// quote wraps paths holding spaces for tools that need it
func quote(path string, enabled bool) string {
	if !enabled || !strings.ContainsAny(path, " \t") {
		return path
	}
	return `"` + path + `"`
}
