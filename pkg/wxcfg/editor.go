// pkg/wxcfg/editor.go
package wxcfg

import "strings"

// Apply rewrites id according to o. Edits run in a fixed order (universal,
// unicode, debug, static, compiler) and each one sees the result of the
// previous. Every edit checks before inserting or removing, so applying the
// same Overrides twice gives the same result as applying them once.
func Apply(id Identifier, o Overrides) Identifier {
	s := string(id)
	if s == "" {
		return id
	}

	s = applyUniversal(s, o.Universal)
	s = applyUnicode(s, o.Unicode)
	s = applyDebug(s, o.Debug)
	s = applyStatic(s, o.Static)
	s = applyCompiler(s, o.Compiler)

	return Identifier(s)
}

// (msw|base) <-> (msw|base)univ
func applyUniversal(s string, t Toggle) string {
	switch t {
	case No:
		if pos := strings.LastIndex(s, MarkerUniversal); pos != -1 {
			s = s[:pos] + s[pos+len(MarkerUniversal):]
		}
	case Yes:
		if strings.Contains(s, MarkerUniversal) {
			return s
		}
		for _, port := range []string{PortMSW, PortBase} {
			if pos := strings.LastIndex(s, port); pos != -1 {
				at := pos + len(port)
				return s[:at] + MarkerUniversal + s[at:]
			}
		}
	}
	return s
}

// ...u / ...ud
func applyUnicode(s string, t Toggle) string {
	switch t {
	case No:
		if strings.HasSuffix(s, "u") {
			return s[:len(s)-1]
		}
		if strings.HasSuffix(s, "ud") {
			return s[:len(s)-2] + "d"
		}
	case Yes:
		if !strings.HasSuffix(s, "u") && !strings.HasSuffix(s, "d") {
			return s + "u"
		}
		if strings.HasSuffix(s, "d") && !strings.HasSuffix(s, "ud") {
			return s[:len(s)-1] + "ud"
		}
	}
	return s
}

// ...d
func applyDebug(s string, t Toggle) string {
	switch t {
	case No:
		return strings.TrimSuffix(s, "d")
	case Yes:
		if !strings.HasSuffix(s, "d") {
			return s + "d"
		}
	}
	return s
}

// _dll <-> _lib, first occurrence only
func applyStatic(s string, t Toggle) string {
	switch t {
	case No:
		return strings.Replace(s, "_"+LinkageLib, "_"+LinkageDLL, 1)
	case Yes:
		return strings.Replace(s, "_"+LinkageDLL, "_"+LinkageLib, 1)
	}
	return s
}

// Unknown compiler names leave s untouched.
func applyCompiler(s, compiler string) string {
	if !IsCompiler(compiler) {
		return s
	}
	for _, c := range Compilers {
		s = strings.Replace(s, c+"_", compiler+"_", 1)
	}
	return s
}
