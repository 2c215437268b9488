// pkg/wxcfg/types.go
package wxcfg

import "strings"

// Identifier names one built configuration of the library, of the form
//
//	<compiler>_<dll|lib>[CFG]\<msw|base>[univ][u][d]
//
// e.g. gcc_dll\mswud. It doubles as the directory name under <prefix>\lib.
type Identifier string

// Separator between the linkage and port halves of an Identifier
const Separator = `\`

// Compiler tags in detection order
const (
	CompilerGCC = "gcc"
	CompilerDMC = "dmc"
	CompilerVC  = "vc"
	CompilerWAT = "wat"
	CompilerBCC = "bcc"
)

// Compilers lists the supported compiler tags in detection order
var Compilers = []string{CompilerGCC, CompilerDMC, CompilerVC, CompilerWAT, CompilerBCC}

// Suffix markers appended after the port name, in this order
const (
	MarkerUniversal = "univ"
	MarkerUnicode   = "u"
	MarkerDebug     = "d"
)

// Linkage and port names
const (
	LinkageDLL = "dll"
	LinkageLib = "lib"
	PortMSW    = "msw"
	PortBase   = "base"
)

// IsCompiler reports whether name is a supported compiler tag
func IsCompiler(name string) bool {
	for _, c := range Compilers {
		if c == name {
			return true
		}
	}
	return false
}

// Normalize converts forward slashes to backslashes and strips one leading and
// one trailing backslash.
func Normalize(s string) Identifier {
	s = strings.ReplaceAll(s, "/", Separator)
	s = strings.TrimPrefix(s, Separator)
	s = strings.TrimSuffix(s, Separator)
	return Identifier(s)
}

// String implements fmt.Stringer
func (id Identifier) String() string {
	return string(id)
}

// Compiler returns the first compiler tag found in id, checked in detection
// order, or "" when none matches.
func (id Identifier) Compiler() string {
	for _, c := range Compilers {
		if strings.Contains(string(id), c+"_") {
			return c
		}
	}
	return ""
}

// Segments splits id on its separators for building filesystem paths
func (id Identifier) Segments() []string {
	var out []string
	for _, seg := range strings.Split(string(id), Separator) {
		if seg != "" {
			out = append(out, seg)
		}
	}
	return out
}

// Toggle is the state of a --flag[=yes|no] switch
type Toggle int

const (
	// Unset means the switch was absent or carried a value other than yes/no
	Unset Toggle = iota
	// Yes is "--flag" or "--flag=yes"
	Yes
	// No is "--flag=no"
	No
)

// ParseToggle maps the text after '=' to a Toggle
func ParseToggle(value string) Toggle {
	switch value {
	case "", "yes":
		return Yes
	case "no":
		return No
	default:
		return Unset
	}
}

func (t Toggle) String() string {
	switch t {
	case Yes:
		return "yes"
	case No:
		return "no"
	default:
		return "unset"
	}
}

// Overrides holds the switches that rewrite an Identifier
type Overrides struct {
	Universal Toggle
	Unicode   Toggle
	Debug     Toggle
	Static    Toggle
	Compiler  string // "" leaves the compiler tag alone
}
