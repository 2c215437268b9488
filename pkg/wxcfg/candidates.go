// pkg/wxcfg/candidates.go
package wxcfg

// variants is the fixed enumeration of marker combinations probed per port
var variants = []string{
	"",
	MarkerUnicode,
	MarkerUnicode + MarkerDebug,
	MarkerDebug,
	MarkerUniversal,
	MarkerUniversal + MarkerUnicode,
	MarkerUniversal + MarkerUnicode + MarkerDebug,
}

var candidates = buildCandidates()

// buildCandidates enumerates compiler, then linkage, then port, then variant
func buildCandidates() []Identifier {
	var out []Identifier
	for _, compiler := range Compilers {
		for _, linkage := range []string{LinkageDLL, LinkageLib} {
			for _, port := range []string{PortBase, PortMSW} {
				for _, v := range variants {
					out = append(out, Identifier(compiler+"_"+linkage+Separator+port+v))
				}
			}
		}
	}
	return out
}

// Candidates returns the ordered identifiers probed during auto-detection
func Candidates() []Identifier {
	out := make([]Identifier, len(candidates))
	copy(out, candidates)
	return out
}

// DefaultIdentifier is tried before auto-detection
const DefaultIdentifier Identifier = `gcc_dll\msw`
