// pkg/options/features.go
package options

import "sort"

// Features maps a feature macro name (e.g. wxUSE_ZLIB) to its enabled state.
type Features map[string]bool

// Enabled reports whether name is defined and set to true.
// Undefined features are disabled.
func (f Features) Enabled(name string) bool {
	return f[name]
}

// Defined reports whether name has an entry at all
func (f Features) Defined(name string) bool {
	_, ok := f[name]
	return ok
}

// Names returns the defined feature names in sorted order
func (f Features) Names() []string {
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
