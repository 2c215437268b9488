// pkg/compiler/profile.go
package compiler

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

//go:embed profiles.yaml
var builtinProfiles []byte

// ErrUnknownCompiler indicates no profile exists for a compiler name
var ErrUnknownCompiler = errors.New("unknown compiler")

// Table maps a compiler name to its profile
type Table map[string]Profile

type profileFile struct {
	Profiles []Profile `yaml:"profiles"`
}

var (
	builtinOnce  sync.Once
	builtinTable Table
	builtinErr   error
)

// Builtin returns the profiles shipped with the tool
func Builtin() (Table, error) {
	builtinOnce.Do(func() {
		builtinTable, builtinErr = ParseProfiles(builtinProfiles)
	})
	if builtinErr != nil {
		return nil, builtinErr
	}
	return builtinTable.Merge(nil), nil
}

// ParseProfiles decodes a profiles document and checks every entry
func ParseProfiles(data []byte) (Table, error) {
	var file profileFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing profiles: %w", err)
	}

	table := make(Table, len(file.Profiles))
	for i, p := range file.Profiles {
		if p.Name == "" {
			return nil, fmt.Errorf("profile #%d has no name", i+1)
		}
		if _, dup := table[p.Name]; dup {
			return nil, fmt.Errorf("profile '%s' declared twice", p.Name)
		}
		if err := p.validate(); err != nil {
			return nil, err
		}
		table[p.Name] = p
	}
	return table, nil
}

// LoadProfiles reads and parses a profiles file
func LoadProfiles(fsys afero.Fs, path string) (Table, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading profiles: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("reading profiles %s: %w", path, err)
	}

	table, err := ParseProfiles(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// Merge returns a new table with the profiles of other replacing those of t
func (t Table) Merge(other Table) Table {
	merged := make(Table, len(t)+len(other))
	for name, p := range t {
		merged[name] = p
	}
	for name, p := range other {
		merged[name] = p
	}
	return merged
}

// Lookup returns the profile for name
func (t Table) Lookup(name string) (Profile, error) {
	p, ok := t[name]
	if !ok {
		return Profile{}, fmt.Errorf("%w '%s'", ErrUnknownCompiler, name)
	}
	return p, nil
}

// Names returns the compiler names in sorted order
func (t Table) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (p Profile) validate() error {
	lists := []struct {
		name    string
		entries []string
	}{
		{"cflags", p.CFlags},
		{"libs", p.Libs},
		{"rcflags", p.RCFlags},
	}
	for _, list := range lists {
		for _, entry := range list.entries {
			if err := validateEntry(entry); err != nil {
				return fmt.Errorf("profile '%s' %s: %w", p.Name, list.name, err)
			}
		}
	}
	return nil
}

func validateEntry(entry string) error {
	entry = strings.TrimPrefix(entry, easyMarker)
	if name, ok := strings.CutPrefix(entry, fragmentMarker); ok {
		if !fragments[name] {
			return fmt.Errorf("unknown fragment '%s'", entry)
		}
		return nil
	}

	verb, arg, _ := strings.Cut(entry, " ")
	switch verb {
	case verbFlag, verbDefine, verbResDefine, verbInclude, verbResInclude, verbLibDir:
		if arg == "" {
			return fmt.Errorf("'%s' needs an argument", verb)
		}
	case verbJoin:
		for _, part := range strings.Fields(arg) {
			if name, ok := strings.CutPrefix(part, fragmentMarker); ok && !fragments[name] {
				return fmt.Errorf("unknown fragment '%s' in '%s'", part, entry)
			}
		}
	default:
		return fmt.Errorf("unknown entry '%s'", entry)
	}
	return nil
}
