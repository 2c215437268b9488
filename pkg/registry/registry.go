// pkg/registry/registry.go
package registry

import (
	_ "embed"
	"fmt"
	"io"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"
)

//go:embed components.toml
var builtin string

// Basename selectors for Component.Basename
const (
	BasenameMSW  = "msw"
	BasenameBase = "base"
)

// Component is one wx library that can be requested on the command line
type Component struct {
	Name     string   `toml:"name"`
	Aliases  []string `toml:"aliases"`
	Basename string   `toml:"basename"`
	Suffix   string   `toml:"suffix"`
	GUI      bool     `toml:"gui"`
	Option   string   `toml:"option"`
	Feature  string   `toml:"feature"`
	Requires []string `toml:"requires"`
	Extra    []string `toml:"extra"`
	AnyBuild bool     `toml:"any_build"`
}

// Library is a third party or system library linked after the components
type Library struct {
	Name        string   `toml:"name"`
	GUI         bool     `toml:"gui"`
	Option      string   `toml:"option"`
	Features    []string `toml:"features"`
	UnicodeFlag bool     `toml:"unicode_flag"`
	DebugFlag   bool     `toml:"debug_flag"`
}

// Registry holds the link recipes, each list in link order
type Registry struct {
	Components []Component `toml:"component"`
	ThirdParty []Library   `toml:"thirdparty"`
	System     []Library   `toml:"system"`

	index map[string]int
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
	defaultErr  error
)

// Default returns the built-in registry. It is parsed once and shared,
// callers must not modify it.
func Default() (*Registry, error) {
	defaultOnce.Do(func() {
		defaultReg, defaultErr = Parse(builtin)
	})
	return defaultReg, defaultErr
}

// Parse decodes a registry document
func Parse(data string) (*Registry, error) {
	var reg Registry
	if _, err := toml.Decode(data, &reg); err != nil {
		return nil, fmt.Errorf("registry: failed to parse: %w", err)
	}
	if err := reg.build(); err != nil {
		return nil, err
	}
	return &reg, nil
}

// Load reads and parses a registry file
func Load(fsys afero.Fs, path string) (*Registry, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("registry: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("registry: reading '%s': %w", path, err)
	}

	reg, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%w (in '%s')", err, path)
	}
	return reg, nil
}

func (r *Registry) build() error {
	r.index = make(map[string]int, len(r.Components))
	for i, c := range r.Components {
		if c.Name == "" {
			return fmt.Errorf("registry: component #%d has no name", i+1)
		}
		if c.Basename != BasenameMSW && c.Basename != BasenameBase {
			return fmt.Errorf("registry: component '%s' has unknown basename '%s'", c.Name, c.Basename)
		}
		for _, name := range append([]string{c.Name}, c.Aliases...) {
			if _, dup := r.index[name]; dup {
				return fmt.Errorf("registry: component '%s' declared twice", name)
			}
			r.index[name] = i
		}
	}
	for _, c := range r.Components {
		for _, req := range c.Requires {
			if _, ok := r.index[req]; !ok {
				return fmt.Errorf("registry: component '%s' requires unknown '%s'", c.Name, req)
			}
		}
	}
	return nil
}

// Lookup finds a component by name or alias
func (r *Registry) Lookup(name string) (*Component, bool) {
	i, ok := r.index[name]
	if !ok {
		return nil, false
	}
	return &r.Components[i], true
}
