// pkg/registry/resolve.go
package registry

import (
	"github.com/arc-language/wxconfig/pkg/options"
)

// Standard is the request name that stands for the default component set.
// It never links a library of its own.
const Standard = "std"

// Context carries the build facts that decide what gets linked
type Context struct {
	MSWBasename  string // LIB_BASENAME_MSW
	BaseBasename string // LIB_BASENAME_BASE
	UnicodeFlag  string // WXUNICODEFLAG
	DebugFlag    string // WXDEBUGFLAG

	Monolithic bool
	GUI        bool
	Options    *options.Options
	Features   options.Features
}

func (ctx Context) option(key string) bool {
	return ctx.Options != nil && ctx.Options.Get(key) == "1"
}

// Resolve turns the requested component names into library names in link
// order. Unknown names link as <MSWBasename>_<name> ahead of everything
// else, in request order. The result has no duplicates.
func (r *Registry) Resolve(requested []string, ctx Context) []string {
	selected := make([]bool, len(r.Components))
	var unknown []string

	for _, name := range requested {
		if name == "" || name == Standard {
			continue
		}

		i, ok := r.index[name]
		if !ok {
			unknown = append(unknown, ctx.MSWBasename+"_"+name)
			continue
		}

		c := &r.Components[i]
		if ctx.Monolithic && !c.AnyBuild {
			continue
		}
		if !r.componentEnabled(c, ctx) {
			continue
		}

		selected[i] = true
		for _, req := range c.Requires {
			selected[r.index[req]] = true
		}
	}

	var libs []string
	libs = append(libs, unknown...)
	for i, c := range r.Components {
		if !selected[i] {
			continue
		}
		libs = append(libs, c.LibraryName(ctx))
		libs = append(libs, c.Extra...)
	}

	if ctx.Monolithic {
		libs = append(libs, ctx.MSWBasename)
	}

	for _, lib := range r.ThirdParty {
		if lib.enabled(ctx) {
			libs = append(libs, lib.LibraryName(ctx))
		}
	}
	for _, lib := range r.System {
		if lib.enabled(ctx) {
			libs = append(libs, lib.LibraryName(ctx))
		}
	}

	return dedup(libs)
}

func (r *Registry) componentEnabled(c *Component, ctx Context) bool {
	if c.GUI && !ctx.GUI {
		return false
	}
	if c.Option != "" && !ctx.option(c.Option) {
		return false
	}
	if c.Feature != "" && !ctx.Features.Enabled(c.Feature) {
		return false
	}
	return true
}

// LibraryName is the library the component links under ctx
func (c *Component) LibraryName(ctx Context) string {
	if c.Basename == BasenameBase {
		return ctx.BaseBasename + c.Suffix
	}
	return ctx.MSWBasename + c.Suffix
}

func (l *Library) enabled(ctx Context) bool {
	if l.GUI && !ctx.GUI {
		return false
	}
	if l.Option != "" && !ctx.option(l.Option) {
		return false
	}
	for _, f := range l.Features {
		if !ctx.Features.Enabled(f) {
			return false
		}
	}
	return true
}

// LibraryName is the library name with the requested flags appended
func (l *Library) LibraryName(ctx Context) string {
	name := l.Name
	if l.UnicodeFlag {
		name += ctx.UnicodeFlag
	}
	if l.DebugFlag {
		name += ctx.DebugFlag
	}
	return name
}

func dedup(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := in[:0]
	for _, s := range in {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
