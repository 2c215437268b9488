// pkg/compiler/render.go
package compiler

import (
	"fmt"
	"os"
	"strings"

	"github.com/arc-language/wxconfig/pkg/buildcfg"
	"github.com/arc-language/wxconfig/pkg/options"
	"github.com/arc-language/wxconfig/pkg/registry"
)

// Render computes the compiler, linker and resource compiler flags of one
// configuration. It reads nothing but its arguments and produces the same
// output for the same input.
func Render(profile Profile, in Input) (*FlagSet, error) {
	reg := in.Registry
	if reg == nil {
		var err error
		if reg, err = registry.Default(); err != nil {
			return nil, err
		}
	}

	build := options.New()
	build.Merge(in.Build)
	features := make(options.Features, len(in.Features))
	for name, enabled := range in.Features {
		features[name] = enabled
	}

	if d := in.Definition; d != nil {
		build.Set(d.Name, d.Value)
		switch d.Value {
		case "1", "true":
			features[d.Name] = true
		case "0", "false":
			features[d.Name] = false
		}
	}
	overrideMSLU(build, features)

	cfg, err := buildcfg.Decode(build)
	if err != nil {
		return nil, fmt.Errorf("compiler %s: %w", profile.Name, err)
	}

	r := &renderer{
		profile:  profile,
		sw:       profile.Switches,
		cfg:      cfg,
		build:    build,
		features: features,
		easy:     in.Settings.EasyMode,
		vars:     options.New(),
	}
	r.vars.Merge(in.Variables)
	r.vars.Set(VarPrefix, winJoin(in.Prefix))
	r.setVariables(in.Definition)

	ctx := registry.Context{
		MSWBasename:  r.vars.Get(VarBasenameMSW),
		BaseBasename: r.vars.Get(VarBasenameBase),
		UnicodeFlag:  r.vars.Get(VarUnicodeFlag),
		DebugFlag:    r.vars.Get(VarDebugFlag),
		Monolithic:   cfg.Monolithic == buildcfg.Yes,
		GUI:          cfg.UseGUI == buildcfg.Yes,
		Options:      build,
		Features:     features,
	}
	for _, lib := range reg.Resolve(in.Libs, ctx) {
		r.libs = append(r.libs, r.sw.Lib(lib))
	}

	programs := r.programs()
	fs := &FlagSet{
		CFlags:    r.render(profile.CFlags),
		Libs:      r.render(profile.Libs),
		RCFlags:   r.render(profile.RCFlags),
		Release:   cfg.Release(),
		Version:   cfg.Version(),
		CC:        programs.CC,
		CXX:       programs.CXX,
		LD:        programs.LD,
		Variables: r.vars,
		Build:     build,
	}

	r.vars.Set(VarCFlags, fs.CFlags)
	r.vars.Set(VarLibs, fs.Libs)
	r.vars.Set(VarRCFlags, fs.RCFlags)
	r.vars.Set(VarRelease, fs.Release)
	r.vars.Set(VarVersion, fs.Version)
	r.vars.Set(VarCC, fs.CC)
	r.vars.Set(VarCXX, fs.CXX)
	r.vars.Set(VarLD, fs.LD)

	return fs, nil
}

// Describe answers --variable=name for both the program variables and the
// build options, one line each.
func (fs *FlagSet) Describe(name string) string {
	var b strings.Builder
	if v, ok := fs.Variables.Lookup(name); ok {
		fmt.Fprintf(&b, "PO: %s=%s\n", name, v)
	} else {
		fmt.Fprintf(&b, "PO: %s does not exist.\n", name)
	}
	if v, ok := fs.Build.Lookup(name); ok {
		fmt.Fprintf(&b, "CFG: %s=%s\n", name, v)
	} else {
		fmt.Fprintf(&b, "CFG: %s does not exist.\n", name)
	}
	return b.String()
}

// overrideMSLU lets setup.h decide MSLU over build.cfg
func overrideMSLU(build *options.Options, features options.Features) {
	if !features.Defined(featureMSLU) && !build.Has(buildcfg.KeyMSLU) {
		return
	}
	value := buildcfg.No
	if features.Enabled(featureMSLU) {
		value = buildcfg.Yes
	}
	build.Set(buildcfg.KeyMSLU, value)
}

type renderer struct {
	profile  Profile
	sw       Switches
	cfg      *buildcfg.BuildConfig
	build    *options.Options
	features options.Features
	easy     bool
	vars     *options.Options
	libs     []string
}

func (r *renderer) setVariables(def *Definition) {
	cfg := r.cfg

	release := cfg.ReleaseNoDot()
	if release == "" {
		release = DefaultReleaseNoDot
	}
	r.vars.Set(VarReleaseNoDot, release)

	port := ""
	switch cfg.UseGUI {
	case buildcfg.No:
		port = "base"
	case buildcfg.Yes:
		port = "msw"
	}
	r.vars.Set(VarPortName, port)
	r.vars.Set(VarDebugFlag, pick(cfg.IsDebug(), "d"))
	r.vars.Set(VarUnicodeFlag, pick(cfg.Unicode == buildcfg.Yes, "u"))
	r.vars.Set(VarUnivName, pick(cfg.WxUniv == buildcfg.Yes, "univ"))
	r.vars.Set(VarDLLFlag, pick(cfg.Shared == buildcfg.Yes, "dll"))

	libType := ""
	switch cfg.Shared {
	case buildcfg.No:
		libType = "lib"
	case buildcfg.Yes:
		libType = "dll"
	}
	r.vars.Set(VarLibTypeSuffix, libType)
	r.vars.Set(VarDirSuffixCPU, r.cpu().DirSuffix)

	if def != nil {
		r.vars.Set(def.Name, def.Value)
	}

	v := r.vars.Get
	r.vars.Set(VarBasenameMSW, "wx"+v(VarPortName)+v(VarUnivName)+v(VarReleaseNoDot)+
		v(VarUnicodeFlag)+v(VarDebugFlag)+cfg.LibFlavour)
	r.vars.Set(VarBasenameBase, "wxbase"+v(VarReleaseNoDot)+v(VarUnicodeFlag)+
		v(VarDebugFlag)+cfg.LibFlavour)

	libDir := winJoin(v(VarPrefix), "lib", r.profile.Name+v(VarDirSuffixCPU)+"_"+v(VarLibTypeSuffix)+cfg.Cfg)
	r.vars.Set(VarLibDirName, libDir)
	r.vars.Set(VarSetupHDir, winJoin(libDir, v(VarPortName)+v(VarUnivName)+v(VarUnicodeFlag)+v(VarDebugFlag)))
}

// programs applies the CC, CXX, LD, LIB and WINDRES build options
func (r *renderer) programs() Programs {
	p := r.profile.Programs
	overrides := []struct {
		key string
		dst *string
	}{
		{buildcfg.KeyCC, &p.CC},
		{buildcfg.KeyCXX, &p.CXX},
		{buildcfg.KeyLD, &p.LD},
		{buildcfg.KeyLIB, &p.LIB},
		{buildcfg.KeyWindres, &p.Windres},
	}
	for _, o := range overrides {
		if v, ok := r.build.Lookup(o.key); ok {
			*o.dst = v
		}
	}
	return p
}

func (r *renderer) cpu() CPU {
	return r.profile.Flags.TargetCPU[r.cfg.TargetCPU]
}

// render evaluates entries in order and joins the non-empty pieces
func (r *renderer) render(entries []string) string {
	var parts []string
	for _, entry := range entries {
		if rest, ok := strings.CutPrefix(entry, easyMarker); ok {
			if !r.easy {
				continue
			}
			entry = rest
		}
		for _, part := range r.entry(entry) {
			if part = strings.TrimSpace(part); part != "" {
				parts = append(parts, part)
			}
		}
	}
	return strings.Join(parts, " ")
}

func (r *renderer) entry(entry string) []string {
	if name, ok := strings.CutPrefix(entry, fragmentMarker); ok {
		return r.fragment(name)
	}

	verb, arg, _ := strings.Cut(entry, " ")
	if verb == verbJoin {
		return []string{r.join(arg)}
	}
	arg = os.Expand(arg, r.vars.Get)

	switch verb {
	case verbFlag:
		return []string{arg}
	case verbDefine:
		return []string{r.sw.Define(arg)}
	case verbResDefine:
		return []string{r.sw.ResDefine(arg)}
	case verbInclude:
		return []string{r.sw.IncludeDir(arg)}
	case verbResInclude:
		return []string{r.sw.ResIncludeDir(arg)}
	case verbLibDir:
		return []string{r.sw.LinkerDir(arg)}
	}
	return nil
}

// join concatenates fragments and literals into a single flag
func (r *renderer) join(arg string) string {
	var b strings.Builder
	for _, part := range strings.Fields(arg) {
		if name, ok := strings.CutPrefix(part, fragmentMarker); ok && fragments[name] {
			b.WriteString(strings.Join(r.fragment(name), ""))
			continue
		}
		b.WriteString(os.Expand(part, r.vars.Get))
	}
	return b.String()
}

func (r *renderer) fragment(name string) []string {
	cfg := r.cfg
	flags := r.profile.Flags

	switch name {
	case fragDebugInfo:
		return []string{flags.DebugInfo.pick(cfg.DebugInfoSwitch())}
	case fragDebugInfoLink:
		return []string{flags.DebugInfoLink.pick(cfg.DebugInfoSwitch())}
	case fragOptimize:
		switch cfg.Build {
		case buildcfg.BuildDebug:
			return []string{flags.Optimize.Debug}
		case buildcfg.BuildRelease:
			return []string{flags.Optimize.Release}
		}
	case fragThreads:
		return []string{flags.Threads.pick(buildcfg.SwitchOf(cfg.UseThreads))}
	case fragRuntime:
		v := ""
		switch cfg.RuntimeLibs {
		case "dynamic":
			v = flags.Runtime.Dynamic
		case "static":
			v = flags.Runtime.Static
		}
		if ref, ok := strings.CutPrefix(v, fragmentMarker); ok && ref != fragRuntime {
			return r.fragment(ref)
		}
		return []string{v}
	case fragRTTI:
		return []string{flags.RTTI.pick(buildcfg.SwitchOf(cfg.UseRTTI))}
	case fragExceptions:
		return []string{flags.Exceptions.pick(buildcfg.SwitchOf(cfg.UseExceptions))}
	case fragDebugRuntime:
		return []string{flags.DebugRuntime.pick(cfg.DebugRuntimeSwitch())}
	case fragDebugRuntimeDefine:
		if cfg.DebugRuntimeSwitch() == buildcfg.On {
			return []string{r.sw.Define(flags.DebugRuntimeDefine)}
		}
	case fragResDebugRuntimeDefine:
		if cfg.DebugRuntimeSwitch() == buildcfg.On {
			return []string{r.sw.ResDefine(flags.DebugRuntimeDefine)}
		}
	case fragCRTDebug:
		if r.noCRTDebug() {
			return []string{r.sw.Define(flags.NoCRTDebugDefine)}
		}
	case fragResCRTDebug:
		if r.noCRTDebug() {
			return []string{r.sw.ResDefine(flags.NoCRTDebugDefine)}
		}
	case fragCompat:
		return []string{flags.GCCVersion[cfg.GCCVersion]}
	case fragMachine:
		return []string{r.cpu().Machine}
	case fragDefines:
		return r.defines(r.sw.Define)
	case fragResDefines:
		return r.defines(r.sw.ResDefine)
	case fragDLL:
		if cfg.Shared == buildcfg.Yes {
			return []string{r.sw.Define("WXUSINGDLL")}
		}
	case fragResDLL:
		if cfg.Shared == buildcfg.Yes {
			return []string{r.sw.ResDefine("WXUSINGDLL")}
		}
	case fragCPPFlags:
		return []string{cfg.CPPFlags}
	case fragCXXFlags:
		return []string{cfg.CXXFlags}
	case fragLDFlags:
		return []string{cfg.LDFlags}
	case fragLibs:
		return r.libs
	}
	return nil
}

// defines are the configuration dependent defines, in a fixed order
func (r *renderer) defines(spell func(string) string) []string {
	cfg := r.cfg
	conditional := []struct {
		when   bool
		define string
	}{
		{cfg.WxUniv == buildcfg.Yes, "__WXUNIVERSAL__"},
		{cfg.IsDebug(), "__WXDEBUG__"},
		{cfg.UseExceptions == buildcfg.No, "wxNO_EXCEPTIONS"},
		{cfg.UseRTTI == buildcfg.No, "wxNO_RTTI"},
		{cfg.UseThreads == buildcfg.No, "wxNO_THREADS"},
		{cfg.Unicode == buildcfg.Yes, "_UNICODE"},
		{cfg.MSLU == buildcfg.Yes, "wxUSE_UNICODE_MSLU=1"},
	}

	var out []string
	for _, c := range conditional {
		if c.when {
			out = append(out, spell(c.define))
		}
	}
	return out
}

func (r *renderer) noCRTDebug() bool {
	cfg := r.cfg
	if cfg.Build == buildcfg.BuildDebug && cfg.DebugRuntime == buildcfg.No {
		return true
	}
	return cfg.Build == buildcfg.BuildRelease && cfg.DebugFlag == buildcfg.Yes
}

func (c Choice) pick(s buildcfg.Switch) string {
	switch s {
	case buildcfg.On:
		return c.Enabled
	case buildcfg.Off:
		return c.Disabled
	}
	return ""
}

func pick(cond bool, value string) string {
	if cond {
		return value
	}
	return ""
}

// winJoin joins path elements the way the Windows toolchains expect them,
// whatever the host separator.
func winJoin(elem ...string) string {
	var parts []string
	for _, e := range elem {
		if e == "" {
			continue
		}
		parts = append(parts, strings.ReplaceAll(e, "/", `\`))
	}
	return strings.Join(parts, `\`)
}
