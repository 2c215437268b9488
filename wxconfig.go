// wxconfig.go
package wxconfig

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/arc-language/wxconfig/pkg/buildcfg"
	"github.com/arc-language/wxconfig/pkg/cmdline"
	"github.com/arc-language/wxconfig/pkg/compiler"
	"github.com/arc-language/wxconfig/pkg/core"
	"github.com/arc-language/wxconfig/pkg/detect"
	"github.com/arc-language/wxconfig/pkg/options"
	"github.com/arc-language/wxconfig/pkg/registry"
	"github.com/arc-language/wxconfig/pkg/setuph"
	"github.com/arc-language/wxconfig/pkg/wxcfg"
)

// Environment variables naming the installation and configuration
const (
	EnvPrefix = "WXWIN"
	EnvWxCfg  = "WXCFG"
)

// Program variables describing the selected configuration
const (
	VarWxCfg           = "wxcfg"
	VarWxCfgFile       = "wxcfgfile"
	VarWxCfgSetupHFile = "wxcfgsetuphfile"
)

// Re-export types for convenience
type (
	Identifier = wxcfg.Identifier
	FlagSet    = compiler.FlagSet
	Source     = detect.Source
)

// Config configures a Resolver. Zero fields take defaults.
type Config struct {
	Fs     afero.Fs
	Logger *zap.Logger

	// Getenv reads the environment; defaults to os.Getenv
	Getenv func(string) string

	// Tool is the loaded tool configuration
	Tool *core.Config

	// Profiles replaces the compiler table built from the tool config
	Profiles compiler.Table

	// Registry replaces the component registry named by the tool config
	Registry *registry.Registry
}

// Resolver turns a parsed command line into compiler flags
type Resolver struct {
	fs       afero.Fs
	logger   *zap.Logger
	getenv   func(string) string
	tool     *core.Config
	profiles compiler.Table
	registry *registry.Registry
}

// Result is one resolved invocation
type Result struct {
	Prefix       string
	PrefixSource Source
	WxCfg        Identifier
	WxCfgSource  Source
	Compiler     string
	Flags        *FlagSet

	// Warnings are non-fatal problems met on the way
	Warnings []string
}

// New creates a Resolver
func New(cfg Config) (*Resolver, error) {
	r := &Resolver{
		fs:       cfg.Fs,
		logger:   cfg.Logger,
		getenv:   cfg.Getenv,
		tool:     cfg.Tool,
		profiles: cfg.Profiles,
		registry: cfg.Registry,
	}
	if r.fs == nil {
		r.fs = afero.NewOsFs()
	}
	if r.logger == nil {
		r.logger = zap.NewNop()
	}
	if r.getenv == nil {
		r.getenv = os.Getenv
	}
	if r.tool == nil {
		r.tool = core.DefaultConfig()
	}

	if r.profiles == nil {
		builtin, err := compiler.Builtin()
		if err != nil {
			return nil, &Error{Op: "load profiles", Err: err}
		}
		r.profiles = builtin
		if r.tool.Profiles != "" {
			extra, err := compiler.LoadProfiles(r.fs, r.tool.Profiles)
			if err != nil {
				return nil, &Error{Op: "load profiles", Path: r.tool.Profiles, Err: err}
			}
			r.profiles = r.profiles.Merge(extra)
		}
	}

	if r.registry == nil {
		var err error
		if r.tool.Registry != "" {
			r.registry, err = registry.Load(r.fs, r.tool.Registry)
		} else {
			r.registry, err = registry.Default()
		}
		if err != nil {
			return nil, &Error{Op: "load registry", Path: r.tool.Registry, Err: err}
		}
	}

	return r, nil
}

// Compilers returns the names of the known compiler profiles
func (r *Resolver) Compilers() []string {
	return r.profiles.Names()
}

func (r *Resolver) inputs(cl *cmdline.CommandLine) detect.Inputs {
	flagPrefix, hasPrefix := cl.Flags.Lookup(cmdline.FlagPrefix)
	flagWxCfg, hasWxCfg := cl.Flags.Lookup(cmdline.FlagWxCfg)
	return detect.Inputs{
		FlagPrefix:    flagPrefix,
		HasFlagPrefix: hasPrefix,
		EnvPrefix:     r.getenv(EnvPrefix),
		ConfigPrefix:  r.tool.Prefix,
		FlagWxCfg:     flagWxCfg,
		HasFlagWxCfg:  hasWxCfg,
		EnvWxCfg:      r.getenv(EnvWxCfg),
		ConfigWxCfg:   r.tool.WxCfg,
	}
}

// Resolve runs the whole pipeline: prefix, selection, overrides,
// validation, file loading and flag rendering.
func (r *Resolver) Resolve(cl *cmdline.CommandLine) (*Result, error) {
	in := r.inputs(cl)
	res := &Result{}

	res.Prefix, res.PrefixSource = detect.ResolvePrefix(in)
	r.logger.Debug("resolved prefix",
		zap.String("prefix", res.Prefix),
		zap.String("source", string(res.PrefixSource)))

	if err := detect.ValidateInstall(r.fs, res.Prefix); err != nil {
		return nil, &Error{Op: "validate prefix", Path: res.Prefix, Err: err}
	}

	overrides := cl.Overrides()
	id, source, err := r.selectConfig(res.Prefix, in, overrides)
	if err != nil {
		return nil, err
	}

	id = wxcfg.Apply(id, overrides)
	res.WxCfg, res.WxCfgSource = id, source
	r.logger.Debug("selected configuration",
		zap.String("wxcfg", string(id)),
		zap.String("source", string(source)))

	layout := detect.NewLayout(res.Prefix)
	status := detect.CheckConfig(r.fs, res.Prefix, id)
	if !status.BuildFile {
		return nil, &Error{Op: "validate configuration", Path: string(id), Err: invalidConfig(layout, id, status)}
	}
	if !status.SetupHeader {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("No valid setup.h of wxWidgets has been found at location: %s", layout.SetupHeader(id)))
	}

	res.Compiler = id.Compiler()
	if res.Compiler == "" {
		return nil, &Error{Op: "detect compiler", Path: string(id), Err: ErrUnrecognizedCompiler}
	}
	profile, err := r.profiles.Lookup(res.Compiler)
	if err != nil {
		return nil, &Error{Op: "detect compiler", Path: string(id), Err: fmt.Errorf("%w: %w", ErrUnrecognizedCompiler, err)}
	}

	build, err := r.loadBuild(layout, id, res.Compiler)
	if err != nil {
		return nil, err
	}

	features, err := setuph.Parse(r.fs, layout.SetupHeader(id))
	if err != nil {
		r.logger.Debug("setup.h unavailable", zap.Error(err))
	}

	def, err := definition(cl)
	if err != nil {
		return nil, err
	}

	vars := options.New()
	vars.Set(VarWxCfg, string(id))
	vars.Set(VarWxCfgFile, winPath(res.Prefix, "lib", string(id), buildcfg.FileName))
	vars.Set(VarWxCfgSetupHFile, winPath(res.Prefix, "lib", string(id), "wx", setuph.FileName))

	res.Flags, err = compiler.Render(profile, compiler.Input{
		Prefix:     res.Prefix,
		Build:      build,
		Features:   features,
		Libs:       cl.Libs,
		Settings:   core.NewSettings(r.tool, easyMode(cl)),
		Definition: def,
		Variables:  vars,
		Registry:   r.registry,
	})
	if err != nil {
		return nil, &Error{Op: "render flags", Path: res.Compiler, Err: err}
	}

	r.logger.Debug("rendered flags",
		zap.String("compiler", res.Compiler),
		zap.Int("libs", len(cl.Libs)))

	return res, nil
}

// selectConfig picks the identifier before overrides are applied.
//
// Priority:
// 1. --wxcfg, WXCFG or the tool config (see detect.ResolveIdentifier)
// 2. gcc_dll\msw with overrides, when it is installed
// 3. auto-detection
func (r *Resolver) selectConfig(prefix string, in detect.Inputs, overrides wxcfg.Overrides) (wxcfg.Identifier, Source, error) {
	explicit, source := detect.ResolveIdentifier(in)

	if explicit == "" {
		probe := wxcfg.Apply(wxcfg.DefaultIdentifier, overrides)
		if detect.CheckConfig(r.fs, prefix, probe).Complete() {
			explicit, source = probe, detect.SourceDefault
		} else {
			r.logger.Debug("default configuration not installed", zap.String("wxcfg", string(probe)))
			source = detect.SourceDetected
		}
	}

	selector := detect.NewSelector(r.fs, prefix, r.logger)
	id, err := selector.Select(explicit)
	if err != nil {
		return "", "", &Error{Op: "detect configuration", Path: prefix, Err: err}
	}
	return id, source, nil
}

// loadBuild reads config.<compiler> and build.cfg, later keys winning
func (r *Resolver) loadBuild(layout detect.Layout, id wxcfg.Identifier, compilerName string) (*options.Options, error) {
	build := options.New()

	path := layout.CompilerFile(compilerName)
	if err := buildcfg.ParseInto(r.fs, path, build); err != nil {
		if !errors.Is(err, buildcfg.ErrNotFound) {
			return nil, &Error{Op: "read compiler options", Path: path, Err: err}
		}
		r.logger.Debug("no compiler options", zap.String("path", path))
	}

	path = layout.BuildFile(id)
	if err := buildcfg.ParseInto(r.fs, path, build); err != nil {
		return nil, &Error{Op: "read build options", Path: path, Err: err}
	}
	return build, nil
}

// List returns every installed candidate under the resolved prefix
func (r *Resolver) List(cl *cmdline.CommandLine) []Identifier {
	prefix, _ := detect.ResolvePrefix(r.inputs(cl))
	return detect.NewSelector(r.fs, prefix, r.logger).List()
}

func invalidConfig(layout detect.Layout, id wxcfg.Identifier, status detect.ConfigStatus) error {
	if !status.SetupHeader {
		return fmt.Errorf("%w: no valid build.cfg or setup.h of wxWidgets has been found at locations: %s, %s",
			ErrInvalidConfiguration, layout.BuildFile(id), layout.SetupHeader(id))
	}
	return fmt.Errorf("%w: no valid configuration of wxWidgets has been found at location: %s",
		ErrInvalidConfiguration, layout.BuildFile(id))
}

func definition(cl *cmdline.CommandLine) (*compiler.Definition, error) {
	name, value, ok, err := cl.Definition()
	if err != nil {
		return nil, &Error{Op: "define variable", Err: err}
	}
	if !ok {
		return nil, nil
	}
	return &compiler.Definition{Name: name, Value: value}, nil
}

func easyMode(cl *cmdline.CommandLine) *bool {
	var enabled bool
	switch cl.Toggle(cmdline.FlagEasyMode) {
	case wxcfg.Yes:
		enabled = true
	case wxcfg.No:
		enabled = false
	default:
		return nil
	}
	return &enabled
}

// winPath joins elem with backslashes, as the toolchains expect
func winPath(elem ...string) string {
	for i, e := range elem {
		elem[i] = strings.TrimSuffix(strings.ReplaceAll(e, "/", `\`), `\`)
	}
	return strings.Join(elem, `\`)
}
