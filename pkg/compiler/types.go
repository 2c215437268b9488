// pkg/compiler/types.go
package compiler

import (
	"github.com/arc-language/wxconfig/pkg/core"
	"github.com/arc-language/wxconfig/pkg/options"
	"github.com/arc-language/wxconfig/pkg/registry"
)

// Programs are the tool names of a compiler
type Programs struct {
	CC      string `yaml:"cc"`
	CXX     string `yaml:"cxx"`
	LD      string `yaml:"ld"`
	LIB     string `yaml:"lib"`
	Windres string `yaml:"windres"`
}

// Switches are the option spellings of a compiler
type Switches struct {
	IncludeDirs       string `yaml:"include_dirs"`
	ResIncludeDirs    string `yaml:"res_include_dirs"`
	LibDirs           string `yaml:"lib_dirs"`
	LinkLibs          string `yaml:"link_libs"`
	LibPrefix         string `yaml:"lib_prefix"`
	LibExtension      string `yaml:"lib_extension"`
	Defines           string `yaml:"defines"`
	ResDefines        string `yaml:"res_defines"`
	CompilerQuotes    bool   `yaml:"compiler_quotes"`
	LinkerQuotes      bool   `yaml:"linker_quotes"`
	NeedsLibPrefix    bool   `yaml:"needs_lib_prefix"`
	NeedsLibExtension bool   `yaml:"needs_lib_extension"`
}

// Choice spells an option that is either enabled or disabled
type Choice struct {
	Enabled  string `yaml:"enabled"`
	Disabled string `yaml:"disabled"`
}

// BuildChoice spells an option that follows BUILD
type BuildChoice struct {
	Debug   string `yaml:"debug"`
	Release string `yaml:"release"`
}

// RuntimeChoice spells RUNTIME_LIBS
type RuntimeChoice struct {
	Dynamic string `yaml:"dynamic"`
	Static  string `yaml:"static"`
}

// CPU holds what TARGET_CPU changes
type CPU struct {
	DirSuffix string `yaml:"dir_suffix"`
	Machine   string `yaml:"machine"`
}

// Flags are the per option spellings of a compiler
type Flags struct {
	DebugInfo          Choice            `yaml:"debug_info"`
	DebugInfoLink      Choice            `yaml:"debug_info_link"`
	Optimize           BuildChoice       `yaml:"optimize"`
	Threads            Choice            `yaml:"threads"`
	Runtime            RuntimeChoice     `yaml:"runtime"`
	RTTI               Choice            `yaml:"rtti"`
	Exceptions         Choice            `yaml:"exceptions"`
	DebugRuntime       Choice            `yaml:"debug_runtime"`
	DebugRuntimeDefine string            `yaml:"debug_runtime_define"`
	NoCRTDebugDefine   string            `yaml:"no_crt_debug_define"`
	GCCVersion         map[string]string `yaml:"gcc_version"`
	TargetCPU          map[string]CPU    `yaml:"target_cpu"`
}

// Profile is everything that differs between compilers. Profiles are
// values and are never modified after loading.
type Profile struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Programs    Programs `yaml:"programs"`
	Switches    Switches `yaml:"switches"`
	Flags       Flags    `yaml:"flags"`
	CFlags      []string `yaml:"cflags"`
	Libs        []string `yaml:"libs"`
	RCFlags     []string `yaml:"rcflags"`
}

// Definition is one --define-variable=NAME=VALUE
type Definition struct {
	Name  string
	Value string
}

// Input is everything Render reads
type Input struct {
	// Prefix is the install root as it should appear in the output
	Prefix string

	// Build holds the merged config.<compiler> and build.cfg options
	Build *options.Options

	// Features holds the setup.h feature flags
	Features options.Features

	// Libs are the requested components
	Libs []string

	Settings core.Settings

	// Definition, when set, overrides one variable and build option
	Definition *Definition

	// Variables seeds the program variables, e.g. wxcfg
	Variables *options.Options

	// Registry resolves components to libraries; nil uses registry.Default
	Registry *registry.Registry
}

// FlagSet is the output of Render
type FlagSet struct {
	CFlags  string
	Libs    string
	RCFlags string
	Release string
	Version string
	CC      string
	CXX     string
	LD      string

	// Variables are the program variables, e.g. LIB_BASENAME_MSW
	Variables *options.Options

	// Build are the build options after overrides
	Build *options.Options
}
