// pkg/compiler/constants.go
package compiler

// Entry verbs in a profile's cflags, libs and rcflags lists
const (
	verbFlag       = "flag"
	verbDefine     = "define"
	verbResDefine  = "resdefine"
	verbInclude    = "include"
	verbResInclude = "resinclude"
	verbLibDir     = "libdir"
	verbJoin       = "join"

	easyMarker     = "~"
	fragmentMarker = "$"
)

// Computed fragments
const (
	fragDebugInfo             = "debug_info"
	fragDebugInfoLink         = "debug_info_link"
	fragOptimize              = "optimize"
	fragThreads               = "threads"
	fragRuntime               = "runtime"
	fragRTTI                  = "rtti"
	fragExceptions            = "exceptions"
	fragDebugRuntime          = "debug_runtime"
	fragDebugRuntimeDefine    = "debug_runtime_define"
	fragResDebugRuntimeDefine = "res_debug_runtime_define"
	fragCRTDebug              = "crt_debug"
	fragResCRTDebug           = "res_crt_debug"
	fragCompat                = "compat"
	fragMachine               = "machine"
	fragDefines               = "defines"
	fragResDefines            = "resdefines"
	fragDLL                   = "dll"
	fragResDLL                = "resdll"
	fragCPPFlags              = "cppflags"
	fragCXXFlags              = "cxxflags"
	fragLDFlags               = "ldflags"
	fragLibs                  = "libs"
)

var fragments = map[string]bool{
	fragDebugInfo:             true,
	fragDebugInfoLink:         true,
	fragOptimize:              true,
	fragThreads:               true,
	fragRuntime:               true,
	fragRTTI:                  true,
	fragExceptions:            true,
	fragDebugRuntime:          true,
	fragDebugRuntimeDefine:    true,
	fragResDebugRuntimeDefine: true,
	fragCRTDebug:              true,
	fragResCRTDebug:           true,
	fragCompat:                true,
	fragMachine:               true,
	fragDefines:               true,
	fragResDefines:            true,
	fragDLL:                   true,
	fragResDLL:                true,
	fragCPPFlags:              true,
	fragCXXFlags:              true,
	fragLDFlags:               true,
	fragLibs:                  true,
}

// Program variables set by Render
const (
	VarReleaseNoDot  = "WX_RELEASE_NODOT"
	VarPortName      = "PORTNAME"
	VarDebugFlag     = "WXDEBUGFLAG"
	VarUnicodeFlag   = "WXUNICODEFLAG"
	VarUnivName      = "WXUNIVNAME"
	VarDLLFlag       = "WXDLLFLAG"
	VarLibTypeSuffix = "LIBTYPE_SUFFIX"
	VarDirSuffixCPU  = "DIR_SUFFIX_CPU"
	VarLibDirName    = "LIBDIRNAME"
	VarSetupHDir     = "SETUPHDIR"
	VarBasenameMSW   = "LIB_BASENAME_MSW"
	VarBasenameBase  = "LIB_BASENAME_BASE"
	VarPrefix        = "prefix"
	VarCFlags        = "cflags"
	VarLibs          = "libs"
	VarRCFlags       = "rcflags"
	VarRelease       = "release"
	VarVersion       = "version"
	VarCC            = "cc"
	VarCXX           = "cxx"
	VarLD            = "ld"
)

// DefaultReleaseNoDot is used when build.cfg carries no version
const DefaultReleaseNoDot = "26"

// Feature flag that, when defined, decides MSLU
const featureMSLU = "wxUSE_UNICODE_MSLU"
