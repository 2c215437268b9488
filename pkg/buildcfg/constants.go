// pkg/buildcfg/constants.go
package buildcfg

const (
	// FileName is the per-configuration build options file under lib/<wxcfg>/
	FileName = "build.cfg"

	// CompilerFilePrefix names the compiler defaults file under build/msw/, e.g. config.gcc
	CompilerFilePrefix = "config."
)

// Build option keys read from build.cfg and config.<compiler>
const (
	KeyBuild          = "BUILD"
	KeyShared         = "SHARED"
	KeyMonolithic     = "MONOLITHIC"
	KeyUnicode        = "UNICODE"
	KeyMSLU           = "MSLU"
	KeyUseGUI         = "USE_GUI"
	KeyWxUniv         = "WXUNIV"
	KeyDebugFlag      = "DEBUG_FLAG"
	KeyDebugInfo      = "DEBUG_INFO"
	KeyDebugRuntime   = "DEBUG_RUNTIME_LIBS"
	KeyRuntimeLibs    = "RUNTIME_LIBS"
	KeyUseThreads     = "USE_THREADS"
	KeyUseRTTI        = "USE_RTTI"
	KeyUseExceptions  = "USE_EXCEPTIONS"
	KeyTargetCPU      = "TARGET_CPU"
	KeyCfg            = "CFG"
	KeyLibFlavour     = "WX_LIB_FLAVOUR"
	KeyVersionMajor   = "WXVER_MAJOR"
	KeyVersionMinor   = "WXVER_MINOR"
	KeyVersionRelease = "WXVER_RELEASE"
	KeyCPPFlags       = "CPPFLAGS"
	KeyCXXFlags       = "CXXFLAGS"
	KeyLDFlags        = "LDFLAGS"
	KeyCC             = "CC"
	KeyCXX            = "CXX"
	KeyLD             = "LD"
	KeyLIB            = "LIB"
	KeyWindres        = "WINDRES"
)

// Values with special meaning
const (
	BuildDebug   = "debug"
	BuildRelease = "release"
	Default      = "default"
	Yes          = "1"
	No           = "0"
)
