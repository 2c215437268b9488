// pkg/buildcfg/types.go
package buildcfg

// BuildConfig is the typed view of a merged build.cfg / config.<compiler> pair.
// Fields mirror the file keys. Tri-state settings such as DEBUG_FLAG keep their
// raw text ("0", "1", "default") so callers can tell "default" apart from unset.
type BuildConfig struct {
	Build          string `cfg:"BUILD"`
	Shared         string `cfg:"SHARED"`
	Monolithic     string `cfg:"MONOLITHIC"`
	Unicode        string `cfg:"UNICODE"`
	MSLU           string `cfg:"MSLU"`
	UseGUI         string `cfg:"USE_GUI"`
	WxUniv         string `cfg:"WXUNIV"`
	DebugFlag      string `cfg:"DEBUG_FLAG"`
	DebugInfo      string `cfg:"DEBUG_INFO"`
	DebugRuntime   string `cfg:"DEBUG_RUNTIME_LIBS"`
	RuntimeLibs    string `cfg:"RUNTIME_LIBS"`
	UseThreads     string `cfg:"USE_THREADS"`
	UseRTTI        string `cfg:"USE_RTTI"`
	UseExceptions  string `cfg:"USE_EXCEPTIONS"`
	UseXRC         string `cfg:"USE_XRC"`
	UseHTML        string `cfg:"USE_HTML"`
	UseQA          string `cfg:"USE_QA"`
	UseAUI         string `cfg:"USE_AUI"`
	UseOpenGL      string `cfg:"USE_OPENGL"`
	TargetCPU      string `cfg:"TARGET_CPU"`
	GCCVersion     string `cfg:"GCC_VERSION"`
	Cfg            string `cfg:"CFG"`
	LibFlavour     string `cfg:"WX_LIB_FLAVOUR"`
	VersionMajor   string `cfg:"WXVER_MAJOR"`
	VersionMinor   string `cfg:"WXVER_MINOR"`
	VersionRelease string `cfg:"WXVER_RELEASE"`
	CPPFlags       string `cfg:"CPPFLAGS"`
	CXXFlags       string `cfg:"CXXFLAGS"`
	LDFlags        string `cfg:"LDFLAGS"`
	CC             string `cfg:"CC"`
	CXX            string `cfg:"CXX"`
	LD             string `cfg:"LD"`
	LIB            string `cfg:"LIB"`
	Windres        string `cfg:"WINDRES"`

	// Extra holds every key without a dedicated field
	Extra map[string]string `cfg:",remain"`
}

// IsDebug reports whether the configuration is a debug build, honouring
// DEBUG_FLAG=default meaning "follow BUILD".
func (c *BuildConfig) IsDebug() bool {
	if c.DebugFlag == Yes {
		return true
	}
	return c.Build == BuildDebug && c.DebugFlag == Default
}

// DebugInfoSwitch resolves DEBUG_INFO, where default follows BUILD
func (c *BuildConfig) DebugInfoSwitch() Switch {
	return FollowBuild(c.DebugInfo, c.Build)
}

// DebugRuntimeSwitch resolves DEBUG_RUNTIME_LIBS, where default follows BUILD
func (c *BuildConfig) DebugRuntimeSwitch() Switch {
	return FollowBuild(c.DebugRuntime, c.Build)
}

// ReleaseNoDot returns major+minor without the dot, e.g. "26"
func (c *BuildConfig) ReleaseNoDot() string {
	return c.VersionMajor + c.VersionMinor
}

// Release returns "major.minor"
func (c *BuildConfig) Release() string {
	return c.VersionMajor + "." + c.VersionMinor
}

// Version returns "major.minor.release"
func (c *BuildConfig) Version() string {
	return c.VersionMajor + "." + c.VersionMinor + "." + c.VersionRelease
}
