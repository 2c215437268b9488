// pkg/cmdline/constants.go
package cmdline

// Recognized command line switches
const (
	FlagPrefix         = "--prefix"
	FlagWxCfg          = "--wxcfg"
	FlagCompiler       = "--compiler"
	FlagEasyMode       = "--easymode"
	FlagVariable       = "--variable"
	FlagDefineVariable = "--define-variable"
	FlagList           = "--list"
	FlagCFlags         = "--cflags"
	FlagCXXFlags       = "--cxxflags"
	FlagCPPFlags       = "--cppflags"
	FlagRCFlags        = "--rcflags"
	FlagLibs           = "--libs"
	FlagDebug          = "--debug"
	FlagUnicode        = "--unicode"
	FlagStatic         = "--static"
	FlagUniversal      = "--universal"
	FlagRelease        = "--release"
	FlagCC             = "--cc"
	FlagCXX            = "--cxx"
	FlagLD             = "--ld"
	FlagRevision       = "-v"
	FlagHelp           = "--help"
)

// recognized lists every switch that makes a command line valid on its own
var recognized = []string{
	FlagCompiler,
	FlagEasyMode,
	FlagVariable,
	FlagDefineVariable,
	FlagPrefix,
	FlagWxCfg,
	FlagLibs,
	FlagCFlags,
	FlagCXXFlags,
	FlagCPPFlags,
	FlagRCFlags,
	FlagList,
	FlagDebug,
	FlagUnicode,
	FlagStatic,
	FlagUniversal,
	FlagRelease,
	FlagCC,
	FlagCXX,
	FlagLD,
	FlagRevision,
}

// StdLibs is the magic component name that expands to DefaultLibs
const StdLibs = "std"

// DefaultLibs is linked when no component is named, or when StdLibs is named
var DefaultLibs = []string{"xrc", "qa", "html", "adv", "core", "xml", "net", "base"}

// Recognized returns a copy of the recognized switch names
func Recognized() []string {
	out := make([]string, len(recognized))
	copy(out, recognized)
	return out
}

// IsRecognized reports whether name is a recognized switch
func IsRecognized(name string) bool {
	for _, r := range recognized {
		if r == name {
			return true
		}
	}
	return false
}
