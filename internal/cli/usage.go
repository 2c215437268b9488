// internal/cli/usage.go
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"
)

// usageFlags documents the accepted switches. It is only rendered, never
// parsed: cmdline.Parse owns the command line.
func usageFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("wx-config", pflag.ContinueOnError)
	fs.SortFlags = false

	fs.String("prefix", "", "Path of the wxWidgets installation (ie. `C:\\wxWidgets2.6.3`)")
	fs.String("wxcfg", "", "Relative path of the build.cfg file (ie. `gcc_dll\\mswud`)")
	fs.Bool("list", false, "Lists all the installed library configurations")
	fs.Bool("cflags", false, "Outputs all pre-processor and compiler flags")
	fs.Bool("cxxflags", false, "Same as --cflags but for C++")
	fs.Bool("rcflags", false, "Outputs all resource compiler flags")
	fs.Bool("libs", false, "Outputs all linker flags")

	for _, t := range []struct{ name, usage string }{
		{"debug", "Uses a debug configuration if found"},
		{"unicode", "Uses an unicode configuration if found"},
		{"static", "Uses a static configuration if found"},
		{"universal", "Uses an universal configuration if found"},
		{"easymode", "Outputs warnings, and optimize flags"},
	} {
		fs.String(t.name, "", t.usage+" (`yes|no`)")
		fs.Lookup(t.name).NoOptDefVal = "yes"
	}

	fs.String("compiler", "", "Selects the compiler (`gcc|dmc|vc|wat|bcc`)")
	fs.String("variable", "", "Returns the value of a defined variable (`NAME`)")
	fs.String("define-variable", "", "Sets a global value for a variable (`NAME=VALUE`)")
	fs.Bool("release", false, "Outputs the wxWidgets release number")
	fs.Bool("cc", false, "Outputs the name of the C compiler")
	fs.Bool("cxx", false, "Outputs the name of the C++ compiler")
	fs.Bool("ld", false, "Outputs the linker command")
	return fs
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: wx-config [options] [components]")
	fmt.Fprintln(w, "Options:")
	fmt.Fprint(w, usageFlags().FlagUsages())
	fmt.Fprintln(w, "  -v                            Outputs the revision of wx-config")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Components are a comma separated list, e.g. core,base. 'std' adds the")
	fmt.Fprintln(w, "  standard set: xrc,qa,html,adv,core,xml,net,base.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Note that using --prefix is not needed if you have defined the")
	fmt.Fprintln(w, "  environmental variable WXWIN.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Also note that using --wxcfg is not needed if you have defined the")
	fmt.Fprintln(w, "  environmental variable WXCFG.")
	fmt.Fprintln(w)
}
