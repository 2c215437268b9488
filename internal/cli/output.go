// internal/cli/output.go
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/arc-language/wxconfig"
	"github.com/arc-language/wxconfig/pkg/cmdline"
)

const (
	tokError   = "wx-config Error: "
	tokWarning = "wx-config Warning: "
)

const (
	hintWxCfg = "Please use the --wxcfg flag (as in wx-config --wxcfg=gcc_dll\\mswud)\n" +
		"or set the environment variable WXCFG (as in WXCFG=gcc_dll\\mswud)\n" +
		"to specify which configuration exactly you want to use."

	hintPrefix = "Please use the --prefix flag (as in wx-config --prefix=C:\\wxWidgets)\n" +
		"or set the environment variable WXWIN (as in WXWIN=C:\\wxWidgets)\n" +
		"to specify where is your installation of wxWidgets."

	hintCompiler = "The specified wxcfg must start with a 'gcc_', 'dmc_', 'vc_', 'wat_' or 'bcc_'\n" +
		"to be successfully detected."

	hintDefine = "The syntax is --define-variable=VARIABLENAME=VARIABLEVALUE"
)

// writeFlags prints the requested outputs in a fixed order. The program
// names are printed without a trailing newline.
func writeFlags(w io.Writer, cl *cmdline.CommandLine, flags *wxconfig.FlagSet) {
	if cl.Has(cmdline.FlagCC) {
		fmt.Fprint(w, flags.CC)
	}
	if cl.Has(cmdline.FlagCXX) {
		fmt.Fprint(w, flags.CXX)
	}
	if cl.Has(cmdline.FlagLD) {
		fmt.Fprint(w, flags.LD)
	}
	if cl.Has(cmdline.FlagCFlags) || cl.Has(cmdline.FlagCXXFlags) || cl.Has(cmdline.FlagCPPFlags) {
		fmt.Fprintln(w, flags.CFlags)
	}
	if cl.Has(cmdline.FlagLibs) {
		fmt.Fprintln(w, flags.Libs)
	}
	if cl.Has(cmdline.FlagRCFlags) {
		fmt.Fprintln(w, flags.RCFlags)
	}
	if cl.Has(cmdline.FlagRelease) {
		fmt.Fprintln(w, flags.Release)
	}
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s%v\n", tokError, err)
	if hint := hintFor(err); hint != "" {
		fmt.Fprintf(w, "\n%s\n", hint)
	}
}

func printWarning(w io.Writer, msg string) {
	fmt.Fprintf(w, "%s%s\n", tokWarning, msg)
}

func hintFor(err error) string {
	switch {
	case errors.Is(err, wxconfig.ErrInstallNotFound):
		return hintPrefix
	case errors.Is(err, wxconfig.ErrAmbiguousConfiguration),
		errors.Is(err, wxconfig.ErrNoConfigurationFound),
		errors.Is(err, wxconfig.ErrInvalidConfiguration):
		return hintWxCfg
	case errors.Is(err, wxconfig.ErrUnrecognizedCompiler):
		return hintCompiler
	case errors.Is(err, wxconfig.ErrMalformedOverride):
		return hintDefine
	}
	return ""
}
