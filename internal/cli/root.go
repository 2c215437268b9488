// internal/cli/root.go
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/arc-language/wxconfig"
	"github.com/arc-language/wxconfig/pkg/cmdline"
	"github.com/arc-language/wxconfig/pkg/core"
)

// Exit codes
const (
	exitSuccess   = 0
	exitUserError = 1
)

// Env is what the command reads from the outside world
type Env struct {
	Fs     afero.Fs
	Getenv func(string) string

	// ConfigPath is the tool config file; "" uses core.DefaultConfigPath
	ConfigPath string
}

// exitError carries a non-zero status whose diagnostics are already printed
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// NewRootCmd creates the wx-config command. The command line is not parsed
// by cobra: wx-config accepts --flag[=value] switches in any combination
// followed by an optional component list.
func NewRootCmd(env Env) *cobra.Command {
	if env.Fs == nil {
		env.Fs = afero.NewOsFs()
	}
	if env.Getenv == nil {
		env.Getenv = os.Getenv
	}

	root := &cobra.Command{
		Use:                "wx-config [options] [components]",
		Short:              "Print compiler and linker flags for a wxWidgets build",
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, env, args)
		},
	}
	root.SetUsageFunc(func(cmd *cobra.Command) error {
		printUsage(cmd.ErrOrStderr())
		return nil
	})
	return root
}

// Execute runs wx-config with args and returns the exit code
func Execute(args []string) int {
	root := NewRootCmd(Env{})
	root.SetArgs(args)
	return exitCode(root.Execute())
}

func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var exit *exitError
	if errors.As(err, &exit) {
		return exit.code
	}
	return exitUserError
}

func run(cmd *cobra.Command, env Env, args []string) error {
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()

	cl := cmdline.Parse(args)
	if err := cl.Validate(); err != nil {
		if bad := cl.Unrecognized(); bad != "" {
			fmt.Fprintf(stderr, "%sUnrecognised option: '%s'\n\n", tokError, bad)
		}
		printUsage(stderr)
		return &exitError{code: exitUserError}
	}

	if cl.Has(cmdline.FlagRevision) {
		printRevision(stdout)
		return nil
	}

	tool, err := core.LoadConfig(env.Fs, env.ConfigPath)
	if err != nil {
		printWarning(stderr, err.Error())
	}
	logger := newLogger(tool.Debug, stderr)
	defer logger.Sync()

	resolver, err := wxconfig.New(wxconfig.Config{
		Fs:     env.Fs,
		Logger: logger,
		Getenv: env.Getenv,
		Tool:   tool,
	})
	if err != nil {
		printError(stderr, err)
		return &exitError{code: exitUserError}
	}

	if cl.Has(cmdline.FlagList) {
		for _, id := range resolver.List(cl) {
			fmt.Fprintln(stdout, id)
		}
		return nil
	}

	res, err := resolver.Resolve(cl)
	if err != nil {
		printError(stderr, err)
		return &exitError{code: exitUserError}
	}
	for _, w := range res.Warnings {
		printWarning(stderr, w)
	}

	if cl.Has(cmdline.FlagVariable) {
		fmt.Fprint(stdout, res.Flags.Describe(cl.Value(cmdline.FlagVariable)))
		return nil
	}

	writeFlags(stdout, cl, res.Flags)
	return nil
}

// newLogger traces to w at debug level, or discards everything
func newLogger(debug bool, w io.Writer) *zap.Logger {
	if !debug {
		return zap.NewNop()
	}
	c := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		zapcore.DebugLevel,
	)
	return zap.New(c).Named("wx-config")
}
