// errors.go
package wxconfig

import (
	"errors"
	"fmt"

	"github.com/arc-language/wxconfig/pkg/buildcfg"
	"github.com/arc-language/wxconfig/pkg/cmdline"
	"github.com/arc-language/wxconfig/pkg/detect"
	"github.com/arc-language/wxconfig/pkg/setuph"
)

var (
	// ErrFileNotFound indicates a configuration file could not be opened
	ErrFileNotFound = errors.New("file not found")

	// ErrInstallNotFound indicates the prefix holds no installation
	ErrInstallNotFound = detect.ErrInstallNotFound

	// ErrAmbiguousConfiguration indicates auto-detection found more than one configuration
	ErrAmbiguousConfiguration = detect.ErrAmbiguous

	// ErrNoConfigurationFound indicates auto-detection found nothing
	ErrNoConfigurationFound = detect.ErrNotFound

	// ErrInvalidConfiguration indicates the selected configuration is not installed
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrUnrecognizedCompiler indicates the identifier carries no known compiler tag
	ErrUnrecognizedCompiler = errors.New("unrecognized compiler")

	// ErrInvalidArguments indicates no recognized switch was given
	ErrInvalidArguments = cmdline.ErrInvalidArguments

	// ErrMalformedOverride indicates a --define-variable without NAME=VALUE
	ErrMalformedOverride = cmdline.ErrMalformedOverride
)

// Error wraps an error with additional context
type Error struct {
	Op   string // Operation that failed
	Path string // File or identifier if applicable
	Err  error  // Underlying error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is folds the parser level not-found errors into ErrFileNotFound
func (e *Error) Is(target error) bool {
	if target != ErrFileNotFound {
		return false
	}
	return errors.Is(e.Err, buildcfg.ErrNotFound) || errors.Is(e.Err, setuph.ErrNotFound)
}
