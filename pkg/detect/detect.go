// pkg/detect/detect.go
package detect

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/arc-language/wxconfig/pkg/wxcfg"
)

var (
	// ErrInstallNotFound indicates the root has no include/wx/wx.h
	ErrInstallNotFound = errors.New("installation not found")

	// ErrAmbiguous indicates more than one candidate configuration is installed
	ErrAmbiguous = errors.New("multiple compiled configurations detected")

	// ErrNotFound indicates no candidate configuration is installed
	ErrNotFound = errors.New("no configuration detected")
)

// State of a Selector
type State int

const (
	Unselected State = iota
	Probing
	Selected
	Ambiguous
	NotFound
)

func (s State) String() string {
	switch s {
	case Unselected:
		return "unselected"
	case Probing:
		return "probing"
	case Selected:
		return "selected"
	case Ambiguous:
		return "ambiguous"
	case NotFound:
		return "not found"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// AmbiguousError names the first two installed candidates found
type AmbiguousError struct {
	First  wxcfg.Identifier
	Second wxcfg.Identifier
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("%v: '%s' and '%s'", ErrAmbiguous, e.First, e.Second)
}

func (e *AmbiguousError) Unwrap() error {
	return ErrAmbiguous
}

// Selector picks the configuration to use under one installation root.
// A Selector is single use; create a new one per selection.
type Selector struct {
	fs         afero.Fs
	layout     Layout
	candidates []wxcfg.Identifier
	logger     *zap.Logger

	state    State
	selected wxcfg.Identifier
}

// NewSelector creates a Selector probing the built-in candidate list.
// A nil logger disables logging.
func NewSelector(fsys afero.Fs, root string, logger *zap.Logger) *Selector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Selector{
		fs:         fsys,
		layout:     NewLayout(root),
		candidates: wxcfg.Candidates(),
		logger:     logger,
	}
}

// WithCandidates replaces the probed list, mainly for tests
func (s *Selector) WithCandidates(candidates []wxcfg.Identifier) *Selector {
	s.candidates = append([]wxcfg.Identifier(nil), candidates...)
	return s
}

// State returns the current state
func (s *Selector) State() State {
	return s.state
}

// Selected returns the chosen identifier once State is Selected
func (s *Selector) Selected() wxcfg.Identifier {
	return s.selected
}

// Select uses explicit when it is non-empty and probes otherwise. Probing
// walks the candidates in order and tests lib/<candidate>/wx/setup.h. The
// first hit is kept; a second hit is an *AmbiguousError. No hit is ErrNotFound.
func (s *Selector) Select(explicit wxcfg.Identifier) (wxcfg.Identifier, error) {
	if explicit != "" {
		s.state = Selected
		s.selected = explicit
		s.logger.Debug("configuration given explicitly", zap.String("wxcfg", string(explicit)))
		return explicit, nil
	}

	s.state = Probing
	s.logger.Debug("probing configurations",
		zap.String("root", s.layout.Root),
		zap.Int("candidates", len(s.candidates)))

	var first wxcfg.Identifier
	for _, candidate := range s.candidates {
		marker := s.layout.SetupHeader(candidate)
		if !fileExists(s.fs, marker) {
			continue
		}

		if first == "" {
			first = candidate
			s.logger.Debug("configuration detected", zap.String("wxcfg", string(candidate)))
			continue
		}

		s.state = Ambiguous
		return "", &AmbiguousError{First: first, Second: candidate}
	}

	if first == "" {
		s.state = NotFound
		return "", fmt.Errorf("%w under '%s'", ErrNotFound, s.layout.LibDir())
	}

	s.state = Selected
	s.selected = first
	return first, nil
}

// List returns every installed candidate in probe order
func (s *Selector) List() []wxcfg.Identifier {
	var found []wxcfg.Identifier
	for _, candidate := range s.candidates {
		if fileExists(s.fs, s.layout.SetupHeader(candidate)) {
			found = append(found, candidate)
		}
	}
	return found
}

// ValidateInstall checks that root holds an installation
func ValidateInstall(fsys afero.Fs, root string) error {
	layout := NewLayout(root)
	if !fileExists(fsys, layout.InstallMarker()) {
		return fmt.Errorf("%w at '%s'", ErrInstallNotFound, layout.Root)
	}
	return nil
}

// ConfigStatus reports which files of a configuration exist
type ConfigStatus struct {
	BuildFile   bool
	SetupHeader bool
}

// Complete reports whether both files exist
func (c ConfigStatus) Complete() bool {
	return c.BuildFile && c.SetupHeader
}

// CheckConfig probes the build.cfg and setup.h of id
func CheckConfig(fsys afero.Fs, root string, id wxcfg.Identifier) ConfigStatus {
	layout := NewLayout(root)
	return ConfigStatus{
		BuildFile:   fileExists(fsys, layout.BuildFile(id)),
		SetupHeader: fileExists(fsys, layout.SetupHeader(id)),
	}
}
