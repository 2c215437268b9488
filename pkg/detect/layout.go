// pkg/detect/layout.go
package detect

import (
	"path/filepath"

	"github.com/arc-language/wxconfig/pkg/buildcfg"
	"github.com/arc-language/wxconfig/pkg/setuph"
	"github.com/arc-language/wxconfig/pkg/wxcfg"
)

// Layout knows where an installation keeps its files, relative to its root:
//
//	include/wx/wx.h                  install marker
//	build/msw/config.<compiler>      compiler defaults
//	lib/<wxcfg>/build.cfg            build options of one configuration
//	lib/<wxcfg>/wx/setup.h           feature flags, also the configuration marker
type Layout struct {
	Root string
}

// NewLayout cleans root and returns its Layout
func NewLayout(root string) Layout {
	return Layout{Root: filepath.Clean(root)}
}

// InstallMarker is the file that proves Root holds an installation
func (l Layout) InstallMarker() string {
	return filepath.Join(l.Root, "include", "wx", "wx.h")
}

// IncludeDir is the public header directory
func (l Layout) IncludeDir() string {
	return filepath.Join(l.Root, "include")
}

// SamplesDir is where the bundled samples live
func (l Layout) SamplesDir() string {
	return filepath.Join(l.Root, "samples")
}

// LibDir is the parent of every configuration directory
func (l Layout) LibDir() string {
	return filepath.Join(l.Root, "lib")
}

// ConfigDir is lib/<wxcfg>
func (l Layout) ConfigDir(id wxcfg.Identifier) string {
	return filepath.Join(append([]string{l.LibDir()}, id.Segments()...)...)
}

// BuildFile is lib/<wxcfg>/build.cfg
func (l Layout) BuildFile(id wxcfg.Identifier) string {
	return filepath.Join(l.ConfigDir(id), buildcfg.FileName)
}

// SetupHeader is lib/<wxcfg>/wx/setup.h
func (l Layout) SetupHeader(id wxcfg.Identifier) string {
	return filepath.Join(l.ConfigDir(id), "wx", setuph.FileName)
}

// CompilerFile is build/msw/config.<compiler>
func (l Layout) CompilerFile(compiler string) string {
	return filepath.Join(l.Root, "build", "msw", buildcfg.CompilerFilePrefix+compiler)
}
