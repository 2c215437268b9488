// pkg/detect/utils.go
package detect

import (
	"github.com/spf13/afero"
)

// fileExists checks if path exists and is not a directory
func fileExists(fsys afero.Fs, path string) bool {
	info, err := fsys.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
