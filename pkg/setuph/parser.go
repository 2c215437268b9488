// pkg/setuph/parser.go
package setuph

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"

	"github.com/arc-language/wxconfig/pkg/options"
)

const (
	// FileName is the feature header inside lib/<wxcfg>/wx/
	FileName = "setup.h"

	defineToken = "#define"
)

// ErrNotFound is returned when the feature header cannot be opened
var ErrNotFound = errors.New("setup.h not found")

// Parse reads a setup.h style header from fsys. When the file cannot be opened
// it returns empty Features together with an error wrapping ErrNotFound.
func Parse(fsys afero.Fs, path string) (options.Features, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return options.Features{}, fmt.Errorf("%w: unable to open file '%s'", ErrNotFound, path)
	}
	defer f.Close()

	return ParseReader(f)
}

// ParseReader extracts "#define KEY 0|1" lines from r.
//
// Any line containing '/' is skipped, so commented-out defines never count.
// Spaces and tabs are removed before matching, which also accepts "#  define".
// Defines whose value does not end in 0 or 1 are ignored.
func ParseReader(r io.Reader) (options.Features, error) {
	features := options.Features{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		if key, val, ok := parseLine(scanner.Text()); ok {
			features[key] = val
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning setup.h: %w", err)
	}

	return features, nil
}

func parseLine(line string) (string, bool, bool) {
	if strings.Contains(line, "/") {
		return "", false, false
	}

	line = strings.TrimSuffix(line, "\r")
	line = strings.ReplaceAll(line, " ", "")
	line = strings.ReplaceAll(line, "\t", "")

	pos := strings.Index(line, defineToken)
	if pos == -1 {
		return "", false, false
	}

	start := pos + len(defineToken)
	if len(line) <= start {
		return "", false, false
	}

	var val bool
	switch line[len(line)-1] {
	case '0':
		val = false
	case '1':
		val = true
	default:
		return "", false, false
	}

	return line[start : len(line)-1], val, true
}
