// pkg/buildcfg/parser.go
package buildcfg

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/afero"

	"github.com/arc-language/wxconfig/pkg/options"
)

// ErrNotFound is returned when a build options file cannot be opened
var ErrNotFound = errors.New("build options file not found")

// Parse reads a key=value file from fsys. When the file cannot be opened it
// returns an empty Options together with an error wrapping ErrNotFound; the
// caller decides whether that is fatal.
func Parse(fsys afero.Fs, path string) (*options.Options, error) {
	opts := options.New()
	if err := ParseInto(fsys, path, opts); err != nil {
		return opts, err
	}
	return opts, nil
}

// ParseInto reads a key=value file and layers its entries over dst
func ParseInto(fsys afero.Fs, path string, dst *options.Options) error {
	f, err := fsys.Open(path)
	if err != nil {
		return fmt.Errorf("%w: unable to open file '%s'", ErrNotFound, path)
	}
	defer f.Close()

	return ParseReader(f, dst)
}

// ParseReader reads key=value lines from r into dst.
//
// A line containing '#' anywhere is skipped. All space characters are removed
// before splitting on the first '='. Lines without '=' are ignored.
func ParseReader(r io.Reader, dst *options.Options) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")

		// comment line
		if strings.Contains(line, "#") {
			continue
		}

		line = strings.ReplaceAll(line, " ", "")

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		dst.Set(key, value)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanning build options: %w", err)
	}

	return nil
}

// Decode converts parsed options into a BuildConfig
func Decode(opts *options.Options) (*BuildConfig, error) {
	var cfg BuildConfig
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "cfg",
		Result:  &cfg,
	})
	if err != nil {
		return nil, fmt.Errorf("creating decoder: %w", err)
	}

	if err := decoder.Decode(opts.Map()); err != nil {
		return nil, fmt.Errorf("decoding build options: %w", err)
	}

	return &cfg, nil
}
