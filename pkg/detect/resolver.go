// pkg/detect/resolver.go
package detect

import (
	"path/filepath"
	"strings"

	"github.com/arc-language/wxconfig/pkg/wxcfg"
)

// DefaultPrefix is the install root used when nothing else names one
const DefaultPrefix = `C:\wxWidgets`

// Source records where a resolved value came from
type Source string

const (
	SourceFlag     Source = "flag"
	SourceEnv      Source = "environment"
	SourceConfig   Source = "config"
	SourceDefault  Source = "default"
	SourceDetected Source = "detected"
)

// Inputs gathers every place a prefix or identifier can come from.
// Has* reports whether the flag was given at all, even with an empty value.
type Inputs struct {
	FlagPrefix    string
	HasFlagPrefix bool
	EnvPrefix     string
	ConfigPrefix  string

	FlagWxCfg    string
	HasFlagWxCfg bool
	EnvWxCfg     string
	ConfigWxCfg  string
}

// ResolvePrefix picks the install root.
//
// Priority:
// 1. --prefix
// 2. WXWIN
// 3. prefix in the tool config
// 4. DefaultPrefix
func ResolvePrefix(in Inputs) (string, Source) {
	prefix, source := DefaultPrefix, SourceDefault
	switch {
	case in.HasFlagPrefix:
		prefix, source = in.FlagPrefix, SourceFlag
	case in.EnvPrefix != "":
		prefix, source = in.EnvPrefix, SourceEnv
	case in.ConfigPrefix != "":
		prefix, source = in.ConfigPrefix, SourceConfig
	}
	return NormalizePrefix(prefix), source
}

// ResolveIdentifier picks the explicit identifier, if any. An empty result
// means the caller has to probe.
//
// Priority:
// 1. --wxcfg
// 2. WXCFG, only without --prefix
// 3. wxcfg in the tool config, only without --prefix
func ResolveIdentifier(in Inputs) (wxcfg.Identifier, Source) {
	switch {
	case in.HasFlagWxCfg:
		return wxcfg.Normalize(in.FlagWxCfg), SourceFlag
	case in.HasFlagPrefix:
		// a new root invalidates ambient defaults
		return "", ""
	case in.EnvWxCfg != "":
		return wxcfg.Normalize(in.EnvWxCfg), SourceEnv
	case in.ConfigWxCfg != "":
		return wxcfg.Normalize(in.ConfigWxCfg), SourceConfig
	}
	return "", ""
}

// NormalizePrefix converts separators, drops one trailing separator and
// cleans the result for the host filesystem.
func NormalizePrefix(prefix string) string {
	prefix = strings.ReplaceAll(prefix, `\`, "/")
	if len(prefix) > 1 {
		prefix = strings.TrimSuffix(prefix, "/")
	}
	return filepath.Clean(filepath.FromSlash(prefix))
}
