package detect

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arc-language/wxconfig/pkg/wxcfg"
)

func TestResolvePrefix(t *testing.T) {
	tests := []struct {
		name   string
		in     Inputs
		want   string
		source Source
	}{
		{"default", Inputs{}, NormalizePrefix(DefaultPrefix), SourceDefault},
		{"config", Inputs{ConfigPrefix: "/cfg"}, "/cfg", SourceConfig},
		{"env beats config", Inputs{EnvPrefix: "/env", ConfigPrefix: "/cfg"}, "/env", SourceEnv},
		{"flag beats env", Inputs{FlagPrefix: "/flag", HasFlagPrefix: true, EnvPrefix: "/env"}, "/flag", SourceFlag},
		{"trailing separator", Inputs{FlagPrefix: "/flag/", HasFlagPrefix: true}, "/flag", SourceFlag},
		{"backslashes", Inputs{EnvPrefix: `\opt\wx\`}, filepath.FromSlash("/opt/wx"), SourceEnv},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, source := ResolvePrefix(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.source, source)
		})
	}
}

func TestResolveIdentifier(t *testing.T) {
	tests := []struct {
		name   string
		in     Inputs
		want   wxcfg.Identifier
		source Source
	}{
		{"nothing", Inputs{}, "", ""},
		{"flag", Inputs{FlagWxCfg: "vc_lib/msw", HasFlagWxCfg: true, EnvWxCfg: `gcc_dll\msw`}, `vc_lib\msw`, SourceFlag},
		{"env", Inputs{EnvWxCfg: `\gcc_dll\mswu\`}, `gcc_dll\mswu`, SourceEnv},
		{"config", Inputs{ConfigWxCfg: `wat_lib\msw`}, `wat_lib\msw`, SourceConfig},
		{"env beats config", Inputs{EnvWxCfg: `gcc_dll\msw`, ConfigWxCfg: `wat_lib\msw`}, `gcc_dll\msw`, SourceEnv},
		{"prefix drops env", Inputs{HasFlagPrefix: true, EnvWxCfg: `gcc_dll\msw`}, "", ""},
		{"prefix drops config", Inputs{HasFlagPrefix: true, ConfigWxCfg: `gcc_dll\msw`}, "", ""},
		{"prefix keeps flag", Inputs{HasFlagPrefix: true, HasFlagWxCfg: true, FlagWxCfg: `vc_dll\msw`}, `vc_dll\msw`, SourceFlag},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, source := ResolveIdentifier(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.source, source)
		})
	}
}
