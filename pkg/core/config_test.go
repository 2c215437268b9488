package core

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissing(t *testing.T) {
	t.Setenv(EnvDebug, "")
	fsys := afero.NewMemMapFs()

	cfg, err := LoadConfig(fsys, "/home/u/.config/wx-config/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig(t *testing.T) {
	t.Setenv(EnvDebug, "")
	fsys := afero.NewMemMapFs()
	doc := `prefix: C:\wxWidgets-2.8.12
wxcfg: vc_lib\mswud
easymode: true
profiles: C:\tools\profiles.yaml
`
	require.NoError(t, afero.WriteFile(fsys, "/cfg.yaml", []byte(doc), 0o644))

	cfg, err := LoadConfig(fsys, "/cfg.yaml")
	require.NoError(t, err)
	assert.Equal(t, `C:\wxWidgets-2.8.12`, cfg.Prefix)
	assert.Equal(t, `vc_lib\mswud`, cfg.WxCfg)
	assert.True(t, cfg.EasyMode)
	assert.False(t, cfg.Debug)
	assert.Equal(t, `C:\tools\profiles.yaml`, cfg.Profiles)
}

func TestLoadConfigMalformed(t *testing.T) {
	t.Setenv(EnvDebug, "")
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/cfg.yaml", []byte("prefix: [unterminated\n"), 0o644))

	cfg, err := LoadConfig(fsys, "/cfg.yaml")
	assert.Error(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigDebugFromEnv(t *testing.T) {
	t.Setenv(EnvDebug, "1")
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/cfg.yaml", []byte("debug: false\n"), 0o644))

	cfg, err := LoadConfig(fsys, "/cfg.yaml")
	require.NoError(t, err)
	assert.True(t, cfg.Debug)
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv(EnvConfig, "/etc/wx-config.yaml")
	assert.Equal(t, "/etc/wx-config.yaml", DefaultConfigPath())

	t.Setenv(EnvConfig, "")
	t.Setenv("HOME", "/home/u")
	assert.Equal(t, "/home/u/.config/wx-config/config.yaml", DefaultConfigPath())
}

func TestNewSettings(t *testing.T) {
	yes, no := true, false

	assert.False(t, NewSettings(nil, nil).EasyMode)
	assert.True(t, NewSettings(&Config{EasyMode: true}, nil).EasyMode)
	assert.False(t, NewSettings(&Config{EasyMode: true}, &no).EasyMode)
	assert.True(t, NewSettings(&Config{}, &yes).EasyMode)
}
