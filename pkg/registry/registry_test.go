package registry

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arc-language/wxconfig/pkg/options"
)

func defaultRegistry(t *testing.T) *Registry {
	t.Helper()
	reg, err := Default()
	require.NoError(t, err)
	return reg
}

func guiContext() Context {
	return Context{
		MSWBasename:  "wxmsw28ud",
		BaseBasename: "wxbase28ud",
		UnicodeFlag:  "u",
		DebugFlag:    "d",
		GUI:          true,
		Options: options.FromMap(map[string]string{
			"USE_XRC":  "1",
			"USE_HTML": "1",
			"USE_QA":   "1",
			"USE_AUI":  "1",
		}),
		Features: options.Features{},
	}
}

func system() []string {
	return []string{"kernel32", "user32", "gdi32", "comdlg32", "winspool", "winmm",
		"shell32", "comctl32", "uuid", "rpcrt4", "advapi32"}
}

func TestDefaultLookup(t *testing.T) {
	reg := defaultRegistry(t)

	c, ok := reg.Lookup("opengl")
	require.True(t, ok)
	assert.Equal(t, "gl", c.Name)

	_, ok = reg.Lookup("nope")
	assert.False(t, ok)
}

func TestResolveStandardSet(t *testing.T) {
	reg := defaultRegistry(t)
	requested := []string{"std", "xrc", "qa", "html", "adv", "core", "xml", "net", "base"}

	got := reg.Resolve(requested, guiContext())
	want := append([]string{
		"wxmsw28ud_xrc", "wxmsw28ud_qa", "wxmsw28ud_html", "wxmsw28ud_adv",
		"wxmsw28ud_core", "wxbase28ud_xml", "wxbase28ud_net", "wxbase28ud",
	}, system()...)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Resolve() mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveLinkOrderIgnoresRequestOrder(t *testing.T) {
	reg := defaultRegistry(t)

	got := reg.Resolve([]string{"base", "core", "adv"}, guiContext())
	assert.Equal(t, []string{"wxmsw28ud_adv", "wxmsw28ud_core", "wxbase28ud"}, got[:3])
}

func TestResolveRequires(t *testing.T) {
	reg := defaultRegistry(t)
	ctx := guiContext()
	ctx.Options.Set("USE_HTML", "0")

	got := reg.Resolve([]string{"xrc"}, ctx)
	assert.Equal(t, []string{"wxmsw28ud_xrc", "wxmsw28ud_html", "wxmsw28ud_adv", "wxbase28ud_xml"}, got[:4])
}

func TestResolveGates(t *testing.T) {
	reg := defaultRegistry(t)

	t.Run("no gui", func(t *testing.T) {
		ctx := guiContext()
		ctx.GUI = false
		got := reg.Resolve([]string{"core", "adv", "net", "base"}, ctx)
		assert.Equal(t, []string{"wxbase28ud_net", "wxbase28ud"}, got[:2])
		assert.NotContains(t, got, "wxmsw28ud_core")
	})

	t.Run("option off", func(t *testing.T) {
		ctx := guiContext()
		ctx.Options.Set("USE_AUI", "0")
		got := reg.Resolve([]string{"aui"}, ctx)
		assert.NotContains(t, got, "wxmsw28ud_aui")
	})

	t.Run("feature", func(t *testing.T) {
		ctx := guiContext()
		assert.NotContains(t, reg.Resolve([]string{"odbc"}, ctx), "wxbase28ud_odbc")

		ctx.Features["wxUSE_ODBC"] = true
		got := reg.Resolve([]string{"dbgrid"}, ctx)
		assert.Equal(t, []string{"wxmsw28ud_dbgrid", "wxbase28ud_odbc", "wxmsw28ud_adv"}, got[:3])
		assert.Contains(t, got, "odbc32")
	})
}

func TestResolveMonolithic(t *testing.T) {
	reg := defaultRegistry(t)
	ctx := guiContext()
	ctx.Monolithic = true
	ctx.Options.Set("USE_OPENGL", "1")

	got := reg.Resolve([]string{"custom", "gl", "core", "base"}, ctx)
	assert.Equal(t, []string{"wxmsw28ud_custom", "wxmsw28ud_gl", "opengl32", "glu32", "wxmsw28ud"}, got[:5])
	assert.NotContains(t, got, "wxmsw28ud_core")
}

func TestResolveThirdParty(t *testing.T) {
	reg := defaultRegistry(t)
	ctx := guiContext()
	ctx.Features = options.Features{
		"wxUSE_LIBTIFF": true,
		"wxUSE_LIBJPEG": true,
		"wxUSE_LIBPNG":  true,
		"wxUSE_ZLIB":    true,
		"wxUSE_REGEX":   true,
		"wxUSE_XRC":     true,
		"wxUSE_OLE":     true,
		"wxUSE_SOCKETS": true,
	}
	ctx.Options.Set("MSLU", "1")

	got := reg.Resolve([]string{"base"}, ctx)
	want := []string{
		"wxbase28ud",
		"wxtiffd", "wxjpegd", "wxpngd", "wxzlibd", "wxregexud", "wxexpatd", "unicows",
		"kernel32", "user32", "gdi32", "comdlg32", "winspool", "winmm", "shell32", "comctl32",
		"ole32", "oleaut32", "uuid", "rpcrt4", "advapi32", "wsock32",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Resolve() mismatch (-want +got):\n%s", diff)
	}
}

func TestResolvePngNeedsZlib(t *testing.T) {
	reg := defaultRegistry(t)
	ctx := guiContext()
	ctx.Features = options.Features{"wxUSE_LIBPNG": true}

	assert.NotContains(t, reg.Resolve(nil, ctx), "wxpngd")
}

func TestResolveUnknownKeepsRequestOrder(t *testing.T) {
	reg := defaultRegistry(t)

	got := reg.Resolve([]string{"stc", "", "gizmos", "stc"}, guiContext())
	assert.Equal(t, []string{"wxmsw28ud_stc", "wxmsw28ud_gizmos"}, got[:2])
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"syntax", "[[component]\n"},
		{"no name", "[[component]]\nbasename = \"msw\"\n"},
		{"bad basename", "[[component]]\nname = \"x\"\nbasename = \"gtk\"\n"},
		{"duplicate", "[[component]]\nname = \"x\"\nbasename = \"msw\"\n[[component]]\nname = \"x\"\nbasename = \"base\"\n"},
		{"unknown requirement", "[[component]]\nname = \"x\"\nbasename = \"msw\"\nrequires = [\"y\"]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.doc)
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	fsys := afero.NewMemMapFs()
	doc := "[[component]]\nname = \"stc\"\nbasename = \"msw\"\nsuffix = \"_stc\"\ngui = true\n"
	require.NoError(t, afero.WriteFile(fsys, "/etc/wx/components.toml", []byte(doc), 0o644))

	reg, err := Load(fsys, "/etc/wx/components.toml")
	require.NoError(t, err)

	got := reg.Resolve([]string{"stc"}, guiContext())
	assert.Equal(t, []string{"wxmsw28ud_stc"}, got)

	_, err = Load(fsys, "/missing.toml")
	assert.Error(t, err)
}
