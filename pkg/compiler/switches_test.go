package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSwitches(t *testing.T) {
	gcc := Switches{IncludeDirs: "-I", ResIncludeDirs: "--include-dir", LibDirs: "-L", LinkLibs: "-l",
		LibPrefix: "lib", LibExtension: "a", Defines: "-D", ResDefines: "--define"}
	wat := Switches{LibDirs: "libp ", LibPrefix: "libr ", LibExtension: "lib",
		NeedsLibPrefix: true, NeedsLibExtension: true}
	dmc := Switches{LibExtension: "lib", NeedsLibExtension: true, LinkerQuotes: true}

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"gcc lib", gcc.Lib("wxbase28"), "-lwxbase28"},
		{"wat lib", wat.Lib("wxbase28"), "libr wxbase28.lib"},
		{"dmc lib", dmc.Lib("kernel32"), "kernel32.lib"},
		{"empty lib", gcc.Lib(""), ""},
		{"define", gcc.Define("__WXMSW__"), "-D__WXMSW__"},
		{"empty define", gcc.Define(""), ""},
		{"res define", gcc.ResDefine("__WXMSW__"), "--define __WXMSW__"},
		{"include", gcc.IncludeDir(`C:\wx\include`), `-IC:\wx\include`},
		{"res include", gcc.ResIncludeDir(`C:\wx\include`), `--include-dir C:\wx\include`},
		{"lib dir", wat.LinkerDir(`C:\wx\lib`), `libp C:\wx\lib`},
		{"quoted lib dir", dmc.LinkerDir(`C:\Program Files\wx\lib`), `"C:\Program Files\wx\lib"`},
		{"unquoted include", gcc.IncludeDir(`C:\Program Files\wx`), `-IC:\Program Files\wx`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}
