// pkg/compiler/doc.go
package compiler

/*
Package compiler turns a wxWidgets build configuration into command line
flags for one of the supported Windows toolchains.

Every toolchain is described by a Profile: its program names, how it spells
include dirs, defines and libraries, and the ordered list of entries that
make up its cflags, libs and rcflags. The built-in profiles live in
profiles.yaml; a user file can replace or add profiles.

Basic Usage:

    table, _ := compiler.Builtin()
    profile, _ := table.Lookup("gcc")

    flags, err := compiler.Render(profile, compiler.Input{
        Prefix:   `C:\wxWidgets`,
        Build:    buildOptions,   // config.gcc + build.cfg
        Features: setupFeatures,  // setup.h
        Libs:     []string{"core", "base"},
    })
    fmt.Println(flags.CFlags)
    fmt.Println(flags.Libs)

Render is pure: it touches no files and keeps no state, so the same
Input always gives the same FlagSet.

Link libraries come from pkg/registry, which knows the component
dependencies and the link order.
*/
