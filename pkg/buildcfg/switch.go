// pkg/buildcfg/switch.go
package buildcfg

// Switch is an on/off build option that may also be left unset
type Switch int

const (
	Unset Switch = iota
	Off
	On
)

// SwitchOf reads "1" as On and "0" as Off. Anything else is Unset.
func SwitchOf(value string) Switch {
	switch value {
	case Yes:
		return On
	case No:
		return Off
	}
	return Unset
}

// FollowBuild is SwitchOf, except that "default" is On for debug builds
// and Off for release builds.
func FollowBuild(value, build string) Switch {
	if value != Default {
		return SwitchOf(value)
	}
	switch build {
	case BuildDebug:
		return On
	case BuildRelease:
		return Off
	}
	return Unset
}
