// pkg/core/settings.go
package core

// Settings are the switches of one invocation. They are passed explicitly
// to every stage that needs them.
type Settings struct {
	// EasyMode adds the convenience flags: warnings, optimization, debug
	// info, the samples include dir and the windowed subsystem.
	EasyMode bool
}

// NewSettings derives the invocation settings from the tool config.
// easyMode is the --easymode toggle: nil keeps the configured value.
func NewSettings(cfg *Config, easyMode *bool) Settings {
	s := Settings{}
	if cfg != nil {
		s.EasyMode = cfg.EasyMode
	}
	if easyMode != nil {
		s.EasyMode = *easyMode
	}
	return s
}
