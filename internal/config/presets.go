package config

import "sort"

// Presets are named spring feels for quick experimentation.
var Presets = map[string]*Config{
	"soft": {
		Stiffness: 0.03, Damping: 0.10, Rest: 0, InverseMass: 1.0,
		Start: 100, StepMillis: 10, MaxCatchup: 50, FrameRate: 60,
	},
	"snappy": {
		Stiffness: 0.20, Damping: 0.30, Rest: 0, InverseMass: 1.0,
		Start: 100, StepMillis: 10, MaxCatchup: 50, FrameRate: 60,
	},
	"molasses": {
		Stiffness: 0.05, Damping: 0.45, Rest: 0, InverseMass: 0.5,
		Start: 100, StepMillis: 10, MaxCatchup: 50, FrameRate: 60,
	},
	"wobble": {
		Stiffness: 0.15, Damping: 0.08, Rest: 0, InverseMass: 1.0,
		Start: 100, StepMillis: 10, MaxCatchup: 50, FrameRate: 60,
	},
}

// GetPreset returns a copy of the named preset, or nil if unknown. The
// copy keeps callers from mutating the shared table through the
// returned pointer.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

// ListPresets returns the available preset names.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
