package config

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownPreset = errors.New("config: unknown preset")

var Presets = map[string]JointConfig{
	"demo": {
		L1: 1, L2: 1, L3: 1,
		Theta1: 25, Theta2: 310, Theta3: 60,
		Omega1: 4, Omega2: -2, Omega3: 6,
	},
	"stretched": {
		L1: 1, L2: 1, L3: 1,
		Omega1: 1,
	},
	"folded": {
		L1: 1, L2: 1, L3: 1,
		Theta1: 90, Theta2: 180, Theta3: 180,
	},
	"still": {
		L1: 1, L2: 0.8, L3: 0.5,
		Theta1: 30, Theta2: 45, Theta3: -60,
	},
	"spin": {
		L1: 0.5, L2: 0.5, L3: 0.5,
		Theta1: 0, Theta2: 120, Theta3: 120,
		Omega1: 2, Omega2: 2, Omega3: 2,
	},
}

// GetPreset returns the default config with the named preset's joints.
func GetPreset(name string) (*Config, error) {
	joints, ok := Presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, name, ListPresets())
	}
	cfg := DefaultConfig()
	cfg.Joints = joints
	return cfg, nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
