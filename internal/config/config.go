package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/san-kum/fk3r/internal/kinematics"
	"gopkg.in/yaml.v3"
)

// ErrInvalidJoints indicates a joint value that is NaN or infinite.
var ErrInvalidJoints = errors.New("config: joints must be finite")

type Config struct {
	Joints  JointConfig   `yaml:"joints"`
	Display DisplayConfig `yaml:"display"`
}

// JointConfig is the initial joint state: lengths in meters, angles in
// degrees, angular velocities in rad/s.
type JointConfig struct {
	L1     float64 `yaml:"l1"`
	L2     float64 `yaml:"l2"`
	L3     float64 `yaml:"l3"`
	Theta1 float64 `yaml:"theta1"`
	Theta2 float64 `yaml:"theta2"`
	Theta3 float64 `yaml:"theta3"`
	Omega1 float64 `yaml:"omega1"`
	Omega2 float64 `yaml:"omega2"`
	Omega3 float64 `yaml:"omega3"`
}

type DisplayConfig struct {
	ShowPose bool `yaml:"show_pose"`
}

func DefaultConfig() *Config {
	return &Config{
		Joints:  FromJointState(kinematics.Defaults()),
		Display: DisplayConfig{ShowPose: true},
	}
}

func FromJointState(s kinematics.JointState) JointConfig {
	return JointConfig{
		L1: s.L1, L2: s.L2, L3: s.L3,
		Theta1: s.Theta1, Theta2: s.Theta2, Theta3: s.Theta3,
		Omega1: s.Omega1, Omega2: s.Omega2, Omega3: s.Omega3,
	}
}

// Load reads a YAML file over the defaults; keys missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads a YAML file over a copy of base.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := *base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if !cfg.JointState().IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidJoints, path)
	}
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) JointState() kinematics.JointState {
	j := c.Joints
	return kinematics.JointState{
		L1: j.L1, L2: j.L2, L3: j.L3,
		Theta1: j.Theta1, Theta2: j.Theta2, Theta3: j.Theta3,
		Omega1: j.Omega1, Omega2: j.Omega2, Omega3: j.Omega3,
	}
}
