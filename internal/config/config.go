package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arjun-s/springstep/internal/engine"
	"github.com/arjun-s/springstep/internal/physics"
)

const (
	DefaultRest      = 0.0
	DefaultStart     = 100.0
	DefaultFrameRate = 60
)

// Config is the full tunable surface of the engine and its shells.
type Config struct {
	Stiffness   float64 `yaml:"stiffness"`
	Damping     float64 `yaml:"damping"`
	Rest        float64 `yaml:"rest"`
	InverseMass float64 `yaml:"inverse_mass"`
	Start       float64 `yaml:"start"`

	StepMillis int64 `yaml:"step_millis"`
	MaxCatchup int64 `yaml:"max_catchup"`

	FrameRate int `yaml:"frame_rate"`
}

func DefaultConfig() *Config {
	return &Config{
		Stiffness:   physics.DefaultStiffness,
		Damping:     physics.DefaultDamping,
		Rest:        DefaultRest,
		InverseMass: physics.DefaultInverseMass,
		Start:       DefaultStart,
		StepMillis:  engine.DefaultStepMillis,
		MaxCatchup:  engine.DefaultMaxCatchup,
		FrameRate:   DefaultFrameRate,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate mirrors the engine's construction checks so bad files fail
// before a run starts.
func (c *Config) Validate() error {
	if err := c.Spring().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := c.Body().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.StepMillis <= 0 {
		return fmt.Errorf("config: step_millis must be positive, got %d", c.StepMillis)
	}
	if c.MaxCatchup < 0 {
		return fmt.Errorf("config: max_catchup must be non-negative, got %d", c.MaxCatchup)
	}
	if c.FrameRate <= 0 {
		return fmt.Errorf("config: frame_rate must be positive, got %d", c.FrameRate)
	}
	return nil
}

// Spring builds the spring described by the config.
func (c *Config) Spring() physics.Spring {
	return physics.Spring{Stiffness: c.Stiffness, Damping: c.Damping, Rest: c.Rest}
}

// Body builds the initial body described by the config.
func (c *Config) Body() physics.Body {
	return physics.Body{Position: c.Start, InverseMass: c.InverseMass}
}

// Engine constructs the reducer with the configured timing tunables.
func (c *Config) Engine() (*engine.Engine, error) {
	return engine.New(engine.Options{StepMillis: c.StepMillis, MaxCatchup: c.MaxCatchup})
}

// InitialState constructs the validated starting record.
func (c *Config) InitialState() (engine.State, error) {
	return engine.NewState(c.Spring(), c.Body())
}
