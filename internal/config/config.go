package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/antsim/internal/langton"
	"github.com/san-kum/antsim/internal/palette"
)

const (
	DefaultSize  = 101
	DefaultRules = "10"
	DefaultTicks = 11000
	DefaultFPS   = 60
	DefaultSeed  = 42
)

type Config struct {
	Size   int         `yaml:"size"`
	Rules  string      `yaml:"rules"`
	Seed   int64       `yaml:"seed"`
	Ticks  int         `yaml:"ticks"`
	FPS    int         `yaml:"fps"`
	Colors []string    `yaml:"colors,omitempty"`
	Ants   []AntConfig `yaml:"ants"`
}

// AntConfig places one ant. Omitted fields are drawn at random from the
// seeded source.
type AntConfig struct {
	Heading string `yaml:"heading,omitempty"`
	Row     *int   `yaml:"row,omitempty"`
	Col     *int   `yaml:"col,omitempty"`
}

// DefaultConfig is the original Langton's Ant: one ant in the centre of a
// 101×101 grid facing east.
func DefaultConfig() *Config {
	return &Config{
		Size:  DefaultSize,
		Rules: DefaultRules,
		Seed:  DefaultSeed,
		Ticks: DefaultTicks,
		FPS:   DefaultFPS,
		Ants:  []AntConfig{{Heading: "E", Row: intp(50), Col: intp(50)}},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
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

// Validate reports the first precondition the configuration violates.
func (c *Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("%w: %d", langton.ErrInvalidGridSize, c.Size)
	}
	if _, err := langton.ParseRules(c.Rules); err != nil {
		return err
	}
	if c.Ticks < 0 {
		return fmt.Errorf("ticks must not be negative, got %d", c.Ticks)
	}
	if c.FPS < 0 {
		return fmt.Errorf("fps must not be negative, got %d", c.FPS)
	}
	if _, err := c.Palette(); err != nil {
		return err
	}
	for i, a := range c.Ants {
		if a.Heading != "" {
			if _, err := langton.ParseHeading(a.Heading); err != nil {
				return fmt.Errorf("ant %d: %w", i, err)
			}
		}
		for _, v := range []*int{a.Row, a.Col} {
			if v != nil && (*v < 0 || *v >= c.Size) {
				return fmt.Errorf("ant %d: %w: %d on size %d", i, langton.ErrInvalidPosition, *v, c.Size)
			}
		}
	}
	return nil
}

// Palette returns the configured colours, or the default palette for the
// rule length when none are given.
func (c *Config) Palette() (palette.Palette, error) {
	states := len(c.Rules)
	if len(c.Colors) == 0 {
		return palette.Default(states), nil
	}
	p, err := palette.Parse(c.Colors)
	if err != nil {
		return nil, err
	}
	if err := p.Check(states); err != nil {
		return nil, err
	}
	return p, nil
}

// Build creates the colony and places every configured ant in order.
func (c *Config) Build() (*langton.Colony, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	colony, err := langton.New(c.Size, c.Rules, langton.WithSeed(c.Seed))
	if err != nil {
		return nil, err
	}
	for i, a := range c.Ants {
		opts := make([]langton.AntOption, 0, 3)
		if a.Heading != "" {
			h, _ := langton.ParseHeading(a.Heading)
			opts = append(opts, langton.WithHeading(h))
		}
		if a.Row != nil {
			opts = append(opts, langton.WithRow(*a.Row))
		}
		if a.Col != nil {
			opts = append(opts, langton.WithCol(*a.Col))
		}
		if _, err := colony.AddAnt(opts...); err != nil {
			return nil, fmt.Errorf("ant %d: %w", i, err)
		}
	}
	return colony, nil
}

func intp(v int) *int { return &v }
