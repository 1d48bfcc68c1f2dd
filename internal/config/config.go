// Package config loads lifetrail settings from defaults, an optional YAML
// file and command-line flags, in that order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"lifetrail/internal/core"
	"lifetrail/pkg/hsv"
)

// Config holds every tunable of a lifetrail run.
type Config struct {
	// Width and Height are the board dimensions in cells.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Wrap enables toroidal neighbor lookups.
	Wrap bool `yaml:"wrap"`

	// Rule names a registered ruleset; RuleParams is passed to its factory.
	Rule       string            `yaml:"rule"`
	RuleParams map[string]string `yaml:"rule_params,omitempty"`

	Seed int64 `yaml:"seed"`

	// History is the number of generations drawn in the fading trail.
	History int `yaml:"history"`

	// Scale is the on-screen pixel size of a cell.
	Scale int `yaml:"scale"`

	// Rate is the number of generations per second in the GUI.
	Rate int `yaml:"rate"`

	// Trail is the hex color of the newest generation, e.g. "#ffffff".
	Trail string `yaml:"trail"`

	// GliderEvery drops a glider every n generations; 0 disables it.
	GliderEvery int `yaml:"glider_every"`

	// LogLevel is "info", "debug" or "trace".
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:       50,
		Height:      50,
		Wrap:        true,
		Rule:        "conway",
		Seed:        42,
		History:     10,
		Scale:       16,
		Rate:        20,
		Trail:       "#ffffff",
		GliderEvery: 33,
		LogLevel:    "info",
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("board size %dx%d must be positive", c.Width, c.Height))
	}
	if c.History <= 0 {
		errs = append(errs, fmt.Errorf("history %d must be positive", c.History))
	}
	if c.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scale %d must be positive", c.Scale))
	}
	if c.Rate <= 0 {
		errs = append(errs, fmt.Errorf("rate %d must be positive", c.Rate))
	}
	if c.GliderEvery < 0 {
		errs = append(errs, fmt.Errorf("glider_every %d must not be negative", c.GliderEvery))
	}
	if _, ok := core.Rulesets()[c.Rule]; !ok {
		errs = append(errs, fmt.Errorf("unknown rule %q (known: %s)", c.Rule, strings.Join(core.RulesetNames(), ", ")))
	}
	if _, err := c.TrailColor(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// TrailColor parses Trail into HSV.
func (c Config) TrailColor() (hsv.HSV, error) {
	col, err := colorful.Hex(c.Trail)
	if err != nil {
		return hsv.HSV{}, fmt.Errorf("trail color %q: %w", c.Trail, err)
	}
	r, g, b := col.RGB255()
	return hsv.FromPixel(color.RGBA{R: r, G: g, B: b, A: 255}), nil
}

// Grid allocates an empty board with the configured size and wrap setting.
func (c Config) Grid() *core.Grid {
	g := core.NewGrid(c.Width, c.Height)
	g.Wrap = c.Wrap
	return g
}

// Ruleset builds the configured ruleset.
func (c Config) Ruleset() (core.Ruleset, error) {
	return core.NewRuleset(c.Rule, c.RuleParams)
}

// Bind attaches the configuration to the provided FlagSet. Flags override
// whatever was loaded before Parse.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "board width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "board height in cells")
	fs.BoolVar(&c.Wrap, "wrap", c.Wrap, "wrap neighbor lookups around the board edges")
	fs.StringVar(&c.Rule, "rule", c.Rule, "ruleset to run")
	fs.Var((*ruleParams)(&c.RuleParams), "rule-param", "ruleset parameter in key=value form (repeatable, comma-separated)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for board randomization")
	fs.IntVar(&c.History, "history", c.History, "generations kept in the fading trail")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.Rate, "rate", c.Rate, "generations per second")
	fs.StringVar(&c.Trail, "trail", c.Trail, "hex color of the newest generation")
	fs.IntVar(&c.GliderEvery, "glider-every", c.GliderEvery, "drop a glider every n generations (0 disables)")
}

type ruleParams map[string]string

func (p *ruleParams) String() string {
	if p == nil || *p == nil {
		return ""
	}
	parts := make([]string, 0, len(*p))
	for k, v := range *p {
		parts = append(parts, k+"="+v)
	}
	return strings.Join(parts, ",")
}

// Set accepts a single key=value pair or a comma-separated list of them.
func (p *ruleParams) Set(value string) error {
	for _, pair := range strings.Split(value, ",") {
		key, val, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return fmt.Errorf("rule parameter %q is not key=value", pair)
		}
		if *p == nil {
			*p = map[string]string{}
		}
		(*p)[key] = val
	}
	return nil
}
