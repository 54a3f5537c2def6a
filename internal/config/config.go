// Package config loads recommendation rules, reference averages, and
// server options. Defaults are compiled in; a YAML file overrides them.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ecometric/footprint/internal/estimate"
)

// EnvListen overrides the server listen address.
const EnvListen = "FOOTPRINT_LISTEN"

// DefaultListenAddr is used when neither flag, env, nor file sets one.
const DefaultListenAddr = ":8080"

// RuleConfig is the YAML shape of a recommendation rule.
type RuleConfig struct {
	Target             string  `yaml:"target"`
	ThresholdKg        float64 `yaml:"threshold_kg"`
	Advice             string  `yaml:"advice"`
	EstimatedSavingsKg float64 `yaml:"estimated_savings_kg"`
	AfricaOnly         bool    `yaml:"africa_only,omitempty"`
	MeatDietOnly       bool    `yaml:"meat_diet_only,omitempty"`
}

// ServerConfig holds HTTP server options.
type ServerConfig struct {
	ListenAddr string `yaml:"listen_addr"`
}

// Config is the full application configuration.
type Config struct {
	Rules    []RuleConfig               `yaml:"rules"`
	Averages estimate.ReferenceAverages `yaml:"averages"`
	Server   ServerConfig               `yaml:"server"`
}

// Default returns the compiled-in configuration. Rule thresholds,
// advice text, and savings estimates are domain data ported from the
// published calculator, not derived values.
func Default() Config {
	return Config{
		Rules: []RuleConfig{
			{
				Target:             estimate.LineElectricity,
				ThresholdKg:        1500,
				Advice:             "Switch to energy-efficient appliances and LED bulbs. Consider solar if available.",
				EstimatedSavingsKg: 500,
			},
			{
				Target:             estimate.LineCar,
				ThresholdKg:        2000,
				Advice:             "Reduce car travel by 20%. Use public transport, bike, or carpool just one day a week.",
				EstimatedSavingsKg: 400,
			},
			{
				Target:             estimate.LineDiet,
				ThresholdKg:        2000,
				Advice:             "Reduce meat consumption. Try having one meat-free day per week.",
				EstimatedSavingsKg: 200,
				MeatDietOnly:       true,
			},
			{
				Target:             estimate.LineLPG,
				ThresholdKg:        500,
				Advice:             "Improve cooking efficiency. Use a pressure cooker or hotbox to reduce LPG consumption.",
				EstimatedSavingsKg: 100,
				AfricaOnly:         true,
			},
		},
		Averages: estimate.ReferenceAverages{
			GlobalKg:        4800,
			AfricaKg:        1000,
			USKg:            16000,
			AfricaCutoverKg: 3000,
		},
		Server: ServerConfig{
			ListenAddr: DefaultListenAddr,
		},
	}
}

// Load reads a YAML config file, layering it over the defaults. An
// empty path returns the defaults; the env listen override applies in
// both cases.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
		if err := cfg.validate(); err != nil {
			return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
		}
	}

	if addr := os.Getenv(EnvListen); addr != "" {
		cfg.Server.ListenAddr = addr
	}
	if cfg.Server.ListenAddr == "" {
		cfg.Server.ListenAddr = DefaultListenAddr
	}

	return cfg, nil
}

func (c Config) validate() error {
	for i, r := range c.Rules {
		if r.Target == "" {
			return fmt.Errorf("rule %d: target is required", i)
		}
		if r.ThresholdKg < 0 {
			return fmt.Errorf("rule %d (%s): threshold_kg must be non-negative", i, r.Target)
		}
		if r.EstimatedSavingsKg < 0 {
			return fmt.Errorf("rule %d (%s): estimated_savings_kg must be non-negative", i, r.Target)
		}
	}
	if c.Averages.GlobalKg <= 0 || c.Averages.AfricaKg <= 0 || c.Averages.USKg <= 0 {
		return fmt.Errorf("averages must be positive")
	}
	return nil
}

// EstimateRules converts the configured rules to the estimator's rule type.
func (c Config) EstimateRules() []estimate.Rule {
	out := make([]estimate.Rule, 0, len(c.Rules))
	for _, r := range c.Rules {
		out = append(out, estimate.Rule{
			Target:             r.Target,
			ThresholdKg:        r.ThresholdKg,
			Advice:             r.Advice,
			EstimatedSavingsKg: r.EstimatedSavingsKg,
			AfricaOnly:         r.AfricaOnly,
			MeatDietOnly:       r.MeatDietOnly,
		})
	}
	return out
}
