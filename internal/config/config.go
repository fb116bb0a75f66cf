// Package config loads the settings of the cave simulator from a JSON or
// YAML file, with `key=value` overrides on top.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gorilla/schema"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/cgudrian/adventofcode/internal/cave"
	"github.com/cgudrian/adventofcode/internal/geom"
)

const (
	ModeProduction  = "production"
	ModeDevelopment = "development"
)

type InletConfig struct {
	X int `json:"x" yaml:"x" schema:"x"`
	Y int `json:"y" yaml:"y" schema:"y"`
}

func (i InletConfig) Point() geom.Point {
	return geom.Point{X: i.X, Y: i.Y}
}

type Config struct {
	Mode string `json:"mode" yaml:"mode" schema:"mode"`
	// Input is the rock path file; "-" or empty reads stdin.
	Input    string      `json:"input" yaml:"input" schema:"input"`
	Inlet    InletConfig `json:"inlet" yaml:"inlet" schema:"inlet"`
	MaxDrops int         `json:"max_drops" yaml:"max_drops" schema:"max_drops"`
	// Timeout bounds a whole run; zero means no limit.
	Timeout Duration `json:"timeout" yaml:"timeout" schema:"timeout"`
	// LogFile, when set, receives a rotated JSON copy of the log.
	LogFile string `json:"log_file" yaml:"log_file" schema:"log_file"`
}

func Default() *Config {
	return &Config{
		Mode:     ModeProduction,
		Input:    "-",
		Inlet:    InletConfig{X: cave.DefaultInlet.X, Y: cave.DefaultInlet.Y},
		MaxDrops: cave.DefaultMaxDrops,
	}
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"mode":      c.Mode,
		"input":     c.Input,
		"inlet":     c.Inlet.Point().String(),
		"max_drops": c.MaxDrops,
		"timeout":   c.Timeout.Duration.String(),
		"log_file":  c.LogFile,
	}
}

func (c Config) Production() bool {
	return c.Mode == ModeProduction && !Development()
}

func (c Config) Development() bool {
	return !c.Production()
}

func (c Config) Validate() error {
	switch c.Mode {
	case ModeProduction, ModeDevelopment:
	default:
		return fmt.Errorf("invalid mode %q (valid: %s, %s)", c.Mode, ModeProduction, ModeDevelopment)
	}
	if c.Inlet.X < 0 || c.Inlet.Y < 0 {
		return fmt.Errorf("inlet must have non-negative coordinates, got %s", c.Inlet.Point())
	}
	if c.MaxDrops < 0 {
		return fmt.Errorf("max_drops must be non-negative, got %d", c.MaxDrops)
	}
	if c.Timeout.Duration < 0 {
		return fmt.Errorf("timeout must be non-negative, got %v", c.Timeout)
	}
	return nil
}

// ReadConfig decodes the file at path into config. Files ending in .yaml
// or .yml are read as YAML, anything else as JSON. Fields missing from the
// file keep their current values.
func ReadConfig(path string, config *Config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, config)
	default:
		err = json.Unmarshal(b, config)
	}
	if err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

var decoder = schema.NewDecoder()

func init() {
	decoder.RegisterConverter(Duration{}, convertDuration)
}

// ApplyOverrides sets fields from key=value pairs, keyed by their schema
// tags: "max_drops=100", "inlet.x=500", "timeout=10s". Unknown keys are
// an error.
func (c *Config) ApplyOverrides(pairs []string) error {
	if len(pairs) == 0 {
		return nil
	}
	values := make(map[string][]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return fmt.Errorf("override %q is not key=value", pair)
		}
		values[key] = append(values[key], value)
	}
	if err := decoder.Decode(c, values); err != nil {
		return fmt.Errorf("applying overrides: %w", err)
	}
	return nil
}
