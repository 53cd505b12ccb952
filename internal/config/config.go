// Package config loads run settings from YAML, layered over embedded defaults.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/san-kum/lorenz/internal/dynamo"
	"github.com/san-kum/lorenz/internal/engine"
	"github.com/san-kum/lorenz/internal/scene"
	"github.com/san-kum/lorenz/internal/viz"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

type Config struct {
	Window      WindowConfig      `yaml:"window"`
	Integration IntegrationConfig `yaml:"integration"`
	Playback    PlaybackConfig    `yaml:"playback"`
	Camera      CameraConfig      `yaml:"camera"`
	Terminal    TerminalConfig    `yaml:"terminal"`
	Keys        map[string]string `yaml:"keys"`
	Log         LogConfig         `yaml:"log"`
}

type WindowConfig struct {
	Title         string        `yaml:"title"`
	Width         int           `yaml:"width"`
	Height        int           `yaml:"height"`
	FrameInterval time.Duration `yaml:"frame_interval"`
}

type IntegrationConfig struct {
	Start   float64    `yaml:"start"`
	End     float64    `yaml:"end"`
	Steps   int        `yaml:"steps"`
	Initial [3]float64 `yaml:"initial"`
}

type PlaybackConfig struct {
	Speed float64 `yaml:"speed"`
}

type CameraConfig struct {
	Zoom float64 `yaml:"zoom"`
}

// TerminalConfig sizes the terminal viewer. Cols or Rows of 0 follow the
// terminal.
type TerminalConfig struct {
	Cols  int     `yaml:"cols"`
	Rows  int     `yaml:"rows"`
	Zoom  float64 `yaml:"zoom"`
	Theme string  `yaml:"theme"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}

// Load reads path over the embedded defaults. An empty path loads only the
// defaults. The result is not validated.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// only overwrites fields present in the file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}
	return cfg, nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// Validate reports the first problem found.
func (c *Config) Validate() error {
	in := c.Integration
	switch {
	case in.Steps < 1:
		return invalid("integration.steps must be at least 1, got %d", in.Steps)
	case in.End <= in.Start:
		return invalid("integration.end (%g) must be after start (%g)", in.End, in.Start)
	case !dynamo.IsValid(dynamo.State(in.Initial)):
		return invalid("integration.initial must be finite")
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return invalid("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	case c.Window.FrameInterval < 0:
		return invalid("window.frame_interval must not be negative")
	case c.Playback.Speed < engine.MinSimulationSpeed:
		return invalid("playback.speed must be at least %g, got %g", engine.MinSimulationSpeed, c.Playback.Speed)
	case c.Camera.Zoom <= 0 || c.Terminal.Zoom <= 0:
		return invalid("zoom must be positive")
	case c.Terminal.Cols < 0 || c.Terminal.Rows < 0:
		return invalid("terminal size must not be negative")
	}
	if _, err := viz.GetTheme(c.Terminal.Theme); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}
	if _, err := c.Bindings(); err != nil {
		return err
	}
	return nil
}

// Bindings returns the default key table with the keys overrides applied.
func (c *Config) Bindings() (*scene.Bindings, error) {
	b := scene.DefaultBindings()
	if err := b.Apply(c.Keys); err != nil {
		return nil, fmt.Errorf("%w: keys: %v", ErrInvalid, err)
	}
	return b, nil
}

// Scene builds the scene configuration. zoom selects the camera zoom, which
// differs between the window and the terminal.
func (c *Config) Scene(zoom float64, log logrus.FieldLogger) (scene.Config, error) {
	b, err := c.Bindings()
	if err != nil {
		return scene.Config{}, err
	}
	return scene.Config{
		Start:    c.Integration.Start,
		End:      c.Integration.End,
		Steps:    c.Integration.Steps,
		Initial:  dynamo.State(c.Integration.Initial),
		Zoom:     zoom,
		Bindings: b,
		Log:      log,
	}, nil
}

// WriteYAML writes the effective configuration to w.
func (c *Config) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return enc.Close()
}
