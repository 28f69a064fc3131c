package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/mj1618/uipilot/internal/model"
	"github.com/spf13/viper"
)

// Config holds all automation settings.
type Config struct {
	Window  WindowConfig  `mapstructure:"window"  yaml:"window"`
	Focus   FocusConfig   `mapstructure:"focus"   yaml:"focus"`
	Action  ActionConfig  `mapstructure:"action"  yaml:"action"`
	Targets TargetsConfig `mapstructure:"targets" yaml:"targets"`
	Import  ImportConfig  `mapstructure:"import"  yaml:"import"`
}

// WindowConfig controls window search.
type WindowConfig struct {
	Signatures        []model.Signature `mapstructure:"signatures"          yaml:"signatures"`
	MaxAttempts       int               `mapstructure:"max_attempts"        yaml:"max_attempts"`
	FocusOnlyAttempts int               `mapstructure:"focus_only_attempts" yaml:"focus_only_attempts"`
	PollInterval      time.Duration     `mapstructure:"poll_interval"       yaml:"poll_interval"`
}

// FocusConfig controls foreground activation retries.
type FocusConfig struct {
	MaxAttempts int           `mapstructure:"max_attempts" yaml:"max_attempts"`
	Backoff     time.Duration `mapstructure:"backoff"      yaml:"backoff"`
	StepDelay   time.Duration `mapstructure:"step_delay"   yaml:"step_delay"`
}

// ActionConfig controls control activation.
type ActionConfig struct {
	SettleDelay time.Duration `mapstructure:"settle_delay" yaml:"settle_delay"`
}

// TargetsConfig names the controls each command resolves.
type TargetsConfig struct {
	Start  model.Target `mapstructure:"start"  yaml:"start"`
	Import model.Target `mapstructure:"import" yaml:"import"`
}

// ImportConfig controls the import_videos list file.
type ImportConfig struct {
	ListFile string `mapstructure:"list_file" yaml:"list_file"`
}

// EnvPrefix is the prefix for environment overrides, e.g.
// UIPILOT_WINDOW_MAX_ATTEMPTS=5.
const EnvPrefix = "UIPILOT"

// DefaultSignatures are the known JianyingPro / CapCut window signatures in
// priority order.
var DefaultSignatures = []model.Signature{
	{Title: "剪映"},
	{Title: "JianyingPro"},
	{Title: "CapCut"},
	{Class: "Qt5QWindowIcon"},
}

// DefaultStartFallback are the start-button click points tried when no
// control matches. They were tuned against one layout and are not
// authoritative.
var DefaultStartFallback = []model.Fraction{
	{X: 0.5, Y: 0.25},
	{X: 0.5, Y: 0.33},
	{X: 0.5, Y: 0.20},
	{X: 0.5, Y: 0.50},
}

// Default returns a Config with the built-in values.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Signatures:        append([]model.Signature(nil), DefaultSignatures...),
			MaxAttempts:       20,
			FocusOnlyAttempts: 10,
			PollInterval:      time.Second,
		},
		Focus: FocusConfig{
			MaxAttempts: 5,
			Backoff:     300 * time.Millisecond,
			StepDelay:   100 * time.Millisecond,
		},
		Action: ActionConfig{
			SettleDelay: 1500 * time.Millisecond,
		},
		Targets: TargetsConfig{
			Start: model.Target{
				Name:     "开始创作",
				Fallback: append([]model.Fraction(nil), DefaultStartFallback...),
			},
			Import: model.Target{Name: "导入"},
		},
		Import: ImportConfig{
			ListFile: filepath.Join(os.TempDir(), "jianying_import_files.txt"),
		},
	}
}

// Load reads configuration from defaults, an optional YAML file, and env.
// An explicit path (or $UIPILOT_CONFIG) must exist; the per-user default
// location is optional.
func Load(path string) (Config, error) {
	d := Default()
	v := viper.New()

	v.SetDefault("window.signatures", signatureMaps(d.Window.Signatures))
	v.SetDefault("window.max_attempts", d.Window.MaxAttempts)
	v.SetDefault("window.focus_only_attempts", d.Window.FocusOnlyAttempts)
	v.SetDefault("window.poll_interval", d.Window.PollInterval)
	v.SetDefault("focus.max_attempts", d.Focus.MaxAttempts)
	v.SetDefault("focus.backoff", d.Focus.Backoff)
	v.SetDefault("focus.step_delay", d.Focus.StepDelay)
	v.SetDefault("action.settle_delay", d.Action.SettleDelay)
	v.SetDefault("targets.start.name", d.Targets.Start.Name)
	v.SetDefault("targets.start.fallback", fractionMaps(d.Targets.Start.Fallback))
	v.SetDefault("targets.import.name", d.Targets.Import.Name)
	v.SetDefault("import.list_file", d.Import.ListFile)

	v.SetConfigType("yaml")

	if path == "" {
		path = os.Getenv(EnvPrefix + "_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "uipilot"))
		}
		v.SetConfigName("config")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks budgets, signatures, targets and fallback fractions.
func (c Config) Validate() error {
	var errs []error
	if len(c.Window.Signatures) == 0 {
		errs = append(errs, errors.New("window.signatures: at least one signature is required"))
	}
	for i, s := range c.Window.Signatures {
		if s.Title == "" && s.Class == "" {
			errs = append(errs, fmt.Errorf("window.signatures[%d]: title or class is required", i))
		}
	}
	if c.Window.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("window.max_attempts must be positive, got %d", c.Window.MaxAttempts))
	}
	if c.Window.FocusOnlyAttempts < 1 {
		errs = append(errs, fmt.Errorf("window.focus_only_attempts must be positive, got %d", c.Window.FocusOnlyAttempts))
	}
	if c.Focus.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("focus.max_attempts must be positive, got %d", c.Focus.MaxAttempts))
	}
	durations := []struct {
		key string
		d   time.Duration
	}{
		{"window.poll_interval", c.Window.PollInterval},
		{"focus.backoff", c.Focus.Backoff},
		{"focus.step_delay", c.Focus.StepDelay},
		{"action.settle_delay", c.Action.SettleDelay},
	}
	for _, d := range durations {
		if d.d < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %s", d.key, d.d))
		}
	}
	errs = append(errs, validateTarget("targets.start", c.Targets.Start)...)
	errs = append(errs, validateTarget("targets.import", c.Targets.Import)...)
	if c.Import.ListFile == "" {
		errs = append(errs, errors.New("import.list_file is required"))
	}
	return errors.Join(errs...)
}

func validateTarget(key string, t model.Target) []error {
	var errs []error
	if t.Name == "" {
		errs = append(errs, fmt.Errorf("%s.name is required", key))
	}
	for i, f := range t.Fallback {
		if f.X < 0 || f.X > 1 || f.Y < 0 || f.Y > 1 {
			errs = append(errs, fmt.Errorf("%s.fallback[%d]: fractions must be within [0,1], got (%v, %v)", key, i, f.X, f.Y))
		}
	}
	return errs
}

// TargetFor returns the configured target whose name is name, or a target
// with no fallback points for any other control.
func (c Config) TargetFor(name string) model.Target {
	for _, t := range []model.Target{c.Targets.Start, c.Targets.Import} {
		if t.Name == name {
			return model.Target{Name: name, Fallback: append([]model.Fraction(nil), t.Fallback...)}
		}
	}
	return model.Target{Name: name}
}

// ParseFraction parses a "fx,fy" flag value such as "0.5,0.25".
func ParseFraction(s string) (model.Fraction, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return model.Fraction{}, fmt.Errorf("invalid fraction %q: expected fx,fy", s)
	}
	vals := make([]float64, 2)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return model.Fraction{}, fmt.Errorf("invalid fraction %q: %w", s, err)
		}
		if v < 0 || v > 1 {
			return model.Fraction{}, fmt.Errorf("invalid fraction %q: values must be within [0,1]", s)
		}
		vals[i] = v
	}
	return model.Fraction{X: vals[0], Y: vals[1]}, nil
}

func signatureMaps(sigs []model.Signature) []map[string]any {
	out := make([]map[string]any, 0, len(sigs))
	for _, s := range sigs {
		out = append(out, map[string]any{"title": s.Title, "class": s.Class})
	}
	return out
}

func fractionMaps(fs []model.Fraction) []map[string]any {
	out := make([]map[string]any, 0, len(fs))
	for _, f := range fs {
		out = append(out, map[string]any{"x": f.X, "y": f.Y})
	}
	return out
}
