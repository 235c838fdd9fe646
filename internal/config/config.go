package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"ai-intui/internal/console"
)

// ErrInvalid marks a configuration value outside its allowed range.
var ErrInvalid = errors.New("invalid config")

// Config holds all dashboard configuration
type Config struct {
	TUI     TUIConfig     `mapstructure:"tui"`
	Console ConsoleConfig `mapstructure:"console"`
}

type TUIConfig struct {
	TickMs  int    `mapstructure:"tick_ms"`
	Palette string `mapstructure:"palette"` // cyberpunk | terminal | auto
	LogFile string `mapstructure:"log_file"`
}

type ConsoleConfig struct {
	LogCapacity     int     `mapstructure:"log_capacity"`
	EmitProbability float64 `mapstructure:"emit_probability"`
	Seed            uint64  `mapstructure:"seed"` // 0 = seed from time
	StartMode       string  `mapstructure:"start_mode"`
}

// TickInterval is TickMs as a duration.
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.TUI.TickMs) * time.Millisecond
}

// Mode resolves StartMode through the command alias table.
func (c *Config) Mode() (console.Mode, error) {
	m, ok := console.ParseModeAlias(c.Console.StartMode)
	if !ok {
		return 0, fmt.Errorf("%w: console.start_mode %q", ErrInvalid, c.Console.StartMode)
	}
	return m, nil
}

// Validate checks every range-limited value.
func (c *Config) Validate() error {
	var errs []error
	if c.TUI.TickMs <= 0 {
		errs = append(errs, fmt.Errorf("%w: tui.tick_ms must be > 0, got %d", ErrInvalid, c.TUI.TickMs))
	}
	switch strings.ToLower(c.TUI.Palette) {
	case "cyberpunk", "terminal", "auto":
	default:
		errs = append(errs, fmt.Errorf("%w: tui.palette %q", ErrInvalid, c.TUI.Palette))
	}
	if c.Console.LogCapacity <= 0 {
		errs = append(errs, fmt.Errorf("%w: console.log_capacity must be > 0, got %d", ErrInvalid, c.Console.LogCapacity))
	}
	if p := c.Console.EmitProbability; p < 0 || p > 1 {
		errs = append(errs, fmt.Errorf("%w: console.emit_probability must be in [0,1], got %g", ErrInvalid, p))
	}
	if _, err := c.Mode(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Manager handles config loading and hot-reload
type Manager struct {
	config   *Config
	mu       sync.RWMutex
	viper    *viper.Viper
	onChange func(*Config)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("tui.tick_ms", int(console.DefaultTickInterval/time.Millisecond))
	v.SetDefault("tui.palette", "cyberpunk")
	v.SetDefault("tui.log_file", "data/intui.log")
	v.SetDefault("console.log_capacity", console.DefaultLogCapacity)
	v.SetDefault("console.emit_probability", console.DefaultEmitProbability)
	v.SetDefault("console.seed", 0)
	v.SetDefault("console.start_mode", "ai")
}

// flagKeys maps command-line flags onto config keys.
var flagKeys = map[string]string{
	"tick-ms": "tui.tick_ms",
	"palette": "tui.palette",
	"seed":    "console.seed",
	"mode":    "console.start_mode",
}

// NewManager loads defaults, INTUI_* environment variables, the optional
// config file at path and any flags that were set, in increasing order of
// precedence. An empty path skips the file and disables hot reload.
func NewManager(path string, flags *pflag.FlagSet) (*Manager, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("INTUI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg, err := load(v)
	if err != nil {
		return nil, err
	}

	m := &Manager{
		config: cfg,
		viper:  v,
	}

	if path != "" {
		v.OnConfigChange(func(e fsnotify.Event) {
			log.Info().Str("file", e.Name).Msg("config file changed, reloading")
			m.reload()
		})
		v.WatchConfig()
	}

	return m, nil
}

func load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Get returns the current config (thread-safe)
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// GetTUI returns the rendering section.
func (m *Manager) GetTUI() TUIConfig {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config.TUI
}

// SetOnChange registers a callback for config changes
func (m *Manager) SetOnChange(fn func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onChange = fn
}

// reload re-decodes the watched file. A config that fails validation is
// logged and the previous one stays in effect.
func (m *Manager) reload() {
	cfg, err := load(m.viper)
	if err != nil {
		log.Error().Err(err).Msg("ignoring config reload")
		return
	}

	m.mu.Lock()
	m.config = cfg
	fn := m.onChange
	m.mu.Unlock()

	if fn != nil {
		fn(cfg)
	}
}
