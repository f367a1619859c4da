package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/lixenwraith/drone-runner/audio"
	"github.com/lixenwraith/drone-runner/persistence"
)

// ErrInvalidValue is wrapped by every validation and parse failure
var ErrInvalidValue = errors.New("config: invalid value")

// EnvPrefix prefixes every environment override
const EnvPrefix = "DRONE_RUNNER_"

// DefaultFPS is the terminal frame rate
const DefaultFPS = 60

// Config is the complete runtime configuration
type Config struct {
	Audio     audio.AudioConfig `toml:"audio"`
	ScoreFile string            `toml:"score_file"`
	Seed      int64             `toml:"seed"` // 0 seeds from the clock
	FPS       int               `toml:"fps"`
	Debug     bool              `toml:"debug"`
	Keymap    string            `toml:"keymap"` // optional keymap override file
}

// Default returns the built-in configuration
// ScoreFile is empty when no user config dir exists; scores are then kept in memory
func Default() Config {
	scoreFile, _ := persistence.DefaultPath()
	return Config{
		Audio:     audio.DefaultAudioConfig(),
		ScoreFile: scoreFile,
		FPS:       DefaultFPS,
	}
}

// DefaultPath returns the config file location under the user config dir
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "drone-runner", "config.toml")
}

// Load resolves configuration in order: defaults, TOML file, .env, process environment
// A missing file or .env is not an error
func Load(path, dotenvPath string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath()
	}
	if err := LoadFile(path, &cfg); err != nil {
		return cfg, err
	}

	dotenv, err := ReadDotenv(dotenvPath)
	if err != nil {
		return cfg, err
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
	if err := ApplyEnv(&cfg, lookup); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

// LoadFile decodes a TOML file over cfg; a missing file leaves cfg unchanged
func LoadFile(path string, cfg *Config) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		log.Printf("Config %s: ignoring unknown keys %v", path, undecoded)
	}
	return nil
}

// ReadDotenv parses a .env file without touching the process environment
func ReadDotenv(path string) (map[string]string, error) {
	if path == "" {
		path = ".env"
	}
	vals, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("dotenv %s: %w", path, err)
	}
	return vals, nil
}

// ApplyEnv overrides cfg with DRONE_RUNNER_* values from lookup
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	var errs []error

	if v, ok := lookup(EnvPrefix + "AUDIO_ENABLED"); ok {
		b, err := strconv.ParseBool(v)
		errs = append(errs, wrap("AUDIO_ENABLED", v, err))
		if err == nil {
			cfg.Audio.Enabled = b
		}
	}

	// Master volume is given as 0-100
	if v, ok := lookup(EnvPrefix + "MASTER_VOLUME"); ok {
		n, err := strconv.Atoi(v)
		errs = append(errs, wrap("MASTER_VOLUME", v, err))
		if err == nil {
			cfg.Audio.MasterVolume = float64(n) / 100.0
		}
	}

	if v, ok := lookup(EnvPrefix + "SAMPLE_RATE"); ok {
		n, err := strconv.Atoi(v)
		errs = append(errs, wrap("SAMPLE_RATE", v, err))
		if err == nil {
			cfg.Audio.SampleRate = n
		}
	}

	if v, ok := lookup(EnvPrefix + "MUSIC_ENABLED"); ok {
		b, err := strconv.ParseBool(v)
		errs = append(errs, wrap("MUSIC_ENABLED", v, err))
		if err == nil {
			cfg.Audio.MusicEnabled = b
		}
	}

	if v, ok := lookup(EnvPrefix + "SCORE_FILE"); ok && v != "" {
		cfg.ScoreFile = v
	}

	if v, ok := lookup(EnvPrefix + "KEYMAP"); ok && v != "" {
		cfg.Keymap = v
	}

	if v, ok := lookup(EnvPrefix + "SEED"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		errs = append(errs, wrap("SEED", v, err))
		if err == nil {
			cfg.Seed = n
		}
	}

	if v, ok := lookup(EnvPrefix + "FPS"); ok {
		n, err := strconv.Atoi(v)
		errs = append(errs, wrap("FPS", v, err))
		if err == nil {
			cfg.FPS = n
		}
	}

	if v, ok := lookup(EnvPrefix + "DEBUG"); ok {
		b, err := strconv.ParseBool(v)
		errs = append(errs, wrap("DEBUG", v, err))
		if err == nil {
			cfg.Debug = b
		}
	}

	return errors.Join(errs...)
}

// Validate clamps volume into [0, 1] and rejects non-positive rates
func (c *Config) Validate() error {
	if c.Audio.MasterVolume < 0 {
		c.Audio.MasterVolume = 0
	}
	if c.Audio.MasterVolume > 1 {
		c.Audio.MasterVolume = 1
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("%w: sample_rate %d", ErrInvalidValue, c.Audio.SampleRate)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("%w: fps %d", ErrInvalidValue, c.FPS)
	}
	return nil
}

// Save writes cfg as TOML, creating the parent directory
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		f.Close()
		return fmt.Errorf("encode config: %w", err)
	}
	return f.Close()
}

func wrap(key, value string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s%s=%q", ErrInvalidValue, EnvPrefix, key, value)
}
