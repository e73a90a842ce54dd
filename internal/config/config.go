package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/elijahmorgan/srctools/internal/paths"
)

// FileName is the configuration file looked up from the working directory upwards.
const FileName = "srctools.toml"

// Config holds the settings shared by the srctools commands.
type Config struct {
	Keycodes Keycodes `toml:"keycodes"`
	SevenBit SevenBit `toml:"sevenbit"`
	Log      Log      `toml:"log"`

	// Path is the file the configuration was loaded from, empty for defaults.
	Path string `toml:"-"`
}

// Keycodes configures the keycode table generator.
type Keycodes struct {
	Header     string `toml:"header"`      // Destination header
	SDLSection string `toml:"sdl_section"` // Section name emitting backend symbols
	SDLFlag    string `toml:"sdl_flag"`    // Preprocessor flag guarding keypad symbols
}

// SevenBit configures the source encoding normalizer.
type SevenBit struct {
	BackupSuffix string `toml:"backup_suffix"`
	TempSuffix   string `toml:"temp_suffix"`
}

// Log configures command logging.
type Log struct {
	Level string `toml:"level"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{
		Keycodes: Keycodes{
			Header:     paths.DefaultHeader,
			SDLSection: "SDL and SDL2",
			SDLFlag:    "USE_SDL",
		},
		SevenBit: SevenBit{
			BackupSuffix: paths.DefaultBackupSuffix,
			TempSuffix:   paths.DefaultTempSuffix,
		},
		Log: Log{Level: "info"},
	}
}

// Load reads the configuration at path. An empty path searches upwards from
// startDir for srctools.toml and falls back to Default when none exists.
func Load(path, startDir string) (*Config, error) {
	if path == "" {
		found, err := find(startDir)
		if err != nil {
			return nil, err
		}
		if found == "" {
			return Default(), nil
		}
		path = found
	}
	return parseFile(path)
}

// find walks up from startDir to find srctools.toml
func find(startDir string) (string, error) {
	absPath, err := filepath.Abs(startDir)
	if err != nil {
		return "", errors.Wrap(err, "failed to get absolute path")
	}

	current := absPath
	for {
		candidate := filepath.Join(current, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			// Reached filesystem root
			return "", nil
		}
		current = parent
	}
}

func parseFile(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, errors.Errorf("unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	cfg.Path = path
	return cfg, nil
}

// HeaderPath resolves the configured header. A header from a config file is
// relative to that file's directory; the default is relative to dir.
func (c *Config) HeaderPath(dir string) string {
	if c.Path != "" {
		dir = filepath.Dir(c.Path)
	}
	return paths.HeaderPath(dir, c.Keycodes.Header)
}
