package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"

	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/tinvalidate/create-validator/internal/branding"
)

const fileType = "yaml"

// Setting keys.
const (
	KeyRoot         = "root"
	KeyTemplatesDir = "templates_dir"
	KeyLogLevel     = "log_level"
)

// DefaultLogLevel keeps successful runs quiet apart from the created paths.
const DefaultLogLevel = "warn"

// Config holds the resolved settings.
type Config struct {
	Root         string `mapstructure:"root"`
	TemplatesDir string `mapstructure:"templates_dir"`
	LogLevel     string `mapstructure:"log_level"`
}

// Keys returns the recognised setting keys.
func Keys() []string {
	return []string{KeyRoot, KeyTemplatesDir, KeyLogLevel}
}

// FilePath returns the config file path inside dir.
func FilePath(dir string) string {
	return filepath.Join(dir, branding.ConfigName()+"."+fileType)
}

// newViper builds a viper instance reading dir's config file and the
// environment, with defaults for every key.
func newViper(afs afero.Fs, dir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetFs(afs)
	v.SetConfigFile(FilePath(dir))
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()

	v.SetDefault(KeyRoot, branding.DefaultRoot())
	v.SetDefault(KeyTemplatesDir, "")
	v.SetDefault(KeyLogLevel, DefaultLogLevel)

	if err := readConfig(v, FilePath(dir)); err != nil {
		return nil, err
	}
	return v, nil
}

// Load resolves the settings for the project in dir. A missing config file is
// not an error.
func Load(afs afero.Fs, dir string) (*Config, error) {
	v, err := newViper(afs, dir)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return &cfg, nil
}

// Get returns a single setting.
func Get(afs afero.Fs, dir, key string) (string, error) {
	if err := checkKey(key); err != nil {
		return "", err
	}
	v, err := newViper(afs, dir)
	if err != nil {
		return "", err
	}
	return v.GetString(key), nil
}

// Set writes a setting to the project config file, creating it if needed.
// Only keys already in the file and the new one are written; defaults and
// environment overrides stay out of the file.
func Set(afs afero.Fs, dir, key, value string) error {
	if err := checkKey(key); err != nil {
		return err
	}

	configFile := FilePath(dir)
	v := viper.New()
	v.SetFs(afs)
	v.SetConfigFile(configFile)
	v.SetConfigType(fileType)
	if err := readConfig(v, configFile); err != nil {
		return err
	}

	v.Set(key, value)

	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file %s: %w", configFile, err)
	}
	return nil
}

// readConfig reads v's config file. A missing file is not an error.
func readConfig(v *viper.Viper, configFile string) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	}
	return nil
}

func checkKey(key string) error {
	if !slices.Contains(Keys(), key) {
		return fmt.Errorf("unknown config key %q (known: %v)", key, Keys())
	}
	return nil
}
