package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"warn"`
	Players  Players `yaml:"players"`
}

// Players holds marks to use instead of asking at the start of every game.
type Players struct {
	FirstMark  string `yaml:"first-mark" env:"FIRST_MARK" env-default:""`
	SecondMark string `yaml:"second-mark" env:"SECOND_MARK" env-default:""`
}

// MustLoad - load configuration from the yml file at path, or from the environment alone when there is no file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	}

	return config, nil
}

func (that *Players) IsPreset() bool {
	return that.FirstMark != "" || that.SecondMark != ""
}
