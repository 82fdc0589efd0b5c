package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Fields carry no env names: the game is configured by config.yml or by the defaults.
type Config struct {
	LogLevel string `yaml:"log-level" env-default:"error"`
	LogFile  string `yaml:"log-file"`
	Events   Events `yaml:"events"`
	Redis    Redis  `yaml:"redis"`
}

type Events struct {
	Enabled bool   `yaml:"enabled" env-default:"false"`
	Channel string `yaml:"channel" env-default:"tictactoe:events"`
}

type Redis struct {
	Host string `yaml:"host" env-default:"localhost"`
	Port string `yaml:"port" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file, falling back to defaults when it is absent.
func MustLoad(path string) *Config {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			panic(fmt.Errorf("unable to load default config: %w", err))
		}

		return config
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
