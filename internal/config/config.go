package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rocketscienceinc/othello-backend/internal/apperror"
	"github.com/rocketscienceinc/othello-backend/internal/othello"
)

type Config struct {
	LogLevel  string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFormat string `yaml:"log-format" env:"LOG_FORMAT" env-default:"json"`
	Engine    Engine `yaml:"engine"`
	Redis     Redis  `yaml:"redis"`
}

// Engine - boolean switches carry no env-default: cleanenv would put a default
// back over an explicit false read from the file.
type Engine struct {
	Depth       int    `yaml:"depth" env:"ENGINE_DEPTH" env-default:"2"`
	Pruning     bool   `yaml:"pruning" env:"ENGINE_PRUNING"`
	Debug       bool   `yaml:"debug" env:"ENGINE_DEBUG"`
	Diagnostics bool   `yaml:"diagnostics" env:"ENGINE_DIAGNOSTICS"`
	Computer    string `yaml:"computer" env:"ENGINE_COMPUTER" env-default:"white"`
	First       string `yaml:"first" env:"ENGINE_FIRST" env-default:"black"`
}

type Redis struct {
	Enabled    bool   `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host       string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port       string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	StatsLimit int64  `yaml:"stats-limit" env:"REDIS_STATS_LIMIT" env-default:"100"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	if err := config.Validate(); err != nil {
		panic(fmt.Errorf("invalid config: %w", err))
	}

	return config
}

func (that *Config) Validate() error {
	if that.Engine.Depth < 1 {
		return fmt.Errorf("engine depth: %w: %d", apperror.ErrInvalidDepth, that.Engine.Depth)
	}

	if _, _, err := that.Engine.Players(); err != nil {
		return err
	}

	return nil
}

// Players - the first mover and the computer-controlled colour.
func (that *Engine) Players() (othello.Player, othello.Player, error) {
	first, err := othello.ParsePlayer(that.First)
	if err != nil {
		return 0, 0, fmt.Errorf("engine first: %w", err)
	}

	computer, err := othello.ParsePlayer(that.Computer)
	if err != nil {
		return 0, 0, fmt.Errorf("engine computer: %w", err)
	}

	return first, computer, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
