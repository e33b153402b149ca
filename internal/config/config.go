package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

const (
	StorageRedis  = "redis"
	StorageMemory = "memory"
)

type Config struct {
	LogLevel   string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort   string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort string `yaml:"socket-port" env:"SOCKET_PORT" env-default:"9091"`
	Storage    string `yaml:"storage" env:"STORAGE" env-default:"redis"`
	Redis      Redis  `yaml:"redis"`
	Game       Game   `yaml:"game"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

type Game struct {
	TTL         time.Duration `yaml:"ttl" env:"GAME_TTL" env-default:"24h"`
	Player1Name string        `yaml:"player-1-name" env-default:"Player 1"`
	Player2Name string        `yaml:"player-2-name" env-default:"Player 2"`
	BotName     string        `yaml:"bot-name" env-default:"Bot"`
	BotMark     string        `yaml:"bot-mark" env-default:"X"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads the yaml file at path and applies env overrides and defaults.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if config.Storage != StorageRedis && config.Storage != StorageMemory {
		return nil, fmt.Errorf("unknown storage %q", config.Storage)
	}

	if _, err := entity.ParseMark(config.Game.BotMark); err != nil || config.Game.BotMark == "" {
		return nil, fmt.Errorf("invalid bot mark %q", config.Game.BotMark)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

// BoardOptions - the players configured for every new board.
func (that *Game) BoardOptions() tictactoe.Options {
	opts := tictactoe.DefaultOptions()

	opts.Player1.Name = that.Player1Name
	opts.Player2.Name = that.Player2Name
	opts.Bot.Name = that.BotName

	if mark, err := entity.ParseMark(that.BotMark); err == nil && mark != entity.Empty {
		opts.Bot.Mark = mark
	}

	return opts
}
