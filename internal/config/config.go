package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/WTuneSeeker/Pingo-Release-sub000/engine"
	"github.com/WTuneSeeker/Pingo-Release-sub000/internal/arena"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds the arena runner settings.
type Config struct {
	MatchUnits   int     `env:"ARENA_MATCH_UNITS" envDefault:"180"`
	CadenceUnits int     `env:"ARENA_CADENCE_UNITS" envDefault:"4"`
	LockUnits    int     `env:"ARENA_LOCK_UNITS" envDefault:"2"`
	BombChance   float64 `env:"ARENA_BOMB_CHANCE" envDefault:"0.05"`
	ShieldChance float64 `env:"ARENA_SHIELD_CHANCE" envDefault:"0.05"`

	TimeUnit time.Duration `env:"ARENA_TIME_UNIT" envDefault:"1s"`
	Seed     uint64        `env:"ARENA_SEED"`

	Autopilot      bool    `env:"ARENA_AUTOPILOT" envDefault:"true"`
	AutopilotUnits float64 `env:"ARENA_AUTOPILOT_UNITS" envDefault:"1.5"` // reply delay, in time units

	ResultFile string `env:"ARENA_RESULT_FILE"`

	LogLevel  string `env:"ARENA_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"ARENA_LOG_FORMAT" envDefault:"text"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads envFile (if it exists) into the process environment without
// overriding variables that are already set, then parses Config.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Rules maps the config onto engine rules, keeping the default scoring.
func (c Config) Rules() engine.Rules {
	r := engine.DefaultRules()
	r.MatchUnits = c.MatchUnits
	r.CadenceUnits = c.CadenceUnits
	r.LockUnits = c.LockUnits
	r.BombChance = c.BombChance
	r.ShieldChance = c.ShieldChance
	return r
}

// Options builds match options with the default seats.
func (c Config) Options(logger logrus.FieldLogger) arena.Options {
	opts := arena.DefaultOptions()
	opts.Rules = c.Rules()
	opts.TimeUnit = c.TimeUnit
	opts.Seed = c.Seed
	opts.Logger = logger
	return opts
}

// AutopilotDelay is the autopilot reply delay in wall-clock time. It scales
// with TimeUnit so the reply lands inside the event cadence at any speed.
func (c Config) AutopilotDelay() time.Duration {
	return time.Duration(c.AutopilotUnits * float64(c.TimeUnit))
}

// NewLogger builds the root logger from the configured level and format.
func NewLogger(c Config) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	logger := logrus.New()
	logger.SetLevel(level)
	switch c.LogFormat {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	return logger, nil
}
