package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the full application configuration.
type Config struct {
	Game     GameConfig     `mapstructure:"game"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Database DatabaseConfig `mapstructure:"database"`
}

// GameConfig configures the session to play.
type GameConfig struct {
	// Players seats 2-4 players in turn order.
	Players []string `mapstructure:"players"`
	// Kingdom names the 10 kingdom piles. Empty selects the default set.
	Kingdom []string `mapstructure:"kingdom"`
	// Seed fixes the shuffle randomness; 0 seeds from the clock.
	Seed int64 `mapstructure:"seed"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DatabaseConfig configures the optional saved-game store.
type DatabaseConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	URL      string `mapstructure:"url"`
	MaxConns int32  `mapstructure:"max_conns"`
}

// DefaultKingdom is the ten-pile selection used when the configuration
// names none.
func DefaultKingdom() []string {
	return []string{
		"Village", "Woodcutter", "Militia", "Market", "Smithy",
		"Council Room", "Moneylender", "Moat", "Workshop", "Cellar",
	}
}

// Load reads configuration from the given file. An empty path falls back to
// config.yaml in the working directory and built-in defaults apply when no
// file is found.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("game.players", []string{"Player 1", "Player 2"})
	v.SetDefault("game.kingdom", []string{})
	v.SetDefault("game.seed", 0)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("database.enabled", false)
	v.SetDefault("database.max_conns", 4)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if len(cfg.Game.Kingdom) == 0 {
		cfg.Game.Kingdom = DefaultKingdom()
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *Config) validate() error {
	if len(cfg.Game.Players) < 2 || len(cfg.Game.Players) > 4 {
		return fmt.Errorf("config: need 2-4 players, got %d", len(cfg.Game.Players))
	}
	for _, name := range cfg.Game.Players {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("config: player names must not be blank")
		}
	}
	if len(cfg.Game.Kingdom) != 10 {
		return fmt.Errorf("config: kingdom must name exactly 10 cards, got %d", len(cfg.Game.Kingdom))
	}
	if cfg.Database.Enabled && cfg.Database.URL == "" {
		return fmt.Errorf("config: database enabled but no url configured")
	}
	return nil
}
