package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/hasanalihatipoglu/HexBattleDemo/internal/game"
	"github.com/hasanalihatipoglu/HexBattleDemo/internal/game/core"
)

// Config holds all configuration for the application.
type Config struct {
	Battle  BattleConfig  `mapstructure:"battle"`
	Search  SearchConfig  `mapstructure:"search"`
	Combat  CombatConfig  `mapstructure:"combat"`
	Eval    game.Weights  `mapstructure:"eval"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// BattleConfig describes the demo battle the simulator sets up.
type BattleConfig struct {
	BoardWidth      int `mapstructure:"board_width"`
	BoardHeight     int `mapstructure:"board_height"`
	UnitsPerFaction int `mapstructure:"units_per_faction"`
	UnitHealth      int `mapstructure:"unit_health"`
	MovementRange   int `mapstructure:"movement_range"`
	AttackRange     int `mapstructure:"attack_range"`
	MaxTurns        int `mapstructure:"max_turns"`
}

// SearchConfig holds the MCTS budget and policy tunables.
type SearchConfig struct {
	ExplorationConstant float64 `mapstructure:"exploration_constant"`
	IterationCap        int     `mapstructure:"iteration_cap"`
	TimeBudgetMs        int     `mapstructure:"time_budget_ms"`
	RolloutMoveCap      int     `mapstructure:"rollout_move_cap"`
	AttackPreference    float64 `mapstructure:"attack_preference"`
	GreedyRatio         float64 `mapstructure:"greedy_ratio"`
}

// CombatConfig holds the damage formula tunables.
type CombatConfig struct {
	FractionMin float64 `mapstructure:"fraction_min"`
	FractionMax float64 `mapstructure:"fraction_max"`
	VarianceMin float64 `mapstructure:"variance_min"`
	VarianceMax float64 `mapstructure:"variance_max"`
	DamageMin   int     `mapstructure:"damage_min"`
	DamageMax   int     `mapstructure:"damage_max"`
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper
)

// setViperDefaults sets all default values using Viper's SetDefault.
func setViperDefaults(v *viper.Viper) {
	// Demo battle defaults
	v.SetDefault("battle.board_width", 10)
	v.SetDefault("battle.board_height", 8)
	v.SetDefault("battle.units_per_faction", 3)
	v.SetDefault("battle.unit_health", 100)
	v.SetDefault("battle.movement_range", 3)
	v.SetDefault("battle.attack_range", 1)
	v.SetDefault("battle.max_turns", 60)

	// Search defaults
	v.SetDefault("search.exploration_constant", 1.41)
	v.SetDefault("search.iteration_cap", 5000)
	v.SetDefault("search.time_budget_ms", 1800)
	v.SetDefault("search.rollout_move_cap", 50)
	v.SetDefault("search.attack_preference", 0.9)
	v.SetDefault("search.greedy_ratio", 0.8)

	// Combat defaults
	v.SetDefault("combat.fraction_min", 0.20)
	v.SetDefault("combat.fraction_max", 0.30)
	v.SetDefault("combat.variance_min", 0.8)
	v.SetDefault("combat.variance_max", 1.2)
	v.SetDefault("combat.damage_min", 10)
	v.SetDefault("combat.damage_max", 50)

	// Evaluation weight defaults
	weights := game.DefaultWeights()
	v.SetDefault("eval.unit_diff", weights.UnitDiff)
	v.SetDefault("eval.health_diff", weights.HealthDiff)
	v.SetDefault("eval.avg_health_frac", weights.AvgHealthFrac)
	v.SetDefault("eval.attackable_bonus", weights.AttackableBonus)
	v.SetDefault("eval.finishing_bonus", weights.FinishingBonus)
	v.SetDefault("eval.threat_penalty", weights.ThreatPenalty)
	v.SetDefault("eval.retreat_bonus", weights.RetreatBonus)
	v.SetDefault("eval.focus_fire_bonus", weights.FocusFireBonus)
	v.SetDefault("eval.proximity_weight", weights.ProximityWeight)
	v.SetDefault("eval.terminal_score", weights.TerminalScore)
	v.SetDefault("eval.critical_health_frac", weights.CriticalHealthFrac)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// Init loads configuration from the given path, falling back to defaults when
// no file exists. Environment variables prefixed with HEXBATTLE override file
// values (e.g. HEXBATTLE_SEARCH_ITERATION_CAP).
func Init(configPath string) error {
	v = viper.New()

	setViperDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("HEXBATTLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if configPath == "" {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return fmt.Errorf("error reading config file: %w", err)
			}
		}
		// Config file not found; use defaults
	}

	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// Get returns the global config instance, initializing defaults on first use.
func Get() *Config {
	if cfg == nil {
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
	}
	return cfg
}

// WatchConfig re-reads the config file on change and invokes the callback.
func WatchConfig(onChange func()) {
	if v == nil {
		return
	}
	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		fresh := &Config{}
		if err := v.Unmarshal(fresh); err != nil {
			return
		}
		if err := Validate(fresh); err != nil {
			return
		}
		cfg = fresh
		if onChange != nil {
			onChange()
		}
	})
}

// Validate checks the configuration for values the engine cannot work with.
func Validate(c *Config) error {
	if c.Battle.BoardWidth <= 0 || c.Battle.BoardHeight <= 0 {
		return fmt.Errorf("battle board dimensions must be positive, got %dx%d", c.Battle.BoardWidth, c.Battle.BoardHeight)
	}
	if c.Battle.UnitHealth <= 0 {
		return fmt.Errorf("unit health must be positive, got %d", c.Battle.UnitHealth)
	}
	if c.Combat.FractionMin > c.Combat.FractionMax {
		return fmt.Errorf("combat fraction bounds inverted: %f > %f", c.Combat.FractionMin, c.Combat.FractionMax)
	}
	if c.Combat.VarianceMin > c.Combat.VarianceMax {
		return fmt.Errorf("combat variance bounds inverted: %f > %f", c.Combat.VarianceMin, c.Combat.VarianceMax)
	}
	if c.Combat.DamageMin > c.Combat.DamageMax {
		return fmt.Errorf("combat damage clamp inverted: %d > %d", c.Combat.DamageMin, c.Combat.DamageMax)
	}
	if c.Search.AttackPreference < 0 || c.Search.AttackPreference > 1 {
		return fmt.Errorf("attack preference must be within [0,1], got %f", c.Search.AttackPreference)
	}
	if c.Search.GreedyRatio < 0 || c.Search.GreedyRatio > 1 {
		return fmt.Errorf("greedy ratio must be within [0,1], got %f", c.Search.GreedyRatio)
	}
	return nil
}

// DamageParams converts the combat section into the resolver's tuning struct.
func (c CombatConfig) DamageParams() core.DamageParams {
	return core.DamageParams{
		FractionMin: c.FractionMin,
		FractionMax: c.FractionMax,
		VarianceMin: c.VarianceMin,
		VarianceMax: c.VarianceMax,
		DamageMin:   c.DamageMin,
		DamageMax:   c.DamageMax,
	}
}
