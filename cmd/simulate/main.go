package main

import (
	"flag"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hasanalihatipoglu/HexBattleDemo/internal/config"
	"github.com/hasanalihatipoglu/HexBattleDemo/internal/game"
	"github.com/hasanalihatipoglu/HexBattleDemo/internal/game/core"
	"github.com/hasanalihatipoglu/HexBattleDemo/internal/search"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	seed := flag.Int64("seed", 0, "Random seed (0 for time-based)")
	maxTurns := flag.Int("max-turns", -1, "Turn cap for the battle (-1 to use config default)")
	iterations := flag.Int("iterations", -1, "MCTS iteration cap per decision (-1 to use config default)")
	timeBudgetMs := flag.Int("time-budget-ms", -1, "MCTS wall-clock budget per decision in ms (-1 to use config default)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	cfg := config.Get()

	if *maxTurns == -1 {
		*maxTurns = cfg.Battle.MaxTurns
	}
	if *iterations == -1 {
		*iterations = cfg.Search.IterationCap
	}
	if *timeBudgetMs == -1 {
		*timeBudgetMs = cfg.Search.TimeBudgetMs
	}
	if *logLevel == "" {
		*logLevel = cfg.Logging.Level
	}
	setupLogging(*logLevel, cfg.Logging.Format)

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Info().Int64("seed", *seed).Msg("Starting battle simulation")

	state := buildBattle(cfg.Battle)
	engineRNG := rand.New(rand.NewSource(*seed))
	resolver := core.NewCombatResolver(cfg.Combat.DamageParams(), engineRNG, log.Logger)
	gen := game.NewGenerator(resolver, log.Logger)
	engine := game.NewEngine(state, gen, log.Logger)

	// One planner per faction, each with its own seeded random source so the
	// whole match replays identically for a given -seed.
	planners := make(map[int]*search.Searcher)
	for i, faction := range state.LivingFactions() {
		planners[faction] = search.NewSearcher(cfg.Eval, cfg.Combat.DamageParams(),
			search.WithExploration(cfg.Search.ExplorationConstant),
			search.WithIterations(*iterations),
			search.WithTimeBudget(time.Duration(*timeBudgetMs)*time.Millisecond),
			search.WithRolloutMoveCap(cfg.Search.RolloutMoveCap),
			search.WithRolloutPolicy(cfg.Search.AttackPreference, cfg.Search.GreedyRatio),
			search.WithRNG(rand.New(rand.NewSource(*seed+int64(i)+1))),
			search.WithLogger(log.Logger),
		)
	}

	runBattle(engine, planners, *maxTurns)
}

func setupLogging(level, format string) {
	var logLevel zerolog.Level
	switch level {
	case "debug":
		logLevel = zerolog.DebugLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	default:
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	if format == "json" {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}

// buildBattle places two mirrored factions on opposite edges of the grid.
func buildBattle(cfg config.BattleConfig) *game.State {
	grid := core.NewGrid(cfg.BoardWidth, cfg.BoardHeight)
	var units []*core.Unit
	id := 1
	for i := 0; i < cfg.UnitsPerFaction; i++ {
		row := (cfg.BoardHeight / 2) + i - cfg.UnitsPerFaction/2
		if row < 0 || row >= cfg.BoardHeight {
			continue
		}
		for faction, col := range []int{0, cfg.BoardWidth - 1} {
			units = append(units, &core.Unit{
				ID:            id,
				Position:      core.NewHex(col, row),
				Health:        cfg.UnitHealth,
				MaxHealth:     cfg.UnitHealth,
				FactionID:     faction,
				MovementRange: cfg.MovementRange,
				AttackRange:   cfg.AttackRange,
				State:         core.StateActive,
			})
			id++
		}
	}
	return game.NewState(grid, units)
}

func runBattle(engine *game.Engine, planners map[int]*search.Searcher, maxTurns int) {
	for !engine.IsGameOver() && engine.State().Turn < maxTurns {
		faction := engine.State().FactionToAct()
		planner, ok := planners[faction]
		if !ok {
			log.Error().Int("faction_id", faction).Msg("No planner for faction, stopping")
			return
		}

		// Snapshot-in, decision-out: the planner searches over an independent
		// copy and only the chosen action crosses back to the live board.
		snapshot := game.NewStateFromSnapshot(engine.Snapshot())
		action, found := planner.ChooseAction(snapshot, faction)
		if !found {
			log.Warn().Int("faction_id", faction).Msg("Planner found no action, stopping")
			return
		}

		if err := engine.Step(action); err != nil {
			log.Error().Err(err).Str("action", action.String()).Msg("Failed to apply action")
			return
		}
	}

	if winner := engine.Winner(); winner >= 0 {
		log.Info().Int("winner_faction", winner).Int("turns", engine.State().Turn).Msg("Battle over")
	} else {
		log.Info().Int("turns", engine.State().Turn).Msg("Battle hit the turn cap undecided")
	}
}
