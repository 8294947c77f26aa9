package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nvarma/quizfeed/internal/config"
	"github.com/nvarma/quizfeed/internal/engine"
	"github.com/nvarma/quizfeed/internal/logging"
	"github.com/nvarma/quizfeed/internal/store"
	"github.com/nvarma/quizfeed/internal/topics"
)

var rootCmd = &cobra.Command{
	Use:   "quizfeed",
	Short: "Adaptive trivia feed engine",
	Long:  "Quizfeed — adaptive trivia question selection with offline-first weight sync.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QUIZFEED_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file (overrides QUIZFEED_CONFIG env var)")
	rootCmd.PersistentFlags().String("user", "", "User id (overrides the config file)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(ingestCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(resetCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then QUIZFEED_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// appEnv bundles everything a subcommand needs.
type appEnv struct {
	cfg    config.File
	user   string
	store  *store.Store
	engine *engine.Engine
	log    *zap.SugaredLogger
}

func (e *appEnv) Close() {
	e.log.Sync()
	e.store.Close()
}

// openEnv loads config, opens the store, and builds the engine with
// the pool index hydrated from storage.
func openEnv(cmd *cobra.Command) (*appEnv, error) {
	confPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(confPath)
	if err != nil {
		return nil, err
	}

	user := cfg.User
	if u, _ := cmd.Flags().GetString("user"); u != "" {
		user = u
	}

	log, err := logging.New(cfg.LogMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	eng, err := engine.New(cfg.EngineConfig(),
		st.QuestionRepo(), st.StateRepo(), st.WeightRepo(), st.EventRepo(),
		topics.Default(), log)
	if err != nil {
		st.Close()
		return nil, err
	}
	if err := eng.LoadPool(cmd.Context()); err != nil {
		st.Close()
		return nil, err
	}

	return &appEnv{cfg: cfg, user: user, store: st, engine: eng, log: log}, nil
}
