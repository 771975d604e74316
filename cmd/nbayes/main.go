package main

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	classifier "github.com/samuel/go-naivebayes"
	"github.com/samuel/go-naivebayes/internal/config"
	logpkg "github.com/samuel/go-naivebayes/internal/logger"
)

var (
	configPath string
	dsn        string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&dsn, "db", "", "sqlite3 corpus database (overrides config)")
}

var rootCmd = &cobra.Command{
	Use:           "nbayes",
	Short:         "naive Bayes text classifier",
	Long:          `Train and evaluate a binary naive Bayes text classifier over a labeled corpus.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// app is the wiring shared by the subcommands.
type app struct {
	cfg   config.Config
	log   *zap.Logger
	db    *sql.DB
	store classifier.Store
}

func newApp() (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if dsn != "" {
		cfg.Database.DSN = dsn
	}

	log, err := logpkg.NewLogger(cfg.Env, cfg.Logging.Level)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", cfg.Database.DSN)
	}
	if err := classifier.CreateTables(db); err != nil {
		db.Close()
		return nil, err
	}
	store, err := classifier.NewSQLStore(db)
	if err != nil {
		db.Close()
		return nil, err
	}

	log.Debug("corpus store opened",
		zap.String("driver", cfg.Database.Driver),
		zap.String("dsn", cfg.Database.DSN),
	)
	return &app{cfg: cfg, log: log, db: db, store: store}, nil
}

func (a *app) Close() {
	_ = a.db.Close()
	_ = a.log.Sync()
}

// corpus loads every stored document.
func (a *app) corpus() ([]classifier.Document, []classifier.Label, error) {
	stored, err := a.store.Documents()
	if err != nil {
		return nil, nil, errors.Wrap(err, "load corpus")
	}
	if len(stored) == 0 {
		return nil, nil, errors.New("corpus is empty, run nbayes import first")
	}
	docs, labels := classifier.Corpus(stored)
	return docs, labels, nil
}
