// Package cmd implements the cyros CLI commands.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/theirongolddev/cyros/internal/cli"
	"github.com/theirongolddev/cyros/internal/config"
	"github.com/theirongolddev/cyros/internal/ledger"
	"github.com/theirongolddev/cyros/internal/log"
	"github.com/theirongolddev/cyros/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDBPath   string
	flagQuiet    bool
	flagLogLevel string
)

// version is set at build time with -ldflags "-X".
var version = "dev"

// flushTimeout bounds how long a command waits for queued saves on exit.
const flushTimeout = 5 * time.Second

var rootCmd = &cobra.Command{
	Use:           "cyros",
	Short:         "Local expense tracker",
	Long:          "Record expenses, set a monthly budget and see where the money goes.",
	Version:       version,
	RunE:          runSummary,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "  Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "SQLite database path (default from config)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress informational output")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
}

// session is everything a command needs: settings, a logger and a restored ledger.
type session struct {
	cfg    config.Config
	log    *log.Logger
	kv     *store.SQLiteKV
	ledger *ledger.Ledger

	logFile io.Closer
}

// loadConfig applies flag overrides on top of the config file.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	if flagDBPath != "" {
		cfg.General.DBPath = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, nil
}

// newLogger writes to the configured log file, falling back to discarding
// records when the file cannot be opened. The terminal is left to the UI.
func newLogger(cfg config.Config) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}
	f, err := log.OpenFile(cfg.LogPath())
	if err != nil {
		return log.Discard(), nil, nil
	}
	return log.New(log.Config{Level: level, Output: f, Component: log.ComponentCLI}), f, nil
}

// openSession is the composition root: config, logger, SQLite store and ledger.
// The ledger is restored before it is returned so mutations never race the load.
func openSession(ctx context.Context) (*session, error) {
	s, err := openSessionNoRestore()
	if err != nil {
		return nil, err
	}
	s.ledger.Restore(ctx)
	return s, nil
}

func openSessionNoRestore() (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger, logFile, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}

	kv, err := store.OpenSQLite(cfg.DBPath())
	if err != nil {
		if logFile != nil {
			_ = logFile.Close()
		}
		return nil, fmt.Errorf("opening store: %w", err)
	}
	logger.Debug("opened store", "path", kv.Path())

	lg := ledger.New(store.NewExpenseStore(kv, logger), ledger.Config{Logger: logger})
	return &session{cfg: cfg, log: logger, kv: kv, ledger: lg, logFile: logFile}, nil
}

// Close waits for queued saves, then releases the database and log file.
func (s *session) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()

	flushErr := s.ledger.Flush(ctx)
	if flushErr != nil {
		s.log.Error("pending saves did not finish", log.FieldError, flushErr)
	}
	closeErr := s.kv.Close()
	if s.logFile != nil {
		_ = s.logFile.Close()
	}
	if flushErr != nil {
		return fmt.Errorf("flushing saves: %w", flushErr)
	}
	return closeErr
}

// money formats an amount with the configured currency symbol.
func (s *session) money(amount float64) string {
	return cli.FormatMoney(amount, s.cfg.General.CurrencySymbol)
}

// infof prints unless --quiet is set.
func infof(format string, args ...any) {
	if flagQuiet {
		return
	}
	fmt.Printf(format, args...)
}
