// Package cmd - growwstocks CLI commands
package cmd

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/notnotrachit/GrowwwStocks/cache"
	"github.com/notnotrachit/GrowwwStocks/feed"
	"github.com/notnotrachit/GrowwwStocks/logging"
	"github.com/notnotrachit/GrowwwStocks/pkg/config"
	"github.com/notnotrachit/GrowwwStocks/storage"
	"github.com/notnotrachit/GrowwwStocks/watchlist"
)

var (
	verbose bool

	cfg        config.Config
	logger     *zap.Logger
	store      storage.KVStore
	quoteCache *cache.Cache
	quotes     feed.QuoteFeed
	watchlists *watchlist.Service
)

var rootCmd = &cobra.Command{
	Use:   "growwstocks",
	Short: "Browse market movers, company data and personal watchlists",
	Long: `growwstocks - stock market data and watchlists from the terminal

Quotes, company fundamentals, price history and symbol search are fetched
from Alpha Vantage (directly or through the RapidAPI gateway) with response
caching and request pacing. Watchlists persist locally in a SQLite file.`,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initApp()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		teardown()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(moversCmd)
	rootCmd.AddCommand(overviewCmd)
	rootCmd.AddCommand(dailyCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(watchlistCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(providerCmd)
}

func initApp() error {
	if err := godotenv.Load(); err != nil && verbose {
		fmt.Println("Warning: .env file not found, using environment variables")
	}

	var err error
	cfg, err = config.LoadConfig()
	if err != nil {
		return err
	}

	logger = logging.SetupLogger(cfg.LogFile)

	store, err = storage.NewSQLiteStore(cfg.DBPath, logger)
	if err != nil {
		return err
	}

	quoteCache = cache.New(store, logger)
	watchlists = watchlist.NewService(store, logger)

	quotes, err = feed.NewClient(cfg, quoteCache, logger)
	if err != nil {
		return err
	}
	return nil
}

func teardown() {
	if store != nil {
		if err := store.Close(); err != nil && logger != nil {
			logger.Error("Failed to close store", zap.Error(err))
		}
	}
	if logger != nil {
		_ = logger.Sync()
	}
}
