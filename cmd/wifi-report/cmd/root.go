package cmd

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/wifi-on-ice/dashboard/dashboard"
	"github.com/wifi-on-ice/dashboard/internal/config"
	"github.com/wifi-on-ice/dashboard/models"
	"github.com/wifi-on-ice/dashboard/repository"
)

var (
	sqlitePath  string
	databaseURL string
	tableName   string
	routes      []string
)

// loadTable is swapped out in tests
var loadTable = func(ctx context.Context) ([]models.Measurement, error) {
	cfg := config.Load()
	if sqlitePath != "" {
		cfg.SQLitePath = sqlitePath
	}
	if databaseURL != "" {
		cfg.DatabaseURL = databaseURL
	}
	if tableName != "" {
		cfg.Table = tableName
	}

	store, closeStore, err := repository.OpenStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer closeStore()
	return store.LoadMeasurements(ctx)
}

var rootCmd = &cobra.Command{
	Use:   "wifi-report",
	Short: "WIFI on ICE measurement reports",
	Long: `wifi-report prints the data behind the WIFI on ICE dashboard as terminal tables.

It reads the same measurement store as the dashboard server (SQLite by default,
PostgreSQL when DATABASE_URL or --database-url is set).`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	config.LoadEnvFiles(".")
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&sqlitePath, "db", "", "path to the SQLite database (default $SQLITE_DATABASE)")
	rootCmd.PersistentFlags().StringVar(&databaseURL, "database-url", "", "PostgreSQL connection URL (default $DATABASE_URL)")
	rootCmd.PersistentFlags().StringVar(&tableName, "table", "", "measurement table name (default $WIFI_TABLE)")

	rootCmd.AddCommand(routesCmd, activitiesCmd, statsCmd)
}

// selectedRoutes returns the --route flags, or the dashboard's preset routes
// when none were given
func selectedRoutes(cmd *cobra.Command) []string {
	if cmd.Flags().Changed("route") {
		return routes
	}
	return dashboard.DefaultRoutes()
}

func output(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}
