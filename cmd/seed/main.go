package main

import (
	"context"
	"fmt"
	"os"

	"fixitnow/internal/config"
	"fixitnow/internal/database"
	"fixitnow/internal/pkg/logger"
	"fixitnow/internal/repository"
	"fixitnow/internal/seed"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	demoPassword string
	skipMigrate  bool
)

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate a FixItNow database with catalog and demo data",
	Long: `seed writes reference data into the database named by DATABASE_URL.

The catalog command upserts the service categories; running it again replaces the
sub-service lists. The demo command adds sample customers and providers and skips
accounts whose email is already registered.`,
	SilenceUsage: true,
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Upsert the built-in service catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(cmd.Context(), func(ctx context.Context, db *gorm.DB, log *zap.Logger) error {
			n, err := seed.Catalog(ctx, repository.NewCatalogRepository(db), log)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "catalog seeded: %d categories\n", n)
			return nil
		})
	},
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Create sample customers and providers",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(cmd.Context(), func(ctx context.Context, db *gorm.DB, log *zap.Logger) error {
			n, err := seed.Demo(ctx,
				repository.NewCustomerRepository(db),
				repository.NewProviderRepository(db),
				demoPassword,
				log,
			)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "demo accounts created: %d (password %q)\n", n, demoPassword)
			return nil
		})
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&skipMigrate, "skip-migrate", false, "do not run schema migration before seeding")
	demoCmd.Flags().StringVar(&demoPassword, "password", "demo1234", "password for every demo account")
	rootCmd.AddCommand(catalogCmd, demoCmd)
}

func withDB(ctx context.Context, fn func(context.Context, *gorm.DB, *zap.Logger) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.LoadTool()
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.LogLevel, cfg.LogFormat, "fixitnow-seed")
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	db, err := database.Connect(cfg.DatabaseURL, log)
	if err != nil {
		return err
	}
	defer func() { _ = database.Close(db) }()

	if !skipMigrate {
		if err := repository.Migrate(ctx, db); err != nil {
			return err
		}
	}
	return fn(ctx, db, log)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
