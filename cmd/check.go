package cmd

import (
	"context"
	"fmt"

	"task-sync/core/config"
	"task-sync/core/database"
	"task-sync/core/logger"
	"task-sync/core/storage"
	"task-sync/feature/tasks"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// checkCmd verifies the task table schema and the archive bucket.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the task table and the archive bucket",
	Long: `Verifies that the task table has every column the sync writes and,
when storage is enabled, that the archive bucket exists.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		healthy := true

		logg.Info("Checking task table schema...", zap.String("table", cfg.Database.Table))
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("database connection required: %w", err)
		}
		missing, err := database.MissingColumns(db, cfg.Database.Table, tasks.StoreColumns())
		if err != nil {
			return fmt.Errorf("schema check failed: %w", err)
		}
		if len(missing) == 0 {
			logg.Info("Task table schema is intact.")
		} else {
			healthy = false
			logg.Warn("Missing columns", zap.String("table", cfg.Database.Table), zap.Strings("columns", missing))
		}

		if cfg.Storage.Enabled {
			logg.Info("Checking archive bucket...", zap.String("bucket", cfg.Storage.Bucket))
			client, err := storage.NewClient(cfg.Storage)
			if err != nil {
				return fmt.Errorf("failed to create storage client: %w", err)
			}

			exists, err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region, fixFlag)
			if err != nil {
				return err
			}
			switch {
			case exists && fixFlag:
				logg.Info("Archive bucket is ready.")
			case exists:
				logg.Info("Archive bucket exists.")
			default:
				healthy = false
				logg.Warn("Archive bucket is missing. Run with --fix to create it.")
			}
		}

		if !healthy {
			return fmt.Errorf("check found problems")
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the archive bucket if missing")
	RootCmd.AddCommand(checkCmd)
}
