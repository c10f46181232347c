package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"task-sync/core/config"
	"task-sync/core/database"
	"task-sync/core/logger"
	"task-sync/core/storage"
	"task-sync/feature/tasks"

	"github.com/minio/minio-go/v7"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	syncObject  string
	syncDryRun  bool
	syncConfirm bool
)

// syncCmd reconciles a workbook with the task table from the terminal.
var syncCmd = &cobra.Command{
	Use:   "sync [file.xlsx]",
	Short: "Reconcile a planner export with the task table",
	Long: `Parse a planner export, report the tasks to insert and update, and
write them after confirmation.

Examples:
  # Report and confirm interactively
  task-sync sync tareas.xlsx

  # Report only
  task-sync sync tareas.xlsx --dry-run

  # Read the workbook from the storage bucket and auto-confirm
  task-sync sync --object uploads/2024/03/05/tareas.xlsx --yes`,
	Args: func(cmd *cobra.Command, args []string) error {
		if syncObject == "" && len(args) != 1 {
			return fmt.Errorf("expected one workbook path or --object")
		}
		if syncObject != "" && len(args) > 0 {
			return fmt.Errorf("use either a workbook path or --object, not both")
		}
		return nil
	},
	RunE: runSync,
}

func init() {
	syncCmd.Flags().StringVar(&syncObject, "object", "", "Read the workbook from this key in the storage bucket")
	syncCmd.Flags().BoolVar(&syncDryRun, "dry-run", false, "Report changes without writing")
	syncCmd.Flags().BoolVar(&syncConfirm, "yes", false, "Auto-confirm writes (non-interactive)")

	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	input, err := openWorkbook(ctx, cfg, args)
	if err != nil {
		return err
	}
	defer input.Close()

	svc := tasks.NewService(tasks.NewStore(db, cfg.Database), cfg.Sync, l)

	// Step 1: Plan (always runs)
	l.Info("Planning sync...")
	plan, err := svc.Plan(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to plan sync: %w", err)
	}

	// Step 2: Print report
	printSyncReport(l, plan)

	if !plan.HasChanges() {
		l.Info("Task table is up to date.")
		return nil
	}
	if syncDryRun {
		l.Info("Dry-run mode: No changes were made.")
		return nil
	}

	// Step 3: Apply (if confirmed)
	if !confirmWrite() {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	l.Info("Applying changes...")
	res, err := svc.Apply(ctx, plan)
	if err != nil {
		return fmt.Errorf("failed to apply plan: %w", err)
	}

	l.Info("Sync completed", zap.Int("inserted", res.Inserted), zap.Int("updated", res.Updated))
	return nil
}

// openWorkbook opens the local file in args or the --object key in the bucket.
func openWorkbook(ctx context.Context, cfg *config.Config, args []string) (io.ReadCloser, error) {
	if syncObject == "" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("failed to open workbook: %w", err)
		}
		return f, nil
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to storage: %w", err)
	}
	obj, err := client.GetObject(ctx, cfg.Storage.Bucket, syncObject, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", syncObject, err)
	}
	return obj, nil
}

// printSyncReport prints a formatted sync report using logger.
func printSyncReport(l *zap.Logger, plan *tasks.SyncPlan) {
	s := plan.Summary

	l.Info("Sync report",
		zap.Int("incoming", s.Incoming),
		zap.Int("existing", s.Existing),
		zap.Int("inserts", s.Inserts),
		zap.Int("updates", s.Updates),
		zap.Int("unchanged", s.Unchanged),
		zap.Int("skipped", s.Skipped),
		zap.Int("dropped", plan.Dropped),
	)

	// Show sample of actions (max 5 for logger)
	maxShow := min(5, len(plan.Actions))
	for i := 0; i < maxShow; i++ {
		action := plan.Actions[i]
		l.Info("Sample action",
			zap.String("type", string(action.Type)),
			zap.String("key", action.Key),
			zap.String("reason", action.Reason),
		)
	}
	if len(plan.Actions) > maxShow {
		l.Info("Additional actions not shown", zap.Int("count", len(plan.Actions)-maxShow))
	}
}

// confirmWrite prompts the user for confirmation or uses --yes flag.
func confirmWrite() bool {
	if syncConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\n⚠️  Type 'yes' to write these changes: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	return strings.TrimSpace(response) == "yes"
}
