package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"router-manager/core/backup"
	"router-manager/core/config"
	"router-manager/core/history"
	"router-manager/core/logger"
	"router-manager/core/router"
	"router-manager/core/staticlist"
	"router-manager/feature/dhcp"
	"router-manager/feature/dhcp/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var (
	// Flags for the restore command
	restoreFile   string
	restoreBackup bool
	restoreByIP   bool
	restoreDryRun bool
	yesConfirm    bool
)

// restorePlan is the on-disk shape of a reservation backup file.
type restorePlan struct {
	Reservations []staticlist.Reservation `yaml:"reservations"`
}

// restoreCmd bulk-restores reservations from a plan file.
var restoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Restore DHCP reservations from a plan file",
	Long: `Restore reads reservations from a YAML plan file, or from the newest
stored snapshot with --backup, and additively merges them into the
router's current list. Entries that already exist on the router are
left untouched; only missing ones are appended.

Examples:
  # Report what would change, write nothing
  router-manager restore --file reservations.yaml --dry-run

  # Restore with interactive confirmation
  router-manager restore --file reservations.yaml

  # Restore non-interactively
  router-manager restore --file reservations.yaml --yes

  # Restore whatever the newest pre-write snapshot held
  router-manager restore --backup`,
	RunE: runRestore,
}

func init() {
	restoreCmd.Flags().StringVar(&restoreFile, "file", "", "YAML plan file holding the reservations to restore")
	restoreCmd.Flags().BoolVar(&restoreBackup, "backup", false, "Restore from the newest stored snapshot instead of a plan file")
	restoreCmd.Flags().BoolVar(&restoreByIP, "match-ip", true, "Treat an IP match alone as already existing")
	restoreCmd.Flags().BoolVar(&restoreDryRun, "dry-run", false, "Report without writing to the router")
	restoreCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm the write (non-interactive)")

	RootCmd.AddCommand(restoreCmd)
}

func runRestore(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if restoreBackup == (restoreFile != "") {
		return fmt.Errorf("exactly one of --file or --backup must be given")
	}

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	snaps := newSnapshotStore(cfg.Backup, l)

	// Load the candidates from the chosen source
	var candidates []staticlist.Reservation
	if restoreBackup {
		if snaps == nil {
			return fmt.Errorf("backup storage is not enabled; use --file instead")
		}
		candidates, err = snapshotCandidates(ctx, snaps, cfg.Router.Host)
		if err != nil {
			return err
		}
		l.Info("Loaded restore candidates from newest snapshot",
			zap.String("host", cfg.Router.Host),
			zap.Int("reservations", len(candidates)))
	} else {
		candidates, err = loadPlanFile(restoreFile)
		if err != nil {
			return err
		}
		l.Info("Loaded restore plan",
			zap.String("file", restoreFile),
			zap.Int("reservations", len(candidates)))
	}

	// The audit trail is optional here like it is for the server.
	var hist *history.Store
	if db, err := history.Connect(cfg.Database); err != nil {
		l.Warn("Optional history database connection failed", zap.Error(err))
	} else if hist, err = history.NewStore(db); err != nil {
		l.Warn("Failed to prepare history schema", zap.Error(err))
		hist = nil
	}

	svc := dhcp.NewService(router.NewClient, cfg.Router, l, hist, snaps)

	// Step 1: Plan (always a dry run first)
	report, err := svc.Restore(ctx, models.Credentials{}, candidates, restoreByIP, true)
	if err != nil {
		return fmt.Errorf("failed to plan restore: %w", err)
	}

	l.Info("Restore plan",
		zap.Int("to_add", report.Added),
		zap.Int("skipped", report.Skipped),
		zap.Int("resulting_total", report.Total))

	if report.Added == 0 {
		l.Info("Every reservation is already present. Nothing to do.")
		return nil
	}
	if restoreDryRun {
		l.Info("Dry-run mode: No changes were made.")
		return nil
	}

	// Step 2: Confirm before touching NVRAM
	if !confirmWrite(report.Added) {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	// Step 3: Apply
	report, err = svc.Restore(ctx, models.Credentials{}, candidates, restoreByIP, false)
	if err != nil {
		return fmt.Errorf("failed to restore reservations: %w", err)
	}

	l.Info("Successfully restored reservations",
		zap.Int("added", report.Added),
		zap.Int("total", report.Total))
	return nil
}

// loadPlanFile reads restore candidates from a YAML plan file.
func loadPlanFile(path string) ([]staticlist.Reservation, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file: %w", err)
	}

	var plan restorePlan
	if err := yaml.Unmarshal(raw, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse plan file: %w", err)
	}
	if len(plan.Reservations) == 0 {
		return nil, fmt.Errorf("plan file %s holds no reservations", path)
	}
	return plan.Reservations, nil
}

// snapshotCandidates decodes the newest stored snapshot for a host into
// restore candidates.
func snapshotCandidates(ctx context.Context, snaps *backup.Store, host string) ([]staticlist.Reservation, error) {
	raw, err := snaps.Latest(ctx, host)
	if err != nil {
		return nil, fmt.Errorf("failed to load newest snapshot: %w", err)
	}

	dec := staticlist.Decode(raw)
	if dec.Empty() {
		return nil, fmt.Errorf("newest snapshot for %s holds no decodable reservations", host)
	}
	return dec.Reservations, nil
}

// confirmWrite prompts the user for confirmation or honors --yes.
func confirmWrite(count int) bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Printf("\n⚠️  About to write %d new reservations and restart dhcpd. Type 'yes' to confirm: ", count)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	return strings.TrimSpace(response) == "yes"
}
