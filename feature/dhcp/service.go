package dhcp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"router-manager/core/backup"
	"router-manager/core/history"
	"router-manager/core/router"
	"router-manager/core/staticlist"
	"router-manager/feature/dhcp/models"

	"go.uber.org/zap"
)

var (
	// ErrHistoryDisabled means the audit trail database is not connected.
	ErrHistoryDisabled = errors.New("snapshot history is not enabled")

	// ErrUnreadableList means the router returned a non-empty staticlist
	// that no known grammar could decode. Bulk operations refuse to
	// proceed in that state: writing a reconciled list would silently
	// drop whatever those bytes encode.
	ErrUnreadableList = errors.New("current reservation list is non-empty but unreadable")
)

// Service orchestrates reservation operations against routers.
type Service struct {
	factory  router.Factory
	defaults router.Config
	logger   *zap.Logger
	hist     *history.Store // optional, nil when the DB is absent
	snaps    *backup.Store  // optional, nil when backups are disabled

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewService creates a new dhcp service. hist and snaps may be nil; the
// corresponding safety nets are then skipped with a warning.
func NewService(factory router.Factory, defaults router.Config, logger *zap.Logger, hist *history.Store, snaps *backup.Store) *Service {
	return &Service{
		factory:  factory,
		defaults: defaults,
		logger:   logger,
		hist:     hist,
		snaps:    snaps,
		locks:    make(map[string]*sync.Mutex),
	}
}

// hostLock returns the mutex serializing fetch-reconcile-apply cycles for
// one router. Two concurrent writers racing on the same NVRAM value would
// lose one another's reservations.
func (s *Service) hostLock(host string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locks[host]
	if !ok {
		l = &sync.Mutex{}
		s.locks[host] = l
	}
	return l
}

// resolve merges request credentials with configured defaults and builds
// a client for them.
func (s *Service) resolve(creds models.Credentials) (router.Client, string, error) {
	cfg := s.defaults
	if creds.Host != "" {
		cfg.Host = creds.Host
	}
	if creds.Username != "" {
		cfg.Username = creds.Username
	}
	if creds.Password != "" {
		cfg.Password = creds.Password
	}
	if creds.UseHTTPS != nil {
		cfg.UseSSL = *creds.UseHTTPS
	}

	client, err := s.factory(cfg)
	if err != nil {
		return nil, "", err
	}
	return client, cfg.Host, nil
}

// Test verifies connectivity and returns the currently decoded list.
// The warning string is non-empty when the raw list could not be decoded.
func (s *Service) Test(ctx context.Context, creds models.Credentials) (staticlist.DecodeResult, string, error) {
	client, _, err := s.resolve(creds)
	if err != nil {
		return staticlist.DecodeResult{}, "", err
	}
	if err := client.Check(ctx); err != nil {
		return staticlist.DecodeResult{}, "", fmt.Errorf("connection test failed: %w", err)
	}
	return s.fetch(ctx, client)
}

// List fetches and decodes the current reservation list.
func (s *Service) List(ctx context.Context, creds models.Credentials) (staticlist.DecodeResult, string, error) {
	client, _, err := s.resolve(creds)
	if err != nil {
		return staticlist.DecodeResult{}, "", err
	}
	return s.fetch(ctx, client)
}

// fetch reads and decodes the raw list, logging the decode decisions and
// returning a caller-visible warning when the list defied every grammar.
func (s *Service) fetch(ctx context.Context, client router.Client) (staticlist.DecodeResult, string, error) {
	raw, err := client.GetStaticList(ctx)
	if err != nil {
		return staticlist.DecodeResult{}, "", err
	}

	dec := staticlist.Decode(raw)
	warning := ""
	if dec.Empty() && raw != "" {
		// Either the list was genuinely emptied or the firmware changed
		// its format; we cannot tell the difference from here.
		warning = fmt.Sprintf("list is %d bytes but decoded to zero reservations", len(raw))
		s.logger.Warn("Reservation list decoded to zero records from non-empty input",
			zap.Int("raw_bytes", len(raw)))
	}
	if dec.Skipped > 0 {
		s.logger.Warn("Dropped unrecognized reservation fragments", zap.Int("skipped", dec.Skipped))
	}
	return dec, warning, nil
}

// Add inserts or updates a single reservation and applies the result.
// It reports false when the reservation was already present as requested
// and nothing was written.
func (s *Service) Add(ctx context.Context, creds models.Credentials, candidate staticlist.Reservation) (bool, error) {
	client, host, err := s.resolve(creds)
	if err != nil {
		return false, err
	}

	lock := s.hostLock(host)
	lock.Lock()
	defer lock.Unlock()

	raw, err := client.GetStaticList(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to read current reservations: %w", err)
	}

	dec := staticlist.Decode(raw)

	if dec.Empty() && raw != "" {
		// The list holds bytes no grammar recognizes. Re-encoding would
		// replace them wholesale, so append the one canonical entry to
		// the raw value instead and keep the unknown bytes intact.
		s.logger.Warn("Appending to unreadable reservation list without re-encoding",
			zap.String("host", host), zap.Int("raw_bytes", len(raw)))

		entry, skipped := staticlist.Encode([]staticlist.Reservation{candidate})
		if skipped > 0 {
			return false, staticlist.ErrMissingIdentity
		}
		s.snapshot(ctx, host, "add", raw, 0)
		// Trim trailing separators so the write stays single-tab-joined.
		return true, s.apply(ctx, client, strings.TrimRight(raw, "\t")+"\t"+entry)
	}

	updated, changed, err := staticlist.ReconcileOne(dec.Reservations, candidate)
	if err != nil {
		return false, err
	}
	if !changed {
		s.logger.Info("Reservation already up to date",
			zap.String("host", host), zap.String("mac", staticlist.NormalizeMAC(candidate.MAC)))
		return false, nil
	}

	out, skipped := staticlist.Encode(updated)
	if skipped > 0 {
		s.logger.Warn("Excluded records without identity while encoding", zap.Int("skipped", skipped))
	}
	if out == "" && raw != "" {
		return false, staticlist.ErrWouldErase
	}

	s.snapshot(ctx, host, "add", raw, len(dec.Reservations))
	return true, s.apply(ctx, client, out)
}

// Restore bulk-reconciles candidates into the current list, additive only.
func (s *Service) Restore(ctx context.Context, creds models.Credentials, candidates []staticlist.Reservation, matchByIP, dryRun bool) (models.RestoreReport, error) {
	client, host, err := s.resolve(creds)
	if err != nil {
		return models.RestoreReport{}, err
	}

	lock := s.hostLock(host)
	lock.Lock()
	defer lock.Unlock()

	raw, err := client.GetStaticList(ctx)
	if err != nil {
		return models.RestoreReport{}, fmt.Errorf("failed to read current reservations: %w", err)
	}

	dec := staticlist.Decode(raw)
	if dec.Empty() && raw != "" {
		// Unlike the single-entry path there is no safe append here: a
		// batch merged against an unreadable list cannot honor the
		// additive-only contract.
		return models.RestoreReport{}, ErrUnreadableList
	}

	updated, added, skipped := staticlist.ReconcileMany(dec.Reservations, candidates, matchByIP)
	report := models.RestoreReport{
		Added:   added,
		Skipped: skipped,
		Total:   len(updated),
		DryRun:  dryRun,
	}

	if dryRun || added == 0 {
		s.logger.Info("Restore made no changes to apply",
			zap.String("host", host), zap.Int("added", added),
			zap.Int("skipped", skipped), zap.Bool("dry_run", dryRun))
		return report, nil
	}

	out, encSkipped := staticlist.Encode(updated)
	if encSkipped > 0 {
		s.logger.Warn("Excluded records without identity while encoding", zap.Int("skipped", encSkipped))
	}
	if out == "" && raw != "" {
		return models.RestoreReport{}, staticlist.ErrWouldErase
	}

	s.snapshot(ctx, host, "restore", raw, len(dec.Reservations))
	if err := s.apply(ctx, client, out); err != nil {
		return models.RestoreReport{}, err
	}

	s.logger.Info("Restored reservations",
		zap.String("host", host), zap.Int("added", added),
		zap.Int("skipped", skipped), zap.Int("total", len(updated)))
	return report, nil
}

// History returns the most recent snapshots recorded for a host.
func (s *Service) History(ctx context.Context, host string, limit int) ([]history.Snapshot, error) {
	if s.hist == nil {
		return nil, ErrHistoryDisabled
	}
	if host == "" {
		host = s.defaults.Host
	}
	return s.hist.Recent(ctx, host, limit)
}

// snapshot records the value about to be replaced, in the audit trail and
// the backup bucket. Both are best effort: a failed snapshot is logged and
// the write proceeds, because the alternative is refusing every change
// whenever the optional infrastructure is down.
func (s *Service) snapshot(ctx context.Context, host, action, raw string, entryCount int) {
	if s.hist != nil {
		err := s.hist.Record(ctx, history.Snapshot{
			Host:       host,
			Action:     action,
			Raw:        raw,
			EntryCount: entryCount,
		})
		if err != nil {
			s.logger.Warn("Failed to record staticlist snapshot", zap.Error(err))
		}
	}

	if s.snaps != nil {
		if _, err := s.snaps.Save(ctx, host, raw); err != nil {
			s.logger.Warn("Failed to back up staticlist", zap.Error(err))
		}
	}
}

// apply writes the new list and restarts the DHCP service.
func (s *Service) apply(ctx context.Context, client router.Client, out string) error {
	if err := client.ApplyStaticList(ctx, out); err != nil {
		return fmt.Errorf("failed to apply reservations: %w", err)
	}
	return nil
}
