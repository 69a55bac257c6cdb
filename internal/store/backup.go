package store

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-ledger-sync/internal/logger"
	"github.com/MKhiriev/go-ledger-sync/models"
)

const (
	backupExt         = ".json.gz"
	backupSep         = "--"
	backupTimeLayout  = "20060102T150405.000000000"
	backupUntagged    = "none"
	preRestoreReason  = "pre_restore"
	backupTempPattern = ".backup-*.tmp"
)

type ledgerSnapshotter interface {
	Export(ctx context.Context) (models.LedgerSnapshot, error)
	Import(ctx context.Context, snapshot models.LedgerSnapshot) error
}

// ledgerLocker is implemented by [AccountStorePool].
type ledgerLocker interface {
	LockLedger(ctx context.Context) (func(), error)
}

// fileBackupManager keeps gzip-compressed JSON snapshots in one directory.
// File names are reason--tag--timestamp.json.gz.
type fileBackupManager struct {
	dir       string
	snapshots ledgerSnapshotter
	ledger    ledgerLocker
	logger    *logger.Logger
	now       func() time.Time

	mu sync.Mutex
}

// NewFileBackupManager creates dir if needed and snapshots the ledger in db.
// Restores take ledger's lock so they never run under a held account
// handle; a nil ledger skips that.
func NewFileBackupManager(dir string, db *DB, ledger ledgerLocker, logger *logger.Logger) (BackupManager, error) {
	return newFileBackupManager(dir, newSnapshotRepository(db), ledger, logger)
}

func newFileBackupManager(dir string, snapshots ledgerSnapshotter, ledger ledgerLocker, logger *logger.Logger) (*fileBackupManager, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving backup dir: %w", err)
	}

	if err := os.MkdirAll(absDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating backup dir: %w", err)
	}

	return &fileBackupManager{
		dir:       absDir,
		snapshots: snapshots,
		ledger:    ledger,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}, nil
}

func (m *fileBackupManager) GetBackupBasePath() string {
	return m.dir
}

func (m *fileBackupManager) CreateBackup(ctx context.Context, reason, tag string) (models.BackupResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.createBackup(ctx, reason, tag)
}

func (m *fileBackupManager) createBackup(ctx context.Context, reason, tag string) (models.BackupResult, error) {
	log := logger.FromContextOr(ctx, m.logger)

	snapshot, err := m.snapshots.Export(ctx)
	if err != nil {
		log.Err(err).Str("func", "fileBackupManager.CreateBackup").Str("reason", reason).Msg("failed to export ledger")
		return models.BackupResult{}, fmt.Errorf("exporting ledger: %w", err)
	}

	createdAt := m.now()
	path := m.backupPath(reason, tag, createdAt)
	for fileExists(path) {
		createdAt = createdAt.Add(time.Microsecond)
		path = m.backupPath(reason, tag, createdAt)
	}

	snapshot.Reason = reason
	snapshot.Tag = tag
	snapshot.CreatedAt = createdAt

	if err := m.writeSnapshot(path, snapshot); err != nil {
		log.Err(err).Str("func", "fileBackupManager.CreateBackup").Str("path", path).Msg("failed to write backup")
		return models.BackupResult{}, err
	}

	log.Info().
		Str("func", "fileBackupManager.CreateBackup").
		Str("path", path).
		Int("accounts", len(snapshot.Accounts)).
		Int("transactions", len(snapshot.Transactions)).
		Msg("backup created")

	return models.BackupResult{Success: true, Path: path}, nil
}

// RestoreBackup replaces the ledger with the snapshot at path. A bare file
// name is looked up in the backup directory; anything resolving outside it
// is rejected.
func (m *fileBackupManager) RestoreBackup(ctx context.Context, path string) (bool, error) {
	log := logger.FromContextOr(ctx, m.logger)

	if m.ledger != nil {
		unlock, err := m.ledger.LockLedger(ctx)
		if err != nil {
			log.Err(err).Str("func", "fileBackupManager.RestoreBackup").Msg("ledger is busy")
			return false, fmt.Errorf("locking ledger: %w", err)
		}
		defer unlock()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	resolved, err := m.resolve(path)
	if err != nil {
		return false, err
	}

	snapshot, err := readSnapshot(resolved)
	if err != nil {
		log.Err(err).Str("func", "fileBackupManager.RestoreBackup").Str("path", resolved).Msg("failed to read backup")
		return false, err
	}

	if _, err := m.createBackup(ctx, preRestoreReason, ""); err != nil {
		return false, fmt.Errorf("pre-restore backup: %w", err)
	}

	if err := m.snapshots.Import(ctx, snapshot); err != nil {
		return false, fmt.Errorf("importing ledger: %w", err)
	}

	log.Info().Str("func", "fileBackupManager.RestoreBackup").Str("path", resolved).Msg("backup restored")
	return true, nil
}

func (m *fileBackupManager) ListBackups(ctx context.Context) ([]models.BackupInfo, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return nil, fmt.Errorf("reading backup dir: %w", err)
	}

	backups := make([]models.BackupInfo, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		info, ok := parseBackupName(entry.Name())
		if !ok {
			continue
		}

		if fi, err := entry.Info(); err == nil {
			info.Size = fi.Size()
		}
		info.Path = filepath.Join(m.dir, entry.Name())
		backups = append(backups, info)
	}

	sort.SliceStable(backups, func(i, j int) bool {
		return backups[i].CreatedAt.After(backups[j].CreatedAt)
	})

	return backups, nil
}

func (m *fileBackupManager) Prune(ctx context.Context, keep int) (int, error) {
	log := logger.FromContextOr(ctx, m.logger)

	if keep <= 0 {
		return 0, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	backups, err := m.ListBackups(ctx)
	if err != nil {
		return 0, err
	}
	if len(backups) <= keep {
		return 0, nil
	}

	removed := 0
	for _, b := range backups[keep:] {
		if err := os.Remove(b.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Err(err).Str("func", "fileBackupManager.Prune").Str("path", b.Path).Msg("failed to remove backup")
			return removed, fmt.Errorf("removing backup: %w", err)
		}
		removed++
	}

	log.Info().Str("func", "fileBackupManager.Prune").Int("removed", removed).Int("kept", keep).Msg("old backups pruned")
	return removed, nil
}

func (m *fileBackupManager) backupPath(reason, tag string, createdAt time.Time) string {
	if tag == "" {
		tag = backupUntagged
	}

	name := strings.Join([]string{
		sanitizeBackupPart(reason),
		sanitizeBackupPart(tag),
		createdAt.UTC().Format(backupTimeLayout) + "Z",
	}, backupSep) + backupExt

	return filepath.Join(m.dir, name)
}

func (m *fileBackupManager) resolve(path string) (string, error) {
	if path == "" {
		return "", ErrBackupNotFound
	}

	if !filepath.IsAbs(path) && filepath.Base(path) == path {
		path = filepath.Join(m.dir, path)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBackupNotFound, err)
	}

	rel, err := filepath.Rel(m.dir, abs)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrBackupOutsideBase, path)
	}

	if !fileExists(abs) {
		return "", fmt.Errorf("%w: %s", ErrBackupNotFound, path)
	}

	return abs, nil
}

// writeSnapshot writes to a temp file first so a crash never leaves a
// truncated backup under a valid name.
func (m *fileBackupManager) writeSnapshot(path string, snapshot models.LedgerSnapshot) (err error) {
	tmp, err := os.CreateTemp(m.dir, backupTempPattern)
	if err != nil {
		return fmt.Errorf("creating temp backup: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	zw := gzip.NewWriter(tmp)
	if err = json.NewEncoder(zw).Encode(snapshot); err != nil {
		return fmt.Errorf("encoding backup: %w", err)
	}
	if err = zw.Close(); err != nil {
		return fmt.Errorf("compressing backup: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("syncing backup: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing backup: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("renaming backup: %w", err)
	}

	return nil
}

func readSnapshot(path string) (models.LedgerSnapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.LedgerSnapshot{}, fmt.Errorf("%w: %w", ErrBackupNotFound, err)
	}
	defer f.Close()

	zr, err := gzip.NewReader(f)
	if err != nil {
		return models.LedgerSnapshot{}, fmt.Errorf("%w: %w", ErrBackupCorrupted, err)
	}
	defer zr.Close()

	var snapshot models.LedgerSnapshot
	if err := json.NewDecoder(zr).Decode(&snapshot); err != nil {
		return models.LedgerSnapshot{}, fmt.Errorf("%w: %w", ErrBackupCorrupted, err)
	}

	return snapshot, nil
}

func parseBackupName(name string) (models.BackupInfo, bool) {
	if !strings.HasSuffix(name, backupExt) {
		return models.BackupInfo{}, false
	}

	parts := strings.Split(strings.TrimSuffix(name, backupExt), backupSep)
	if len(parts) != 3 {
		return models.BackupInfo{}, false
	}

	createdAt, err := time.Parse(backupTimeLayout, strings.TrimSuffix(parts[2], "Z"))
	if err != nil {
		return models.BackupInfo{}, false
	}

	tag := parts[1]
	if tag == backupUntagged {
		tag = ""
	}

	return models.BackupInfo{
		Reason:    parts[0],
		Tag:       tag,
		CreatedAt: createdAt.UTC(),
	}, true
}

// sanitizeBackupPart keeps names portable and free of the separator.
func sanitizeBackupPart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "backup"
	}

	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '.':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
