// Package history persists compatibility check runs in a SQLite database
// so that regressions can be traced across snapshot versions.
package history

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"sigcheck/internal/errors"
	"sigcheck/internal/logging"
	"sigcheck/internal/report"
)

// Store provides persistence for check runs in a SQLite database.
type Store struct {
	conn   *sql.DB
	logger *logging.Logger
	dbPath string
}

// Run is one recorded compatibility check.
type Run struct {
	ID          string    `json:"id"`
	CreatedAt   time.Time `json:"createdAt"`
	OldSnapshot string    `json:"oldSnapshot"`
	NewSnapshot string    `json:"newSnapshot"`
	Surface     string    `json:"surface"`
	Fatal       bool      `json:"fatal"`
	Findings    int       `json:"findings"`
	Errors      int       `json:"errors"`
	Warnings    int       `json:"warnings"`
}

// Open opens or creates the history database at dir/history.db.
func Open(dir string, logger *logging.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(errors.HistoryUnavailable, "creating history directory", err).At(dir, 0)
	}

	dbPath := filepath.Join(dir, "history.db")
	dbExists := fileExists(dbPath)

	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.Wrap(errors.HistoryUnavailable, "opening history database", err).At(dbPath, 0)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if _, err := conn.Exec(pragma); err != nil {
			_ = conn.Close()
			return nil, errors.Wrap(errors.HistoryUnavailable, "setting pragma", err).At(dbPath, 0)
		}
	}

	store := &Store{conn: conn, logger: logger, dbPath: dbPath}

	if !dbExists {
		logger.Info("Creating history database", map[string]interface{}{
			"path": dbPath,
		})
	}
	if err := store.initializeSchema(); err != nil {
		_ = conn.Close()
		return nil, errors.Wrap(errors.HistoryUnavailable, "initializing history schema", err).At(dbPath, 0)
	}

	return store, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (s *Store) initializeSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			created_at TEXT NOT NULL,
			old_snapshot TEXT NOT NULL,
			new_snapshot TEXT NOT NULL,
			surface TEXT NOT NULL,
			fatal INTEGER NOT NULL,
			findings INTEGER NOT NULL,
			errors INTEGER NOT NULL,
			warnings INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at DESC);

		CREATE TABLE IF NOT EXISTS findings (
			run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			issue TEXT NOT NULL,
			severity TEXT NOT NULL,
			element TEXT NOT NULL,
			location TEXT,
			message TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_findings_run ON findings(run_id);
		CREATE INDEX IF NOT EXISTS idx_findings_issue ON findings(issue);

		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);
		INSERT OR REPLACE INTO schema_version (version) VALUES (1);
	`
	_, err := s.conn.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.conn != nil {
		return s.conn.Close()
	}
	return nil
}

// RecordRun stores one check run and its findings, returning the run ID.
func (s *Store) RecordRun(oldSnapshot, newSnapshot, surface string, fatal bool, findings []report.Finding) (string, error) {
	id := uuid.NewString()
	counts := map[report.Severity]int{}
	for _, f := range findings {
		counts[f.Severity]++
	}

	tx, err := s.conn.Begin()
	if err != nil {
		return "", errors.Wrap(errors.HistoryUnavailable, "starting transaction", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(`
		INSERT INTO runs (id, created_at, old_snapshot, new_snapshot, surface, fatal, findings, errors, warnings)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		id,
		time.Now().UTC().Format(time.RFC3339),
		oldSnapshot,
		newSnapshot,
		surface,
		boolInt(fatal),
		len(findings),
		counts[report.SeverityError],
		counts[report.SeverityWarning],
	)
	if err != nil {
		return "", errors.Wrap(errors.HistoryUnavailable, "recording run", err)
	}

	for _, f := range findings {
		_, err = tx.Exec(`
			INSERT INTO findings (run_id, issue, severity, element, location, message)
			VALUES (?, ?, ?, ?, ?, ?)
		`, id, string(f.Issue), f.SeverityName, f.Element, f.Where, f.Message)
		if err != nil {
			return "", errors.Wrap(errors.HistoryUnavailable, "recording finding", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", errors.Wrap(errors.HistoryUnavailable, "committing run", err)
	}

	s.logger.Debug("Recorded run", map[string]interface{}{
		"runId":    id,
		"findings": len(findings),
		"fatal":    fatal,
	})
	return id, nil
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.conn.Query(`
		SELECT id, created_at, old_snapshot, new_snapshot, surface, fatal, findings, errors, warnings
		FROM runs ORDER BY created_at DESC, id LIMIT ?
	`, limit)
	if err != nil {
		return nil, errors.Wrap(errors.HistoryUnavailable, "listing runs", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var created string
		var fatal int
		if err := rows.Scan(&r.ID, &created, &r.OldSnapshot, &r.NewSnapshot, &r.Surface, &fatal, &r.Findings, &r.Errors, &r.Warnings); err != nil {
			return nil, errors.Wrap(errors.HistoryUnavailable, "scanning run", err)
		}
		r.CreatedAt, _ = time.Parse(time.RFC3339, created)
		r.Fatal = fatal != 0
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// RunFindings returns the stored findings of one run.
func (s *Store) RunFindings(runID string) ([]report.Finding, error) {
	rows, err := s.conn.Query(`
		SELECT issue, severity, element, location, message
		FROM findings WHERE run_id = ? ORDER BY rowid
	`, runID)
	if err != nil {
		return nil, errors.Wrap(errors.HistoryUnavailable, "loading findings", err)
	}
	defer rows.Close()

	var findings []report.Finding
	for rows.Next() {
		var f report.Finding
		var severity string
		if err := rows.Scan(&f.Issue, &severity, &f.Element, &f.Where, &f.Message); err != nil {
			return nil, errors.Wrap(errors.HistoryUnavailable, "scanning finding", err)
		}
		f.SeverityName = severity
		if sev, err := report.ParseSeverity(severity); err == nil {
			f.Severity = sev
		}
		findings = append(findings, f)
	}
	return findings, rows.Err()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
