package history

import (
	"testing"

	"sigcheck/internal/logging"
	"sigcheck/internal/report"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	logger := logging.NewLogger(logging.Config{Level: logging.ErrorLevel})
	store, err := Open(t.TempDir(), logger)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRecordAndListRuns(t *testing.T) {
	store := openTestStore(t)

	findings := []report.Finding{
		{
			Issue:        "ChangedScope",
			Severity:     report.SeverityError,
			SeverityName: "error",
			Where:        "old.txt:3",
			Element:      "method test.pkg.Foo.bar()",
			Message:      "method test.pkg.Foo.bar changed visibility from public to protected",
		},
		{
			Issue:        "AddedMethod",
			Severity:     report.SeverityInfo,
			SeverityName: "info",
			Element:      "method test.pkg.Foo.baz()",
			Message:      "Added method test.pkg.Foo.baz()",
		},
	}

	id, err := store.RecordRun("old.txt", "new.txt", "public", true, findings)
	if err != nil {
		t.Fatalf("RecordRun() error: %v", err)
	}
	if id == "" {
		t.Fatal("RecordRun() returned empty run ID")
	}

	runs, err := store.ListRuns(10)
	if err != nil {
		t.Fatalf("ListRuns() error: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("ListRuns() returned %d runs, want 1", len(runs))
	}
	run := runs[0]
	if run.ID != id || run.OldSnapshot != "old.txt" || run.NewSnapshot != "new.txt" {
		t.Errorf("run = %+v", run)
	}
	if !run.Fatal || run.Findings != 2 || run.Errors != 1 || run.Warnings != 0 {
		t.Errorf("run counters = %+v, want fatal with 2 findings, 1 error", run)
	}

	stored, err := store.RunFindings(id)
	if err != nil {
		t.Fatalf("RunFindings() error: %v", err)
	}
	if len(stored) != 2 {
		t.Fatalf("RunFindings() returned %d findings, want 2", len(stored))
	}
	if stored[0].Issue != "ChangedScope" || stored[0].Severity != report.SeverityError {
		t.Errorf("first finding = %+v", stored[0])
	}
	if stored[1].Element != "method test.pkg.Foo.baz()" {
		t.Errorf("second finding = %+v", stored[1])
	}
}

func TestListRunsEmpty(t *testing.T) {
	store := openTestStore(t)
	runs, err := store.ListRuns(5)
	if err != nil {
		t.Fatalf("ListRuns() error: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("empty store listed %d runs", len(runs))
	}
}

func TestReopenKeepsRuns(t *testing.T) {
	logger := logging.NewLogger(logging.Config{Level: logging.ErrorLevel})
	dir := t.TempDir()

	store, err := Open(dir, logger)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.RecordRun("a.txt", "b.txt", "public", false, nil); err != nil {
		t.Fatal(err)
	}
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}

	reopened, err := Open(dir, logger)
	if err != nil {
		t.Fatalf("reopen error: %v", err)
	}
	defer reopened.Close()
	runs, err := reopened.ListRuns(5)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Errorf("reopened store lists %d runs, want 1", len(runs))
	}
}
