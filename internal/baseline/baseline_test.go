package baseline

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	b, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error for missing file: %v", err)
	}
	if b.Len() != 0 {
		t.Errorf("missing file produced %d entries", b.Len())
	}
	if b.Mutes("ChangedScope", "method test.Foo.bar()") {
		t.Error("empty baseline mutes findings")
	}
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "baseline.yaml")

	b := New()
	b.Add("ChangedScope", "method test.pkg.Foo.bar()")
	b.Add("RemovedMethod", "method test.pkg.Foo.gone()")
	if err := b.Save(path); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded.Len() != 2 {
		t.Fatalf("loaded %d entries, want 2", loaded.Len())
	}
	if !loaded.Mutes("ChangedScope", "method test.pkg.Foo.bar()") {
		t.Error("saved entry not muted after reload")
	}
	if loaded.Mutes("ChangedScope", "method test.pkg.Foo.other()") {
		t.Error("unrelated element muted")
	}
	if loaded.Mutes("AddedFinal", "method test.pkg.Foo.bar()") {
		t.Error("unrelated issue muted")
	}
}

func TestLoadRejectsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte(":\t not yaml ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() accepted malformed yaml")
	}
}

func TestLoadRejectsUnknownVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "future.yaml")
	if err := os.WriteFile(path, []byte("version: 99\nfindings: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() accepted unknown baseline version")
	}
}
