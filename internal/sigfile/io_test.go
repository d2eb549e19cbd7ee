package sigfile

import (
	"path/filepath"
	"strings"
	"testing"

	sigerr "sigcheck/internal/errors"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	for _, name := range []string{"api.txt", "api.txt.gz"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			cb := parseString(t, sampleSnapshot)

			if err := Save(path, cb); err != nil {
				t.Fatalf("Save() error: %v", err)
			}
			loaded, err := Load(path, ParseOptions{})
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}
			if loaded.FindClass("test.pkg.Foo") == nil {
				t.Error("class lost across save/load")
			}

			var a, b strings.Builder
			if err := Write(&a, cb); err != nil {
				t.Fatal(err)
			}
			if err := Write(&b, loaded); err != nil {
				t.Fatal(err)
			}
			if a.String() != b.String() {
				t.Errorf("snapshot changed across save/load:\n%s\nvs\n%s", a.String(), b.String())
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"), ParseOptions{})
	if err == nil {
		t.Fatal("Load() succeeded for missing file")
	}
	se, ok := err.(*sigerr.SigError)
	if !ok || se.Code != sigerr.FileNotFound {
		t.Errorf("error = %v, want FILE_NOT_FOUND", err)
	}
}
