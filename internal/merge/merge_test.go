package merge

import (
	"strings"
	"testing"

	sigerr "sigcheck/internal/errors"
	"sigcheck/internal/model"
	"sigcheck/internal/sigfile"
)

func parse(t *testing.T, name, input string) *model.Codebase {
	t.Helper()
	cb, err := sigfile.Parse(strings.NewReader(input), name, sigfile.ParseOptions{})
	if err != nil {
		t.Fatalf("parse %s: %v", name, err)
	}
	return cb
}

func TestMergeDisjoint(t *testing.T) {
	a := parse(t, "a.txt", `// Signature format: 2.0
package pkg.one {
  public class A {
  }
}
`)
	b := parse(t, "b.txt", `// Signature format: 2.0
package pkg.one {
  public class B {
  }
}
package pkg.two {
  public class C {
  }
}
`)
	merged, err := Codebases("merged", []*model.Codebase{a, b})
	if err != nil {
		t.Fatalf("Codebases() error: %v", err)
	}
	if len(merged.Packages) != 2 {
		t.Fatalf("merged packages = %d, want 2", len(merged.Packages))
	}
	for _, name := range []string{"pkg.one.A", "pkg.one.B", "pkg.two.C"} {
		if merged.FindClass(name) == nil {
			t.Errorf("class %s missing after merge", name)
		}
	}
}

func TestMergeIdenticalDuplicates(t *testing.T) {
	snapshot := `// Signature format: 2.0
package pkg.one {
  public class A {
    method public void run();
  }
}
`
	a := parse(t, "a.txt", snapshot)
	b := parse(t, "b.txt", snapshot)
	merged, err := Codebases("merged", []*model.Codebase{a, b})
	if err != nil {
		t.Fatalf("Codebases() error: %v", err)
	}
	cls := merged.FindClass("pkg.one.A")
	if cls == nil {
		t.Fatal("pkg.one.A missing after merge")
	}
	if len(merged.Packages[0].Classes) != 1 {
		t.Errorf("duplicate class kept twice: %d entries", len(merged.Packages[0].Classes))
	}
}

func TestMergeConflict(t *testing.T) {
	a := parse(t, "a.txt", `// Signature format: 2.0
package pkg.one {
  public class A {
    method public void run();
  }
}
`)
	b := parse(t, "b.txt", `// Signature format: 2.0
package pkg.one {
  public class A {
    method public int run();
  }
}
`)
	_, err := Codebases("merged", []*model.Codebase{a, b})
	if err == nil {
		t.Fatal("Codebases() succeeded, want conflict")
	}
	se, ok := err.(*sigerr.SigError)
	if !ok {
		t.Fatalf("error type = %T, want *SigError", err)
	}
	if se.Code != sigerr.MergeConflict {
		t.Errorf("error code = %s, want %s", se.Code, sigerr.MergeConflict)
	}
	if !strings.Contains(se.Message, "pkg.one.A") {
		t.Errorf("conflict message %q does not name the class", se.Message)
	}
	if !strings.Contains(err.Error(), "b.txt") || !strings.Contains(err.Error(), "a.txt") {
		t.Errorf("conflict %q does not name both files", err.Error())
	}
}

func TestMergeDeterministicOrder(t *testing.T) {
	a := parse(t, "a.txt", `// Signature format: 2.0
package pkg.zeta {
  public class Z {
  }
}
`)
	b := parse(t, "b.txt", `// Signature format: 2.0
package pkg.alpha {
  public class A {
  }
}
`)
	forward, err := Codebases("merged", []*model.Codebase{a, b})
	if err != nil {
		t.Fatal(err)
	}
	reverse, err := Codebases("merged", []*model.Codebase{b, a})
	if err != nil {
		t.Fatal(err)
	}
	var fw, rv strings.Builder
	if err := sigfile.Write(&fw, forward); err != nil {
		t.Fatal(err)
	}
	if err := sigfile.Write(&rv, reverse); err != nil {
		t.Fatal(err)
	}
	if fw.String() != rv.String() {
		t.Errorf("merge order affects output:\n%s\nvs\n%s", fw.String(), rv.String())
	}
}
