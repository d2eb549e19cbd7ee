package compat

import (
	"strings"
	"testing"

	"sigcheck/internal/model"
	"sigcheck/internal/report"
	"sigcheck/internal/sigfile"
)

const header = "// Signature format: 2.0\n"

func parse(t *testing.T, name, body string) *model.Codebase {
	t.Helper()
	cb, err := sigfile.Parse(strings.NewReader(header+body), name, sigfile.ParseOptions{})
	if err != nil {
		t.Fatalf("parse %s: %v", name, err)
	}
	return cb
}

// compare runs a full check of old against new with default policy.
func compare(t *testing.T, oldBody, newBody string) *report.Reporter {
	t.Helper()
	return compareWith(t, oldBody, newBody, report.Options{})
}

func compareWith(t *testing.T, oldBody, newBody string, opts report.Options) *report.Reporter {
	t.Helper()
	old := model.NewMergedCodebase(parse(t, "old.txt", oldBody))
	new := model.NewMergedCodebase(parse(t, "new.txt", newBody))
	rep := report.NewReporter(opts)
	CheckCompatibility(rep, old, new, Options{Surface: SurfacePublic})
	return rep
}

func findingStrings(rep *report.Reporter) []string {
	out := make([]string, 0, len(rep.Findings()))
	for _, f := range rep.Findings() {
		out = append(out, f.Message+" ["+string(f.Issue)+"]")
	}
	return out
}

func requireSingleFinding(t *testing.T, rep *report.Reporter, issue report.Issue, message string) {
	t.Helper()
	fs := rep.Findings()
	if len(fs) != 1 {
		t.Fatalf("got %d findings, want 1:\n%s", len(fs), strings.Join(findingStrings(rep), "\n"))
	}
	if fs[0].Issue != issue {
		t.Errorf("issue = %s, want %s", fs[0].Issue, issue)
	}
	if fs[0].Message != message {
		t.Errorf("message = %q,\nwant      %q", fs[0].Message, message)
	}
}

func requireClean(t *testing.T, rep *report.Reporter) {
	t.Helper()
	if len(rep.Findings()) != 0 {
		t.Errorf("expected no findings, got:\n%s", strings.Join(findingStrings(rep), "\n"))
	}
}

func TestSelfComparisonClean(t *testing.T) {
	body := `package test.pkg {
  public final class Foo extends test.pkg.Base {
    ctor public Foo(int);
    method public void bar(int) throws java.lang.Throwable;
    field public static final int CONST = 42;
  }
  public class Base {
    ctor public Base();
  }
  public enum Color {
    method public static test.pkg.Color valueOf(java.lang.String);
    method public static test.pkg.Color[] values();
    enum_constant public static final test.pkg.Color RED;
  }
}
`
	rep := compare(t, body, body)
	requireClean(t, rep)
	if rep.FoundProblems() {
		t.Error("self comparison marked fatal")
	}
}

func TestChangedScope(t *testing.T) {
	old := `package test.pkg {
  public class Foo {
    ctor public Foo();
    method public void bar(int);
  }
}
`
	new := `package test.pkg {
  public class Foo {
    ctor public Foo();
    method protected void bar(int);
  }
}
`
	rep := compare(t, old, new)
	requireSingleFinding(t, rep, report.IssueChangedScope,
		"Method test.pkg.Foo.bar(int) changed visibility from public to protected")
	if !rep.FoundProblems() {
		t.Error("visibility narrowing did not mark the run fatal")
	}

	// widening is always fine
	requireClean(t, compare(t, new, old))
}

func TestVisibilityNarrowingToPrivateIsRemoval(t *testing.T) {
	// private items are outside the checked surface entirely, so the
	// member counts as removed rather than rescoped
	old := `package test.pkg {
  public class Foo {
    ctor public Foo();
    method public void bar();
  }
}
`
	new := `package test.pkg {
  public class Foo {
    ctor public Foo();
    method private void bar();
  }
}
`
	rep := compare(t, old, new)
	requireSingleFinding(t, rep, report.IssueRemovedMethod,
		"Removed method test.pkg.Foo.bar()")
}

func TestChangedThrows(t *testing.T) {
	old := `package test.pkg {
  public class Foo {
    ctor public Foo();
    method public void bar(int) throws java.lang.Throwable;
  }
}
`
	new := `package test.pkg {
  public class Foo {
    ctor public Foo();
    method public void bar(int);
  }
}
`
	rep := compare(t, old, new)
	requireSingleFinding(t, rep, report.IssueChangedThrows,
		"Method test.pkg.Foo.bar(int) no longer throws exception java.lang.Throwable")

	added := compare(t, new, old)
	requireSingleFinding(t, added, report.IssueChangedThrows,
		"Method test.pkg.Foo.bar(int) added thrown exception java.lang.Throwable")
}

func TestFinalizeThrowsExempt(t *testing.T) {
	old := `package test.pkg {
  public class Foo {
    ctor public Foo();
    method protected void finalize() throws java.lang.Throwable;
  }
}
`
	new := `package test.pkg {
  public class Foo {
    ctor public Foo();
    method protected void finalize();
  }
}
`
	requireClean(t, compare(t, old, new))
	requireClean(t, compare(t, new, old))
}

func TestEnumSynthesizedThrowsExempt(t *testing.T) {
	old := `package test.pkg {
  public enum Color {
    method public static test.pkg.Color valueOf(java.lang.String);
    method public static test.pkg.Color[] values();
    enum_constant public static final test.pkg.Color RED;
  }
}
`
	new := `package test.pkg {
  public enum Color {
    method public static test.pkg.Color valueOf(java.lang.String) throws java.lang.IllegalArgumentException;
    method public static test.pkg.Color[] values();
    enum_constant public static final test.pkg.Color RED;
  }
}
`
	requireClean(t, compare(t, old, new))
}

func TestVarargAsymmetry(t *testing.T) {
	vararg := `package test.pkg {
  public class Foo {
    ctor public Foo();
    method public void bar(int...);
  }
}
`
	array := `package test.pkg {
  public class Foo {
    ctor public Foo();
    method public void bar(int[]);
  }
}
`
	rep := compare(t, vararg, array)
	requireSingleFinding(t, rep, report.IssueVarargRemoval,
		"Changing from varargs to array is an incompatible change: parameter arg1 in test.pkg.Foo.bar(int[])")

	// array -> varargs keeps every call site compiling
	requireClean(t, compare(t, array, vararg))
}

func TestAddedFinal(t *testing.T) {
	old := `package test.pkg {
  public class Foo {
    ctor public Foo();
    method public void bar();
  }
}
`
	new := `package test.pkg {
  public class Foo {
    ctor public Foo();
    method public final void bar();
  }
}
`
	rep := compare(t, old, new)
	requireSingleFinding(t, rep, report.IssueAddedFinal,
		"Method test.pkg.Foo.bar() has added 'final' qualifier")
	if !rep.FoundProblems() {
		t.Error("AddedFinal on an instantiable class should be fatal by default")
	}
}

func TestAddedFinalOnUninstantiableClass(t *testing.T) {
	// no accessible constructor, so nothing could have overridden bar
	old := `package test.pkg {
  public class Foo {
    method public void bar();
  }
}
`
	new := `package test.pkg {
  public class Foo {
    method public final void bar();
  }
}
`
	rep := compare(t, old, new)
	fs := rep.Findings()
	if len(fs) != 1 || fs[0].Issue != report.IssueAddedFinalUninstantiable {
		t.Fatalf("findings = %v, want one AddedFinalUninstantiable", findingStrings(rep))
	}
	if rep.FoundProblems() {
		t.Error("AddedFinalUninstantiable should be informational, not fatal")
	}
}

func TestSuppressionYieldsSingleBecameUnchecked(t *testing.T) {
	old := `package test.pkg {
  public class Foo {
    ctor public Foo();
    method public void bar(int) throws java.lang.Throwable;
  }
}
`
	// the suppressed new method also narrows visibility and drops the
	// throws clause; none of that may surface
	new := `package test.pkg {
  public class Foo {
    ctor public Foo();
    method @SuppressCompatibility protected void bar(int);
  }
}
`
	rep := compare(t, old, new)
	requireSingleFinding(t, rep, report.IssueBecameUnchecked,
		"Method test.pkg.Foo.bar(int) is no longer part of the compatibility-checked API surface")
}

func TestSuppressedOnBothSidesStaysSilent(t *testing.T) {
	old := `package test.pkg {
  public class Foo {
    ctor public Foo();
    method @SuppressCompatibility public void bar(int) throws java.lang.Throwable;
  }
}
`
	new := `package test.pkg {
  public class Foo {
    ctor public Foo();
    method @SuppressCompatibility protected void bar(int);
  }
}
`
	requireClean(t, compare(t, old, new))
}

func TestClassKindChangeSubsumesOtherChecks(t *testing.T) {
	old := `package test.pkg {
  public class Foo {
    ctor public Foo();
  }
}
`
	new := `package test.pkg {
  public final interface Foo {
  }
}
`
	rep := compare(t, old, new)
	// the ctor removal still reports, but no final/abstract noise on the
	// class itself
	for _, f := range rep.Findings() {
		if f.Issue == report.IssueAddedFinal || f.Issue == report.IssueChangedAbstract {
			t.Errorf("kind change did not subsume %s", f.Issue)
		}
	}
	var seen bool
	for _, f := range rep.Findings() {
		if f.Issue == report.IssueChangedClass {
			seen = true
			if f.Message != "Class test.pkg.Foo changed class declaration to interface" {
				t.Errorf("message = %q", f.Message)
			}
		}
	}
	if !seen {
		t.Errorf("no ChangedClass finding in %v", findingStrings(rep))
	}
}

func TestRemovedMethodSatisfiedByInheritance(t *testing.T) {
	old := `package test.pkg {
  public class Base {
    ctor public Base();
  }
  public class Foo extends test.pkg.Base {
    ctor public Foo();
    method public void bar();
  }
}
`
	// bar moved up to Base; subclass callers still resolve it
	new := `package test.pkg {
  public class Base {
    ctor public Base();
    method public void bar();
  }
  public class Foo extends test.pkg.Base {
    ctor public Foo();
  }
}
`
	rep := compare(t, old, new)
	for _, f := range rep.Findings() {
		if f.Issue == report.IssueRemovedMethod {
			t.Errorf("inherited method reported as removed: %s", f.Message)
		}
	}
}

func TestAddedMethodOverridingHiddenAncestorStillReported(t *testing.T) {
	old := `package test.pkg {
  @Hide internal class Hidden {
    method public String name();
  }
  public class Foo extends test.pkg.Hidden {
    ctor public Foo();
  }
}
`
	// Hidden is not referenceable, so inheriting name() from it cannot
	// make the override invisible to external callers.
	new := `package test.pkg {
  @Hide internal class Hidden {
    method public String name();
  }
  public class Foo extends test.pkg.Hidden {
    ctor public Foo();
    method public String name();
  }
}
`
	rep := compare(t, old, new)
	requireSingleFinding(t, rep, report.IssueAddedMethod,
		"Added method test.pkg.Foo.name()")
}

func TestAddedMethodOverridingUnemittedAncestorMethodSilent(t *testing.T) {
	old := `package test.pkg {
  public class Base {
    ctor public Base();
    method @Hide public String name();
  }
  public class Foo extends test.pkg.Base {
    ctor public Foo();
  }
}
`
	new := `package test.pkg {
  public class Base {
    ctor public Base();
    method @Hide public String name();
  }
  public class Foo extends test.pkg.Base {
    ctor public Foo();
    method public String name();
  }
}
`
	rep := compare(t, old, new)
	requireClean(t, rep)
}

func TestRemovedDeprecatedMethod(t *testing.T) {
	old := `package test.pkg {
  public class Foo {
    ctor public Foo();
    method public deprecated void legacy();
  }
}
`
	new := `package test.pkg {
  public class Foo {
    ctor public Foo();
  }
}
`
	rep := compare(t, old, new)
	requireSingleFinding(t, rep, report.IssueRemovedDeprecatedMethod,
		"Removed deprecated method test.pkg.Foo.legacy()")
	if rep.FoundProblems() {
		t.Error("removing a deprecated method should warn, not fail")
	}
}

func TestAddedAndRemovedClass(t *testing.T) {
	old := `package test.pkg {
  public class Gone {
    ctor public Gone();
  }
}
`
	new := `package test.pkg {
  public class Fresh {
    ctor public Fresh();
  }
}
`
	rep := compare(t, old, new)
	var added, removed bool
	for _, f := range rep.Findings() {
		switch f.Issue {
		case report.IssueAddedClass:
			added = true
			if f.Message != "Added class test.pkg.Fresh" {
				t.Errorf("added message = %q", f.Message)
			}
		case report.IssueRemovedClass:
			removed = true
			if f.Message != "Removed class test.pkg.Gone" {
				t.Errorf("removed message = %q", f.Message)
			}
		}
	}
	if !added || !removed {
		t.Errorf("findings = %v, want AddedClass and RemovedClass", findingStrings(rep))
	}
}

func TestConstantValueChange(t *testing.T) {
	old := `package test.pkg {
  public class Foo {
    ctor public Foo();
    field public static final int CONST = 42;
  }
}
`
	new := `package test.pkg {
  public class Foo {
    ctor public Foo();
    field public static final int CONST = 43;
  }
}
`
	rep := compare(t, old, new)
	requireSingleFinding(t, rep, report.IssueChangedValue,
		"Field test.pkg.Foo.CONST has changed value from 42 to 43")
}

func TestReturnTypeChange(t *testing.T) {
	old := `package test.pkg {
  public class Foo {
    ctor public Foo();
    method public int bar();
  }
}
`
	new := `package test.pkg {
  public class Foo {
    ctor public Foo();
    method public long bar();
  }
}
`
	rep := compare(t, old, new)
	requireSingleFinding(t, rep, report.IssueChangedType,
		"Method test.pkg.Foo.bar() has changed return type from int to long")
}

func TestReturnNullabilityTightening(t *testing.T) {
	old := `package test.pkg {
  public class Foo {
    ctor public Foo();
    method @NonNull public java.lang.String name();
  }
}
`
	new := `package test.pkg {
  public class Foo {
    ctor public Foo();
    method @Nullable public java.lang.String name();
  }
}
`
	rep := compare(t, old, new)
	requireSingleFinding(t, rep, report.IssueInvalidNullConversion,
		"Attempted to change nullability of method test.pkg.Foo.name() (from @NonNull to @Nullable)")

	// the promise-strengthening direction is fine
	requireClean(t, compare(t, new, old))
}

func TestParameterNullabilityTightening(t *testing.T) {
	old := `package test.pkg {
  public class Foo {
    ctor public Foo();
    method public void set(@Nullable java.lang.String value);
  }
}
`
	new := `package test.pkg {
  public class Foo {
    ctor public Foo();
    method public void set(@NonNull java.lang.String value);
  }
}
`
	rep := compare(t, old, new)
	fs := rep.Findings()
	if len(fs) != 1 || fs[0].Issue != report.IssueInvalidNullConversion {
		t.Fatalf("findings = %v, want one InvalidNullConversion", findingStrings(rep))
	}

	// widening what the parameter accepts is fine
	requireClean(t, compare(t, new, old))
}

func TestInterfaceChanges(t *testing.T) {
	old := `package test.pkg {
  public class Foo implements java.lang.Cloneable {
    ctor public Foo();
  }
}
`
	new := `package test.pkg {
  public class Foo implements java.io.Serializable {
    ctor public Foo();
  }
}
`
	rep := compare(t, old, new)
	var removed, added bool
	for _, f := range rep.Findings() {
		switch f.Issue {
		case report.IssueRemovedInterface:
			removed = true
		case report.IssueAddedInterface:
			added = true
		}
	}
	if !removed || !added {
		t.Errorf("findings = %v, want RemovedInterface and AddedInterface", findingStrings(rep))
	}
	if !rep.FoundProblems() {
		t.Error("removing an implemented interface should be fatal")
	}
}

func TestDeprecationTransition(t *testing.T) {
	old := `package test.pkg {
  public class Foo {
    ctor public Foo();
    method public void bar();
  }
}
`
	new := `package test.pkg {
  public class Foo {
    ctor public Foo();
    method public deprecated void bar();
  }
}
`
	rep := compare(t, old, new)
	requireSingleFinding(t, rep, report.IssueChangedDeprecated,
		"Method test.pkg.Foo.bar() has been deprecated")
	if rep.FoundProblems() {
		t.Error("deprecation is informational, not fatal")
	}

	undone := compare(t, new, old)
	requireSingleFinding(t, undone, report.IssueChangedDeprecated,
		"Method test.pkg.Foo.bar() has been undeprecated")
}

func TestBaseApiFillsClasspathGaps(t *testing.T) {
	base := parse(t, "base.txt", `package test.pkg {
  public class Shared {
    ctor public Shared();
    method public void common();
  }
}
`)
	oldPrimary := parse(t, "old-system.txt", `package test.pkg {
  public class Shared {
    ctor public Shared();
    method public void common();
  }
  public class Extra {
    ctor public Extra();
  }
}
`)
	// the new partial snapshot no longer re-lists Shared; the companion
	// base snapshot supplies it, so it must not read as removed
	newPrimary := parse(t, "new-system.txt", `package test.pkg {
  public class Extra {
    ctor public Extra();
  }
}
`)
	rep := report.NewReporter(report.Options{})
	CheckCompatibility(rep,
		model.NewMergedCodebase(oldPrimary, base),
		model.NewMergedCodebase(newPrimary, base),
		Options{Surface: SurfaceSystem})
	requireClean(t, rep)
}

func TestDeterministicFindingOrder(t *testing.T) {
	old := `package test.pkg {
  public class Zeta {
    ctor public Zeta();
    method public void a();
    method public void b();
  }
  public class Alpha {
    ctor public Alpha();
    field public int x;
  }
}
`
	new := `package test.pkg {
  public class Zeta {
    ctor public Zeta();
  }
  public class Alpha {
    ctor public Alpha();
  }
}
`
	first := findingStrings(compare(t, old, new))
	for i := 0; i < 3; i++ {
		again := findingStrings(compare(t, old, new))
		if strings.Join(first, "\n") != strings.Join(again, "\n") {
			t.Fatalf("finding order unstable:\n%s\nvs\n%s",
				strings.Join(first, "\n"), strings.Join(again, "\n"))
		}
	}
	if len(first) != 3 {
		t.Errorf("got %d findings, want 3 removals:\n%s", len(first), strings.Join(first, "\n"))
	}
}

func TestSeverityOverrideUnfatals(t *testing.T) {
	old := `package test.pkg {
  public class Foo {
    ctor public Foo();
    method public void bar();
  }
}
`
	new := `package test.pkg {
  public class Foo {
    ctor public Foo();
    method protected void bar();
  }
}
`
	rep := compareWith(t, old, new, report.Options{
		Severities: map[report.Issue]report.Severity{
			report.IssueChangedScope: report.SeverityWarning,
		},
	})
	if len(rep.Findings()) != 1 {
		t.Fatalf("findings = %v", findingStrings(rep))
	}
	if rep.FoundProblems() {
		t.Error("warning-tier finding marked the run fatal")
	}
}

func TestHiddenSeverityDropsFinding(t *testing.T) {
	old := `package test.pkg {
  public class Foo {
    ctor public Foo();
    method public void bar();
  }
}
`
	new := `package test.pkg {
  public class Foo {
    ctor public Foo();
    method protected void bar();
  }
}
`
	rep := compareWith(t, old, new, report.Options{
		Severities: map[report.Issue]report.Severity{
			report.IssueChangedScope: report.SeverityHidden,
		},
	})
	requireClean(t, rep)
}

type mapBaseline map[string]bool

func (b mapBaseline) Mutes(tag, element string) bool { return b[tag+"|"+element] }

func TestBaselineMutesKnownFinding(t *testing.T) {
	old := `package test.pkg {
  public class Foo {
    ctor public Foo();
    method public void bar(int);
  }
}
`
	new := `package test.pkg {
  public class Foo {
    ctor public Foo();
    method protected void bar(int);
  }
}
`
	rep := compareWith(t, old, new, report.Options{
		Baseline: mapBaseline{"ChangedScope|method test.pkg.Foo.bar(int)": true},
	})
	requireClean(t, rep)
	if rep.MutedCount() != 1 {
		t.Errorf("muted = %d, want 1", rep.MutedCount())
	}
	if rep.FoundProblems() {
		t.Error("muted finding still marked fatal")
	}
}

func TestStaticAndAbstractTransitions(t *testing.T) {
	tests := []struct {
		name    string
		oldDecl string
		newDecl string
		issue   report.Issue
	}{
		{
			name:    "became static",
			oldDecl: "method public void bar();",
			newDecl: "method public static void bar();",
			issue:   report.IssueChangedStatic,
		},
		{
			name:    "became abstract",
			oldDecl: "method public void bar();",
			newDecl: "method public abstract void bar();",
			issue:   report.IssueChangedAbstract,
		},
		{
			name:    "became native",
			oldDecl: "method public void bar();",
			newDecl: "method public native void bar();",
			issue:   report.IssueChangedNative,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			old := "package test.pkg {\n  public abstract class Foo {\n    ctor public Foo();\n    " + tt.oldDecl + "\n  }\n}\n"
			new := "package test.pkg {\n  public abstract class Foo {\n    ctor public Foo();\n    " + tt.newDecl + "\n  }\n}\n"
			rep := compare(t, old, new)
			fs := rep.Findings()
			if len(fs) != 1 || fs[0].Issue != tt.issue {
				t.Fatalf("findings = %v, want one %s", findingStrings(rep), tt.issue)
			}
		})
	}
}

func TestAddedSealedClass(t *testing.T) {
	old := `package test.pkg {
  public interface Shape {
  }
}
`
	new := `package test.pkg {
  public sealed interface Shape {
  }
}
`
	rep := compare(t, old, new)
	fs := rep.Findings()
	if len(fs) != 1 || fs[0].Issue != report.IssueAddedSealed {
		t.Fatalf("findings = %v, want one AddedSealed", findingStrings(rep))
	}
}

func TestSuperclassChange(t *testing.T) {
	old := `package test.pkg {
  public class Base {
    ctor public Base();
  }
  public class Other {
    ctor public Other();
  }
  public class Foo extends test.pkg.Base {
    ctor public Foo();
  }
}
`
	new := `package test.pkg {
  public class Base {
    ctor public Base();
  }
  public class Other {
    ctor public Other();
  }
  public class Foo extends test.pkg.Other {
    ctor public Foo();
  }
}
`
	rep := compare(t, old, new)
	fs := rep.Findings()
	if len(fs) != 1 || fs[0].Issue != report.IssueChangedSuperclass {
		t.Fatalf("findings = %v, want one ChangedSuperclass", findingStrings(rep))
	}
}

func TestSuperclassInsertionTolerated(t *testing.T) {
	old := `package test.pkg {
  public class Base {
    ctor public Base();
  }
  public class Foo extends test.pkg.Base {
    ctor public Foo();
  }
}
`
	// a new intermediate class that still extends the old parent keeps
	// every existing cast valid
	new := `package test.pkg {
  public class Base {
    ctor public Base();
  }
  public class Middle extends test.pkg.Base {
    ctor public Middle();
  }
  public class Foo extends test.pkg.Middle {
    ctor public Foo();
  }
}
`
	rep := compare(t, old, new)
	for _, f := range rep.Findings() {
		if f.Issue == report.IssueChangedSuperclass {
			t.Errorf("superclass insertion flagged: %s", f.Message)
		}
	}
}

func TestParameterNameChange(t *testing.T) {
	old := `package test.pkg {
  public class Foo {
    ctor public Foo();
    method public void set(int value);
  }
}
`
	new := `package test.pkg {
  public class Foo {
    ctor public Foo();
    method public void set(int amount);
  }
}
`
	rep := compare(t, old, new)
	fs := rep.Findings()
	if len(fs) != 1 || fs[0].Issue != report.IssueParameterNameChange {
		t.Fatalf("findings = %v, want one ParameterNameChange", findingStrings(rep))
	}

	// adding a name where none existed is an improvement
	unnamedOld := `package test.pkg {
  public class Foo {
    ctor public Foo();
    method public void set(int);
  }
}
`
	requireClean(t, compare(t, unnamedOld, old))
}

func TestAnnotationMemberDefaults(t *testing.T) {
	old := `package test.pkg {
  public @interface Marker {
    method public int priority() default 0;
  }
}
`
	new := `package test.pkg {
  public @interface Marker {
    method public int priority();
  }
}
`
	rep := compare(t, old, new)
	requireSingleFinding(t, rep, report.IssueChangedValue,
		"Method test.pkg.Marker.priority() has removed its default value")

	// gaining a default (and new members with defaults) are additions
	// nobody is forced to supply
	requireClean(t, compare(t, new, old))
}

func TestAddedAnnotationMemberWithDefaultExempt(t *testing.T) {
	old := `package test.pkg {
  public @interface Marker {
    method public int priority() default 0;
  }
}
`
	new := `package test.pkg {
  public @interface Marker {
    method public int priority() default 0;
    method public java.lang.String label() default "";
  }
}
`
	requireClean(t, compare(t, old, new))
}

func TestRemovedSurfaceWording(t *testing.T) {
	old := model.NewMergedCodebase(parse(t, "removed-old.txt", `package test.pkg {
  public class Foo {
    ctor public Foo();
  }
}
`))
	new := model.NewMergedCodebase(parse(t, "removed-new.txt", `package test.pkg {
  public class Foo {
    ctor public Foo();
    method public void zombie();
  }
}
`))
	rep := report.NewReporter(report.Options{})
	CheckCompatibility(rep, old, new, Options{Surface: SurfaceRemoved})
	requireSingleFinding(t, rep, report.IssueAddedMethod,
		"Added method test.pkg.Foo.zombie() to the removed API")
}
