package compat

import (
	"fmt"
	"unicode"

	"sigcheck/internal/model"
	"sigcheck/internal/report"
)

// Surface selects which API subset a check run covers. It changes the
// inclusion predicate default and the wording of addition/removal
// findings, not the rule set.
type Surface string

const (
	SurfacePublic  Surface = "public"
	SurfaceSystem  Surface = "system"
	SurfaceRemoved Surface = "removed"
)

// Options configures one compatibility check invocation.
type Options struct {
	Surface Surface
	// Filter is the inclusion predicate deciding which items are part of
	// the surface under test. Defaults to model.ApiVisible.
	Filter model.Predicate
}

// CompatibilityCheck evaluates the compatibility rule battery over the
// matched-pair stream. It holds only transient traversal state; all output
// goes through the reporter. One instance serves one comparison pass.
type CompatibilityCheck struct {
	reporter *report.Reporter
	oldBase  *model.MergedCodebase
	newBase  *model.MergedCodebase
	surface  Surface
}

// CheckCompatibility compares the base (old) API against the current (new)
// one and records every finding on the reporter. The full finding set is
// always computed; use the reporter's FoundProblems for the verdict.
func CheckCompatibility(rep *report.Reporter, old, new *model.MergedCodebase, opts Options) {
	chk := &CompatibilityCheck{
		reporter: rep,
		oldBase:  old,
		newBase:  new,
		surface:  opts.Surface,
	}
	CompareCodebases(chk, old, new, opts.Filter)
}

// report is the engine's single funnel into the reporter.
func (c *CompatibilityCheck) report(issue report.Issue, item model.Item, format string, args ...interface{}) {
	c.reporter.Report(issue, item, fmt.Sprintf(format, args...))
}

// describe capitalizes an item identifier for use at the start of a
// message: "method test.Foo.bar(int)" -> "Method test.Foo.bar(int)".
func describe(it model.Item) string {
	s := it.Describe()
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// checkItem runs the kind-independent checks on a matched pair. It returns
// false when the item left the checked surface, in which case the caller
// must skip every per-dimension rule: a suppressed item gets exactly one
// BecameUnchecked finding and nothing else.
func (c *CompatibilityCheck) checkItem(old, new model.Item) bool {
	if !old.CompatSuppressed() && new.CompatSuppressed() {
		// Reported against the old item; the new one is invisible to the
		// reporter by suppression policy.
		c.report(report.IssueBecameUnchecked, old,
			"%s is no longer part of the compatibility-checked API surface", describe(old))
		return false
	}

	om, nm := old.Mods(), new.Mods()
	if om.Operator && !nm.Operator {
		c.report(report.IssueOperatorRemoval, new,
			"Cannot remove 'operator' modifier from %s: breaks existing call sites", new.Describe())
	}
	if om.Infix && !nm.Infix {
		c.report(report.IssueInfixRemoval, new,
			"Cannot remove 'infix' modifier from %s: breaks existing call sites", new.Describe())
	}

	oldDeprecated := old.Deprecation() != model.NotDeprecated
	newDeprecated := new.Deprecation() != model.NotDeprecated
	if oldDeprecated != newDeprecated {
		action := "deprecated"
		if oldDeprecated {
			action = "undeprecated"
		}
		c.report(report.IssueChangedDeprecated, new, "%s has been %s", describe(new), action)
	}
	return true
}

// ComparePackages applies the kind-independent checks; packages have no
// per-dimension rules of their own.
func (c *CompatibilityCheck) ComparePackages(old, new *model.Package) {
	c.checkItem(old, new)
}

// checkVisibility flags narrowed access. Widening is always silent.
func (c *CompatibilityCheck) checkVisibility(old, new model.Item) {
	ov := old.Mods().Visibility
	nv := new.Mods().Visibility
	if nv.NarrowerThan(ov) {
		c.report(report.IssueChangedScope, new,
			"%s changed visibility from %s to %s", describe(new), ov, nv)
	}
}

// checkNullness enforces the nullability transition rules for one typed
// slot. Input positions (parameters) may widen what they accept; return
// positions may narrow what they promise. The opposite directions break
// callers. oldVal/newVal carry the implicit nullness when not explicit.
func (c *CompatibilityCheck) checkNullness(newItem model.Item, typ *model.Type,
	oldVal model.Nullness, oldExplicit bool, newVal model.Nullness, newExplicit bool, input bool) {

	if !oldExplicit {
		return
	}
	if typ.IsPrimitive() {
		// primitives cannot be null; the annotation is vacuous
		return
	}
	if !newExplicit {
		if newVal == oldVal {
			return
		}
		c.report(report.IssueInvalidNullConversion, newItem,
			"Attempted to remove nullability annotation from %s (was %s)", newItem.Describe(), oldVal)
		return
	}
	if oldVal == newVal {
		return
	}
	if !input && oldVal == model.NullnessNonNull && newVal == model.NullnessNullable {
		c.report(report.IssueInvalidNullConversion, newItem,
			"Attempted to change nullability of %s (from @NonNull to @Nullable)", newItem.Describe())
	}
	if input && oldVal == model.NullnessNullable && newVal == model.NullnessNonNull {
		c.report(report.IssueInvalidNullConversion, newItem,
			"Attempted to change nullability of %s (from @Nullable to @NonNull)", newItem.Describe())
	}
}

// resolveNew resolves a type reference against the new-side merged view.
// Only referenceable classes count: a hidden internal class cannot satisfy
// an inherited contract.
func (c *CompatibilityCheck) resolveNew(t *model.Type) *model.Class {
	if t == nil {
		return nil
	}
	cls := c.newBase.FindClass(t.Erasure())
	if cls == nil || !model.Referenceable(cls) {
		return nil
	}
	return cls
}

// surfaceSuffix qualifies addition/removal messages for bookkeeping
// surfaces so "Added method X to the removed API" reads distinctly from a
// normal API addition.
func (c *CompatibilityCheck) surfaceSuffix() string {
	if c.surface == SurfaceRemoved {
		return " to the removed API"
	}
	return ""
}
