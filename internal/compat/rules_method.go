package compat

import (
	"strings"

	"sigcheck/internal/model"
	"sigcheck/internal/report"
)

// CompareMethods runs the method-pair rule battery; constructors flow
// through here too, skipping the return-type and final checks that do not
// apply to them.
func (c *CompatibilityCheck) CompareMethods(old, new *model.Method) {
	if !c.checkItem(old, new) {
		return
	}
	om, nm := &old.Modifiers, &new.Modifiers

	if !old.IsConstructor {
		oldVal, oldExplicit := old.ReturnNullness()
		newVal, newExplicit := new.ReturnNullness()
		c.checkNullness(new, new.ReturnType, oldVal, oldExplicit, newVal, newExplicit, false)

		if !returnTypesCompatible(old.ReturnType, new.ReturnType) {
			c.report(report.IssueChangedType, new,
				"%s has changed return type from %s to %s",
				describe(new), typeWithBounds(old.ReturnType), typeWithBounds(new.ReturnType))
		}
	}

	if new.Class.Kind == model.KindAnnotation && old.HasDefault {
		// adding a default where none existed is safe: every existing
		// caller already supplied the value explicitly
		switch {
		case !new.HasDefault:
			c.report(report.IssueChangedValue, new,
				"%s has removed its default value", describe(new))
		case old.DefaultValue != new.DefaultValue:
			c.report(report.IssueChangedValue, new,
				"%s has changed value from %s to %s", describe(new), old.DefaultValue, new.DefaultValue)
		}
	}

	// Interfaces and annotation types vary in whether members are spelled
	// abstract across tooling, so the abstract check only applies inside
	// concrete containers.
	if !new.Class.IsInterfaceLike() && !om.Abstract && nm.Abstract {
		c.report(report.IssueChangedAbstract, new,
			"%s has changed 'abstract' qualifier", describe(new))
	}

	if om.Default && !nm.Default && nm.Abstract {
		c.report(report.IssueChangedDefault, new,
			"%s has changed 'default' qualifier to 'abstract'", describe(new))
	}

	if om.Native != nm.Native {
		c.report(report.IssueChangedNative, new,
			"%s has changed 'native' qualifier", describe(new))
	}

	if !old.IsConstructor {
		if !om.Final && nm.Final {
			if old.Class.Modifiers.Final || !old.Class.HasAccessibleConstructor() {
				c.report(report.IssueAddedFinalUninstantiable, new,
					"%s has added 'final' qualifier but containing %s could not be subclassed",
					describe(new), old.Class.Describe())
			} else {
				c.report(report.IssueAddedFinal, new,
					"%s has added 'final' qualifier", describe(new))
			}
		}
		if om.Final && !nm.Final {
			// strict policy: technically binary-compatible, but it invites
			// fragile overriding
			c.report(report.IssueRemovedFinal, new,
				"%s has removed 'final' qualifier", describe(new))
		}
	}

	if om.Static != nm.Static {
		c.report(report.IssueChangedStatic, new,
			"%s has changed 'static' qualifier", describe(new))
	}

	c.checkVisibility(old, new)
	c.checkThrows(old, new)
	c.checkReified(old, new)

	limit := len(old.Parameters)
	if len(new.Parameters) < limit {
		limit = len(new.Parameters)
	}
	for i := 0; i < limit; i++ {
		c.compareParameters(old.Parameters[i], new.Parameters[i])
	}
}

// checkThrows flags exceptions that dropped out of or joined the throws
// list. The no-argument finalize override is exempt in both directions:
// its throws list is notoriously unstable across versions. Added throws
// are also excused on compiler-synthesized enum methods, whose exception
// lists are missing from historical signature files.
func (c *CompatibilityCheck) checkThrows(old, new *model.Method) {
	if old.Name == "finalize" && len(old.Parameters) == 0 {
		return
	}
	for _, exc := range old.SortedThrows() {
		if !new.DeclaresThrow(exc) {
			c.report(report.IssueChangedThrows, new,
				"%s no longer throws exception %s", describe(new), exc)
		}
	}
	for _, exc := range new.SortedThrows() {
		if !old.DeclaresThrow(exc) {
			if old.IsEnumSynthesized() && len(old.Throws) == 0 {
				continue
			}
			c.report(report.IssueChangedThrows, new,
				"%s added thrown exception %s", describe(new), exc)
		}
	}
}

// checkReified flags a type parameter becoming reified on an inline
// method: calling conventions change for existing compiled callers.
func (c *CompatibilityCheck) checkReified(old, new *model.Method) {
	if !old.Modifiers.Inline && !new.Modifiers.Inline {
		return
	}
	for i, oldParam := range old.TypeParams {
		if i >= len(new.TypeParams) {
			break
		}
		newParam := new.TypeParams[i]
		if !oldParam.Reified && newParam.Reified {
			c.report(report.IssueAddedReified, new,
				"%s made type parameter %s reified: incompatible change", describe(new), newParam.Name)
		}
	}
}

func (c *CompatibilityCheck) compareParameters(old, new *model.Parameter) {
	if !c.checkItem(old, new) {
		return
	}

	oldVal, oldExplicit := old.Nullness()
	newVal, newExplicit := new.Nullness()
	c.checkNullness(new, new.Type, oldVal, oldExplicit, newVal, newExplicit, true)

	if old.Name != "" {
		switch {
		case new.Name == "":
			c.report(report.IssueParameterNameChange, new,
				"Attempted to remove parameter name from %s", new.Describe())
		case new.Name != old.Name:
			c.report(report.IssueParameterNameChange, new,
				"Attempted to change parameter name from %s to %s in %s",
				old.Name, new.Name, new.Method.Describe())
		}
	}

	if old.HasDefault && !new.HasDefault {
		c.report(report.IssueDefaultValueChange, new,
			"Attempted to remove default value from %s", new.Describe())
	}

	if old.IsVararg && !new.IsVararg {
		// array -> vararg stays silent; the call sites keep compiling
		c.report(report.IssueVarargRemoval, new,
			"Changing from varargs to array is an incompatible change: %s", new.Describe())
	}
}

// returnTypesCompatible implements the return-type rule: exact equality,
// arrays with recursively compatible components, type variables with
// identical bound sets, or a concrete type widening into a variable whose
// bounds include it.
func returnTypesCompatible(old, new *model.Type) bool {
	if old.Equals(new) {
		return true
	}
	if old == nil || new == nil {
		return false
	}
	if old.Kind == model.TypeArray && new.Kind == model.TypeArray {
		return returnTypesCompatible(old.Component, new.Component)
	}
	if old.Kind == model.TypeVariable && new.Kind == model.TypeVariable {
		return equalBounds(old.BoundErasures(), new.BoundErasures())
	}
	if new.Kind == model.TypeVariable {
		erased := old.Erasure()
		for _, bound := range new.BoundErasures() {
			if bound == erased {
				return true
			}
		}
	}
	return false
}

func equalBounds(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// typeWithBounds spells out a variable's bound set so the finding explains
// what the variable can stand for.
func typeWithBounds(t *model.Type) string {
	if t == nil {
		return "void"
	}
	if t.Kind == model.TypeVariable && t.Variable != nil && len(t.Variable.Bounds) > 0 {
		bounds := make([]string, len(t.Variable.Bounds))
		for i, b := range t.Variable.Bounds {
			bounds[i] = b.Text
		}
		return t.Text + " (extends " + strings.Join(bounds, " & ") + ")"
	}
	return t.Text
}
