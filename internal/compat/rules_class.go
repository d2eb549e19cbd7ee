package compat

import (
	"sort"

	"sigcheck/internal/model"
	"sigcheck/internal/report"
)

// CompareClasses runs the class-pair rule battery. The checks are
// independent and all evaluated, except that a kind change subsumes the
// rest: once the fundamental declaration type changed, the remaining
// class-level findings would be noise.
func (c *CompatibilityCheck) CompareClasses(old, new *model.Class) {
	if !c.checkItem(old, new) {
		return
	}
	om, nm := &old.Modifiers, &new.Modifiers

	if old.Kind != new.Kind {
		c.report(report.IssueChangedClass, new,
			"%s changed %s declaration to %s", describe(old), old.Kind, new.Kind)
		return
	}

	c.checkInterfaces(old, new)

	if !om.Sealed && nm.Sealed {
		c.report(report.IssueAddedSealed, new,
			"Cannot add 'sealed' modifier to %s: incompatible change", new.Describe())
	}
	if old.Kind == model.KindClass && !om.Abstract && nm.Abstract {
		c.report(report.IssueChangedAbstract, new,
			"%s changed 'abstract' qualifier", describe(new))
	}
	if om.Fun && !nm.Fun {
		c.report(report.IssueFunRemoval, new,
			"Cannot remove 'fun' modifier from %s: source incompatible change", new.Describe())
	}

	if !om.Final && nm.Final {
		if old.HasAccessibleConstructor() {
			c.report(report.IssueAddedFinal, new, "%s added 'final' qualifier", describe(new))
		} else {
			// nothing external could ever have subclassed it
			c.report(report.IssueAddedFinalUninstantiable, new,
				"%s added 'final' qualifier but was previously uninstantiable and therefore could not be subclassed",
				describe(new))
		}
	}

	if om.Static != nm.Static {
		uninstantiableInner := old.Containing != nil && !om.Static && !old.HasAccessibleConstructor()
		if !uninstantiableInner {
			c.report(report.IssueChangedStatic, new, "%s changed 'static' qualifier", describe(new))
		}
	}

	c.checkVisibility(old, new)
	c.checkSuperclass(old, new)

	if oldCount := len(old.TypeParams); oldCount > 0 && len(new.TypeParams) != oldCount {
		c.report(report.IssueChangedType, new,
			"%s changed number of type parameters from %d to %d",
			describe(new), oldCount, len(new.TypeParams))
	}

	if om.HasAnnotation("JvmDefaultWithCompatibility") && !nm.HasAnnotation("JvmDefaultWithCompatibility") {
		c.report(report.IssueRemovedJvmDefaultWithCompatibility, new,
			"Cannot remove @JvmDefaultWithCompatibility annotation from %s: incompatible change", new.Describe())
	}
}

// checkInterfaces reports each implemented interface present on exactly
// one side: removals are breaking, additions are surfaced for awareness.
func (c *CompatibilityCheck) checkInterfaces(old, new *model.Class) {
	oldSet := interfaceSet(old)
	newSet := interfaceSet(new)

	for _, name := range sortedKeys(oldSet) {
		if !newSet[name] {
			c.report(report.IssueRemovedInterface, new,
				"%s no longer implements %s", describe(new), name)
		}
	}
	for _, name := range sortedKeys(newSet) {
		if !oldSet[name] {
			c.report(report.IssueAddedInterface, new,
				"Added interface %s to %s", name, describe(new))
		}
	}
}

func interfaceSet(cls *model.Class) map[string]bool {
	set := make(map[string]bool, len(cls.Interfaces))
	for _, it := range cls.Interfaces {
		set[it.Erasure()] = true
	}
	return set
}

// checkSuperclass flags the new class no longer extending the old
// superclass's qualified name anywhere in its chain. The chain is resolved
// through the new-side merged view; an unresolvable link is treated as a
// break since the inherited contract can no longer be shown to hold.
func (c *CompatibilityCheck) checkSuperclass(old, new *model.Class) {
	if old.SuperClass == nil {
		return
	}
	oldSuperName := old.SuperClass.Erasure()
	if c.newExtends(new, oldSuperName) {
		return
	}
	newSuperName := "nothing"
	if new.SuperClass != nil {
		newSuperName = new.SuperClass.Erasure()
	}
	c.report(report.IssueChangedSuperclass, new,
		"%s superclass changed from %s to %s", describe(new), oldSuperName, newSuperName)
}

func (c *CompatibilityCheck) newExtends(cls *model.Class, qualifiedName string) bool {
	seen := map[string]bool{}
	t := cls.SuperClass
	for t != nil {
		name := t.Erasure()
		if name == qualifiedName {
			return true
		}
		if seen[name] {
			return false
		}
		seen[name] = true
		next := c.newBase.FindClass(name)
		if next == nil {
			return false
		}
		t = next.SuperClass
	}
	return false
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
