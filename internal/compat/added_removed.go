package compat

import (
	"sigcheck/internal/model"
	"sigcheck/internal/report"
)

// Added/removed items are classified directly by kind; they carry no
// per-dimension rules. Additions are exempted where nothing a caller
// depends on actually appeared; removals are exempted where an inherited
// member still satisfies the old contract.

// AddedPackage records a new package in the surface.
func (c *CompatibilityCheck) AddedPackage(pkg *model.Package) {
	c.report(report.IssueAddedPackage, pkg, "Added %s%s", pkg.Describe(), c.surfaceSuffix())
}

// RemovedPackage records a package that vanished from the surface.
func (c *CompatibilityCheck) RemovedPackage(pkg *model.Package) {
	if !pkg.Emitted() {
		return
	}
	c.report(report.IssueRemovedPackage, pkg, "Removed %s%s", pkg.Describe(), c.surfaceSuffix())
}

// AddedClass records a new class; its members are implied and not
// reported individually.
func (c *CompatibilityCheck) AddedClass(cls *model.Class) {
	c.report(report.IssueAddedClass, cls, "Added %s%s", cls.Describe(), c.surfaceSuffix())
}

// RemovedClass records a removed class. Deprecated classes get the
// distinct lower-urgency classification.
func (c *CompatibilityCheck) RemovedClass(cls *model.Class) {
	if !cls.Emitted() {
		return
	}
	issue := report.IssueRemovedClass
	prefix := "Removed"
	if cls.IsDeprecated() {
		issue = report.IssueRemovedDeprecatedClass
		prefix = "Removed deprecated"
	}
	c.report(issue, cls, "%s %s%s", prefix, cls.Describe(), c.surfaceSuffix())
}

// AddedMethod records a new method or constructor, unless the addition is
// invisible to callers.
func (c *CompatibilityCheck) AddedMethod(m *model.Method) {
	// overriding a member already reachable through a non-removed ancestor
	// outside the checked surface (e.g. Object.toString) adds nothing
	if inherited := c.findInherited(m); inherited != nil &&
		!inherited.Emitted() && !inherited.ItemBase.Removed {
		return
	}
	// existing annotation users are unaffected when the new element has a
	// default
	if m.Class.Kind == model.KindAnnotation && m.HasDefault {
		return
	}
	// nobody external could be forced to implement it
	if m.Modifiers.Abstract && m.Class.Kind == model.KindClass && !m.Class.HasAccessibleConstructor() {
		return
	}
	if m.IsEnumSynthesized() {
		return
	}
	c.report(report.IssueAddedMethod, m, "Added %s%s", m.Describe(), c.surfaceSuffix())
}

// RemovedMethod records a removed method or constructor unless an
// inherited member with the same signature still satisfies the contract
// from a non-hidden, non-removed ancestor in the new model.
func (c *CompatibilityCheck) RemovedMethod(m *model.Method) {
	if !m.Emitted() {
		return
	}
	if newCls := c.newBase.FindClass(m.Class.QualifiedName); newCls != nil {
		if inherited := newCls.FindMethod(m, true, true); inherited != nil &&
			model.ApiVisible(inherited) && !inherited.ItemBase.Removed {
			return
		}
	}
	issue := report.IssueRemovedMethod
	prefix := "Removed"
	if m.IsDeprecated() {
		issue = report.IssueRemovedDeprecatedMethod
		prefix = "Removed deprecated"
	}
	c.report(issue, m, "%s %s%s", prefix, m.Describe(), c.surfaceSuffix())
}

// AddedField records a new field or enum constant.
func (c *CompatibilityCheck) AddedField(f *model.Field) {
	c.report(report.IssueAddedField, f, "Added %s%s", f.Describe(), c.surfaceSuffix())
}

// RemovedField records a removed field unless a superclass still provides
// it to the new model.
func (c *CompatibilityCheck) RemovedField(f *model.Field) {
	if !f.Emitted() {
		return
	}
	if newCls := c.newBase.FindClass(f.Class.QualifiedName); newCls != nil {
		if inherited := newCls.FindField(f.Name, true, true); inherited != nil &&
			model.ApiVisible(inherited) && !inherited.ItemBase.Removed {
			return
		}
	}
	issue := report.IssueRemovedField
	prefix := "Removed"
	if f.IsDeprecated() {
		issue = report.IssueRemovedDeprecatedField
		prefix = "Removed deprecated"
	}
	c.report(issue, f, "%s %s%s", prefix, f.Describe(), c.surfaceSuffix())
}

// findInherited looks the method up in the new class's ancestry, the
// class itself excluded. Resolution goes through the new merged view so
// companion models fill classpath gaps.
func (c *CompatibilityCheck) findInherited(m *model.Method) *model.Method {
	if super := c.resolveNew(m.Class.SuperClass); super != nil {
		if found := super.FindMethod(m, true, true); found != nil {
			return found
		}
	}
	for _, it := range m.Class.Interfaces {
		if iface := c.resolveNew(it); iface != nil {
			if found := iface.FindMethod(m, true, true); found != nil {
				return found
			}
		}
	}
	return nil
}
