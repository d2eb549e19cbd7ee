package compat

import (
	"sigcheck/internal/model"
	"sigcheck/internal/report"
)

// CompareFields runs the field-pair rule battery.
func (c *CompatibilityCheck) CompareFields(old, new *model.Field) {
	if !c.checkItem(old, new) {
		return
	}
	om, nm := &old.Modifiers, &new.Modifiers

	if !old.Type.Equals(new.Type) {
		c.report(report.IssueChangedType, new,
			"%s has changed type from %s to %s", describe(new), old.Type, new.Type)
	}

	if !old.IsEnumConstant {
		c.checkConstantValue(old, new)
	}

	c.checkVisibility(old, new)

	if om.Static != nm.Static {
		c.report(report.IssueChangedStatic, new,
			"%s has changed 'static' qualifier", describe(new))
	}
	if !om.Final && nm.Final {
		c.report(report.IssueAddedFinal, new,
			"%s has added 'final' qualifier", describe(new))
	}
	// removing final only matters on static compile-time constants, whose
	// values compilers inline into callers
	if om.Final && !nm.Final && om.Static && old.IsCompileTimeConstant() {
		c.report(report.IssueRemovedFinal, new,
			"%s has removed 'final' qualifier", describe(new))
	}
	if om.Volatile != nm.Volatile {
		c.report(report.IssueChangedVolatile, new,
			"%s has changed 'volatile' qualifier", describe(new))
	}
}

func (c *CompatibilityCheck) checkConstantValue(old, new *model.Field) {
	ov, nv := old.ConstantValue, new.ConstantValue
	switch {
	case ov == nil && nv == nil:
	case ov == nil:
		c.report(report.IssueChangedValue, new,
			"%s has changed value to %s; it was not a compile-time constant before", describe(new), *nv)
	case nv == nil:
		c.report(report.IssueChangedValue, new,
			"%s has removed its compile-time constant value %s", describe(new), *ov)
	case *ov != *nv:
		c.report(report.IssueChangedValue, new,
			"%s has changed value from %s to %s", describe(new), *ov, *nv)
	}
}

// CompareProperties applies the kind-independent checks plus type and
// visibility; properties carry no further dimensions in the model.
func (c *CompatibilityCheck) CompareProperties(old, new *model.Property) {
	if !c.checkItem(old, new) {
		return
	}
	if !old.Type.Equals(new.Type) {
		c.report(report.IssueChangedType, new,
			"%s has changed type from %s to %s", describe(new), old.Type, new.Type)
	}
	c.checkVisibility(old, new)
}
