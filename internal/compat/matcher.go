package compat

import (
	"sigcheck/internal/model"
)

// Visitor receives the correspondence stream the matcher produces: one
// Compare call per matched (old, new) pair, one Added/Removed call per
// unpaired item. Dispatch is closed over the fixed item kind set.
type Visitor interface {
	ComparePackages(old, new *model.Package)
	CompareClasses(old, new *model.Class)
	CompareMethods(old, new *model.Method)
	CompareFields(old, new *model.Field)
	CompareProperties(old, new *model.Property)

	AddedPackage(pkg *model.Package)
	RemovedPackage(pkg *model.Package)
	AddedClass(cls *model.Class)
	RemovedClass(cls *model.Class)
	AddedMethod(method *model.Method)
	RemovedMethod(method *model.Method)
	AddedField(field *model.Field)
	RemovedField(field *model.Field)
}

// CompareCodebases walks two models in lock-step and reports matched and
// unpaired items to the visitor. Each tree level is a merge-join over two
// sequences in the same canonical sort order: equal keys are a matched
// pair, a smaller old key is a removal, a smaller new key is an addition.
//
// Both sides are merged views, so a container present only in a companion
// (gap-filling) codebase is still resolved and visited instead of
// producing spurious unpaired results. Items failing the inclusion filter
// are skipped from every stream. Neither model is ever mutated.
func CompareCodebases(v Visitor, old, new *model.MergedCodebase, filter model.Predicate) {
	if filter == nil {
		filter = model.ApiVisible
	}
	oldPkgs := visiblePackages(old, filter)
	newPkgs := visiblePackages(new, filter)

	i, j := 0, 0
	for i < len(oldPkgs) || j < len(newPkgs) {
		switch cmp := comparePackageCursors(oldPkgs, i, newPkgs, j); {
		case cmp == 0:
			v.ComparePackages(oldPkgs[i], newPkgs[j])
			compareClasses(v, old, new, oldPkgs[i], newPkgs[j], filter)
			i++
			j++
		case cmp < 0:
			v.RemovedPackage(oldPkgs[i])
			i++
		default:
			v.AddedPackage(newPkgs[j])
			j++
		}
	}
}

func comparePackageCursors(oldPkgs []*model.Package, i int, newPkgs []*model.Package, j int) int {
	switch {
	case i >= len(oldPkgs):
		return 1
	case j >= len(newPkgs):
		return -1
	case oldPkgs[i].Name == newPkgs[j].Name:
		return 0
	case oldPkgs[i].Name < newPkgs[j].Name:
		return -1
	}
	return 1
}

// visiblePackages resolves the merged package list of one side, filtered
// and in traversal order.
func visiblePackages(base *model.MergedCodebase, filter model.Predicate) []*model.Package {
	var pkgs []*model.Package
	for _, name := range base.PackageNames() {
		pkg := base.FindPackage(name)
		if pkg != nil && filter(pkg) {
			pkgs = append(pkgs, pkg)
		}
	}
	return pkgs
}

func compareClasses(v Visitor, oldBase, newBase *model.MergedCodebase, oldPkg, newPkg *model.Package, filter model.Predicate) {
	oldClasses := visibleClasses(oldBase, oldPkg.Name, filter)
	newClasses := visibleClasses(newBase, newPkg.Name, filter)

	i, j := 0, 0
	for i < len(oldClasses) || j < len(newClasses) {
		switch cmp := compareClassCursors(oldClasses, i, newClasses, j); {
		case cmp == 0:
			v.CompareClasses(oldClasses[i], newClasses[j])
			compareMembers(v, oldClasses[i], newClasses[j], filter)
			i++
			j++
		case cmp < 0:
			v.RemovedClass(oldClasses[i])
			i++
		default:
			v.AddedClass(newClasses[j])
			j++
		}
	}
}

func compareClassCursors(oldClasses []*model.Class, i int, newClasses []*model.Class, j int) int {
	switch {
	case i >= len(oldClasses):
		return 1
	case j >= len(newClasses):
		return -1
	}
	a, b := oldClasses[i], newClasses[j]
	if a.SimpleName != b.SimpleName {
		if a.SimpleName < b.SimpleName {
			return -1
		}
		return 1
	}
	switch {
	case a.QualifiedName == b.QualifiedName:
		return 0
	case a.QualifiedName < b.QualifiedName:
		return -1
	}
	return 1
}

// visibleClasses resolves one side's classes for a package through the
// merged view, filtered and sorted.
func visibleClasses(base *model.MergedCodebase, packageName string, filter model.Predicate) []*model.Class {
	var classes []*model.Class
	for _, qname := range base.ClassNames(packageName) {
		cls := base.FindClass(qname)
		if cls != nil && filter(cls) {
			classes = append(classes, cls)
		}
	}
	model.SortClasses(classes)
	return classes
}

func compareMembers(v Visitor, oldCls, newCls *model.Class, filter model.Predicate) {
	compareMethodLists(v, filteredMethods(oldCls, filter), filteredMethods(newCls, filter))
	compareFieldLists(v, filteredFields(oldCls, filter), filteredFields(newCls, filter))
	comparePropertyLists(v, filteredProperties(oldCls, filter), filteredProperties(newCls, filter))
}

// filteredMethods returns the class's constructors and methods in one
// sorted stream; constructors are visited as methods.
func filteredMethods(cls *model.Class, filter model.Predicate) []*model.Method {
	var methods []*model.Method
	for _, m := range cls.Methods {
		if filter(m) {
			methods = append(methods, m)
		}
	}
	model.SortMethods(methods)
	return methods
}

func filteredFields(cls *model.Class, filter model.Predicate) []*model.Field {
	var fields []*model.Field
	for _, f := range cls.Fields {
		if filter(f) {
			fields = append(fields, f)
		}
	}
	model.SortFields(fields)
	return fields
}

func filteredProperties(cls *model.Class, filter model.Predicate) []*model.Property {
	var props []*model.Property
	for _, p := range cls.Properties {
		if filter(p) {
			props = append(props, p)
		}
	}
	model.SortProperties(props)
	return props
}

func compareMethodLists(v Visitor, oldMethods, newMethods []*model.Method) {
	i, j := 0, 0
	for i < len(oldMethods) || j < len(newMethods) {
		var cmp int
		switch {
		case i >= len(oldMethods):
			cmp = 1
		case j >= len(newMethods):
			cmp = -1
		default:
			cmp = model.CompareMethods(oldMethods[i], newMethods[j])
		}
		switch {
		case cmp == 0:
			v.CompareMethods(oldMethods[i], newMethods[j])
			i++
			j++
		case cmp < 0:
			v.RemovedMethod(oldMethods[i])
			i++
		default:
			v.AddedMethod(newMethods[j])
			j++
		}
	}
}

func compareFieldLists(v Visitor, oldFields, newFields []*model.Field) {
	i, j := 0, 0
	for i < len(oldFields) || j < len(newFields) {
		var cmp int
		switch {
		case i >= len(oldFields):
			cmp = 1
		case j >= len(newFields):
			cmp = -1
		default:
			cmp = compareFieldKeys(oldFields[i], newFields[j])
		}
		switch {
		case cmp == 0:
			v.CompareFields(oldFields[i], newFields[j])
			i++
			j++
		case cmp < 0:
			v.RemovedField(oldFields[i])
			i++
		default:
			v.AddedField(newFields[j])
			j++
		}
	}
}

func compareFieldKeys(a, b *model.Field) int {
	if a.IsEnumConstant != b.IsEnumConstant {
		if a.IsEnumConstant {
			return -1
		}
		return 1
	}
	switch {
	case a.Name == b.Name:
		return 0
	case a.Name < b.Name:
		return -1
	}
	return 1
}

func comparePropertyLists(v Visitor, oldProps, newProps []*model.Property) {
	i, j := 0, 0
	for i < len(oldProps) || j < len(newProps) {
		var cmp int
		switch {
		case i >= len(oldProps):
			cmp = 1
		case j >= len(newProps):
			cmp = -1
		case oldProps[i].Name == newProps[j].Name:
			cmp = 0
		case oldProps[i].Name < newProps[j].Name:
			cmp = -1
		default:
			cmp = 1
		}
		switch {
		case cmp == 0:
			v.CompareProperties(oldProps[i], newProps[j])
			i++
			j++
		case cmp < 0:
			// property removals surface through the owning class's methods
			i++
		default:
			j++
		}
	}
}
