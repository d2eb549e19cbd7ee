package model

import "sort"

// The comparison traversal and the snapshot writer both depend on one
// canonical ordering per container level; keeping the comparators here
// guarantees the two stay in sync.

// SortPackages sorts packages by qualified name ASC.
func SortPackages(pkgs []*Package) {
	sort.SliceStable(pkgs, func(i, j int) bool { return pkgs[i].Name < pkgs[j].Name })
}

// SortClasses sorts classes by simple name ASC, qualified name ASC as the
// tie-break.
func SortClasses(classes []*Class) {
	sort.SliceStable(classes, func(i, j int) bool {
		if classes[i].SimpleName != classes[j].SimpleName {
			return classes[i].SimpleName < classes[j].SimpleName
		}
		return classes[i].QualifiedName < classes[j].QualifiedName
	})
}

// CompareMethods orders methods by name ASC, then by joined parameter type
// erasures ASC, then by arity ASC. This is the matching key order: two
// methods equal under it are the same declaration across versions.
func CompareMethods(a, b *Method) int {
	if a.Name != b.Name {
		if a.Name < b.Name {
			return -1
		}
		return 1
	}
	ae, be := a.ErasedSignature(), b.ErasedSignature()
	if ae != be {
		if ae < be {
			return -1
		}
		return 1
	}
	switch {
	case len(a.Parameters) < len(b.Parameters):
		return -1
	case len(a.Parameters) > len(b.Parameters):
		return 1
	}
	return 0
}

// SortMethods sorts methods (constructors included) by the matching key.
func SortMethods(methods []*Method) {
	sort.SliceStable(methods, func(i, j int) bool {
		return CompareMethods(methods[i], methods[j]) < 0
	})
}

// SortFields sorts fields with enum constants first, then by name ASC.
func SortFields(fields []*Field) {
	sort.SliceStable(fields, func(i, j int) bool {
		if fields[i].IsEnumConstant != fields[j].IsEnumConstant {
			return fields[i].IsEnumConstant
		}
		return fields[i].Name < fields[j].Name
	})
}

// SortProperties sorts properties by name ASC.
func SortProperties(props []*Property) {
	sort.SliceStable(props, func(i, j int) bool { return props[i].Name < props[j].Name })
}
