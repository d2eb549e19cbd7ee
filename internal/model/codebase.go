package model

import "sort"

// Codebase is one immutable API model: a set of packages parsed from a
// snapshot or built by a front end. The comparison engine never mutates a
// codebase; it only walks it.
type Codebase struct {
	// Description names the model in findings and errors, typically the
	// snapshot file path or a surface label like "released API".
	Description string
	Packages    []*Package

	classIndex map[string]*Class
}

// NewCodebase assembles a codebase from its packages, wiring back
// references and the class lookup index. Packages and members keep the
// order their producer gave them; the engine sorts its own views.
func NewCodebase(description string, packages []*Package) *Codebase {
	cb := &Codebase{Description: description, Packages: packages}
	cb.classIndex = make(map[string]*Class)
	for _, pkg := range packages {
		for _, cls := range pkg.Classes {
			cb.indexClass(cls)
		}
	}
	return cb
}

func (cb *Codebase) indexClass(cls *Class) {
	cls.Codebase = cb
	cb.classIndex[cls.QualifiedName] = cls
	for _, m := range cls.Methods {
		m.Class = cls
		for _, p := range m.Parameters {
			p.Method = m
		}
	}
	for _, f := range cls.Fields {
		f.Class = cls
	}
	for _, p := range cls.Properties {
		p.Class = cls
	}
}

// FindClass returns the class with the given qualified name, or nil.
func (cb *Codebase) FindClass(qualifiedName string) *Class {
	return cb.classIndex[qualifiedName]
}

// FindPackage returns the package with the given dotted name, or nil.
func (cb *Codebase) FindPackage(name string) *Package {
	for _, p := range cb.Packages {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// Predicate is an inclusion filter over items. Two are in play during a
// comparison: one selecting the emitted/checked surface, one selecting
// what may be referenced from it.
type Predicate func(Item) bool

// Emitted selects items that are part of the checked API surface.
func Emitted(it Item) bool { return it.Emitted() }

// Referenceable selects items that public signatures may point at even if
// they are not themselves checked.
func Referenceable(it Item) bool {
	return it.Emitted() || it.Mods().Visibility >= Protected
}

// ApiVisible is the default surface predicate: public or protected and not
// explicitly hidden from the surface.
func ApiVisible(it Item) bool {
	return it.Mods().Visibility >= Protected && it.Emitted()
}

// MergedCodebase is a read-only overlay over an ordered list of codebases
// that resolves lookups by first match. It exists so a container missing
// from one model but present in a companion model is still visited instead
// of producing spurious added/removed results.
type MergedCodebase struct {
	Codebases []*Codebase
}

// NewMergedCodebase builds an overlay view. The first codebase is the
// primary one; later entries only fill structural gaps.
func NewMergedCodebase(codebases ...*Codebase) *MergedCodebase {
	return &MergedCodebase{Codebases: codebases}
}

// Description names the primary codebase.
func (m *MergedCodebase) Description() string {
	if len(m.Codebases) == 0 {
		return ""
	}
	return m.Codebases[0].Description
}

// FindClass resolves a class by qualified name, first match wins.
func (m *MergedCodebase) FindClass(qualifiedName string) *Class {
	for _, cb := range m.Codebases {
		if c := cb.FindClass(qualifiedName); c != nil {
			return c
		}
	}
	return nil
}

// PackageNames returns the union of package names across the stack, sorted.
func (m *MergedCodebase) PackageNames() []string {
	seen := map[string]bool{}
	var names []string
	for _, cb := range m.Codebases {
		for _, p := range cb.Packages {
			if !seen[p.Name] {
				seen[p.Name] = true
				names = append(names, p.Name)
			}
		}
	}
	sort.Strings(names)
	return names
}

// FindPackage resolves a package by name, first match wins.
func (m *MergedCodebase) FindPackage(name string) *Package {
	for _, cb := range m.Codebases {
		if p := cb.FindPackage(name); p != nil {
			return p
		}
	}
	return nil
}

// ClassNames returns the union of qualified class names declared in the
// named package across the stack.
func (m *MergedCodebase) ClassNames(packageName string) []string {
	seen := map[string]bool{}
	var names []string
	for _, cb := range m.Codebases {
		pkg := cb.FindPackage(packageName)
		if pkg == nil {
			continue
		}
		for _, c := range pkg.Classes {
			if !seen[c.QualifiedName] {
				seen[c.QualifiedName] = true
				names = append(names, c.QualifiedName)
			}
		}
	}
	return names
}
