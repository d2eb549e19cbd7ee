package model

// Package is a container of classes, identified by its dotted name.
type Package struct {
	ItemBase
	Name    string
	Classes []*Class
}

// Describe returns the identifier used in messages.
func (p *Package) Describe() string { return "package " + p.Name }

// FindClass returns the directly contained class with the given qualified
// name, or nil.
func (p *Package) FindClass(qualifiedName string) *Class {
	for _, c := range p.Classes {
		if c.QualifiedName == qualifiedName {
			return c
		}
	}
	return nil
}
