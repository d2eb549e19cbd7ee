package model

// ClassKind is the fundamental declaration type of a class item.
type ClassKind int

const (
	KindClass ClassKind = iota
	KindInterface
	KindEnum
	KindAnnotation
)

// String returns the keyword form used in messages and signature files.
func (k ClassKind) String() string {
	switch k {
	case KindInterface:
		return "interface"
	case KindEnum:
		return "enum"
	case KindAnnotation:
		return "annotation"
	}
	return "class"
}

// Class is one class, interface, enum or annotation type declaration.
// The superclass and interface slots hold type references; resolution to
// other Class items goes through the owning codebase so that classpath
// gaps stay visible instead of being silently patched.
type Class struct {
	ItemBase
	QualifiedName string
	SimpleName    string
	Kind          ClassKind
	TypeParams    []*TypeParameter
	// SuperClass is nil only for the root type and for interfaces without
	// an explicit superclass.
	SuperClass *Type
	Interfaces []*Type
	// Containing is the enclosing class for nested classes, nil otherwise.
	Containing *Class
	Methods    []*Method
	Fields     []*Field
	Properties []*Property

	// Codebase is the owning model, set when the codebase is assembled.
	Codebase *Codebase
}

// Describe returns the identifier used in messages.
func (c *Class) Describe() string { return c.Kind.String() + " " + c.QualifiedName }

// IsInterfaceLike reports whether the class is an interface or annotation
// type, whose members follow interface abstractness conventions.
func (c *Class) IsInterfaceLike() bool {
	return c.Kind == KindInterface || c.Kind == KindAnnotation
}

// HasAccessibleConstructor reports whether the class declares at least one
// public or protected constructor, i.e. whether external code could ever
// have instantiated or subclassed it.
func (c *Class) HasAccessibleConstructor() bool {
	for _, m := range c.Methods {
		if m.IsConstructor && m.Modifiers.Visibility >= Protected {
			return true
		}
	}
	return false
}

// FindMethod locates a method with the same name and erased signature as
// template, optionally walking the superclass chain and implemented
// interfaces. Lookups never leave the class's codebase view.
func (c *Class) FindMethod(template *Method, includeSuperclasses, includeInterfaces bool) *Method {
	for _, m := range c.Methods {
		if m.Name == template.Name && m.ErasedSignature() == template.ErasedSignature() {
			return m
		}
	}
	if includeSuperclasses {
		if super := c.resolveSuper(); super != nil {
			if m := super.FindMethod(template, true, includeInterfaces); m != nil {
				return m
			}
		}
	}
	if includeInterfaces {
		for _, it := range c.Interfaces {
			if ic := c.resolve(it); ic != nil {
				if m := ic.FindMethod(template, includeSuperclasses, true); m != nil {
					return m
				}
			}
		}
	}
	return nil
}

// FindField locates a field by name, optionally walking superclasses and
// interfaces.
func (c *Class) FindField(name string, includeSuperclasses, includeInterfaces bool) *Field {
	for _, f := range c.Fields {
		if f.Name == name {
			return f
		}
	}
	if includeSuperclasses {
		if super := c.resolveSuper(); super != nil {
			if f := super.FindField(name, true, includeInterfaces); f != nil {
				return f
			}
		}
	}
	if includeInterfaces {
		for _, it := range c.Interfaces {
			if ic := c.resolve(it); ic != nil {
				if f := ic.FindField(name, includeSuperclasses, true); f != nil {
					return f
				}
			}
		}
	}
	return nil
}

// ExtendsClass reports whether qualifiedName occurs anywhere in the
// superclass chain, the class itself included.
func (c *Class) ExtendsClass(qualifiedName string) bool {
	seen := map[string]bool{}
	for cur := c; cur != nil && !seen[cur.QualifiedName]; cur = cur.resolveSuper() {
		seen[cur.QualifiedName] = true
		if cur.QualifiedName == qualifiedName {
			return true
		}
		if cur.SuperClass != nil && cur.SuperClass.Erasure() == qualifiedName {
			return true
		}
	}
	return false
}

func (c *Class) resolveSuper() *Class {
	if c.SuperClass == nil {
		return nil
	}
	return c.resolve(c.SuperClass)
}

func (c *Class) resolve(t *Type) *Class {
	if t == nil || c.Codebase == nil {
		return nil
	}
	return c.Codebase.FindClass(t.Erasure())
}

// Property is a named accessor pair surfaced as a single member; it
// participates in matching and the kind-independent checks only.
type Property struct {
	ItemBase
	Name  string
	Type  *Type
	Class *Class
}

// Describe returns the identifier used in messages.
func (p *Property) Describe() string {
	return "property " + p.Class.QualifiedName + "." + p.Name
}
