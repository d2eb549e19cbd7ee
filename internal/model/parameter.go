package model

import "fmt"

// Parameter is one formal parameter of a method or constructor.
type Parameter struct {
	ItemBase
	// Name is empty when the parameter is unnamed for compatibility
	// purposes (historical snapshots without parameter names).
	Name   string
	Method *Method
	Type   *Type
	// HasDefault marks parameters callers may omit.
	HasDefault bool
	IsVararg   bool
	// Index is the zero-based ordinal position.
	Index int
}

// Describe returns the identifier used in messages.
func (p *Parameter) Describe() string {
	name := p.Name
	if name == "" {
		name = fmt.Sprintf("arg%d", p.Index+1)
	}
	return fmt.Sprintf("parameter %s in %s.%s", name, p.Method.Class.QualifiedName, p.Method.Signature())
}

// Nullness returns the parameter's input-position nullability and whether
// it was declared explicitly.
func (p *Parameter) Nullness() (Nullness, bool) {
	if n, explicit := p.Modifiers.ExplicitNullness(); explicit {
		return n, true
	}
	if p.Type.IsPrimitive() {
		return NullnessNonNull, false
	}
	return NullnessPlatform, false
}
