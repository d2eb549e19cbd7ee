package model

import (
	"sort"
	"strings"
)

// TypeKind identifies the closed set of type shapes in the model.
type TypeKind int

const (
	TypePrimitive TypeKind = iota
	TypeArray
	TypeClass
	TypeVariable
)

var primitiveNames = map[string]bool{
	"boolean": true,
	"byte":    true,
	"char":    true,
	"double":  true,
	"float":   true,
	"int":     true,
	"long":    true,
	"short":   true,
	"void":    true,
}

// IsPrimitiveName reports whether name is one of the primitive type keywords.
func IsPrimitiveName(name string) bool { return primitiveNames[name] }

// Type is one node of the closed polymorphic type set: a primitive, an
// array, a class reference (possibly parameterized), or a type variable.
// Text holds the canonical source form and is the basis for structural
// equality; Component and Variable refine arrays and variables for the
// recursive compatibility rules.
type Type struct {
	Text string
	Kind TypeKind
	// Component is the element type for arrays, nil otherwise.
	Component *Type
	// Variable is the resolved type parameter for variables, nil otherwise.
	Variable *TypeParameter
}

// String returns the canonical source form.
func (t *Type) String() string { return t.Text }

// Equals reports structural equality of two types. Types parsed from any
// front end share the same canonical text, so text equality is structural
// equality.
func (t *Type) Equals(other *Type) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.Text == other.Text
}

// IsPrimitive reports whether the type is a primitive (void included).
func (t *Type) IsPrimitive() bool { return t != nil && t.Kind == TypePrimitive }

// Erasure returns the type with all generic arguments removed, as used for
// signature identity matching. Variables erase to their first bound, or
// java.lang.Object when unbounded.
func (t *Type) Erasure() string {
	if t == nil {
		return ""
	}
	switch t.Kind {
	case TypeArray:
		return t.Component.Erasure() + "[]"
	case TypeVariable:
		if t.Variable != nil && len(t.Variable.Bounds) > 0 {
			return t.Variable.Bounds[0].Erasure()
		}
		return "java.lang.Object"
	default:
		return StripTypeArguments(t.Text)
	}
}

// BoundErasures returns the sorted erasures of a variable's bound set and
// nil for any other kind.
func (t *Type) BoundErasures() []string {
	if t == nil || t.Kind != TypeVariable || t.Variable == nil {
		return nil
	}
	out := make([]string, 0, len(t.Variable.Bounds))
	for _, b := range t.Variable.Bounds {
		out = append(out, b.Erasure())
	}
	sort.Strings(out)
	return out
}

// TypeParameter is one declared type variable with its bound set.
type TypeParameter struct {
	Name    string
	Bounds  []*Type
	Reified bool
}

// String renders the parameter as it appears in a declaration.
func (p *TypeParameter) String() string {
	var b strings.Builder
	if p.Reified {
		b.WriteString("reified ")
	}
	b.WriteString(p.Name)
	for i, bound := range p.Bounds {
		if i == 0 {
			b.WriteString(" extends ")
		} else {
			b.WriteString(" & ")
		}
		b.WriteString(bound.Text)
	}
	return b.String()
}

// StripTypeArguments removes every top-level and nested <...> group from a
// textual type, yielding its erased spelling.
func StripTypeArguments(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}
	var b strings.Builder
	depth := 0
	for _, r := range s {
		switch r {
		case '<':
			depth++
		case '>':
			depth--
		default:
			if depth == 0 {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}
