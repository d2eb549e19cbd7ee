package model

import (
	"sort"
	"strings"
)

// Method is a method or constructor declaration. Constructors are plain
// methods with IsConstructor set and no return type; the comparison engine
// visits them in the same stream as methods.
type Method struct {
	ItemBase
	Name          string
	Class         *Class
	IsConstructor bool
	TypeParams    []*TypeParameter
	// ReturnType is nil for constructors.
	ReturnType *Type
	Parameters []*Parameter
	// Throws holds the declared thrown exception types as qualified names,
	// in declaration order.
	Throws []string
	// DefaultValue is the default of an annotation-type element; HasDefault
	// distinguishes an empty default from no default at all.
	DefaultValue string
	HasDefault   bool
	// Synthetic marks compiler-generated members such as the enum values()
	// and valueOf(String) methods.
	Synthetic bool
}

// Describe returns the identifier used in messages.
func (m *Method) Describe() string {
	kind := "method"
	if m.IsConstructor {
		kind = "constructor"
	}
	return kind + " " + m.Class.QualifiedName + "." + m.Signature()
}

// Signature returns the method name with its parameter types as declared.
func (m *Method) Signature() string {
	var b strings.Builder
	b.WriteString(m.Name)
	b.WriteByte('(')
	for i, p := range m.Parameters {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Type.Text)
		if p.IsVararg {
			b.WriteString("...")
		}
	}
	b.WriteByte(')')
	return b.String()
}

// ErasedSignature returns the identity key used for matching: the method
// name plus the erasures of its parameter types. Varargs erase to arrays so
// that foo(T...) and foo(T[]) occupy the same slot across versions.
func (m *Method) ErasedSignature() string {
	var b strings.Builder
	b.WriteString(m.Name)
	b.WriteByte('(')
	for i, p := range m.Parameters {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(p.Type.Erasure())
		if p.IsVararg {
			b.WriteString("[]")
		}
	}
	b.WriteByte(')')
	return b.String()
}

// SortedThrows returns the throws list in a stable order for messages.
func (m *Method) SortedThrows() []string {
	out := append([]string(nil), m.Throws...)
	sort.Strings(out)
	return out
}

// DeclaresThrow reports whether the throws list names the exception.
func (m *Method) DeclaresThrow(qualifiedName string) bool {
	for _, t := range m.Throws {
		if t == qualifiedName {
			return true
		}
	}
	return false
}

// IsEnumSynthesized reports whether the method is one of the methods the
// compiler generates on every enum, whose signature-file history is known
// to be unreliable.
func (m *Method) IsEnumSynthesized() bool {
	if m.Class == nil || m.Class.Kind != KindEnum {
		return false
	}
	if m.Synthetic {
		return true
	}
	switch m.ErasedSignature() {
	case "values()", "valueOf(java.lang.String)":
		return true
	}
	return false
}

// ReturnNullness returns the method's return-position nullability and
// whether it was declared explicitly.
func (m *Method) ReturnNullness() (Nullness, bool) {
	if n, explicit := m.Modifiers.ExplicitNullness(); explicit {
		return n, true
	}
	if m.ReturnType.IsPrimitive() {
		return NullnessNonNull, false
	}
	return NullnessPlatform, false
}
