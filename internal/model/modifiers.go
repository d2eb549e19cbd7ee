package model

import "strings"

// Visibility is the access level of a declaration. The ordering of the
// constants is the total order used for narrowing checks:
// private < package-private < internal < protected < public.
type Visibility int

const (
	Private Visibility = iota
	PackagePrivate
	Internal
	Protected
	Public
)

// String returns the keyword form used in signature files and messages.
func (v Visibility) String() string {
	switch v {
	case Private:
		return "private"
	case PackagePrivate:
		return "package-private"
	case Internal:
		return "internal"
	case Protected:
		return "protected"
	case Public:
		return "public"
	}
	return "unknown"
}

// NarrowerThan reports whether v grants less access than other.
func (v Visibility) NarrowerThan(other Visibility) bool { return v < other }

// Nullness is a declared or inferred nullability state.
type Nullness int

const (
	// NullnessPlatform means nullability is unknown (platform type).
	NullnessPlatform Nullness = iota
	NullnessNonNull
	NullnessNullable
)

func (n Nullness) String() string {
	switch n {
	case NullnessNonNull:
		return "@NonNull"
	case NullnessNullable:
		return "@Nullable"
	}
	return "platform"
}

// Modifiers is the modifier set attached to every item: a visibility level,
// boolean flags, and the raw annotation names (without the leading @).
type Modifiers struct {
	Visibility Visibility

	Static       bool
	Final        bool
	Abstract     bool
	Sealed       bool
	Fun          bool
	Native       bool
	Synchronized bool
	Volatile     bool
	Transient    bool
	Infix        bool
	Operator     bool
	Inline       bool
	Suspend      bool
	// Default marks interface default methods and defaulted parameters.
	Default bool

	Annotations []string
}

// HasAnnotation reports whether the modifier set carries the named
// annotation, matched on either the simple or the fully qualified name.
func (m *Modifiers) HasAnnotation(name string) bool {
	for _, a := range m.Annotations {
		if a == name || strings.HasSuffix(a, "."+name) {
			return true
		}
	}
	return false
}

// ExplicitNullness returns the nullness declared through annotations and
// whether any nullability annotation is present at all.
func (m *Modifiers) ExplicitNullness() (Nullness, bool) {
	if m.HasAnnotation("NonNull") || m.HasAnnotation("NotNull") {
		return NullnessNonNull, true
	}
	if m.HasAnnotation("Nullable") {
		return NullnessNullable, true
	}
	return NullnessPlatform, false
}

// Equal reports whether two modifier sets are identical, annotations
// included (order-insensitive).
func (m *Modifiers) Equal(other *Modifiers) bool {
	if m.Visibility != other.Visibility ||
		m.Static != other.Static ||
		m.Final != other.Final ||
		m.Abstract != other.Abstract ||
		m.Sealed != other.Sealed ||
		m.Fun != other.Fun ||
		m.Native != other.Native ||
		m.Synchronized != other.Synchronized ||
		m.Volatile != other.Volatile ||
		m.Transient != other.Transient ||
		m.Infix != other.Infix ||
		m.Operator != other.Operator ||
		m.Inline != other.Inline ||
		m.Suspend != other.Suspend ||
		m.Default != other.Default {
		return false
	}
	if len(m.Annotations) != len(other.Annotations) {
		return false
	}
	for _, a := range m.Annotations {
		if !other.HasAnnotation(a) {
			return false
		}
	}
	return true
}
