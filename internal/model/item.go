package model

import "fmt"

// Deprecation describes how an item's deprecation was established.
type Deprecation int

const (
	// NotDeprecated means the item carries no deprecation marker.
	NotDeprecated Deprecation = iota
	// ImplicitlyDeprecated means deprecation was inherited from a container.
	ImplicitlyDeprecated
	// ExplicitlyDeprecated means the item itself is annotated deprecated.
	ExplicitlyDeprecated
)

// Location identifies where a declaration came from. File may be empty for
// synthesized items, in which case Describe output is the only handle.
type Location struct {
	File string
	Line int
}

// String renders the location as file:line, or a placeholder when unknown.
func (l Location) String() string {
	if l.File == "" {
		return "<unknown>"
	}
	if l.Line <= 0 {
		return l.File
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// Item is the common surface of every declaration node in the API model.
// Implemented by Package, Class, Method, Field, Parameter and Property.
type Item interface {
	// Describe returns the human identifier used in finding messages and
	// baseline entries, e.g. "method test.pkg.Foo.bar(int)".
	Describe() string

	// Location returns where the item was declared.
	Location() Location

	// Mods returns the item's modifier set. Never nil.
	Mods() *Modifiers

	// Deprecation returns the item's deprecation state.
	Deprecation() Deprecation

	// Emitted reports whether the item is part of the checked API surface.
	Emitted() bool

	// CompatSuppressed reports whether the item is explicitly excluded from
	// compatibility checking regardless of other flags.
	CompatSuppressed() bool
}

// ItemBase carries the attributes shared by every declaration node.
// It is embedded by the concrete item types.
type ItemBase struct {
	Modifiers Modifiers
	Deprecated Deprecation
	// Suppressed marks the item compatibility-suppressed: invisible to the
	// compatibility engine, not merely downgraded.
	Suppressed bool
	// Emit marks the item as part of the checked surface. Reference-only
	// entries (e.g. classpath stubs) have Emit unset.
	Emit bool
	// Removed marks an item that belongs to the removed-API bookkeeping
	// surface rather than the live API.
	Removed bool
	// FromClasspath marks items loaded for reference resolution rather than
	// declared in the snapshot under test.
	FromClasspath bool
	Loc Location
}

// Mods returns the item's modifier set.
func (b *ItemBase) Mods() *Modifiers { return &b.Modifiers }

// Location returns where the item was declared.
func (b *ItemBase) Location() Location { return b.Loc }

// Deprecation returns the item's deprecation state.
func (b *ItemBase) Deprecation() Deprecation { return b.Deprecated }

// Emitted reports whether the item is part of the checked surface.
func (b *ItemBase) Emitted() bool { return b.Emit }

// CompatSuppressed reports whether the item is compatibility-suppressed.
func (b *ItemBase) CompatSuppressed() bool { return b.Suppressed }

// IsDeprecated reports whether the item is deprecated at all, implicitly
// or explicitly.
func (b *ItemBase) IsDeprecated() bool { return b.Deprecated != NotDeprecated }
