package model

import (
	"reflect"
	"testing"
)

func classType(text string) *Type { return &Type{Text: text, Kind: TypeClass} }

func TestVisibilityOrdering(t *testing.T) {
	order := []Visibility{Private, PackagePrivate, Internal, Protected, Public}
	for i := 1; i < len(order); i++ {
		if !order[i-1].NarrowerThan(order[i]) {
			t.Errorf("%s should be narrower than %s", order[i-1], order[i])
		}
		if order[i].NarrowerThan(order[i-1]) {
			t.Errorf("%s should not be narrower than %s", order[i], order[i-1])
		}
	}
	if Public.NarrowerThan(Public) {
		t.Error("a visibility is not narrower than itself")
	}
}

func TestTypeErasure(t *testing.T) {
	number := classType("java.lang.Number")
	tests := []struct {
		name string
		typ  *Type
		want string
	}{
		{
			name: "plain class",
			typ:  classType("java.lang.String"),
			want: "java.lang.String",
		},
		{
			name: "generic class",
			typ:  classType("java.util.List<java.lang.String>"),
			want: "java.util.List",
		},
		{
			name: "array",
			typ:  &Type{Text: "int[]", Kind: TypeArray, Component: &Type{Text: "int", Kind: TypePrimitive}},
			want: "int[]",
		},
		{
			name: "unbounded variable",
			typ:  &Type{Text: "T", Kind: TypeVariable, Variable: &TypeParameter{Name: "T"}},
			want: "java.lang.Object",
		},
		{
			name: "bounded variable",
			typ:  &Type{Text: "T", Kind: TypeVariable, Variable: &TypeParameter{Name: "T", Bounds: []*Type{number}}},
			want: "java.lang.Number",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.typ.Erasure(); got != tt.want {
				t.Errorf("Erasure() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErasedSignatureVarargMatchesArray(t *testing.T) {
	intType := &Type{Text: "int", Kind: TypePrimitive}
	intArray := &Type{Text: "int[]", Kind: TypeArray, Component: intType}

	vararg := &Method{Name: "foo", Parameters: []*Parameter{{Type: intType, IsVararg: true}}}
	array := &Method{Name: "foo", Parameters: []*Parameter{{Type: intArray}}}

	if vararg.ErasedSignature() != array.ErasedSignature() {
		t.Errorf("vararg signature %q does not match array signature %q",
			vararg.ErasedSignature(), array.ErasedSignature())
	}
}

func TestSortFieldsEnumConstantsFirst(t *testing.T) {
	fields := []*Field{
		{Name: "zeta"},
		{Name: "BETA", IsEnumConstant: true},
		{Name: "alpha"},
		{Name: "ALPHA", IsEnumConstant: true},
	}
	SortFields(fields)
	got := make([]string, len(fields))
	for i, f := range fields {
		got[i] = f.Name
	}
	want := []string{"ALPHA", "BETA", "alpha", "zeta"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SortFields() order = %v, want %v", got, want)
	}
}

func TestMergedCodebaseFirstMatchWins(t *testing.T) {
	primary := NewCodebase("primary", []*Package{
		{Name: "test.pkg", Classes: []*Class{
			{QualifiedName: "test.pkg.Foo", SimpleName: "Foo"},
		}},
	})
	companion := NewCodebase("companion", []*Package{
		{Name: "test.pkg", Classes: []*Class{
			{QualifiedName: "test.pkg.Foo", SimpleName: "Foo"},
			{QualifiedName: "test.pkg.Bar", SimpleName: "Bar"},
		}},
		{Name: "other.pkg", Classes: []*Class{
			{QualifiedName: "other.pkg.Baz", SimpleName: "Baz"},
		}},
	})
	merged := NewMergedCodebase(primary, companion)

	if got := merged.FindClass("test.pkg.Foo"); got == nil || got.Codebase.Description != "primary" {
		t.Errorf("FindClass(Foo) resolved from %v, want primary", got)
	}
	if got := merged.FindClass("test.pkg.Bar"); got == nil || got.Codebase.Description != "companion" {
		t.Errorf("FindClass(Bar) resolved from %v, want companion", got)
	}
	if merged.FindClass("test.pkg.Missing") != nil {
		t.Error("FindClass invented a class")
	}

	names := merged.PackageNames()
	want := []string{"other.pkg", "test.pkg"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("PackageNames() = %v, want %v", names, want)
	}

	classNames := merged.ClassNames("test.pkg")
	if len(classNames) != 2 {
		t.Errorf("ClassNames(test.pkg) = %v, want Foo and Bar", classNames)
	}
}

func TestFindMethodWalksAncestry(t *testing.T) {
	baseMethod := &Method{Name: "bar", ItemBase: ItemBase{Modifiers: Modifiers{Visibility: Public}}}
	base := &Class{
		QualifiedName: "test.pkg.Base",
		SimpleName:    "Base",
		Methods:       []*Method{baseMethod},
	}
	sub := &Class{
		QualifiedName: "test.pkg.Sub",
		SimpleName:    "Sub",
		SuperClass:    classType("test.pkg.Base"),
	}
	NewCodebase("cb", []*Package{{Name: "test.pkg", Classes: []*Class{base, sub}}})

	template := &Method{Name: "bar"}
	if sub.FindMethod(template, false, false) != nil {
		t.Error("FindMethod found an inherited method without superclass search")
	}
	if got := sub.FindMethod(template, true, false); got != baseMethod {
		t.Errorf("FindMethod(includeSuperclasses) = %v, want the base method", got)
	}
}

func TestSurfacePredicates(t *testing.T) {
	mk := func(v Visibility, emit bool) *Method {
		return &Method{Name: "m", ItemBase: ItemBase{Emit: emit, Modifiers: Modifiers{Visibility: v}}}
	}
	tests := []struct {
		name          string
		item          *Method
		emitted       bool
		referenceable bool
		apiVisible    bool
	}{
		{"emitted public", mk(Public, true), true, true, true},
		{"emitted private", mk(Private, true), true, true, false},
		{"hidden public", mk(Public, false), false, true, false},
		{"hidden internal", mk(Internal, false), false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Emitted(tt.item); got != tt.emitted {
				t.Errorf("Emitted() = %v, want %v", got, tt.emitted)
			}
			if got := Referenceable(tt.item); got != tt.referenceable {
				t.Errorf("Referenceable() = %v, want %v", got, tt.referenceable)
			}
			if got := ApiVisible(tt.item); got != tt.apiVisible {
				t.Errorf("ApiVisible() = %v, want %v", got, tt.apiVisible)
			}
		})
	}
}

func TestDeprecationStates(t *testing.T) {
	var b ItemBase
	if b.IsDeprecated() {
		t.Error("zero value is deprecated")
	}
	b.Deprecated = ImplicitlyDeprecated
	if !b.IsDeprecated() {
		t.Error("implicit deprecation not detected")
	}
}

func TestLocationString(t *testing.T) {
	if got := (Location{}).String(); got != "<unknown>" {
		t.Errorf("zero location = %q", got)
	}
	if got := (Location{File: "api.txt", Line: 12}).String(); got != "api.txt:12" {
		t.Errorf("location = %q", got)
	}
}
