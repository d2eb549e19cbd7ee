package model

// Field is a field or enum constant declaration.
type Field struct {
	ItemBase
	Name  string
	Class *Class
	Type  *Type
	// ConstantValue is the compile-time constant initializer, nil when the
	// field has none.
	ConstantValue  *string
	IsEnumConstant bool
}

// Describe returns the identifier used in messages.
func (f *Field) Describe() string {
	kind := "field"
	if f.IsEnumConstant {
		kind = "enum constant"
	}
	return kind + " " + f.Class.QualifiedName + "." + f.Name
}

// IsCompileTimeConstant reports whether the field carries a compile-time
// constant value.
func (f *Field) IsCompileTimeConstant() bool { return f.ConstantValue != nil }
