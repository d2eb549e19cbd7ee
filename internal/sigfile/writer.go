package sigfile

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"sigcheck/internal/model"
)

// Write serializes a codebase in canonical form: header line, packages and
// members sorted, one fixed modifier order. Items hidden from the surface
// are not written. Two codebases with the same API surface serialize to
// identical bytes, which the merger relies on.
func Write(w io.Writer, cb *model.Codebase) error {
	sw := &writer{w: w}
	sw.printf("%s%s\n", headerPrefix, CurrentVersion)
	pkgs := append([]*model.Package(nil), cb.Packages...)
	model.SortPackages(pkgs)
	for _, pkg := range pkgs {
		sw.writePackage(pkg)
	}
	return sw.err
}

// ClassText renders a single class in canonical form, without the snapshot
// header. The merger compares duplicate classes by this text.
func ClassText(cls *model.Class) string {
	var sb strings.Builder
	sw := &writer{w: &sb}
	sw.writeClass(cls)
	return sb.String()
}

type writer struct {
	w   io.Writer
	err error
}

func (sw *writer) printf(format string, args ...interface{}) {
	if sw.err != nil {
		return
	}
	_, sw.err = fmt.Fprintf(sw.w, format, args...)
}

func (sw *writer) writePackage(pkg *model.Package) {
	sw.printf("package %s {\n", pkg.Name)
	classes := append([]*model.Class(nil), pkg.Classes...)
	model.SortClasses(classes)
	first := true
	for _, cls := range classes {
		if !model.Emitted(cls) {
			continue
		}
		if !first {
			sw.printf("\n")
		}
		first = false
		sw.writeClassIn(cls, pkg.Name)
	}
	sw.printf("}\n\n")
}

func (sw *writer) writeClass(cls *model.Class) {
	pkg := ""
	if dot := strings.LastIndexByte(cls.QualifiedName, '.'); dot >= 0 {
		pkg = cls.QualifiedName[:dot]
	}
	sw.writeClassIn(cls, pkg)
}

func (sw *writer) writeClassIn(cls *model.Class, pkgName string) {
	sw.printf("  %s%s %s", modifierString(&cls.Modifiers, cls.Deprecation()), classKeyword(cls.Kind), classDeclName(cls, pkgName))
	if cls.SuperClass != nil && !isImplicitSuper(cls) {
		sw.printf(" extends %s", cls.SuperClass.Text)
	}
	if len(cls.Interfaces) > 0 {
		names := make([]string, len(cls.Interfaces))
		for i, t := range cls.Interfaces {
			names[i] = t.Text
		}
		sort.Strings(names)
		kw := "implements"
		if cls.IsInterfaceLike() {
			kw = "extends"
		}
		sw.printf(" %s %s", kw, strings.Join(names, ", "))
	}
	sw.printf(" {\n")

	methods := append([]*model.Method(nil), cls.Methods...)
	model.SortMethods(methods)
	for _, m := range methods {
		if !model.Emitted(m) {
			continue
		}
		sw.writeMethod(m)
	}
	fields := append([]*model.Field(nil), cls.Fields...)
	model.SortFields(fields)
	for _, f := range fields {
		if !model.Emitted(f) {
			continue
		}
		sw.writeField(f)
	}
	props := append([]*model.Property(nil), cls.Properties...)
	model.SortProperties(props)
	for _, pr := range props {
		if !model.Emitted(pr) {
			continue
		}
		sw.printf("    property %s%s %s;\n", modifierString(&pr.Modifiers, pr.Deprecation()), pr.Type.Text, pr.Name)
	}
	sw.printf("  }\n")
}

func (sw *writer) writeMethod(m *model.Method) {
	kw := "method"
	if m.IsConstructor {
		kw = "ctor"
	}
	sw.printf("    %s %s", kw, modifierString(&m.Modifiers, m.Deprecation()))
	if len(m.TypeParams) > 0 {
		sw.printf("%s ", typeParamString(m.TypeParams))
	}
	if m.ReturnType != nil {
		sw.printf("%s ", m.ReturnType.Text)
	}
	sw.printf("%s(", m.Name)
	for i, p := range m.Parameters {
		if i > 0 {
			sw.printf(", ")
		}
		sw.printf("%s", parameterString(p))
	}
	sw.printf(")")
	if len(m.Throws) > 0 {
		sw.printf(" throws %s", strings.Join(m.SortedThrows(), ", "))
	}
	if m.HasDefault {
		sw.printf(" default %s", m.DefaultValue)
	}
	sw.printf(";\n")
}

func (sw *writer) writeField(f *model.Field) {
	kw := "field"
	if f.IsEnumConstant {
		kw = "enum_constant"
	}
	sw.printf("    %s %s%s %s", kw, modifierString(&f.Modifiers, f.Deprecation()), f.Type.Text, f.Name)
	if f.ConstantValue != nil {
		sw.printf(" = %s", *f.ConstantValue)
	}
	sw.printf(";\n")
}

func parameterString(p *model.Parameter) string {
	var sb strings.Builder
	for _, a := range sortedAnnotations(p.Modifiers.Annotations) {
		sb.WriteString("@")
		sb.WriteString(a)
		sb.WriteString(" ")
	}
	if p.HasDefault {
		sb.WriteString("optional ")
	}
	sb.WriteString(p.Type.Text)
	if p.IsVararg {
		sb.WriteString("...")
	}
	if p.Name != "" {
		sb.WriteString(" ")
		sb.WriteString(p.Name)
	}
	return sb.String()
}

// modifierString renders annotations and keyword modifiers in one fixed
// order, each followed by a space.
func modifierString(m *model.Modifiers, dep model.Deprecation) string {
	var sb strings.Builder
	for _, a := range sortedAnnotations(m.Annotations) {
		sb.WriteString("@")
		sb.WriteString(a)
		sb.WriteString(" ")
	}
	switch m.Visibility {
	case model.Public:
		sb.WriteString("public ")
	case model.Protected:
		sb.WriteString("protected ")
	case model.Internal:
		sb.WriteString("internal ")
	case model.Private:
		sb.WriteString("private ")
	}
	if dep == model.ExplicitlyDeprecated {
		sb.WriteString("deprecated ")
	}
	for _, kw := range []struct {
		set  bool
		name string
	}{
		{m.Abstract, "abstract"},
		{m.Default, "default"},
		{m.Static, "static"},
		{m.Final, "final"},
		{m.Sealed, "sealed"},
		{m.Fun, "fun"},
		{m.Transient, "transient"},
		{m.Volatile, "volatile"},
		{m.Synchronized, "synchronized"},
		{m.Native, "native"},
		{m.Operator, "operator"},
		{m.Infix, "infix"},
		{m.Inline, "inline"},
		{m.Suspend, "suspend"},
	} {
		if kw.set {
			sb.WriteString(kw.name)
			sb.WriteString(" ")
		}
	}
	return sb.String()
}

func sortedAnnotations(anns []string) []string {
	if len(anns) == 0 {
		return nil
	}
	out := append([]string(nil), anns...)
	sort.Strings(out)
	return out
}

func classKeyword(kind model.ClassKind) string {
	switch kind {
	case model.KindInterface:
		return "interface"
	case model.KindEnum:
		return "enum"
	case model.KindAnnotation:
		return "@interface"
	default:
		return "class"
	}
}

// classDeclName is the class name relative to its package, with type
// parameters attached. Nested classes keep their dotted form.
func classDeclName(cls *model.Class, pkgName string) string {
	name := strings.TrimPrefix(cls.QualifiedName, pkgName+".")
	if len(cls.TypeParams) > 0 {
		name += typeParamString(cls.TypeParams)
	}
	return name
}

func typeParamString(params []*model.TypeParameter) string {
	var sb strings.Builder
	sb.WriteString("<")
	for i, tp := range params {
		if i > 0 {
			sb.WriteString(", ")
		}
		if tp.Reified {
			sb.WriteString("reified ")
		}
		sb.WriteString(tp.Name)
		if len(tp.Bounds) > 0 {
			sb.WriteString(" extends ")
			for j, b := range tp.Bounds {
				if j > 0 {
					sb.WriteString(" & ")
				}
				sb.WriteString(b.Text)
			}
		}
	}
	sb.WriteString(">")
	return sb.String()
}

// isImplicitSuper suppresses superclasses that the format leaves implicit.
func isImplicitSuper(cls *model.Class) bool {
	switch cls.SuperClass.Text {
	case "java.lang.Object":
		return cls.Kind == model.KindClass
	case "java.lang.Enum", "java.lang.Enum<" + cls.QualifiedName + ">":
		return cls.Kind == model.KindEnum
	}
	return false
}
