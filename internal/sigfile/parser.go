package sigfile

import (
	"bufio"
	"io"
	"strings"

	sigerr "sigcheck/internal/errors"
	"sigcheck/internal/model"
)

// ParseOptions adjusts how parsed items are flagged.
type ParseOptions struct {
	// Removed marks every parsed item as belonging to the removed-API
	// bookkeeping surface.
	Removed bool
}

// Parse reads one signature snapshot into a codebase. filename is used for
// locations and error reporting only; any structural problem aborts the
// parse with a fatal error carrying file and line.
func Parse(r io.Reader, filename string, opts ParseOptions) (*model.Codebase, error) {
	p := &parser{
		scanner: bufio.NewScanner(r),
		file:    filename,
		opts:    opts,
	}
	return p.parse()
}

type parser struct {
	scanner *bufio.Scanner
	file    string
	line    int
	opts    ParseOptions

	packages []*model.Package
	current  *model.Package
	class    *model.Class
	scope    typeScope
}

func (p *parser) errf(format string, args ...interface{}) error {
	return sigerr.Newf(sigerr.ParseError, format, args...).At(p.file, p.line)
}

func (p *parser) parse() (*model.Codebase, error) {
	if err := p.parseHeader(); err != nil {
		return nil, err
	}
	for p.scanner.Scan() {
		p.line++
		line := strings.TrimSpace(stripLineComment(p.scanner.Text()))
		if line == "" {
			continue
		}
		if err := p.parseLine(line); err != nil {
			return nil, err
		}
	}
	if err := p.scanner.Err(); err != nil {
		return nil, sigerr.Wrap(sigerr.ParseError, "reading snapshot", err).At(p.file, p.line)
	}
	if p.class != nil || p.current != nil {
		return nil, p.errf("unexpected end of file: unclosed block")
	}
	return model.NewCodebase(p.file, p.packages), nil
}

func (p *parser) parseHeader() error {
	for p.scanner.Scan() {
		p.line++
		raw := strings.TrimSpace(p.scanner.Text())
		if raw == "" {
			continue
		}
		if !strings.HasPrefix(raw, headerPrefix) {
			return sigerr.Newf(sigerr.UnsupportedFormat,
				"missing signature format header (want %q)", headerPrefix+CurrentVersion).At(p.file, p.line)
		}
		version := strings.TrimSpace(strings.TrimPrefix(raw, headerPrefix))
		if !supportedVersions[version] {
			return sigerr.Newf(sigerr.UnsupportedFormat,
				"unsupported signature format version %q", version).At(p.file, p.line)
		}
		return nil
	}
	return sigerr.New(sigerr.UnsupportedFormat, "empty signature file").At(p.file, p.line)
}

func (p *parser) parseLine(line string) error {
	switch {
	case line == "}":
		return p.closeBlock()
	case p.current == nil:
		return p.parsePackage(line)
	case p.class == nil:
		return p.parseClass(line)
	default:
		return p.parseMember(line)
	}
}

func (p *parser) closeBlock() error {
	switch {
	case p.class != nil:
		p.class = nil
		p.scope = nil
	case p.current != nil:
		p.packages = append(p.packages, p.current)
		p.current = nil
	default:
		return p.errf("unmatched '}'")
	}
	return nil
}

func (p *parser) parsePackage(line string) error {
	if !strings.HasPrefix(line, "package ") || !strings.HasSuffix(line, "{") {
		return p.errf("expected 'package <name> {', got %q", line)
	}
	name := strings.TrimSpace(line[len("package ") : len(line)-1])
	if name == "" {
		return p.errf("package with empty name")
	}
	p.current = &model.Package{Name: name}
	p.applyBase(&p.current.ItemBase, model.Modifiers{Visibility: model.Public}, false)
	return nil
}

func (p *parser) parseClass(line string) error {
	if !strings.HasSuffix(line, "{") {
		return p.errf("expected a class declaration ending in '{', got %q", line)
	}
	decl := strings.TrimSpace(line[:len(line)-1])

	mods, deprecated, rest := p.parseModifiers(decl)

	kind := model.KindClass
	switch {
	case strings.HasPrefix(rest, "class "):
		rest = rest[len("class "):]
	case strings.HasPrefix(rest, "interface "):
		kind = model.KindInterface
		rest = rest[len("interface "):]
	case strings.HasPrefix(rest, "enum "):
		kind = model.KindEnum
		rest = rest[len("enum "):]
	case strings.HasPrefix(rest, "@interface "):
		kind = model.KindAnnotation
		rest = rest[len("@interface "):]
	case strings.HasPrefix(rest, "annotation "):
		kind = model.KindAnnotation
		rest = rest[len("annotation "):]
	default:
		return p.errf("expected class, interface, enum or @interface, got %q", rest)
	}
	rest = strings.TrimSpace(rest)

	// name, optionally with an attached type parameter group
	nameEnd := lastTopLevelSpaceBoundary(rest)
	name := rest
	tail := ""
	if nameEnd >= 0 {
		name = rest[:nameEnd]
		tail = strings.TrimSpace(rest[nameEnd:])
	}
	var typeParams []*model.TypeParameter
	if idx := strings.IndexByte(name, '<'); idx >= 0 {
		typeParams, _ = parseTypeParamGroup(name[idx:], nil)
		name = name[:idx]
	}
	if name == "" {
		return p.errf("class with empty name")
	}

	cls := &model.Class{
		QualifiedName: p.current.Name + "." + name,
		SimpleName:    lastSegment(name),
		Kind:          kind,
		TypeParams:    typeParams,
	}
	p.applyBase(&cls.ItemBase, mods, deprecated)
	p.scope = newTypeScope(nil, typeParams)

	if err := p.parseClassTail(cls, tail); err != nil {
		return err
	}
	if dot := strings.LastIndexByte(name, '.'); dot >= 0 {
		cls.Containing = p.current.FindClass(p.current.Name + "." + name[:dot])
	}
	p.current.Classes = append(p.current.Classes, cls)
	p.class = cls
	return nil
}

// parseClassTail handles the extends / implements clauses. Interfaces list
// their super-interfaces after extends; classes use extends for the single
// superclass and implements for interfaces.
func (p *parser) parseClassTail(cls *model.Class, tail string) error {
	for tail != "" {
		switch {
		case strings.HasPrefix(tail, "extends "):
			rest := tail[len("extends "):]
			end := clauseEnd(rest)
			types := splitTopLevel(rest[:end], ',')
			tail = strings.TrimSpace(rest[end:])
			if cls.Kind == model.KindInterface || cls.Kind == model.KindAnnotation {
				for _, t := range typeList(types) {
					cls.Interfaces = append(cls.Interfaces, parseType(t, p.scope))
				}
			} else {
				if len(types) != 1 {
					return p.errf("%s: a %s extends exactly one type", cls.QualifiedName, cls.Kind)
				}
				cls.SuperClass = parseType(types[0], p.scope)
			}
		case strings.HasPrefix(tail, "implements "):
			rest := tail[len("implements "):]
			end := clauseEnd(rest)
			for _, t := range typeList(splitTopLevel(rest[:end], ',')) {
				cls.Interfaces = append(cls.Interfaces, parseType(t, p.scope))
			}
			tail = strings.TrimSpace(rest[end:])
		default:
			return p.errf("%s: unexpected trailing %q in class declaration", cls.QualifiedName, tail)
		}
	}
	return nil
}

func (p *parser) parseMember(line string) error {
	if !strings.HasSuffix(line, ";") {
		return p.errf("expected a member declaration ending in ';', got %q", line)
	}
	decl := strings.TrimSpace(line[:len(line)-1])
	switch {
	case strings.HasPrefix(decl, "ctor "):
		return p.parseMethod(decl[len("ctor "):], true)
	case strings.HasPrefix(decl, "method "):
		return p.parseMethod(decl[len("method "):], false)
	case strings.HasPrefix(decl, "field "):
		return p.parseField(decl[len("field "):], false)
	case strings.HasPrefix(decl, "enum_constant "):
		return p.parseField(decl[len("enum_constant "):], true)
	case strings.HasPrefix(decl, "property "):
		return p.parseProperty(decl[len("property "):])
	}
	return p.errf("unknown member declaration %q", line)
}

func (p *parser) parseMethod(decl string, isCtor bool) error {
	mods, deprecated, rest := p.parseModifiers(decl)

	typeParams, rest := parseTypeParamGroup(rest, p.scope)
	scope := newTypeScope(p.scope, typeParams)

	open := indexTopLevel(rest, '(')
	if open < 0 {
		return p.errf("method declaration without parameter list: %q", decl)
	}
	closeIdx := strings.LastIndexByte(rest, ')')
	if closeIdx < open {
		return p.errf("unbalanced parameter list: %q", decl)
	}
	head := strings.TrimSpace(rest[:open])
	args := rest[open+1 : closeIdx]
	tail := strings.TrimSpace(rest[closeIdx+1:])

	method := &model.Method{IsConstructor: isCtor, TypeParams: typeParams}
	p.applyBase(&method.ItemBase, mods, deprecated)

	if isCtor {
		method.Name = head
	} else {
		split := lastTopLevelSpace(head)
		if split < 0 {
			return p.errf("method declaration without return type: %q", decl)
		}
		method.ReturnType = parseType(head[:split], scope)
		method.Name = strings.TrimSpace(head[split+1:])
	}
	if method.Name == "" {
		return p.errf("method with empty name: %q", decl)
	}

	params, err := p.parseParameters(args, scope)
	if err != nil {
		return err
	}
	method.Parameters = params

	for tail != "" {
		switch {
		case strings.HasPrefix(tail, "throws "):
			rest := tail[len("throws "):]
			end := clauseEnd(rest)
			for _, t := range splitTopLevel(rest[:end], ',') {
				method.Throws = append(method.Throws, collapseSpaces(strings.TrimSpace(t)))
			}
			tail = strings.TrimSpace(rest[end:])
		case strings.HasPrefix(tail, "default "):
			method.HasDefault = true
			method.DefaultValue = strings.TrimSpace(tail[len("default "):])
			tail = ""
		default:
			return p.errf("unexpected trailing %q in method declaration", tail)
		}
	}

	p.class.Methods = append(p.class.Methods, method)
	return nil
}

func (p *parser) parseParameters(args string, scope typeScope) ([]*model.Parameter, error) {
	args = strings.TrimSpace(args)
	if args == "" {
		return nil, nil
	}
	var params []*model.Parameter
	for i, raw := range splitTopLevel(args, ',') {
		decl := strings.TrimSpace(raw)
		if decl == "" {
			return nil, p.errf("empty parameter declaration")
		}
		param := &model.Parameter{Index: i}
		mods, _, rest := p.parseModifiers(decl)
		param.Modifiers = mods
		if mods.Default {
			param.HasDefault = true
		}

		typeText := rest
		if split := lastTopLevelSpace(rest); split >= 0 && isIdentifier(rest[split+1:]) {
			typeText = rest[:split]
			param.Name = rest[split+1:]
		}
		typeText = strings.TrimSpace(typeText)
		if strings.HasSuffix(typeText, "...") {
			param.IsVararg = true
			typeText = strings.TrimSuffix(typeText, "...")
		}
		param.Type = parseType(typeText, scope)
		if param.Type == nil {
			return nil, p.errf("parameter with empty type: %q", decl)
		}
		param.Emit = true
		param.Loc = model.Location{File: p.file, Line: p.line}
		params = append(params, param)
	}
	return params, nil
}

func (p *parser) parseField(decl string, enumConstant bool) error {
	mods, deprecated, rest := p.parseModifiers(decl)

	var value *string
	if eq := indexTopLevel(rest, '='); eq >= 0 {
		v := strings.TrimSpace(rest[eq+1:])
		value = &v
		rest = strings.TrimSpace(rest[:eq])
	}

	split := lastTopLevelSpace(rest)
	if split < 0 {
		return p.errf("field declaration without type: %q", decl)
	}
	field := &model.Field{
		Name:           strings.TrimSpace(rest[split+1:]),
		Type:           parseType(rest[:split], p.scope),
		ConstantValue:  value,
		IsEnumConstant: enumConstant,
	}
	p.applyBase(&field.ItemBase, mods, deprecated)
	p.class.Fields = append(p.class.Fields, field)
	return nil
}

func (p *parser) parseProperty(decl string) error {
	mods, deprecated, rest := p.parseModifiers(decl)
	split := lastTopLevelSpace(rest)
	if split < 0 {
		return p.errf("property declaration without type: %q", decl)
	}
	prop := &model.Property{
		Name: strings.TrimSpace(rest[split+1:]),
		Type: parseType(rest[:split], p.scope),
	}
	p.applyBase(&prop.ItemBase, mods, deprecated)
	p.class.Properties = append(p.class.Properties, prop)
	return nil
}

// parseModifiers consumes leading annotations and modifier keywords.
// It returns the modifier set, whether the deprecated keyword or the
// @Deprecated annotation was present, and the unconsumed remainder.
func (p *parser) parseModifiers(decl string) (model.Modifiers, bool, string) {
	mods := model.Modifiers{Visibility: model.PackagePrivate}
	deprecated := false
	rest := strings.TrimSpace(decl)
	for rest != "" {
		if rest[0] == '@' {
			// @interface is the annotation class keyword, not an annotation
			if strings.HasPrefix(rest, "@interface ") {
				break
			}
			name, remainder := readAnnotation(rest[1:])
			if name == "Deprecated" || strings.HasSuffix(name, ".Deprecated") {
				deprecated = true
			} else {
				mods.Annotations = append(mods.Annotations, name)
			}
			rest = strings.TrimSpace(remainder)
			continue
		}
		word := rest
		if idx := strings.IndexByte(rest, ' '); idx >= 0 {
			word = rest[:idx]
		}
		if !modifierSet[word] {
			break
		}
		switch word {
		case "public":
			mods.Visibility = model.Public
		case "protected":
			mods.Visibility = model.Protected
		case "internal":
			mods.Visibility = model.Internal
		case "private":
			mods.Visibility = model.Private
		case "static":
			mods.Static = true
		case "final":
			mods.Final = true
		case "abstract":
			mods.Abstract = true
		case "default", "optional":
			mods.Default = true
		case "sealed":
			mods.Sealed = true
		case "fun":
			mods.Fun = true
		case "native":
			mods.Native = true
		case "synchronized":
			mods.Synchronized = true
		case "volatile":
			mods.Volatile = true
		case "transient":
			mods.Transient = true
		case "operator":
			mods.Operator = true
		case "infix":
			mods.Infix = true
		case "inline":
			mods.Inline = true
		case "suspend":
			mods.Suspend = true
		case "deprecated":
			deprecated = true
		}
		rest = strings.TrimSpace(rest[len(word):])
	}
	return mods, deprecated, rest
}

// applyBase fills the shared item attributes from parsed modifiers.
func (p *parser) applyBase(base *model.ItemBase, mods model.Modifiers, deprecated bool) {
	base.Modifiers = mods
	base.Loc = model.Location{File: p.file, Line: p.line}
	base.Emit = true
	base.Removed = p.opts.Removed
	if deprecated {
		base.Deprecated = model.ExplicitlyDeprecated
	} else if p.class != nil && p.class.IsDeprecated() {
		base.Deprecated = model.ImplicitlyDeprecated
	}
	if mods.HasAnnotation("SuppressCompatibility") {
		base.Suppressed = true
	}
	if mods.HasAnnotation("Hide") {
		base.Emit = false
	}
}

// readAnnotation consumes an annotation name (the @ already stripped) and
// an optional (...) argument group.
func readAnnotation(s string) (string, string) {
	end := len(s)
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' || s[i] == '(' {
			end = i
			break
		}
	}
	name := s[:end]
	rest := s[end:]
	if strings.HasPrefix(rest, "(") {
		depth := 0
		for i := 0; i < len(rest); i++ {
			switch rest[i] {
			case '(':
				depth++
			case ')':
				depth--
				if depth == 0 {
					return name, rest[i+1:]
				}
			}
		}
	}
	return name, rest
}

// clauseEnd finds where an extends/implements/throws clause stops: at the
// next top-level keyword boundary or the end of the string.
func clauseEnd(s string) int {
	for _, kw := range []string{" implements ", " extends ", " throws ", " default "} {
		depth := 0
		for i := 0; i+len(kw) <= len(s); i++ {
			switch s[i] {
			case '<', '(', '[':
				depth++
			case '>', ')', ']':
				depth--
			}
			if depth == 0 && strings.HasPrefix(s[i:], kw) {
				return i
			}
		}
	}
	return len(s)
}

// lastTopLevelSpaceBoundary finds the first top-level space that starts a
// trailing clause (extends/implements); the class name runs up to it.
func lastTopLevelSpaceBoundary(s string) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<', '(', '[':
			depth++
		case '>', ')', ']':
			depth--
		case ' ':
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// typeList flattens a comma-split type list further on top-level spaces,
// accepting both the comma-separated and the legacy space-separated
// implements renderings.
func typeList(parts []string) []string {
	var out []string
	for _, part := range parts {
		part = strings.TrimSpace(part)
		for part != "" {
			if idx := lastTopLevelSpaceBoundary(part); idx >= 0 {
				out = append(out, part[:idx])
				part = strings.TrimSpace(part[idx:])
				continue
			}
			out = append(out, part)
			part = ""
		}
	}
	return out
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func lastSegment(name string) string {
	if dot := strings.LastIndexByte(name, '.'); dot >= 0 {
		return name[dot+1:]
	}
	return name
}
