package sigfile

import (
	"strings"

	"sigcheck/internal/model"
)

// typeScope is the set of type variables visible at a use site: the
// containing class's parameters overlaid with the method's own.
type typeScope map[string]*model.TypeParameter

func newTypeScope(parent typeScope, params []*model.TypeParameter) typeScope {
	scope := make(typeScope, len(parent)+len(params))
	for k, v := range parent {
		scope[k] = v
	}
	for _, p := range params {
		scope[p.Name] = p
	}
	return scope
}

// parseType builds a model type from its textual spelling. The canonical
// Text keeps no whitespace so structurally equal types compare equal.
func parseType(text string, scope typeScope) *model.Type {
	text = collapseSpaces(strings.TrimSpace(text))
	if text == "" {
		return nil
	}
	t := &model.Type{Text: text}
	switch {
	case strings.HasSuffix(text, "[]"):
		t.Kind = model.TypeArray
		t.Component = parseType(text[:len(text)-2], scope)
	case model.IsPrimitiveName(text):
		t.Kind = model.TypePrimitive
	default:
		if tp, ok := scope[text]; ok {
			t.Kind = model.TypeVariable
			t.Variable = tp
		} else {
			t.Kind = model.TypeClass
		}
	}
	return t
}

// parseTypeParamGroup parses a leading <...> group, returning the declared
// parameters and the remainder of the line. Bounds may reference the
// surrounding scope and sibling parameters declared earlier in the group.
func parseTypeParamGroup(s string, outer typeScope) ([]*model.TypeParameter, string) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "<") {
		return nil, s
	}
	depth := 0
	end := -1
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<':
			depth++
		case '>':
			depth--
			if depth == 0 {
				end = i
			}
		}
		if end >= 0 {
			break
		}
	}
	if end < 0 {
		return nil, s
	}
	group := s[1:end]
	rest := strings.TrimSpace(s[end+1:])

	var params []*model.TypeParameter
	scope := newTypeScope(outer, nil)
	for _, decl := range splitTopLevel(group, ',') {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}
		param := &model.TypeParameter{}
		if strings.HasPrefix(decl, "reified ") {
			param.Reified = true
			decl = strings.TrimSpace(strings.TrimPrefix(decl, "reified "))
		}
		name := decl
		if idx := strings.Index(decl, " extends "); idx >= 0 {
			name = strings.TrimSpace(decl[:idx])
			for _, bound := range splitTopLevel(decl[idx+len(" extends "):], '&') {
				param.Bounds = append(param.Bounds, parseType(bound, scope))
			}
		}
		param.Name = name
		scope[name] = param
		params = append(params, param)
	}
	return params, rest
}
