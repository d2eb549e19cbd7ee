// Package sigfile reads and writes API signature snapshots: the versioned,
// indentation-based text format with a header line and a nested
// package { class { member; } } structure. Models parsed here are
// structurally equivalent to models built by any other front end; the
// comparison engine is format-agnostic.
package sigfile

import "strings"

// headerPrefix starts the mandatory first line of every snapshot.
const headerPrefix = "// Signature format: "

// supportedVersions lists the format versions this reader understands.
var supportedVersions = map[string]bool{
	"2.0": true,
	"3.0": true,
	"4.0": true,
}

// CurrentVersion is the version the writer emits.
const CurrentVersion = "2.0"

// modifierKeywords are the bare-word modifiers a declaration line may
// carry, in the order the writer emits them.
var modifierKeywords = []string{
	"public", "protected", "internal", "private",
	"static", "final", "abstract", "default", "sealed", "fun",
	"native", "synchronized", "volatile", "transient",
	"operator", "infix", "inline", "suspend", "reified",
	"deprecated", "optional",
}

var modifierSet = func() map[string]bool {
	m := make(map[string]bool, len(modifierKeywords))
	for _, k := range modifierKeywords {
		m[k] = true
	}
	return m
}()

// stripLineComment removes a // comment from a line, ignoring any //
// inside a quoted constant value.
func stripLineComment(line string) string {
	inString := false
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '"':
			if i == 0 || line[i-1] != '\\' {
				inString = !inString
			}
		case '/':
			if !inString && i+1 < len(line) && line[i+1] == '/' {
				return line[:i]
			}
		}
	}
	return line
}

// splitTopLevel splits s on sep occurrences that sit outside every <>, ()
// and [] group.
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<', '(', '[':
			depth++
		case '>', ')', ']':
			depth--
		case sep:
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, s[start:])
	return parts
}

// indexTopLevel returns the first index of c outside every bracket group,
// or -1.
func indexTopLevel(s string, c byte) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<', '[':
			depth++
		case '>', ']':
			depth--
		default:
			if s[i] == c && depth == 0 {
				return i
			}
		}
	}
	return -1
}

// lastTopLevelSpace returns the index of the last space outside bracket
// groups, or -1. Used to split "return.Type name" style heads.
func lastTopLevelSpace(s string) int {
	depth := 0
	last := -1
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<', '(', '[':
			depth++
		case '>', ')', ']':
			depth--
		case ' ':
			if depth == 0 {
				last = i
			}
		}
	}
	return last
}

// collapseSpaces canonicalizes a type's spelling by removing whitespace;
// structural equality in the model is text equality, so both sides of a
// comparison must normalize identically.
func collapseSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, s)
}
