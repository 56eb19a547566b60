// Package parser extracts macro import directives from source text.
//
// A directive is a block comment of the form
//
//	/** import macro {JSON, Stringify} from "@playground/macro"; */
//
// Keywords match case-insensitively, whitespace and line breaks are tolerated
// between tokens, and the module path may use single or double quotes.
package parser

import (
	"regexp"
	"strings"

	"go.trai.ch/macroscope/internal/core/domain"
)

// directiveRe matches one macro import directive. Group 1 is the raw
// identifier list, group 2 the module path. RE2 has no backreferences, so the
// closing quote is matched loosely; the path itself excludes quote characters
// either way.
var directiveRe = regexp.MustCompile(`(?is)/\*+\s*import\s+macro\s*\{([^}]*)\}\s*from\s*['"]([^'"]+)['"]`)

// Parse returns the import table declared in code. Directives are processed
// in document order; a macro declared twice keeps its later module path.
// Malformed or absent directives simply yield an empty table.
func Parse(code string) domain.ImportTable {
	table := domain.ImportTable{}
	for _, match := range directiveRe.FindAllStringSubmatch(code, -1) {
		modulePath := match[2]
		for _, name := range strings.Split(match[1], ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			table[name] = modulePath
		}
	}
	return table
}

// ModulePaths returns the distinct module paths referenced by code, in
// document order of first appearance.
func ModulePaths(code string) []string {
	seen := make(map[string]bool)
	var paths []string
	for _, match := range directiveRe.FindAllStringSubmatch(code, -1) {
		modulePath := match[2]
		if seen[modulePath] {
			continue
		}
		seen[modulePath] = true
		paths = append(paths, modulePath)
	}
	return paths
}
