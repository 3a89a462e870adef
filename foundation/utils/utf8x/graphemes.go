// File: graphemes.go
// Title: Grapheme Clusters
// Description: User perceived characters (extended grapheme clusters) via
//              github.com/rivo/uniseg.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package utf8x

import "github.com/rivo/uniseg"

// Graphemes splits s into extended grapheme clusters
func Graphemes(s string) []string {
	out := make([]string, 0, len(s))
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// GraphemeCount returns the number of extended grapheme clusters in s
func GraphemeCount(s string) int {
	return uniseg.GraphemeClusterCount(s)
}
