// File: tidy.go
// Title: Smart Punctuation Normalization
// Description: Replaces the typographic quotes, dashes and ellipsis that
//              Windows-1252 editors insert with their ASCII counterparts.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package asciix

import "strings"

var tidyReplacer = strings.NewReplacer(
	"«", `"`, "»", `"`, "“", `"`, "”", `"`, "„", `"`, "‟", `"`,
	"‘", "'", "’", "'", "‚", "'", "‛", "'", "‹", "'", "›", "'",
	"–", "-", "—", "-",
	"…", "...",
)

// Tidy replaces smart quotes, en and em dashes and the ellipsis with ASCII
func Tidy(s string) string {
	return tidyReplacer.Replace(s)
}
