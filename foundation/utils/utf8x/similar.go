// File: similar.go
// Title: Similarity and Common Affixes
// Description: Similarity percentage in the manner of the classic
//              similar_text algorithm and longest common prefix, suffix and
//              substring, all measured in codepoints.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package utf8x

// Similarity returns how similar a and b are as a percentage in [0, 100]
func Similarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	if len(ra)+len(rb) == 0 {
		return 0
	}
	return float64(similarChars(ra, rb)) * 2 * 100 / float64(len(ra)+len(rb))
}

// similarChars counts the characters shared by a and b: the longest common
// block plus, recursively, the matches left and right of it
func similarChars(a, b []rune) int {
	posA, posB, size := longestBlock(a, b)
	if size == 0 {
		return 0
	}
	sum := size
	if posA > 0 && posB > 0 {
		sum += similarChars(a[:posA], b[:posB])
	}
	if posA+size < len(a) && posB+size < len(b) {
		sum += similarChars(a[posA+size:], b[posB+size:])
	}
	return sum
}

func longestBlock(a, b []rune) (posA, posB, size int) {
	for i := range a {
		for j := range b {
			k := 0
			for i+k < len(a) && j+k < len(b) && a[i+k] == b[j+k] {
				k++
			}
			if k > size {
				posA, posB, size = i, j, k
			}
		}
	}
	return posA, posB, size
}

// LongestCommonPrefix returns the longest prefix shared by a and b
func LongestCommonPrefix(a, b string) string {
	ra, rb := []rune(a), []rune(b)
	n := 0
	for n < len(ra) && n < len(rb) && ra[n] == rb[n] {
		n++
	}
	return string(ra[:n])
}

// LongestCommonSuffix returns the longest suffix shared by a and b
func LongestCommonSuffix(a, b string) string {
	ra, rb := []rune(a), []rune(b)
	n := 0
	for n < len(ra) && n < len(rb) && ra[len(ra)-1-n] == rb[len(rb)-1-n] {
		n++
	}
	return string(ra[len(ra)-n:])
}

// LongestCommonSubstring returns the first longest run of codepoints that
// occurs in both a and b
func LongestCommonSubstring(a, b string) string {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 || len(rb) == 0 {
		return ""
	}
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	best, end := 0, 0
	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			if ra[i-1] == rb[j-1] {
				curr[j] = prev[j-1] + 1
				if curr[j] > best {
					best, end = curr[j], i
				}
			} else {
				curr[j] = 0
			}
		}
		prev, curr = curr, prev
	}
	return string(ra[end-best : end])
}
