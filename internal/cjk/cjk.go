// Package cjk provides CJK character scanning shared by synthesis and review.
// The character range is the fixed CJK Unified Ideographs block 4E00-9FA5 used
// throughout the document checks; it intentionally excludes punctuation and
// fullwidth forms so counts reflect prose characters only.
package cjk

import "regexp"

// keywordPattern extracts bounded ideograph groups greedily: a run of five
// characters yields one four-character keyword, the leftover single character
// is too short to match again.
var keywordPattern = regexp.MustCompile(`[\x{4e00}-\x{9fa5}]{2,4}`)

// Count returns the number of CJK ideographs in s
func Count(s string) int {
	n := 0
	for _, r := range s {
		if r >= 0x4e00 && r <= 0x9fa5 {
			n++
		}
	}
	return n
}

// Keywords returns up to limit greedy 2-4 character ideograph groups in scan order
func Keywords(s string, limit int) []string {
	return keywordPattern.FindAllString(s, limit)
}
