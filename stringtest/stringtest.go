// Package stringtest provides helpers for constructing expected multi-line
// test output with explicit line endings.
package stringtest

import "strings"

// JoinLF joins multiple strings with LF line endings.
// Use this to construct expected test output with explicit line endings.
//
// Example:
//
//	want := stringtest.JoinLF(
//		"line1",
//		"line2",
//	) // -> "line1\nline2"
func JoinLF(ss ...string) string {
	return strings.Join(ss, "\n")
}

// JoinCRLF joins multiple strings with CRLF line endings.
func JoinCRLF(ss ...string) string {
	return strings.Join(ss, "\r\n")
}

// Cell repeats a one-character cell n times. Rasterized rows repeat each
// character cell horizontally, so expected rows read naturally as
// Cell("#", 4) + Cell(" ", 2).
func Cell(s string, n int) string {
	return strings.Repeat(s, n)
}
