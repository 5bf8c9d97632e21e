package model

import "testing"

// TestAtNegativeIndex pins spec.md §9's Open Question 2: At(n) for
// negative n must index from the end (len+n), not the buggy len-n the
// source this module is modeled on used.
func TestAtNegativeIndex(t *testing.T) {
	lw := LKWord{Surface: "hello"}

	r, ok := lw.At(-1)
	if !ok || r != 'o' {
		t.Fatalf("At(-1) = %q, %v; want 'o', true", r, ok)
	}
	r, ok = lw.At(-2)
	if !ok || r != 'l' {
		t.Fatalf("At(-2) = %q, %v; want 'l', true", r, ok)
	}
	r, ok = lw.At(-5)
	if !ok || r != 'h' {
		t.Fatalf("At(-5) = %q, %v; want 'h', true", r, ok)
	}
	if _, ok := lw.At(-6); ok {
		t.Fatalf("At(-6) should be out of range for a 5-rune word")
	}
}

// TestSliceNegativeIndex exercises the same fix through Slice.
func TestSliceNegativeIndex(t *testing.T) {
	lw := LKWord{Surface: "hello"}

	got := lw.Slice(0, -1).Surface
	if got != "hell" {
		t.Fatalf("Slice(0, -1) = %q; want %q", got, "hell")
	}
	got = lw.Slice(-3, -1).Surface
	if got != "ll" {
		t.Fatalf("Slice(-3, -1) = %q; want %q", got, "ll")
	}
}
