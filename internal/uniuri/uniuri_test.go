package uniuri

import (
	"bytes"
	"testing"
)

func TestNew(t *testing.T) {
	id := New()
	if len(id) != StdLen {
		t.Errorf("New() length = %d, want %d", len(id), StdLen)
	}

	for i := 0; i < len(id); i++ {
		if !bytes.ContainsRune(StdChars, rune(id[i])) {
			t.Errorf("New() contains %q, not in StdChars", id[i])
		}
	}
}

func TestNewLen(t *testing.T) {
	for _, length := range []int{0, 1, 5, 16, 64, 1024} {
		id := NewLen(length)
		if len(id) != length && length > 0 {
			t.Errorf("NewLen(%d) length = %d", length, len(id))
		}
		if length <= 0 && id != "" {
			t.Errorf("NewLen(%d) = %q, want empty", length, id)
		}
	}
}

func TestNewUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := New()
		if seen[id] {
			t.Fatalf("New() produced duplicate %q", id)
		}
		seen[id] = true
	}
}
