package utils

import (
	"strings"
	"testing"
)

func TestSplitTextShortInput(t *testing.T) {
	chunks := SplitText("short", 100, 10)

	if len(chunks) != 1 || chunks[0] != "short" {
		t.Errorf("chunks = %v, want the input unchanged", chunks)
	}
}

func TestSplitTextOverlap(t *testing.T) {
	text := "abcdefghijklmnopqrstuvwxy" // 25 chars
	chunks := SplitText(text, 10, 2)

	if len(chunks) != 3 {
		t.Fatalf("got %d chunks, want 3: %v", len(chunks), chunks)
	}
	if chunks[0] != "abcdefghij" {
		t.Errorf("chunks[0] = %q", chunks[0])
	}
	// Each chunk starts 2 characters before the previous one ended.
	if !strings.HasPrefix(chunks[1], chunks[0][8:]) {
		t.Errorf("chunks[1] = %q does not overlap chunks[0] = %q", chunks[1], chunks[0])
	}
	if got := strings.Join([]string{chunks[0][:8], chunks[1][:8], chunks[2]}, ""); got != text {
		t.Errorf("reassembled = %q, want %q", got, text)
	}
}

func TestSplitTextOverlapLargerThanChunk(t *testing.T) {
	text := strings.Repeat("x", 30)
	chunks := SplitText(text, 10, 10)

	// Degenerate overlap falls back to non-overlapping chunks.
	if len(chunks) != 3 {
		t.Fatalf("got %d chunks, want 3: %v", len(chunks), chunks)
	}
	for i, c := range chunks {
		if len(c) != 10 {
			t.Errorf("chunks[%d] has length %d, want 10", i, len(c))
		}
	}
}
