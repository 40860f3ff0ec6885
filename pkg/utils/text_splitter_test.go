package utils

import (
	"strings"
	"testing"
)

func TestSplitText(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		chunkSize  int
		overlap    int
		wantChunks int
	}{
		{
			name:       "short text single chunk",
			text:       "hello world",
			chunkSize:  100,
			overlap:    20,
			wantChunks: 1,
		},
		{
			name:       "empty text no chunks",
			text:       "   ",
			chunkSize:  100,
			overlap:    20,
			wantChunks: 0,
		},
		{
			name:       "long text multiple chunks",
			text:       strings.Repeat("word ", 100), // 500 chars
			chunkSize:  200,
			overlap:    50,
			wantChunks: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := SplitText(tt.text, tt.chunkSize, tt.overlap)
			if len(chunks) != tt.wantChunks {
				t.Errorf("got %d chunks, want %d", len(chunks), tt.wantChunks)
			}
		})
	}
}

func TestSplitTextChunkBounds(t *testing.T) {
	text := strings.Repeat("lorem ipsum dolor sit amet ", 100)

	chunks := SplitText(text, 300, 60)
	for i, c := range chunks {
		if len([]rune(c)) > 300 {
			t.Errorf("chunk %d exceeds chunk size: %d runes", i, len([]rune(c)))
		}
		if strings.TrimSpace(c) == "" {
			t.Errorf("chunk %d is blank", i)
		}
	}
}

func TestSplitTextOverlapGreaterThanSize(t *testing.T) {
	text := strings.Repeat("a b c d e ", 50)

	// A nonsensical overlap must not loop forever or drop text.
	chunks := SplitText(text, 50, 80)
	if len(chunks) == 0 {
		t.Fatal("expected chunks despite oversized overlap")
	}
}

func TestSplitTextNoWhitespace(t *testing.T) {
	text := strings.Repeat("x", 1000)

	chunks := SplitText(text, 300, 50)
	if len(chunks) < 3 {
		t.Errorf("expected at least 3 chunks for unbroken text, got %d", len(chunks))
	}
}
