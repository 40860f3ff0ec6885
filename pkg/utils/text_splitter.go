package utils

import (
	"strings"
	"unicode"
)

// SplitText cuts text into rune-based chunks of roughly chunkSize, with
// a trailing overlap carried into the next chunk to keep context across
// boundaries. When a whitespace break exists near the cut point the
// chunk ends there instead of mid-word.
func SplitText(text string, chunkSize, overlap int) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	runes := []rune(text)
	if len(runes) <= chunkSize {
		return []string{text}
	}

	step := chunkSize - overlap
	if step <= 0 {
		step = chunkSize
	}

	var chunks []string
	for start := 0; start < len(runes); start += step {
		end := start + chunkSize
		if end >= len(runes) {
			end = len(runes)
		} else {
			end = snapToWhitespace(runes, end, start)
		}

		chunk := strings.TrimSpace(string(runes[start:end]))
		if chunk != "" {
			chunks = append(chunks, chunk)
		}
		if end == len(runes) {
			break
		}
	}
	return chunks
}

// snapToWhitespace walks backwards from end looking for a break point,
// but never past a tenth of the chunk so pathological inputs (no spaces
// at all) still split.
func snapToWhitespace(runes []rune, end, start int) int {
	limit := end - (end-start)/10
	for i := end; i > limit; i-- {
		if unicode.IsSpace(runes[i-1]) {
			return i
		}
	}
	return end
}
