package ingest

import (
	"reflect"
	"testing"
)

func TestDetectURLs(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "no urls",
			text: "what is the capital of France?",
			want: nil,
		},
		{
			name: "single http url",
			text: "summarize http://example.com/page please",
			want: []string{"http://example.com/page"},
		},
		{
			name: "https with query",
			text: "see https://example.com/a?b=1&c=2 for details",
			want: []string{"https://example.com/a?b=1&c=2"},
		},
		{
			name: "duplicates removed, order preserved",
			text: "https://a.com then https://b.com then https://a.com again",
			want: []string{"https://a.com", "https://b.com"},
		},
		{
			name: "url at end of sentence keeps path",
			text: "read https://docs.example.com/guide/intro",
			want: []string{"https://docs.example.com/guide/intro"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectURLs(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DetectURLs(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
