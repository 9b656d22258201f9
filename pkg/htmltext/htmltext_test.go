package htmltext

import (
	"testing"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "empty content",
			content: "",
			want:    "",
		},
		{
			name:    "plain text passthrough",
			content: "hello world",
			want:    "hello world",
		},
		{
			name:    "paragraphs become spaces",
			content: "<p>hello</p><p>world</p>",
			want:    "hello world",
		},
		{
			name:    "inline tags stripped without spacing",
			content: "<p>he<b>ll</b>o</p>",
			want:    "hello",
		},
		{
			name:    "entities unescaped",
			content: "<p>fish &amp; chips</p>",
			want:    "fish & chips",
		},
		{
			name:    "whitespace collapsed",
			content: "<div>  a \n\n b  </div>",
			want:    "a b",
		},
		{
			name:    "list items separated",
			content: "<ul><li>one</li><li>two</li></ul>",
			want:    "one two",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.content); got != tt.want {
				t.Errorf("Render(%q) = %q, want %q", tt.content, got, tt.want)
			}
		})
	}
}

func TestCounts(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantWords int
		wantChars int
	}{
		{
			name:      "empty",
			content:   "",
			wantWords: 0,
			wantChars: 0,
		},
		{
			name:      "two words",
			content:   "<p>hello world</p>",
			wantWords: 2,
			wantChars: 11,
		},
		{
			name:      "three words",
			content:   "<p>hello world again</p>",
			wantWords: 3,
			wantChars: 17,
		},
		{
			name:      "punctuation only token not a word",
			content:   "<p>hello - world</p>",
			wantWords: 2,
			wantChars: 13,
		},
		{
			name:      "trailing punctuation keeps the word",
			content:   "<p>hello, world!</p>",
			wantWords: 2,
			wantChars: 13,
		},
		{
			name:      "markup only",
			content:   "<p></p><div></div>",
			wantWords: 0,
			wantChars: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			words, chars := Counts(tt.content)
			if words != tt.wantWords {
				t.Errorf("Counts(%q) words = %d, want %d", tt.content, words, tt.wantWords)
			}
			if chars != tt.wantChars {
				t.Errorf("Counts(%q) chars = %d, want %d", tt.content, chars, tt.wantChars)
			}
			if got := WordCount(tt.content); got != tt.wantWords {
				t.Errorf("WordCount(%q) = %d, want %d", tt.content, got, tt.wantWords)
			}
			if got := CharCount(tt.content); got != tt.wantChars {
				t.Errorf("CharCount(%q) = %d, want %d", tt.content, got, tt.wantChars)
			}
		})
	}
}
