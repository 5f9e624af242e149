package catalog

import "testing"

func TestToYouTubeEmbed(t *testing.T) {
	tests := map[string]string{
		"":            "",
		"not a url":   "",
		"abc":         "",
		"dQw4w9WgXcQ": "https://www.youtube.com/embed/dQw4w9WgXcQ",
		"https://youtu.be/dQw4w9WgXcQ":                     "https://www.youtube.com/embed/dQw4w9WgXcQ",
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ":      "https://www.youtube.com/embed/dQw4w9WgXcQ",
		"https://www.youtube.com/embed/dQw4w9WgXcQ":        "https://www.youtube.com/embed/dQw4w9WgXcQ",
		"https://www.youtube.com/shorts/dQw4w9WgXcQ":       "https://www.youtube.com/embed/dQw4w9WgXcQ",
		"https://vimeo.com/123456789":                      "",
		"https://www.youtube.com/watch?v=abc&t=42":         "https://www.youtube.com/embed/abc",
		"https://youtube.com/watch?list=PL123&v=xyz987654": "https://www.youtube.com/embed/xyz987654",
	}
	for input, expect := range tests {
		if got := ToYouTubeEmbed(input); got != expect {
			t.Fatalf("ToYouTubeEmbed(%q) = %q, want %q", input, got, expect)
		}
	}
}

func TestToYouTubeEmbedIdempotent(t *testing.T) {
	inputs := []string{
		"dQw4w9WgXcQ",
		"https://youtu.be/dQw4w9WgXcQ",
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		"https://www.youtube.com/embed/dQw4w9WgXcQ",
	}
	for _, input := range inputs {
		once := ToYouTubeEmbed(input)
		if once == "" {
			t.Fatalf("expected %q to normalize, got empty", input)
		}
		if twice := ToYouTubeEmbed(once); twice != once {
			t.Fatalf("not idempotent for %q: %q -> %q", input, once, twice)
		}
	}
}
