package internal

import "testing"

func TestIsSupportedVideoURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want bool
	}{
		{"youtube watch URL", "https://www.youtube.com/watch?v=tAP1eZYEuKA", true},
		{"youtu.be short URL", "https://youtu.be/abc", true},
		{"uppercase host", "HTTPS://YOUTU.BE/ABC", true},
		{"x.com post", "https://x.com/user/status/123", true},
		{"vimeo", "https://vimeo.com/12345", true},
		{"tiktok", "https://www.tiktok.com/@user/video/1", true},
		{"linkedin post", "https://www.linkedin.com/posts/abc", true},
		{"unsupported site", "https://example.com/watch?v=abc", false},
		{"plain text", "not a url", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSupportedVideoURL(tt.url); got != tt.want {
				t.Errorf("IsSupportedVideoURL(%q) = %v, want %v", tt.url, got, tt.want)
			}
		})
	}
}
