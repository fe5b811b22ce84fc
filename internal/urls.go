package internal

import "strings"

// supportedDomains lists the platforms the transcription provider can
// pull media from.
var supportedDomains = []string{
	"youtube.com", "youtu.be", // YouTube
	"twitter.com", "x.com", // Twitter/X
	"vimeo.com",              // Vimeo
	"tiktok.com",             // TikTok
	"instagram.com",          // Instagram
	"facebook.com", "fb.com", // Facebook
	"linkedin.com", // LinkedIn
	"reddit.com",   // Reddit
}

// IsSupportedVideoURL reports whether url points at a platform the
// transcription provider supports. Case-insensitive substring match,
// no network access.
func IsSupportedVideoURL(url string) bool {
	lower := strings.ToLower(url)
	for _, domain := range supportedDomains {
		if strings.Contains(lower, domain) {
			return true
		}
	}
	return false
}
