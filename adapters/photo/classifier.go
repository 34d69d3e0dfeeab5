// Package photo decides whether a spreadsheet cell names a fetchable
// image, rewrites known cloud-storage links into direct-fetch form,
// and retrieves the bytes.
package photo

import (
	"regexp"
	"strings"
)

// Sentinel spellings that mean "no photo". They are never treated as
// values and never reach the network.
var sentinels = map[string]bool{
	"accident":  true,
	"none":      true,
	"n/a":       true,
	"na":        true,
	"null":      true,
	"undefined": true,
	"no photo":  true,
	"no image":  true,
}

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".bmp"}

var (
	driveFilePattern  = regexp.MustCompile(`/file/d/([a-zA-Z0-9_-]+)`)
	driveIDParam      = regexp.MustCompile(`[?&]id=([a-zA-Z0-9_-]+)`)
	imageKeywordMatch = regexp.MustCompile(`(?i)image|img|photo|pic|upload|media`)
)

// IsSentinel reports whether the value is a recognized "no photo"
// placeholder (case-insensitive).
func IsSentinel(value string) bool {
	return sentinels[strings.ToLower(strings.TrimSpace(value))]
}

// IsCandidate reports whether the value plausibly names a fetchable
// image. Sentinels are never candidates. Cloud-storage links are
// recognized by domain, everything else by image extension or an
// image-related keyword anywhere in the value.
func IsCandidate(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" || IsSentinel(value) {
		return false
	}
	if isDriveURL(value) || isGooglePhotosURL(value) || isDropboxURL(value) {
		return true
	}
	lower := strings.ToLower(value)
	for _, ext := range imageExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return imageKeywordMatch.MatchString(value)
}

func isDriveURL(value string) bool {
	return strings.Contains(value, "drive.google.com") || driveFilePattern.MatchString(value)
}

func isGooglePhotosURL(value string) bool {
	return strings.Contains(value, "googleusercontent.com") || strings.Contains(value, "photos.google.com")
}

func isDropboxURL(value string) bool {
	return strings.Contains(value, "dropbox.com")
}

// Rewrite converts a candidate value into its direct-fetch URL and
// reports whether the fetch must go through the backend proxy path.
//
//   - Drive: the file id is extracted and pointed at the thumbnail
//     endpoint at a large size; Drive responses lack CORS headers, so
//     these are flagged for the proxy path.
//   - Google Photos / googleusercontent: a size parameter is appended
//     when absent, otherwise untouched.
//   - Dropbox: the share-page dl=0 flag becomes the direct dl=1.
//   - Anything else passes through unchanged.
func Rewrite(value string) (url string, viaProxy bool) {
	value = strings.TrimSpace(value)

	if isDriveURL(value) {
		if id := driveFileID(value); id != "" {
			return "https://drive.google.com/thumbnail?id=" + id + "&sz=w1000", true
		}
		return value, true
	}

	if isGooglePhotosURL(value) {
		if !strings.Contains(value, "=w") && !strings.Contains(value, "=s") {
			return value + "=s1000", false
		}
		return value, false
	}

	if isDropboxURL(value) {
		if strings.Contains(value, "dl=0") {
			return strings.Replace(value, "dl=0", "dl=1", 1), false
		}
		return value, false
	}

	return value, false
}

func driveFileID(value string) string {
	if m := driveFilePattern.FindStringSubmatch(value); m != nil {
		return m[1]
	}
	if m := driveIDParam.FindStringSubmatch(value); m != nil {
		return m[1]
	}
	return ""
}
