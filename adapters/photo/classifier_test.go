package photo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSentinel(t *testing.T) {
	for _, v := range []string{"None", "N/A", "na", "NULL", "undefined", "No Photo", "no image", "Accident", " none "} {
		assert.True(t, IsSentinel(v), "value %q", v)
	}
	for _, v := range []string{"", "photo.jpg", "nothing", "nana"} {
		assert.False(t, IsSentinel(v), "value %q", v)
	}
}

func TestIsCandidate(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{"https://drive.google.com/file/d/1AbC_d-9/view?usp=sharing", true},
		{"https://lh3.googleusercontent.com/xyz", true},
		{"https://photos.google.com/share/abc", true},
		{"https://www.dropbox.com/s/abc/kid.jpg?dl=0", true},
		{"portrait.PNG", true},
		{"https://example.com/files/child_photo_01", true}, // keyword
		{"https://cdn.example.com/uploads/789", true},      // keyword
		{"None", false},
		{"n/a", false},
		{"", false},
		{"Ahmed lost his father in 2019", false},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, IsCandidate(test.value), "value %q", test.value)
	}
}

func TestRewriteDrive(t *testing.T) {
	url, viaProxy := Rewrite("https://drive.google.com/file/d/1AbC_d-9/view?usp=sharing")
	assert.Equal(t, "https://drive.google.com/thumbnail?id=1AbC_d-9&sz=w1000", url)
	assert.True(t, viaProxy)

	url, viaProxy = Rewrite("https://drive.google.com/open?id=XyZ123")
	assert.Equal(t, "https://drive.google.com/thumbnail?id=XyZ123&sz=w1000", url)
	assert.True(t, viaProxy)
}

func TestRewriteGooglePhotos(t *testing.T) {
	url, viaProxy := Rewrite("https://lh3.googleusercontent.com/abc")
	assert.Equal(t, "https://lh3.googleusercontent.com/abc=s1000", url)
	assert.False(t, viaProxy)

	// Size already present: untouched.
	url, _ = Rewrite("https://lh3.googleusercontent.com/abc=w800")
	assert.Equal(t, "https://lh3.googleusercontent.com/abc=w800", url)
}

func TestRewriteDropbox(t *testing.T) {
	url, viaProxy := Rewrite("https://www.dropbox.com/s/abc/kid.jpg?dl=0")
	assert.Equal(t, "https://www.dropbox.com/s/abc/kid.jpg?dl=1", url)
	assert.False(t, viaProxy)

	url, _ = Rewrite("https://www.dropbox.com/s/abc/kid.jpg")
	assert.Equal(t, "https://www.dropbox.com/s/abc/kid.jpg", url)
}

func TestRewritePassthrough(t *testing.T) {
	url, viaProxy := Rewrite("https://example.com/photo.jpg")
	assert.Equal(t, "https://example.com/photo.jpg", url)
	assert.False(t, viaProxy)
}
