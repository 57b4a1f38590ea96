package endpoints

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentTypeFromMime(t *testing.T) {
	cases := []struct {
		mime string
		want string
	}{
		{"image/png", "image"},
		{"image/jpeg", "image"},
		{"video/mp4", "video"},
		{"application/pdf", "pdf"},
		{"text/html", "html"},
		{"application/octet-stream", "file"},
		{"", "file"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, contentTypeFromMime(tc.mime), tc.mime)
	}
}
