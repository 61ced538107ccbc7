package drive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentType(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"benchy.stl", "model/stl"},
		{"BENCHY.STL", "model/stl"},
		{"readme.txt", "text/plain; charset=utf-8"},
		{"model", "application/octet-stream"},
		{"model.xyz123", "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, ContentType(tt.filename))
		})
	}
}

func TestFolderLink(t *testing.T) {
	c := &Client{}
	assert.Equal(t, "https://drive.google.com/drive/folders/abc123", c.FolderLink("abc123"))
}
