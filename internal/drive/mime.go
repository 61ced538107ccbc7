package drive

import (
	"mime"
	"path/filepath"
	"strings"
)

// ContentType resolves the MIME type for an uploaded file name.
// STL files get their model type directly since most platforms have
// no registration for the extension.
func ContentType(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == ".stl" {
		return "model/stl"
	}
	if contentType := mime.TypeByExtension(ext); contentType != "" {
		return contentType
	}
	return "application/octet-stream"
}
