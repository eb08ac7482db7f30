package constants

import (
	"path/filepath"
	"strings"
)

// AllowedExtensions holds the file extensions accepted as claim form sources.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsAllowedFile reports whether the path has an accepted source extension.
func IsAllowedFile(path string) bool {
	_, ok := AllowedExtensions[NormalizeExt(filepath.Ext(path))]
	return ok
}

// IsPDF reports whether the path names a PDF by extension.
func IsPDF(path string) bool {
	return NormalizeExt(filepath.Ext(path)) == "pdf"
}
