package util

import "strings"

// JPEGExtension is the extension every destination file carries.
const JPEGExtension = ".jpg"

// ImageExtensions lists the lowercase suffixes accepted as images.
var ImageExtensions = []string{".jpg", ".jpeg", ".png"}

// IsImage reports whether name ends, case-insensitively, with one of
// ImageExtensions. Only the name is inspected, never the file contents.
func IsImage(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range ImageExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// NormalizeName returns name with its extension replaced by .jpg. A name that
// already ends in .jpg (any case) is returned unchanged, so "b.JPG" stays
// "b.JPG". A name without a dot just gets .jpg appended.
func NormalizeName(name string) string {
	if strings.HasSuffix(strings.ToLower(name), JPEGExtension) {
		return name
	}
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[:i]
	}
	return name + JPEGExtension
}
