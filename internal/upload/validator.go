package upload

import (
	"path"
	"path/filepath"
	"regexp"
	"strings"
)

// Allowed reports whether the filename carries an extension from the
// allowed set. The filename must contain a dot and the text after the
// final dot is matched case-insensitively.
func Allowed(filename string, allowed []string) bool {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return false
	}
	ext := strings.ToLower(filename[idx+1:])
	if ext == "" {
		return false
	}
	for _, a := range allowed {
		if ext == a {
			return true
		}
	}
	return false
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_.-]+`)

// SanitizeFilename reduces a client-supplied filename to a safe basename:
// path components are stripped and anything outside [A-Za-z0-9_.-] is
// collapsed to an underscore. Returns "" when nothing usable remains.
func SanitizeFilename(filename string) string {
	// Clients may send either separator style.
	name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	name = filepath.Base(name)
	name = unsafeChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	if name == "" || name == "." || name == ".." {
		return ""
	}
	return name
}
