package filestorage

import (
	"path/filepath"
	"regexp"
	"strings"
)

var (
	unsafeChars    = regexp.MustCompile(`[^A-Za-z0-9_.-]`)
	underscoreRuns = regexp.MustCompile(`_+`)
)

// Sanitize reduces an uploaded filename to a safe flat name: any directory
// components are dropped, characters outside [A-Za-z0-9_.-] become
// underscores, runs collapse, and leading/trailing separators are stripped.
// Returns "" when nothing usable remains.
func Sanitize(name string) string {
	// Normalize Windows separators before taking the base name
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(filepath.Clean(name))
	if name == "." || name == ".." || name == "/" {
		return ""
	}

	name = unsafeChars.ReplaceAllString(name, "_")
	name = underscoreRuns.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._-")
	return name
}

// Ext returns the lowercased extension after the last dot, without the dot.
// Returns "" when the name has no extension.
func Ext(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx < 0 || idx == len(name)-1 {
		return ""
	}
	return strings.ToLower(name[idx+1:])
}
