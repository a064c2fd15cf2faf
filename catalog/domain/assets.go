package domain

import "strings"

// AssetURL resolves a stored image path against the public asset base URL.
// Absolute URLs are returned unchanged.
func AssetURL(base, path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if base == "" {
		return path
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}
