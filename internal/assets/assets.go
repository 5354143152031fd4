package assets

import (
	"net/url"
	"path"
	"strings"
)

// Format identifies how an asset is decoded and re-encoded.
type Format string

const (
	FormatMP3         Format = "mp3"
	FormatWAV         Format = "wav"
	FormatUnsupported Format = ""
)

// Asset is one file on the CDN, addressed by its path relative to the CDN root.
type Asset struct {
	Path     string
	Category string
}

// FromPaths wraps relative paths as assets, deriving each category.
func FromPaths(paths []string) []Asset {
	out := make([]Asset, 0, len(paths))
	for _, p := range paths {
		out = append(out, Asset{Path: p, Category: Category(p)})
	}
	return out
}

// Category returns the directory directly below assets/audio/ (or the first
// directory when the path uses another layout).
func Category(rel string) string {
	parts := strings.Split(strings.Trim(rel, "/"), "/")
	if len(parts) < 2 {
		return "misc"
	}
	dirs := parts[:len(parts)-1]
	if len(dirs) >= 3 && dirs[0] == "assets" && dirs[1] == "audio" {
		return dirs[2]
	}
	if len(dirs) >= 2 && dirs[0] == "audio" {
		return dirs[1]
	}
	return dirs[len(dirs)-1]
}

// URL joins the CDN base and a relative path with a single slash, escaping
// each segment.
func URL(base, rel string) string {
	segments := strings.Split(strings.TrimLeft(rel, "/"), "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return strings.TrimRight(base, "/") + "/" + strings.Join(segments, "/")
}

// FormatOf classifies a path by extension, case-insensitively.
func FormatOf(rel string) Format {
	switch strings.ToLower(path.Ext(strings.ReplaceAll(rel, "\\", "/"))) {
	case ".mp3":
		return FormatMP3
	case ".wav":
		return FormatWAV
	default:
		return FormatUnsupported
	}
}

// IsSupported reports whether the normalizer can process the path.
func IsSupported(rel string) bool {
	return FormatOf(rel) != FormatUnsupported
}

// Extension returns the lowercased extension including the dot, or "(none)".
func Extension(rel string) string {
	ext := strings.ToLower(path.Ext(strings.ReplaceAll(rel, "\\", "/")))
	if ext == "" {
		return "(none)"
	}
	return ext
}
