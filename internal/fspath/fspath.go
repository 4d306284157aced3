package fspath

import (
	"os"
	"path/filepath"
	"strings"
)

// Separator is the canonical separator used in resolved paths.
const Separator = string(filepath.Separator)

// Resolve returns raw as an absolute path with "." and ".." segments
// collapsed. Relative input is anchored at cwd. A ".." that would climb above
// the root is dropped, so the result never escapes the filesystem root.
func Resolve(raw, cwd string) string {
	path := strings.TrimSpace(raw)
	if !strings.HasPrefix(path, Separator) {
		path = cwd + Separator + path
	}

	var stack []string
	for _, seg := range strings.Split(path, Separator) {
		seg = strings.TrimSpace(seg)
		switch seg {
		case "", ".":
			continue
		case "..":
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		default:
			stack = append(stack, seg)
		}
	}

	return Separator + strings.Join(stack, Separator)
}

// Abs resolves raw against the process working directory.
func Abs(raw string) string {
	if strings.HasPrefix(strings.TrimSpace(raw), Separator) {
		return Resolve(raw, Separator)
	}
	cwd, err := os.Getwd()
	if err != nil {
		cwd = Separator
	}
	return Resolve(raw, cwd)
}

// Join resolves segments relative to base. If the joined segments start with
// the separator they are resolved on their own and base is ignored.
func Join(base string, segments ...string) string {
	var parts []string
	for _, s := range segments {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}

	extended := strings.Join(parts, Separator)
	if strings.HasPrefix(extended, Separator) {
		return Resolve(extended, Separator)
	}
	if extended == "" {
		return Abs(base)
	}
	return Abs(base + Separator + extended)
}
