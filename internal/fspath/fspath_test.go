package fspath

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		cwd  string
		want string
	}{
		{"absolute", "/a/b", "/cwd", "/a/b"},
		{"relative", "demo", "/home/me", "/home/me/demo"},
		{"dot relative", "./demo", "/home/me", "/home/me/demo"},
		{"parent collapse", "/a/b/../c", "/", "/a/c"},
		{"collapse to root", "/a/..", "/", "/"},
		{"dot segment", "/a/./b", "/", "/a/b"},
		{"empty segments", "//a///b//", "/", "/a/b"},
		{"pop past root", "/../../x", "/", "/x"},
		{"relative climbs cwd", "../../../up", "/home/me", "/up"},
		{"trimmed input", "  /a/b  ", "/", "/a/b"},
		{"trimmed segments", "/a/ b /c", "/", "/a/b/c"},
		{"empty input", "", "/home/me", "/home/me"},
		{"root", "/", "/cwd", "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.raw, tt.cwd))
		})
	}
}

func TestResolveIdempotent(t *testing.T) {
	inputs := []string{"/a/b/../c", "x/./y/..", "../../..", "/", "a//b", " / a / .. / b "}
	for _, in := range inputs {
		once := Resolve(in, "/work/dir")
		assert.Equal(t, once, Resolve(once, "/elsewhere"), "input %q", in)
	}
}

func TestJoin(t *testing.T) {
	t.Run("no segments", func(t *testing.T) {
		assert.Equal(t, Resolve("/base/./x/..", "/"), Join("/base/./x/.."))
	})

	t.Run("relative segments", func(t *testing.T) {
		assert.Equal(t, "/base/src/Core", Join("/base", "src/", "Core"))
	})

	t.Run("empty segments dropped", func(t *testing.T) {
		assert.Equal(t, "/base/a/b", Join("/base", "", "  ", "a", " b "))
	})

	t.Run("absolute override", func(t *testing.T) {
		assert.Equal(t, Resolve("/x", "/"), Join("/base", "/x"))
		assert.Equal(t, "/x/y", Join("/base", "/x", "y"))
	})

	t.Run("parent segments", func(t *testing.T) {
		assert.Equal(t, "/base/out", Join("/base/src", "..", "out"))
	})

	t.Run("relative base uses working directory", func(t *testing.T) {
		cwd, err := os.Getwd()
		require.NoError(t, err)
		assert.Equal(t, Resolve("demo/src", cwd), Join("demo", "src"))
	})
}
