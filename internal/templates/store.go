package templates

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/gp-oxid/oxskel/internal/fspath"
	"github.com/gp-oxid/oxskel/internal/skelerr"
)

//go:embed assets
var assets embed.FS

// EmbeddedDir is the virtual directory the built-in templates live under.
const EmbeddedDir = "/templates"

// Template names shipped with the binary.
const (
	Metadata        = "metadata.php"
	CoreModule      = "Application.Core.Module.php"
	AdminLanguage   = "views.admin.lang.php"
	ShopTranslation = "translation.lang.php"
	Logo            = "logo.png"
)

// Store resolves template names to bytes. Lookups that miss in an override
// directory fall through to the next store.
type Store struct {
	fs       billy.Filesystem
	dir      string
	fallback *Store
}

// New returns the store of built-in templates.
func New() (*Store, error) {
	mem := memfs.New()
	err := fs.WalkDir(assets, "assets", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := assets.ReadFile(p)
		if err != nil {
			return err
		}
		rel := strings.TrimPrefix(p, "assets/")
		return util.WriteFile(mem, path.Join(EmbeddedDir, rel), data, 0644)
	})
	if err != nil {
		return nil, fmt.Errorf("loading embedded templates: %w", err)
	}
	return &Store{fs: mem, dir: EmbeddedDir}, nil
}

// NewDir returns a store reading from dir and falling back to the built-in
// templates for names dir does not provide.
func NewDir(dir string) (*Store, error) {
	root := fspath.Abs(dir)
	info, err := os.Stat(root)
	if err != nil {
		return nil, skelerr.InvalidOption("templates directory [%s] is not accessible: %v", root, err)
	}
	if !info.IsDir() {
		return nil, skelerr.InvalidOption("templates directory [%s] is not a directory", root)
	}

	builtin, err := New()
	if err != nil {
		return nil, err
	}
	return &Store{fs: osfs.New(fspath.Separator), dir: root, fallback: builtin}, nil
}

// Dir returns the physical directory templates are resolved against.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the physical location of a template name.
func (s *Store) Path(name ...string) string {
	return fspath.Join(s.dir, name...)
}

func (s *Store) lookup(name []string) (*Store, string, error) {
	p := s.Path(name...)
	_, err := s.fs.Stat(p)
	if err == nil {
		return s, p, nil
	}
	if errors.Is(err, os.ErrNotExist) && s.fallback != nil {
		return s.fallback.lookup(name)
	}
	return nil, p, err
}

// Read returns the content of the named template.
func (s *Store) Read(name ...string) ([]byte, error) {
	logical := strings.Join(name, "/")
	owner, p, err := s.lookup(name)
	if err != nil {
		return nil, skelerr.IO("failed to read template", logical, p, err)
	}
	data, err := util.ReadFile(owner.fs, p)
	if err != nil {
		return nil, skelerr.IO("failed to read template", logical, p, err)
	}
	return data, nil
}

// Copy writes the named template unchanged to dest.
func (s *Store) Copy(dest string, name ...string) error {
	logical := strings.Join(name, "/")
	owner, p, err := s.lookup(name)
	if err != nil {
		return skelerr.IO("failed to copy template", logical, p, err)
	}

	src, err := owner.fs.Open(p)
	if err != nil {
		return skelerr.IO("failed to copy template", logical, p, err)
	}
	defer src.Close()

	out, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return skelerr.IO("failed to copy template", logical, dest, err)
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		return skelerr.IO("failed to copy template", logical, dest, err)
	}
	if err := out.Close(); err != nil {
		return skelerr.IO("failed to copy template", logical, dest, err)
	}
	return nil
}

// Names lists every template name the store can serve, sorted.
func (s *Store) Names() ([]string, error) {
	seen := make(map[string]bool)
	for cur := s; cur != nil; cur = cur.fallback {
		if err := cur.collect(cur.dir, "", seen); err != nil {
			return nil, fmt.Errorf("listing templates in %s: %w", cur.dir, err)
		}
	}

	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names, nil
}

func (s *Store) collect(dir, prefix string, seen map[string]bool) error {
	entries, err := s.fs.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		name := e.Name()
		if prefix != "" {
			name = prefix + "/" + name
		}
		if e.IsDir() {
			if err := s.collect(fspath.Join(dir, e.Name()), name, seen); err != nil {
				return err
			}
			continue
		}
		seen[name] = true
	}
	return nil
}
