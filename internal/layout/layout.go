// Package layout plans the directory skeleton of a scaffolded module. The
// base tree is always present; the template variant adds the Smarty and/or
// Twig subtrees.
package layout

import (
	"strings"

	"github.com/gp-oxid/oxskel/internal/fspath"
	"github.com/gp-oxid/oxskel/internal/skelerr"
)

// Variant selects which templating-engine subtrees a module layout includes.
type Variant int

const (
	VariantNone Variant = iota
	VariantSmarty
	VariantTwig
	VariantBoth
)

var variantNames = map[Variant]string{
	VariantNone:   "none",
	VariantSmarty: "smarty",
	VariantTwig:   "twig",
	VariantBoth:   "both",
}

func (v Variant) String() string {
	if name, ok := variantNames[v]; ok {
		return name
	}
	return "unknown"
}

// Names lists the accepted variant names in flag order.
func Names() []string {
	return []string{"none", "smarty", "twig", "both"}
}

// ParseVariant parses a variant name. The empty string selects VariantNone.
func ParseVariant(s string) (Variant, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return VariantNone, nil
	}
	for v, name := range variantNames {
		if name == s {
			return v, nil
		}
	}
	return VariantNone, skelerr.InvalidOption("template variant %q is not one of %s", s, strings.Join(Names(), ", "))
}

func (v Variant) includes(other Variant) bool {
	return v == other || v == VariantBoth
}

// dir is a planned directory relative to either the module root or the
// autoload target.
type dir struct {
	inTarget bool
	segments []string
}

func targetDir(segments ...string) dir { return dir{inTarget: true, segments: segments} }
func rootDir(segments ...string) dir { return dir{segments: segments} }

var baseDirs = []dir{
	targetDir("Application", "Controller", "Admin"),
	targetDir("Application", "Component", "Widget"),
	targetDir("Application", "Model"),
	targetDir("Application", "translations"),
	targetDir("Core"),
	targetDir("Service"),
	rootDir("views", "admin", "de"),
	rootDir("views", "admin", "en"),
	rootDir("migration", "data"),
	rootDir("out", "js"),
	rootDir("out", "css"),
	rootDir("out", "img"),
}

var smartyDirs = []dir{
	targetDir("Smarty", "Plugin"),
	rootDir("views", "blocks"),
	rootDir("views", "tpl", "admin"),
}

var twigDirs = []dir{
	targetDir("Twig", "Extension"),
	rootDir("views", "twig", "admin"),
	rootDir("views", "twig", "extensions", "themes", "default"),
}

// Plan returns the directories a module needs under root, with autoloaded
// sources under target. The result is deterministic and free of duplicates.
func Plan(root, target string, v Variant) []string {
	dirs := append([]dir{}, baseDirs...)
	if v.includes(VariantSmarty) {
		dirs = append(dirs, smartyDirs...)
	}
	if v.includes(VariantTwig) {
		dirs = append(dirs, twigDirs...)
	}

	p := newPlan()
	for _, d := range dirs {
		base := root
		if d.inTarget {
			base = target
		}
		p.add(fspath.Join(base, d.segments...))
	}
	return p.paths
}

// PlanComponent returns the directories of a composer component: its root
// and its autoload target.
func PlanComponent(root, target string) []string {
	p := newPlan()
	p.add(fspath.Join(root))
	p.add(fspath.Join(target))
	return p.paths
}

type plan struct {
	seen  map[string]bool
	paths []string
}

func newPlan() *plan {
	return &plan{seen: make(map[string]bool)}
}

func (p *plan) add(path string) {
	if p.seen[path] {
		return
	}
	p.seen[path] = true
	p.paths = append(p.paths, path)
}
