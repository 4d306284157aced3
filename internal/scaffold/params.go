package scaffold

import (
	"fmt"
	"strings"

	"github.com/gp-oxid/oxskel/internal/render"
)

// Kind selects what is scaffolded.
type Kind string

const (
	KindModule    Kind = "module"
	KindComponent Kind = "component"
)

// Params are the user-supplied values of one run. The CLI fills them from
// flags and config; the orchestrator offers each as the default of its
// question.
type Params struct {
	Kind        Kind     `validate:"oneof=module component"`
	Path        string   `validate:"required"`
	Vendor      string   `validate:"composer_name"`
	Autoload    string   `validate:"required"`
	ID          string   `validate:"required_if=Kind module,omitempty,module_id"`
	Title       string
	Description string
	License     string
	Version     string   `validate:"version"`
	AuthorName  string
	AuthorEmail string   `validate:"omitempty,email"`
	Target      string
	Variant     string   `validate:"variant"`
	Languages   []string `validate:"dive,language"`
	Permission  string   `validate:"required_if=Kind component,omitempty,filemode"`
	Readme      bool
	Changelog   bool
	Override    bool
}

// DefaultModule returns the built-in module defaults.
func DefaultModule() Params {
	return Params{
		Kind:      KindModule,
		Path:      "./gp-skeleton-module",
		Vendor:    "<vendor>/<name>",
		Autoload:  `That\Should\Be\Changed`,
		ID:        "gp_module_skeleton",
		Title:     "Module skeleton for oxid 6",
		License:   "MIT",
		Version:   "1.0.0",
		Target:    "src/",
		Variant:   "smarty",
		Languages: []string{"de", "en"},
	}
}

// DefaultComponent returns the built-in component defaults.
func DefaultComponent() Params {
	return Params{
		Kind:       KindComponent,
		Path:       "./gp-skeleton-component",
		Vendor:     "please/change",
		Autoload:   `That\Should\Be\Changed`,
		License:    "MIT",
		Version:    "1.0.0",
		Target:     "src/",
		Permission: "0755",
	}
}

// NormalizeNamespace collapses doubled backslashes, as typed for shells, and
// strips leading and trailing separators.
func NormalizeNamespace(ns string) string {
	ns = strings.TrimSpace(ns)
	for strings.Contains(ns, `\\`) {
		ns = strings.ReplaceAll(ns, `\\`, `\`)
	}
	return strings.Trim(ns, `\`)
}

// Validate checks p and returns it with the path trimmed and the namespace
// normalized.
func (p Params) Validate() (Params, error) {
	p.Path = strings.TrimSpace(p.Path)
	p.Autoload = NormalizeNamespace(p.Autoload)
	if err := validateStruct(p); err != nil {
		return p, err
	}
	return p, nil
}

// Values returns the placeholder substitutions derived from p.
func (p Params) Values() render.Values {
	return render.Values{
		render.ID:              p.ID,
		render.Version:         p.Version,
		render.Title:           p.Title,
		render.Description:     p.Description,
		render.RootNamespace:   p.Autoload,
		render.ModuleNamespace: fmt.Sprintf(`%s\Core\Module`, p.Autoload),
		render.Vendor:          p.Vendor,
		render.Author:          p.AuthorName,
		render.Email:           p.AuthorEmail,
	}
}
