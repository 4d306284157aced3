package scaffold

import (
	"fmt"
	"strings"
	"time"

	"github.com/gp-oxid/oxskel/internal/fspath"
	"github.com/gp-oxid/oxskel/internal/manifest"
	"github.com/gp-oxid/oxskel/internal/render"
	"github.com/gp-oxid/oxskel/internal/templates"
)

// Logical artifact names.
const (
	ArtifactComposer   = "composer.json"
	ArtifactMetadata   = "metadata.php"
	ArtifactModule     = "Module.php"
	ArtifactMigrations = "migrations.yml"
	ArtifactReadme     = "README.md"
	ArtifactChangelog  = "CHANGELOG.md"
	ArtifactLogo       = "logo.png"
)

// artifact is one generated file. Either build renders its content or
// template names a store entry copied verbatim.
type artifact struct {
	name     string
	dest     string
	fatal    bool
	optional bool
	label    string
	build    func() ([]byte, error)
	template []string
}

func (a artifact) describe() string {
	if a.label != "" {
		return a.label
	}
	return a.name
}

// run holds the validated parameters and resolved paths of one invocation.
type run struct {
	params Params
	root   string
	target string
	now    time.Time
	store  *templates.Store
}

func (r *run) composer() (*manifest.Composer, []byte, error) {
	p := r.params
	author := manifest.Author{Name: p.AuthorName, Email: p.AuthorEmail}
	var c *manifest.Composer
	if p.Kind == KindComponent {
		c = manifest.NewComponent(p.Vendor, p.Description, p.License, p.Version, p.Autoload, p.Target, author)
	} else {
		c = manifest.NewModule(p.Vendor, p.Description, p.License, p.Version, p.Autoload, p.Target, author)
	}
	data, err := manifest.Marshal(c)
	return c, data, err
}

func (r *run) rendered(values render.Values, name ...string) func() ([]byte, error) {
	return func() ([]byte, error) {
		tmpl, err := r.store.Read(name...)
		if err != nil {
			return nil, err
		}
		return []byte(render.Render(string(tmpl), values)), nil
	}
}

func (r *run) moduleArtifacts() []artifact {
	p := r.params
	values := p.Values()

	arts := []artifact{
		{
			name:  ArtifactComposer,
			dest:  fspath.Join(r.root, "composer.json"),
			fatal: true,
			build: func() ([]byte, error) {
				_, data, err := r.composer()
				return data, err
			},
		},
		{
			name:  ArtifactMetadata,
			dest:  fspath.Join(r.root, "metadata.php"),
			build: r.rendered(values, templates.Metadata),
		},
		{
			name:  ArtifactModule,
			dest:  fspath.Join(r.target, "Core", "Module.php"),
			build: r.rendered(values, templates.CoreModule),
		},
	}

	for _, l := range adminLangs() {
		v := values.With(render.LangName, l.name).With(render.LangAbbr, l.abbr)
		arts = append(arts, artifact{
			name:  fmt.Sprintf("%s_admin_%s_lang.php", p.ID, l.abbr),
			dest:  fspath.Join(r.root, "views", "admin", l.abbr, fmt.Sprintf("%s_admin_%s_lang.php", p.ID, l.abbr)),
			label: "admin language " + l.name,
			build: r.rendered(v, templates.AdminLanguage),
		})
	}
	for _, l := range shopLangs(p.Languages) {
		v := values.With(render.LangName, l.name).With(render.LangAbbr, l.abbr)
		arts = append(arts, artifact{
			name:  fmt.Sprintf("%s_%s_lang.php", p.ID, l.abbr),
			dest:  fspath.Join(r.target, "Application", "translations", l.abbr, fmt.Sprintf("%s_%s_lang.php", p.ID, l.abbr)),
			label: "language " + l.name,
			build: r.rendered(v, templates.ShopTranslation),
		})
	}

	arts = append(arts, artifact{
		name: ArtifactMigrations,
		dest: fspath.Join(r.root, "migration", "migrations.yml"),
		build: func() ([]byte, error) {
			return manifest.Migrations(p.ID, p.Autoload)
		},
	})
	if p.Readme {
		arts = append(arts, artifact{
			name:     ArtifactReadme,
			dest:     fspath.Join(r.root, "README.md"),
			optional: true,
			build:    func() ([]byte, error) { return []byte(r.readme()), nil },
		})
	}
	if p.Changelog {
		arts = append(arts, artifact{
			name:     ArtifactChangelog,
			dest:     fspath.Join(r.root, "CHANGELOG.md"),
			optional: true,
			build:    func() ([]byte, error) { return []byte(r.changelog()), nil },
		})
	}
	return append(arts, artifact{
		name:     ArtifactLogo,
		dest:     fspath.Join(r.root, "out", "logo.png"),
		template: []string{templates.Logo},
	})
}

func (r *run) componentArtifacts() []artifact {
	return []artifact{
		{
			name:  ArtifactComposer,
			dest:  fspath.Join(r.root, "composer.json"),
			fatal: true,
			build: func() ([]byte, error) {
				_, data, err := r.composer()
				return data, err
			},
		},
		{
			name:     ArtifactReadme,
			dest:     fspath.Join(r.root, "README.md"),
			optional: true,
			build:    func() ([]byte, error) { return []byte(r.readme()), nil },
		},
	}
}

func (r *run) readme() string {
	p := r.params
	lines := []string{
		"# " + p.Vendor,
		"",
		p.Description,
		"",
		"",
		"## Installation",
		"",
		"```bash",
		"composer require " + p.Vendor,
	}
	if p.Kind == KindModule {
		lines = append(lines,
			"vendor/bin/oe-console oe:module:install-configuration "+r.root,
			"vendor/bin/oe-console oe:module:activate "+p.ID,
		)
	}
	lines = append(lines,
		"```",
		"## License",
		"",
		p.License,
		"",
		"",
		"## Copyright",
		"",
	)
	if author := authorLine(p.AuthorName, p.AuthorEmail); author != "" {
		lines = append(lines, author)
	}
	return strings.Join(lines, "\n")
}

func authorLine(name, email string) string {
	line := name
	if email != "" {
		line += " <" + email + ">"
	}
	return strings.TrimSpace(line)
}

func (r *run) changelog() string {
	lines := []string{
		"# CHANGELOG",
		"",
		"## [Unreleased]",
		"### Added",
		"### Changed",
		"### Fixed",
		"### Removed",
		"### Deprecated",
		"### Security",
		"",
		fmt.Sprintf("## [%s] %s", r.params.Version, r.now.Format("2006-01-02")),
		"### Added",
		"- Created skeleton",
		"",
	}
	return strings.Join(lines, "\n")
}
