package scaffold

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gp-oxid/oxskel/internal/render"
	"github.com/gp-oxid/oxskel/internal/skelerr"
)

func TestNormalizeNamespace(t *testing.T) {
	tests := map[string]string{
		`Acme\Widget`:        `Acme\Widget`,
		`\\Acme\\\\Widget\\`: `Acme\Widget`,
		`  \Acme\Widget\  `:  `Acme\Widget`,
		`\`:                  ``,
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeNamespace(in), "input %q", in)
	}
}

func TestValidate_Defaults(t *testing.T) {
	p := DefaultModule()
	p.Vendor = "acme/widget"
	_, err := p.Validate()
	require.NoError(t, err)

	c := DefaultComponent()
	_, err = c.Validate()
	require.NoError(t, err)
}

func TestValidate_PlaceholderVendorRejected(t *testing.T) {
	_, err := DefaultModule().Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "<vendor>/<name>")
}

func TestValidate_VersionWithPrefix(t *testing.T) {
	p := DefaultModule()
	p.Vendor = "acme/widget"
	p.Version = "v2.1.0-beta.1"
	_, err := p.Validate()
	assert.NoError(t, err)
}

func TestValidate_Rules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
		want   string
	}{
		{"uppercase vendor", func(p *Params) { p.Vendor = "Acme/Widget" }, `vendor "Acme/Widget"`},
		{"vendor without name", func(p *Params) { p.Vendor = "acme" }, `vendor "acme"`},
		{"bad email", func(p *Params) { p.AuthorEmail = "not an email" }, "author email"},
		{"id with dash", func(p *Params) { p.ID = "acme-widget" }, "module ID"},
		{"bad version", func(p *Params) { p.Version = "one" }, `version "one"`},
		{"bad language", func(p *Params) { p.Languages = []string{"de", "!!"} }, `language "!!"`},
		{"bad variant", func(p *Params) { p.Variant = "blade" }, `template variant "blade"`},
		{"empty autoload", func(p *Params) { p.Autoload = `\` }, "autoload namespace must not be empty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultModule()
			p.Vendor = "acme/widget"
			tt.mutate(&p)
			_, err := p.Validate()
			require.Error(t, err)
			assert.True(t, skelerr.Is(err, skelerr.KindInvalidOption))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate_EmptyEmailAllowed(t *testing.T) {
	p := DefaultModule()
	p.Vendor = "acme/widget"
	p.AuthorEmail = ""
	_, err := p.Validate()
	assert.NoError(t, err)

	p.AuthorEmail = "jane@example.com"
	_, err = p.Validate()
	assert.NoError(t, err)
}

func TestValidate_ComponentNeedsPermission(t *testing.T) {
	c := DefaultComponent()
	c.Permission = ""
	_, err := c.Validate()
	require.Error(t, err)
	assert.True(t, skelerr.Is(err, skelerr.KindInvalidOption))
	assert.Contains(t, err.Error(), "permission must not be empty")

	// A component carries no module ID.
	c = DefaultComponent()
	c.ID = ""
	_, err = c.Validate()
	assert.NoError(t, err)
}

func TestValidate_ReportsEveryField(t *testing.T) {
	p := DefaultModule()
	p.Version = "one"
	_, err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "<vendor>/<name>")
	assert.Contains(t, err.Error(), `version "one"`)
	assert.Contains(t, err.Error(), "; ")
}

func TestValues(t *testing.T) {
	p := DefaultModule()
	p.Autoload = `Acme\Widget`
	v := p.Values()
	assert.Equal(t, `Acme\Widget`, v[render.RootNamespace])
	assert.Equal(t, `Acme\Widget\Core\Module`, v[render.ModuleNamespace])
	assert.Equal(t, "gp_module_skeleton", v[render.ID])
}

func TestLanguages(t *testing.T) {
	admin := adminLangs()
	require.Len(t, admin, 2)
	assert.Equal(t, lang{abbr: "de", name: "Deutsch"}, admin[0])
	assert.Equal(t, lang{abbr: "en", name: "Englisch"}, admin[1])

	shop := shopLangs([]string{"de", "en", "de", "fr"})
	require.Len(t, shop, 3)
	assert.Equal(t, "Deutsch", shop[0].name)
	assert.Equal(t, "English", shop[1].name)
	assert.Equal(t, "français", shop[2].name)
}
