package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fullValues() Values {
	return Values{
		ID:              "acme_widget",
		Version:         "1.2.3",
		Title:           "Widget",
		Description:     "Makes widgets",
		RootNamespace:   `Acme\Widget`,
		ModuleNamespace: `Acme\Widget\Core\Module`,
		Vendor:          "acme/widget",
		Author:          "Jo Doe",
		Email:           "jo@example.com",
		LangName:        "Deutsch",
		LangAbbr:        "de",
	}
}

func TestRenderReplacesEveryOccurrence(t *testing.T) {
	tmpl := "const ID = '__ID__'; // __ID__ v__VERSION__\nnamespace __ROOTNAMESPACE__\\Core;\nuse __MODULENAMESPACE__;"

	got := Render(tmpl, fullValues())

	assert.Equal(t, "const ID = 'acme_widget'; // acme_widget v1.2.3\nnamespace Acme\\Widget\\Core;\nuse Acme\\Widget\\Core\\Module;", got)
}

func TestRenderLeavesNoRecognizedMarkers(t *testing.T) {
	var b strings.Builder
	for _, tok := range Tokens() {
		b.WriteString("x" + Marker(tok) + "y ")
	}

	got := Render(b.String(), fullValues())

	for _, tok := range Tokens() {
		assert.NotContains(t, got, Marker(tok))
	}
	assert.Equal(t, got, Render(got, fullValues()), "re-rendering must be a no-op")
}

func TestRenderUnknownMarkersPassThrough(t *testing.T) {
	got := Render("__ID__ __AUTHOR__ __id__ ____", Values{ID: "m"})
	assert.Equal(t, "m __AUTHOR__ __id__ ____", got)
}

func TestRenderMissingValueKeepsMarker(t *testing.T) {
	got := Render("__TITLE__ / __VERSION__", Values{Version: "2.0.0"})
	assert.Equal(t, "__TITLE__ / 2.0.0", got)
}

func TestRenderIsSinglePass(t *testing.T) {
	got := Render("__TITLE__|__DESCRIPTION__", Values{
		Title:       "__DESCRIPTION__",
		Description: "desc",
	})
	assert.Equal(t, "__DESCRIPTION__|desc", got)
}

func TestRenderEmptyValues(t *testing.T) {
	assert.Equal(t, "__ID__", Render("__ID__", nil))
}

func TestValuesWithCopies(t *testing.T) {
	base := Values{ID: "a"}
	next := base.With(LangAbbr, "de")

	assert.Equal(t, "de", next[LangAbbr])
	_, ok := base[LangAbbr]
	assert.False(t, ok)
}
