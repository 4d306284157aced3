package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gp-oxid/oxskel/internal/skelerr"
)

func TestDefaults(t *testing.T) {
	var p Prompter = Defaults{}

	got, err := p.Ask("Enter vendor", "acme/widget")
	require.NoError(t, err)
	assert.Equal(t, "acme/widget", got)

	ok, err := p.Confirm("Proceed?", true)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLineAsk(t *testing.T) {
	var out bytes.Buffer
	p := NewLine(strings.NewReader("custom\n\n"), &out)

	got, err := p.Ask("Enter vendor", "acme/widget")
	require.NoError(t, err)
	assert.Equal(t, "custom", got)

	got, err = p.Ask("Enter license", "MIT")
	require.NoError(t, err)
	assert.Equal(t, "MIT", got)

	got, err = p.Ask("Enter title", "Title")
	require.NoError(t, err, "end of input selects the default")
	assert.Equal(t, "Title", got)

	assert.Contains(t, out.String(), "Enter vendor (default: 'acme/widget'): ")
}

func TestLineConfirm(t *testing.T) {
	p := NewLine(strings.NewReader("y\nNO\n\nmaybe\n"), &bytes.Buffer{})

	ok, err := p.Confirm("a?", false)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = p.Confirm("b?", true)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = p.Confirm("c?", true)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = p.Confirm("d?", true)
	assert.True(t, skelerr.Is(err, skelerr.KindInvalidOption))
}
