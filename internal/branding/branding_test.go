package branding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmbeddedValues(t *testing.T) {
	assert.Equal(t, "oxskel", CLIName())
	assert.Equal(t, ".oxskel", HomeDir())
	assert.Equal(t, "OXSKEL", EnvPrefix())
	assert.Equal(t, "github.com/gp-oxid/oxskel", GoModule())
	assert.NotEmpty(t, DisplayName())
	assert.NotEmpty(t, Description())
}

func TestEnvVar(t *testing.T) {
	assert.Equal(t, "OXSKEL_TEMPLATES_DIR", EnvVar("templates_dir"))
}
