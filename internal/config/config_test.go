package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gp-oxid/oxskel/internal/skelerr"
)

func setup(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "home")
	t.Setenv("OXSKEL_HOME", dir)
	viper.Reset()
	t.Cleanup(viper.Reset)
	Load()
	return dir
}

func TestDirFromEnv(t *testing.T) {
	dir := setup(t)
	assert.Equal(t, dir, Dir())
	assert.Equal(t, filepath.Join(dir, "config.yaml"), FilePath())
}

func TestSetAndReload(t *testing.T) {
	setup(t)

	require.NoError(t, Set(KeyVendor, "acme/widget"))
	require.NoError(t, Set(KeyAuthorName, "Jane Doe"))
	assert.FileExists(t, FilePath())

	viper.Reset()
	Load()
	assert.Equal(t, "acme/widget", Get(KeyVendor))
	assert.Equal(t, "Jane Doe", Get(KeyAuthorName))
}

func TestSetUnknownKey(t *testing.T) {
	setup(t)

	err := Set("colour", "blue")
	require.Error(t, err)
	assert.True(t, skelerr.Is(err, skelerr.KindInvalidOption))
	_, statErr := os.Stat(FilePath())
	assert.True(t, os.IsNotExist(statErr))
}

func TestEnvOverride(t *testing.T) {
	setup(t)
	t.Setenv("OXSKEL_AUTHOR_EMAIL", "jane@example.com")
	assert.Equal(t, "jane@example.com", Get(KeyAuthorEmail))
}

func TestLanguages(t *testing.T) {
	setup(t)
	assert.Nil(t, Languages())

	viper.Set(KeyLanguages, " de, en ,,fr")
	assert.Equal(t, []string{"de", "en", "fr"}, Languages())
}

func TestKeysSorted(t *testing.T) {
	ks := Keys()
	require.NotEmpty(t, ks)
	for i := 1; i < len(ks); i++ {
		assert.Less(t, ks[i-1][0], ks[i][0])
	}
}
