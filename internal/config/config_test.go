package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

var envKeys = []string{
	"DECK_CONFIG", "DECK_MULTIPLE", "DECK_ACE_HIGH", "DECK_JOKERS", "DECK_SEED",
	"DECK_STATE_PATH", "DECK_OUTPUT", "DECK_LOCALE", "DECK_PRETTY_TRACES",
	"APP_ENV", "OTEL_TRACES_EXPORTER",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Multiple)
	assert.False(t, cfg.AceIsHigh)
	assert.False(t, cfg.IncludeJokers)
	assert.Nil(t, cfg.Seed)
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, language.English, cfg.Language)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "none", cfg.TracesExport)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DECK_MULTIPLE", "3")
	t.Setenv("DECK_ACE_HIGH", "true")
	t.Setenv("DECK_JOKERS", "1")
	t.Setenv("DECK_SEED", "42")
	t.Setenv("DECK_OUTPUT", "YAML")
	t.Setenv("DECK_LOCALE", "fr")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Multiple)
	assert.True(t, cfg.AceIsHigh)
	assert.True(t, cfg.IncludeJokers)
	require.NotNil(t, cfg.Seed)
	assert.EqualValues(t, 42, *cfg.Seed)
	assert.Equal(t, "yaml", cfg.Output)
	assert.Equal(t, language.French, cfg.Language)
}

func TestLoadFromEnv_ClampsMultiple(t *testing.T) {
	clearEnv(t)
	t.Setenv("DECK_MULTIPLE", "0")
	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Multiple)
}

func TestLoadFromEnv_Invalid(t *testing.T) {
	clearEnv(t)
	t.Setenv("DECK_SEED", "abc")
	t.Setenv("DECK_OUTPUT", "xml")
	_, err := LoadFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DECK_SEED")
	assert.Contains(t, err.Error(), "DECK_OUTPUT")
}

func TestLoadFromEnv_File(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "deck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("multiple: 2\ninclude_jokers: true\nseed: 7\noutput: yaml\n"), 0o644))
	t.Setenv("DECK_CONFIG", path)
	t.Setenv("DECK_OUTPUT", "json")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Multiple)
	assert.True(t, cfg.IncludeJokers)
	require.NotNil(t, cfg.Seed)
	assert.EqualValues(t, 7, *cfg.Seed)
	assert.Equal(t, "json", cfg.Output, "env wins over file")
}

func TestLoadFromEnv_MissingFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("DECK_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))
	_, err := LoadFromEnv()
	assert.ErrorIs(t, err, os.ErrNotExist)
}
