package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ".editorconfig", cfg.Catalog.Editorconfig)
	assert.Equal(t, "build", cfg.Dirs.Build)
	assert.Equal(t, "plugins", cfg.Dirs.Plugins)
	assert.Equal(t, "settings", cfg.Dirs.Settings)
	assert.Equal(t, "syntax", cfg.Dirs.Syntax)

	assert.Len(t, cfg.Catalog.Build, 2)
	assert.Equal(t, []string{"RunCommand"}, cfg.Catalog.Plugins)
	assert.Len(t, cfg.Catalog.Settings, 6)
	assert.Contains(t, cfg.Catalog.Settings, "Preferences.sublime-settings")
	assert.Equal(t, []string{"Log.sublime-syntax", "Todo.sublime-syntax"}, cfg.Catalog.Syntax)
}

func TestLoad_OverrideReplacesCategory(t *testing.T) {
	root := t.TempDir()
	override := `
[dirs]
syntax = "syntaxes"

[catalog]
syntax = ["Custom.sublime-syntax"]
`
	require.NoError(t, os.WriteFile(filepath.Join(root, ".sublink.toml"), []byte(override), 0644))

	cfg, err := Load(root)
	require.NoError(t, err)

	// Overridden keys replaced
	assert.Equal(t, "syntaxes", cfg.Dirs.Syntax)
	assert.Equal(t, []string{"Custom.sublime-syntax"}, cfg.Catalog.Syntax)

	// Everything else keeps its default
	assert.Equal(t, "build", cfg.Dirs.Build)
	assert.Equal(t, []string{"RunCommand"}, cfg.Catalog.Plugins)
	assert.Len(t, cfg.Catalog.Settings, 6)
}

func TestLoad_DottedNameWinsOverPlain(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ".sublink.toml"),
		[]byte("[catalog]\nplugins = [\"FromDotted\"]\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sublink.toml"),
		[]byte("[catalog]\nplugins = [\"FromPlain\"]\n"), 0644))

	cfg, err := Load(root)
	require.NoError(t, err)

	assert.Equal(t, []string{"FromDotted"}, cfg.Catalog.Plugins)
}

func TestLoad_MalformedOverride(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ".sublink.toml"),
		[]byte("not toml at all ["), 0644))

	_, err := Load(root)
	assert.Error(t, err)
}

func TestDefaultConfigContent(t *testing.T) {
	content := DefaultConfigContent()
	assert.Contains(t, content, "[catalog]")
	assert.Contains(t, content, "RunCommand")
}
