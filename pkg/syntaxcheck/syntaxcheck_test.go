package syntaxcheck

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/sublink/pkg/errors"
	"github.com/arthur-debert/sublink/pkg/filesystem"
	"github.com/arthur-debert/sublink/pkg/types"
)

const validSyntax = `%YAML 1.2
---
name: Log
file_extensions: [log]
scope: text.log
contexts:
  main:
    - match: 'ERROR'
      scope: markup.deleted
`

const validPlist = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>name</key>
	<string>Log</string>
</dict>
</plist>
`

func syntaxEntry(t *testing.T, root, name, content string) types.LinkEntry {
	t.Helper()
	source := filepath.Join(root, "syntax", name)
	if content != "" {
		require.NoError(t, os.MkdirAll(filepath.Dir(source), 0755))
		require.NoError(t, os.WriteFile(source, []byte(content), 0644))
	}
	return types.LinkEntry{
		Category:  types.CategorySyntax,
		SourceRel: filepath.Join("syntax", name),
		Source:    source,
		Target:    filepath.Join(root, "target", name),
	}
}

func TestCheck_ValidYAML(t *testing.T) {
	root := t.TempDir()
	e := syntaxEntry(t, root, "Log.sublime-syntax", validSyntax)

	results := Check(filesystem.NewOS(), []types.LinkEntry{e})
	require.Len(t, results, 1)
	assert.True(t, results[0].Ok())
}

func TestCheck_InvalidYAML(t *testing.T) {
	root := t.TempDir()
	e := syntaxEntry(t, root, "Broken.sublime-syntax", "contexts: [unclosed\n")

	results := Check(filesystem.NewOS(), []types.LinkEntry{e})
	require.Len(t, results, 1)
	require.Error(t, results[0].Err)
	assert.True(t, errors.IsErrorCode(results[0].Err, errors.ErrSyntaxParse))
}

func TestCheck_ValidPlist(t *testing.T) {
	root := t.TempDir()
	e := syntaxEntry(t, root, "Log.tmLanguage", validPlist)

	results := Check(filesystem.NewOS(), []types.LinkEntry{e})
	require.Len(t, results, 1)
	assert.True(t, results[0].Ok())
}

func TestCheck_InvalidPlist(t *testing.T) {
	root := t.TempDir()
	e := syntaxEntry(t, root, "Broken.tmLanguage", "<plist><dict></plist>")

	results := Check(filesystem.NewOS(), []types.LinkEntry{e})
	require.Len(t, results, 1)
	assert.Error(t, results[0].Err)
}

func TestCheck_PlistWithoutRoot(t *testing.T) {
	root := t.TempDir()
	e := syntaxEntry(t, root, "NoRoot.tmLanguage", "<?xml version=\"1.0\"?><dict></dict>")

	results := Check(filesystem.NewOS(), []types.LinkEntry{e})
	require.Len(t, results, 1)
	require.Error(t, results[0].Err)
	assert.Contains(t, results[0].Err.Error(), "no plist root")
}

func TestCheck_MissingSourceIsNotAFailure(t *testing.T) {
	root := t.TempDir()
	e := syntaxEntry(t, root, "Gone.sublime-syntax", "")

	results := Check(filesystem.NewOS(), []types.LinkEntry{e})
	require.Len(t, results, 1)
	assert.True(t, results[0].Missing)
	assert.NoError(t, results[0].Err)
	assert.False(t, results[0].Ok())
}

func TestCheck_SkipsOtherCategories(t *testing.T) {
	root := t.TempDir()
	setting := types.LinkEntry{
		Category: types.CategorySetting,
		Source:   filepath.Join(root, "settings", "a.sublime-settings"),
	}
	unknownExt := types.LinkEntry{
		Category: types.CategorySyntax,
		Source:   filepath.Join(root, "syntax", "notes.txt"),
	}

	results := Check(filesystem.NewOS(), []types.LinkEntry{setting, unknownExt})
	assert.Empty(t, results)
}
