package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/sublink/pkg/errors"
	"github.com/arthur-debert/sublink/pkg/syntaxcheck"
	"github.com/arthur-debert/sublink/pkg/types"
)

func testEntry() types.LinkEntry {
	return types.LinkEntry{
		Category:  types.CategorySetting,
		SourceRel: "settings/a.sublime-settings",
		Source:    "/dotfiles/settings/a.sublime-settings",
		Target:    "/packages/User/a.sublime-settings",
	}
}

func TestRenderInstall_Success(t *testing.T) {
	r := NewRenderer()
	out := r.RenderInstall(types.InstallResult{
		Results: []types.EntryResult{{Entry: testEntry()}},
	})

	assert.Contains(t, out, "Installed")
	assert.Contains(t, out, "/packages/User/a.sublime-settings")
	assert.Contains(t, out, "settings/a.sublime-settings")
	assert.NotContains(t, out, "failed")
}

func TestRenderInstall_Failure(t *testing.T) {
	r := NewRenderer()
	res := types.EntryResult{
		Entry:   testEntry(),
		LinkErr: errors.New(errors.ErrSymlinkCreate, "cannot link"),
	}
	out := r.RenderInstall(types.InstallResult{Results: []types.EntryResult{res}})

	assert.Contains(t, out, "cannot link")
	assert.Contains(t, out, "1 of 1 entries failed")
}

func TestRenderInstall_DryRun(t *testing.T) {
	r := NewRenderer()
	res := types.EntryResult{Entry: testEntry(), Skipped: true}
	out := r.RenderInstall(types.InstallResult{Results: []types.EntryResult{res}, DryRun: true})

	assert.Contains(t, out, "Would install")
}

func TestRenderStatus(t *testing.T) {
	r := NewRenderer()
	statuses := []types.EntryStatus{
		{Entry: testEntry(), State: types.StateLinked},
		{Entry: testEntry(), State: types.StateWrong, LinkDest: "/somewhere/else"},
		{Entry: testEntry(), State: types.StateLinked, SourceMissing: true},
	}
	out := r.RenderStatus(statuses)

	assert.Contains(t, out, "linked")
	assert.Contains(t, out, "points at /somewhere/else")
	assert.Contains(t, out, "dangling")
}

func TestRenderCatalog(t *testing.T) {
	r := NewRenderer()
	out := r.RenderCatalog([]types.LinkEntry{testEntry()})

	assert.Contains(t, out, "Catalog")
	assert.Contains(t, out, "setting")
	assert.Contains(t, out, "-> /packages/User/a.sublime-settings")
}

func TestRenderCheck(t *testing.T) {
	r := NewRenderer()

	assert.Contains(t, r.RenderCheck(nil), "No syntax definitions")

	results := []syntaxcheck.Result{
		{Entry: testEntry()},
		{Entry: testEntry(), Missing: true},
		{Entry: testEntry(), Err: errors.New(errors.ErrSyntaxParse, "bad yaml")},
	}
	out := r.RenderCheck(results)
	assert.Contains(t, out, "source missing")
	assert.Contains(t, out, "bad yaml")
}

func TestRenderError(t *testing.T) {
	r := NewRenderer()
	out := r.RenderError(errors.New(errors.ErrPrecondition, "wrong directory"))
	require.Contains(t, out, "Error:")
	assert.Contains(t, out, "wrong directory")
}
