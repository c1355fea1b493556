// Package catalog builds the ordered sequence of link entries the
// installer processes. The catalog is constructed once at startup from
// configuration and never changes afterwards.
package catalog

import (
	"path/filepath"

	"github.com/arthur-debert/sublink/pkg/config"
	"github.com/arthur-debert/sublink/pkg/paths"
	"github.com/arthur-debert/sublink/pkg/types"
)

// Build assembles the link entries in install order: the editorconfig
// file, then build scripts, plugins, settings and syntax definitions.
//
// Duplicate targets are not rejected here; the linker processes entries
// in order, so a later entry overwrites an earlier one ("last write
// wins").
func Build(cfg *config.Config, p *paths.Paths) []types.LinkEntry {
	var entries []types.LinkEntry

	add := func(cat types.Category, sourceRel, target string) {
		entries = append(entries, types.LinkEntry{
			Category:  cat,
			SourceRel: sourceRel,
			Source:    p.SourcePath(sourceRel),
			Target:    target,
		})
	}

	if name := cfg.Catalog.Editorconfig; name != "" {
		add(types.CategoryEditorconfig, name, filepath.Join(p.PackagesDir(), name))
	}

	for _, name := range cfg.Catalog.Build {
		rel := filepath.Join(cfg.Dirs.Build, name)
		add(types.CategoryBuild, rel, filepath.Join(p.UserDir(), name))
	}

	// Plugins are whole directories linked directly under Packages/,
	// where Sublime Text discovers them by directory name.
	for _, name := range cfg.Catalog.Plugins {
		rel := filepath.Join(cfg.Dirs.Plugins, name)
		add(types.CategoryPlugin, rel, filepath.Join(p.PackagesDir(), name))
	}

	for _, name := range cfg.Catalog.Settings {
		rel := filepath.Join(cfg.Dirs.Settings, name)
		add(types.CategorySetting, rel, filepath.Join(p.UserDir(), name))
	}

	for _, name := range cfg.Catalog.Syntax {
		rel := filepath.Join(cfg.Dirs.Syntax, name)
		add(types.CategorySyntax, rel, filepath.Join(p.UserDir(), name))
	}

	return entries
}
