package types

// Category identifies which part of the editor configuration a link
// entry belongs to. It is used for diagnostic labeling only; every
// category is installed by the same delete-then-link routine.
type Category string

const (
	CategoryEditorconfig Category = "editorconfig"
	CategoryBuild        Category = "build"
	CategoryPlugin       Category = "plugin"
	CategorySetting      Category = "setting"
	CategorySyntax       Category = "syntax"
)

// String returns the category name.
func (c Category) String() string {
	return string(c)
}

// LinkEntry describes one symbolic link the installer maintains:
// Target should be a symlink pointing at Source.
type LinkEntry struct {
	// Category labels the entry for diagnostics and reports.
	Category Category

	// SourceRel is the source path relative to the source root,
	// e.g. "settings/Preferences.sublime-settings".
	SourceRel string

	// Source is the absolute source path, resolved against the source
	// root at catalog construction time so the entry stays correct
	// regardless of the process working directory.
	Source string

	// Target is the absolute path where the symlink is created.
	Target string
}
