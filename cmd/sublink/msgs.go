package sublink

// User-facing strings for the CLI. Kept together so wording stays
// consistent across commands.
const (
	MsgRootShort = "Install a personal Sublime Text configuration"
	MsgRootLong  = `sublink installs a personal Sublime Text configuration by linking
files from a dotfiles checkout into the editor's Packages directory:
an editorconfig file, build-system helper scripts, plugin directories,
settings files and syntax definitions.

The install is idempotent: each target is removed and relinked, so
rerunning it always converges on the same state.`

	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagSource  = "Source root of the configuration checkout (default: the binary's directory)"
	MsgFlagTarget  = "Editor Packages directory (default: platform location)"
	MsgFlagDryRun  = "Preview changes without touching the filesystem"
	MsgFlagWrite   = "Write the config to .sublink.toml instead of stdout"

	MsgInstallShort = "Link the configuration into the editor"
	MsgInstallLong  = `Install processes the catalog in order. For each entry it removes
whatever currently occupies the target path (a file, directory or
stale link) and creates a symbolic link to the source. A missing
source still gets its link; the editor simply ignores it until the
file appears.

Unless --source is given, install must be run from the checkout root.
Entries fail independently: the run continues past failures and exits
nonzero if any entry could not be linked.`

	MsgStatusShort = "Show the current state of every catalog entry"
	MsgStatusLong  = `Status reports, without modifying anything, whether each target is
linked to its source, linked elsewhere, occupied by a regular file,
or absent. Links whose source is missing are flagged as dangling.`

	MsgListShort = "Print the link catalog"

	MsgCheckShort = "Validate syntax-definition sources"
	MsgCheckLong  = `Check parses each syntax-definition source: .sublime-syntax files as
YAML and legacy .tmLanguage files as plist XML. Problems are reported
but never block install.`

	MsgGenConfigShort = "Print a .sublink.toml override template"

	MsgVersionShort = "Print version information"

	MsgCompletionShort = "Generate shell completion script"
)
