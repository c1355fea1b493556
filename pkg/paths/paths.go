package paths

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/sublink/pkg/errors"
)

// Environment variable names
const (
	// EnvSourceRoot overrides the configuration source root
	EnvSourceRoot = "SUBLINK_ROOT"

	// EnvTargetDir overrides the editor's Packages directory
	EnvTargetDir = "SUBLINK_TARGET"
)

// UserDirName is the subdirectory of Packages where Sublime Text reads
// user settings, keymaps, build systems and syntax definitions.
const UserDirName = "User"

// Paths resolves all locations the installer touches. Construct it
// once with New; it is immutable afterwards.
type Paths struct {
	sourceRoot     string
	packagesDir    string
	explicitSource bool
}

// New resolves the source root and the editor's Packages directory.
//
// The source root is taken from sourceRoot if non-empty, then from
// SUBLINK_ROOT, then from the directory containing the running binary.
// The binary normally lives inside the dotfiles checkout, mirroring a
// shell installer that resolves paths against its own location.
//
// The Packages directory is taken from targetDir if non-empty, then
// from SUBLINK_TARGET, then from the platform default for Sublime Text.
func New(sourceRoot, targetDir string) (*Paths, error) {
	explicit := true
	root := sourceRoot
	if root == "" {
		root = os.Getenv(EnvSourceRoot)
	}
	if root == "" {
		explicit = false
		exe, err := os.Executable()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrSourceRoot, "cannot locate installer directory")
		}
		root = filepath.Dir(exe)
	}

	root, err := normalize(root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrSourceRoot, "cannot resolve source root %s", root)
	}

	pkgs := targetDir
	if pkgs == "" {
		pkgs = os.Getenv(EnvTargetDir)
	}
	if pkgs == "" {
		pkgs = defaultPackagesDir()
	}
	if !filepath.IsAbs(pkgs) {
		abs, err := filepath.Abs(pkgs)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrTargetRoot, "cannot resolve target directory %s", pkgs)
		}
		pkgs = abs
	}

	return &Paths{
		sourceRoot:     root,
		packagesDir:    pkgs,
		explicitSource: explicit,
	}, nil
}

// SourceRoot returns the absolute root of the configuration sources.
func (p *Paths) SourceRoot() string {
	return p.sourceRoot
}

// SourceExplicit reports whether the source root was given explicitly
// (flag or environment) rather than inferred from the binary location.
func (p *Paths) SourceExplicit() bool {
	return p.explicitSource
}

// PackagesDir returns the editor's Packages directory.
func (p *Paths) PackagesDir() string {
	return p.packagesDir
}

// UserDir returns the Packages/User directory.
func (p *Paths) UserDir() string {
	return filepath.Join(p.packagesDir, UserDirName)
}

// SourcePath resolves a source-relative path against the source root.
func (p *Paths) SourcePath(rel string) string {
	return filepath.Join(p.sourceRoot, rel)
}

// CheckWorkingDir enforces the install precondition: the process must
// run from the source root so that an inferred root cannot silently
// point somewhere unexpected. An explicitly given root skips the check.
func (p *Paths) CheckWorkingDir() error {
	if p.explicitSource {
		return nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return errors.Wrap(err, errors.ErrPrecondition, "cannot determine working directory")
	}
	cwd, err = normalize(cwd)
	if err != nil {
		return errors.Wrap(err, errors.ErrPrecondition, "cannot resolve working directory")
	}

	if cwd != p.sourceRoot {
		return errors.Newf(errors.ErrPrecondition,
			"must be run from %s (working directory is %s)", p.sourceRoot, cwd).
			WithDetail("sourceRoot", p.sourceRoot).
			WithDetail("workingDir", cwd)
	}
	return nil
}

// normalize returns an absolute, symlink-resolved path so that
// comparisons are stable across /tmp vs /private/tmp style aliases.
func normalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return abs, nil
		}
		return "", err
	}
	return resolved, nil
}

// defaultPackagesDir returns Sublime Text's Packages directory for the
// current platform.
func defaultPackagesDir() string {
	switch runtime.GOOS {
	case "darwin", "windows":
		return filepath.Join(xdg.DataHome, "Sublime Text", "Packages")
	default:
		return filepath.Join(xdg.ConfigHome, "sublime-text", "Packages")
	}
}
