package linker

import (
	"os"

	"github.com/arthur-debert/sublink/pkg/errors"
	"github.com/arthur-debert/sublink/pkg/logging"
	"github.com/arthur-debert/sublink/pkg/types"
)

// Linker installs and inspects the catalog's symlinks.
type Linker struct {
	fs     types.FS
	dryRun bool
}

// New creates a Linker over the given filesystem. With dryRun set,
// Install records what it would do without mutating anything.
func New(fs types.FS, dryRun bool) *Linker {
	return &Linker{fs: fs, dryRun: dryRun}
}

// Install processes the entries in order. Entries are independent:
// one entry's failure never prevents the remaining entries from being
// attempted. The result aggregates every outcome; callers decide the
// exit status from it.
func (l *Linker) Install(entries []types.LinkEntry) types.InstallResult {
	logger := logging.GetLogger("linker")

	result := types.InstallResult{
		Results: make([]types.EntryResult, 0, len(entries)),
		DryRun:  l.dryRun,
	}

	seen := make(map[string]string, len(entries))
	for _, entry := range entries {
		if prev, dup := seen[entry.Target]; dup {
			logger.Warn().
				Str("target", entry.Target).
				Str("previous", prev).
				Str("source", entry.Source).
				Msg("duplicate target, later entry wins")
		}
		seen[entry.Target] = entry.Source

		result.Results = append(result.Results, l.installOne(entry))
	}

	logger.Info().
		Int("entries", len(entries)).
		Int("failures", result.FailureCount()).
		Bool("dryRun", l.dryRun).
		Msg("install finished")

	return result
}

// installOne performs the two-step operation on a single entry:
// best-effort removal of the target, then symlink creation. A removal
// failure is recorded but does not stop the link attempt; the link
// step reports its own error.
func (l *Linker) installOne(entry types.LinkEntry) types.EntryResult {
	logger := logging.GetLogger("linker")
	res := types.EntryResult{Entry: entry}

	if l.dryRun {
		res.Skipped = true
		logger.Debug().
			Str("source", entry.Source).
			Str("target", entry.Target).
			Msg("dry-run, skipping")
		return res
	}

	// RemoveAll clears files, directories and symlinks alike (a link
	// to a directory is removed, not followed) and treats absence as
	// success.
	if err := l.fs.RemoveAll(entry.Target); err != nil {
		res.RemoveErr = errors.Wrapf(err, errors.ErrRemoveFailed,
			"cannot remove existing %s", entry.Target)
		logger.Warn().Err(err).Str("target", entry.Target).Msg("removal failed")
	}

	// No check that the source exists: a dangling link is an accepted
	// outcome when the source tree is incomplete.
	if err := l.fs.Symlink(entry.Source, entry.Target); err != nil {
		res.LinkErr = errors.Wrapf(err, errors.ErrSymlinkCreate,
			"cannot link %s to %s", entry.Target, entry.Source)
		logger.Error().Err(err).
			Str("source", entry.Source).
			Str("target", entry.Target).
			Str("category", entry.Category.String()).
			Msg("symlink creation failed")
		return res
	}

	logger.Debug().
		Str("source", entry.Source).
		Str("target", entry.Target).
		Str("category", entry.Category.String()).
		Msg("linked")
	return res
}

// Status reports the current state of every entry without mutating
// anything.
func (l *Linker) Status(entries []types.LinkEntry) []types.EntryStatus {
	statuses := make([]types.EntryStatus, 0, len(entries))
	for _, entry := range entries {
		statuses = append(statuses, l.statusOne(entry))
	}
	return statuses
}

func (l *Linker) statusOne(entry types.LinkEntry) types.EntryStatus {
	st := types.EntryStatus{Entry: entry}

	if _, err := l.fs.Stat(entry.Source); err != nil && os.IsNotExist(err) {
		st.SourceMissing = true
	}

	info, err := l.fs.Lstat(entry.Target)
	if err != nil {
		st.State = types.StateMissing
		return st
	}

	if info.Mode()&os.ModeSymlink == 0 {
		st.State = types.StateFile
		return st
	}

	dest, err := l.fs.Readlink(entry.Target)
	if err != nil {
		st.State = types.StateWrong
		return st
	}
	st.LinkDest = dest
	if dest == entry.Source {
		st.State = types.StateLinked
	} else {
		st.State = types.StateWrong
	}
	return st
}
