package types

// LinkState classifies what currently sits at an entry's target path.
type LinkState string

const (
	// StateLinked means the target is a symlink pointing at the
	// entry's source.
	StateLinked LinkState = "linked"

	// StateWrong means the target is a symlink pointing somewhere else.
	StateWrong LinkState = "wrong"

	// StateFile means a regular file or directory occupies the target.
	StateFile LinkState = "file"

	// StateMissing means nothing exists at the target path.
	StateMissing LinkState = "missing"
)

// EntryResult records the outcome of installing a single catalog entry.
type EntryResult struct {
	Entry LinkEntry

	// RemoveErr is set when removing a pre-existing target failed for a
	// reason other than the target not existing. Link creation is still
	// attempted afterwards.
	RemoveErr error

	// LinkErr is set when symlink creation failed. An entry with a nil
	// LinkErr succeeded even if RemoveErr is set.
	LinkErr error

	// Skipped is true in dry-run mode: no filesystem mutation happened.
	Skipped bool
}

// Failed reports whether the entry ended without its link in place.
func (r EntryResult) Failed() bool {
	return r.LinkErr != nil
}

// InstallResult aggregates the per-entry outcomes of one install run.
type InstallResult struct {
	Results []EntryResult
	DryRun  bool
}

// FailureCount returns the number of entries whose link was not created.
func (r InstallResult) FailureCount() int {
	n := 0
	for _, res := range r.Results {
		if res.Failed() {
			n++
		}
	}
	return n
}

// Ok reports whether every entry was installed.
func (r InstallResult) Ok() bool {
	return r.FailureCount() == 0
}

// EntryStatus is the read-only view of one entry used by the status
// command. It never reflects a mutation.
type EntryStatus struct {
	Entry LinkEntry

	// State classifies the target path.
	State LinkState

	// LinkDest is the current symlink destination when State is
	// StateLinked or StateWrong.
	LinkDest string

	// SourceMissing is true when the entry's source does not exist on
	// disk. A linked entry with a missing source is a dangling link.
	SourceMissing bool
}

// Dangling reports whether the entry is a symlink to a missing source.
func (s EntryStatus) Dangling() bool {
	return s.State == StateLinked && s.SourceMissing
}
