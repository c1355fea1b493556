// Package linker implements the install operation: for each catalog
// entry, remove whatever sits at the target path and create a symlink
// to the source. The operation is idempotent; rerunning it reproduces
// the same link state.
package linker
