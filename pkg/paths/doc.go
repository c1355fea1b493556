// Package paths provides centralized path handling for sublink: where
// the configuration sources live, where the editor reads its packages,
// and the working-directory precondition that guards an install run.
package paths
