// Package types defines the core types shared across the sublink codebase.
//
// This package has no dependencies on other sublink packages to avoid
// circular imports.
package types
