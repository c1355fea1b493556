// Package filesystem provides filesystem implementations for sublink.
//
// This package contains implementations of the types.FS interface.
package filesystem
