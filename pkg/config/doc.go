// Package config loads the sublink catalog configuration.
//
// Configuration is layered: embedded defaults first, then an optional
// .sublink.toml (or sublink.toml) at the source root. Later layers
// replace earlier ones per key, so an override file can swap a single
// category without restating the rest.
package config
