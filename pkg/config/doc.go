// Package config loads doodles configuration files.
//
// A [Loader] validates raw YAML against a schema before decoding it, and
// wraps failures so that they point at the offending line of the source.
package config
