// Package config builds the effective titlelint configuration by merging
// defaults, the global JSON config file, the repo-local .titlelint.yml, the
// environment (including GitHub Actions INPUT_* variables), and CLI flag
// overrides, in that order. The merged result is validated once; bad values
// are rejected before any title is checked.
package config
