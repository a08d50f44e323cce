// Package cli wires together the Cobra command tree for the titlelint
// binary.
//
// It defines the root command and all subcommands (check, commit, range, pr,
// event, hook, config, version), binds flags, builds the effective
// configuration, invokes the linter, and returns deterministic exit codes
// for CI gating: 0 valid, 1 invalid title, 2 usage or environment error,
// 3 auth error, 4 runtime error.
package cli
