// Package lint validates single-line titles against the Conventional
// Commits v1.0.0 format.
//
// A title is decomposed into type, optional scope, breaking-change marker,
// and description, then checked against an ordered set of independent rules.
// Strict mode layers stylistic rules (lowercase description, no terminal
// period, imperative mood) on top of the structural ones. Every violation
// carries a stable machine-readable code, a fixed message, and a corrective
// example; malformed input is represented as error data in the Result, never
// as an error from the call itself.
//
// Check is a pure function of its input and the Linter's fixed
// configuration: no I/O, no shared state, safe for concurrent reuse.
package lint
