// Package gitctx collects commit subjects and repository metadata by
// shelling out to git. It knows how to read a single commit, a revision
// range, and the message file handed to a commit-msg hook.
package gitctx
