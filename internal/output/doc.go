// Package output renders lint reports as human-readable text, JSON, or
// PR-comment-friendly markdown.
package output
