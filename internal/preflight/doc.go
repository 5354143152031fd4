// Package preflight provides readiness checks for the binaries, filesystem
// paths and CDN that audionorm depends on.
//
// The CLI "audionorm check" command calls RunAll to display every check.
// The runner enforces only the binary requirements, through deps.Require,
// before touching the work tree.
package preflight
