// Package pipeline runs one batch: reset the work tree, download every
// configured asset, normalize every file that landed in the download tree
// and print a summary.
//
// Failures of a single download or a single normalization are logged and
// recorded in the Report; they never stop the run or change its result.
// Only setup errors, a missing dependency, a held lock and cancellation are
// returned to the caller.
package pipeline
