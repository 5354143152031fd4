// Package main hosts the audionorm CLI entrypoint and command graph.
//
// Running audionorm with no subcommand performs a full batch: wipe the work
// tree, download every configured asset from the CDN, normalize loudness and
// print a summary. Subcommands inspect the environment (check), list the
// asset set (assets) and scaffold configuration (config).
//
// Keep this package lean: behavior lives in internal/pipeline and friends,
// and commands here only resolve configuration and render output.
package main
