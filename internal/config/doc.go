// Package config loads, normalizes, and validates audionorm configuration.
//
// Every setting has a built-in default that matches the batch job's fixed
// CDN, work directory and asset list, so the common case needs no file at
// all. An audionorm.toml in the working directory (or an explicit --config
// path) overrides individual values. Paths are expanded to absolute form and
// asset paths are cleaned so the rest of the program can join them directly.
package config
