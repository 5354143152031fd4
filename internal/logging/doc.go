// Package logging assembles structured slog loggers and attribute helpers
// used across audionorm.
//
// Console output goes through tint with color only when the destination is a
// terminal; JSON output uses stable ts/level/msg keys for log shipping.
// WarnWithContext makes every per-file failure carry an event type and
// operator hint. ErrorWithContext does the same for a step that aborts the run.
package logging
