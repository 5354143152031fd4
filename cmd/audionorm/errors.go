package main

import (
	"errors"
	"strings"

	"audionorm/internal/deps"
	"audionorm/internal/workspace"
)

// formatError renders a fatal error with operator guidance where one exists.
func formatError(err error) string {
	var b strings.Builder
	b.WriteString("error: ")
	b.WriteString(err.Error())

	var missing *deps.MissingError
	switch {
	case errors.As(err, &missing):
		b.WriteString("\n\nInstall ffmpeg (ffprobe ships with it):")
		for _, hint := range deps.InstallHint() {
			b.WriteString("\n  ")
			b.WriteString(hint)
		}
	case errors.Is(err, workspace.ErrLocked):
		b.WriteString("\n\nAnother audionorm run is using this work directory; wait for it to finish.")
	}
	return b.String()
}
