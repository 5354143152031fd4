package deps

import "runtime"

// AudioRequirements lists the binaries needed to decode, inspect and encode
// audio.
func AudioRequirements(ffmpegBinary, ffprobeBinary string) []Requirement {
	return []Requirement{
		{
			Name:        "FFmpeg",
			Command:     ffmpegBinary,
			Description: "Required for audio decode and encode",
		},
		{
			Name:        "FFprobe",
			Command:     ffprobeBinary,
			Description: "Required for stream inspection",
		},
	}
}

// InstallHint returns platform install guidance for ffmpeg (ffprobe ships
// with it).
func InstallHint() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{"macOS: brew install ffmpeg"}
	case "windows":
		return []string{"Windows: winget install ffmpeg (or download from https://ffmpeg.org/download.html)"}
	default:
		return []string{
			"Ubuntu/Debian: sudo apt-get install ffmpeg",
			"Fedora: sudo dnf install ffmpeg",
			"macOS: brew install ffmpeg",
		}
	}
}
