package config

const (
	defaultCDNBaseURL     = "https://cdn.tailbound.xyz"
	defaultRequestTimeout = 30
	defaultWorkDir        = "./audio-normalize-temp"
	defaultTargetDBFS     = -16.0
	defaultHeadroomDB     = 0.1
	defaultSampleRate     = 44100
	defaultMP3Bitrate     = "192k"
	defaultFFmpegBinary   = "ffmpeg"
	defaultFFprobeBinary  = "ffprobe"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// DefaultAssets lists the game audio files pulled from the CDN, relative to
// the CDN root.
func DefaultAssets() []string {
	return []string{
		// BGM
		"assets/audio/background/bgm-lobby-01.mp3",
		"assets/audio/background/bgm-game-01.mp3",
		// GUI
		"assets/audio/gui/button-click.mp3",
		"assets/audio/gui/slide-up.mp3",
		"assets/audio/gui/slide-down.mp3",
		"assets/audio/gui/ingame-start.wav",
		// Weapons
		"assets/audio/weapon/dokkaebi-fire.mp3",
		"assets/audio/weapon/fan-wind.mp3",
		"assets/audio/weapon/jakdu-blade.mp3",
		"assets/audio/weapon/talisman.mp3",
		"assets/audio/weapon/moktak-sound.mp3",
		// Enemies
		"assets/audio/enemy/common-01.mp3",
		"assets/audio/enemy/common-02.mp3",
		"assets/audio/enemy/common-03.mp3",
		"assets/audio/enemy/ghost-01.mp3",
		// Bosses
		"assets/audio/boss/white-tiger/attack.mp3",
		"assets/audio/boss/white-tiger/fire.mp3",
		"assets/audio/boss/white-tiger/injury.mp3",
	}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		CDN: CDN{
			BaseURL:        defaultCDNBaseURL,
			RequestTimeout: defaultRequestTimeout,
		},
		Paths: Paths{
			WorkDir: defaultWorkDir,
		},
		Normalize: Normalize{
			TargetDBFS:    defaultTargetDBFS,
			HeadroomDB:    defaultHeadroomDB,
			SampleRate:    defaultSampleRate,
			MP3Bitrate:    defaultMP3Bitrate,
			FFmpegBinary:  defaultFFmpegBinary,
			FFprobeBinary: defaultFFprobeBinary,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Assets: DefaultAssets(),
	}
}
