package config

const (
	defaultConfigPath             = "~/.config/knobgenre/config.toml"
	defaultMediaRoot              = "/media/radio"
	defaultDatabase               = "/media/radio/genre_index.db"
	defaultLogDir                 = "~/.local/share/knobgenre/logs"
	defaultFFprobeBinary          = "ffprobe"
	defaultTagsTimeoutSeconds     = 30
	defaultAcoustIDBaseURL        = "https://api.acoustid.org/v2"
	defaultAcoustIDKeyFile        = "~/.config/acoustid/apikey"
	defaultAcoustIDIntervalMS     = 350
	defaultAcoustIDTimeoutSeconds = 15
	defaultMusicBrainzBaseURL     = "https://musicbrainz.org/ws/2"
	defaultMusicBrainzUserAgent   = "knobgenre/1.0 (contact@example.org)"
	defaultMusicBrainzIntervalMS  = 1100
	defaultMusicBrainzTimeout     = 10
	defaultFpcalcBinary           = "fpcalc"
	defaultFpcalcTimeoutSeconds   = 60
	defaultFingerprintPrefixLen   = 32
	defaultMAESTBaseURL           = "http://127.0.0.1:8765"
	defaultFFmpegBinary           = "ffmpeg"
	defaultMAESTClipSeconds       = 30
	defaultMAESTSampleRate        = 16000
	defaultMAESTTopK              = 5
	defaultMAESTTimeoutSeconds    = 120
	defaultLogFormat              = "console"
	defaultLogLevel               = "info"
	defaultLogMaxSizeMB           = 20
	defaultLogMaxBackups          = 5
	defaultLogMaxAgeDays          = 60
)

var (
	defaultExtensions = []string{".mp3", ".ogg", ".flac", ".wav", ".m4a", ".opus", ".wma"}
	defaultSkipDirs   = []string{
		"lost+found", "configs", "html", "random_assets", "scripts",
		"log", "kstk", "gdrive", "radiobot", "__pycache__",
	}
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			MediaRoot: defaultMediaRoot,
			Database:  defaultDatabase,
			LogDir:    defaultLogDir,
		},
		Scanner: Scanner{
			Extensions: append([]string(nil), defaultExtensions...),
			SkipDirs:   append([]string(nil), defaultSkipDirs...),
		},
		Tags: Tags{
			FFprobeBinary:  defaultFFprobeBinary,
			TimeoutSeconds: defaultTagsTimeoutSeconds,
		},
		AcoustID: AcoustID{
			APIKeyFile:        defaultAcoustIDKeyFile,
			BaseURL:           defaultAcoustIDBaseURL,
			RequestIntervalMS: defaultAcoustIDIntervalMS,
			TimeoutSeconds:    defaultAcoustIDTimeoutSeconds,
		},
		MusicBrainz: MusicBrainz{
			BaseURL:           defaultMusicBrainzBaseURL,
			UserAgent:         defaultMusicBrainzUserAgent,
			RequestIntervalMS: defaultMusicBrainzIntervalMS,
			TimeoutSeconds:    defaultMusicBrainzTimeout,
		},
		Fingerprint: Fingerprint{
			FpcalcBinary:   defaultFpcalcBinary,
			TimeoutSeconds: defaultFpcalcTimeoutSeconds,
			PrefixLength:   defaultFingerprintPrefixLen,
		},
		MAEST: MAEST{
			Enabled:        true,
			BaseURL:        defaultMAESTBaseURL,
			FFmpegBinary:   defaultFFmpegBinary,
			ClipSeconds:    defaultMAESTClipSeconds,
			SampleRate:     defaultMAESTSampleRate,
			TopK:           defaultMAESTTopK,
			TimeoutSeconds: defaultMAESTTimeoutSeconds,
		},
		Logging: Logging{
			Format:     defaultLogFormat,
			Level:      defaultLogLevel,
			MaxSizeMB:  defaultLogMaxSizeMB,
			MaxBackups: defaultLogMaxBackups,
			MaxAgeDays: defaultLogMaxAgeDays,
		},
	}
}
