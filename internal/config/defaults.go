package config

const (
	defaultSourceName        = "Font Squirrel"
	defaultSourceDescription = "Free and commercial fonts from Font Squirrel"
	defaultSiteURL           = "https://www.fontsquirrel.com"
	defaultAPIEndpoint       = "https://www.fontsquirrel.com/api/fontlist/all"
	defaultSourceVersion     = "1.0"
	defaultKeyPrefix         = "squirrel"
	defaultTimeoutSeconds    = 30
	defaultUserAgent         = "FontGet/1.0 (https://github.com/graphixa/fontget)"
	defaultRecordDelayMS     = 100
	defaultProgressEvery     = 100
	defaultOutputPath        = "sources/font-squirrel.json"
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Source: Source{
			Name:        defaultSourceName,
			Description: defaultSourceDescription,
			SiteURL:     defaultSiteURL,
			APIEndpoint: defaultAPIEndpoint,
			Version:     defaultSourceVersion,
			KeyPrefix:   defaultKeyPrefix,
		},
		HTTP: HTTP{
			TimeoutSeconds: defaultTimeoutSeconds,
			UserAgent:      defaultUserAgent,
		},
		Pipeline: Pipeline{
			RecordDelayMS: defaultRecordDelayMS,
			ProgressEvery: defaultProgressEvery,
		},
		Output: Output{
			Path: defaultOutputPath,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
