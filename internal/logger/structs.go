package logger

// Console implements a console based logger.
type Console struct {
	Enabled bool `mapstructure:"enabled"`
	// UseConsoleWriter switches from JSON lines to human readable output.
	UseConsoleWriter bool `mapstructure:"pretty"`
}

// Rotation bundles the lumberjack limits shared by all rolling files.
type Rotation struct {
	MaxSize    int `mapstructure:"max_size"`
	MaxBackups int `mapstructure:"max_backups"`
	MaxAge     int `mapstructure:"max_age"`
}

// LogFile implements a file based logger with one rolling file per level
// group.
type LogFile struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`

	InfoLog  string `mapstructure:"info"`
	WarnLog  string `mapstructure:"warn"`
	ErrorLog string `mapstructure:"error"`
	TraceLog string `mapstructure:"trace"`

	Rotation Rotation `mapstructure:"rotation"`
}

// Log implements the logger config.
type Log struct {
	LogLevel string `mapstructure:"level"` // trace, debug, info, warn, error.
	LogEnv   string `mapstructure:"env"`

	ReportCaller bool `mapstructure:"report_caller"`

	AppName     string `mapstructure:"app_name"`
	ServiceName string `mapstructure:"service_name"`

	// Console used mainly for docker and dev.
	Console Console `mapstructure:"console"`

	// File logging for non docker environments.
	File LogFile `mapstructure:"file"`
}
