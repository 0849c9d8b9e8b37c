package config

// DB holds the database configuration settings.
type DB struct {
	Extras      string
	Host        string
	Port        int
	User        string
	Password    string
	Name        string
	Path        string // database file path, sqlite only
	GormEngine  string `mapstructure:"engine"`
	AutoMigrate bool   `mapstructure:"auto_migrate"` // create missing tables on startup
}
