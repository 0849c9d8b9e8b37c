package config

import (
	"github.com/GoPowerDNS-Admin/record-engine/internal/logger"
)

// Config overall data structure.
type Config struct {
	DevMode  bool // enable dev mode for development
	DB       DB
	Log      logger.Log
	DNS      DNS
	Dnssec   Dnssec
	Misc     Misc
	PowerDNS PowerDNS
}

// DNS holds zone data defaults.
type DNS struct {
	DefaultTTL int `mapstructure:"default_ttl"` // TTL applied when a record omits one
}

// Dnssec controls interaction with the authoritative server after writes.
type Dnssec struct {
	Enabled bool // true = rectify zones after record changes
}

// Misc holds feature toggles that do not belong to a single subsystem.
type Misc struct {
	RecordCommentsSync bool `mapstructure:"record_comments_sync"` // keep A/AAAA and PTR comments paired
}

// PowerDNS holds the authoritative server API settings.
type PowerDNS struct {
	APIURL string `mapstructure:"api_url"` // base url of the PowerDNS API
	APIKey string `mapstructure:"api_key"` // X-API-Key value
	VHost  string `mapstructure:"vhost"`   // virtual host, usually localhost
}
