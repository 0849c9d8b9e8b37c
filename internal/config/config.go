// Package config handles input from etc/*.toml files
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	envPrefix         = "RECORD_ENGINE"
	defaultConfigPath = "./etc/main.toml"
	defaultDBEngine   = "sqlite"
	defaultDBPath     = "record-engine.db"
	defaultDNSTTL     = 3600
	defaultVHost      = "localhost"
)

// ReadConfig from config file.
func ReadConfig(path string) (Config, error) {
	var (
		c             Config
		JSONConfigEnv string
		err           error
	)

	// Read main configuration
	if path == "" {
		path = defaultConfigPath
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err = v.ReadInConfig(); err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	if err = v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode main config file")
	}

	// override it from env
	JSONConfigEnv = os.Getenv(envPrefix + "_CONFIG_JSON")

	if JSONConfigEnv != "" {
		c, err = decodeAndMergeConfig(c, JSONConfigEnv)
		if err != nil {
			return c, err
		}
	}

	return c, validate(&c)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("db.engine", defaultDBEngine)
	v.SetDefault("db.path", defaultDBPath)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.app_name", "record-engine")
	v.SetDefault("log.service_name", "record-engine")
	v.SetDefault("dns.default_ttl", defaultDNSTTL)
	v.SetDefault("misc.record_comments_sync", true)
	v.SetDefault("powerdns.vhost", defaultVHost)
}

// decodeAndMergeConfig applies a JSON blob on top of the loaded config.
// Keys follow the Go field names.
func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	err := json.Unmarshal([]byte(configAsJSON), &c)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to read config override from env")
	}

	return c, nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c *Config) (string, error) {
	var buffer bytes.Buffer
	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// validate minimal config settings for the record engine.
// Validates only a very small part of the params needed
// by the engine.
func validate(c *Config) error {
	invalidErrMessage := "invalid config"

	if c.DB.GormEngine == "" {
		c.DB.GormEngine = defaultDBEngine
	}

	switch strings.ToLower(c.DB.GormEngine) {
	case "mysql", "postgres", "postgresql", "sqlite", "sqlite3":

	default:
		return errors.Wrap(ErrUnknownDBEngine, invalidErrMessage)
	}

	if c.DNS.DefaultTTL < 0 {
		return errors.Wrap(ErrNegativeDefaultTTL, invalidErrMessage)
	}

	if c.DNS.DefaultTTL == 0 {
		c.DNS.DefaultTTL = defaultDNSTTL
	}

	if c.PowerDNS.VHost == "" {
		c.PowerDNS.VHost = defaultVHost
	}

	return nil
}
