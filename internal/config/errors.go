package config

import (
	"errors"
)

var (
	// ErrUnknownDBEngine error if config db.engine names an unsupported database.
	ErrUnknownDBEngine = errors.New("toml config db.engine must be one of mysql, postgres, sqlite")

	// ErrNegativeDefaultTTL error if config dns.default_ttl is below zero.
	ErrNegativeDefaultTTL = errors.New("toml config dns.default_ttl can not be negative")
)
