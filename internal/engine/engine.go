// Package engine assembles the record engine from its collaborators.
package engine

import (
	"errors"

	"gorm.io/gorm"

	"github.com/GoPowerDNS-Admin/record-engine/internal/config"
	"github.com/GoPowerDNS-Admin/record-engine/internal/db"
	"github.com/GoPowerDNS-Admin/record-engine/internal/logger"
	"github.com/GoPowerDNS-Admin/record-engine/internal/powerdns"
	"github.com/GoPowerDNS-Admin/record-engine/internal/records"
	"github.com/GoPowerDNS-Admin/record-engine/internal/validation"
)

// ErrConfigNil is returned when New is called without a configuration.
var ErrConfigNil = errors.New("config is nil")

// Engine bundles the wired collaborators of a running instance.
type Engine struct {
	Cfg      *config.Config
	DB       *gorm.DB
	Registry *validation.Registry
	Manager  *records.Manager
}

// New wires an engine from the provided configuration: logging, database,
// the optional PowerDNS API client, and the record manager on top of them.
func New(cfg *config.Config) (*Engine, error) {
	if cfg == nil {
		return nil, ErrConfigNil
	}

	if err := logger.Init(cfg.Log); err != nil {
		return nil, err
	}

	gdb, err := db.Open(cfg)
	if err != nil {
		return nil, err
	}

	// The rectifier stays nil without an API endpoint, the manager then
	// skips rectification.
	var rectify records.Rectifier

	if cfg.PowerDNS.APIURL != "" {
		if err = powerdns.Open(cfg); err != nil {
			return nil, err
		}

		rectify = powerdns.Engine
	}

	registry := validation.NewRegistry()
	sync := records.NewCommentSync(gdb, cfg.Misc.RecordCommentsSync)

	mgr := records.NewManager(gdb, registry, sync, rectify, records.Options{
		DefaultTTL:    cfg.DNS.DefaultTTL,
		DnssecEnabled: cfg.Dnssec.Enabled,
	})

	return &Engine{
		Cfg:      cfg,
		DB:       gdb,
		Registry: registry,
		Manager:  mgr,
	}, nil
}
