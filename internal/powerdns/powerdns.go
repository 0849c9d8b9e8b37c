// Package powerdns talks to the authoritative PowerDNS server over its
// HTTP API.
package powerdns

import (
	"context"
	"strings"
	"time"

	"github.com/joeig/go-powerdns/v3"
	"github.com/rs/zerolog/log"

	"github.com/GoPowerDNS-Admin/record-engine/internal/config"
)

const (
	defaultTimeout = 30 * time.Second
)

type engine struct {
	*powerdns.Client

	apiURL string
	vhost  string
	apiKey string
}

// Engine represents the PowerDNS client engine.
var Engine engine

func (e engine) Test() error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	// Test PowerDNS API connection
	if e.Client == nil {
		return ErrClientNotInitialized
	}

	zones, err := e.Zones.List(ctx)
	if err != nil {
		return err
	}

	log.Info().Int("zone_count", len(zones)).Msg("PowerDNS API connection test successful")

	return nil
}

// ListZones returns the zones known to the authoritative server.
func (e engine) ListZones(ctx context.Context) ([]powerdns.Zone, error) {
	if e.Client == nil {
		return nil, ErrClientNotInitialized
	}

	return e.Zones.List(ctx) //nolint: wrapcheck
}

// Open initializes the PowerDNS client using settings from the configuration.
func Open(cfg *config.Config) error {
	if cfg.PowerDNS.APIURL == "" {
		return ErrAPIURLEmpty
	}

	Engine.apiURL = strings.TrimRight(cfg.PowerDNS.APIURL, "/")
	Engine.vhost = cfg.PowerDNS.VHost
	Engine.apiKey = cfg.PowerDNS.APIKey

	// create new PowerDNS client
	Engine.Client = powerdns.New(cfg.PowerDNS.APIURL, cfg.PowerDNS.VHost, powerdns.WithAPIKey(cfg.PowerDNS.APIKey))

	return nil
}
