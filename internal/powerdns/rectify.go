package powerdns

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/GoPowerDNS-Admin/record-engine/internal/dnsname"
)

var rectifyClient = &http.Client{Timeout: defaultTimeout}

// RectifyZone asks the authoritative server to rewrite the DNSSEC
// ordering data of zone. The API endpoint is
// PUT /api/v1/servers/{vhost}/zones/{zone}/rectify.
func (e engine) RectifyZone(ctx context.Context, zone string) error {
	if e.Client == nil {
		return ErrClientNotInitialized
	}

	zone = dnsname.Fqdn(zone)

	endpoint := fmt.Sprintf("%s/api/v1/servers/%s/zones/%s/rectify",
		e.apiURL,
		url.PathEscape(e.vhost),
		url.PathEscape(zone),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, http.NoBody)
	if err != nil {
		return errors.Wrap(err, "failed to build rectify request")
	}

	req.Header.Set("X-API-Key", e.apiKey)

	resp, err := rectifyClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "rectify request for zone %q failed", zone)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Wrapf(ErrRectifyFailed, "zone %q: %s", zone, resp.Status)
	}

	log.Debug().Str("zone", zone).Msg("zone rectified")

	return nil
}
