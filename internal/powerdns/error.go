package powerdns

import (
	"errors"
)

var (
	// ErrClientNotInitialized is returned when the PowerDNS client is not initialized.
	ErrClientNotInitialized = errors.New("PowerDNS client not initialized")

	// ErrAPIURLEmpty is returned when the config has no powerdns.api_url.
	ErrAPIURLEmpty = errors.New("PowerDNS API URL is empty")

	// ErrRectifyFailed is returned when the rectify endpoint answers with a non 2xx status.
	ErrRectifyFailed = errors.New("PowerDNS rectify request failed")
)
