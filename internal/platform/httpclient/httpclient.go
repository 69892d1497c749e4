// Package httpclient builds the outbound HTTP client used for provider
// calls.
package httpclient

import (
	"net/http"
	"time"

	"github.com/doyensec/safeurl"
)

// NewSafeClient returns a client that refuses private, loopback and
// link-local destinations, so a provider URL taken from config can never
// be pointed at internal infrastructure. The dialer re-checks resolved
// IPs, which also covers DNS rebinding.
func NewSafeClient(timeout time.Duration) *http.Client {
	cfg := safeurl.GetConfigBuilder().
		SetTimeout(timeout).
		SetAllowedSchemes("http", "https").
		SetAllowedPorts(80, 443).
		Build()

	return safeurl.Client(cfg).Client
}
