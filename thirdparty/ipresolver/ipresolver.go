package ipresolver

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"strings"
	"time"
)

const Unknown = "unknown"

// Resolver finds the client IP of a request. It never fails; Unknown is returned
// when nothing usable is found.
type Resolver interface {
	Resolve(ctx context.Context, r *http.Request) string
}

type resolver struct {
	lookupURL  string
	trustProxy bool
	httpClient *http.Client
}

// NewResolver returns a Resolver reading the remote address, and proxy headers
// first when trustProxy is set. When lookupURL is set (an ipify-compatible
// endpoint returning {"ip": "..."}) it is queried as a last resort.
func NewResolver(lookupURL string, trustProxy bool, timeout time.Duration) Resolver {
	return &resolver{
		lookupURL:  lookupURL,
		trustProxy: trustProxy,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (res *resolver) Resolve(ctx context.Context, r *http.Request) string {
	if res.trustProxy {
		if ip := fromProxyHeaders(r); ip != "" {
			return ip
		}
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil && net.ParseIP(host) != nil {
		return host
	}
	if res.lookupURL != "" {
		return res.lookup(ctx)
	}
	return Unknown
}

func fromProxyHeaders(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first := strings.TrimSpace(strings.Split(fwd, ",")[0])
		if net.ParseIP(first) != nil {
			return first
		}
	}
	if realIP := strings.TrimSpace(r.Header.Get("X-Real-IP")); net.ParseIP(realIP) != nil {
		return realIP
	}
	return ""
}

func (res *resolver) lookup(ctx context.Context) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, res.lookupURL, nil)
	if err != nil {
		return Unknown
	}
	resp, err := res.httpClient.Do(req)
	if err != nil {
		return Unknown
	}
	defer resp.Body.Close()

	var out struct {
		IP string `json:"ip"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil || net.ParseIP(out.IP) == nil {
		return Unknown
	}
	return out.IP
}
