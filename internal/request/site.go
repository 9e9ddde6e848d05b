package request

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/sitewatch/sitecheck/internal/status"
)

var (
	errNotAbsolute = errors.New("url must be absolute")
	errNoHost      = errors.New("url has no host")
)

// SiteName is the validated URL of the site being checked
type SiteName struct {
	value *url.URL
}

// ParseSiteName parses an absolute URL with a scheme and a host.
// The URL is normalized before use:
//  1. Scheme and host are lowercased.
//  2. The port must fit in 16 bits; leading zeros are dropped and default
//     ports (80 for http, 443 for https) are stripped.
//  3. An empty path becomes "/".
//  4. Dot segments ("." and "..") in the path are resolved.
//
// Query, fragment and trailing slashes are kept.
func ParseSiteName(s string) (SiteName, error) {
	u, err := url.Parse(s)
	if err != nil {
		return SiteName{}, NewError(KindSiteName, s, err)
	}
	if !u.IsAbs() {
		return SiteName{}, NewError(KindSiteName, s, errNotAbsolute)
	}
	if u.Host == "" || u.Hostname() == "" {
		return SiteName{}, NewError(KindSiteName, s, errNoHost)
	}

	host, err := normalizeHost(u)
	if err != nil {
		return SiteName{}, NewError(KindSiteName, s, err)
	}
	u.Host = host

	if u.Path == "" && u.RawPath == "" {
		u.Path = "/"
	}

	// Resolving against an empty reference collapses dot segments and keeps
	// query and fragment
	resolved := u.ResolveReference(&url.URL{})
	resolved.ForceQuery = u.ForceQuery

	return SiteName{value: resolved}, nil
}

// normalizeHost lowercases the host and canonicalizes its port
func normalizeHost(u *url.URL) (string, error) {
	hostname := strings.ToLower(u.Hostname())

	rawPort := u.Port()
	if rawPort == "" {
		return joinHost(hostname, ""), nil
	}

	port, err := strconv.ParseUint(rawPort, 10, 16)
	if err != nil {
		return "", fmt.Errorf("invalid port %q: %w", rawPort, err)
	}
	if (u.Scheme == "http" && port == 80) || (u.Scheme == "https" && port == 443) {
		return joinHost(hostname, ""), nil
	}
	return joinHost(hostname, strconv.FormatUint(port, 10)), nil
}

// joinHost rebuilds a URL host, bracketing IPv6 literals
func joinHost(hostname, port string) string {
	if port != "" {
		return net.JoinHostPort(hostname, port)
	}
	if strings.Contains(hostname, ":") {
		return "[" + hostname + "]"
	}
	return hostname
}

// StatusCode returns the simulated status code, empty on success
func (s SiteName) StatusCode() string {
	return status.Decode(s.value)
}

// Host returns the host name without port
func (s SiteName) Host() string {
	if s.value == nil {
		return ""
	}
	return s.value.Hostname()
}

// String renders the full URL
func (s SiteName) String() string {
	if s.value == nil {
		return ""
	}
	return s.value.String()
}
