// Package status decodes the simulated HTTP status carried in a site URL.
package status

import (
	"net/url"
	"strings"
)

// successPath is the one non-empty path that still reads as success.
const successPath = "/200"

// Decode extracts the simulated status code from the URL path.
// An empty string means success: the path is empty, "/", or "/200".
// Any other path is returned without its leading slash, so "/500" decodes
// to "500".
func Decode(u *url.URL) string {
	if u == nil {
		return ""
	}

	path := u.EscapedPath()
	if path == "" || path == successPath {
		return ""
	}
	return strings.TrimPrefix(path, "/")
}

// IsSuccess reports whether a decoded code stands for success
func IsSuccess(code string) bool {
	return code == ""
}

// Label renders the result part of a status line: OK(200) or ERR(<code>)
func Label(code string) string {
	if IsSuccess(code) {
		return "OK(200)"
	}
	return "ERR(" + code + ")"
}
