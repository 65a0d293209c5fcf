// Package location classifies playlist entries: local paths, file:// URLs
// and http(s) URLs.
package location

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"
)

// ErrUnsupportedScheme is returned for URLs that are neither file:// nor http(s)://.
var ErrUnsupportedScheme = errors.New("unsupported location scheme")

// IsRemote reports whether loc is an http(s) URL.
func IsRemote(loc string) bool {
	lower := strings.ToLower(loc)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// LocalPath converts a filesystem path or file:// URL to a path.
func LocalPath(loc string) (string, error) {
	if !strings.Contains(loc, "://") {
		return loc, nil
	}
	u, err := url.Parse(loc)
	if err != nil {
		return "", err
	}
	if !strings.EqualFold(u.Scheme, "file") {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedScheme, u.Scheme)
	}
	return u.Path, nil
}

// Label returns the display name of a location: its last path segment.
func Label(loc string) string {
	if loc == "" {
		return ""
	}
	if strings.Contains(loc, "://") {
		if u, err := url.Parse(loc); err == nil {
			base := path.Base(u.Path)
			if base == "/" || base == "." {
				return u.Host
			}
			if unescaped, err := url.PathUnescape(base); err == nil {
				return unescaped
			}
			return base
		}
	}
	return filepath.Base(loc)
}

// Ext returns the lowercased file extension of a location, ignoring any
// URL query string or fragment.
func Ext(loc string) string {
	p := loc
	if strings.Contains(loc, "://") {
		if u, err := url.Parse(loc); err == nil {
			p = u.Path
		}
	}
	return strings.ToLower(path.Ext(p))
}
