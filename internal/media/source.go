package media

import (
	"fmt"
	"net/url"
	"os"
	"strings"
)

// ResolveSource turns a source URL into a readable local file path.
// Accepted forms are file:// URLs and plain filesystem paths.
func ResolveSource(src string) (string, error) {
	if strings.TrimSpace(src) == "" {
		return "", fmt.Errorf("%w: empty source", ErrInvalidSource)
	}

	path := src
	if strings.Contains(src, "://") {
		u, err := url.Parse(src)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrInvalidSource, err)
		}
		if u.Scheme != "file" {
			return "", fmt.Errorf("%w: unsupported scheme %q", ErrInvalidSource, u.Scheme)
		}
		path = u.Path
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidSource, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", ErrInvalidSource, path)
	}
	return path, nil
}

// FileURL returns the file:// URL for a local path.
func FileURL(path string) string {
	u := url.URL{Scheme: "file", Path: path}
	return u.String()
}
