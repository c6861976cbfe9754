package media

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
)

// maxSourceBytes bounds a buffered resource; guided meditations are a few
// tens of megabytes at most.
const maxSourceBytes = 256 << 20

// IsRemote reports whether src is fetched over HTTP.
func IsRemote(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

// LocalPath returns the filesystem path for a file:// URL or a bare path.
func LocalPath(src string) string {
	if strings.HasPrefix(src, "file://") {
		if u, err := url.Parse(src); err == nil {
			return u.Path
		}
		return strings.TrimPrefix(src, "file://")
	}
	return src
}

// fetch reads the whole resource. The returned content type is empty for
// local files.
func fetch(ctx context.Context, client *http.Client, src string) ([]byte, string, error) {
	if !IsRemote(src) {
		data, err := os.ReadFile(LocalPath(src))
		return data, "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return nil, "", err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusPartialContent {
		return nil, "", fmt.Errorf("GET %s: %s", src, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxSourceBytes))
	if err != nil {
		return nil, "", err
	}
	return data, resp.Header.Get("Content-Type"), nil
}
