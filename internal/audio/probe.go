package audio

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/llehouerou/serein/internal/media"
)

var errNotRegular = errors.New("not a regular file")

// probe checks that url can be retrieved without fetching it. HTTP(S)
// resources get a HEAD request that must answer 2xx; anything else is a
// local path.
func probe(ctx context.Context, client *http.Client, url string) error {
	if !media.IsRemote(url) {
		info, err := os.Stat(media.LocalPath(url))
		if err != nil {
			return err
		}
		if !info.Mode().IsRegular() {
			return errNotRegular
		}
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("HEAD %s: %s", url, resp.Status)
	}
	return nil
}
