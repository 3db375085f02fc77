package fetch

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/YuminosukeSato/lightgbm-go/pkg/errors"
)

// errNotFound distinguishes a missing optional artifact from a real
// download failure.
var errNotFound = errors.New("not found")

// downloadFile streams url into dest, creating parent directories as
// needed. A 404 is reported as errNotFound so callers can decide whether
// the artifact was optional.
func downloadFile(ctx context.Context, client *http.Client, url, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.Wrapf(err, "building request for %s", url)
	}
	resp, err := client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "fetching %s", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return errors.Wrapf(errNotFound, "fetching %s", url)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Newf("fetching %s: HTTP %d", url, resp.StatusCode)
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return errors.Wrap(err, "creating destination directory")
	}
	f, err := os.Create(dest)
	if err != nil {
		return errors.Wrap(err, "creating destination file")
	}
	defer f.Close()

	if _, err := io.Copy(f, resp.Body); err != nil {
		return errors.Wrapf(err, "writing %s", dest)
	}
	return f.Close()
}

// fetchHeaders downloads the C API headers into includeDir concurrently.
// Required headers failing is fatal; optional ones missing upstream (pre
// v4.2.0 releases) are logged and skipped.
func fetchHeaders(ctx context.Context, client *http.Client, version, includeDir string, logger zerolog.Logger) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, h := range Headers() {
		g.Go(func() error {
			url := HeaderURL(version, h.Name)
			dest := filepath.Join(includeDir, h.Name)
			logger.Debug().Str("url", url).Msg("downloading header")

			err := downloadFile(ctx, client, url, dest)
			if err == nil {
				logger.Info().Str("header", h.Name).Msg("downloaded")
				return nil
			}
			if !h.Required && errors.Is(err, errNotFound) {
				logger.Info().Str("header", h.Name).Msg("not available for this version (optional)")
				return nil
			}
			return err
		})
	}
	return g.Wait()
}
