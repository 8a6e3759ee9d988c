package quote

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"fmt"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"

	"github.com/etnz/ledger/date"
	"github.com/rs/zerolog"
)

// DailyCache is an http.RoundTripper storing successful responses on disk.
//
// Cache keys include the current day, so cached prices expire every day.
type DailyCache struct {
	Dir  string            // Dir holds the cached responses, os.TempDir() when empty.
	Base http.RoundTripper // Base performs the requests, http.DefaultTransport when nil.
	Log  zerolog.Logger
	Now  func() date.Date // Now returns the current day, date.Today when nil.
}

func (c *DailyCache) RoundTrip(req *http.Request) (*http.Response, error) {
	now := date.Today
	if c.Now != nil {
		now = c.Now
	}
	key := fmt.Sprintf("%s %s %s", now(), req.Method, req.URL.String())
	key = fmt.Sprintf("quote-%x", sha1.Sum([]byte(key)))

	if resp, err := c.get(key, req); err == nil {
		c.Log.Debug().Str("url", req.URL.String()).Msg("cache hit")
		return resp, nil
	}

	base := c.Base
	if base == nil {
		base = http.DefaultTransport
	}
	resp, err := base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return resp, nil
	}
	if err := c.put(key, resp); err != nil {
		c.Log.Warn().Err(err).Msg("cache write failed")
	}
	return resp, nil
}

func (c *DailyCache) file(key string) string {
	dir := c.Dir
	if dir == "" {
		dir = os.TempDir()
	}
	return filepath.Join(dir, key)
}

// get retrieves a cached response from disk.
func (c *DailyCache) get(key string, req *http.Request) (*http.Response, error) {
	content, err := os.ReadFile(c.file(key))
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewReader(content)), req)
}

// put stores a response on disk. DumpResponse leaves resp.Body readable.
func (c *DailyCache) put(key string, resp *http.Response) error {
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}
	return os.WriteFile(c.file(key), content, 0o644)
}
