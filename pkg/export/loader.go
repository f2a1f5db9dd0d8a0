package export

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// HTTPLoader fetches widget images over HTTP(S). It also understands
// data: URLs, which the editor produces for freshly uploaded images
// that have not been stored yet.
type HTTPLoader struct {
	client *http.Client

	// MaxBytes caps the response size; 0 means the default 32 MiB.
	MaxBytes int64
}

// NewHTTPLoader creates a loader with the given request timeout.
func NewHTTPLoader(timeout time.Duration) *HTTPLoader {
	return &HTTPLoader{client: &http.Client{Timeout: timeout}}
}

// Load implements ImageLoader.
func (l *HTTPLoader) Load(ctx context.Context, url string) ([]byte, error) {
	if strings.HasPrefix(url, "data:") {
		return decodeDataURL(url)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build image request: %w", err)
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch image: status %d", resp.StatusCode)
	}

	max := l.MaxBytes
	if max <= 0 {
		max = 32 << 20
	}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, max))
	if err != nil {
		return nil, fmt.Errorf("read image body: %w", err)
	}
	return raw, nil
}

func decodeDataURL(url string) ([]byte, error) {
	comma := strings.IndexByte(url, ',')
	if comma < 0 {
		return nil, fmt.Errorf("malformed data url")
	}
	meta, payload := url[5:comma], url[comma+1:]
	if !strings.HasSuffix(meta, ";base64") {
		return nil, fmt.Errorf("unsupported data url encoding %q", meta)
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("decode data url: %w", err)
	}
	return raw, nil
}

var _ ImageLoader = (*HTTPLoader)(nil)
