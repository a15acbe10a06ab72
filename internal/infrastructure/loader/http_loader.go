package loader

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/marcos-nsantos/thumbgate/internal/domain"
	"github.com/marcos-nsantos/thumbgate/internal/domain/valueobject"
)

// HTTPLoader fetches external images. References without a scheme are
// requested over https.
type HTTPLoader struct {
	client    *http.Client
	maxBytes  int64
	userAgent string
}

func NewHTTPLoader(client *http.Client, maxBytes int64, userAgent string) *HTTPLoader {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPLoader{client: client, maxBytes: maxBytes, userAgent: userAgent}
}

func (l *HTTPLoader) Load(ctx context.Context, rawURL string) (valueobject.Image, error) {
	target := WithDefaultScheme(rawURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return valueobject.Image{}, fmt.Errorf("%w: building request: %v", domain.ErrNotFound, err)
	}
	if l.userAgent != "" {
		req.Header.Set("User-Agent", l.userAgent)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return valueobject.Image{}, fmt.Errorf("%w: %v", domain.ErrUpstreamFailure, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return valueobject.Image{}, domain.ErrNotFound
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return valueobject.Image{}, domain.ErrUnauthorized
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return valueobject.Image{}, fmt.Errorf("%w: status %d", domain.ErrUpstreamFailure, resp.StatusCode)
	}

	body := io.Reader(resp.Body)
	if l.maxBytes > 0 {
		body = io.LimitReader(resp.Body, l.maxBytes+1)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return valueobject.Image{}, fmt.Errorf("%w: reading body: %v", domain.ErrUpstreamFailure, err)
	}
	if l.maxBytes > 0 && int64(len(data)) > l.maxBytes {
		return valueobject.Image{}, fmt.Errorf("%w: body exceeds %d bytes", domain.ErrUpstreamFailure, l.maxBytes)
	}

	return valueobject.NewImage(data, detectContentType(data, resp.Header.Get("Content-Type"))), nil
}

// WithDefaultScheme prefixes https:// when the reference carries no scheme.
func WithDefaultScheme(rawURL string) string {
	if strings.HasPrefix(rawURL, "http://") || strings.HasPrefix(rawURL, "https://") {
		return rawURL
	}
	return "https://" + rawURL
}

// ToHTTPScheme rewrites the scheme of a reference to plain http.
func ToHTTPScheme(rawURL string) string {
	for _, prefix := range []string{"https://", "http://"} {
		if strings.HasPrefix(rawURL, prefix) {
			return "http://" + strings.TrimPrefix(rawURL, prefix)
		}
	}
	return "http://" + rawURL
}

func detectContentType(data []byte, declared string) string {
	if declared != "" {
		if mediaType, _, err := mime.ParseMediaType(declared); err == nil && strings.HasPrefix(mediaType, "image/") {
			return mediaType
		}
	}
	return http.DetectContentType(data)
}
