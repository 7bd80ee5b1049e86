package utils

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/LexiconIndonesia/mdpsc-crawler/common"
	"github.com/PuerkitoBio/goquery"
)

// Get issues an unauthenticated GET and returns the response body for
// streaming; the caller closes it. A non-2xx status is a transport failure.
func Get(ctx context.Context, client *http.Client, url, userAgent string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request for %s: %v", common.ErrTransport, url, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: get %s: %v", common.ErrTransport, url, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: get %s: unexpected status %d", common.ErrTransport, url, resp.StatusCode)
	}

	return resp.Body, nil
}

// GetDocument fetches url and parses the response body as HTML. An empty
// body is treated the same as an unreachable page.
func GetDocument(ctx context.Context, client *http.Client, url, userAgent string) (*goquery.Document, error) {
	body, err := Get(ctx, client, url, userAgent)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", common.ErrTransport, url, err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, fmt.Errorf("%w: empty response body from %s", common.ErrTransport, url)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", common.ErrStructuralParse, url, err)
	}
	return doc, nil
}
