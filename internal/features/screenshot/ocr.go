package screenshot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	apperrors "github.com/rajendra-kc/scamlens/pkg/errors"
)

// OCR extracts text from an image. Text extraction is an external capability;
// the pipeline only depends on this contract.
type OCR interface {
	ExtractText(ctx context.Context, image []byte, contentType string) (string, error)
}

// HTTPOCRClient talks to a sidecar OCR service over HTTP. Every call is
// bounded by the client timeout so a stalled extraction cannot hang the
// request: on timeout the caller treats the image as unreadable.
type HTTPOCRClient struct {
	endpoint string
	client   *http.Client
}

func NewHTTPOCRClient(endpoint string, timeout time.Duration) *HTTPOCRClient {
	return &HTTPOCRClient{
		endpoint: endpoint,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

type ocrResponse struct {
	Text string `json:"text"`
}

func (c *HTTPOCRClient) ExtractText(ctx context.Context, image []byte, contentType string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(image))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: ocr request failed: %v", apperrors.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: ocr service returned status %d", apperrors.ErrUpstreamUnavailable, resp.StatusCode)
	}

	var body ocrResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&body); err != nil {
		return "", fmt.Errorf("%w: invalid ocr response: %v", apperrors.ErrUpstreamUnavailable, err)
	}

	return strings.TrimSpace(body.Text), nil
}
