package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	deliverycontext "brandhub/internal/delivery/context"

	"github.com/pkg/errors"
)

// maxErrorBodySize caps how much of a failed response is read for its message.
const maxErrorBodySize = 64 << 10

// Transport performs a GET against the directory API and decodes the JSON body into out.
// Non-2xx answers are reported as *StatusError.
type Transport interface {
	Get(ctx context.Context, path string, out any) error
}

type httpTransport struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPTransport creates a Transport issuing plain net/http requests against baseURL.
func NewHTTPTransport(baseURL string, timeout time.Duration) Transport {
	return &httpTransport{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (t *httpTransport) Get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.baseURL+path, nil)
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")

	// Forward the caller's request id so both servers log the same one
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "GET %s", path)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newStatusError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "decode response of GET %s", path)
	}

	return nil
}

func newStatusError(resp *http.Response) *StatusError {
	statusErr := &StatusError{
		StatusCode: resp.StatusCode,
		Message:    http.StatusText(resp.StatusCode),
	}

	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxErrorBodySize)).Decode(&body); err == nil && body.Error != "" {
		statusErr.Message = body.Error
	}

	return statusErr
}
