package gemini

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
)

// maxErrorBody caps how much of a failed response body is read.
const maxErrorBody = 64 << 10

// statusTransport rewrites the body of every non-2xx response into the
// {"error":{...}} envelope the genai client decodes, with the code taken
// from the HTTP status line. Upstream proxies return plain text, empty
// bodies or JSON without an "error" object; the genai client would either
// report code 0 or fail to decode those.
type statusTransport struct {
	base http.RoundTripper
}

func (t *statusTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base.RoundTrip(req)
	if err != nil || resp == nil {
		return resp, err
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}

	raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	_ = resp.Body.Close()
	if readErr != nil {
		return nil, fmt.Errorf("failed to read %d response body: %w", resp.StatusCode, readErr)
	}

	body := normalizeErrorBody(resp.StatusCode, raw)
	resp.Body = io.NopCloser(bytes.NewReader(body))
	resp.ContentLength = int64(len(body))
	if resp.Header == nil {
		resp.Header = http.Header{}
	}
	resp.Header.Set("Content-Type", "application/json")
	resp.Header.Set("Content-Length", strconv.Itoa(len(body)))
	resp.Header.Del("Content-Encoding")
	return resp, nil
}

type errorEnvelope struct {
	Error errorInfo `json:"error"`
}

type errorInfo struct {
	Code    int    `json:"code"`
	Message string `json:"message,omitempty"`
	Status  string `json:"status,omitempty"`
}

// normalizeErrorBody keeps error.message and error.status when raw carries
// them and always sets error.code to status.
func normalizeErrorBody(status int, raw []byte) []byte {
	var parsed struct {
		Error *struct {
			Message string `json:"message"`
			Status  string `json:"status"`
		} `json:"error"`
	}

	out := errorEnvelope{Error: errorInfo{Code: status}}
	if json.Unmarshal(raw, &parsed) == nil && parsed.Error != nil {
		out.Error.Message = parsed.Error.Message
		out.Error.Status = parsed.Error.Status
	}

	body, _ := json.Marshal(out)
	return body
}

// withStatusTransport returns a copy of c whose transport is wrapped by
// statusTransport. A nil c yields a client over http.DefaultTransport.
func withStatusTransport(c *http.Client) *http.Client {
	wrapped := &http.Client{}
	if c != nil {
		*wrapped = *c
	}

	base := wrapped.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	wrapped.Transport = &statusTransport{base: base}
	return wrapped
}
