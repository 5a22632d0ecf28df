package tokenprovider

import (
	"bytes"
	"io"
	"mime"
	"net/http"
)

// maxTokenBody matches the limit x/oauth2 applies when reading token responses.
const maxTokenBody = 1 << 20

// jsonBodyTransport marks a token response as JSON when its body is a JSON object,
// whatever Content-Type the endpoint sent. x/oauth2 otherwise parses it as form data.
type jsonBodyTransport struct {
	base http.RoundTripper
}

func (t jsonBodyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base.RoundTrip(req)
	if err != nil || resp.Body == nil {
		return resp, err
	}
	if mt, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type")); mt == "application/json" {
		return resp, nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxTokenBody))
	resp.Body.Close()
	if err != nil {
		return nil, err
	}
	resp.Body = io.NopCloser(bytes.NewReader(body))
	if bytes.HasPrefix(bytes.TrimSpace(body), []byte("{")) {
		if resp.Header == nil {
			resp.Header = http.Header{}
		}
		resp.Header.Set("Content-Type", "application/json")
	}
	return resp, nil
}

// withJSONTokenBodies returns a copy of c whose transport applies jsonBodyTransport.
func withJSONTokenBodies(c *http.Client) *http.Client {
	if c == nil {
		c = &http.Client{}
	}
	base := c.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	wrapped := *c
	wrapped.Transport = jsonBodyTransport{base: base}
	return &wrapped
}
