// Package supabase implements a minimal client for the hosted data backend:
// the PostgREST data API, named remote procedures and the GoTrue authorize
// endpoint. It is the only interface the rest of the application consumes;
// query semantics (joins, distance formulas, uniqueness) live entirely on
// the backend side.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// restPrefix is the path under which PostgREST exposes tables and procedures.
const restPrefix = "/rest/v1"

// Client is a configured handle to one backend project. It is safe for
// concurrent use and is constructed once at startup from the project URL
// and the public (anon) API key.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
}

// New returns a Client for the given project URL and public API key.
// The URL is normalized without a trailing slash. Credentials are not
// verified here; a bad key surfaces as an unauthorized error on first use.
func New(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpc:   &http.Client{Timeout: 15 * time.Second},
	}
}

// From starts a query against the named table.
func (c *Client) From(table string) *Query {
	return &Query{
		client: c,
		table:  table,
		method: http.MethodGet,
		params: url.Values{},
		header: http.Header{},
	}
}

// RPC invokes the named remote procedure with the given parameters and
// decodes the result into dest when dest is non-nil. Parameters are sent
// as a JSON object; the procedure's semantics are backend-defined.
func (c *Client) RPC(ctx context.Context, name string, params any, dest any) error {
	return c.do(ctx, http.MethodPost, restPrefix+"/rpc/"+name, nil, nil, params, dest)
}

// do performs one backend call. Every request carries the API key both as
// the apikey header and as a bearer token, which is how the data API expects
// anonymous access to authenticate. Non-2xx responses are decoded into a
// *Error; transport failures are wrapped as unavailable.
func (c *Client) do(ctx context.Context, method, path string, params url.Values, header http.Header, body, dest any) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindValidation, Message: fmt.Sprintf("encode request body: %v", err)}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return &Error{Kind: KindValidation, Message: err.Error()}
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, vals := range header {
		for _, v := range vals {
			req.Header.Add(k, v)
		}
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return &Error{Kind: KindUnavailable, Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: KindUnavailable, Message: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp.StatusCode, raw)
	}

	if dest == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return &Error{Kind: KindUnknown, Status: resp.StatusCode, Message: fmt.Sprintf("decode response: %v", err)}
	}
	return nil
}
