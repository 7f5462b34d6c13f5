// Copyright 2025 The polygon-go Authors

// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at

//     http://www.apache.org/licenses/LICENSE-2.0

// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/stockparfait/errors"
	"github.com/stockparfait/fetch"
)

type contextKey int

const (
	clientContextKey contextKey = iota
)

// URL is the default base URL of the server. It may be overwritten in tests
// before creating a new client.
var URL = "https://api.polygon.io"

// Client for querying the market data REST API.
type Client struct {
	baseURL string // the base URL of the server
	apiKey  string // your very own secret key
}

// newClient creates a new client.
func newClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

// GetClient extracts the Client from the context, if any.
func GetClient(ctx context.Context) *Client {
	c, ok := ctx.Value(clientContextKey).(*Client)
	if !ok {
		return nil
	}
	return c
}

// UseClient creates a new client based on the API key and injects it into the
// context.
func UseClient(ctx context.Context, apiKey string) context.Context {
	return context.WithValue(ctx, clientContextKey, newClient(URL, apiKey))
}

// RawResponse is the unprocessed result of a single GET: the status code, the
// headers and the full body bytes. No JSON decoding is ever attempted on it.
type RawResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// retryParams is the retry policy for transient failures and 5xx statuses.
// Tests shorten the waits.
var retryParams = fetch.NewParams()

// get issues a GET for the full URL with the encoded query plus the API key.
// Transport failures and 5xx statuses are retried per retryParams. The
// response of the last completed request is returned whatever its status, so
// that callers can classify non-2xx responses and read their bodies.
func (c *Client) get(ctx context.Context, rawURL string, query url.Values) (*http.Response, error) {
	q := make(url.Values, len(query)+1)
	for k, vs := range query {
		q[k] = vs
	}
	q.Set("apiKey", c.apiKey)
	client := http.DefaultClient
	if cl := fetch.GetClient(ctx); cl != nil {
		client = cl
	}
	var resp *http.Response
	err := fetch.Retry(ctx, retryParams, func(int) error {
		if resp != nil { // drop the response of the previous attempt
			resp.Body.Close()
			resp = nil
		}
		req, err := http.NewRequestWithContext(ctx, "GET", rawURL, nil)
		if err != nil {
			return errors.Annotate(err, "failed to create request for %s", rawURL)
		}
		req.URL.RawQuery = q.Encode()
		r, err := client.Do(req)
		if err != nil {
			return fetch.NewRetriableError(errors.Annotate(err, "GET %s failed", rawURL))
		}
		resp = r
		if fetch.ResponseRetriable(r) {
			return fetch.NewRetriableError(errors.Reason("GET %s: %s", rawURL, r.Status))
		}
		return nil
	})
	if resp != nil {
		return resp, nil
	}
	return nil, err
}

// getJSON fetches one URL and returns the response body. A non-2xx status
// yields an *HTTPError carrying the status code and the body.
func (c *Client) getJSON(ctx context.Context, rawURL string, query url.Values) ([]byte, error) {
	resp, err := c.get(ctx, rawURL, query)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Annotate(err, "failed to read response body of %s", rawURL)
	}
	if !fetch.ResponseOK(resp) {
		return nil, &HTTPError{StatusCode: resp.StatusCode, URL: rawURL, Body: body}
	}
	return body, nil
}

// extractResult pulls the domain result out of a response body. An empty
// resultKey means the entire body is the result.
func extractResult(body []byte, resultKey string) (json.RawMessage, error) {
	if resultKey == "" {
		return json.RawMessage(body), nil
	}
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &DecodeError{What: "response body", Err: err}
	}
	raw, ok := envelope[resultKey]
	if !ok {
		return nil, &DecodeError{What: "result key '" + resultKey + "'"}
	}
	return raw, nil
}

// decodeJSON unmarshals raw JSON into v, converting failures into DecodeError.
// Unknown JSON keys are ignored, absent keys leave the zero value.
func decodeJSON(raw json.RawMessage, v interface{}) error {
	if err := json.Unmarshal(raw, v); err != nil {
		return &DecodeError{What: "result object", Err: err}
	}
	return nil
}

// GetOne fetches a single object endpoint and decodes the value under
// resultKey ("" = the whole body) into one result record.
func GetOne[T any](ctx context.Context, path string, query url.Values, resultKey string) (*T, error) {
	raw, err := getResult(ctx, path, query, resultKey)
	if err != nil {
		return nil, err
	}
	var res T
	if err := decodeJSON(raw, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetList fetches a non-paginated listing endpoint and decodes the array under
// resultKey ("" = the whole body) into a slice of result records, preserving
// the element order.
func GetList[T any](ctx context.Context, path string, query url.Values, resultKey string) ([]T, error) {
	raw, err := getResult(ctx, path, query, resultKey)
	if err != nil {
		return nil, err
	}
	var res []T
	if err := decodeJSON(raw, &res); err != nil {
		return nil, err
	}
	return res, nil
}

func getResult(ctx context.Context, path string, query url.Values, resultKey string) (json.RawMessage, error) {
	c := GetClient(ctx)
	if c == nil {
		return nil, errors.Reason("no API client in context")
	}
	body, err := c.getJSON(ctx, c.baseURL+path, query)
	if err != nil {
		return nil, err
	}
	return extractResult(body, resultKey)
}

// GetRaw fetches one endpoint and returns the unprocessed response. The body
// is not parsed, even when the request fails with a non-2xx status.
func GetRaw(ctx context.Context, path string, query url.Values) (*RawResponse, error) {
	c := GetClient(ctx)
	if c == nil {
		return nil, errors.Reason("no API client in context")
	}
	resp, err := c.get(ctx, c.baseURL+path, query)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Annotate(err, "failed to read response body of %s", path)
	}
	return &RawResponse{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}
