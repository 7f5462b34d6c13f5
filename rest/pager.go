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
	"net/url"

	"github.com/stockparfait/errors"
	"github.com/stockparfait/logging"
)

// listEnvelope is the format of one page of a listing endpoint.
type listEnvelope struct {
	Results   json.RawMessage `json:"results"`
	Status    string          `json:"status"`
	RequestID string          `json:"request_id"`
	Count     int             `json:"count"`
	NextURL   string          `json:"next_url"`
}

// Pager iterates over the results of a paginated listing endpoint, record by
// record. Paging is handled transparently: the next page is fetched only once
// the records of the current page are consumed. A Pager is single-pass and is
// not safe for concurrent use by multiple goroutines; each call to Paginate
// creates an independent sequence starting at page one.
type Pager[T any] struct {
	context   context.Context
	path      string
	query     url.Values
	buffer    []T
	next      string // next-page cursor URL from the last envelope
	index     int    // the buffer element for Next() to return
	pageCount int    // which page number we're on, for logging
	started   bool   // if at least one page fetch was ever attempted
}

// Paginate sets up an iterator over the result records of a listing endpoint.
// The first page is not fetched until the first Next call.
func Paginate[T any](ctx context.Context, path string, query url.Values) *Pager[T] {
	return &Pager[T]{context: ctx, path: path, query: query}
}

// nextPage fetches and buffers the next page of data. When there are no more
// pages to load, or loading a page results in an error, the first return value
// becomes false.
func (it *Pager[T]) nextPage() (bool, error) {
	if it.started && it.next == "" {
		return false, nil
	}
	c := GetClient(it.context)
	if c == nil {
		return false, errors.Reason("no API client in context")
	}
	rawURL := c.baseURL + it.path
	query := it.query
	if it.started {
		// The cursor is a full URL; its own query parameters replace the
		// original ones.
		u, err := url.Parse(it.next)
		if err != nil {
			return false, &PaginationError{Cursor: it.next, Err: err}
		}
		query = u.Query()
		u.RawQuery = ""
		u.Fragment = ""
		rawURL = u.String()
	}
	it.started = true
	body, err := c.getJSON(it.context, rawURL, query)
	if err != nil {
		return false, err
	}
	var envelope listEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return false, &DecodeError{What: "page envelope", Err: err}
	}
	it.buffer = nil
	if len(envelope.Results) > 0 {
		if err := decodeJSON(envelope.Results, &it.buffer); err != nil {
			return false, err
		}
	}
	it.index = 0
	it.pageCount++
	it.next = envelope.NextURL
	logging.Infof(it.context, "fetched page %d with %d results; next: %s",
		it.pageCount, len(it.buffer), it.next)
	return true, nil
}

// Next loads the next record into row. If there are no more records, the
// first value is false. Records already yielded remain valid when a later
// page fetch fails.
func (it *Pager[T]) Next(row *T) (bool, error) {
	for it.index >= len(it.buffer) {
		ok, err := it.nextPage()
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	*row = it.buffer[it.index]
	it.index++
	return true, nil
}

// Collect drains the iterator into a slice. On error, the records fetched so
// far are returned along with the error.
func (it *Pager[T]) Collect() ([]T, error) {
	var res []T
	for {
		var row T
		ok, err := it.Next(&row)
		if err != nil {
			return res, err
		}
		if !ok {
			return res, nil
		}
		res = append(res, row)
	}
}
