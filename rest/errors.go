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

import "fmt"

// HTTPError is returned when the server responds with a non-2xx status. It
// carries the status code and the raw response body.
type HTTPError struct {
	StatusCode int
	URL        string
	Body       []byte
}

func (e *HTTPError) Error() string {
	body := string(e.Body)
	if len(body) > 200 {
		body = body[:200] + "..."
	}
	return fmt.Sprintf("server returned status %d for %s: %s", e.StatusCode, e.URL, body)
}

// DecodeError is returned when a response body is not valid JSON, a required
// result key is absent, or a present field cannot be coerced to its declared
// type.
type DecodeError struct {
	What string // which part of the response failed to decode
	Err  error  // the underlying JSON error, if any
}

func (e *DecodeError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("failed to decode %s: missing from response", e.What)
	}
	return fmt.Sprintf("failed to decode %s: %s", e.What, e.Err.Error())
}

func (e *DecodeError) Unwrap() error { return e.Err }

// PaginationError is returned when a server-supplied next-page cursor cannot
// be used as a request target.
type PaginationError struct {
	Cursor string
	Err    error
}

func (e *PaginationError) Error() string {
	return fmt.Sprintf("invalid next-page cursor '%s': %s", e.Cursor, e.Err.Error())
}

func (e *PaginationError) Unwrap() error { return e.Err }
