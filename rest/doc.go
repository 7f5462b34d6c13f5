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

// Package rest implements the generic GET-and-decode layer of the Polygon.io
// REST API.
//
// Official documentation is at https://polygon.io/docs/rest .
//
// A Client carries the base URL and the API key, and is injected into the
// context with UseClient. The http.Client comes from the stockparfait/fetch
// package, which reads it from the same context, and transient failures are
// retried with fetch's retry policy; tests plug in a testutil.TestServer this
// way. A request that completes with a non-2xx status becomes an HTTPError
// carrying the status code and the response body.
//
// Single-object and plain-list endpoints go through GetOne and GetList, which
// unwrap the configured result key and decode the JSON into typed records.
// Listing endpoints that page their results go through Paginate, which
// follows the server-supplied next_url cursor lazily in Pager. GetRaw skips
// decoding entirely and hands back the status, headers and body.
//
// Endpoint definitions for specific API groups, such as the reference data
// endpoints, are implemented in the subpackages.
package rest
