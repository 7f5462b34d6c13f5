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

package reference

import (
	"context"
	"net/url"

	"github.com/tehcoderer/polygon-go/rest"
)

const splitsPath = "/v3/reference/splits"

// Split is one historical stock split. A ratio where SplitFrom is greater
// than SplitTo represents a reverse split.
type Split struct {
	ID            string    `json:"id"`
	ExecutionDate rest.Date `json:"execution_date"`
	SplitFrom     float64   `json:"split_from"`
	SplitTo       float64   `json:"split_to"`
	Ticker        string    `json:"ticker"`
}

// ListSplitsParams are the filters of the stock splits listing.
type ListSplitsParams struct {
	Ticker        rest.Comparable
	ExecutionDate rest.DateRange
	ReverseSplit  *bool
	Limit         int
	Sort          Sort
	Order         Order
	Extra         url.Values
}

// Values encodes the parameters as a URL query.
func (p *ListSplitsParams) Values() url.Values {
	v := make(url.Values)
	if p == nil {
		return v
	}
	p.Ticker.Encode(v, "ticker")
	p.ExecutionDate.Encode(v, "execution_date")
	rest.SetBool(v, "reverse_split", p.ReverseSplit)
	rest.SetInt(v, "limit", p.Limit)
	rest.SetString(v, "sort", string(p.Sort))
	rest.SetString(v, "order", string(p.Order))
	rest.MergeExtra(v, p.Extra)
	return v
}

// ListSplits fetches the historical stock splits, paging through the results
// transparently.
func ListSplits(ctx context.Context, params *ListSplitsParams) *rest.Pager[Split] {
	return rest.Paginate[Split](ctx, splitsPath, params.Values())
}

// ListSplitsRaw fetches the first page of the splits listing without decoding
// or pagination.
func ListSplitsRaw(ctx context.Context, params *ListSplitsParams) (*rest.RawResponse, error) {
	return rest.GetRaw(ctx, splitsPath, params.Values())
}
