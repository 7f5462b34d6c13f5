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
	"strconv"

	"github.com/tehcoderer/polygon-go/rest"
)

const dividendsPath = "/v3/reference/dividends"

// Dividend is one historical cash dividend.
type Dividend struct {
	ID              string       `json:"id"`
	CashAmount      float64      `json:"cash_amount"`
	Currency        string       `json:"currency"`
	DeclarationDate rest.Date    `json:"declaration_date"`
	DividendType    DividendType `json:"dividend_type"`
	ExDividendDate  rest.Date    `json:"ex_dividend_date"`
	Frequency       Frequency    `json:"frequency"`
	PayDate         rest.Date    `json:"pay_date"`
	RecordDate      rest.Date    `json:"record_date"`
	Ticker          string       `json:"ticker"`
}

// ListDividendsParams are the filters of the dividends listing. The four date
// ranges are independent of each other.
type ListDividendsParams struct {
	Ticker          rest.Comparable
	ExDividendDate  rest.DateRange
	RecordDate      rest.DateRange
	DeclarationDate rest.DateRange
	PayDate         rest.DateRange
	Frequency       *Frequency // a one-time dividend is frequency 0
	CashAmount      rest.NumberRange
	DividendType    DividendType
	Limit           int
	Sort            Sort
	Order           Order
	Extra           url.Values
}

// Values encodes the parameters as a URL query.
func (p *ListDividendsParams) Values() url.Values {
	v := make(url.Values)
	if p == nil {
		return v
	}
	p.Ticker.Encode(v, "ticker")
	p.ExDividendDate.Encode(v, "ex_dividend_date")
	p.RecordDate.Encode(v, "record_date")
	p.DeclarationDate.Encode(v, "declaration_date")
	p.PayDate.Encode(v, "pay_date")
	if p.Frequency != nil {
		v.Set("frequency", strconv.Itoa(int(*p.Frequency)))
	}
	p.CashAmount.Encode(v, "cash_amount")
	rest.SetString(v, "dividend_type", string(p.DividendType))
	rest.SetInt(v, "limit", p.Limit)
	rest.SetString(v, "sort", string(p.Sort))
	rest.SetString(v, "order", string(p.Order))
	rest.MergeExtra(v, p.Extra)
	return v
}

// ListDividends fetches the historical cash dividends, paging through the
// results transparently.
func ListDividends(ctx context.Context, params *ListDividendsParams) *rest.Pager[Dividend] {
	return rest.Paginate[Dividend](ctx, dividendsPath, params.Values())
}

// ListDividendsRaw fetches the first page of the dividends listing without
// decoding or pagination.
func ListDividendsRaw(ctx context.Context, params *ListDividendsParams) (*rest.RawResponse, error) {
	return rest.GetRaw(ctx, dividendsPath, params.Values())
}
