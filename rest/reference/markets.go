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

const (
	marketHolidaysPath = "/v1/marketstatus/upcoming"
	marketStatusPath   = "/v1/marketstatus/now"
)

// MarketHoliday is one upcoming holiday of one exchange. The open and close
// times are set only for shortened trading days.
type MarketHoliday struct {
	Date     rest.Date `json:"date"`
	Exchange string    `json:"exchange"`
	Name     string    `json:"name"`
	Open     string    `json:"open"`
	Close    string    `json:"close"`
	Status   string    `json:"status"`
}

// MarketCurrencies is the status of the currency markets.
type MarketCurrencies struct {
	Crypto string `json:"crypto"`
	Fx     string `json:"fx"`
}

// MarketExchanges is the status of the individual stock exchanges.
type MarketExchanges struct {
	Nasdaq string `json:"nasdaq"`
	NYSE   string `json:"nyse"`
	OTC    string `json:"otc"`
}

// MarketStatus is the current trading status of the exchanges and the overall
// financial markets.
type MarketStatus struct {
	AfterHours bool             `json:"afterHours"`
	Currencies MarketCurrencies `json:"currencies"`
	EarlyHours bool             `json:"earlyHours"`
	Exchanges  MarketExchanges  `json:"exchanges"`
	Market     string           `json:"market"`
	ServerTime string           `json:"serverTime"`
}

// MarketHolidaysParams has no documented parameters; Extra is the escape
// hatch for undocumented ones.
type MarketHolidaysParams struct {
	Extra url.Values
}

// Values encodes the parameters as a URL query.
func (p *MarketHolidaysParams) Values() url.Values {
	v := make(url.Values)
	if p == nil {
		return v
	}
	rest.MergeExtra(v, p.Extra)
	return v
}

// MarketStatusParams has no documented parameters; Extra is the escape hatch
// for undocumented ones.
type MarketStatusParams struct {
	Extra url.Values
}

// Values encodes the parameters as a URL query.
func (p *MarketStatusParams) Values() url.Values {
	v := make(url.Values)
	if p == nil {
		return v
	}
	rest.MergeExtra(v, p.Extra)
	return v
}

// GetMarketHolidays fetches the upcoming market holidays and their open/close
// times. The response is a bare top-level array with no wrapper key.
func GetMarketHolidays(ctx context.Context, params *MarketHolidaysParams) ([]MarketHoliday, error) {
	return rest.GetList[MarketHoliday](ctx, marketHolidaysPath, params.Values(), "")
}

// GetMarketHolidaysRaw fetches the same endpoint without decoding.
func GetMarketHolidaysRaw(ctx context.Context, params *MarketHolidaysParams) (*rest.RawResponse, error) {
	return rest.GetRaw(ctx, marketHolidaysPath, params.Values())
}

// GetMarketStatus fetches the current trading status of the exchanges and
// overall financial markets. The response is a bare object with no wrapper
// key.
func GetMarketStatus(ctx context.Context, params *MarketStatusParams) (*MarketStatus, error) {
	return rest.GetOne[MarketStatus](ctx, marketStatusPath, params.Values(), "")
}

// GetMarketStatusRaw fetches the same endpoint without decoding.
func GetMarketStatusRaw(ctx context.Context, params *MarketStatusParams) (*rest.RawResponse, error) {
	return rest.GetRaw(ctx, marketStatusPath, params.Values())
}
