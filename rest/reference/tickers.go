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
	tickersPath     = "/v3/reference/tickers"
	tickerNewsPath  = "/v2/reference/news"
	tickerTypesPath = "/v3/reference/tickers/types"
)

// Ticker is one entry of the ticker listing.
type Ticker struct {
	Ticker             string `json:"ticker"`
	Name               string `json:"name"`
	Market             string `json:"market"`
	Locale             string `json:"locale"`
	PrimaryExchange    string `json:"primary_exchange"`
	Type               string `json:"type"`
	Active             bool   `json:"active"`
	CurrencySymbol     string `json:"currency_symbol"`
	CurrencyName       string `json:"currency_name"`
	BaseCurrencySymbol string `json:"base_currency_symbol"`
	BaseCurrencyName   string `json:"base_currency_name"`
	CIK                string `json:"cik"`
	CompositeFIGI      string `json:"composite_figi"`
	ShareClassFIGI     string `json:"share_class_figi"`
	DelistedUTC        string `json:"delisted_utc"`
	LastUpdatedUTC     string `json:"last_updated_utc"`
}

// CompanyAddress is the headquarters address in TickerDetails.
type CompanyAddress struct {
	Address1   string `json:"address1"`
	Address2   string `json:"address2"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
}

// Branding references the company's logo and icon images.
type Branding struct {
	LogoURL string `json:"logo_url"`
	IconURL string `json:"icon_url"`
}

// TickerDetails describes a single ticker and the company behind it.
type TickerDetails struct {
	Ticker                      string         `json:"ticker"`
	Name                        string         `json:"name"`
	Market                      string         `json:"market"`
	Locale                      string         `json:"locale"`
	PrimaryExchange             string         `json:"primary_exchange"`
	Type                        string         `json:"type"`
	Active                      bool           `json:"active"`
	CurrencyName                string         `json:"currency_name"`
	CIK                         string         `json:"cik"`
	CompositeFIGI               string         `json:"composite_figi"`
	ShareClassFIGI              string         `json:"share_class_figi"`
	MarketCap                   float64        `json:"market_cap"`
	PhoneNumber                 string         `json:"phone_number"`
	Address                     CompanyAddress `json:"address"`
	Description                 string         `json:"description"`
	SICCode                     string         `json:"sic_code"`
	SICDescription              string         `json:"sic_description"`
	TickerRoot                  string         `json:"ticker_root"`
	HomepageURL                 string         `json:"homepage_url"`
	TotalEmployees              int            `json:"total_employees"`
	ListDate                    rest.Date      `json:"list_date"`
	Branding                    Branding       `json:"branding"`
	ShareClassSharesOutstanding int64          `json:"share_class_shares_outstanding"`
	WeightedSharesOutstanding   int64          `json:"weighted_shares_outstanding"`
	RoundLot                    int            `json:"round_lot"`
}

// Publisher is the news outlet of a TickerNews article.
type Publisher struct {
	Name        string `json:"name"`
	HomepageURL string `json:"homepage_url"`
	LogoURL     string `json:"logo_url"`
	FaviconURL  string `json:"favicon_url"`
}

// TickerNews is one news article relating to a ticker.
type TickerNews struct {
	ID           string    `json:"id"`
	Publisher    Publisher `json:"publisher"`
	Title        string    `json:"title"`
	Author       string    `json:"author"`
	PublishedUTC string    `json:"published_utc"`
	ArticleURL   string    `json:"article_url"`
	Tickers      []string  `json:"tickers"`
	AmpURL       string    `json:"amp_url"`
	ImageURL     string    `json:"image_url"`
	Description  string    `json:"description"`
	Keywords     []string  `json:"keywords"`
}

// TickerType is one supported ticker type within an asset class.
type TickerType struct {
	AssetClass  string `json:"asset_class"`
	Code        string `json:"code"`
	Description string `json:"description"`
	Locale      string `json:"locale"`
}

// ListTickersParams are the filters of the ticker listing.
type ListTickersParams struct {
	Ticker   rest.Comparable
	Type     string
	Market   Market
	Exchange string // primary exchange in the ISO code format
	CUSIP    string
	CIK      string
	Date     rest.Date // retrieve tickers available as of this date
	Search   string    // search within the ticker and company name
	Active   *bool
	Limit    int
	Sort     Sort
	Order    Order
	Extra    url.Values
}

// Values encodes the parameters as a URL query.
func (p *ListTickersParams) Values() url.Values {
	v := make(url.Values)
	if p == nil {
		return v
	}
	p.Ticker.Encode(v, "ticker")
	rest.SetString(v, "type", p.Type)
	rest.SetString(v, "market", string(p.Market))
	rest.SetString(v, "exchange", p.Exchange)
	rest.SetString(v, "cusip", p.CUSIP)
	rest.SetString(v, "cik", p.CIK)
	rest.SetDate(v, "date", p.Date)
	rest.SetString(v, "search", p.Search)
	rest.SetBool(v, "active", p.Active)
	rest.SetInt(v, "limit", p.Limit)
	rest.SetString(v, "sort", string(p.Sort))
	rest.SetString(v, "order", string(p.Order))
	rest.MergeExtra(v, p.Extra)
	return v
}

// TickerDetailsParams are the parameters of the single-ticker endpoint.
type TickerDetailsParams struct {
	Date  rest.Date // information about the ticker as of this date
	Extra url.Values
}

// Values encodes the parameters as a URL query.
func (p *TickerDetailsParams) Values() url.Values {
	v := make(url.Values)
	if p == nil {
		return v
	}
	rest.SetDate(v, "date", p.Date)
	rest.MergeExtra(v, p.Extra)
	return v
}

// ListTickerNewsParams are the filters of the ticker news listing.
type ListTickerNewsParams struct {
	Ticker       rest.Comparable
	PublishedUTC rest.DateRange
	Limit        int
	Sort         Sort
	Order        Order
	Extra        url.Values
}

// Values encodes the parameters as a URL query.
func (p *ListTickerNewsParams) Values() url.Values {
	v := make(url.Values)
	if p == nil {
		return v
	}
	p.Ticker.Encode(v, "ticker")
	p.PublishedUTC.Encode(v, "published_utc")
	rest.SetInt(v, "limit", p.Limit)
	rest.SetString(v, "sort", string(p.Sort))
	rest.SetString(v, "order", string(p.Order))
	rest.MergeExtra(v, p.Extra)
	return v
}

// TickerTypesParams are the filters of the ticker types listing.
type TickerTypesParams struct {
	AssetClass AssetClass
	Locale     Locale
	Extra      url.Values
}

// Values encodes the parameters as a URL query.
func (p *TickerTypesParams) Values() url.Values {
	v := make(url.Values)
	if p == nil {
		return v
	}
	rest.SetString(v, "asset_class", string(p.AssetClass))
	rest.SetString(v, "locale", string(p.Locale))
	rest.MergeExtra(v, p.Extra)
	return v
}

// ListTickers queries all ticker symbols supported by the API, paging through
// the results transparently.
func ListTickers(ctx context.Context, params *ListTickersParams) *rest.Pager[Ticker] {
	return rest.Paginate[Ticker](ctx, tickersPath, params.Values())
}

// ListTickersRaw fetches the first page of the ticker listing without
// decoding or pagination.
func ListTickersRaw(ctx context.Context, params *ListTickersParams) (*rest.RawResponse, error) {
	return rest.GetRaw(ctx, tickersPath, params.Values())
}

// GetTickerDetails fetches the detailed information about a single ticker and
// the company behind it.
func GetTickerDetails(ctx context.Context, ticker string, params *TickerDetailsParams) (*TickerDetails, error) {
	return rest.GetOne[TickerDetails](ctx, tickersPath+"/"+url.PathEscape(ticker), params.Values(), "results")
}

// GetTickerDetailsRaw fetches the same endpoint without decoding.
func GetTickerDetailsRaw(ctx context.Context, ticker string, params *TickerDetailsParams) (*rest.RawResponse, error) {
	return rest.GetRaw(ctx, tickersPath+"/"+url.PathEscape(ticker), params.Values())
}

// ListTickerNews fetches the most recent news articles relating to a ticker,
// paging through the results transparently.
func ListTickerNews(ctx context.Context, params *ListTickerNewsParams) *rest.Pager[TickerNews] {
	return rest.Paginate[TickerNews](ctx, tickerNewsPath, params.Values())
}

// ListTickerNewsRaw fetches the first page of the news listing without
// decoding or pagination.
func ListTickerNewsRaw(ctx context.Context, params *ListTickerNewsParams) (*rest.RawResponse, error) {
	return rest.GetRaw(ctx, tickerNewsPath, params.Values())
}

// GetTickerTypes lists all the ticker types supported by the API.
func GetTickerTypes(ctx context.Context, params *TickerTypesParams) ([]TickerType, error) {
	return rest.GetList[TickerType](ctx, tickerTypesPath, params.Values(), "results")
}

// GetTickerTypesRaw fetches the same endpoint without decoding.
func GetTickerTypesRaw(ctx context.Context, params *TickerTypesParams) (*rest.RawResponse, error) {
	return rest.GetRaw(ctx, tickerTypesPath, params.Values())
}
