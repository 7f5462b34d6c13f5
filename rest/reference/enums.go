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

// The enumerated query parameter values documented by the API. All of them
// are plain named types, so a raw string (or int) converts directly when a
// value is not listed here yet.

// Order of the listing results.
type Order string

const (
	Asc  = Order("asc")
	Desc = Order("desc")
)

// Sort is the field name to sort listing results on.
type Sort string

const (
	SortTicker         = Sort("ticker")
	SortName           = Sort("name")
	SortMarket         = Sort("market")
	SortLocale         = Sort("locale")
	SortPrimaryExch    = Sort("primary_exchange")
	SortType           = Sort("type")
	SortLastUpdatedUTC = Sort("last_updated_utc")
	SortPublishedUTC   = Sort("published_utc")
	SortExecutionDate  = Sort("execution_date")
	SortExDividendDate = Sort("ex_dividend_date")
	SortPayDate        = Sort("pay_date")
	SortCashAmount     = Sort("cash_amount")
	SortAssetClass     = Sort("asset_class")
	SortID             = Sort("id")
)

// AssetClass is an asset class filter value.
type AssetClass string

const (
	Stocks  = AssetClass("stocks")
	Options = AssetClass("options")
	Crypto  = AssetClass("crypto")
	Fx      = AssetClass("fx")
	Indices = AssetClass("indices")
)

// Locale is a market locale filter value.
type Locale string

const (
	US     = Locale("us")
	Global = Locale("global")
)

// Market is a market type filter value for the ticker listing.
type Market string

const (
	MarketStocks  = Market("stocks")
	MarketCrypto  = Market("crypto")
	MarketFx      = Market("fx")
	MarketOTC     = Market("otc")
	MarketIndices = Market("indices")
)

// DividendType classifies a dividend.
type DividendType string

const (
	// Consistently scheduled cash dividend.
	DividendCD = DividendType("CD")
	// Special (infrequent or unusual) cash dividend.
	DividendSC = DividendType("SC")
	DividendLT = DividendType("LT")
	DividendST = DividendType("ST")
)

// Frequency is the number of dividend payouts per year. Zero means a one-time
// dividend, which is why its query parameter is declared as an optional
// *Frequency.
type Frequency int

const (
	OneTime    = Frequency(0)
	Annually   = Frequency(1)
	Biannually = Frequency(2)
	Quarterly  = Frequency(4)
	Monthly    = Frequency(12)
)

// Ptr makes an optional frequency parameter value.
func (f Frequency) Ptr() *Frequency { return &f }

// DataType is the kind of data a trade or quote condition applies to.
type DataType string

const (
	DataTrade = DataType("trade")
	DataBBO   = DataType("bbo")
	DataNBBO  = DataType("nbbo")
)

// SIP is a securities information processor.
type SIP string

const (
	CTA  = SIP("CTA")
	UTP  = SIP("UTP")
	OPRA = SIP("OPRA")
)
