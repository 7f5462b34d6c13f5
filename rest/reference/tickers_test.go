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
	"testing"
	"time"

	"github.com/stockparfait/fetch"
	"github.com/stockparfait/testutil"
	"github.com/tehcoderer/polygon-go/rest"

	. "github.com/smartystreets/goconvey/convey"
)

func TestTickers(t *testing.T) {
	Convey("Ticker endpoints work correctly", t, func() {
		server := testutil.NewTestServer()
		defer server.Close()
		server.ResponseBody = []string{"{}"}

		testKey := "testkey"
		ctx := fetch.UseClient(context.Background(), server.Client())
		rest.URL = server.URL()
		ctx = rest.UseClient(ctx, testKey)

		Convey("ListTickers pages through the listing", func() {
			server.ResponseBody = []string{
				`{"status": "OK", "count": 1,
				  "results": [{"ticker": "AAPL", "name": "Apple Inc.",
				               "market": "stocks", "active": true}],
				  "next_url": "` + server.URL() + `/v3/reference/tickers?cursor=p2"}`,
				`{"status": "OK", "count": 1,
				  "results": [{"ticker": "AMZN", "name": "Amazon.com, Inc.",
				               "market": "stocks", "active": true}]}`,
			}
			it := ListTickers(ctx, &ListTickersParams{
				Ticker: rest.Comparable{Gte: "AAPL"},
				Limit:  2,
			})
			tickers, err := it.Collect()
			So(err, ShouldBeNil)
			So(tickers, ShouldResemble, []Ticker{
				{Ticker: "AAPL", Name: "Apple Inc.", Market: "stocks", Active: true},
				{Ticker: "AMZN", Name: "Amazon.com, Inc.", Market: "stocks", Active: true},
			})
			So(server.RequestPath, ShouldEqual, "/v3/reference/tickers")
		})

		Convey("ListTickers encodes the full filter set", func() {
			server.ResponseBody = []string{`{"status": "OK", "results": []}`}
			params := &ListTickersParams{
				Ticker:   rest.Comparable{Gte: "A", Lt: "B"},
				Type:     "CS",
				Market:   MarketStocks,
				Exchange: "XNAS",
				Date:     rest.NewDate(2022, time.March, 5),
				Search:   "apple",
				Active:   rest.Bool(true),
				Limit:    100,
				Sort:     SortTicker,
				Order:    Asc,
				Extra:    url.Values{"cik": []string{"0000320193"}},
			}
			_, err := ListTickers(ctx, params).Collect()
			So(err, ShouldBeNil)
			So(server.RequestQuery, ShouldResemble, url.Values{
				"ticker.gte": []string{"A"},
				"ticker.lt":  []string{"B"},
				"type":       []string{"CS"},
				"market":     []string{"stocks"},
				"exchange":   []string{"XNAS"},
				"date":       []string{"2022-03-05"},
				"search":     []string{"apple"},
				"active":     []string{"true"},
				"limit":      []string{"100"},
				"sort":       []string{"ticker"},
				"order":      []string{"asc"},
				"cik":        []string{"0000320193"},
				"apiKey":     []string{testKey},
			})
		})

		Convey("setting a comparison member leaves the base key unset", func() {
			server.ResponseBody = []string{`{"status": "OK", "results": []}`}
			_, err := ListTickers(ctx, &ListTickersParams{
				Ticker: rest.Comparable{Lt: "MSFT"},
			}).Collect()
			So(err, ShouldBeNil)
			So(server.RequestQuery.Has("ticker"), ShouldBeFalse)
			So(server.RequestQuery.Get("ticker.lt"), ShouldEqual, "MSFT")
		})

		Convey("GetTickerDetails unwraps the results object", func() {
			server.ResponseBody = []string{`{
				"request_id": "abc123",
				"results": {
					"ticker": "AAPL",
					"name": "Apple Inc.",
					"market": "stocks",
					"locale": "us",
					"primary_exchange": "XNAS",
					"type": "CS",
					"active": true,
					"currency_name": "usd",
					"cik": "0000320193",
					"market_cap": 2771126040500,
					"address": {"address1": "One Apple Park Way", "city": "Cupertino",
					            "state": "CA", "postal_code": "95014"},
					"sic_code": "3571",
					"list_date": "1980-12-12",
					"branding": {"logo_url": "https://api.polygon.io/logo.svg"},
					"round_lot": 100,
					"some_future_field": {"ignored": true}
				},
				"status": "OK"
			}`}
			details, err := GetTickerDetails(ctx, "AAPL", &TickerDetailsParams{
				Date: rest.NewDate(2022, time.March, 5),
			})
			So(err, ShouldBeNil)
			So(details, ShouldResemble, &TickerDetails{
				Ticker:          "AAPL",
				Name:            "Apple Inc.",
				Market:          "stocks",
				Locale:          "us",
				PrimaryExchange: "XNAS",
				Type:            "CS",
				Active:          true,
				CurrencyName:    "usd",
				CIK:             "0000320193",
				MarketCap:       2771126040500,
				Address: CompanyAddress{
					Address1:   "One Apple Park Way",
					City:       "Cupertino",
					State:      "CA",
					PostalCode: "95014",
				},
				SICCode:  "3571",
				ListDate: rest.NewDate(1980, time.December, 12),
				Branding: Branding{LogoURL: "https://api.polygon.io/logo.svg"},
				RoundLot: 100,
			})
			So(server.RequestPath, ShouldEqual, "/v3/reference/tickers/AAPL")
			So(server.RequestQuery.Get("date"), ShouldEqual, "2022-03-05")
		})

		Convey("ListTickerNews encodes date-range filters independently", func() {
			server.ResponseBody = []string{`{"status": "OK", "results": [
				{"id": "n1", "title": "Big news",
				 "publisher": {"name": "The Wire"},
				 "published_utc": "2022-03-05T13:00:00Z",
				 "tickers": ["AAPL", "MSFT"]}
			]}`}
			it := ListTickerNews(ctx, &ListTickerNewsParams{
				Ticker: rest.Comparable{Eq: "AAPL"},
				PublishedUTC: rest.DateRange{
					Gte: rest.NewDate(2022, time.March, 1),
					Lt:  rest.NewDate(2022, time.April, 1),
				},
				Order: Desc,
			})
			news, err := it.Collect()
			So(err, ShouldBeNil)
			So(news, ShouldResemble, []TickerNews{{
				ID:           "n1",
				Title:        "Big news",
				Publisher:    Publisher{Name: "The Wire"},
				PublishedUTC: "2022-03-05T13:00:00Z",
				Tickers:      []string{"AAPL", "MSFT"},
			}})
			So(server.RequestPath, ShouldEqual, "/v2/reference/news")
			So(server.RequestQuery, ShouldResemble, url.Values{
				"ticker":            []string{"AAPL"},
				"published_utc.gte": []string{"2022-03-01"},
				"published_utc.lt":  []string{"2022-04-01"},
				"order":             []string{"desc"},
				"apiKey":            []string{testKey},
			})
		})

		Convey("GetTickerTypes decodes the results array", func() {
			server.ResponseBody = []string{`{"status": "OK", "count": 2, "results": [
				{"asset_class": "stocks", "code": "CS",
				 "description": "Common Stock", "locale": "us"},
				{"asset_class": "stocks", "code": "PFD",
				 "description": "Preferred Stock", "locale": "us"}
			]}`}
			types, err := GetTickerTypes(ctx, &TickerTypesParams{
				AssetClass: Stocks,
				Locale:     US,
			})
			So(err, ShouldBeNil)
			So(types, ShouldResemble, []TickerType{
				{AssetClass: "stocks", Code: "CS", Description: "Common Stock", Locale: "us"},
				{AssetClass: "stocks", Code: "PFD", Description: "Preferred Stock", Locale: "us"},
			})
			So(server.RequestPath, ShouldEqual, "/v3/reference/tickers/types")
			So(server.RequestQuery.Get("asset_class"), ShouldEqual, "stocks")
			So(server.RequestQuery.Get("locale"), ShouldEqual, "us")
		})

		Convey("ListTickersRaw bypasses pagination and decoding", func() {
			server.ResponseBody = []string{`{"results": "whatever"}`}
			res, err := ListTickersRaw(ctx, &ListTickersParams{Limit: 5})
			So(err, ShouldBeNil)
			So(string(res.Body), ShouldEqual, `{"results": "whatever"}`)
			So(server.RequestQuery.Get("limit"), ShouldEqual, "5")
		})
	})
}
