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
	"encoding/json"
	"net/url"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParams(t *testing.T) {
	t.Parallel()

	Convey("Date works correctly", t, func() {
		Convey("String formats with zero padding", func() {
			So(NewDate(2022, time.March, 5).String(), ShouldEqual, "2022-03-05")
		})

		Convey("ParseDate accepts a plain date", func() {
			d, err := ParseDate("2021-12-31")
			So(err, ShouldBeNil)
			So(d, ShouldResemble, NewDate(2021, time.December, 31))
		})

		Convey("ParseDate accepts a timestamp", func() {
			d, err := ParseDate("2021-12-31T09:30:00Z")
			So(err, ShouldBeNil)
			So(d, ShouldResemble, NewDate(2021, time.December, 31))
		})

		Convey("ParseDate rejects garbage", func() {
			_, err := ParseDate("yesterday")
			So(err, ShouldNotBeNil)
		})

		Convey("JSON round trip", func() {
			var d Date
			So(json.Unmarshal([]byte(`"2020-04-09"`), &d), ShouldBeNil)
			So(d, ShouldResemble, NewDate(2020, time.April, 9))
			out, err := json.Marshal(d)
			So(err, ShouldBeNil)
			So(string(out), ShouldEqual, `"2020-04-09"`)
		})

		Convey("empty JSON string is the zero date", func() {
			var d Date
			So(json.Unmarshal([]byte(`""`), &d), ShouldBeNil)
			So(d.IsZero(), ShouldBeTrue)
		})

		Convey("non-string JSON is an error", func() {
			var d Date
			So(json.Unmarshal([]byte(`42`), &d), ShouldNotBeNil)
		})

		Convey("Before orders dates naturally", func() {
			So(NewDate(2021, time.December, 31).Before(NewDate(2022, time.January, 1)),
				ShouldBeTrue)
			So(NewDate(2022, time.January, 1).Before(NewDate(2021, time.December, 31)),
				ShouldBeFalse)
		})
	})

	Convey("Comparable encodes each member as its own key", t, func() {
		v := make(url.Values)
		Comparable{Eq: "A", Lt: "B", Lte: "C", Gt: "D", Gte: "E"}.Encode(v, "ticker")
		So(v, ShouldResemble, url.Values{
			"ticker":     []string{"A"},
			"ticker.lt":  []string{"B"},
			"ticker.lte": []string{"C"},
			"ticker.gt":  []string{"D"},
			"ticker.gte": []string{"E"},
		})
	})

	Convey("Comparable omits unset members", t, func() {
		v := make(url.Values)
		Comparable{Lt: "B"}.Encode(v, "ticker")
		So(v, ShouldResemble, url.Values{"ticker.lt": []string{"B"}})
		So(v.Has("ticker"), ShouldBeFalse)
	})

	Convey("DateRange encodes dates in wire format", t, func() {
		v := make(url.Values)
		DateRange{
			Gte: NewDate(2022, time.January, 1),
			Lt:  NewDate(2022, time.February, 1),
		}.Encode(v, "pay_date")
		So(v, ShouldResemble, url.Values{
			"pay_date.gte": []string{"2022-01-01"},
			"pay_date.lt":  []string{"2022-02-01"},
		})
	})

	Convey("NumberRange keeps a genuine zero", t, func() {
		v := make(url.Values)
		NumberRange{Eq: Float(0), Gt: Float(0.25)}.Encode(v, "cash_amount")
		So(v, ShouldResemble, url.Values{
			"cash_amount":    []string{"0"},
			"cash_amount.gt": []string{"0.25"},
		})
	})

	Convey("Set helpers omit unset values", t, func() {
		v := make(url.Values)
		SetString(v, "type", "")
		SetInt(v, "limit", 0)
		SetFloat(v, "cash_amount", nil)
		SetBool(v, "active", nil)
		SetDate(v, "date", Date{})
		So(len(v), ShouldEqual, 0)

		SetString(v, "type", "CS")
		SetInt(v, "limit", 100)
		SetBool(v, "active", Bool(true))
		SetDate(v, "date", NewDate(2022, time.March, 5))
		So(v, ShouldResemble, url.Values{
			"type":   []string{"CS"},
			"limit":  []string{"100"},
			"active": []string{"true"},
			"date":   []string{"2022-03-05"},
		})
	})

	Convey("MergeExtra overrides computed values", t, func() {
		v := url.Values{"limit": []string{"100"}, "sort": []string{"ticker"}}
		MergeExtra(v, url.Values{"limit": []string{"5"}, "new_param": []string{"x"}})
		So(v, ShouldResemble, url.Values{
			"limit":     []string{"5"},
			"sort":      []string{"ticker"},
			"new_param": []string{"x"},
		})
	})
}
