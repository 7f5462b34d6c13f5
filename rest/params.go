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
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/stockparfait/errors"
)

// Date records a calendar date as year, month and day. The zero value is
// treated as unset and is omitted from query parameters.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

var _ json.Marshaler = Date{}
var _ json.Unmarshaler = &Date{}

// NewDate is the constructor for Date.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateFromTime creates a Date from a time.Time value.
func DateFromTime(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// ParseDate creates a Date from its string representation, either a plain
// YYYY-MM-DD date or an RFC 3339 timestamp.
func ParseDate(s string) (Date, error) {
	var err error
	for _, format := range []string{"2006-01-02", time.RFC3339} {
		var t time.Time
		if t, err = time.Parse(format, s); err == nil {
			return DateFromTime(t), nil
		}
	}
	return Date{}, errors.Annotate(err, "failed to parse a Date string: '%s'", s)
}

// IsZero checks whether the date is unset.
func (d Date) IsZero() bool {
	return d == Date{}
}

// String formats the date as YYYY-MM-DD, the wire format of all date-valued
// query parameters.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// ToTime converts Date to time.Time in UTC.
func (d Date) ToTime() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Before tests the natural ordering of dates.
func (d Date) Before(d2 Date) bool {
	if d.Year != d2.Year {
		return d.Year < d2.Year
	}
	if d.Month != d2.Month {
		return d.Month < d2.Month
	}
	return d.Day < d2.Day
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return json.Marshal("")
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.Annotate(err, "Date JSON must be a string")
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Comparable is a string-valued query field supporting the API's comparison
// suffixes. Each set member encodes as its own independent query key: Eq as
// "k", Lt as "k.lt", Lte as "k.lte", Gt as "k.gt", Gte as "k.gte". Unset
// members are omitted.
type Comparable struct {
	Eq  string
	Lt  string
	Lte string
	Gt  string
	Gte string
}

// Encode adds the set members to v under the given base key.
func (c Comparable) Encode(v url.Values, key string) {
	SetString(v, key, c.Eq)
	SetString(v, key+".lt", c.Lt)
	SetString(v, key+".lte", c.Lte)
	SetString(v, key+".gt", c.Gt)
	SetString(v, key+".gte", c.Gte)
}

// DateRange is the date-valued counterpart of Comparable. Members are
// formatted as YYYY-MM-DD; zero dates are omitted.
type DateRange struct {
	Eq  Date
	Lt  Date
	Lte Date
	Gt  Date
	Gte Date
}

// Encode adds the set members to v under the given base key.
func (r DateRange) Encode(v url.Values, key string) {
	SetDate(v, key, r.Eq)
	SetDate(v, key+".lt", r.Lt)
	SetDate(v, key+".lte", r.Lte)
	SetDate(v, key+".gt", r.Gt)
	SetDate(v, key+".gte", r.Gte)
}

// NumberRange is the numeric counterpart of Comparable. Members are pointers
// so that a genuine zero survives; nil members are omitted.
type NumberRange struct {
	Eq  *float64
	Lt  *float64
	Lte *float64
	Gt  *float64
	Gte *float64
}

// Encode adds the set members to v under the given base key.
func (r NumberRange) Encode(v url.Values, key string) {
	SetFloat(v, key, r.Eq)
	SetFloat(v, key+".lt", r.Lt)
	SetFloat(v, key+".lte", r.Lte)
	SetFloat(v, key+".gt", r.Gt)
	SetFloat(v, key+".gte", r.Gte)
}

// Float creates an optional float parameter value.
func Float(f float64) *float64 { return &f }

// Bool creates an optional bool parameter value.
func Bool(b bool) *bool { return &b }

// SetString adds a string parameter, omitting the empty string.
func SetString(v url.Values, key, s string) {
	if s != "" {
		v.Set(key, s)
	}
}

// SetInt adds an integer parameter, omitting zero.
func SetInt(v url.Values, key string, n int) {
	if n != 0 {
		v.Set(key, strconv.Itoa(n))
	}
}

// SetFloat adds an optional float parameter, omitting nil.
func SetFloat(v url.Values, key string, f *float64) {
	if f != nil {
		v.Set(key, strconv.FormatFloat(*f, 'f', -1, 64))
	}
}

// SetBool adds an optional bool parameter, omitting nil.
func SetBool(v url.Values, key string, b *bool) {
	if b != nil {
		v.Set(key, strconv.FormatBool(*b))
	}
}

// SetDate adds a date parameter, omitting the zero date.
func SetDate(v url.Values, key string, d Date) {
	if !d.IsZero() {
		v.Set(key, d.String())
	}
}

// MergeExtra merges caller-supplied free-form parameters into v, overriding
// any computed value with the same key. This is the escape hatch for
// undocumented or newly added query parameters.
func MergeExtra(v, extra url.Values) {
	for k, vs := range extra {
		v[k] = append([]string{}, vs...)
	}
}
