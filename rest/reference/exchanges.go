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

const exchangesPath = "/v3/reference/exchanges"

// Exchange is one known exchange or market operator.
type Exchange struct {
	Acronym       string `json:"acronym"`
	AssetClass    string `json:"asset_class"`
	ID            int    `json:"id"`
	Locale        string `json:"locale"`
	MIC           string `json:"mic"`
	Name          string `json:"name"`
	OperatingMIC  string `json:"operating_mic"`
	ParticipantID string `json:"participant_id"`
	Type          string `json:"type"`
	URL           string `json:"url"`
}

// ExchangesParams are the filters of the exchanges listing.
type ExchangesParams struct {
	AssetClass AssetClass
	Locale     Locale
	Extra      url.Values
}

// Values encodes the parameters as a URL query.
func (p *ExchangesParams) Values() url.Values {
	v := make(url.Values)
	if p == nil {
		return v
	}
	rest.SetString(v, "asset_class", string(p.AssetClass))
	rest.SetString(v, "locale", string(p.Locale))
	rest.MergeExtra(v, p.Extra)
	return v
}

// GetExchanges lists all the exchanges the API knows about.
func GetExchanges(ctx context.Context, params *ExchangesParams) ([]Exchange, error) {
	return rest.GetList[Exchange](ctx, exchangesPath, params.Values(), "results")
}

// GetExchangesRaw fetches the same endpoint without decoding.
func GetExchangesRaw(ctx context.Context, params *ExchangesParams) (*rest.RawResponse, error) {
	return rest.GetRaw(ctx, exchangesPath, params.Values())
}
