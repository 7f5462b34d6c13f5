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

const conditionsPath = "/v3/reference/conditions"

// SIPMapping maps a condition to the symbols each SIP uses for it.
type SIPMapping struct {
	CTA  string `json:"CTA"`
	UTP  string `json:"UTP"`
	OPRA string `json:"OPRA"`
}

// UpdateFlags tells which aggregate values a condition updates.
type UpdateFlags struct {
	UpdatesHighLow   bool `json:"updates_high_low"`
	UpdatesOpenClose bool `json:"updates_open_close"`
	UpdatesVolume    bool `json:"updates_volume"`
}

// UpdateRules of a condition, for the consolidated feed and for the market
// center feed separately.
type UpdateRules struct {
	Consolidated UpdateFlags `json:"consolidated"`
	MarketCenter UpdateFlags `json:"market_center"`
}

// Condition is one trade or quote condition.
type Condition struct {
	Abbreviation string      `json:"abbreviation"`
	AssetClass   string      `json:"asset_class"`
	DataTypes    []string    `json:"data_types"`
	Description  string      `json:"description"`
	Exchange     int         `json:"exchange"`
	ID           int         `json:"id"`
	Legacy       bool        `json:"legacy"`
	Name         string      `json:"name"`
	SIPMapping   SIPMapping  `json:"sip_mapping"`
	Type         string      `json:"type"`
	UpdateRules  UpdateRules `json:"update_rules"`
}

// ListConditionsParams are the filters of the conditions listing.
type ListConditionsParams struct {
	AssetClass AssetClass
	DataType   DataType
	ID         int
	SIP        SIP
	Limit      int
	Sort       Sort
	Order      Order
	Extra      url.Values
}

// Values encodes the parameters as a URL query.
func (p *ListConditionsParams) Values() url.Values {
	v := make(url.Values)
	if p == nil {
		return v
	}
	rest.SetString(v, "asset_class", string(p.AssetClass))
	rest.SetString(v, "data_type", string(p.DataType))
	rest.SetInt(v, "id", p.ID)
	rest.SetString(v, "sip", string(p.SIP))
	rest.SetInt(v, "limit", p.Limit)
	rest.SetString(v, "sort", string(p.Sort))
	rest.SetString(v, "order", string(p.Order))
	rest.MergeExtra(v, p.Extra)
	return v
}

// ListConditions fetches all the conditions the API uses, paging through the
// results transparently.
func ListConditions(ctx context.Context, params *ListConditionsParams) *rest.Pager[Condition] {
	return rest.Paginate[Condition](ctx, conditionsPath, params.Values())
}

// ListConditionsRaw fetches the first page of the conditions listing without
// decoding or pagination.
func ListConditionsRaw(ctx context.Context, params *ListConditionsParams) (*rest.RawResponse, error) {
	return rest.GetRaw(ctx, conditionsPath, params.Values())
}
