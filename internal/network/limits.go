// Copyright (c) 2021-2026 Rustam Gilyazov and Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package network

// In this file: API limits configuration.

import (
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	limitsValidator *validator.Validate
	// OptErrTranslations is the english translations of the validation
	// errors.
	OptErrTranslations ut.Translator
)

func init() {
	limitsValidator = validator.New()
	english := en.New()
	uni := ut.New(english, english)
	var ok bool
	OptErrTranslations, ok = uni.GetTranslator("en")
	if !ok {
		panic("internal error: failed to init translator")
	}
	if err := en_translations.RegisterDefaultTranslations(limitsValidator, OptErrTranslations); err != nil {
		panic(err)
	}
}

// Limits contains the per-tier rate limits and the page sizes for the
// paginated requests.  Discord expresses its limits per route bucket, with a
// global ceiling per bot; see
// https://discord.com/developers/docs/topics/rate-limits for details.
type Limits struct {
	// Retries is the number of attempts for a failing API request before
	// giving up.
	Retries int `toml:"retries" validate:"gte=1,lte=10"`
	// Global is the limiter for the requests that are subject only to the
	// global ceiling (guild and user lookups etc).
	Global TierLimit `toml:"global"`
	// Route is the limiter for per-channel write routes (message create
	// and delete).
	Route TierLimit `toml:"route"`
	// Reaction is the limiter for the reaction endpoints, which Discord
	// throttles much harder than anything else.
	Reaction TierLimit `toml:"reaction"`
	// Request holds the page sizes for the paginated read requests.
	Request RequestLimit `toml:"request"`
}

// TierLimit is a rate limit adjustment for one tier.
type TierLimit struct {
	// Boost is added to the tier's base requests per minute.
	Boost uint `toml:"boost"`
	// Burst is the allowed burst of requests, in requests per second.
	// Default of 1 is the safest.
	Burst uint `toml:"burst" validate:"gte=1"`
}

// RequestLimit defines the maximum number of items in one page of a
// paginated API response.  The upper bounds are fixed by Discord.
type RequestLimit struct {
	// Messages per channel messages request (API maximum 100).
	Messages int `toml:"messages" validate:"gt=0,lte=100"`
	// Guilds per current-user guilds request (API maximum 200).
	Guilds int `toml:"guilds" validate:"gt=0,lte=200"`
	// Members per guild members request (API maximum 1000).
	Members int `toml:"members" validate:"gt=0,lte=1000"`
}

// DefLimits are the default limits.
var DefLimits = Limits{
	Retries: 3,
	Global: TierLimit{
		Boost: 0,
		Burst: 4,
	},
	Route: TierLimit{
		Boost: 0,
		Burst: 2,
	},
	Reaction: TierLimit{
		Boost: 0,
		Burst: 1,
	},
	Request: RequestLimit{
		Messages: 100,
		Guilds:   200,
		Members:  1000,
	},
}

// Apply applies the limits from other, and returns an error if the result
// fails validation.
func (o *Limits) Apply(other Limits) error {
	apply(&o.Retries, other.Retries)
	apply(&o.Global.Boost, other.Global.Boost)
	apply(&o.Global.Burst, other.Global.Burst)
	apply(&o.Route.Boost, other.Route.Boost)
	apply(&o.Route.Burst, other.Route.Burst)
	apply(&o.Reaction.Boost, other.Reaction.Boost)
	apply(&o.Reaction.Burst, other.Reaction.Burst)
	apply(&o.Request.Messages, other.Request.Messages)
	apply(&o.Request.Guilds, other.Request.Guilds)
	apply(&o.Request.Members, other.Request.Members)
	return o.Validate()
}

// Validate validates the limits.  The returned error is a
// validator.ValidationErrors, and can be translated with
// OptErrTranslations.
func (o *Limits) Validate() error {
	return limitsValidator.Struct(o)
}

func apply[T comparable](this *T, other T) {
	var zero T
	if other != zero {
		*this = other
	}
}
