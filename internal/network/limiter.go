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

import (
	"time"

	"golang.org/x/time/rate"
)

// Tier represents a rate limit class:
// https://discord.com/developers/docs/topics/rate-limits
type Tier int

const (
	// base throttling defined in requests per minute
	NoTier Tier = 6000 // no Tier is applied

	// TierGlobal is the global ceiling of fifty requests per second per
	// bot.
	TierGlobal Tier = 3000
	// TierRoute is the usual per-route bucket of five requests per five
	// seconds.
	TierRoute Tier = 60
	// TierReaction is the reaction bucket of one request per 250 ms.
	TierReaction Tier = 240
)

// NewLimiter returns throttler with rateLimit requests per minute.
// optionally caller may specify the boost
func NewLimiter(t Tier, burst uint, boost int) *rate.Limiter {
	l := rate.NewLimiter(rate.Every(every(t, boost)), int(burst))
	return l
}

func every(t Tier, boost int) time.Duration {
	return time.Minute / time.Duration(int(t)+boost)
}
