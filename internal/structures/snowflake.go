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

package structures

// in this file: snowflake ID time functions

import (
	"errors"
	"strconv"
	"time"
)

// discordEpoch is the Discord epoch (2015-01-01T00:00:00Z) in milliseconds
// since the Unix epoch.  The upper 42 bits of a snowflake are the
// milliseconds since this moment.
const discordEpoch = 1_420_070_400_000

const timestampShift = 22

// SnowflakeTime extracts the creation time from a snowflake ID.
func SnowflakeTime(id string) (time.Time, error) {
	n, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return time.Time{}, errors.New("not a snowflake ID")
	}
	ms := int64(n>>timestampShift) + discordEpoch
	return time.UnixMilli(ms).UTC(), nil
}

// TimeToSnowflake converts t to a synthetic snowflake that sorts correctly
// against real IDs, for use as a pagination boundary.  It returns an empty
// string for the zero time and for times before the Discord epoch.
func TimeToSnowflake(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	ms := t.UnixMilli() - discordEpoch
	if ms < 0 {
		return ""
	}
	return strconv.FormatUint(uint64(ms)<<timestampShift, 10)
}
