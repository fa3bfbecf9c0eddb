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

// Package chunk splits outgoing message text into pieces that fit within
// the platform's per-message character limit.
//
// Discord rejects messages longer than 2000 characters, so a single
// logical message may have to be delivered as several ordered messages.
// Split prefers to break on line boundaries; only a line that by itself
// exceeds the limit is cut mid-line.  Concatenating the returned chunks
// in order always reproduces the input exactly.
package chunk

import "iter"

// DefaultLimit is the maximum number of characters Discord accepts in a
// single message.
const DefaultLimit = 2000

// Split breaks text into an ordered sequence of chunks, each at most
// limit characters (runes) long.  It is total: any input, including the
// empty string and arbitrarily long single lines, produces a valid
// result, and the concatenation of the chunks equals text.  A text that
// already fits is returned as a single chunk, so the result is never
// empty; Split("", n) returns [""].  If limit is not positive, it is
// taken as DefaultLimit.
func Split(text string, limit int) []string {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if len(text) <= limit {
		// Byte length is never less than the rune count, so anything
		// passing this test fits.
		return []string{text}
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return []string{text}
	}

	var (
		chunks []string
		acc    []rune // chunk under construction
	)
	flush := func() {
		if len(acc) > 0 {
			chunks = append(chunks, string(acc))
			acc = acc[:0]
		}
	}
	for line := range lines(runes) {
		if len(line) > limit {
			// The line alone does not fit: seal the accumulated chunk
			// first, then cut the line into limit-sized pieces.  The
			// short remainder falls through to the regular path.
			flush()
			for len(line) > limit {
				chunks = append(chunks, string(line[:limit]))
				line = line[limit:]
			}
			if len(line) == 0 {
				continue
			}
		}
		if len(acc)+len(line) > limit {
			flush()
		}
		acc = append(acc, line...)
	}
	flush()
	return chunks
}

// lines iterates over maximal runs of characters up to and including the
// terminating newline; the final line may lack one.  Every character of
// text appears in exactly one line, so re-concatenation is lossless.
func lines(text []rune) iter.Seq[[]rune] {
	return func(yield func([]rune) bool) {
		start := 0
		for i, r := range text {
			if r == '\n' {
				if !yield(text[start : i+1]) {
					return
				}
				start = i + 1
			}
		}
		if start < len(text) {
			yield(text[start:])
		}
	}
}
