// Package structures provides functions to parse Discord data types.
package structures

import (
	"encoding/base64"
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// tokenRE is a loose regular expression to match Discord bot tokens: three
// dot-separated base64url sections, the first of which encodes the bot's
// application ID.
var tokenRE = regexp.MustCompile(`^[A-Za-z0-9_-]{20,}\.[A-Za-z0-9_-]{5,8}\.[A-Za-z0-9_-]{24,}$`)

var errInvalidToken = errors.New("token must be the three dot-separated sections from the Bot page of the developer portal")

// ValidateToken checks the shape of the bot token.  A leading "Bot " prefix
// is tolerated, as people habitually paste the whole header value.
func ValidateToken(token string) error {
	token = strings.TrimPrefix(token, "Bot ")
	if !tokenRE.MatchString(token) {
		return errInvalidToken
	}
	head, _, _ := strings.Cut(token, ".")
	id, err := base64.RawURLEncoding.DecodeString(head)
	if err != nil {
		return errInvalidToken
	}
	if _, err := strconv.ParseUint(string(id), 10, 64); err != nil {
		return errInvalidToken
	}
	return nil
}

// snowflakeRE matches a Discord snowflake ID.  The shortest real IDs belong
// to users created in 2015 and have 17 digits.
var snowflakeRE = regexp.MustCompile(`^\d{17,20}$`)

// IsSnowflake reports whether s looks like a Discord ID.
func IsSnowflake(s string) bool {
	return snowflakeRE.MatchString(s)
}
