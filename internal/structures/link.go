package structures

// In this file: discord URL parsing functions.

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

const linkSep = ":"

var (
	ErrUnsupportedURL = errors.New("unsupported URL type")
	ErrNoURL          = errors.New("no url provided")
	ErrNotDiscordURL  = errors.New("not a discord URL")
	ErrInvalidLink    = errors.New("invalid link")
)

// MessageLink points at a channel, or at one message within it.  GuildID is
// "@me" for direct message channels.
type MessageLink struct {
	GuildID   string
	ChannelID string
	MessageID string
}

func (l MessageLink) IsMessage() bool {
	if !l.IsValid() {
		return false
	}
	return l.MessageID != ""
}

func (l MessageLink) IsValid() bool {
	return l.ChannelID != ""
}

func (l MessageLink) String() string {
	if !l.IsValid() {
		return "<invalid discord link>"
	}
	if !l.IsMessage() {
		return l.ChannelID
	}
	return strings.Join([]string{l.ChannelID, l.MessageID}, linkSep)
}

var linkRe = regexp.MustCompile(`^\d{17,20}(:\d{17,20})?$`)

// ParseLink parses the discord link string.  It supports the following
// formats:
//
//   - 99999999999999999                      - channel ID
//   - 99999999999999999:99999999999999999    - channel and message IDs
//   - https://<valid discord URL>            - a "copy message link" URL.
//
// It returns the MessageLink or error.
func ParseLink(link string) (MessageLink, error) {
	if IsURL(link) {
		ml, err := ParseURL(link)
		if err != nil {
			return MessageLink{}, err
		}
		return *ml, nil
	}
	if !linkRe.MatchString(link) {
		return MessageLink{}, fmt.Errorf("%w: %q", ErrInvalidLink, link)
	}

	id, msg, _ := strings.Cut(link, linkSep)
	return MessageLink{ChannelID: id, MessageID: msg}, nil
}

// Sample: https://discord.com/channels/217665724271247742/831493021699604531/1129072287330203708
//
// The first path element is the guild ID ("@me" for DM channels), followed
// by the channel ID, optionally followed by the message ID.  The ptb and
// canary clients use their subdomains, older clients the discordapp.com
// domain.
var discordURLRe = regexp.MustCompile(`^https:\/\/(?:(?:ptb|canary)\.)?discord(?:app)?\.com\/channels\/(@me|\d{17,20})\/(\d{17,20})(?:\/(\d{17,20}))?\/?$`)

// IsValidDiscordURL returns true if the value looks like a valid Discord
// message or channel URL, false if not.
func IsValidDiscordURL(s string) bool {
	return discordURLRe.MatchString(s)
}

func IsURL(s string) bool {
	return strings.HasPrefix(strings.ToLower(s), "https://")
}

// ParseURL parses the discord link in the format of
// https://discord.com/channels/<guild>/<channel>[/<message>]
func ParseURL(discordURL string) (*MessageLink, error) {
	if discordURL == "" {
		return nil, ErrNoURL
	}
	m := discordURLRe.FindStringSubmatch(discordURL)
	if m == nil {
		return nil, ErrNotDiscordURL
	}
	ml := MessageLink{
		GuildID:   m[1],
		ChannelID: m[2],
		MessageID: m[3],
	}
	if !ml.IsValid() {
		return nil, fmt.Errorf("invalid URL: %q", discordURL)
	}
	return &ml, nil
}

// ResolveChannelID accepts a channel ID, a channel:message link or a discord
// URL, and returns just the channel ID.
func ResolveChannelID(idOrURL string) (string, error) {
	ml, err := ParseLink(idOrURL)
	if err != nil {
		return "", err
	}
	return ml.ChannelID, nil
}
