package fixtures

import (
	"encoding/json"

	"github.com/bwmarrin/discordgo"
)

const (
	// TestBotToken is a structurally valid bot token.  The first section
	// decodes to TestAppID.
	TestBotToken = "MTIzNDU2Nzg5MDEyMzQ1Njc4.G65kq1.xxxxxxxxxxxxxxxxxxxxxxxxxxx"
	// TestAppID is the application ID encoded in TestBotToken.
	TestAppID = "123456789012345678"
)

// Load loads a json data into T, or panics.
func Load[T any](js string) T {
	var ret T
	if err := json.Unmarshal([]byte(js), &ret); err != nil {
		panic(err)
	}
	return ret
}

// LoadPtr loads a json data into *T, or panics.
func LoadPtr[T any](js string) *T {
	v := Load[T](js)
	return &v
}

// DummyChannel is the helper function that returns a pointer to a
// discordgo.Channel with the given ID, that could be used in tests.
func DummyChannel(id string) *discordgo.Channel {
	var ch discordgo.Channel
	ch.ID = id
	return &ch
}

// DummyUser returns a pointer to a discordgo.User with the given ID.
func DummyUser(id string) *discordgo.User {
	var u discordgo.User
	u.ID = id
	return &u
}
