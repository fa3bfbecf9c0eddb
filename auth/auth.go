// Package auth provides Discord bot token providers.
package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/rusq/discordmcp/internal/structures"
)

// Type is the auth type.
type Type uint8

// All supported auth types.
const (
	TypeInvalid Type = iota
	TypeValue
	TypeEnv
	TypeDotEnv
)

// Provider is the Discord authentication provider.
type Provider interface {
	// Token should return the bot token value, without the "Bot " prefix.
	Token() string
	// Type returns the auth type.
	Type() Type
	// Validate should return an error if the token is missing or does not
	// have the shape of a bot token.
	Validate() error
	// Test verifies the token against the live API, and returns the
	// identity of the bot it belongs to.
	Test(ctx context.Context) (*AuthTestResponse, error)
}

var ErrNoToken = errors.New("no token")

// AuthTestResponse is the bot identity as reported by the API.
type AuthTestResponse struct {
	UserID        string
	Username      string
	Discriminator string
	// ApplicationID is the OAuth2 application the token belongs to.  It may
	// be empty if the applications endpoint is not available to the token.
	ApplicationID string
}

type simpleProvider struct {
	token string
}

func (c simpleProvider) Validate() error {
	if c.token == "" {
		return ErrNoToken
	}
	return structures.ValidateToken(c.token)
}

func (c simpleProvider) Token() string {
	return c.token
}

func (c simpleProvider) Test(ctx context.Context) (*AuthTestResponse, error) {
	client, err := discordgo.New("Bot " + c.token)
	if err != nil {
		return nil, &Error{Err: err}
	}
	client.ShouldRetryOnRateLimit = false
	u, err := client.User("@me", discordgo.WithContext(ctx))
	if err != nil {
		return nil, &Error{Err: err}
	}
	resp := AuthTestResponse{
		UserID:        u.ID,
		Username:      u.Username,
		Discriminator: u.Discriminator,
	}
	// not fatal, the token is already proven valid at this point.
	if app, err := client.Application("@me"); err == nil {
		resp.ApplicationID = app.ID
	}
	return &resp, nil
}

// normalise strips the authorisation header prefix, in case the user pasted
// the full header value.
func normalise(token string) string {
	return strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(token), "Bot "))
}
