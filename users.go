package discordmcp

// In this file: user related code.

import (
	"context"
	"errors"
	"runtime/trace"

	"github.com/bwmarrin/discordgo"

	"github.com/rusq/discordmcp/internal/network"
)

// User is the reduced representation of a Discord user.  Discriminator is
// empty for accounts migrated to unique usernames.
type User struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	Discriminator string `json:"discriminator,omitempty"`
	GlobalName    string `json:"global_name,omitempty"`
	Bot           bool   `json:"bot,omitempty"`
	AvatarURL     string `json:"avatar_url,omitempty"`
}

// User returns the information about a single user.
func (sd *Session) User(ctx context.Context, userID string) (*User, error) {
	ctx, task := trace.NewTask(ctx, "User")
	defer task.End()

	if userID == "" {
		return nil, errors.New("userID is empty")
	}
	trace.Logf(ctx, "info", "userID: %q", userID)

	var u *discordgo.User
	if err := network.WithRetry(ctx, sd.limiter(network.TierGlobal), sd.cfg.limits.Retries, func() error {
		var err error
		trace.WithRegion(ctx, "User", func() {
			u, err = sd.client.User(userID, discordgo.WithContext(ctx))
		})
		return err
	}); err != nil {
		return nil, apiErr(err)
	}

	return &User{
		ID:            u.ID,
		Username:      u.Username,
		Discriminator: discriminator(u),
		GlobalName:    u.GlobalName,
		Bot:           u.Bot,
		AvatarURL:     u.AvatarURL(""),
	}, nil
}
