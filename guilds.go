package discordmcp

// In this file: guilds, channels and members related code.

import (
	"context"
	"errors"
	"fmt"
	"runtime/trace"
	"slices"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/rusq/discordmcp/internal/network"
)

// DefMemberLimit is the number of members fetched from a guild when the
// caller does not specify a limit.
const DefMemberLimit = 100

// Guild is one entry of the bot's guild list.  The fields mirror the
// users/@me/guilds response.
type Guild struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon,omitempty"`
	Owner       bool   `json:"owner"`
	Permissions int64  `json:"permissions,string"`
}

// GuildInfo is the detailed guild information.  MemberCount is the
// approximate count reported by the API.
type GuildInfo struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Description       string   `json:"description,omitempty"`
	MemberCount       int      `json:"member_count"`
	OwnerID           string   `json:"owner_id"`
	IconURL           string   `json:"icon_url,omitempty"`
	Features          []string `json:"features"`
	VerificationLevel int      `json:"verification_level"`
	PremiumTier       int      `json:"premium_tier"`
}

// Channel is the reduced representation of a guild channel.
type Channel struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Position int    `json:"position"`
	ParentID string `json:"parent_id,omitempty"`
}

// Member is the reduced representation of a guild member.  Discriminator is
// empty for accounts migrated to unique usernames.
type Member struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	Discriminator string    `json:"discriminator,omitempty"`
	GlobalName    string    `json:"global_name,omitempty"`
	Bot           bool      `json:"bot,omitempty"`
	JoinedAt      time.Time `json:"joined_at"`
}

// Guilds returns the list of guilds the bot has been added to, up to the
// configured page size.
func (sd *Session) Guilds(ctx context.Context) ([]Guild, error) {
	ctx, task := trace.NewTask(ctx, "Guilds")
	defer task.End()

	var raw []*discordgo.UserGuild
	if err := network.WithRetry(ctx, sd.limiter(network.TierGlobal), sd.cfg.limits.Retries, func() error {
		var err error
		trace.WithRegion(ctx, "UserGuilds", func() {
			raw, err = sd.client.UserGuilds(sd.cfg.limits.Request.Guilds, "", "", false, discordgo.WithContext(ctx))
		})
		return err
	}); err != nil {
		return nil, apiErr(err)
	}

	guilds := make([]Guild, len(raw))
	for i, g := range raw {
		guilds[i] = Guild{
			ID:          g.ID,
			Name:        g.Name,
			Icon:        g.Icon,
			Owner:       g.Owner,
			Permissions: g.Permissions,
		}
	}
	return guilds, nil
}

// GuildInfo returns the detailed information for one guild, including the
// approximate member count.
func (sd *Session) GuildInfo(ctx context.Context, guildID string) (*GuildInfo, error) {
	ctx, task := trace.NewTask(ctx, "GuildInfo")
	defer task.End()

	if guildID == "" {
		return nil, errors.New("guildID is empty")
	}
	trace.Logf(ctx, "info", "guildID: %q", guildID)

	var g *discordgo.Guild
	if err := network.WithRetry(ctx, sd.limiter(network.TierGlobal), sd.cfg.limits.Retries, func() error {
		var err error
		trace.WithRegion(ctx, "GuildWithCounts", func() {
			g, err = sd.client.GuildWithCounts(guildID, discordgo.WithContext(ctx))
		})
		return err
	}); err != nil {
		return nil, apiErr(err)
	}

	features := make([]string, len(g.Features))
	for i, f := range g.Features {
		features[i] = string(f)
	}
	return &GuildInfo{
		ID:                g.ID,
		Name:              g.Name,
		Description:       g.Description,
		MemberCount:       g.ApproximateMemberCount,
		OwnerID:           g.OwnerID,
		IconURL:           g.IconURL(""),
		Features:          features,
		VerificationLevel: int(g.VerificationLevel),
		PremiumTier:       int(g.PremiumTier),
	}, nil
}

// GuildChannels returns the channels of the guild, ordered the way the
// client shows them: by position within the type, name as a tiebreak.
func (sd *Session) GuildChannels(ctx context.Context, guildID string) ([]Channel, error) {
	ctx, task := trace.NewTask(ctx, "GuildChannels")
	defer task.End()

	if guildID == "" {
		return nil, errors.New("guildID is empty")
	}
	trace.Logf(ctx, "info", "guildID: %q", guildID)

	var raw []*discordgo.Channel
	if err := network.WithRetry(ctx, sd.limiter(network.TierGlobal), sd.cfg.limits.Retries, func() error {
		var err error
		trace.WithRegion(ctx, "GuildChannels", func() {
			raw, err = sd.client.GuildChannels(guildID, discordgo.WithContext(ctx))
		})
		return err
	}); err != nil {
		return nil, apiErr(err)
	}

	channels := make([]Channel, len(raw))
	for i, ch := range raw {
		channels[i] = Channel{
			ID:       ch.ID,
			Name:     ch.Name,
			Type:     channelTypeName(ch.Type),
			Position: ch.Position,
			ParentID: ch.ParentID,
		}
	}
	slices.SortFunc(channels, func(a, b Channel) int {
		if a.Position != b.Position {
			return a.Position - b.Position
		}
		return strings.Compare(a.Name, b.Name)
	})
	return channels, nil
}

// GuildMembers returns up to limit members of the guild.  Zero or negative
// limit is treated as DefMemberLimit.
func (sd *Session) GuildMembers(ctx context.Context, guildID string, limit int) ([]Member, error) {
	ctx, task := trace.NewTask(ctx, "GuildMembers")
	defer task.End()

	if guildID == "" {
		return nil, errors.New("guildID is empty")
	}
	if limit <= 0 {
		limit = DefMemberLimit
	}
	limit = min(limit, sd.cfg.limits.Request.Members)
	trace.Logf(ctx, "info", "guildID: %q, limit: %d", guildID, limit)

	var raw []*discordgo.Member
	if err := network.WithRetry(ctx, sd.limiter(network.TierGlobal), sd.cfg.limits.Retries, func() error {
		var err error
		trace.WithRegion(ctx, "GuildMembers", func() {
			raw, err = sd.client.GuildMembers(guildID, "", limit, discordgo.WithContext(ctx))
		})
		return err
	}); err != nil {
		return nil, apiErr(err)
	}

	members := make([]Member, 0, len(raw))
	for _, m := range raw {
		if m.User == nil {
			continue
		}
		members = append(members, Member{
			ID:            m.User.ID,
			Username:      m.User.Username,
			Discriminator: discriminator(m.User),
			GlobalName:    m.User.GlobalName,
			Bot:           m.User.Bot,
			JoinedAt:      m.JoinedAt,
		})
	}
	return members, nil
}

// Channel returns the reduced information for a single channel.
func (sd *Session) Channel(ctx context.Context, channelID string) (*Channel, error) {
	ctx, task := trace.NewTask(ctx, "Channel")
	defer task.End()

	if channelID == "" {
		return nil, errors.New("channelID is empty")
	}

	var ch *discordgo.Channel
	if err := network.WithRetry(ctx, sd.limiter(network.TierGlobal), sd.cfg.limits.Retries, func() error {
		var err error
		trace.WithRegion(ctx, "Channel", func() {
			ch, err = sd.client.Channel(channelID, discordgo.WithContext(ctx))
		})
		return err
	}); err != nil {
		return nil, apiErr(err)
	}
	return &Channel{
		ID:       ch.ID,
		Name:     ch.Name,
		Type:     channelTypeName(ch.Type),
		Position: ch.Position,
		ParentID: ch.ParentID,
	}, nil
}

// channelTypeName renders the channel type the way the clients name them.
func channelTypeName(t discordgo.ChannelType) string {
	switch t {
	case discordgo.ChannelTypeGuildText:
		return "text"
	case discordgo.ChannelTypeDM:
		return "private"
	case discordgo.ChannelTypeGuildVoice:
		return "voice"
	case discordgo.ChannelTypeGroupDM:
		return "group"
	case discordgo.ChannelTypeGuildCategory:
		return "category"
	case discordgo.ChannelTypeGuildNews:
		return "news"
	case discordgo.ChannelTypeGuildStore:
		return "store"
	case discordgo.ChannelTypeGuildNewsThread:
		return "news_thread"
	case discordgo.ChannelTypeGuildPublicThread:
		return "public_thread"
	case discordgo.ChannelTypeGuildPrivateThread:
		return "private_thread"
	case discordgo.ChannelTypeGuildStageVoice:
		return "stage_voice"
	case discordgo.ChannelTypeGuildForum:
		return "forum"
	}
	return fmt.Sprintf("type_%d", int(t))
}

// discriminator returns the user discriminator, or an empty string for the
// accounts migrated to unique usernames.
func discriminator(u *discordgo.User) string {
	if u == nil || u.Discriminator == "0" {
		return ""
	}
	return u.Discriminator
}
