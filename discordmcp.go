// Package discordmcp provides a REST-only Discord bot session, and the
// building blocks of the MCP server that exposes it as callable tools.
package discordmcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/trace"

	"github.com/bwmarrin/discordgo"
	"github.com/go-playground/validator/v10"
	"golang.org/x/time/rate"

	"github.com/rusq/discordmcp/auth"
	"github.com/rusq/discordmcp/internal/network"
)

//go:generate mockgen -source discordmcp.go -destination clienter_mock_test.go -package discordmcp -mock_names clienter=mockClienter

// Session stores basic session parameters.  Zero value is not usable, must be
// initialised with New.
type Session struct {
	client clienter // Discord client

	botInfo *BotInfo // identity of the authenticated bot

	log *slog.Logger
	cfg config
}

// BotInfo is a type alias for [auth.AuthTestResponse].
type BotInfo = auth.AuthTestResponse

// Discorder is the interface with some functions of discordgo.Session.
type Discorder interface {
	ChannelMessages(channelID string, limit int, beforeID, afterID, aroundID string, options ...discordgo.RequestOption) ([]*discordgo.Message, error)
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageDelete(channelID, messageID string, options ...discordgo.RequestOption) error
	MessageReactionAdd(channelID, messageID, emojiID string, options ...discordgo.RequestOption) error
	UserGuilds(limit int, beforeID, afterID string, withCounts bool, options ...discordgo.RequestOption) ([]*discordgo.UserGuild, error)
	GuildWithCounts(guildID string, options ...discordgo.RequestOption) (*discordgo.Guild, error)
	GuildChannels(guildID string, options ...discordgo.RequestOption) ([]*discordgo.Channel, error)
	GuildMembers(guildID string, after string, limit int, options ...discordgo.RequestOption) ([]*discordgo.Member, error)
	User(userID string, options ...discordgo.RequestOption) (*discordgo.User, error)
}

// clienter is the interface with some functions of discordgo.Session with the
// sole purpose of mocking in tests (see clienter_mock_test.go)
type clienter interface {
	Discorder
	Channel(channelID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	Application(appID string) (*discordgo.Application, error)
}

// Option is the signature of the option-setting function.
type Option func(*Session)

// WithLimits sets the API limits to use for the session.  If this option is
// not given, the default limits are initialised with the values specified in
// network.DefLimits.
func WithLimits(l network.Limits) Option {
	return func(s *Session) {
		if l.Validate() == nil {
			s.cfg.limits = l
		}
	}
}

// WithLogger sets the logger to use for the session.  If this option is not
// given, the default logger is used.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithUserAgent overrides the User-Agent header on API requests.
func WithUserAgent(ua string) Option {
	return func(s *Session) {
		if ua != "" {
			s.cfg.userAgent = ua
		}
	}
}

// WithClient sets the Discord client to use for the session.
func WithClient(cl clienter) Option {
	return func(s *Session) {
		s.client = cl
	}
}

// New creates a new Session with the provided options, and verifies the
// token by requesting the identity of the bot it belongs to.  If the API
// rejects the token, an auth.Error is returned.
func New(ctx context.Context, prov auth.Provider, opts ...Option) (*Session, error) {
	ctx, task := trace.NewTask(ctx, "New")
	defer task.End()

	if err := prov.Validate(); err != nil {
		return nil, fmt.Errorf("auth provider validation error: %s", err)
	}

	cl, err := discordgo.New("Bot " + prov.Token())
	if err != nil {
		return nil, err
	}
	// rate limited requests are retried by the network package, which
	// honours the Retry-After value, so the built-in resend is disabled.
	cl.ShouldRetryOnRateLimit = false

	sd := &Session{
		client: cl,
		cfg:    defConfig,

		log: slog.Default(),
	}
	for _, opt := range opts {
		opt(sd)
	}
	network.SetLogger(sd.log) // set the logger for the network package
	if sd.cfg.userAgent != "" {
		cl.UserAgent = sd.cfg.userAgent
	}

	if err := sd.cfg.limits.Validate(); err != nil {
		var vErr validator.ValidationErrors
		if errors.As(err, &vErr) {
			return nil, fmt.Errorf("API limits failed validation: %s", vErr.Translate(network.OptErrTranslations))
		}
		return nil, err
	}

	me, err := sd.client.User("@me", discordgo.WithContext(ctx))
	if err != nil {
		return nil, &auth.Error{Err: err}
	}
	sd.botInfo = &BotInfo{
		UserID:        me.ID,
		Username:      me.Username,
		Discriminator: me.Discriminator,
	}
	// the application ID is only needed to generate invite links, a token
	// that can't see it is still usable.
	if app, err := sd.client.Application("@me"); err == nil {
		sd.botInfo.ApplicationID = app.ID
	}

	return sd, nil
}

// Client returns the underlying discordgo.Session.
func (sd *Session) Client() *discordgo.Session {
	return sd.client.(*discordgo.Session)
}

// CurrentUserID returns the user ID of the authenticated bot.
func (sd *Session) CurrentUserID() string {
	return sd.botInfo.UserID
}

// Info returns the bot identity.  It is retrieved once during
// initialisation, so no API call is involved at this point.
func (sd *Session) Info() *BotInfo {
	return sd.botInfo
}

func (sd *Session) limiter(t network.Tier) *rate.Limiter {
	var tl network.TierLimit
	switch t {
	case network.TierGlobal:
		tl = sd.cfg.limits.Global
	case network.TierRoute:
		tl = sd.cfg.limits.Route
	case network.TierReaction:
		tl = sd.cfg.limits.Reaction
	default:
		tl = sd.cfg.limits.Route
	}
	return network.NewLimiter(t, tl.Burst, int(tl.Boost))
}
