package discordmcp

import (
	"errors"
	"log/slog"
	"net/http"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/time/rate"

	"github.com/rusq/discordmcp/auth"
	"github.com/rusq/discordmcp/internal/fixtures"
	"github.com/rusq/discordmcp/internal/network"
)

const (
	testChannelID = "831493021699604531"
	testMessageID = "1129072287330203708"
	testGuildID   = "217665724271247742"
	testUserID    = "217665724271247742"
)

// newTestSession returns a session with a mock client, bypassing New.
func newTestSession(t *testing.T, ctrl *gomock.Controller) (*Session, *mockClienter) {
	t.Helper()
	mc := newMockClienter(ctrl)
	sd := &Session{
		client: mc,
		cfg:    defConfig,
		log:    slog.Default(),
		botInfo: &BotInfo{
			UserID:   "217665724271247550",
			Username: "janitor",
		},
	}
	return sd, mc
}

// restErr fabricates the error the client returns on a non-2xx response.
func restErr(status int, code int, msg string) *discordgo.RESTError {
	return &discordgo.RESTError{
		Response: &http.Response{
			Status:     http.StatusText(status),
			StatusCode: status,
		},
		Message: &discordgo.APIErrorMessage{Code: code, Message: msg},
	}
}

func TestNew(t *testing.T) {
	validProv, err := auth.NewValueAuth(fixtures.TestBotToken)
	require.NoError(t, err)

	t.Run("initialises the session and detects the bot identity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mc := newMockClienter(ctrl)
		mc.EXPECT().User("@me", gomock.Any()).
			Return(fixtures.LoadPtr[discordgo.User](fixtures.TestUserJSON), nil)
		mc.EXPECT().Application("@me").
			Return(&discordgo.Application{ID: fixtures.TestAppID}, nil)

		sd, err := New(t.Context(), validProv, WithClient(mc))
		require.NoError(t, err)
		assert.Equal(t, testUserID, sd.CurrentUserID())
		assert.Equal(t, "maria", sd.Info().Username)
		assert.Equal(t, fixtures.TestAppID, sd.Info().ApplicationID)
	})
	t.Run("application endpoint failure is not fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mc := newMockClienter(ctrl)
		mc.EXPECT().User("@me", gomock.Any()).
			Return(fixtures.LoadPtr[discordgo.User](fixtures.TestUserJSON), nil)
		mc.EXPECT().Application("@me").
			Return(nil, restErr(http.StatusForbidden, 0, "Forbidden"))

		sd, err := New(t.Context(), validProv, WithClient(mc))
		require.NoError(t, err)
		assert.Empty(t, sd.Info().ApplicationID)
	})
	t.Run("rejected token returns an auth error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mc := newMockClienter(ctrl)
		mc.EXPECT().User("@me", gomock.Any()).
			Return(nil, restErr(http.StatusUnauthorized, 0, "401: Unauthorized"))

		_, err := New(t.Context(), validProv, WithClient(mc))
		require.Error(t, err)
		var ae *auth.Error
		assert.True(t, errors.As(err, &ae), "want auth.Error, got %T", err)
	})
	t.Run("invalid provider fails before any API call", func(t *testing.T) {
		_, err := New(t.Context(), auth.ValueAuth{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "auth provider validation")
	})
}

func TestOptions(t *testing.T) {
	t.Run("WithLimits ignores an invalid set", func(t *testing.T) {
		sd := &Session{cfg: defConfig}
		WithLimits(network.Limits{})(sd)
		assert.Equal(t, network.DefLimits, sd.cfg.limits)
	})
	t.Run("WithLimits applies a valid set", func(t *testing.T) {
		sd := &Session{cfg: defConfig}
		l := network.DefLimits
		l.Retries = 5
		WithLimits(l)(sd)
		assert.Equal(t, 5, sd.cfg.limits.Retries)
	})
	t.Run("WithLogger ignores nil", func(t *testing.T) {
		sd := &Session{log: slog.Default()}
		WithLogger(nil)(sd)
		assert.NotNil(t, sd.log)
	})
	t.Run("WithUserAgent", func(t *testing.T) {
		sd := &Session{cfg: defConfig}
		WithUserAgent("discordmcp-test/1.0")(sd)
		assert.Equal(t, "discordmcp-test/1.0", sd.cfg.userAgent)
	})
}

func TestSession_limiter(t *testing.T) {
	sd := &Session{cfg: defConfig}
	tests := []struct {
		name      string
		tier      network.Tier
		wantLimit rate.Limit
		wantBurst int
	}{
		{"global", network.TierGlobal, 50.0, 4},
		{"route", network.TierRoute, 1.0, 2},
		{"reaction", network.TierReaction, 4.0, 1},
		{"unknown tier gets the route config", network.NoTier, 100.0, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := sd.limiter(tt.tier)
			assert.Equal(t, tt.wantLimit, l.Limit())
			assert.Equal(t, tt.wantBurst, l.Burst())
		})
	}
}
