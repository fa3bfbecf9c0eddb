// Package invite implements the command that generates the OAuth2 link for
// adding the bot to a server.
package invite

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/bwmarrin/discordgo"
	br "github.com/pkg/browser"

	"github.com/rusq/discordmcp/cmd/discordmcp/internal/bootstrap"
	"github.com/rusq/discordmcp/cmd/discordmcp/internal/cfg"
	"github.com/rusq/discordmcp/cmd/discordmcp/internal/golang/base"
	"github.com/rusq/discordmcp/internal/structures"
)

var CmdInvite = &base.Command{
	Run:        runInvite,
	UsageLine:  "discordmcp invite [flags]",
	PrintFlags: true,
	Short:      "generate the server invite link for the bot",
	Long: `
# Invite Command

Invite prints the OAuth2 authorisation URL that adds the bot to a server, and
opens it in the browser.  The URL requests the permissions that the tools
need:  view channels, send messages, read the message history, add reactions
and manage messages.

The application ID is requested from the API.  Should that fail (some tokens
are not allowed to see the application), find the ID on the application page
of the Discord developer portal, and pass it with the -app-id flag.

Only a server administrator can complete the authorisation, so send the
printed URL to one if you aren't.
`,
	RequireAuth: true,
}

// permissions are the bits that the exposed operations require.  Manage
// messages is needed to delete messages of other users.
const permissions = discordgo.PermissionViewChannel |
	discordgo.PermissionSendMessages |
	discordgo.PermissionReadMessageHistory |
	discordgo.PermissionAddReactions |
	discordgo.PermissionManageMessages

var (
	appID  string
	noOpen bool
)

func init() {
	CmdInvite.Flag.StringVar(&appID, "app-id", "", "application (client) `ID` to generate the link for, skips asking the API")
	CmdInvite.Flag.BoolVar(&noOpen, "no-open", false, "print the URL without opening the browser")
}

func runInvite(ctx context.Context, cmd *base.Command, args []string) error {
	id := appID
	if id == "" {
		sess, err := bootstrap.Session(ctx)
		if err != nil {
			base.SetExitStatus(base.SInitializationError)
			return err
		}
		id = sess.Info().ApplicationID
		if id == "" {
			base.SetExitStatus(base.SApplicationError)
			return errors.New("the API did not return the application ID, pass it with the -app-id flag")
		}
	}
	if !structures.IsSnowflake(id) {
		base.SetExitStatus(base.SInvalidParameters)
		return fmt.Errorf("not a valid application ID: %q", id)
	}

	u := URL(id)
	fmt.Println(u)
	if !noOpen {
		if err := br.OpenURL(u); err != nil {
			cfg.Log.WarnContext(ctx, "unable to open browser", "error", err)
		}
	}
	return nil
}

// URL returns the OAuth2 authorisation URL for the application with the bot
// scope and the permission bits that the exposed operations require.
func URL(appID string) string {
	v := url.Values{
		"client_id":   {appID},
		"scope":       {"bot"},
		"permissions": {strconv.Itoa(permissions)},
	}
	return "https://discord.com/api/oauth2/authorize?" + v.Encode()
}
