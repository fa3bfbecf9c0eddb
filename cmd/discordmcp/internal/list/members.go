package list

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/rusq/discordmcp"
	"github.com/rusq/discordmcp/cmd/discordmcp/internal/bootstrap"
	"github.com/rusq/discordmcp/cmd/discordmcp/internal/golang/base"
)

var CmdListMembers = &base.Command{
	Run:        listMembers,
	UsageLine:  "discordmcp list members [flags] <server>",
	PrintFlags: true,
	Short:      "list members of a server",
	Long: `
# List Members Command

Lists the members of a server the bot is a member of.  The server can be
given by its ID or name.  The bot must have the Server Members privileged
intent enabled in the Developer Portal, otherwise the API denies the request.
`,
	RequireAuth: true,
}

var memberLimit int

func init() {
	CmdListMembers.Flag.IntVar(&memberLimit, "n", discordmcp.DefMemberLimit, "number of members to fetch")
}

func listMembers(ctx context.Context, cmd *base.Command, args []string) error {
	if len(args) < 1 {
		base.SetExitStatus(base.SInvalidParameters)
		return errors.New("server ID or name is required")
	}
	sess, err := bootstrap.Session(ctx)
	if err != nil {
		base.SetExitStatus(base.SInitializationError)
		return err
	}
	return printMembers(ctx, os.Stdout, sess, args[0], memberLimit)
}

func printMembers(ctx context.Context, w io.Writer, sess sessioner, server string, limit int) error {
	g, err := resolveGuild(ctx, sess, server)
	if err != nil {
		return err
	}
	members, err := sess.GuildMembers(ctx, g.ID, limit)
	if err != nil {
		return err
	}

	underline := color.Set(color.Underline)
	fmt.Fprintf(w, "%s\n", underline.Sprintf("Server: %s (ID: %s)", g.Name, g.ID))
	for _, m := range members {
		name := m.Username
		if m.GlobalName != "" {
			name = fmt.Sprintf("%s (%s)", m.GlobalName, m.Username)
		}
		var bot string
		if m.Bot {
			bot = " [bot]"
		}
		fmt.Fprintf(w, "  %s%s (ID: %s), joined %s\n", name, bot, m.ID, humanize.Time(m.JoinedAt))
	}
	return nil
}
