package list

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/fatih/color"

	"github.com/rusq/discordmcp"
	"github.com/rusq/discordmcp/cmd/discordmcp/internal/bootstrap"
	"github.com/rusq/discordmcp/cmd/discordmcp/internal/golang/base"
)

var CmdListChannels = &base.Command{
	Run:        listChannels,
	UsageLine:  "discordmcp list channels [flags] <server>",
	PrintFlags: true,
	Short:      "list channels of a server",
	Long: `
# List Channels Command

Lists the channels of a server the bot is a member of.  The server can be
given by its ID or name.  By default only text channels are printed, use the
-all flag to include the other channel types.
`,
	RequireAuth: true,
}

var allChannels bool

func init() {
	CmdListChannels.Flag.BoolVar(&allChannels, "all", false, "include voice channels and categories")
}

func listChannels(ctx context.Context, cmd *base.Command, args []string) error {
	if len(args) < 1 {
		base.SetExitStatus(base.SInvalidParameters)
		return errors.New("server ID or name is required")
	}
	sess, err := bootstrap.Session(ctx)
	if err != nil {
		base.SetExitStatus(base.SInitializationError)
		return err
	}
	return printChannels(ctx, os.Stdout, sess, args[0], allChannels)
}

func printChannels(ctx context.Context, w io.Writer, sess sessioner, server string, all bool) error {
	g, err := resolveGuild(ctx, sess, server)
	if err != nil {
		return err
	}
	channels, err := sess.GuildChannels(ctx, g.ID)
	if err != nil {
		return err
	}

	underline := color.Set(color.Underline)
	fmt.Fprintf(w, "%s\n", underline.Sprintf("Server: %s (ID: %s)", g.Name, g.ID))

	text := channelsOfType(channels, "text")
	slices.SortFunc(text, func(a, b discordmcp.Channel) int {
		return strings.Compare(a.Name, b.Name)
	})
	fmt.Fprintf(w, "Found %d text channels:\n", len(text))
	for _, ch := range text {
		fmt.Fprintf(w, "  #%s (ID: %s)\n", ch.Name, ch.ID)
	}
	if all {
		other := make([]discordmcp.Channel, 0, len(channels))
		for _, ch := range channels {
			if ch.Type != "text" {
				other = append(other, ch)
			}
		}
		if len(other) > 0 {
			fmt.Fprintf(w, "Other channels:\n")
			for _, ch := range other {
				fmt.Fprintf(w, "  %s (ID: %s, type: %s)\n", ch.Name, ch.ID, ch.Type)
			}
		}
	}
	if g.Permissions&discordgo.PermissionSendMessages == 0 {
		fmt.Fprint(w, color.HiYellowString("\nNote: the bot lacks the 'Send Messages' permission on this server,\nit will not be able to post messages there.\n"))
	}
	return nil
}

func channelsOfType(cc []discordmcp.Channel, t string) []discordmcp.Channel {
	var out []discordmcp.Channel
	for _, ch := range cc {
		if ch.Type == t {
			out = append(out, ch)
		}
	}
	return out
}
