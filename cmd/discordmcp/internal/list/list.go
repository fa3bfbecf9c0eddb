// Package list implements the listing commands: servers, channels, members
// and messages.
package list

import (
	"context"
	"fmt"
	"strings"

	"github.com/rusq/discordmcp"
	"github.com/rusq/discordmcp/cmd/discordmcp/internal/golang/base"
	"github.com/rusq/discordmcp/internal/structures"
)

//go:generate mockgen -source list.go -destination lister_mock_test.go -package list

// CmdList is the list command.  The logic is in the subcommands.
var CmdList = &base.Command{
	UsageLine: "discordmcp list",
	Short:     "list servers, channels, members or messages",
	Long: `
# List Command

List prints the servers the bot is a member of, and the channels, members and
messages within them.  The output is plain text, one entry per line, with the
IDs printed next to the names, so that they can be fed to other commands.
`,
	Commands: []*base.Command{
		CmdListServers,
		CmdListChannels,
		CmdListMembers,
		CmdListMessages,
	},
}

// sessioner is the subset of the Session methods that the listing commands
// use.
type sessioner interface {
	Guilds(ctx context.Context) ([]discordmcp.Guild, error)
	GuildInfo(ctx context.Context, guildID string) (*discordmcp.GuildInfo, error)
	GuildChannels(ctx context.Context, guildID string) ([]discordmcp.Channel, error)
	GuildMembers(ctx context.Context, guildID string, limit int) ([]discordmcp.Member, error)
	Messages(ctx context.Context, channelID string, limit int) ([]discordmcp.Message, error)
}

// resolveGuild finds the server by ID or name in the bot's server list.
// Name matching is case insensitive.
func resolveGuild(ctx context.Context, sess sessioner, nameOrID string) (*discordmcp.Guild, error) {
	guilds, err := sess.Guilds(ctx)
	if err != nil {
		return nil, err
	}
	for _, g := range guilds {
		if g.ID == nameOrID || strings.EqualFold(g.Name, nameOrID) {
			return &g, nil
		}
	}
	if structures.IsSnowflake(nameOrID) {
		return nil, fmt.Errorf("the bot is not a member of the server %s", nameOrID)
	}
	names := make([]string, len(guilds))
	for i := range guilds {
		names[i] = guilds[i].Name
	}
	return nil, fmt.Errorf("server %q not found, the bot is a member of: %s", nameOrID, strings.Join(names, ", "))
}
