package list

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"github.com/rusq/discordmcp"
	"github.com/rusq/discordmcp/cmd/discordmcp/internal/bootstrap"
	"github.com/rusq/discordmcp/cmd/discordmcp/internal/golang/base"
)

var CmdListServers = &base.Command{
	Run:        listServers,
	UsageLine:  "discordmcp list servers [flags]",
	PrintFlags: true,
	Short:      "list servers the bot is a member of",
	Long: `
# List Servers Command

Lists the servers the bot has been added to.  With the -details flag, the
member count and the owner of each server are fetched as well, which costs
one extra API call per server.
`,
	RequireAuth: true,
}

var serverDetails bool

func init() {
	CmdListServers.Flag.BoolVar(&serverDetails, "details", false, "fetch member counts and owners for each server")
}

func listServers(ctx context.Context, cmd *base.Command, args []string) error {
	sess, err := bootstrap.Session(ctx)
	if err != nil {
		base.SetExitStatus(base.SInitializationError)
		return err
	}
	return printServers(ctx, os.Stdout, sess, serverDetails)
}

// detailWorkers is the number of concurrent server info requests.
const detailWorkers = 4

func printServers(ctx context.Context, w io.Writer, sess sessioner, details bool) error {
	guilds, err := sess.Guilds(ctx)
	if err != nil {
		return err
	}
	if len(guilds) == 0 {
		fmt.Fprintln(w, "The bot is not a member of any server.")
		return nil
	}
	if !details {
		for _, g := range guilds {
			fmt.Fprintf(w, "%s (ID: %s)\n", g.Name, g.ID)
		}
		return nil
	}

	infos := make([]*discordmcp.GuildInfo, len(guilds))
	eg, ectx := errgroup.WithContext(ctx)
	eg.SetLimit(detailWorkers)
	for i, g := range guilds {
		eg.Go(func() error {
			gi, err := sess.GuildInfo(ectx, g.ID)
			if err != nil {
				return fmt.Errorf("server %s: %w", g.ID, err)
			}
			infos[i] = gi
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	for _, gi := range infos {
		fmt.Fprintf(w, "%s (ID: %s), %s members, owner ID: %s\n", gi.Name, gi.ID, humanize.Comma(int64(gi.MemberCount)), gi.OwnerID)
	}
	return nil
}
