package list

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rusq/discordmcp"
	"github.com/rusq/discordmcp/cmd/discordmcp/internal/bootstrap"
	"github.com/rusq/discordmcp/cmd/discordmcp/internal/golang/base"
	"github.com/rusq/discordmcp/internal/structures"
)

var CmdListMessages = &base.Command{
	Run:        listMessages,
	UsageLine:  "discordmcp list messages [flags] <channel>",
	PrintFlags: true,
	Short:      "list recent messages of a channel",
	Long: `
# List Messages Command

Lists the most recent messages of a channel, newest first.  The channel can
be given by its ID or a channel URL, for example:

	discordmcp list messages 1234567890123456789
	discordmcp list messages https://discord.com/channels/9876/1234567890123456789
`,
	RequireAuth: true,
}

var msgLimit int

func init() {
	CmdListMessages.Flag.IntVar(&msgLimit, "n", discordmcp.DefMsgLimit, "number of messages to fetch")
}

func listMessages(ctx context.Context, cmd *base.Command, args []string) error {
	if len(args) < 1 {
		base.SetExitStatus(base.SInvalidParameters)
		return errors.New("channel ID or URL is required")
	}
	channelID, err := structures.ResolveChannelID(args[0])
	if err != nil {
		base.SetExitStatus(base.SInvalidParameters)
		return err
	}
	sess, err := bootstrap.Session(ctx)
	if err != nil {
		base.SetExitStatus(base.SInitializationError)
		return err
	}
	return printMessages(ctx, os.Stdout, sess, channelID, msgLimit)
}

const msgTimeFmt = "2006-01-02 15:04"

func printMessages(ctx context.Context, w io.Writer, sess sessioner, channelID string, limit int) error {
	msgs, err := sess.Messages(ctx, channelID, limit)
	if err != nil {
		return err
	}
	for _, m := range msgs {
		var attach string
		if m.Attachments > 0 {
			attach = fmt.Sprintf(" (+%d attachments)", m.Attachments)
		}
		fmt.Fprintf(w, "[%s] %s: %s%s\n", m.Timestamp.Format(msgTimeFmt), m.Author, m.Content, attach)
	}
	return nil
}
