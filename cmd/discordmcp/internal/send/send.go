// Package send implements the message sending command.
package send

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rusq/discordmcp/cmd/discordmcp/internal/bootstrap"
	"github.com/rusq/discordmcp/cmd/discordmcp/internal/cfg"
	"github.com/rusq/discordmcp/cmd/discordmcp/internal/golang/base"
	"github.com/rusq/discordmcp/internal/structures"
)

var CmdSend = &base.Command{
	Run:        runSend,
	UsageLine:  "discordmcp send [flags] <channel> [text]",
	PrintFlags: true,
	Short:      "send a message to a channel",
	Long: `
# Send Command

Send posts a message to the channel.  The channel can be given by its ID or a
channel URL.  The message text is taken from the remaining arguments, or,
with the -f flag, from a file ("-" reads it from the standard input):

	discordmcp send 1234567890123456789 hello there
	discordmcp send -f announcement.txt 1234567890123456789
	git log -1 | discordmcp send -f - 1234567890123456789

Messages longer than the Discord message limit are split into several
messages on line boundaries.  On success, the ID of the first sent message is
printed.
`,
	RequireAuth: true,
}

var msgFile string

func init() {
	CmdSend.Flag.StringVar(&msgFile, "f", "", "read the message text from `file`, use \"-\" for STDIN")
}

func runSend(ctx context.Context, cmd *base.Command, args []string) error {
	if len(args) < 1 {
		base.SetExitStatus(base.SInvalidParameters)
		return errors.New("channel ID or URL is required")
	}
	channelID, err := structures.ResolveChannelID(args[0])
	if err != nil {
		base.SetExitStatus(base.SInvalidParameters)
		return err
	}
	text, err := messageText(args[1:], msgFile, os.Stdin)
	if err != nil {
		base.SetExitStatus(base.SInvalidParameters)
		return err
	}
	sess, err := bootstrap.Session(ctx)
	if err != nil {
		base.SetExitStatus(base.SInitializationError)
		return err
	}
	res, err := sess.SendMessage(ctx, channelID, text)
	if err != nil {
		return err
	}
	if res.Chunks > 1 {
		cfg.Log.InfoContext(ctx, "long message was sent in chunks", "chunks", res.Chunks)
	}
	fmt.Println(res.MessageID)
	return nil
}

// messageText returns the message text, either from the arguments joined
// with a space, or from the file if one is given.
func messageText(args []string, filename string, stdin io.Reader) (string, error) {
	if filename == "" {
		if len(args) == 0 {
			return "", errors.New("no message text given")
		}
		return strings.Join(args, " "), nil
	}
	if len(args) > 0 {
		return "", errors.New("both the message text and the -f flag are given")
	}
	var r io.Reader = stdin
	if filename != "-" {
		f, err := os.Open(filename)
		if err != nil {
			return "", err
		}
		defer f.Close()
		r = f
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
