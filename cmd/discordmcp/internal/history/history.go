// Package history implements the channel history download command.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/rusq/fsadapter"
	"github.com/schollz/progressbar/v3"

	"github.com/rusq/discordmcp"
	"github.com/rusq/discordmcp/cmd/discordmcp/internal/bootstrap"
	"github.com/rusq/discordmcp/cmd/discordmcp/internal/cfg"
	"github.com/rusq/discordmcp/cmd/discordmcp/internal/golang/base"
	"github.com/rusq/discordmcp/internal/structures"
)

var CmdHistory = &base.Command{
	Run:        runHistory,
	UsageLine:  "discordmcp history [flags] <channel>",
	PrintFlags: true,
	Short:      "save the channel history to a JSON file",
	Long: `
# History Command

History saves the messages of the channel to a JSON file named after the
channel ID.  Messages are fetched from the newest to the oldest, -time-from
and -time-to flags limit the time range.

The base location can be a directory or a ZIP file:

	discordmcp history -base backup.zip 1234567890123456789
`,
	RequireAuth: true,
}

var (
	baseLoc  string
	timeFrom cfg.TimeValue
	timeTo   cfg.TimeValue
)

func init() {
	CmdHistory.Flag.StringVar(&baseLoc, "base", ".", "a `location` (a directory or a ZIP file) to save the history to")
	CmdHistory.Flag.Var(&timeFrom, "time-from", "the oldest message `timestamp` to fetch, i.e. 2023-07-13 or 2023-07-13T18:00:00")
	CmdHistory.Flag.Var(&timeTo, "time-to", "the latest message `timestamp` to fetch")
}

func runHistory(ctx context.Context, cmd *base.Command, args []string) error {
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
	fsa, err := fsadapter.New(baseLoc)
	if err != nil {
		base.SetExitStatus(base.SApplicationError)
		return err
	}
	defer fsa.Close()

	pb := bootstrap.ProgressBar(ctx, cfg.Log, progressbar.OptionSetDescription("fetching "+channelID))
	defer pb.Finish()

	n, err := dump(ctx, fsa, sess, channelID, time.Time(timeFrom), time.Time(timeTo), pb.Add)
	if err != nil {
		return err
	}
	cfg.Log.InfoContext(ctx, "channel history saved", "channel", channelID, "messages", n, "filename", channelID+".json")
	return nil
}

// historier is the subset of the Session methods the dump uses.
type historier interface {
	History(ctx context.Context, channelID string, oldest, latest time.Time, fn func(page []discordmcp.Message) error) error
}

// dump saves the channel history to "<channelID>.json" in fsa and returns
// the number of messages saved.  progress is called with the size of each
// received page, it may be nil.
func dump(ctx context.Context, fsa fsadapter.FS, sess historier, channelID string, oldest, latest time.Time, progress func(int) error) (int, error) {
	f, err := fsa.Create(channelID + ".json")
	if err != nil {
		return 0, err
	}
	defer f.Close()

	all := make([]discordmcp.Message, 0)
	err = sess.History(ctx, channelID, oldest, latest, func(page []discordmcp.Message) error {
		all = append(all, page...)
		if progress != nil {
			if err := progress(len(page)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(all); err != nil {
		return 0, err
	}
	return len(all), nil
}
