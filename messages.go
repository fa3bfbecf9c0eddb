package discordmcp

// In this file: messages related code.

import (
	"context"
	"errors"
	"fmt"
	"runtime/trace"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/enescakir/emoji"

	"github.com/rusq/discordmcp/internal/chunk"
	"github.com/rusq/discordmcp/internal/network"
	"github.com/rusq/discordmcp/internal/structures"
)

// DefMsgLimit is the number of messages fetched from a channel when the
// caller does not specify a limit.
const DefMsgLimit = 50

// Message is the reduced representation of a channel message.
type Message struct {
	ID      string `json:"id"`
	Author  string `json:"author"`
	Content string `json:"content"`
	// Timestamp is the message creation time.
	Timestamp time.Time `json:"timestamp"`
	// Attachments is the number of files attached to the message.
	Attachments int `json:"attachments,omitempty"`
}

// SendResult reports the outcome of a SendMessage call.  A message longer
// than the API limit is sent as several consecutive messages, MessageID is
// the ID of the last one sent.
type SendResult struct {
	MessageID string   `json:"message_id"`
	Chunks    int      `json:"chunks"`
	ChunkIDs  []string `json:"chunk_ids,omitempty"`
}

// SendMessage sends content to the channel.  Content that exceeds the
// message length limit is split on line boundaries and delivered as several
// messages in order.  If a chunk fails mid-way, the result accounts for the
// chunks that were delivered before the failure, and is returned along with
// the error.
func (sd *Session) SendMessage(ctx context.Context, channelID string, content string) (*SendResult, error) {
	ctx, task := trace.NewTask(ctx, "SendMessage")
	defer task.End()

	if channelID == "" {
		return nil, errors.New("channelID is empty")
	}

	parts := chunk.Split(content, chunk.DefaultLimit)
	trace.Logf(ctx, "info", "channelID: %q, content: %d chars, chunks: %d", channelID, len(content), len(parts))

	var (
		lim = sd.limiter(network.TierRoute)
		res = SendResult{Chunks: len(parts)}
	)
	for i, part := range parts {
		var msg *discordgo.Message
		if err := network.WithRetry(ctx, lim, sd.cfg.limits.Retries, func() error {
			var err error
			trace.WithRegion(ctx, "ChannelMessageSendComplex", func() {
				msg, err = sd.client.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
					Content: part,
				}, discordgo.WithContext(ctx))
			})
			return err
		}); err != nil {
			if i > 0 {
				return &res, fmt.Errorf("chunk %d of %d failed, %d delivered: %w", i+1, len(parts), i, apiErr(err))
			}
			return nil, apiErr(err)
		}
		res.MessageID = msg.ID
		res.ChunkIDs = append(res.ChunkIDs, msg.ID)
	}
	sd.log.DebugContext(ctx, "message sent", "channel", channelID, "chunks", res.Chunks, "message_id", res.MessageID)

	return &res, nil
}

// Messages fetches up to limit of the most recent messages in the channel,
// newest first.  Zero or negative limit is treated as DefMsgLimit.
func (sd *Session) Messages(ctx context.Context, channelID string, limit int) ([]Message, error) {
	ctx, task := trace.NewTask(ctx, "Messages")
	defer task.End()

	if channelID == "" {
		return nil, errors.New("channelID is empty")
	}
	if limit <= 0 {
		limit = DefMsgLimit
	}
	limit = min(limit, sd.cfg.limits.Request.Messages)
	trace.Logf(ctx, "info", "channelID: %q, limit: %d", channelID, limit)

	var raw []*discordgo.Message
	if err := network.WithRetry(ctx, sd.limiter(network.TierGlobal), sd.cfg.limits.Retries, func() error {
		var err error
		trace.WithRegion(ctx, "ChannelMessages", func() {
			raw, err = sd.client.ChannelMessages(channelID, limit, "", "", "", discordgo.WithContext(ctx))
		})
		return err
	}); err != nil {
		return nil, apiErr(err)
	}

	return sd.convertMsgs(raw), nil
}

// convertMsgs converts a slice of discordgo.Message to []Message.
func (*Session) convertMsgs(raw []*discordgo.Message) []Message {
	msgs := make([]Message, len(raw))
	for i, m := range raw {
		msgs[i] = Message{
			ID:          m.ID,
			Author:      displayName(m.Author),
			Content:     m.Content,
			Timestamp:   m.Timestamp,
			Attachments: len(m.Attachments),
		}
	}
	return msgs
}

// History pages through the channel messages from the newest towards the
// oldest, calling fn with each page.  The latest bound, if non-zero, is
// converted to a synthetic snowflake and applied server side; messages older
// than the oldest bound are cut off by their timestamps.  Paging stops when
// the history or a bound is reached, or when fn returns an error, which is
// returned as is.
func (sd *Session) History(ctx context.Context, channelID string, oldest, latest time.Time, fn func(page []Message) error) error {
	ctx, task := trace.NewTask(ctx, "History")
	defer task.End()

	if channelID == "" {
		return errors.New("channelID is empty")
	}
	if fn == nil {
		return errors.New("callback is required")
	}

	var (
		lim      = sd.limiter(network.TierGlobal)
		pageSize = sd.cfg.limits.Request.Messages
		beforeID = structures.TimeToSnowflake(latest)
	)
	trace.Logf(ctx, "info", "channelID: %q, oldest: %s, latest: %s", channelID, oldest, latest)
	for {
		var raw []*discordgo.Message
		if err := network.WithRetry(ctx, lim, sd.cfg.limits.Retries, func() error {
			var err error
			trace.WithRegion(ctx, "ChannelMessages", func() {
				raw, err = sd.client.ChannelMessages(channelID, pageSize, beforeID, "", "", discordgo.WithContext(ctx))
			})
			return err
		}); err != nil {
			return apiErr(err)
		}
		if len(raw) == 0 {
			return nil
		}

		// pages arrive newest first, so the oldest bound cuts the page tail.
		page, reachedOldest := raw, false
		if !oldest.IsZero() {
			for i, m := range raw {
				if m.Timestamp.Before(oldest) {
					page, reachedOldest = raw[:i], true
					break
				}
			}
		}
		if len(page) > 0 {
			if err := fn(sd.convertMsgs(page)); err != nil {
				return err
			}
		}
		if reachedOldest || len(raw) < pageSize {
			return nil
		}
		beforeID = raw[len(raw)-1].ID
	}
}

// DeleteMessage deletes a single message from the channel.
func (sd *Session) DeleteMessage(ctx context.Context, channelID, messageID string) error {
	ctx, task := trace.NewTask(ctx, "DeleteMessage")
	defer task.End()

	if channelID == "" || messageID == "" {
		return errors.New("channelID and messageID are required")
	}
	trace.Logf(ctx, "info", "channelID: %q, messageID: %q", channelID, messageID)

	if err := network.WithRetry(ctx, sd.limiter(network.TierRoute), sd.cfg.limits.Retries, func() error {
		var err error
		trace.WithRegion(ctx, "ChannelMessageDelete", func() {
			err = sd.client.ChannelMessageDelete(channelID, messageID, discordgo.WithContext(ctx))
		})
		return err
	}); err != nil {
		return apiErr(err)
	}
	sd.log.DebugContext(ctx, "message deleted", "channel", channelID, "message_id", messageID)

	return nil
}

// AddReaction adds a reaction to the message.  The emoji is either a unicode
// emoji, a :name: alias, or a custom guild emoji in the name:id form.
func (sd *Session) AddReaction(ctx context.Context, channelID, messageID, emo string) error {
	ctx, task := trace.NewTask(ctx, "AddReaction")
	defer task.End()

	if channelID == "" || messageID == "" {
		return errors.New("channelID and messageID are required")
	}
	if emo == "" {
		return errors.New("emoji is empty")
	}
	emo = resolveEmoji(emo)
	trace.Logf(ctx, "info", "channelID: %q, messageID: %q, emoji: %q", channelID, messageID, emo)

	if err := network.WithRetry(ctx, sd.limiter(network.TierReaction), sd.cfg.limits.Retries, func() error {
		var err error
		trace.WithRegion(ctx, "MessageReactionAdd", func() {
			err = sd.client.MessageReactionAdd(channelID, messageID, emo, discordgo.WithContext(ctx))
		})
		return err
	}); err != nil {
		return apiErr(err)
	}

	return nil
}

// resolveEmoji converts a :name: alias to its unicode form.  Unicode emojis
// and custom guild emojis in the name:id form pass through unchanged, as
// does an alias that has no unicode equivalent.
func resolveEmoji(s string) string {
	if !strings.HasPrefix(s, ":") || !strings.HasSuffix(s, ":") || len(s) < 3 {
		return s
	}
	return emoji.Parse(s)
}

// displayName renders the user the way clients do: legacy accounts with
// their #discriminator, migrated accounts by the bare unique username.
func displayName(u *discordgo.User) string {
	if u == nil {
		return ""
	}
	if u.Discriminator == "" || u.Discriminator == "0" {
		return u.Username
	}
	return u.Username + "#" + u.Discriminator
}
