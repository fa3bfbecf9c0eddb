// Copyright (c) 2021-2026 Rustam Gilyazov and Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package mcp

// In this file: MCP tool definitions and handler implementations.

import (
	"context"
	"errors"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"

	"github.com/rusq/discordmcp"
)

// actionResponse is the result of a tool that performs an action and has no
// data to return.
type actionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ─── send_message ─────────────────────────────────────────────────────────────

func (s *Server) toolSendMessage() mcpsrv.ServerTool {
	tool := mcplib.NewTool("send_message",
		mcplib.WithDescription(`Send a message to a Discord channel.

Content longer than the 2000 character message limit is split on line
boundaries and delivered as several consecutive messages.  The response
carries the ID of the last message sent; when more than one message was
needed, chunk_ids lists them all in order.`),
		mcplib.WithString("channel_id",
			mcplib.Description("The Discord channel ID to post to (a snowflake, e.g. \"831493021699604531\")"),
			mcplib.Required(),
		),
		mcplib.WithString("content",
			mcplib.Description("The message text to send"),
			mcplib.Required(),
		),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleSendMessage}
}

// sendResponse is the JSON shape of a successful send_message call.
type sendResponse struct {
	Success bool `json:"success"`
	*discordmcp.SendResult
}

func (s *Server) handleSendMessage(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	channelID, ok := stringArg(req, "channel_id")
	if !ok || channelID == "" {
		return resultErr(errors.New("send_message: channel_id is required")), nil
	}
	content, ok := stringArg(req, "content")
	if !ok || content == "" {
		return resultErr(errors.New("send_message: content is required")), nil
	}

	res, err := s.sess.SendMessage(ctx, channelID, content)
	if err != nil {
		return resultErr(fmt.Errorf("send_message: %w", err)), nil
	}

	result, err := resultJSON(sendResponse{Success: true, SendResult: res})
	if err != nil {
		return resultErr(fmt.Errorf("send_message: serialise: %w", err)), nil
	}
	return result, nil
}

// ─── read_messages ────────────────────────────────────────────────────────────

func (s *Server) toolReadMessages() mcpsrv.ServerTool {
	tool := mcplib.NewTool("read_messages",
		mcplib.WithDescription("Read recent messages from a Discord channel, newest first. Requires the bot to have the Read Message History permission in the channel."),
		mcplib.WithString("channel_id",
			mcplib.Description("The Discord channel ID to read messages from (a snowflake)"),
			mcplib.Required(),
		),
		mcplib.WithNumber("limit",
			mcplib.Description("Maximum number of messages to return (1–100, default 50)"),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleReadMessages}
}

// messagesResponse is the JSON envelope of read_messages.
type messagesResponse struct {
	Count    int                  `json:"count"`
	Messages []discordmcp.Message `json:"messages"`
}

func (s *Server) handleReadMessages(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	channelID, ok := stringArg(req, "channel_id")
	if !ok || channelID == "" {
		return resultErr(errors.New("read_messages: channel_id is required")), nil
	}
	limit := intArg(req, "limit", 0) // zero lets the session apply its default

	msgs, err := s.sess.Messages(ctx, channelID, limit)
	if err != nil {
		return resultErr(fmt.Errorf("read_messages: %w", err)), nil
	}

	result, err := resultJSON(messagesResponse{Count: len(msgs), Messages: msgs})
	if err != nil {
		return resultErr(fmt.Errorf("read_messages: serialise: %w", err)), nil
	}
	return result, nil
}

// ─── list_servers ─────────────────────────────────────────────────────────────

func (s *Server) toolListServers() mcpsrv.ServerTool {
	tool := mcplib.NewTool("list_servers",
		mcplib.WithDescription("List all Discord servers (guilds) the bot is a member of. Returns server IDs, names, icons and the bot's permissions."),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleListServers}
}

func (s *Server) handleListServers(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	guilds, err := s.sess.Guilds(ctx)
	if err != nil {
		return resultErr(fmt.Errorf("list_servers: %w", err)), nil
	}

	result, err := resultJSON(guilds)
	if err != nil {
		return resultErr(fmt.Errorf("list_servers: serialise: %w", err)), nil
	}
	return result, nil
}

// ─── get_server_info ──────────────────────────────────────────────────────────

func (s *Server) toolGetServerInfo() mcpsrv.ServerTool {
	tool := mcplib.NewTool("get_server_info",
		mcplib.WithDescription("Get detailed information about a Discord server: description, owner, approximate member count, features, verification level and boost tier."),
		mcplib.WithString("server_id",
			mcplib.Description("The Discord server (guild) ID (a snowflake)"),
			mcplib.Required(),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleGetServerInfo}
}

func (s *Server) handleGetServerInfo(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	serverID, ok := stringArg(req, "server_id")
	if !ok || serverID == "" {
		return resultErr(errors.New("get_server_info: server_id is required")), nil
	}

	info, err := s.sess.GuildInfo(ctx, serverID)
	if err != nil {
		return resultErr(fmt.Errorf("get_server_info: %w", err)), nil
	}

	result, err := resultJSON(info)
	if err != nil {
		return resultErr(fmt.Errorf("get_server_info: serialise: %w", err)), nil
	}
	return result, nil
}

// ─── list_channels ────────────────────────────────────────────────────────────

func (s *Server) toolListChannels() mcpsrv.ServerTool {
	tool := mcplib.NewTool("list_channels",
		mcplib.WithDescription("List all channels in a Discord server, in the order the client shows them. Returns channel IDs, names, types, positions and parent categories."),
		mcplib.WithString("server_id",
			mcplib.Description("The Discord server (guild) ID (a snowflake)"),
			mcplib.Required(),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleListChannels}
}

// channelsResponse is the JSON envelope of list_channels.
type channelsResponse struct {
	Count    int                  `json:"count"`
	Channels []discordmcp.Channel `json:"channels"`
}

func (s *Server) handleListChannels(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	serverID, ok := stringArg(req, "server_id")
	if !ok || serverID == "" {
		return resultErr(errors.New("list_channels: server_id is required")), nil
	}

	channels, err := s.sess.GuildChannels(ctx, serverID)
	if err != nil {
		return resultErr(fmt.Errorf("list_channels: %w", err)), nil
	}

	result, err := resultJSON(channelsResponse{Count: len(channels), Channels: channels})
	if err != nil {
		return resultErr(fmt.Errorf("list_channels: serialise: %w", err)), nil
	}
	return result, nil
}

// ─── add_reaction ─────────────────────────────────────────────────────────────

func (s *Server) toolAddReaction() mcpsrv.ServerTool {
	tool := mcplib.NewTool("add_reaction",
		mcplib.WithDescription("Add a reaction emoji to a message. Accepts a unicode emoji (👍), a :alias: (:thumbsup:), or a custom server emoji in the name:id form."),
		mcplib.WithString("channel_id",
			mcplib.Description("The Discord channel ID containing the message (a snowflake)"),
			mcplib.Required(),
		),
		mcplib.WithString("message_id",
			mcplib.Description("The message ID to react to (a snowflake)"),
			mcplib.Required(),
		),
		mcplib.WithString("emoji",
			mcplib.Description("The emoji to react with"),
			mcplib.Required(),
		),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleAddReaction}
}

func (s *Server) handleAddReaction(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	channelID, ok := stringArg(req, "channel_id")
	if !ok || channelID == "" {
		return resultErr(errors.New("add_reaction: channel_id is required")), nil
	}
	messageID, ok := stringArg(req, "message_id")
	if !ok || messageID == "" {
		return resultErr(errors.New("add_reaction: message_id is required")), nil
	}
	emoji, ok := stringArg(req, "emoji")
	if !ok || emoji == "" {
		return resultErr(errors.New("add_reaction: emoji is required")), nil
	}

	if err := s.sess.AddReaction(ctx, channelID, messageID, emoji); err != nil {
		return resultErr(fmt.Errorf("add_reaction: %w", err)), nil
	}

	result, err := resultJSON(actionResponse{
		Success: true,
		Message: fmt.Sprintf("Reaction '%s' added successfully!", emoji),
	})
	if err != nil {
		return resultErr(fmt.Errorf("add_reaction: serialise: %w", err)), nil
	}
	return result, nil
}

// ─── delete_message ───────────────────────────────────────────────────────────

func (s *Server) toolDeleteMessage() mcpsrv.ServerTool {
	tool := mcplib.NewTool("delete_message",
		mcplib.WithDescription("Delete a message from a Discord channel. The bot needs the Manage Messages permission to delete messages of other users."),
		mcplib.WithString("channel_id",
			mcplib.Description("The Discord channel ID containing the message (a snowflake)"),
			mcplib.Required(),
		),
		mcplib.WithString("message_id",
			mcplib.Description("The message ID to delete (a snowflake)"),
			mcplib.Required(),
		),
		mcplib.WithDestructiveHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleDeleteMessage}
}

func (s *Server) handleDeleteMessage(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	channelID, ok := stringArg(req, "channel_id")
	if !ok || channelID == "" {
		return resultErr(errors.New("delete_message: channel_id is required")), nil
	}
	messageID, ok := stringArg(req, "message_id")
	if !ok || messageID == "" {
		return resultErr(errors.New("delete_message: message_id is required")), nil
	}

	if err := s.sess.DeleteMessage(ctx, channelID, messageID); err != nil {
		return resultErr(fmt.Errorf("delete_message: %w", err)), nil
	}

	result, err := resultJSON(actionResponse{
		Success: true,
		Message: fmt.Sprintf("Message %s deleted successfully!", messageID),
	})
	if err != nil {
		return resultErr(fmt.Errorf("delete_message: serialise: %w", err)), nil
	}
	return result, nil
}

// ─── get_user_info ────────────────────────────────────────────────────────────

func (s *Server) toolGetUserInfo() mcpsrv.ServerTool {
	tool := mcplib.NewTool("get_user_info",
		mcplib.WithDescription("Get information about a Discord user: username, global display name, bot flag and avatar."),
		mcplib.WithString("user_id",
			mcplib.Description("The Discord user ID (a snowflake)"),
			mcplib.Required(),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleGetUserInfo}
}

func (s *Server) handleGetUserInfo(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	userID, ok := stringArg(req, "user_id")
	if !ok || userID == "" {
		return resultErr(errors.New("get_user_info: user_id is required")), nil
	}

	user, err := s.sess.User(ctx, userID)
	if err != nil {
		return resultErr(fmt.Errorf("get_user_info: %w", err)), nil
	}

	result, err := resultJSON(user)
	if err != nil {
		return resultErr(fmt.Errorf("get_user_info: serialise: %w", err)), nil
	}
	return result, nil
}

// ─── list_members ─────────────────────────────────────────────────────────────

func (s *Server) toolListMembers() mcpsrv.ServerTool {
	tool := mcplib.NewTool("list_members",
		mcplib.WithDescription("List members of a Discord server. Requires the Server Members privileged intent to be enabled for the bot."),
		mcplib.WithString("server_id",
			mcplib.Description("The Discord server (guild) ID (a snowflake)"),
			mcplib.Required(),
		),
		mcplib.WithNumber("limit",
			mcplib.Description("Maximum number of members to return (1–1000, default 100)"),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleListMembers}
}

// membersResponse is the JSON envelope of list_members.
type membersResponse struct {
	Count   int                 `json:"count"`
	Members []discordmcp.Member `json:"members"`
}

func (s *Server) handleListMembers(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	serverID, ok := stringArg(req, "server_id")
	if !ok || serverID == "" {
		return resultErr(errors.New("list_members: server_id is required")), nil
	}
	limit := intArg(req, "limit", 0) // zero lets the session apply its default

	members, err := s.sess.GuildMembers(ctx, serverID, limit)
	if err != nil {
		return resultErr(fmt.Errorf("list_members: %w", err)), nil
	}

	result, err := resultJSON(membersResponse{Count: len(members), Members: members})
	if err != nil {
		return resultErr(fmt.Errorf("list_members: serialise: %w", err)), nil
	}
	return result, nil
}
