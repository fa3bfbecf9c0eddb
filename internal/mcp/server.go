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

// In this file: MCP server construction and transport management.

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"

	"github.com/rusq/discordmcp"
)

//go:generate mockgen -source server.go -destination sessioner_mock_test.go -package mcp

const (
	serverName    = "discord-mcp"
	serverVersion = "1.0.0"
)

// Transport selects how the MCP server communicates with its client.
type Transport string

const (
	// TransportStdio uses stdin/stdout for communication (default, suitable
	// for local agent integrations such as Claude Desktop).
	TransportStdio Transport = "stdio"
	// TransportHTTP uses Streamable HTTP transport (suitable for remote
	// agents or when multiple concurrent clients are needed).
	TransportHTTP Transport = "http"
)

// Sessioner is the Discord session interface consumed by the tool handlers.
// *discordmcp.Session satisfies it.
type Sessioner interface {
	SendMessage(ctx context.Context, channelID string, content string) (*discordmcp.SendResult, error)
	Messages(ctx context.Context, channelID string, limit int) ([]discordmcp.Message, error)
	DeleteMessage(ctx context.Context, channelID, messageID string) error
	AddReaction(ctx context.Context, channelID, messageID, emoji string) error
	Guilds(ctx context.Context) ([]discordmcp.Guild, error)
	GuildInfo(ctx context.Context, guildID string) (*discordmcp.GuildInfo, error)
	GuildChannels(ctx context.Context, guildID string) ([]discordmcp.Channel, error)
	GuildMembers(ctx context.Context, guildID string, limit int) ([]discordmcp.Member, error)
	User(ctx context.Context, userID string) (*discordmcp.User, error)
	Info() *discordmcp.BotInfo
}

// Server wraps an MCP server and the Discord session it exposes.
type Server struct {
	mcp     *mcpsrv.MCPServer
	sess    Sessioner
	logger  *slog.Logger
	version string
}

// Option is a functional option for New.
type Option func(*Server)

// WithSession sets the Discord session that the tools operate on.  This
// option is mandatory.
func WithSession(sess Sessioner) Option {
	return func(s *Server) {
		s.sess = sess
	}
}

// WithLogger sets the logger.  A nil logger falls back to slog.Default().
func WithLogger(lg *slog.Logger) Option {
	return func(s *Server) {
		if lg != nil {
			s.logger = lg
		}
	}
}

// WithVersion overrides the advertised server version.
func WithVersion(v string) Option {
	return func(s *Server) {
		if v != "" {
			s.version = v
		}
	}
}

// New creates a new MCP server backed by the session given in WithSession.
// The server is populated with all available tools but does not start
// listening until one of the Serve* methods is called.
func New(opts ...Option) (*Server, error) {
	s := &Server{
		logger:  slog.Default(),
		version: serverVersion,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.sess == nil {
		return nil, errors.New("mcp: no session, use WithSession")
	}

	mcpServer := mcpsrv.NewMCPServer(
		serverName,
		s.version,
		mcpsrv.WithInstructions(instructions(s.sess)),
	)

	// Register all tools.
	for _, t := range s.tools() {
		mcpServer.AddTool(t.Tool, t.Handler)
	}

	s.mcp = mcpServer
	return s, nil
}

// instructions returns the server instructions that describe the bridge to
// the connecting agent.
func instructions(sess Sessioner) string {
	const preamble = `You are connected to a Discord MCP server.

The tools call the Discord REST API on behalf of a bot account.  The bot
only sees the servers it has been invited to and the channels its roles
grant access to.

Available tools allow you to:
- List the servers the bot is a member of
- Get server details, channel lists and member lists
- Read recent messages from a channel
- Send a message to a channel (long content is split into multiple messages)
- Add a reaction to a message, or delete a message
- Look up a user

All IDs are Discord snowflakes passed as decimal strings (e.g. "175928847299117063").`
	if sess == nil || sess.Info() == nil {
		return preamble
	}
	info := sess.Info()
	return fmt.Sprintf("%s\n\nThe bot is authenticated as %q (user ID %s).", preamble, info.Username, info.UserID)
}

// ServeStdio runs the MCP server over stdin/stdout until ctx is cancelled.
// This is the standard transport used by local agent integrations.
func (s *Server) ServeStdio(ctx context.Context) error {
	srv := mcpsrv.NewStdioServer(s.mcp)
	s.logger.InfoContext(ctx, "mcp server listening on stdio")
	if err := srv.Listen(ctx, os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
			return nil
		}
		return fmt.Errorf("mcp stdio server error: %w", err)
	}
	return nil
}

// ServeHTTP runs the MCP server as a Streamable HTTP server on addr until
// ctx is cancelled.  addr should be a host:port string such as ":8080".  The
// MCP endpoint is mounted on /mcp, and /healthz responds to health probes.
func (s *Server) ServeHTTP(ctx context.Context, addr string) error {
	streamSrv := mcpsrv.NewStreamableHTTPServer(s.mcp,
		mcpsrv.WithEndpointPath("/mcp"),
	)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintln(w, "ok")
	})
	r.Handle("/mcp", streamSrv)

	httpSrv := &http.Server{Addr: addr, Handler: r}

	s.logger.InfoContext(ctx, "mcp server listening on http", "addr", addr)

	errCh := make(chan error, 1)
	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("mcp http server error: %w", err)
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		s.logger.InfoContext(ctx, "mcp server shutting down")
		if err := httpSrv.Shutdown(context.Background()); err != nil {
			return fmt.Errorf("mcp http server shutdown error: %w", err)
		}
		return nil
	case err := <-errCh:
		return err
	}
}

// requestLogger logs each completed HTTP request on the given logger.
func requestLogger(lg *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			lg.InfoContext(r.Context(), "request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}

// tools returns all MCP tools that this server exposes.
func (s *Server) tools() []mcpsrv.ServerTool {
	return []mcpsrv.ServerTool{
		s.toolSendMessage(),
		s.toolReadMessages(),
		s.toolListServers(),
		s.toolGetServerInfo(),
		s.toolListChannels(),
		s.toolAddReaction(),
		s.toolDeleteMessage(),
		s.toolGetUserInfo(),
		s.toolListMembers(),
	}
}

// AddTool adds an additional tool to the MCP server.  This can be called
// after New but before serving starts.  It is intended for CLI-layer tools
// that have access to internal CLI packages (e.g. command_help).
func (s *Server) AddTool(tool mcpsrv.ServerTool) {
	s.mcp.AddTool(tool.Tool, tool.Handler)
}

// resultErr is a helper that wraps an error in a CallToolResult with IsError=true.
func resultErr(err error) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(err.Error())},
		IsError: true,
	}
}

// resultJSON is a helper that serialises v to JSON and returns a CallToolResult.
func resultJSON(v any) (*mcplib.CallToolResult, error) {
	return mcplib.NewToolResultJSON(v)
}

// stringArg extracts a named string argument from a tool call request.
// Returns ("", false) if the argument is absent or not a string.
func stringArg(req mcplib.CallToolRequest, name string) (string, bool) {
	args := req.GetArguments()
	if args == nil {
		return "", false
	}
	v, ok := args[name]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// intArg extracts a named int argument from a tool call request.  The MCP
// protocol serialises numbers as float64, so we convert accordingly.
func intArg(req mcplib.CallToolRequest, name string, defaultVal int) int {
	args := req.GetArguments()
	if args == nil {
		return defaultVal
	}
	v, ok := args[name]
	if !ok {
		return defaultVal
	}
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	}
	return defaultVal
}
