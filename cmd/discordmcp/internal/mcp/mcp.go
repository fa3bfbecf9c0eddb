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

// Package mcp contains the CLI command for starting the Discord MCP server.
package mcp

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/rusq/discordmcp/cmd/discordmcp/internal/bootstrap"
	"github.com/rusq/discordmcp/cmd/discordmcp/internal/cfg"
	"github.com/rusq/discordmcp/cmd/discordmcp/internal/golang/base"
	internalmcp "github.com/rusq/discordmcp/internal/mcp"
)

//go:embed assets/mcp.md
var mdMCP string

// CmdMCP is the "discordmcp mcp" command.
var CmdMCP = &base.Command{
	UsageLine:   "discordmcp mcp [flags]",
	Short:       "Start the MCP server",
	Long:        mdMCP,
	FlagMask:    cfg.DefaultFlags,
	PrintFlags:  true,
	RequireAuth: true,
	Run:         runMCP,
}

var (
	listenAddr string
	transport  string
)

func init() {
	CmdMCP.Flag.StringVar(&transport, "transport", "stdio", "MCP transport: \"stdio\" or \"http\"")
	CmdMCP.Flag.StringVar(&listenAddr, "listen", "127.0.0.1:8080", "address to listen on when -transport=http")
}

// parseTransport converts the command line value to the server transport.
func parseTransport(s string) (internalmcp.Transport, error) {
	switch strings.ToLower(s) {
	case "stdio", "":
		return internalmcp.TransportStdio, nil
	case "http":
		return internalmcp.TransportHTTP, nil
	default:
		return "", fmt.Errorf("unknown transport %q (use \"stdio\" or \"http\")", s)
	}
}

func runMCP(ctx context.Context, cmd *base.Command, args []string) error {
	lg := cfg.Log

	trans, err := parseTransport(transport)
	if err != nil {
		base.SetExitStatus(base.SInvalidParameters)
		return err
	}

	sess, err := bootstrap.Session(ctx)
	if err != nil {
		base.SetExitStatus(base.SInitializationError)
		return fmt.Errorf("mcp: session: %w", err)
	}

	srv, err := internalmcp.New(
		internalmcp.WithSession(sess),
		internalmcp.WithLogger(lg),
		internalmcp.WithVersion(cfg.Version),
	)
	if err != nil {
		base.SetExitStatus(base.SInitializationError)
		return fmt.Errorf("mcp: %w", err)
	}

	// Add the command_help tool at the CLI layer because it needs access to
	// cmd/discordmcp/internal packages which are forbidden from internal/mcp.
	srv.AddTool(toolCommandHelp())

	switch trans {
	case internalmcp.TransportHTTP:
		lg.InfoContext(ctx, "mcp: http transport", "addr", listenAddr)
		return srv.ServeHTTP(ctx, listenAddr)
	default:
		return srv.ServeStdio(ctx)
	}
}
