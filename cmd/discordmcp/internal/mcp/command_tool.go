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

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"

	"github.com/rusq/discordmcp/cmd/discordmcp/internal/cfg"
	"github.com/rusq/discordmcp/cmd/discordmcp/internal/golang/base"
)

// ─── command_help tool ────────────────────────────────────────────────────────

// toolCommandHelp returns an MCP tool that provides CLI flag help for any
// discordmcp subcommand.  It lives at the CLI layer so it can access
// cmd/discordmcp/internal packages.
func toolCommandHelp() mcpsrv.ServerTool {
	tool := mcplib.NewTool("command_help",
		mcplib.WithDescription(`Return command-line flag help for a discordmcp subcommand.

Providing no command name (or an empty string) returns the top-level help
listing all available commands. This is useful when you need to construct a
discordmcp command invocation and want to know what flags are available.`),
		mcplib.WithString("command",
			mcplib.Description(`Subcommand name, e.g. "mcp", "list", "send", "history". Leave empty for top-level help. Nested subcommands can be space-separated, e.g. "list channels".`),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
		mcplib.WithIdempotentHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: handleCommandHelp}
}

func handleCommandHelp(_ context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	args := req.GetArguments()
	cmdName := ""
	if args != nil {
		if v, ok := args["command"]; ok {
			cmdName, _ = v.(string)
		}
	}

	var buf bytes.Buffer

	if cmdName == "" {
		fmt.Fprintln(&buf, "Discordmcp — available commands:")
		for _, c := range base.Discordmcp.Commands {
			if c.Short == "" {
				continue
			}
			fmt.Fprintf(&buf, "  %-20s %s\n", c.Name(), c.Short)
		}
		return mcplib.NewToolResultText(buf.String()), nil
	}

	// Walk the command tree using the supplied name parts.
	parts := strings.Fields(cmdName)
	cur := base.Discordmcp
	for _, part := range parts {
		found := false
		for _, sub := range cur.Commands {
			if sub.Name() == part {
				cur = sub
				found = true
				break
			}
		}
		if !found {
			return mcplib.NewToolResultText(fmt.Sprintf(
				"Unknown command %q. Run command_help with an empty command name to list all commands.",
				cmdName,
			)), nil
		}
	}

	fmt.Fprintf(&buf, "Command: discordmcp %s\n", cur.LongName())
	if cur.Short != "" {
		fmt.Fprintf(&buf, "Summary: %s\n", cur.Short)
	}
	if cur.Long != "" {
		fmt.Fprintf(&buf, "\nDescription:\n%s\n", cur.Long)
	}

	if cur.PrintFlags || cur.FlagMask != cfg.OmitAll {
		fmt.Fprintln(&buf, "\nFlags:")
		if !cur.CustomFlags {
			cfg.SetBaseFlags(&cur.Flag, cur.FlagMask)
		}
		cur.Flag.SetOutput(&buf)
		cur.Flag.PrintDefaults()
	}

	if len(cur.Commands) > 0 {
		fmt.Fprintln(&buf, "\nSubcommands:")
		for _, sub := range cur.Commands {
			if sub.Short != "" {
				fmt.Fprintf(&buf, "  %-20s %s\n", sub.Name(), sub.Short)
			}
		}
	}

	return mcplib.NewToolResultText(buf.String()), nil
}
