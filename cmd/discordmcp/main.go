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

// Command discordmcp gives command line and Model Context Protocol access to
// Discord servers using a bot token.
//
// The command subsystem is based on the golang's `go` command source code.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime/trace"
	"strings"

	"github.com/rusq/discordmcp"
	"github.com/rusq/discordmcp/cmd/discordmcp/internal/apiconfig"
	"github.com/rusq/discordmcp/cmd/discordmcp/internal/bootstrap"
	"github.com/rusq/discordmcp/cmd/discordmcp/internal/cfg"
	"github.com/rusq/discordmcp/cmd/discordmcp/internal/golang/base"
	"github.com/rusq/discordmcp/cmd/discordmcp/internal/golang/help"
	"github.com/rusq/discordmcp/cmd/discordmcp/internal/history"
	"github.com/rusq/discordmcp/cmd/discordmcp/internal/invite"
	"github.com/rusq/discordmcp/cmd/discordmcp/internal/list"
	"github.com/rusq/discordmcp/cmd/discordmcp/internal/mcp"
	"github.com/rusq/discordmcp/cmd/discordmcp/internal/send"
	"github.com/rusq/discordmcp/cmd/discordmcp/internal/setup"
)

func init() {
	base.Discordmcp.Commands = []*base.Command{
		mcp.CmdMCP,
		list.CmdList,
		send.CmdSend,
		history.CmdHistory,
		setup.CmdSetup,
		invite.CmdInvite,
		apiconfig.CmdConfig,
		CmdVersion,
	}
}

func init() {
	base.Usage = mainUsage
	cfg.Version = version
}

func main() {
	if err := main_(); err != nil {
		var apiErr *discordmcp.APIError
		switch {
		case errors.Is(err, context.Canceled):
			base.SetExitStatus(base.SCancelled)
		case errors.As(err, &apiErr):
			base.SetExitStatus(base.SApplicationError)
			slog.Error("discord API error", "error", err)
		default:
			slog.Error("run failed", "error", err)
		}
	}
	base.Exit()
}

func main_() error {
	flag.Usage = base.Usage
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		base.Usage()
	}

	base.CmdName = args[0]
	if args[0] == "help" {
		help.Help(os.Stdout, args[1:])
		return nil
	}

BigCmdLoop:
	for bigCmd := base.Discordmcp; ; {
		for _, cmd := range bigCmd.Commands {
			if cmd.Name() != args[0] {
				continue
			}
			if len(cmd.Commands) > 0 {
				// command has subcommands, descend into it.
				bigCmd = cmd
				args = args[1:]
				if len(args) == 0 {
					help.PrintUsage(os.Stderr, bigCmd)
					base.SetExitStatus(base.SHelpRequested)
					base.Exit()
				}
				if args[0] == "help" {
					help.Help(os.Stdout, append(strings.Split(base.CmdName, " "), args[1:]...))
					return nil
				}
				base.CmdName += " " + args[0]
				continue BigCmdLoop
			}
			if !cmd.Runnable() {
				continue
			}
			return invoke(cmd, args)
		}
		helpArg := ""
		if i := strings.LastIndex(base.CmdName, " "); i >= 0 {
			helpArg = " " + base.CmdName[:i]
		}
		fmt.Fprintf(os.Stderr, "discordmcp %s: unknown command\nRun 'discordmcp help%s' for usage.\n", base.CmdName, helpArg)
		base.SetExitStatus(base.SInvalidParameters)
		base.Exit()
	}
}

// invoke parses the command flags, initialises the instrumentation and the
// authentication, if the command requires it, and runs the command.
func invoke(cmd *base.Command, args []string) error {
	if cmd.CustomFlags {
		args = args[1:]
	} else {
		var err error
		args, err = parseFlags(cmd, args)
		if err != nil {
			base.SetExitStatus(base.SInvalidParameters)
			return err
		}
	}

	lg, err := initLog(cfg.LogFile, cfg.JsonHandler, cfg.Verbose)
	if err != nil {
		base.SetExitStatus(base.SInitializationError)
		return err
	}
	cfg.Log = lg

	if cfg.ConfigFile != "" {
		limits, err := apiconfig.Load(cfg.ConfigFile)
		if err != nil {
			base.SetExitStatus(base.SInitializationError)
			return fmt.Errorf("error loading API limits from %q: %w", cfg.ConfigFile, err)
		}
		if err := cfg.Limits.Apply(*limits); err != nil {
			base.SetExitStatus(base.SInitializationError)
			return err
		}
		lg.Debug("API limits loaded", "filename", cfg.ConfigFile)
	}

	base.AtExit(initTrace(cfg.TraceFile))
	initDebug()

	ctx, task := trace.NewTask(context.Background(), "command")
	defer task.End()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	if cmd.RequireAuth {
		trace.Logf(ctx, "invoke", "command %s requires auth", cmd.Name())
		var err error
		ctx, err = bootstrap.CurrentProviderCtx(ctx)
		if err != nil {
			base.SetExitStatus(base.SAuthError)
			return fmt.Errorf("auth error: %w\nRun 'discordmcp setup' to configure the bot token", err)
		}
	}
	trace.Log(ctx, "command", fmt.Sprint("Running command ", cmd.Name()))
	return cmd.Run(ctx, cmd, args)
}

func parseFlags(cmd *base.Command, args []string) ([]string, error) {
	cfg.SetBaseFlags(&cmd.Flag, cmd.FlagMask)
	cmd.Flag.Usage = func() { cmd.Usage() }
	if err := cmd.Flag.Parse(args[1:]); err != nil {
		return nil, err
	}
	return cmd.Flag.Args(), nil
}

func mainUsage() {
	help.PrintUsage(os.Stderr, base.Discordmcp)
	base.SetExitStatus(base.SHelpRequested)
	base.Exit()
}
