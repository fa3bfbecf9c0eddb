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

// Package setup implements the interactive token setup command.
package setup

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"

	"github.com/rusq/discordmcp/auth"
	"github.com/rusq/discordmcp/cmd/discordmcp/internal/cfg"
	"github.com/rusq/discordmcp/cmd/discordmcp/internal/golang/base"
	"github.com/rusq/discordmcp/cmd/discordmcp/internal/ui"
	"github.com/rusq/discordmcp/internal/osext"
	"github.com/rusq/discordmcp/internal/structures"
)

const sampleToken = "MTIzNDU2Nzg5MDEyMzQ1Njc4.GfI9Xq.dYfH1p5pYkNbW0sJzD4NqEIYRZqNcp8p2lVVc"

var CmdSetup = &base.Command{
	Run:        runSetup,
	UsageLine:  "discordmcp setup [flags]",
	FlagMask:   cfg.OmitAll,
	PrintFlags: true,
	Short:      "interactively configure the bot token",
	Long: `
# Setup Command

Setup asks for the bot token, verifies it against the API, and saves it to a
secrets file in the current directory, where the other commands will find it.

The token can be created in the Discord Developer Portal:

	https://discord.com/developers/applications

(Application, then Bot, then Reset Token.)
`,
}

var secretsFile string

func init() {
	CmdSetup.Flag.StringVar(&secretsFile, "f", ".env", "secrets `file` to write the token to")
}

func runSetup(ctx context.Context, cmd *base.Command, args []string) error {
	if !osext.IsInteractive() {
		base.SetExitStatus(base.SUserError)
		return errors.New("setup requires an interactive terminal, set the DISCORD_TOKEN environment variable instead")
	}

	var (
		token     string
		confirmed bool
	)
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Bot token").
			Description("The token from the Discord Developer Portal").
			Placeholder(sampleToken).
			Value(&token).
			Validate(structures.ValidateToken),
		huh.NewConfirm().Title("Save the token?").
			Description("Once confirmed, the token will be checked against the API\nand written to "+secretsFile).
			Value(&confirmed),
	)).WithTheme(ui.HuhTheme())
	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return base.ErrOpCancelled
		}
		return err
	}
	if !confirmed {
		return nil
	}

	prov, err := auth.NewValueAuth(token)
	if err != nil {
		return err
	}
	var info *auth.AuthTestResponse
	if err := spinner.New().
		Title("Checking the token...").
		Context(ctx).
		ActionWithErr(func(ctx context.Context) error {
			var err error
			info, err = prov.Test(ctx)
			return err
		}).
		Run(); err != nil {
		base.SetExitStatus(base.SAuthError)
		return fmt.Errorf("the API rejected the token: %w", err)
	}

	if _, err := os.Stat(secretsFile); err == nil {
		if !base.YesNo(fmt.Sprintf("File %s exists, overwrite", secretsFile)) {
			return base.ErrOpCancelled
		}
	}
	if err := writeSecrets(secretsFile, token); err != nil {
		base.SetExitStatus(base.SApplicationError)
		return err
	}

	return success(ctx, secretsFile, info)
}

// writeSecrets writes the token to the secrets file in the dotenv format
// that the rest of the commands understand.
func writeSecrets(filename string, token string) error {
	return os.WriteFile(filename, []byte("DISCORD_TOKEN="+token+"\n"), 0o600)
}

func success(ctx context.Context, filename string, info *auth.AuthTestResponse) error {
	name := info.Username
	if info.Discriminator != "" && info.Discriminator != "0" {
		name += "#" + info.Discriminator
	}
	return huh.NewForm(huh.NewGroup(
		huh.NewNote().Title("Great Success!").
			Description(fmt.Sprintf("The token for %q was saved to %s.\n\n", name, filename)).
			Next(true).
			NextLabel("Exit"),
	)).WithTheme(ui.HuhTheme()).RunWithContext(ctx)
}
