// Package apiconfig implements the API limits configuration file commands.
package apiconfig

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/rusq/discordmcp/cmd/discordmcp/internal/cfg"
	"github.com/rusq/discordmcp/cmd/discordmcp/internal/golang/base"
	"github.com/rusq/discordmcp/internal/network"
)

var CmdConfig = &base.Command{
	UsageLine: "discordmcp config",
	Short:     "API configuration",
	Long: `
# Config Command

Config command allows to perform different operations on the API limits
configuration file.
`,
	Commands: []*base.Command{
		CmdConfigNew,
		CmdConfigCheck,
	},
}

var ErrConfigInvalid = errors.New("config validation failed")

// configHeader is written to the top of the generated configuration file.
const configHeader = `# Discord API limits configuration.
# Values override the defaults.  Validate after editing with:
#   discordmcp config check <filename>
`

// Load reads, parses and validates the config file.  The returned limits
// hold the file values only, it is for the caller to apply them.
func Load(filename string) (*network.Limits, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return load(f)
}

func load(r io.Reader) (*network.Limits, error) {
	limits, err := readLimits(r)
	if err != nil {
		return nil, err
	}
	// validate the limits as they will look once applied, without touching
	// the global configuration.
	merged := cfg.Limits
	if err := merged.Apply(limits); err != nil {
		if err := printErrors(os.Stderr, err); err != nil {
			return nil, err
		}
		return nil, ErrConfigInvalid
	}
	return &limits, nil
}

// readLimits parses the TOML limits.  Unknown keys are an error, those are
// most likely typos.
func readLimits(r io.Reader) (network.Limits, error) {
	var limits network.Limits
	md, err := toml.NewDecoder(r).Decode(&limits)
	if err != nil {
		return network.Limits{}, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return network.Limits{}, fmt.Errorf("unknown keys in the config: %v", undecoded)
	}
	return limits, nil
}

// Save writes the limits to the file in the TOML format.
func Save(filename string, limits network.Limits) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return writeLimits(f, limits)
}

func writeLimits(w io.Writer, limits network.Limits) error {
	if _, err := io.WriteString(w, configHeader); err != nil {
		return err
	}
	return toml.NewEncoder(w).Encode(limits)
}

func printErrors(w io.Writer, err error) error {
	if err == nil {
		return nil
	}

	var wErr error
	printErr := func(format string, a ...any) {
		if wErr != nil {
			return
		}
		_, wErr = fmt.Fprintf(w, format, a...)
	}

	printErr("Detected problems:\n")
	var vErr validator.ValidationErrors
	if !errors.As(err, &vErr) {
		return err
	}
	for i, entry := range vErr {
		printErr("\t%2d: %s\n", i+1, entry.Translate(network.OptErrTranslations))
	}
	return wErr
}
