// Package cfg contains common configuration variables.
package cfg

import (
	"flag"
	"log/slog"
	"os"

	"github.com/rusq/osenv/v2"

	"github.com/rusq/discordmcp/internal/network"
)

var (
	TraceFile   string
	LogFile     string
	JsonHandler bool
	Verbose     bool

	ConfigFile string

	Token  string
	Limits = network.DefLimits

	Version = "dev"

	Log *slog.Logger = slog.Default()
)

type FlagMask int

const (
	DefaultFlags  FlagMask = 0
	OmitAuthFlags FlagMask = 1 << iota
	OmitConfigFlag

	OmitAll = OmitConfigFlag |
		OmitAuthFlags
)

// SetBaseFlags sets base flags
func SetBaseFlags(fs *flag.FlagSet, mask FlagMask) {
	fs.StringVar(&TraceFile, "trace", os.Getenv("TRACE_FILE"), "trace `filename`")
	fs.StringVar(&LogFile, "log", os.Getenv("LOG_FILE"), "log `file`, if not specified, messages are printed to STDERR")
	fs.BoolVar(&JsonHandler, "log-json", osenv.Value("JSON_LOG", false), "log in JSON format")
	fs.BoolVar(&Verbose, "v", osenv.Value("DEBUG", false), "verbose messages")

	if mask&OmitAuthFlags == 0 {
		fs.StringVar(&Token, "token", osenv.Secret("DISCORD_TOKEN", ""), "Discord bot `token`\n(environment: DISCORD_TOKEN)")
	}
	if mask&OmitConfigFlag == 0 {
		fs.StringVar(&ConfigFile, "api-config", "", "configuration `file` with Discord API limits overrides.\nYou can generate one with default values with 'discordmcp config new'")
	}

	setDevFlags(fs, mask)
}

// SetDebugLevel sets the default logger level to debug.
func SetDebugLevel() {
	slog.SetLogLoggerLevel(slog.LevelDebug)
}
