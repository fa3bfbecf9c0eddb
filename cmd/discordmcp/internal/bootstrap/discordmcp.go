package bootstrap

import (
	"context"

	"github.com/rusq/discordmcp"
	"github.com/rusq/discordmcp/auth"
	"github.com/rusq/discordmcp/cmd/discordmcp/internal/cfg"
)

// Session returns the Session initialised with the provider from context and
// a standard set of options initialised from the configuration.  One can
// provide additional options to override the defaults.
func Session(ctx context.Context, opts ...discordmcp.Option) (*discordmcp.Session, error) {
	prov, err := auth.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	var stdOpts = []discordmcp.Option{
		discordmcp.WithLogger(cfg.Log),
		discordmcp.WithLimits(cfg.Limits),
	}

	stdOpts = append(stdOpts, opts...)
	return discordmcp.New(
		ctx,
		prov,
		stdOpts...,
	)
}
