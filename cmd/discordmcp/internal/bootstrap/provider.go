package bootstrap

import (
	"context"
	"errors"
	"io/fs"

	"github.com/rusq/discordmcp/auth"
	"github.com/rusq/discordmcp/cmd/discordmcp/internal/cfg"
)

// secretFiles defines the names of the supported secret files that the token
// may be loaded from.  Inexperienced windows users might have bad experience
// trying to create .env file with the notepad as it will battle for having
// the "txt" extension.  Let it have it.
var secretFiles = []string{".env", ".env.txt", "secrets.txt"}

// CurrentProvider returns the authentication provider.  The token is
// resolved from the -token flag, then the environment, then the secret
// files in the current directory, in that order.
func CurrentProvider() (auth.Provider, error) {
	if cfg.Token != "" {
		prov, err := auth.NewValueAuth(cfg.Token)
		if err != nil {
			return nil, err
		}
		return prov, nil
	}
	if prov, err := auth.NewEnvAuth(); err == nil {
		return prov, nil
	}
	var probeErr error
	for _, filename := range secretFiles {
		prov, err := auth.NewDotEnvAuth(filename)
		if err == nil {
			return prov, nil
		}
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		// the file exists, but is unusable, remember why.
		probeErr = err
	}
	if probeErr != nil {
		return nil, probeErr
	}
	return nil, auth.ErrNoToken
}

// CurrentProviderCtx returns the context with the current provider.
func CurrentProviderCtx(ctx context.Context) (context.Context, error) {
	prov, err := CurrentProvider()
	if err != nil {
		return ctx, err
	}
	return auth.WithContext(ctx, prov), nil
}
