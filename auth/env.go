package auth

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/rusq/discordmcp/internal/structures"
)

// tokenKey is the environment variable holding the bot token.
const tokenKey = "DISCORD_TOKEN"

var _ Provider = EnvAuth{}

// EnvAuth is the provider that reads the token from the process
// environment.
type EnvAuth struct {
	simpleProvider
}

func NewEnvAuth() (EnvAuth, error) {
	token := normalise(os.Getenv(tokenKey))
	if token == "" {
		return EnvAuth{}, ErrNoToken
	}
	return EnvAuth{simpleProvider{token: token}}, nil
}

func (EnvAuth) Type() Type {
	return TypeEnv
}

var _ Provider = DotEnvAuth{}

// DotEnvAuth is the provider that reads the token from a dotenv secrets
// file, the same file the setup command writes.
type DotEnvAuth struct {
	simpleProvider
}

func NewDotEnvAuth(filename string) (DotEnvAuth, error) {
	dir := filepath.Dir(filename)
	token, err := parseDotEnv(os.DirFS(dir), filepath.Base(filename))
	if err != nil {
		return DotEnvAuth{}, err
	}
	return DotEnvAuth{simpleProvider{token: token}}, nil
}

func (DotEnvAuth) Type() Type {
	return TypeDotEnv
}

func parseDotEnv(fsys fs.FS, filename string) (string, error) {
	f, err := fsys.Open(filename)
	if err != nil {
		return "", err
	}
	defer f.Close()
	secrets, err := godotenv.Parse(f)
	if err != nil {
		return "", errors.New("not a secrets file")
	}
	token, ok := secrets[tokenKey]
	if !ok {
		return "", errors.New("no " + tokenKey + " found in the file")
	}
	token = normalise(token)
	if err := structures.ValidateToken(token); err != nil {
		return "", err
	}
	return token, nil
}
