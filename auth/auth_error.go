package auth

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/bwmarrin/discordgo"
)

// Error is the error returned by the providers, the underlying Err contains
// an API error returned by the users/@me test call.
type Error struct {
	Err error
	Msg string
}

func (ae *Error) Error() string {
	var msg string = ae.Msg
	if msg == "" {
		msg = ae.Err.Error()
	}
	return fmt.Sprintf("authentication error: %s", msg)
}

func (ae *Error) Unwrap() error {
	return ae.Err
}

func (ae *Error) Is(target error) bool {
	return target == ae.Err
}

// IsInvalidAuthErr returns true if the error is an authentication error
// caused by the API rejecting the token.
func IsInvalidAuthErr(err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	var rerr *discordgo.RESTError
	if !errors.As(e.Err, &rerr) {
		return false
	}
	return rerr.Response != nil && rerr.Response.StatusCode == http.StatusUnauthorized
}
