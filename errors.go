package discordmcp

// In this file: classification of the errors returned by the Discord API.

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/bwmarrin/discordgo"
)

// Category is the coarse classification of an API error.  It is baked into
// the error message, so that the reason survives serialisation to tool
// callers that only see text.
type Category int

const (
	CatOther Category = iota
	CatPermission
	CatNotFound
	CatRateLimit
	CatBadRequest
)

func (c Category) String() string {
	switch c {
	case CatPermission:
		return "permission denied"
	case CatNotFound:
		return "not found"
	case CatRateLimit:
		return "rate limited"
	case CatBadRequest:
		return "malformed request"
	}
	return "api error"
}

// APIError couples an error returned by the API with its category.
type APIError struct {
	Err      error
	Category Category
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Category, e.Err)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// Is matches any *APIError of the same category, so that callers can test
// for a category with errors.Is(err, &APIError{Category: CatNotFound}).
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return t.Category == e.Category && (t.Err == nil || errors.Is(e.Err, t.Err))
}

// Categorize classifies an error returned by the API client.  The JSON error
// code takes precedence over the HTTP status, as Discord reuses 400 and 403
// for a number of unrelated conditions.
func Categorize(err error) Category {
	var rle *discordgo.RateLimitError
	if errors.As(err, &rle) {
		return CatRateLimit
	}
	var rerr *discordgo.RESTError
	if !errors.As(err, &rerr) {
		return CatOther
	}
	if rerr.Message != nil {
		switch rerr.Message.Code {
		case discordgo.ErrCodeMissingAccess, discordgo.ErrCodeMissingPermissions:
			return CatPermission
		case discordgo.ErrCodeUnknownChannel, discordgo.ErrCodeUnknownGuild,
			discordgo.ErrCodeUnknownMessage, discordgo.ErrCodeUnknownUser,
			discordgo.ErrCodeUnknownMember, discordgo.ErrCodeUnknownEmoji:
			return CatNotFound
		case discordgo.ErrCodeInvalidFormBody:
			return CatBadRequest
		}
	}
	if rerr.Response == nil {
		return CatOther
	}
	switch rerr.Response.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return CatPermission
	case http.StatusNotFound:
		return CatNotFound
	case http.StatusTooManyRequests:
		return CatRateLimit
	case http.StatusBadRequest:
		return CatBadRequest
	}
	return CatOther
}

// apiErr wraps err into an APIError, keeping nil nil.  Errors that are
// already categorised are returned as is.
func apiErr(err error) error {
	if err == nil {
		return nil
	}
	var ae *APIError
	if errors.As(err, &ae) {
		return err
	}
	return &APIError{Err: err, Category: Categorize(err)}
}
