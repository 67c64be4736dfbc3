package apperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Kind classifies a failure so transport code can map it to a status
type Kind string

const (
	InvalidArgument Kind = "invalid_argument"
	Unauthenticated Kind = "unauthenticated"
	Forbidden       Kind = "forbidden"
	NotFound        Kind = "not_found"
	Conflict        Kind = "conflict"
	Internal        Kind = "internal"
)

// Error carries a kind, a caller-safe message and an optional cause.
// The cause is logged, never returned to the caller.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an Error with no underlying cause
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap attaches an underlying cause to a taxonomy kind
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// HTTPStatus maps a kind to its response status
func (k Kind) HTTPStatus() int {
	switch k {
	case InvalidArgument:
		return http.StatusBadRequest
	case Unauthenticated:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Abort writes the error response and stops the handler chain. Internal
// failures respond with a generic message; the cause goes to the log.
func Abort(c *gin.Context, err *Error) {
	msg := err.Message
	if err.Kind == Internal {
		log.Error().Err(err.Err).Str("path", c.FullPath()).Msg(err.Message)
		msg = "Something went wrong"
	} else if err.Err != nil {
		log.Debug().Err(err.Err).Str("path", c.FullPath()).Str("kind", string(err.Kind)).Msg(err.Message)
	}
	c.AbortWithStatusJSON(err.Kind.HTTPStatus(), gin.H{"error": msg})
}
