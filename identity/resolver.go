package identity

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"mealhub-api/apperr"
)

const principalKey = "principal"

// Resolver authenticates protected requests: it parses the Authorization
// header, delegates verification to the injected Verifier and attaches the
// resulting Principal to the request context.
type Resolver struct {
	verifier Verifier
	log      zerolog.Logger
}

func NewResolver(v Verifier, log zerolog.Logger) *Resolver {
	return &Resolver{verifier: v, log: log}
}

// Middleware rejects requests without a well-formed "Bearer <token>" header
// before any verification is attempted. Every verification failure maps to
// the same unauthenticated response; the cause is only logged.
func (r *Resolver) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		parts := strings.Fields(c.GetHeader("Authorization"))
		if len(parts) != 2 || parts[0] != "Bearer" {
			apperr.Abort(c, apperr.New(apperr.Unauthenticated, "Authorization header required (Bearer <token>)"))
			return
		}
		principal, err := r.verifier.Verify(c.Request.Context(), parts[1])
		if err != nil {
			r.log.Debug().Err(err).Msg("token verification failed")
			apperr.Abort(c, apperr.New(apperr.Unauthenticated, "Invalid or expired token"))
			return
		}
		c.Set(principalKey, principal)
		c.Next()
	}
}

// PrincipalFrom extracts the resolved Principal from the request context
func PrincipalFrom(c *gin.Context) (Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return "", false
	}
	p, ok := v.(Principal)
	return p, ok
}
