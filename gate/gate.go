// Package gate is the request arbiter: the single place where the identity
// resolver and a route's ordered policy checks are composed into middleware.
// Routes declare what applies; this package decides how it runs.
package gate

import (
	"github.com/gin-gonic/gin"

	"mealhub-api/apperr"
	"mealhub-api/identity"
	"mealhub-api/policy"
)

type Arbiter struct {
	resolver  *identity.Resolver
	evaluator *policy.Evaluator
}

func New(resolver *identity.Resolver, evaluator *policy.Evaluator) *Arbiter {
	return &Arbiter{resolver: resolver, evaluator: evaluator}
}

// Protect returns the middleware chain for a protected route: identity
// resolution first, then each check in declaration order. The first failure
// short-circuits the request.
func (a *Arbiter) Protect(checks ...policy.Check) []gin.HandlerFunc {
	return []gin.HandlerFunc{a.resolver.Middleware(), a.run(checks)}
}

func (a *Arbiter) run(checks []policy.Check) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := identity.PrincipalFrom(c)
		if !ok {
			apperr.Abort(c, apperr.New(apperr.Unauthenticated, "No verified identity on request"))
			return
		}
		for _, check := range checks {
			if err := check(c, principal, a.evaluator); err != nil {
				apperr.Abort(c, err)
				return
			}
		}
		c.Next()
	}
}
